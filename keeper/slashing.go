package keeper

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/stakevault/types"
	"github.com/provlabs/stakevault/utils"
)

// MaxSlashableAssets returns the largest amount a single slash may remove at
// the current backing balance and configured percentage.
func (k Keeper) MaxSlashableAssets(ctx sdk.Context) (sdk.Coin, error) {
	balance, err := k.TotalAssets(ctx)
	if err != nil {
		return sdk.Coin{}, err
	}
	maxPct, err := k.MaxSlashablePct.Get(ctx)
	if err != nil {
		return sdk.Coin{}, err
	}
	capped := balance.Amount.Mul(maxPct).Quo(sdkmath.NewInt(types.PercentageFactor))
	return sdk.NewCoin(balance.Denom, capped), nil
}

// Slash removes up to the requested amount of pooled assets to cover an
// external loss, sending them to destination. The request is capped at the
// configured percentage of the current backing balance, the exchange rate is
// recomputed from the reduced pool, and the vault enters the post-slashing
// period until SettleSlashing. Slashing-admin only; one unsettled slash at a
// time. Returns the amount actually removed.
func (k Keeper) Slash(ctx sdk.Context, authority, destination sdk.AccAddress, requested sdk.Coin) (sdk.Coin, error) {
	if err := k.requireRole(ctx, authority, types.RoleSlashingAdmin); err != nil {
		return sdk.Coin{}, err
	}

	underlying, err := k.UnderlyingDenom.Get(ctx)
	if err != nil {
		return sdk.Coin{}, err
	}
	if requested.Denom != underlying {
		return sdk.Coin{}, types.ErrInvalidAmount.Wrapf("slash denom %q must be underlying denom %q", requested.Denom, underlying)
	}
	if !requested.Amount.IsPositive() {
		return sdk.Coin{}, types.ErrInvalidAmount.Wrap("slash amount must be positive")
	}

	inPostSlashing, err := k.InPostSlashingPeriod(ctx)
	if err != nil {
		return sdk.Coin{}, err
	}
	if inPostSlashing {
		return sdk.Coin{}, types.ErrSlashingInProgress.Wrap("cannot slash")
	}

	totalShares, err := k.TotalShares(ctx)
	if err != nil {
		return sdk.Coin{}, err
	}
	balance, err := k.PreviewRedeem(ctx, totalShares)
	if err != nil {
		return sdk.Coin{}, err
	}

	maxSlashable, err := k.MaxSlashableAssets(ctx)
	if err != nil {
		return sdk.Coin{}, err
	}
	actual := utils.MinInt(requested.Amount, maxSlashable.Amount)

	remaining := balance.Amount.Sub(actual)
	if remaining.IsZero() {
		return sdk.Coin{}, types.ErrZeroTotalAssets.Wrap("slash would empty the pool")
	}
	newRate, err := utils.CalculateExchangeRate(remaining, totalShares)
	if err != nil {
		return sdk.Coin{}, fmt.Errorf("failed to calculate post-slash exchange rate: %w", err)
	}

	if err := k.PostSlashing.Set(ctx, true); err != nil {
		return sdk.Coin{}, err
	}
	if err := k.setExchangeRate(ctx, newRate); err != nil {
		return sdk.Coin{}, err
	}

	slashed := sdk.NewCoin(underlying, actual)
	if err := k.BankKeeper.SendCoinsFromModuleToAccount(ctx, types.PoolName, destination, sdk.NewCoins(slashed)); err != nil {
		return sdk.Coin{}, fmt.Errorf("failed to transfer slashed assets: %w", err)
	}

	k.getLogger(ctx).Info("slashed vault", "destination", destination.String(), "requested", requested.String(), "actual", slashed.String())
	k.emitEvent(ctx, types.NewEventSlashed(authority.String(), destination.String(), slashed))
	return slashed, nil
}

// ReturnFunds pulls assets from the funder into the pool and recomputes the
// exchange rate from the grown balance, raising every share's value. Open to
// any caller; used to refund an insurance payout after a slash.
func (k Keeper) ReturnFunds(ctx sdk.Context, funder sdk.AccAddress, amount sdk.Coin) error {
	underlying, err := k.UnderlyingDenom.Get(ctx)
	if err != nil {
		return err
	}
	if amount.Denom != underlying {
		return types.ErrInvalidAmount.Wrapf("return denom %q must be underlying denom %q", amount.Denom, underlying)
	}
	if !amount.Amount.IsPositive() {
		return types.ErrInvalidAmount.Wrap("return amount must be positive")
	}

	totalShares, err := k.TotalShares(ctx)
	if err != nil {
		return err
	}
	if totalShares.IsZero() {
		return types.ErrNoShares.Wrap("cannot return funds with no shares outstanding")
	}
	balance, err := k.PreviewRedeem(ctx, totalShares)
	if err != nil {
		return err
	}

	newRate, err := utils.CalculateExchangeRate(balance.Amount.Add(amount.Amount), totalShares)
	if err != nil {
		return fmt.Errorf("failed to calculate post-return exchange rate: %w", err)
	}
	if err := k.setExchangeRate(ctx, newRate); err != nil {
		return err
	}

	if err := k.BankKeeper.SendCoinsFromAccountToModule(ctx, funder, types.PoolName, sdk.NewCoins(amount)); err != nil {
		return fmt.Errorf("failed to pull returned funds: %w", err)
	}

	k.emitEvent(ctx, types.NewEventFundsReturned(funder.String(), amount))
	return nil
}

// SettleSlashing ends the post-slashing period, re-enabling new slashes and
// restoring strict cooldown enforcement on redemptions. Slashing-admin only.
func (k Keeper) SettleSlashing(ctx sdk.Context, authority sdk.AccAddress) error {
	if err := k.requireRole(ctx, authority, types.RoleSlashingAdmin); err != nil {
		return err
	}
	if err := k.PostSlashing.Set(ctx, false); err != nil {
		return err
	}
	k.emitEvent(ctx, types.NewEventSlashingSettled(authority.String()))
	return nil
}

// SetMaxSlashablePercentage updates the slash cap in basis points. The value
// must be strictly below PercentageFactor so a slash can never divide the
// rate recompute by zero. Slashing-admin only.
func (k Keeper) SetMaxSlashablePercentage(ctx sdk.Context, authority sdk.AccAddress, pct sdkmath.Int) error {
	if err := k.requireRole(ctx, authority, types.RoleSlashingAdmin); err != nil {
		return err
	}
	if pct.IsNil() || pct.IsNegative() || pct.GTE(sdkmath.NewInt(types.PercentageFactor)) {
		return types.ErrInvalidPercentage.Wrapf("got %s, denominator %d", pct, types.PercentageFactor)
	}
	if err := k.MaxSlashablePct.Set(ctx, pct); err != nil {
		return err
	}
	k.emitEvent(ctx, types.NewEventMaxSlashablePctUpdated(authority.String(), pct))
	return nil
}
