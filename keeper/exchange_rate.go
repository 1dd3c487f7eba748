package keeper

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/stakevault/types"
	"github.com/provlabs/stakevault/utils"
)

// GetExchangeRate returns the current RateUnit-scaled assets-per-share rate.
func (k Keeper) GetExchangeRate(ctx sdk.Context) (sdkmath.Int, error) {
	return k.ExchangeRate.Get(ctx)
}

// PreviewStake returns the shares that staking the given assets would mint at
// the current rate, rounded down.
func (k Keeper) PreviewStake(ctx sdk.Context, assets sdkmath.Int) (sdk.Coin, error) {
	rate, err := k.ExchangeRate.Get(ctx)
	if err != nil {
		return sdk.Coin{}, err
	}
	shareDenom, err := k.ShareDenom.Get(ctx)
	if err != nil {
		return sdk.Coin{}, err
	}
	return utils.CalculateSharesFromAssets(assets, rate, shareDenom)
}

// PreviewRedeem returns the assets that redeeming the given shares would pay
// at the current rate, rounded down.
func (k Keeper) PreviewRedeem(ctx sdk.Context, shares sdkmath.Int) (sdk.Coin, error) {
	rate, err := k.ExchangeRate.Get(ctx)
	if err != nil {
		return sdk.Coin{}, err
	}
	underlying, err := k.UnderlyingDenom.Get(ctx)
	if err != nil {
		return sdk.Coin{}, err
	}
	return utils.CalculateAssetsFromShares(shares, rate, underlying)
}

// TotalAssets returns the assets currently backing all outstanding shares,
// derived from the rate rather than the pool's raw bank balance so that it
// stays consistent with what redemptions can actually pay.
func (k Keeper) TotalAssets(ctx sdk.Context) (sdk.Coin, error) {
	totalShares, err := k.TotalShares(ctx)
	if err != nil {
		return sdk.Coin{}, err
	}
	return k.PreviewRedeem(ctx, totalShares)
}

// updateExchangeRate recomputes and stores the rate from a total asset /
// total share pair, rounding the rate up. Only slashing, fund returns and
// initialization may move the rate.
func (k Keeper) updateExchangeRate(ctx sdk.Context, totalAssets, totalShares sdkmath.Int) error {
	if totalAssets.IsZero() {
		return types.ErrZeroTotalAssets.Wrap("cannot recompute exchange rate")
	}
	rate, err := utils.CalculateExchangeRate(totalAssets, totalShares)
	if err != nil {
		return fmt.Errorf("failed to calculate exchange rate: %w", err)
	}
	return k.setExchangeRate(ctx, rate)
}

// setExchangeRate overwrites the stored rate and emits the rate-changed event.
func (k Keeper) setExchangeRate(ctx sdk.Context, rate sdkmath.Int) error {
	if err := k.ExchangeRate.Set(ctx, rate); err != nil {
		return err
	}
	k.emitEvent(ctx, types.NewEventExchangeRateUpdated(rate))
	return nil
}
