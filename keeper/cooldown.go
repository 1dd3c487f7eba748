package keeper

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/stakevault/types"
)

// minValidCooldownTimestamp returns the oldest cooldown timestamp that is
// still inside the cooldown-plus-window interval at the current block time.
// Anything older has fully expired.
func (k Keeper) minValidCooldownTimestamp(ctx sdk.Context) (uint64, error) {
	cooldownSeconds, err := k.CooldownSeconds.Get(ctx)
	if err != nil {
		return 0, err
	}
	unstakeWindow, err := k.UnstakeWindow.Get(ctx)
	if err != nil {
		return 0, err
	}
	now := uint64(ctx.BlockTime().Unix())
	if now < cooldownSeconds+unstakeWindow {
		return 0, nil
	}
	return now - cooldownSeconds - unstakeWindow, nil
}

// NextCooldownTimestamp computes the recipient's cooldown timestamp after a
// balance increase of amount carrying fromTimestamp worth of cooldown
// progress. Rules, in order:
//
//   - recipient has no cooldown: stays without one (zero),
//   - recipient's cooldown fully expired: reset to zero,
//   - incoming progress is further along than the recipient's: recipient's
//     timestamp is kept (an incoming expired or fresher-than-now timestamp is
//     first clamped to now),
//   - otherwise: balance-weighted average of the two, rounded down.
//
// The weighted merge keeps a trivial incoming amount from resetting an
// almost-finished cooldown, and makes splitting a stake equivalent to sending
// it whole.
func (k Keeper) NextCooldownTimestamp(ctx sdk.Context, fromTimestamp uint64, amount sdkmath.Int, recipient sdk.AccAddress, recipientBalance sdkmath.Int) (uint64, error) {
	toTimestamp, err := k.GetCooldownTimestamp(ctx, recipient)
	if err != nil {
		return 0, err
	}
	if toTimestamp == 0 {
		return 0, nil
	}

	minValid, err := k.minValidCooldownTimestamp(ctx)
	if err != nil {
		return 0, err
	}
	if minValid > toTimestamp {
		return 0, nil
	}

	adjustedFrom := fromTimestamp
	if minValid > fromTimestamp {
		adjustedFrom = uint64(ctx.BlockTime().Unix())
	}
	if adjustedFrom < toTimestamp {
		return toTimestamp, nil
	}

	weighted := amount.Mul(sdkmath.NewIntFromUint64(adjustedFrom)).
		Add(recipientBalance.Mul(sdkmath.NewIntFromUint64(toTimestamp))).
		Quo(amount.Add(recipientBalance))
	return weighted.Uint64(), nil
}

// BeginCooldown activates the redemption cooldown for a staker with a nonzero
// share balance, stamping it at the current block time.
func (k Keeper) BeginCooldown(ctx sdk.Context, staker sdk.AccAddress) (uint64, error) {
	balance, err := k.ShareBalance(ctx, staker)
	if err != nil {
		return 0, err
	}
	if balance.IsZero() {
		return 0, types.ErrNoShares.Wrapf("cannot begin cooldown for %s", staker.String())
	}

	now := uint64(ctx.BlockTime().Unix())
	if err := k.SetCooldownTimestamp(ctx, staker, now); err != nil {
		return 0, err
	}
	k.emitEvent(ctx, types.NewEventCooldownStarted(staker.String(), now))
	return now, nil
}

// checkRedeemWindow enforces the cooldown-then-window eligibility rule for a
// staker. Eligibility starts the second the cooldown elapses (inclusive) and
// ends unstakeWindow seconds later (inclusive).
func (k Keeper) checkRedeemWindow(ctx sdk.Context, staker sdk.AccAddress) error {
	cooldownTimestamp, err := k.GetCooldownTimestamp(ctx, staker)
	if err != nil {
		return err
	}
	if cooldownTimestamp == 0 {
		return types.ErrCooldownNotElapsed.Wrapf("no active cooldown for %s", staker.String())
	}

	cooldownSeconds, err := k.CooldownSeconds.Get(ctx)
	if err != nil {
		return err
	}
	unstakeWindow, err := k.UnstakeWindow.Get(ctx)
	if err != nil {
		return err
	}

	now := uint64(ctx.BlockTime().Unix())
	redeemableAt := cooldownTimestamp + cooldownSeconds
	if now < redeemableAt {
		return types.ErrCooldownNotElapsed.Wrapf("redeemable in %d seconds", redeemableAt-now)
	}
	if now-redeemableAt > unstakeWindow {
		return types.ErrUnstakeWindowClosed.Wrapf("window closed %d seconds ago", now-redeemableAt-unstakeWindow)
	}
	return nil
}

// OnSharesTransferred is the ledger's transfer hook. It is invoked before the
// share balances move so transfers carry cooldown progress proportionally:
// the recipient's cooldown is merged with the sender's, and a sender who
// moves out their whole balance loses their cooldown.
func (k Keeper) OnSharesTransferred(ctx sdk.Context, from, to sdk.AccAddress, amount sdkmath.Int) error {
	if from.Equals(to) {
		return nil
	}

	senderCooldown, err := k.GetCooldownTimestamp(ctx, from)
	if err != nil {
		return err
	}
	recipientBalance, err := k.ShareBalance(ctx, to)
	if err != nil {
		return err
	}

	nextTimestamp, err := k.NextCooldownTimestamp(ctx, senderCooldown, amount, to, recipientBalance)
	if err != nil {
		return fmt.Errorf("failed to merge cooldown: %w", err)
	}
	if err := k.SetCooldownTimestamp(ctx, to, nextTimestamp); err != nil {
		return err
	}

	senderBalance, err := k.ShareBalance(ctx, from)
	if err != nil {
		return err
	}
	if senderBalance.Equal(amount) && senderCooldown != 0 {
		return k.SetCooldownTimestamp(ctx, from, 0)
	}
	return nil
}

// SetCooldownSeconds updates the cooldown duration. Cooldown-admin only.
func (k Keeper) SetCooldownSeconds(ctx sdk.Context, authority sdk.AccAddress, seconds uint64) error {
	if err := k.requireRole(ctx, authority, types.RoleCooldownAdmin); err != nil {
		return err
	}
	if err := k.CooldownSeconds.Set(ctx, seconds); err != nil {
		return err
	}
	k.emitEvent(ctx, types.NewEventCooldownSecondsUpdated(authority.String(), seconds))
	return nil
}
