package keeper

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/stakevault/types"
	"github.com/provlabs/stakevault/utils"
)

// updateUnclaimedRewards advances the external accrual engine for the staker
// at the given share balance and returns the staker's total unclaimed
// rewards. With commit the total is persisted into the staker's
// rewards-to-claim balance; without it the caller is about to overwrite that
// balance itself (claims) and only needs the up-to-date total.
func (k Keeper) updateUnclaimedRewards(ctx sdk.Context, staker sdk.AccAddress, balance sdkmath.Int, commit bool) (sdkmath.Int, error) {
	totalShares, err := k.TotalShares(ctx)
	if err != nil {
		return sdkmath.Int{}, err
	}
	accrued, err := k.AccrualEngine.UpdateUserAsset(ctx, staker, balance, totalShares)
	if err != nil {
		return sdkmath.Int{}, fmt.Errorf("failed to update reward accrual: %w", err)
	}

	stored, err := k.GetRewardsToClaim(ctx, staker)
	if err != nil {
		return sdkmath.Int{}, err
	}
	total := stored.Add(accrued)

	if !accrued.IsZero() {
		k.emitEvent(ctx, types.NewEventRewardsAccrued(staker.String(), accrued))
	}
	if commit && !accrued.IsZero() {
		if err := k.SetRewardsToClaim(ctx, staker, total); err != nil {
			return sdkmath.Int{}, err
		}
	}
	return total, nil
}

// settleClaim computes the claimable portion of amount, persists the reduced
// remainder, and returns the amount to pay. Reward bookkeeping is settled
// before any asset moves.
func (k Keeper) settleClaim(ctx sdk.Context, staker sdk.AccAddress, amount sdkmath.Int) (sdk.Coin, error) {
	balance, err := k.ShareBalance(ctx, staker)
	if err != nil {
		return sdk.Coin{}, err
	}
	total, err := k.updateUnclaimedRewards(ctx, staker, balance, false)
	if err != nil {
		return sdk.Coin{}, err
	}

	toClaim := utils.MinInt(amount, total)
	if err := k.SetRewardsToClaim(ctx, staker, total.Sub(toClaim)); err != nil {
		return sdk.Coin{}, err
	}

	rewardDenom, err := k.RewardDenom.Get(ctx)
	if err != nil {
		return sdk.Coin{}, err
	}
	return sdk.NewCoin(rewardDenom, toClaim), nil
}

// ClaimableRewards returns the staker's total unclaimed rewards including
// accrual that has not yet been committed. Intended for queries, which run
// against a discarded state branch.
func (k Keeper) ClaimableRewards(ctx sdk.Context, staker sdk.AccAddress) (sdk.Coin, error) {
	balance, err := k.ShareBalance(ctx, staker)
	if err != nil {
		return sdk.Coin{}, err
	}
	total, err := k.updateUnclaimedRewards(ctx, staker, balance, false)
	if err != nil {
		return sdk.Coin{}, err
	}
	rewardDenom, err := k.RewardDenom.Get(ctx)
	if err != nil {
		return sdk.Coin{}, err
	}
	return sdk.NewCoin(rewardDenom, total), nil
}
