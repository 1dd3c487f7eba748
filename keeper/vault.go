package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/stakevault/types"
	"github.com/provlabs/stakevault/utils"
)

// Stake locks the funder's underlying assets in the pool and mints shares to
// the staker at the current exchange rate.
//
// It performs the following steps:
//  1. Rejects the stake during an unsettled post-slashing period or for a
//     zero amount.
//  2. Commits the staker's reward accrual at the pre-stake share balance.
//  3. Merges the staker's cooldown with the incoming stake, weighting the
//     incoming shares at the current block time.
//  4. Mints the converted shares to the staker.
//  5. Pulls the underlying assets from the funder into the pool.
//
// Internal bookkeeping completes before the asset pull so a reentrant caller
// observes consistent state. Returns the minted shares.
func (k Keeper) Stake(ctx sdk.Context, funder, staker sdk.AccAddress, amount sdk.Coin) (sdk.Coin, error) {
	inPostSlashing, err := k.InPostSlashingPeriod(ctx)
	if err != nil {
		return sdk.Coin{}, err
	}
	if inPostSlashing {
		return sdk.Coin{}, types.ErrSlashingInProgress.Wrap("cannot stake")
	}

	underlying, err := k.UnderlyingDenom.Get(ctx)
	if err != nil {
		return sdk.Coin{}, err
	}
	if amount.Denom != underlying {
		return sdk.Coin{}, types.ErrInvalidAmount.Wrapf("stake denom %q must be underlying denom %q", amount.Denom, underlying)
	}
	if !amount.Amount.IsPositive() {
		return sdk.Coin{}, types.ErrInvalidAmount.Wrap("stake amount must be positive")
	}

	shares, err := k.PreviewStake(ctx, amount.Amount)
	if err != nil {
		return sdk.Coin{}, err
	}
	if shares.Amount.IsZero() {
		return sdk.Coin{}, types.ErrInvalidAmount.Wrapf("stake of %s is too small and results in zero shares", amount.String())
	}

	balance, err := k.ShareBalance(ctx, staker)
	if err != nil {
		return sdk.Coin{}, err
	}
	if _, err := k.updateUnclaimedRewards(ctx, staker, balance, true); err != nil {
		return sdk.Coin{}, err
	}

	nextTimestamp, err := k.NextCooldownTimestamp(ctx, uint64(ctx.BlockTime().Unix()), shares.Amount, staker, balance)
	if err != nil {
		return sdk.Coin{}, fmt.Errorf("failed to merge cooldown: %w", err)
	}
	if err := k.SetCooldownTimestamp(ctx, staker, nextTimestamp); err != nil {
		return sdk.Coin{}, err
	}

	if err := k.BankKeeper.MintCoins(ctx, types.ModuleName, sdk.NewCoins(shares)); err != nil {
		return sdk.Coin{}, fmt.Errorf("failed to mint shares: %w", err)
	}
	if err := k.BankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, staker, sdk.NewCoins(shares)); err != nil {
		return sdk.Coin{}, fmt.Errorf("failed to deliver shares: %w", err)
	}

	if err := k.BankKeeper.SendCoinsFromAccountToModule(ctx, funder, types.PoolName, sdk.NewCoins(amount)); err != nil {
		return sdk.Coin{}, fmt.Errorf("failed to pull staked assets: %w", err)
	}

	k.emitEvent(ctx, types.NewEventStaked(funder.String(), staker.String(), amount, shares))
	return shares, nil
}

// StakeWithPermit verifies a signature-based spending approval for the funder
// and then follows the stake path, so no prior bank authorization is needed.
func (k Keeper) StakeWithPermit(ctx sdk.Context, funder, staker sdk.AccAddress, amount sdk.Coin, deadline uint64, signature []byte) (sdk.Coin, error) {
	if err := k.PermitKeeper.VerifyPermit(ctx, funder, types.GetPoolAddress(), amount.Amount, deadline, signature); err != nil {
		return sdk.Coin{}, types.ErrUnauthorized.Wrapf("permit rejected: %s", err.Error())
	}
	return k.Stake(ctx, funder, staker, amount)
}

// Redeem burns up to amount of the staker's shares and pays the converted
// underlying to the recipient. Outside a post-slashing period the staker must
// be inside their cooldown's unstake window; during one, the checks are
// relaxed so stakers can exit. A redeem that empties the share balance resets
// the staker's cooldown. The signer must be the staker or the claim helper.
// Returns the assets paid and the shares burned.
func (k Keeper) Redeem(ctx sdk.Context, signer, staker, recipient sdk.AccAddress, amount sdk.Coin) (sdk.Coin, sdk.Coin, error) {
	if !signer.Equals(staker) {
		if err := k.requireRole(ctx, signer, types.RoleClaimHelper); err != nil {
			return sdk.Coin{}, sdk.Coin{}, err
		}
	}

	shareDenom, err := k.ShareDenom.Get(ctx)
	if err != nil {
		return sdk.Coin{}, sdk.Coin{}, err
	}
	if amount.Denom != shareDenom {
		return sdk.Coin{}, sdk.Coin{}, types.ErrInvalidAmount.Wrapf("redeem denom %q must be share denom %q", amount.Denom, shareDenom)
	}
	if !amount.Amount.IsPositive() {
		return sdk.Coin{}, sdk.Coin{}, types.ErrInvalidAmount.Wrap("redeem amount must be positive")
	}

	inPostSlashing, err := k.InPostSlashingPeriod(ctx)
	if err != nil {
		return sdk.Coin{}, sdk.Coin{}, err
	}
	if !inPostSlashing {
		if err := k.checkRedeemWindow(ctx, staker); err != nil {
			return sdk.Coin{}, sdk.Coin{}, err
		}
	}

	balance, err := k.ShareBalance(ctx, staker)
	if err != nil {
		return sdk.Coin{}, sdk.Coin{}, err
	}
	if balance.IsZero() {
		return sdk.Coin{}, sdk.Coin{}, types.ErrNoShares.Wrapf("cannot redeem for %s", staker.String())
	}

	if _, err := k.updateUnclaimedRewards(ctx, staker, balance, true); err != nil {
		return sdk.Coin{}, sdk.Coin{}, err
	}

	burned := sdk.NewCoin(shareDenom, utils.MinInt(amount.Amount, balance))
	assets, err := k.PreviewRedeem(ctx, burned.Amount)
	if err != nil {
		return sdk.Coin{}, sdk.Coin{}, err
	}
	if assets.Amount.IsZero() {
		return sdk.Coin{}, sdk.Coin{}, types.ErrInvalidAmount.Wrapf("redeem of %s is too small and results in zero assets", burned.String())
	}

	if balance.Sub(burned.Amount).IsZero() {
		if err := k.SetCooldownTimestamp(ctx, staker, 0); err != nil {
			return sdk.Coin{}, sdk.Coin{}, err
		}
	}

	if err := k.BankKeeper.SendCoinsFromAccountToModule(ctx, staker, types.ModuleName, sdk.NewCoins(burned)); err != nil {
		return sdk.Coin{}, sdk.Coin{}, fmt.Errorf("failed to collect shares for burning: %w", err)
	}
	if err := k.BankKeeper.BurnCoins(ctx, types.ModuleName, sdk.NewCoins(burned)); err != nil {
		return sdk.Coin{}, sdk.Coin{}, fmt.Errorf("failed to burn shares: %w", err)
	}

	if err := k.BankKeeper.SendCoinsFromModuleToAccount(ctx, types.PoolName, recipient, sdk.NewCoins(assets)); err != nil {
		return sdk.Coin{}, sdk.Coin{}, fmt.Errorf("failed to pay redeemed assets: %w", err)
	}

	k.emitEvent(ctx, types.NewEventRedeemed(staker.String(), recipient.String(), assets, burned))
	return assets, burned, nil
}

// ClaimRewards pays up to amount of the staker's accrued rewards to the
// recipient, decrementing the committed remainder. The signer must be the
// staker or the claim helper. Returns the rewards paid.
func (k Keeper) ClaimRewards(ctx sdk.Context, signer, staker, recipient sdk.AccAddress, amount sdk.Coin) (sdk.Coin, error) {
	if !signer.Equals(staker) {
		if err := k.requireRole(ctx, signer, types.RoleClaimHelper); err != nil {
			return sdk.Coin{}, err
		}
	}

	rewardDenom, err := k.RewardDenom.Get(ctx)
	if err != nil {
		return sdk.Coin{}, err
	}
	if amount.Denom != rewardDenom {
		return sdk.Coin{}, types.ErrInvalidAmount.Wrapf("claim denom %q must be reward denom %q", amount.Denom, rewardDenom)
	}
	if !amount.Amount.IsPositive() {
		return sdk.Coin{}, types.ErrInvalidAmount.Wrap("claim amount must be positive")
	}

	rewards, err := k.settleClaim(ctx, staker, amount.Amount)
	if err != nil {
		return sdk.Coin{}, err
	}

	if !rewards.Amount.IsZero() {
		if err := k.BankKeeper.SendCoinsFromModuleToAccount(ctx, types.RewardsPoolName, recipient, sdk.NewCoins(rewards)); err != nil {
			return sdk.Coin{}, fmt.Errorf("failed to pay rewards: %w", err)
		}
	}

	k.emitEvent(ctx, types.NewEventRewardsClaimed(staker.String(), recipient.String(), rewards))
	return rewards, nil
}

// ClaimRewardsAndStake claims the staker's rewards directly into the pool and
// restakes them as the recipient's position. Requires the reward asset and
// the underlying asset to be the same denom. The signer must be the staker or
// the claim helper. Returns the rewards restaked and the shares minted.
func (k Keeper) ClaimRewardsAndStake(ctx sdk.Context, signer, staker, recipient sdk.AccAddress, amount sdk.Coin) (sdk.Coin, sdk.Coin, error) {
	if !signer.Equals(staker) {
		if err := k.requireRole(ctx, signer, types.RoleClaimHelper); err != nil {
			return sdk.Coin{}, sdk.Coin{}, err
		}
	}

	rewardDenom, err := k.RewardDenom.Get(ctx)
	if err != nil {
		return sdk.Coin{}, sdk.Coin{}, err
	}
	underlying, err := k.UnderlyingDenom.Get(ctx)
	if err != nil {
		return sdk.Coin{}, sdk.Coin{}, err
	}
	if rewardDenom != underlying {
		return sdk.Coin{}, sdk.Coin{}, types.ErrRewardAssetMismatch.Wrapf("reward denom %q, underlying denom %q", rewardDenom, underlying)
	}
	if amount.Denom != rewardDenom {
		return sdk.Coin{}, sdk.Coin{}, types.ErrInvalidAmount.Wrapf("claim denom %q must be reward denom %q", amount.Denom, rewardDenom)
	}
	if !amount.Amount.IsPositive() {
		return sdk.Coin{}, sdk.Coin{}, types.ErrInvalidAmount.Wrap("claim amount must be positive")
	}

	rewards, err := k.settleClaim(ctx, staker, amount.Amount)
	if err != nil {
		return sdk.Coin{}, sdk.Coin{}, err
	}
	if rewards.Amount.IsZero() {
		return sdk.Coin{}, sdk.Coin{}, types.ErrInvalidAmount.Wrapf("no rewards to restake for %s", staker.String())
	}

	// The rewards pool funds the restake directly; the regular stake path
	// moves the claim into the vault pool.
	shares, err := k.Stake(ctx, types.GetRewardsPoolAddress(), recipient, sdk.NewCoin(underlying, rewards.Amount))
	if err != nil {
		return sdk.Coin{}, sdk.Coin{}, err
	}

	k.emitEvent(ctx, types.NewEventRewardsClaimed(staker.String(), recipient.String(), rewards))
	return rewards, shares, nil
}

// ClaimRewardsAndRedeem performs a claim followed by a redeem with
// independent amounts, both for the same staker and recipient. The signer
// must be the staker or the claim helper.
func (k Keeper) ClaimRewardsAndRedeem(ctx sdk.Context, signer, staker, recipient sdk.AccAddress, claimAmount, redeemAmount sdk.Coin) (sdk.Coin, sdk.Coin, sdk.Coin, error) {
	rewards, err := k.ClaimRewards(ctx, signer, staker, recipient, claimAmount)
	if err != nil {
		return sdk.Coin{}, sdk.Coin{}, sdk.Coin{}, err
	}
	assets, burned, err := k.Redeem(ctx, signer, staker, recipient, redeemAmount)
	if err != nil {
		return sdk.Coin{}, sdk.Coin{}, sdk.Coin{}, err
	}
	return rewards, assets, burned, nil
}
