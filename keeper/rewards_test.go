package keeper_test

import (
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/stakevault/types"
	"github.com/provlabs/stakevault/utils/mocks"
)

// fundRewardsPool seeds the rewards pool so claims can be paid out.
func (s *TestSuite) fundRewardsPool(denom string, amount int64) {
	s.mocks.Bank.FundModule(types.RewardsPoolName, sdk.NewCoins(sdk.NewInt64Coin(denom, amount)))
}

func (s *TestSuite) TestClaimRewardsPaysPartialAmount() {
	s.fundAndStake(s.staker, 100)
	s.mocks.Accrual.SetPending(s.staker, sdkmath.NewInt(40))
	s.fundRewardsPool(rewardDenom, 40)

	rewards, err := s.k.ClaimRewards(s.ctx, s.staker, s.staker, s.staker, sdk.NewInt64Coin(rewardDenom, 25))
	s.Require().NoError(err, "claiming part of the accrued rewards should succeed")
	s.Assert().Equal("25", rewards.Amount.String(), "unexpected rewards paid")

	s.assertBalance(s.staker, rewardDenom, sdkmath.NewInt(25))
	s.assertEventEmitted(types.EventTypeRewardsClaimed)

	remaining, err := s.k.GetRewardsToClaim(s.ctx, s.staker)
	s.Require().NoError(err)
	s.Assert().Equal("15", remaining.String(), "the unclaimed remainder should stay committed")
}

func (s *TestSuite) TestClaimRewardsClampsToAccrued() {
	s.fundAndStake(s.staker, 100)
	s.mocks.Accrual.SetPending(s.staker, sdkmath.NewInt(40))
	s.fundRewardsPool(rewardDenom, 40)

	rewards, err := s.k.ClaimRewards(s.ctx, s.staker, s.staker, s.staker, sdk.NewInt64Coin(rewardDenom, 1_000))
	s.Require().NoError(err, "over-claiming should clamp to what is accrued, not fail")
	s.Assert().Equal("40", rewards.Amount.String(), "claim should pay everything accrued")

	remaining, err := s.k.GetRewardsToClaim(s.ctx, s.staker)
	s.Require().NoError(err)
	s.Assert().True(remaining.IsZero(), "nothing should remain after a full claim")
}

func (s *TestSuite) TestClaimRewardsOnBehalf() {
	s.fundAndStake(s.staker, 100)
	s.mocks.Accrual.SetPending(s.staker, sdkmath.NewInt(40))
	s.fundRewardsPool(rewardDenom, 40)

	intruder := sdk.AccAddress("intruderAddr________")
	_, err := s.k.ClaimRewards(s.ctx, intruder, s.staker, intruder, sdk.NewInt64Coin(rewardDenom, 40))
	s.Require().ErrorIs(err, types.ErrUnauthorized, "a third party without the claim helper role must not claim for a staker")

	recipient := sdk.AccAddress("recipientAddr_______")
	rewards, err := s.k.ClaimRewards(s.ctx, s.claimHelper, s.staker, recipient, sdk.NewInt64Coin(rewardDenom, 40))
	s.Require().NoError(err, "the claim helper should be able to claim on behalf of a staker")
	s.Assert().Equal("40", rewards.Amount.String(), "unexpected rewards paid")
	s.assertBalance(recipient, rewardDenom, sdkmath.NewInt(40))
}

func (s *TestSuite) TestClaimRewardsRejectsBadAmounts() {
	s.fundAndStake(s.staker, 100)

	_, err := s.k.ClaimRewards(s.ctx, s.staker, s.staker, s.staker, sdk.NewInt64Coin(rewardDenom, 0))
	s.Require().ErrorIs(err, types.ErrInvalidAmount, "zero claim should be rejected")

	_, err = s.k.ClaimRewards(s.ctx, s.staker, s.staker, s.staker, sdk.NewInt64Coin(underDenom, 10))
	s.Require().ErrorIs(err, types.ErrInvalidAmount, "claiming a non-reward denom should be rejected")
}

func (s *TestSuite) TestStakeCommitsPendingAccrual() {
	s.fundAndStake(s.staker, 100)
	s.mocks.Accrual.SetPending(s.staker, sdkmath.NewInt(17))

	// The balance change settles the accrual into the committed bucket.
	s.fundAndStake(s.staker, 50)

	committed, err := s.k.GetRewardsToClaim(s.ctx, s.staker)
	s.Require().NoError(err)
	s.Assert().Equal("17", committed.String(), "a stake should commit accrual earned at the old balance")
	s.assertEventEmitted(types.EventTypeRewardsAccrued)
}

func (s *TestSuite) TestRedeemCommitsPendingAccrual() {
	s.fundAndStake(s.staker, 100)
	s.enterRedeemWindow(s.staker)
	s.mocks.Accrual.SetPending(s.staker, sdkmath.NewInt(9))

	_, _, err := s.k.Redeem(s.ctx, s.staker, s.staker, s.staker, sdk.NewInt64Coin(shareDenom, 100))
	s.Require().NoError(err)

	committed, err := s.k.GetRewardsToClaim(s.ctx, s.staker)
	s.Require().NoError(err)
	s.Assert().Equal("9", committed.String(), "a full exit should leave earned rewards claimable")
}

func (s *TestSuite) TestClaimableRewardsIncludesUncommittedAccrual() {
	s.fundAndStake(s.staker, 100)
	s.Require().NoError(s.k.SetRewardsToClaim(s.ctx, s.staker, sdkmath.NewInt(10)))
	s.mocks.Accrual.SetPending(s.staker, sdkmath.NewInt(5))

	claimable, err := s.k.ClaimableRewards(s.ctx, s.staker)
	s.Require().NoError(err)
	s.Assert().Equal("15", claimable.Amount.String(), "claimable should be committed plus pending accrual")
	s.Assert().Equal(rewardDenom, claimable.Denom, "claimable should be denominated in the reward asset")
}

func (s *TestSuite) TestClaimRewardsAndStake() {
	// Restaking requires the reward asset to be the underlying itself.
	s.Require().NoError(s.k.RewardDenom.Set(s.ctx, underDenom))

	s.fundAndStake(s.staker, 100)
	s.Require().NoError(s.k.SetRewardsToClaim(s.ctx, s.staker, sdkmath.NewInt(50)))
	s.fundRewardsPool(underDenom, 50)

	rewards, shares, err := s.k.ClaimRewardsAndStake(s.ctx, s.staker, s.staker, s.staker, sdk.NewInt64Coin(underDenom, 50))
	s.Require().NoError(err, "claim and restake should succeed when reward and underlying match")
	s.Assert().Equal("50", rewards.Amount.String(), "unexpected rewards restaked")
	s.Assert().Equal("50", shares.Amount.String(), "restaked rewards should mint shares at the current rate")

	s.assertBalance(s.staker, shareDenom, sdkmath.NewInt(150))
	s.assertBalance(mocks.ModuleAddress(types.RewardsPoolName), underDenom, sdkmath.ZeroInt())
	s.assertBalance(mocks.ModuleAddress(types.PoolName), underDenom, sdkmath.NewInt(150))
}

func (s *TestSuite) TestClaimRewardsAndStakeAssetMismatch() {
	s.fundAndStake(s.staker, 100)
	s.Require().NoError(s.k.SetRewardsToClaim(s.ctx, s.staker, sdkmath.NewInt(50)))

	_, _, err := s.k.ClaimRewardsAndStake(s.ctx, s.staker, s.staker, s.staker, sdk.NewInt64Coin(rewardDenom, 50))
	s.Require().ErrorIs(err, types.ErrRewardAssetMismatch, "restaking must be rejected when the reward asset differs from the underlying")
}

func (s *TestSuite) TestClaimRewardsAndStakeNothingAccrued() {
	s.Require().NoError(s.k.RewardDenom.Set(s.ctx, underDenom))
	s.fundAndStake(s.staker, 100)

	_, _, err := s.k.ClaimRewardsAndStake(s.ctx, s.staker, s.staker, s.staker, sdk.NewInt64Coin(underDenom, 50))
	s.Require().ErrorIs(err, types.ErrInvalidAmount, "restaking with nothing accrued must fail")
}

func (s *TestSuite) TestClaimRewardsAndRedeem() {
	s.fundAndStake(s.staker, 100)
	s.enterRedeemWindow(s.staker)
	s.Require().NoError(s.k.SetRewardsToClaim(s.ctx, s.staker, sdkmath.NewInt(30)))
	s.fundRewardsPool(rewardDenom, 30)

	rewards, assets, burned, err := s.k.ClaimRewardsAndRedeem(s.ctx, s.staker, s.staker, s.staker,
		sdk.NewInt64Coin(rewardDenom, 30), sdk.NewInt64Coin(shareDenom, 100))
	s.Require().NoError(err, "combined claim and redeem should succeed inside the window")

	s.Assert().Equal("30", rewards.Amount.String(), "unexpected rewards paid")
	s.Assert().Equal("100", assets.Amount.String(), "unexpected assets redeemed")
	s.Assert().Equal("100", burned.Amount.String(), "unexpected shares burned")
	s.assertBalance(s.staker, rewardDenom, sdkmath.NewInt(30))
	s.assertBalance(s.staker, underDenom, sdkmath.NewInt(100))
}
