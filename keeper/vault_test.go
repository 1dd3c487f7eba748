package keeper_test

import (
	"errors"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/stakevault/types"
	"github.com/provlabs/stakevault/utils/mocks"
)

func (s *TestSuite) TestStakeMintsSharesAtParity() {
	shares := s.fundAndStake(s.staker, 100)

	s.Assert().Equal(shareDenom, shares.Denom, "minted shares should use the share denom")
	s.Assert().Equal("100", shares.Amount.String(), "at the initial rate 100 assets should mint 100 shares")

	s.assertBalance(s.staker, shareDenom, sdkmath.NewInt(100))
	s.assertBalance(s.staker, underDenom, sdkmath.ZeroInt())
	s.assertBalance(mocks.ModuleAddress(types.PoolName), underDenom, sdkmath.NewInt(100))
	s.assertEventEmitted(types.EventTypeStaked)
}

func (s *TestSuite) TestStakeRejectsBadAmounts() {
	s.mocks.Bank.FundAccount(s.staker, sdk.NewCoins(sdk.NewInt64Coin(underDenom, 100)))

	_, err := s.k.Stake(s.ctx, s.staker, s.staker, sdk.NewInt64Coin(underDenom, 0))
	s.Require().ErrorIs(err, types.ErrInvalidAmount, "zero stake should be rejected")

	_, err = s.k.Stake(s.ctx, s.staker, s.staker, sdk.NewInt64Coin("otherdenom", 100))
	s.Require().ErrorIs(err, types.ErrInvalidAmount, "staking a non-underlying denom should be rejected")
}

func (s *TestSuite) TestStakeForAnotherRecipient() {
	recipient := sdk.AccAddress("recipientAddr_______")
	coin := sdk.NewInt64Coin(underDenom, 75)
	s.mocks.Bank.FundAccount(s.staker, sdk.NewCoins(coin))

	shares, err := s.k.Stake(s.ctx, s.staker, recipient, coin)
	s.Require().NoError(err, "staking on behalf of another recipient should succeed")

	s.Assert().Equal("75", shares.Amount.String(), "unexpected minted shares")
	s.assertBalance(recipient, shareDenom, sdkmath.NewInt(75))
	s.assertBalance(s.staker, shareDenom, sdkmath.ZeroInt())
}

func (s *TestSuite) TestStakeWithPermit() {
	coin := sdk.NewInt64Coin(underDenom, 50)
	s.mocks.Bank.FundAccount(s.staker, sdk.NewCoins(coin))

	shares, err := s.k.StakeWithPermit(s.ctx, s.staker, s.staker, coin, s.blockTimestamp()+60, []byte("sig"))
	s.Require().NoError(err, "stake with a valid permit should succeed")
	s.Assert().Equal("50", shares.Amount.String(), "unexpected minted shares")
	s.Assert().Equal(1, s.mocks.Permit.Calls, "the permit keeper should be consulted exactly once")
}

func (s *TestSuite) TestStakeWithPermitRejected() {
	s.mocks.Permit.Err = errors.New("bad signature")
	coin := sdk.NewInt64Coin(underDenom, 50)
	s.mocks.Bank.FundAccount(s.staker, sdk.NewCoins(coin))

	_, err := s.k.StakeWithPermit(s.ctx, s.staker, s.staker, coin, s.blockTimestamp()+60, []byte("sig"))
	s.Require().ErrorIs(err, types.ErrUnauthorized, "a rejected permit should fail the stake")
	s.assertBalance(s.staker, shareDenom, sdkmath.ZeroInt())
}

func (s *TestSuite) TestRedeemPaysRecipient() {
	s.fundAndStake(s.staker, 100)
	s.enterRedeemWindow(s.staker)

	recipient := sdk.AccAddress("recipientAddr_______")
	assets, burned, err := s.k.Redeem(s.ctx, s.staker, s.staker, recipient, sdk.NewInt64Coin(shareDenom, 40))
	s.Require().NoError(err, "redeem inside the unstake window should succeed")

	s.Assert().Equal("40", assets.Amount.String(), "at parity 40 shares should pay 40 assets")
	s.Assert().Equal("40", burned.Amount.String(), "unexpected burned shares")
	s.assertBalance(recipient, underDenom, sdkmath.NewInt(40))
	s.assertBalance(s.staker, shareDenom, sdkmath.NewInt(60))
	s.assertEventEmitted(types.EventTypeRedeemed)

	// A partial exit keeps the cooldown in place.
	ts, err := s.k.GetCooldownTimestamp(s.ctx, s.staker)
	s.Require().NoError(err)
	s.Assert().NotZero(ts, "partial redeem should keep the cooldown")
}

func (s *TestSuite) TestRedeemFullExitResetsCooldown() {
	s.fundAndStake(s.staker, 100)
	s.enterRedeemWindow(s.staker)

	_, burned, err := s.k.Redeem(s.ctx, s.staker, s.staker, s.staker, sdk.NewInt64Coin(shareDenom, 100))
	s.Require().NoError(err, "full redeem should succeed")
	s.Assert().Equal("100", burned.Amount.String(), "unexpected burned shares")

	ts, err := s.k.GetCooldownTimestamp(s.ctx, s.staker)
	s.Require().NoError(err)
	s.Assert().Zero(ts, "a redeem that empties the balance should reset the cooldown")

	totalShares, err := s.k.TotalShares(s.ctx)
	s.Require().NoError(err)
	s.Assert().True(totalShares.IsZero(), "share supply should be empty after a full exit")
}

func (s *TestSuite) TestRedeemClampsToBalance() {
	s.fundAndStake(s.staker, 100)
	s.enterRedeemWindow(s.staker)

	assets, burned, err := s.k.Redeem(s.ctx, s.staker, s.staker, s.staker, sdk.NewInt64Coin(shareDenom, 150))
	s.Require().NoError(err, "redeeming more than the balance should clamp, not fail")
	s.Assert().Equal("100", burned.Amount.String(), "burn should clamp to the share balance")
	s.Assert().Equal("100", assets.Amount.String(), "unexpected assets paid")
}

func (s *TestSuite) TestRedeemOnBehalfRequiresClaimHelper() {
	s.fundAndStake(s.staker, 100)
	s.enterRedeemWindow(s.staker)
	amount := sdk.NewInt64Coin(shareDenom, 10)

	intruder := sdk.AccAddress("intruderAddr________")
	_, _, err := s.k.Redeem(s.ctx, intruder, s.staker, intruder, amount)
	s.Require().ErrorIs(err, types.ErrUnauthorized, "a third party without the claim helper role must not redeem for a staker")

	assets, _, err := s.k.Redeem(s.ctx, s.claimHelper, s.staker, s.staker, amount)
	s.Require().NoError(err, "the claim helper should be able to redeem on behalf of a staker")
	s.Assert().Equal("10", assets.Amount.String(), "unexpected assets paid")
	s.assertBalance(s.staker, underDenom, sdkmath.NewInt(10))
}

func (s *TestSuite) TestRedeemRejectsBadAmounts() {
	s.fundAndStake(s.staker, 100)
	s.enterRedeemWindow(s.staker)

	_, _, err := s.k.Redeem(s.ctx, s.staker, s.staker, s.staker, sdk.NewInt64Coin(shareDenom, 0))
	s.Require().ErrorIs(err, types.ErrInvalidAmount, "zero redeem should be rejected")

	_, _, err = s.k.Redeem(s.ctx, s.staker, s.staker, s.staker, sdk.NewInt64Coin(underDenom, 10))
	s.Require().ErrorIs(err, types.ErrInvalidAmount, "redeeming a non-share denom should be rejected")
}
