package keeper_test

import (
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/stakevault/keeper"
	"github.com/provlabs/stakevault/types"
)

func (s *TestSuite) TestMsgServerStake() {
	server := keeper.NewMsgServer(s.k)
	coin := sdk.NewInt64Coin(underDenom, 100)
	s.mocks.Bank.FundAccount(s.staker, sdk.NewCoins(coin))

	resp, err := server.Stake(s.ctx, &types.MsgStakeRequest{
		Funder: s.staker.String(),
		Staker: s.staker.String(),
		Amount: coin,
	})
	s.Require().NoError(err, "a valid stake message should succeed")
	s.Assert().Equal("100", resp.Shares.Amount.String(), "unexpected minted shares")

	_, err = server.Stake(s.ctx, &types.MsgStakeRequest{
		Funder: "not-an-address",
		Staker: s.staker.String(),
		Amount: coin,
	})
	s.Require().ErrorIs(err, types.ErrInvalidRequest, "a malformed funder address should fail basic validation")
}

func (s *TestSuite) TestMsgServerCooldownAndRedeem() {
	server := keeper.NewMsgServer(s.k)
	s.fundAndStake(s.staker, 100)

	cooldownResp, err := server.Cooldown(s.ctx, &types.MsgCooldownRequest{Staker: s.staker.String()})
	s.Require().NoError(err, "a valid cooldown message should succeed")
	s.Assert().Equal(s.blockTimestamp(), cooldownResp.Timestamp, "cooldown should start at the block time")

	s.advanceTime(cooldownSeconds)
	redeemResp, err := server.Redeem(s.ctx, &types.MsgRedeemRequest{
		Signer:    s.staker.String(),
		Staker:    s.staker.String(),
		Recipient: s.staker.String(),
		Amount:    sdk.NewInt64Coin(shareDenom, 100),
	})
	s.Require().NoError(err, "a valid redeem message should succeed")
	s.Assert().Equal("100", redeemResp.Assets.Amount.String(), "unexpected redeemed assets")
	s.Assert().Equal("100", redeemResp.Shares.Amount.String(), "unexpected burned shares")
}

func (s *TestSuite) TestMsgServerClaimRewards() {
	server := keeper.NewMsgServer(s.k)
	s.fundAndStake(s.staker, 100)
	s.mocks.Accrual.SetPending(s.staker, sdkmath.NewInt(20))
	s.fundRewardsPool(rewardDenom, 20)

	resp, err := server.ClaimRewards(s.ctx, &types.MsgClaimRewardsRequest{
		Signer:    s.staker.String(),
		Staker:    s.staker.String(),
		Recipient: s.staker.String(),
		Amount:    sdk.NewInt64Coin(rewardDenom, 20),
	})
	s.Require().NoError(err, "a valid claim message should succeed")
	s.Assert().Equal("20", resp.Rewards.Amount.String(), "unexpected rewards paid")
}

func (s *TestSuite) TestMsgServerSlashLifecycle() {
	server := keeper.NewMsgServer(s.k)
	s.fundAndStake(s.staker, 1_000)
	dest := sdk.AccAddress("insuranceAddr_______")

	slashResp, err := server.Slash(s.ctx, &types.MsgSlashRequest{
		Authority:   s.slashAdmin.String(),
		Destination: dest.String(),
		Amount:      sdk.NewInt64Coin(underDenom, 100),
	})
	s.Require().NoError(err, "a valid slash message should succeed")
	s.Assert().Equal("100", slashResp.Slashed.Amount.String(), "unexpected slashed amount")

	_, err = server.ReturnFunds(s.ctx, &types.MsgReturnFundsRequest{
		Funder: dest.String(),
		Amount: sdk.NewInt64Coin(underDenom, 100),
	})
	s.Require().NoError(err, "a valid return funds message should succeed")

	_, err = server.SettleSlashing(s.ctx, &types.MsgSettleSlashingRequest{
		Authority: s.slashAdmin.String(),
	})
	s.Require().NoError(err, "a valid settle message should succeed")
}

func (s *TestSuite) TestMsgServerAdminSettings() {
	server := keeper.NewMsgServer(s.k)

	_, err := server.SetMaxSlashablePercentage(s.ctx, &types.MsgSetMaxSlashablePercentageRequest{
		Authority:  s.slashAdmin.String(),
		Percentage: sdkmath.NewInt(5_000),
	})
	s.Require().NoError(err, "a valid cap update message should succeed")

	_, err = server.SetCooldownSeconds(s.ctx, &types.MsgSetCooldownSecondsRequest{
		Authority: s.cooldownAdmin.String(),
		Seconds:   600,
	})
	s.Require().NoError(err, "a valid cooldown update message should succeed")

	config, err := s.k.GetVaultConfig(s.ctx)
	s.Require().NoError(err)
	s.Assert().Equal("5000", config.MaxSlashablePercentage.String(), "the new cap should be persisted")
	s.Assert().Equal(uint64(600), config.CooldownSeconds, "the new cooldown should be persisted")
}
