package keeper_test

import (
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/provlabs/stakevault/keeper"
	"github.com/provlabs/stakevault/types"
	"github.com/provlabs/stakevault/utils"
)

func (s *TestSuite) TestQueryExchangeRate() {
	server := keeper.NewQueryServer(s.k)

	resp, err := server.ExchangeRate(s.ctx, &types.QueryExchangeRateRequest{})
	s.Require().NoError(err, "exchange rate query should succeed")
	s.Assert().Equal(utils.RateUnit.String(), resp.Rate.String(), "a fresh vault should start at the unit rate")

	_, err = server.ExchangeRate(s.ctx, nil)
	s.Require().Error(err, "a nil request should be rejected")
	s.Assert().Equal(codes.InvalidArgument, status.Code(err), "a nil request should map to InvalidArgument")
}

func (s *TestSuite) TestQueryVaultConfig() {
	server := keeper.NewQueryServer(s.k)

	resp, err := server.VaultConfig(s.ctx, &types.QueryVaultConfigRequest{})
	s.Require().NoError(err, "vault config query should succeed")
	s.Assert().Equal(shareDenom, resp.Config.ShareDenom, "unexpected share denom")
	s.Assert().Equal(underDenom, resp.Config.UnderlyingDenom, "unexpected underlying denom")
	s.Assert().Equal(cooldownSeconds, resp.Config.CooldownSeconds, "unexpected cooldown seconds")
	s.Assert().False(resp.Config.InPostSlashingPeriod, "a fresh vault should not be post-slashing")
}

func (s *TestSuite) TestQueryCooldownOf() {
	server := keeper.NewQueryServer(s.k)
	s.fundAndStake(s.staker, 100)

	resp, err := server.CooldownOf(s.ctx, &types.QueryCooldownOfRequest{Staker: s.staker.String()})
	s.Require().NoError(err, "query for a staker without a cooldown should succeed")
	s.Assert().Zero(resp.Timestamp, "no cooldown should report zero")

	begin, err := s.k.BeginCooldown(s.ctx, s.staker)
	s.Require().NoError(err)

	resp, err = server.CooldownOf(s.ctx, &types.QueryCooldownOfRequest{Staker: s.staker.String()})
	s.Require().NoError(err, "cooldown query should succeed")
	s.Assert().Equal(begin, resp.Timestamp, "unexpected cooldown timestamp")

	_, err = server.CooldownOf(s.ctx, &types.QueryCooldownOfRequest{Staker: "not-an-address"})
	s.Require().Error(err, "a malformed address should be rejected")
	s.Assert().Equal(codes.InvalidArgument, status.Code(err), "a malformed address should map to InvalidArgument")
}

func (s *TestSuite) TestQueryPreviews() {
	server := keeper.NewQueryServer(s.k)

	stakeResp, err := server.PreviewStake(s.ctx, &types.QueryPreviewStakeRequest{
		Amount: sdk.NewInt64Coin(underDenom, 100),
	})
	s.Require().NoError(err, "preview stake query should succeed")
	s.Assert().Equal("100", stakeResp.Shares.Amount.String(), "at the unit rate previews are one to one")

	redeemResp, err := server.PreviewRedeem(s.ctx, &types.QueryPreviewRedeemRequest{
		Shares: sdk.NewInt64Coin(shareDenom, 100),
	})
	s.Require().NoError(err, "preview redeem query should succeed")
	s.Assert().Equal("100", redeemResp.Assets.Amount.String(), "at the unit rate previews are one to one")
}

func (s *TestSuite) TestQueryClaimableRewards() {
	server := keeper.NewQueryServer(s.k)
	s.fundAndStake(s.staker, 100)
	s.Require().NoError(s.k.SetRewardsToClaim(s.ctx, s.staker, sdkmath.NewInt(12)))

	resp, err := server.ClaimableRewards(s.ctx, &types.QueryClaimableRewardsRequest{Staker: s.staker.String()})
	s.Require().NoError(err, "claimable rewards query should succeed")
	s.Assert().Equal("12", resp.Rewards.Amount.String(), "unexpected claimable rewards")
}

func (s *TestSuite) TestQueryTotalAndSlashableAssets() {
	server := keeper.NewQueryServer(s.k)
	s.fundAndStake(s.staker, 1_000)

	totalResp, err := server.TotalAssets(s.ctx, &types.QueryTotalAssetsRequest{})
	s.Require().NoError(err, "total assets query should succeed")
	s.Assert().Equal("1000", totalResp.Assets.Amount.String(), "unexpected total assets")

	maxResp, err := server.MaxSlashableAssets(s.ctx, &types.QueryMaxSlashableAssetsRequest{})
	s.Require().NoError(err, "max slashable assets query should succeed")
	s.Assert().Equal("300", maxResp.Assets.Amount.String(), "unexpected slash cap")
}
