package keeper

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/stakevault/types"
)

var _ types.QueryServer = &queryServer{}

type queryServer struct {
	*Keeper
}

// NewQueryServer creates a new QueryServer for the module.
func NewQueryServer(keeper *Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

// ExchangeRate returns the current RateUnit-scaled assets-per-share rate.
func (k queryServer) ExchangeRate(goCtx context.Context, req *types.QueryExchangeRateRequest) (*types.QueryExchangeRateResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	rate, err := k.Keeper.GetExchangeRate(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryExchangeRateResponse{Rate: rate}, nil
}

// VaultConfig returns the vault configuration and state.
func (k queryServer) VaultConfig(goCtx context.Context, req *types.QueryVaultConfigRequest) (*types.QueryVaultConfigResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	config, err := k.Keeper.GetVaultConfig(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryVaultConfigResponse{Config: config}, nil
}

// CooldownOf returns a staker's cooldown timestamp; zero means none.
func (k queryServer) CooldownOf(goCtx context.Context, req *types.QueryCooldownOfRequest) (*types.QueryCooldownOfResponse, error) {
	if req == nil || req.Staker == "" {
		return nil, status.Error(codes.InvalidArgument, "staker must be provided")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	staker, err := sdk.AccAddressFromBech32(req.Staker)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid staker: %v", err)
	}
	timestamp, err := k.Keeper.GetCooldownTimestamp(ctx, staker)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryCooldownOfResponse{Timestamp: timestamp}, nil
}

// PreviewStake returns the shares a stake would mint at the current rate.
func (k queryServer) PreviewStake(goCtx context.Context, req *types.QueryPreviewStakeRequest) (*types.QueryPreviewStakeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	shares, err := k.Keeper.PreviewStake(ctx, req.Amount.Amount)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryPreviewStakeResponse{Shares: shares}, nil
}

// PreviewRedeem returns the assets a redemption would pay at the current rate.
func (k queryServer) PreviewRedeem(goCtx context.Context, req *types.QueryPreviewRedeemRequest) (*types.QueryPreviewRedeemResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	assets, err := k.Keeper.PreviewRedeem(ctx, req.Shares.Amount)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryPreviewRedeemResponse{Assets: assets}, nil
}

// ClaimableRewards returns a staker's claimable reward total including
// uncommitted accrual.
func (k queryServer) ClaimableRewards(goCtx context.Context, req *types.QueryClaimableRewardsRequest) (*types.QueryClaimableRewardsResponse, error) {
	if req == nil || req.Staker == "" {
		return nil, status.Error(codes.InvalidArgument, "staker must be provided")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	staker, err := sdk.AccAddressFromBech32(req.Staker)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid staker: %v", err)
	}
	rewards, err := k.Keeper.ClaimableRewards(ctx, staker)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryClaimableRewardsResponse{Rewards: rewards}, nil
}

// TotalAssets returns the assets currently backing all shares.
func (k queryServer) TotalAssets(goCtx context.Context, req *types.QueryTotalAssetsRequest) (*types.QueryTotalAssetsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	assets, err := k.Keeper.TotalAssets(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryTotalAssetsResponse{Assets: assets}, nil
}

// MaxSlashableAssets returns the current slash cap in assets.
func (k queryServer) MaxSlashableAssets(goCtx context.Context, req *types.QueryMaxSlashableAssetsRequest) (*types.QueryMaxSlashableAssetsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	assets, err := k.Keeper.MaxSlashableAssets(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryMaxSlashableAssetsResponse{Assets: assets}, nil
}
