package types

import (
	context "context"

	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// QueryServer is the read-only surface of the module.
type QueryServer interface {
	ExchangeRate(ctx context.Context, req *QueryExchangeRateRequest) (*QueryExchangeRateResponse, error)
	VaultConfig(ctx context.Context, req *QueryVaultConfigRequest) (*QueryVaultConfigResponse, error)
	CooldownOf(ctx context.Context, req *QueryCooldownOfRequest) (*QueryCooldownOfResponse, error)
	PreviewStake(ctx context.Context, req *QueryPreviewStakeRequest) (*QueryPreviewStakeResponse, error)
	PreviewRedeem(ctx context.Context, req *QueryPreviewRedeemRequest) (*QueryPreviewRedeemResponse, error)
	ClaimableRewards(ctx context.Context, req *QueryClaimableRewardsRequest) (*QueryClaimableRewardsResponse, error)
	TotalAssets(ctx context.Context, req *QueryTotalAssetsRequest) (*QueryTotalAssetsResponse, error)
	MaxSlashableAssets(ctx context.Context, req *QueryMaxSlashableAssetsRequest) (*QueryMaxSlashableAssetsResponse, error)
}

// QueryExchangeRateRequest asks for the current exchange rate.
type QueryExchangeRateRequest struct{}

// QueryExchangeRateResponse carries the RateUnit-scaled assets-per-share rate.
type QueryExchangeRateResponse struct {
	Rate sdkmath.Int `json:"rate"`
}

// QueryVaultConfigRequest asks for the vault configuration and state.
type QueryVaultConfigRequest struct{}

// QueryVaultConfigResponse carries the full vault configuration.
type QueryVaultConfigResponse struct {
	Config VaultConfig `json:"config"`
}

// QueryCooldownOfRequest asks for a staker's cooldown timestamp.
type QueryCooldownOfRequest struct {
	Staker string `json:"staker"`
}

// QueryCooldownOfResponse carries the cooldown timestamp; zero means no
// active cooldown.
type QueryCooldownOfResponse struct {
	Timestamp uint64 `json:"timestamp"`
}

// QueryPreviewStakeRequest asks how many shares a stake would mint.
type QueryPreviewStakeRequest struct {
	Amount sdk.Coin `json:"amount"`
}

// QueryPreviewStakeResponse carries the shares a stake would mint.
type QueryPreviewStakeResponse struct {
	Shares sdk.Coin `json:"shares"`
}

// QueryPreviewRedeemRequest asks how many assets a redemption would pay.
type QueryPreviewRedeemRequest struct {
	Shares sdk.Coin `json:"shares"`
}

// QueryPreviewRedeemResponse carries the assets a redemption would pay.
type QueryPreviewRedeemResponse struct {
	Assets sdk.Coin `json:"assets"`
}

// QueryClaimableRewardsRequest asks for a staker's claimable reward total,
// including uncommitted accrual.
type QueryClaimableRewardsRequest struct {
	Staker string `json:"staker"`
}

// QueryClaimableRewardsResponse carries the staker's claimable reward total.
type QueryClaimableRewardsResponse struct {
	Rewards sdk.Coin `json:"rewards"`
}

// QueryTotalAssetsRequest asks for the assets currently backing all shares.
type QueryTotalAssetsRequest struct{}

// QueryTotalAssetsResponse carries the assets currently backing all shares.
type QueryTotalAssetsResponse struct {
	Assets sdk.Coin `json:"assets"`
}

// QueryMaxSlashableAssetsRequest asks how much a single slash could remove.
type QueryMaxSlashableAssetsRequest struct{}

// QueryMaxSlashableAssetsResponse carries the current slash cap in assets.
type QueryMaxSlashableAssetsResponse struct {
	Assets sdk.Coin `json:"assets"`
}
