package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/stakevault/types"
)

var _ types.MsgServer = &msgServer{}

type msgServer struct {
	*Keeper
}

// NewMsgServer creates a new MsgServer for the module.
func NewMsgServer(keeper *Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

// Stake stakes underlying assets, minting shares to the staker.
func (k msgServer) Stake(goCtx context.Context, msg *types.MsgStakeRequest) (*types.MsgStakeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrInvalidRequest.Wrap(err.Error())
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	shares, err := k.Keeper.Stake(ctx, sdk.MustAccAddressFromBech32(msg.Funder), sdk.MustAccAddressFromBech32(msg.Staker), msg.Amount)
	if err != nil {
		return nil, err
	}
	return &types.MsgStakeResponse{Shares: shares}, nil
}

// StakeWithPermit stakes with a signature-based spending approval.
func (k msgServer) StakeWithPermit(goCtx context.Context, msg *types.MsgStakeWithPermitRequest) (*types.MsgStakeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrInvalidRequest.Wrap(err.Error())
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	shares, err := k.Keeper.StakeWithPermit(ctx, sdk.MustAccAddressFromBech32(msg.Funder), sdk.MustAccAddressFromBech32(msg.Staker), msg.Amount, msg.Deadline, msg.Signature)
	if err != nil {
		return nil, err
	}
	return &types.MsgStakeResponse{Shares: shares}, nil
}

// Cooldown activates the redemption cooldown for the staker.
func (k msgServer) Cooldown(goCtx context.Context, msg *types.MsgCooldownRequest) (*types.MsgCooldownResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrInvalidRequest.Wrap(err.Error())
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	timestamp, err := k.Keeper.BeginCooldown(ctx, sdk.MustAccAddressFromBech32(msg.Staker))
	if err != nil {
		return nil, err
	}
	return &types.MsgCooldownResponse{Timestamp: timestamp}, nil
}

// Redeem burns shares, paying the underlying to the recipient.
func (k msgServer) Redeem(goCtx context.Context, msg *types.MsgRedeemRequest) (*types.MsgRedeemResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrInvalidRequest.Wrap(err.Error())
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	assets, shares, err := k.Keeper.Redeem(ctx,
		sdk.MustAccAddressFromBech32(msg.Signer),
		sdk.MustAccAddressFromBech32(msg.Staker),
		sdk.MustAccAddressFromBech32(msg.Recipient),
		msg.Amount,
	)
	if err != nil {
		return nil, err
	}
	return &types.MsgRedeemResponse{Assets: assets, Shares: shares}, nil
}

// ClaimRewards pays accrued rewards to the recipient.
func (k msgServer) ClaimRewards(goCtx context.Context, msg *types.MsgClaimRewardsRequest) (*types.MsgClaimRewardsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrInvalidRequest.Wrap(err.Error())
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	rewards, err := k.Keeper.ClaimRewards(ctx,
		sdk.MustAccAddressFromBech32(msg.Signer),
		sdk.MustAccAddressFromBech32(msg.Staker),
		sdk.MustAccAddressFromBech32(msg.Recipient),
		msg.Amount,
	)
	if err != nil {
		return nil, err
	}
	return &types.MsgClaimRewardsResponse{Rewards: rewards}, nil
}

// ClaimRewardsAndStake claims rewards into the pool and restakes them.
func (k msgServer) ClaimRewardsAndStake(goCtx context.Context, msg *types.MsgClaimRewardsAndStakeRequest) (*types.MsgClaimRewardsAndStakeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrInvalidRequest.Wrap(err.Error())
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	rewards, shares, err := k.Keeper.ClaimRewardsAndStake(ctx,
		sdk.MustAccAddressFromBech32(msg.Signer),
		sdk.MustAccAddressFromBech32(msg.Staker),
		sdk.MustAccAddressFromBech32(msg.Recipient),
		msg.Amount,
	)
	if err != nil {
		return nil, err
	}
	return &types.MsgClaimRewardsAndStakeResponse{Rewards: rewards, Shares: shares}, nil
}

// ClaimRewardsAndRedeem performs a claim followed by a redeem.
func (k msgServer) ClaimRewardsAndRedeem(goCtx context.Context, msg *types.MsgClaimRewardsAndRedeemRequest) (*types.MsgClaimRewardsAndRedeemResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrInvalidRequest.Wrap(err.Error())
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	rewards, assets, shares, err := k.Keeper.ClaimRewardsAndRedeem(ctx,
		sdk.MustAccAddressFromBech32(msg.Signer),
		sdk.MustAccAddressFromBech32(msg.Staker),
		sdk.MustAccAddressFromBech32(msg.Recipient),
		msg.ClaimAmount,
		msg.RedeemAmount,
	)
	if err != nil {
		return nil, err
	}
	return &types.MsgClaimRewardsAndRedeemResponse{Rewards: rewards, Assets: assets, Shares: shares}, nil
}

// Slash removes pooled assets to cover an external loss.
func (k msgServer) Slash(goCtx context.Context, msg *types.MsgSlashRequest) (*types.MsgSlashResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrInvalidRequest.Wrap(err.Error())
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	slashed, err := k.Keeper.Slash(ctx,
		sdk.MustAccAddressFromBech32(msg.Authority),
		sdk.MustAccAddressFromBech32(msg.Destination),
		msg.Amount,
	)
	if err != nil {
		return nil, err
	}
	return &types.MsgSlashResponse{Slashed: slashed}, nil
}

// ReturnFunds returns assets into the pool, raising share value.
func (k msgServer) ReturnFunds(goCtx context.Context, msg *types.MsgReturnFundsRequest) (*types.MsgReturnFundsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrInvalidRequest.Wrap(err.Error())
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.Keeper.ReturnFunds(ctx, sdk.MustAccAddressFromBech32(msg.Funder), msg.Amount); err != nil {
		return nil, err
	}
	return &types.MsgReturnFundsResponse{}, nil
}

// SettleSlashing ends the post-slashing period.
func (k msgServer) SettleSlashing(goCtx context.Context, msg *types.MsgSettleSlashingRequest) (*types.MsgSettleSlashingResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrInvalidRequest.Wrap(err.Error())
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.Keeper.SettleSlashing(ctx, sdk.MustAccAddressFromBech32(msg.Authority)); err != nil {
		return nil, err
	}
	return &types.MsgSettleSlashingResponse{}, nil
}

// SetMaxSlashablePercentage updates the slash cap.
func (k msgServer) SetMaxSlashablePercentage(goCtx context.Context, msg *types.MsgSetMaxSlashablePercentageRequest) (*types.MsgSetMaxSlashablePercentageResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrInvalidRequest.Wrap(err.Error())
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.Keeper.SetMaxSlashablePercentage(ctx, sdk.MustAccAddressFromBech32(msg.Authority), msg.Percentage); err != nil {
		return nil, err
	}
	return &types.MsgSetMaxSlashablePercentageResponse{}, nil
}

// SetCooldownSeconds updates the cooldown duration.
func (k msgServer) SetCooldownSeconds(goCtx context.Context, msg *types.MsgSetCooldownSecondsRequest) (*types.MsgSetCooldownSecondsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrInvalidRequest.Wrap(err.Error())
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.Keeper.SetCooldownSeconds(ctx, sdk.MustAccAddressFromBech32(msg.Authority), msg.Seconds); err != nil {
		return nil, err
	}
	return &types.MsgSetCooldownSecondsResponse{}, nil
}
