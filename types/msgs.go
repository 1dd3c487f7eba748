package types

import (
	context "context"
	fmt "fmt"

	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgServer is the transaction-handling surface of the module.
type MsgServer interface {
	Stake(ctx context.Context, msg *MsgStakeRequest) (*MsgStakeResponse, error)
	StakeWithPermit(ctx context.Context, msg *MsgStakeWithPermitRequest) (*MsgStakeResponse, error)
	Cooldown(ctx context.Context, msg *MsgCooldownRequest) (*MsgCooldownResponse, error)
	Redeem(ctx context.Context, msg *MsgRedeemRequest) (*MsgRedeemResponse, error)
	ClaimRewards(ctx context.Context, msg *MsgClaimRewardsRequest) (*MsgClaimRewardsResponse, error)
	ClaimRewardsAndStake(ctx context.Context, msg *MsgClaimRewardsAndStakeRequest) (*MsgClaimRewardsAndStakeResponse, error)
	ClaimRewardsAndRedeem(ctx context.Context, msg *MsgClaimRewardsAndRedeemRequest) (*MsgClaimRewardsAndRedeemResponse, error)
	Slash(ctx context.Context, msg *MsgSlashRequest) (*MsgSlashResponse, error)
	ReturnFunds(ctx context.Context, msg *MsgReturnFundsRequest) (*MsgReturnFundsResponse, error)
	SettleSlashing(ctx context.Context, msg *MsgSettleSlashingRequest) (*MsgSettleSlashingResponse, error)
	SetMaxSlashablePercentage(ctx context.Context, msg *MsgSetMaxSlashablePercentageRequest) (*MsgSetMaxSlashablePercentageResponse, error)
	SetCooldownSeconds(ctx context.Context, msg *MsgSetCooldownSecondsRequest) (*MsgSetCooldownSecondsResponse, error)
}

// MsgStakeRequest stakes underlying assets from Funder, crediting shares to Staker.
type MsgStakeRequest struct {
	Funder string   `json:"funder"`
	Staker string   `json:"staker"`
	Amount sdk.Coin `json:"amount"`
}

// MsgStakeResponse reports the shares minted by a stake.
type MsgStakeResponse struct {
	Shares sdk.Coin `json:"shares"`
}

// MsgStakeWithPermitRequest stakes with a signature-based spending approval
// instead of a prior bank authorization.
type MsgStakeWithPermitRequest struct {
	Funder    string   `json:"funder"`
	Staker    string   `json:"staker"`
	Amount    sdk.Coin `json:"amount"`
	Deadline  uint64   `json:"deadline"`
	Signature []byte   `json:"signature"`
}

// MsgCooldownRequest activates the redemption cooldown for Staker.
type MsgCooldownRequest struct {
	Staker string `json:"staker"`
}

// MsgCooldownResponse reports the activated cooldown timestamp.
type MsgCooldownResponse struct {
	Timestamp uint64 `json:"timestamp"`
}

// MsgRedeemRequest burns up to Amount shares from Staker, paying the
// underlying to Recipient. Signer must be the staker or the claim helper.
type MsgRedeemRequest struct {
	Signer    string   `json:"signer"`
	Staker    string   `json:"staker"`
	Recipient string   `json:"recipient"`
	Amount    sdk.Coin `json:"amount"`
}

// MsgRedeemResponse reports the assets paid and shares burned.
type MsgRedeemResponse struct {
	Assets sdk.Coin `json:"assets"`
	Shares sdk.Coin `json:"shares"`
}

// MsgClaimRewardsRequest pays up to Amount of Staker's accrued rewards to
// Recipient. Signer must be the staker or the claim helper.
type MsgClaimRewardsRequest struct {
	Signer    string   `json:"signer"`
	Staker    string   `json:"staker"`
	Recipient string   `json:"recipient"`
	Amount    sdk.Coin `json:"amount"`
}

// MsgClaimRewardsResponse reports the rewards paid out.
type MsgClaimRewardsResponse struct {
	Rewards sdk.Coin `json:"rewards"`
}

// MsgClaimRewardsAndStakeRequest claims Staker's rewards into the pool and
// restakes them to Recipient. Claim-helper only.
type MsgClaimRewardsAndStakeRequest struct {
	Signer    string   `json:"signer"`
	Staker    string   `json:"staker"`
	Recipient string   `json:"recipient"`
	Amount    sdk.Coin `json:"amount"`
}

// MsgClaimRewardsAndStakeResponse reports the rewards restaked and shares minted.
type MsgClaimRewardsAndStakeResponse struct {
	Rewards sdk.Coin `json:"rewards"`
	Shares  sdk.Coin `json:"shares"`
}

// MsgClaimRewardsAndRedeemRequest performs a claim followed by a redeem with
// independent amounts.
type MsgClaimRewardsAndRedeemRequest struct {
	Signer       string   `json:"signer"`
	Staker       string   `json:"staker"`
	Recipient    string   `json:"recipient"`
	ClaimAmount  sdk.Coin `json:"claim_amount"`
	RedeemAmount sdk.Coin `json:"redeem_amount"`
}

// MsgClaimRewardsAndRedeemResponse reports the rewards paid and assets redeemed.
type MsgClaimRewardsAndRedeemResponse struct {
	Rewards sdk.Coin `json:"rewards"`
	Assets  sdk.Coin `json:"assets"`
	Shares  sdk.Coin `json:"shares"`
}

// MsgSlashRequest removes up to Amount of pooled assets to Destination.
// Slashing-admin only.
type MsgSlashRequest struct {
	Authority   string   `json:"authority"`
	Destination string   `json:"destination"`
	Amount      sdk.Coin `json:"amount"`
}

// MsgSlashResponse reports the amount actually slashed after capping.
type MsgSlashResponse struct {
	Slashed sdk.Coin `json:"slashed"`
}

// MsgReturnFundsRequest returns assets from Funder into the pool.
type MsgReturnFundsRequest struct {
	Funder string   `json:"funder"`
	Amount sdk.Coin `json:"amount"`
}

// MsgReturnFundsResponse is the response to MsgReturnFundsRequest.
type MsgReturnFundsResponse struct{}

// MsgSettleSlashingRequest ends the post-slashing period. Slashing-admin only.
type MsgSettleSlashingRequest struct {
	Authority string `json:"authority"`
}

// MsgSettleSlashingResponse is the response to MsgSettleSlashingRequest.
type MsgSettleSlashingResponse struct{}

// MsgSetMaxSlashablePercentageRequest updates the slash cap. Slashing-admin only.
type MsgSetMaxSlashablePercentageRequest struct {
	Authority  string      `json:"authority"`
	Percentage sdkmath.Int `json:"percentage"`
}

// MsgSetMaxSlashablePercentageResponse is the response to MsgSetMaxSlashablePercentageRequest.
type MsgSetMaxSlashablePercentageResponse struct{}

// MsgSetCooldownSecondsRequest updates the cooldown duration. Cooldown-admin only.
type MsgSetCooldownSecondsRequest struct {
	Authority string `json:"authority"`
	Seconds   uint64 `json:"seconds"`
}

// MsgSetCooldownSecondsResponse is the response to MsgSetCooldownSecondsRequest.
type MsgSetCooldownSecondsResponse struct{}

func validateAddress(field, addr string) error {
	if _, err := sdk.AccAddressFromBech32(addr); err != nil {
		return fmt.Errorf("invalid %s address: %q: %w", field, addr, err)
	}
	return nil
}

func validateCoin(field string, coin sdk.Coin) error {
	if err := coin.Validate(); err != nil {
		return fmt.Errorf("invalid %s: %q: %w", field, coin.String(), err)
	}
	return nil
}

// ValidateBasic performs stateless validation on MsgStakeRequest.
func (m MsgStakeRequest) ValidateBasic() error {
	if err := validateAddress("funder", m.Funder); err != nil {
		return err
	}
	if err := validateAddress("staker", m.Staker); err != nil {
		return err
	}
	return validateCoin("amount", m.Amount)
}

// ValidateBasic performs stateless validation on MsgStakeWithPermitRequest.
func (m MsgStakeWithPermitRequest) ValidateBasic() error {
	if err := validateAddress("funder", m.Funder); err != nil {
		return err
	}
	if err := validateAddress("staker", m.Staker); err != nil {
		return err
	}
	if len(m.Signature) == 0 {
		return fmt.Errorf("signature cannot be empty")
	}
	return validateCoin("amount", m.Amount)
}

// ValidateBasic performs stateless validation on MsgCooldownRequest.
func (m MsgCooldownRequest) ValidateBasic() error {
	return validateAddress("staker", m.Staker)
}

// ValidateBasic performs stateless validation on MsgRedeemRequest.
func (m MsgRedeemRequest) ValidateBasic() error {
	if err := validateAddress("signer", m.Signer); err != nil {
		return err
	}
	if err := validateAddress("staker", m.Staker); err != nil {
		return err
	}
	if err := validateAddress("recipient", m.Recipient); err != nil {
		return err
	}
	return validateCoin("amount", m.Amount)
}

// ValidateBasic performs stateless validation on MsgClaimRewardsRequest.
func (m MsgClaimRewardsRequest) ValidateBasic() error {
	if err := validateAddress("signer", m.Signer); err != nil {
		return err
	}
	if err := validateAddress("staker", m.Staker); err != nil {
		return err
	}
	if err := validateAddress("recipient", m.Recipient); err != nil {
		return err
	}
	return validateCoin("amount", m.Amount)
}

// ValidateBasic performs stateless validation on MsgClaimRewardsAndStakeRequest.
func (m MsgClaimRewardsAndStakeRequest) ValidateBasic() error {
	if err := validateAddress("signer", m.Signer); err != nil {
		return err
	}
	if err := validateAddress("staker", m.Staker); err != nil {
		return err
	}
	if err := validateAddress("recipient", m.Recipient); err != nil {
		return err
	}
	return validateCoin("amount", m.Amount)
}

// ValidateBasic performs stateless validation on MsgClaimRewardsAndRedeemRequest.
func (m MsgClaimRewardsAndRedeemRequest) ValidateBasic() error {
	if err := validateAddress("signer", m.Signer); err != nil {
		return err
	}
	if err := validateAddress("staker", m.Staker); err != nil {
		return err
	}
	if err := validateAddress("recipient", m.Recipient); err != nil {
		return err
	}
	if err := validateCoin("claim amount", m.ClaimAmount); err != nil {
		return err
	}
	return validateCoin("redeem amount", m.RedeemAmount)
}

// ValidateBasic performs stateless validation on MsgSlashRequest.
func (m MsgSlashRequest) ValidateBasic() error {
	if err := validateAddress("authority", m.Authority); err != nil {
		return err
	}
	if err := validateAddress("destination", m.Destination); err != nil {
		return err
	}
	return validateCoin("amount", m.Amount)
}

// ValidateBasic performs stateless validation on MsgReturnFundsRequest.
func (m MsgReturnFundsRequest) ValidateBasic() error {
	if err := validateAddress("funder", m.Funder); err != nil {
		return err
	}
	return validateCoin("amount", m.Amount)
}

// ValidateBasic performs stateless validation on MsgSettleSlashingRequest.
func (m MsgSettleSlashingRequest) ValidateBasic() error {
	return validateAddress("authority", m.Authority)
}

// ValidateBasic performs stateless validation on MsgSetMaxSlashablePercentageRequest.
func (m MsgSetMaxSlashablePercentageRequest) ValidateBasic() error {
	if err := validateAddress("authority", m.Authority); err != nil {
		return err
	}
	if m.Percentage.IsNil() || m.Percentage.IsNegative() {
		return fmt.Errorf("percentage cannot be negative or nil")
	}
	return nil
}

// ValidateBasic performs stateless validation on MsgSetCooldownSecondsRequest.
func (m MsgSetCooldownSecondsRequest) ValidateBasic() error {
	return validateAddress("authority", m.Authority)
}
