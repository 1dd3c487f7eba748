package types

import (
	fmt "fmt"

	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/stakevault/utils"
)

// VaultConfig is the full configuration and mutable state of the vault,
// used at genesis and in queries. Individual fields are stored as separate
// collection items at runtime.
type VaultConfig struct {
	// ShareDenom is the bank denom of the vault shares.
	ShareDenom string `json:"share_denom"`
	// UnderlyingDenom is the bank denom of the pooled asset backing the shares.
	UnderlyingDenom string `json:"underlying_denom"`
	// RewardDenom is the bank denom of the reward stream asset.
	RewardDenom string `json:"reward_denom"`
	// CooldownSeconds is the wait between cooldown activation and redeemability.
	CooldownSeconds uint64 `json:"cooldown_seconds"`
	// UnstakeWindowSeconds bounds how long a redemption stays eligible after
	// the cooldown elapses.
	UnstakeWindowSeconds uint64 `json:"unstake_window_seconds"`
	// MaxSlashablePercentage caps a single slash, in basis points of
	// PercentageFactor. Strictly below PercentageFactor.
	MaxSlashablePercentage sdkmath.Int `json:"max_slashable_percentage"`
	// ExchangeRate is the current assets-per-share rate scaled by RateUnit.
	ExchangeRate sdkmath.Int `json:"exchange_rate"`
	// InPostSlashingPeriod is true between an executed slash and its settlement.
	InPostSlashingPeriod bool `json:"in_post_slashing_period"`
}

// NewVaultConfig creates a vault configuration with a 1:1 exchange rate and
// no active slashing period.
func NewVaultConfig(shareDenom, underlyingDenom, rewardDenom string, cooldownSeconds, unstakeWindow uint64, maxSlashablePct sdkmath.Int) VaultConfig {
	return VaultConfig{
		ShareDenom:             shareDenom,
		UnderlyingDenom:        underlyingDenom,
		RewardDenom:            rewardDenom,
		CooldownSeconds:        cooldownSeconds,
		UnstakeWindowSeconds:   unstakeWindow,
		MaxSlashablePercentage: maxSlashablePct,
		ExchangeRate:           utils.RateUnit,
	}
}

// Validate performs basic validation on the vault configuration.
func (vc VaultConfig) Validate() error {
	if err := sdk.ValidateDenom(vc.ShareDenom); err != nil {
		return fmt.Errorf("invalid share denom: %w", err)
	}
	if err := sdk.ValidateDenom(vc.UnderlyingDenom); err != nil {
		return fmt.Errorf("invalid underlying denom: %w", err)
	}
	if err := sdk.ValidateDenom(vc.RewardDenom); err != nil {
		return fmt.Errorf("invalid reward denom: %w", err)
	}
	if vc.ShareDenom == vc.UnderlyingDenom {
		return fmt.Errorf("share denom %q cannot equal underlying denom", vc.ShareDenom)
	}
	if vc.MaxSlashablePercentage.IsNil() || vc.MaxSlashablePercentage.IsNegative() {
		return fmt.Errorf("max slashable percentage cannot be negative or nil")
	}
	if vc.MaxSlashablePercentage.GTE(sdkmath.NewInt(PercentageFactor)) {
		return fmt.Errorf("max slashable percentage %s must be below %d", vc.MaxSlashablePercentage, PercentageFactor)
	}
	if vc.ExchangeRate.IsNil() || !vc.ExchangeRate.IsPositive() {
		return fmt.Errorf("exchange rate must be positive")
	}
	return nil
}
