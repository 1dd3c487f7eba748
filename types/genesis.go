package types

import (
	fmt "fmt"

	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// CooldownEntry is a staker's cooldown timestamp for genesis import/export.
type CooldownEntry struct {
	Staker    string `json:"staker"`
	Timestamp uint64 `json:"timestamp"`
}

// RewardEntry is a staker's committed unclaimed reward balance for genesis
// import/export.
type RewardEntry struct {
	Staker string      `json:"staker"`
	Amount sdkmath.Int `json:"amount"`
}

// GenesisState is the stakevault module's genesis state.
type GenesisState struct {
	Config    VaultConfig     `json:"config"`
	Cooldowns []CooldownEntry `json:"cooldowns"`
	Rewards   []RewardEntry   `json:"rewards"`
}

// NewGenesisState creates a genesis state with the given vault configuration.
func NewGenesisState(config VaultConfig) *GenesisState {
	return &GenesisState{Config: config}
}

// DefaultGenesisState returns a genesis state with a placeholder vault
// configuration suitable for tests and local networks.
func DefaultGenesisState() *GenesisState {
	return NewGenesisState(NewVaultConfig(
		"stkvault", "underlying", "reward",
		864_000,  // 10 day cooldown
		172_800,  // 2 day unstake window
		sdkmath.NewInt(3_000),
	))
}

// Validate performs basic validation on the genesis state.
func (gs GenesisState) Validate() error {
	if err := gs.Config.Validate(); err != nil {
		return fmt.Errorf("invalid vault config: %w", err)
	}
	seen := make(map[string]bool)
	for _, entry := range gs.Cooldowns {
		if _, err := sdk.AccAddressFromBech32(entry.Staker); err != nil {
			return fmt.Errorf("invalid cooldown staker address %q: %w", entry.Staker, err)
		}
		if seen[entry.Staker] {
			return fmt.Errorf("duplicate cooldown entry for %q", entry.Staker)
		}
		seen[entry.Staker] = true
		if entry.Timestamp == 0 {
			return fmt.Errorf("cooldown entry for %q has zero timestamp", entry.Staker)
		}
	}
	seen = make(map[string]bool)
	for _, entry := range gs.Rewards {
		if _, err := sdk.AccAddressFromBech32(entry.Staker); err != nil {
			return fmt.Errorf("invalid reward staker address %q: %w", entry.Staker, err)
		}
		if seen[entry.Staker] {
			return fmt.Errorf("duplicate reward entry for %q", entry.Staker)
		}
		seen[entry.Staker] = true
		if entry.Amount.IsNil() || entry.Amount.IsNegative() {
			return fmt.Errorf("reward entry for %q has invalid amount", entry.Staker)
		}
	}
	return nil
}
