package types

import (
	"cosmossdk.io/collections"
	"github.com/cometbft/cometbft/crypto"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "stakevault"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// PoolName is the module account holding the pooled underlying asset.
	PoolName = ModuleName

	// RewardsPoolName is the module account the reward asset is paid from.
	RewardsPoolName = ModuleName + "_rewards"
)

// Role identifiers consulted in the external role registry. The registry owns
// assignment and rotation; the vault only checks the current holder.
const (
	RoleSlashingAdmin uint64 = iota
	RoleCooldownAdmin
	RoleClaimHelper
)

// PercentageFactor is the denominator for MaxSlashablePercentage, in basis
// points. The configured percentage must be strictly below it.
const PercentageFactor = int64(10_000)

var (
	// ShareDenomKey is the prefix for the share denom item.
	ShareDenomKey = collections.NewPrefix(0)
	// UnderlyingDenomKey is the prefix for the underlying denom item.
	UnderlyingDenomKey = collections.NewPrefix(1)
	// RewardDenomKey is the prefix for the reward denom item.
	RewardDenomKey = collections.NewPrefix(2)
	// ExchangeRateKey is the prefix for the current exchange rate item.
	ExchangeRateKey = collections.NewPrefix(3)
	// MaxSlashablePctKey is the prefix for the max slashable percentage item.
	MaxSlashablePctKey = collections.NewPrefix(4)
	// PostSlashingKey is the prefix for the unsettled-slash flag item.
	PostSlashingKey = collections.NewPrefix(5)
	// CooldownSecondsKey is the prefix for the cooldown duration item.
	CooldownSecondsKey = collections.NewPrefix(6)
	// UnstakeWindowKey is the prefix for the unstake window duration item.
	UnstakeWindowKey = collections.NewPrefix(7)
	// CooldownsKeyPrefix is the prefix for the per-staker cooldown timestamps.
	CooldownsKeyPrefix = collections.NewPrefix(8)
	// RewardsToClaimKeyPrefix is the prefix for committed unclaimed rewards.
	RewardsToClaimKeyPrefix = collections.NewPrefix(9)
)

// GetPoolAddress returns the module account address holding the pooled
// underlying asset.
func GetPoolAddress() sdk.AccAddress {
	return sdk.AccAddress(crypto.AddressHash([]byte(PoolName)))
}

// GetRewardsPoolAddress returns the module account address the reward asset
// is paid from.
func GetRewardsPoolAddress() sdk.AccAddress {
	return sdk.AccAddress(crypto.AddressHash([]byte(RewardsPoolName)))
}
