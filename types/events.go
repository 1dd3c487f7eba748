package types

import (
	"strconv"

	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Event types emitted by the module.
const (
	EventTypeExchangeRateUpdated    = "exchange_rate_updated"
	EventTypeMaxSlashablePctUpdated = "max_slashable_percentage_updated"
	EventTypeCooldownSecondsUpdated = "cooldown_seconds_updated"
	EventTypeStaked                 = "staked"
	EventTypeRedeemed               = "redeemed"
	EventTypeCooldownStarted        = "cooldown_started"
	EventTypeRewardsClaimed         = "rewards_claimed"
	EventTypeRewardsAccrued         = "rewards_accrued"
	EventTypeSlashed                = "slashed"
	EventTypeFundsReturned          = "funds_returned"
	EventTypeSlashingSettled        = "slashing_settled"
)

// Event attribute keys.
const (
	AttributeKeyRate        = "rate"
	AttributeKeyPercentage  = "percentage"
	AttributeKeySeconds     = "seconds"
	AttributeKeyAuthority   = "authority"
	AttributeKeyStaker      = "staker"
	AttributeKeyFunder      = "funder"
	AttributeKeyRecipient   = "recipient"
	AttributeKeyDestination = "destination"
	AttributeKeyAssets      = "assets"
	AttributeKeyShares      = "shares"
	AttributeKeyRewards     = "rewards"
	AttributeKeyTimestamp   = "timestamp"
)

// NewEventExchangeRateUpdated creates a new exchange_rate_updated event.
func NewEventExchangeRateUpdated(rate sdkmath.Int) sdk.Event {
	return sdk.NewEvent(EventTypeExchangeRateUpdated,
		sdk.NewAttribute(AttributeKeyRate, rate.String()),
	)
}

// NewEventMaxSlashablePctUpdated creates a new max_slashable_percentage_updated event.
func NewEventMaxSlashablePctUpdated(authority string, pct sdkmath.Int) sdk.Event {
	return sdk.NewEvent(EventTypeMaxSlashablePctUpdated,
		sdk.NewAttribute(AttributeKeyAuthority, authority),
		sdk.NewAttribute(AttributeKeyPercentage, pct.String()),
	)
}

// NewEventCooldownSecondsUpdated creates a new cooldown_seconds_updated event.
func NewEventCooldownSecondsUpdated(authority string, seconds uint64) sdk.Event {
	return sdk.NewEvent(EventTypeCooldownSecondsUpdated,
		sdk.NewAttribute(AttributeKeyAuthority, authority),
		sdk.NewAttribute(AttributeKeySeconds, strconv.FormatUint(seconds, 10)),
	)
}

// NewEventStaked creates a new staked event.
func NewEventStaked(funder, staker string, assets, shares sdk.Coin) sdk.Event {
	return sdk.NewEvent(EventTypeStaked,
		sdk.NewAttribute(AttributeKeyFunder, funder),
		sdk.NewAttribute(AttributeKeyStaker, staker),
		sdk.NewAttribute(AttributeKeyAssets, assets.String()),
		sdk.NewAttribute(AttributeKeyShares, shares.String()),
	)
}

// NewEventRedeemed creates a new redeemed event.
func NewEventRedeemed(staker, recipient string, assets, shares sdk.Coin) sdk.Event {
	return sdk.NewEvent(EventTypeRedeemed,
		sdk.NewAttribute(AttributeKeyStaker, staker),
		sdk.NewAttribute(AttributeKeyRecipient, recipient),
		sdk.NewAttribute(AttributeKeyAssets, assets.String()),
		sdk.NewAttribute(AttributeKeyShares, shares.String()),
	)
}

// NewEventCooldownStarted creates a new cooldown_started event.
func NewEventCooldownStarted(staker string, timestamp uint64) sdk.Event {
	return sdk.NewEvent(EventTypeCooldownStarted,
		sdk.NewAttribute(AttributeKeyStaker, staker),
		sdk.NewAttribute(AttributeKeyTimestamp, strconv.FormatUint(timestamp, 10)),
	)
}

// NewEventRewardsClaimed creates a new rewards_claimed event.
func NewEventRewardsClaimed(staker, recipient string, rewards sdk.Coin) sdk.Event {
	return sdk.NewEvent(EventTypeRewardsClaimed,
		sdk.NewAttribute(AttributeKeyStaker, staker),
		sdk.NewAttribute(AttributeKeyRecipient, recipient),
		sdk.NewAttribute(AttributeKeyRewards, rewards.String()),
	)
}

// NewEventRewardsAccrued creates a new rewards_accrued event.
func NewEventRewardsAccrued(staker string, accrued sdkmath.Int) sdk.Event {
	return sdk.NewEvent(EventTypeRewardsAccrued,
		sdk.NewAttribute(AttributeKeyStaker, staker),
		sdk.NewAttribute(AttributeKeyRewards, accrued.String()),
	)
}

// NewEventSlashed creates a new slashed event.
func NewEventSlashed(authority, destination string, assets sdk.Coin) sdk.Event {
	return sdk.NewEvent(EventTypeSlashed,
		sdk.NewAttribute(AttributeKeyAuthority, authority),
		sdk.NewAttribute(AttributeKeyDestination, destination),
		sdk.NewAttribute(AttributeKeyAssets, assets.String()),
	)
}

// NewEventFundsReturned creates a new funds_returned event.
func NewEventFundsReturned(funder string, assets sdk.Coin) sdk.Event {
	return sdk.NewEvent(EventTypeFundsReturned,
		sdk.NewAttribute(AttributeKeyFunder, funder),
		sdk.NewAttribute(AttributeKeyAssets, assets.String()),
	)
}

// NewEventSlashingSettled creates a new slashing_settled event.
func NewEventSlashingSettled(authority string) sdk.Event {
	return sdk.NewEvent(EventTypeSlashingSettled,
		sdk.NewAttribute(AttributeKeyAuthority, authority),
	)
}
