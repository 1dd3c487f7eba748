package types

import "cosmossdk.io/errors"

var (
	// ErrInvalidRequest is returned when a request fails basic validation.
	ErrInvalidRequest = errors.Register(ModuleName, 2, "invalid request")
	// ErrUnauthorized is returned when the caller does not hold the required role.
	ErrUnauthorized = errors.Register(ModuleName, 3, "caller does not hold the required role")
	// ErrInvalidAmount is returned when an amount is zero or negative where disallowed.
	ErrInvalidAmount = errors.Register(ModuleName, 4, "amount must be positive")
	// ErrInvalidPercentage is returned when a percentage is outside [0, 100%).
	ErrInvalidPercentage = errors.Register(ModuleName, 5, "percentage must be below 100%")
	// ErrSlashingInProgress is returned when an operation conflicts with an unsettled slash.
	ErrSlashingInProgress = errors.Register(ModuleName, 6, "previous slashing has not been settled")
	// ErrCooldownNotElapsed is returned when a redemption is attempted before the cooldown has passed.
	ErrCooldownNotElapsed = errors.Register(ModuleName, 7, "cooldown has not elapsed")
	// ErrUnstakeWindowClosed is returned when a redemption is attempted after the unstake window.
	ErrUnstakeWindowClosed = errors.Register(ModuleName, 8, "unstake window has closed")
	// ErrNoShares is returned when an operation requires a nonzero share balance.
	ErrNoShares = errors.Register(ModuleName, 9, "staker has no shares")
	// ErrZeroTotalAssets is returned when a rate recompute would divide by zero.
	// A slash that empties the pool leaves the vault unrecoverable; the
	// operator must never let total assets reach zero.
	ErrZeroTotalAssets = errors.Register(ModuleName, 10, "total assets is zero")
	// ErrRewardAssetMismatch is returned when claim-and-restake is attempted
	// while the reward asset differs from the underlying asset.
	ErrRewardAssetMismatch = errors.Register(ModuleName, 11, "reward asset does not match underlying asset")
)
