package types

import (
	context "context"

	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper defines the bank functionality needed by the stakevault module.
// It doubles as the share ledger: vault shares are a bank denom minted and
// burned through the module account, and their supply is the share total.
type BankKeeper interface {
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	MintCoins(ctx context.Context, moduleName string, amt sdk.Coins) error
	BurnCoins(ctx context.Context, moduleName string, amt sdk.Coins) error
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	GetSupply(ctx context.Context, denom string) sdk.Coin
}

// AccrualEngine is the external reward-emission engine. UpdateUserAsset
// advances the staker's accrual index against the given balance and total
// staked supply, returning the rewards accrued since the previous update.
// The vault keeps the running unclaimed balance; the engine keeps the index.
type AccrualEngine interface {
	UpdateUserAsset(ctx context.Context, staker sdk.AccAddress, balance, totalSupply sdkmath.Int) (sdkmath.Int, error)
}

// RoleKeeper is the external role registry. Assignment and rotation are out
// of scope; the vault only resolves the current holder of a role.
type RoleKeeper interface {
	GetRoleHolder(ctx context.Context, roleID uint64) (sdk.AccAddress, error)
}

// PermitKeeper verifies a signature-based spending approval so a stake can be
// funded without a prior bank authorization.
type PermitKeeper interface {
	VerifyPermit(ctx context.Context, owner, spender sdk.AccAddress, amount sdkmath.Int, deadline uint64, signature []byte) error
}
