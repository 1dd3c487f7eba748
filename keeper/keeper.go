package keeper

import (
	"cosmossdk.io/collections"
	"cosmossdk.io/core/address"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/stakevault/types"
)

// Keeper owns the vault state and orchestrates stake, redeem, claim and
// slashing flows against the external ledger, accrual engine and role
// registry.
type Keeper struct {
	schema       collections.Schema
	addressCodec address.Codec

	BankKeeper    types.BankKeeper
	AccrualEngine types.AccrualEngine
	RoleKeeper    types.RoleKeeper
	PermitKeeper  types.PermitKeeper

	ShareDenom      collections.Item[string]
	UnderlyingDenom collections.Item[string]
	RewardDenom     collections.Item[string]

	ExchangeRate    collections.Item[sdkmath.Int]
	MaxSlashablePct collections.Item[sdkmath.Int]
	PostSlashing    collections.Item[bool]
	CooldownSeconds collections.Item[uint64]
	UnstakeWindow   collections.Item[uint64]
	Cooldowns       collections.Map[sdk.AccAddress, uint64]
	RewardsToClaim  collections.Map[sdk.AccAddress, sdkmath.Int]
}

// NewKeeper creates a keeper backed by the given store and collaborators.
func NewKeeper(
	storeService store.KVStoreService,
	addressCodec address.Codec,
	bankKeeper types.BankKeeper,
	accrualEngine types.AccrualEngine,
	roleKeeper types.RoleKeeper,
	permitKeeper types.PermitKeeper,
) *Keeper {
	builder := collections.NewSchemaBuilder(storeService)

	keeper := &Keeper{
		addressCodec:    addressCodec,
		BankKeeper:      bankKeeper,
		AccrualEngine:   accrualEngine,
		RoleKeeper:      roleKeeper,
		PermitKeeper:    permitKeeper,
		ShareDenom:      collections.NewItem(builder, types.ShareDenomKey, "share_denom", collections.StringValue),
		UnderlyingDenom: collections.NewItem(builder, types.UnderlyingDenomKey, "underlying_denom", collections.StringValue),
		RewardDenom:     collections.NewItem(builder, types.RewardDenomKey, "reward_denom", collections.StringValue),
		ExchangeRate:    collections.NewItem(builder, types.ExchangeRateKey, "exchange_rate", sdk.IntValue),
		MaxSlashablePct: collections.NewItem(builder, types.MaxSlashablePctKey, "max_slashable_percentage", sdk.IntValue),
		PostSlashing:    collections.NewItem(builder, types.PostSlashingKey, "post_slashing", collections.BoolValue),
		CooldownSeconds: collections.NewItem(builder, types.CooldownSecondsKey, "cooldown_seconds", collections.Uint64Value),
		UnstakeWindow:   collections.NewItem(builder, types.UnstakeWindowKey, "unstake_window", collections.Uint64Value),
		Cooldowns:       collections.NewMap(builder, types.CooldownsKeyPrefix, "cooldowns", sdk.AccAddressKey, collections.Uint64Value),
		RewardsToClaim:  collections.NewMap(builder, types.RewardsToClaimKeyPrefix, "rewards_to_claim", sdk.AccAddressKey, sdk.IntValue),
	}

	schema, err := builder.Build()
	if err != nil {
		panic(err)
	}

	keeper.schema = schema
	return keeper
}

// getLogger returns a logger with stakevault module context.
func (k Keeper) getLogger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}

// emitEvent emits an event through the context's event manager.
func (k Keeper) emitEvent(ctx sdk.Context, event sdk.Event) {
	ctx.EventManager().EmitEvent(event)
}
