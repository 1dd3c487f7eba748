package keeper

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/stakevault/types"
)

// InitGenesis initializes the stakevault module state from genesis.
func (k Keeper) InitGenesis(ctx sdk.Context, genState *types.GenesisState) {
	if genState == nil {
		return
	}

	if err := genState.Validate(); err != nil {
		panic(fmt.Errorf("invalid stakevault genesis state: %w", err))
	}

	cfg := genState.Config
	if err := k.ShareDenom.Set(ctx, cfg.ShareDenom); err != nil {
		panic(err)
	}
	if err := k.UnderlyingDenom.Set(ctx, cfg.UnderlyingDenom); err != nil {
		panic(err)
	}
	if err := k.RewardDenom.Set(ctx, cfg.RewardDenom); err != nil {
		panic(err)
	}
	if err := k.CooldownSeconds.Set(ctx, cfg.CooldownSeconds); err != nil {
		panic(err)
	}
	if err := k.UnstakeWindow.Set(ctx, cfg.UnstakeWindowSeconds); err != nil {
		panic(err)
	}
	if err := k.MaxSlashablePct.Set(ctx, cfg.MaxSlashablePercentage); err != nil {
		panic(err)
	}
	if err := k.ExchangeRate.Set(ctx, cfg.ExchangeRate); err != nil {
		panic(err)
	}
	if err := k.PostSlashing.Set(ctx, cfg.InPostSlashingPeriod); err != nil {
		panic(err)
	}

	for _, entry := range genState.Cooldowns {
		staker := sdk.MustAccAddressFromBech32(entry.Staker)
		if err := k.Cooldowns.Set(ctx, staker, entry.Timestamp); err != nil {
			panic(fmt.Errorf("failed to store cooldown for %s: %w", entry.Staker, err))
		}
	}
	for _, entry := range genState.Rewards {
		staker := sdk.MustAccAddressFromBech32(entry.Staker)
		if err := k.RewardsToClaim.Set(ctx, staker, entry.Amount); err != nil {
			panic(fmt.Errorf("failed to store rewards for %s: %w", entry.Staker, err))
		}
	}
}

// ExportGenesis exports the current state of the stakevault module.
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	cfg, err := k.GetVaultConfig(ctx)
	if err != nil {
		panic(fmt.Errorf("failed to get vault config: %w", err))
	}

	genState := types.NewGenesisState(cfg)

	err = k.Cooldowns.Walk(ctx, nil, func(staker sdk.AccAddress, timestamp uint64) (stop bool, err error) {
		genState.Cooldowns = append(genState.Cooldowns, types.CooldownEntry{
			Staker:    staker.String(),
			Timestamp: timestamp,
		})
		return false, nil
	})
	if err != nil {
		panic(fmt.Errorf("failed to export cooldowns: %w", err))
	}

	err = k.RewardsToClaim.Walk(ctx, nil, func(staker sdk.AccAddress, amount sdkmath.Int) (stop bool, err error) {
		genState.Rewards = append(genState.Rewards, types.RewardEntry{
			Staker: staker.String(),
			Amount: amount,
		})
		return false, nil
	})
	if err != nil {
		panic(fmt.Errorf("failed to export rewards: %w", err))
	}

	return genState
}
