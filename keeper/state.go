package keeper

import (
	"context"
	"errors"
	"fmt"

	"cosmossdk.io/collections"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/stakevault/types"
)

// GetCooldownTimestamp returns the staker's cooldown timestamp. Zero means no
// active cooldown.
func (k Keeper) GetCooldownTimestamp(ctx context.Context, staker sdk.AccAddress) (uint64, error) {
	ts, err := k.Cooldowns.Get(ctx, staker)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return ts, nil
}

// SetCooldownTimestamp persists the staker's cooldown timestamp. A zero
// timestamp removes the entry.
func (k Keeper) SetCooldownTimestamp(ctx context.Context, staker sdk.AccAddress, timestamp uint64) error {
	if timestamp == 0 {
		err := k.Cooldowns.Remove(ctx, staker)
		if err != nil && !errors.Is(err, collections.ErrNotFound) {
			return err
		}
		return nil
	}
	return k.Cooldowns.Set(ctx, staker, timestamp)
}

// GetRewardsToClaim returns the staker's committed unclaimed reward balance.
func (k Keeper) GetRewardsToClaim(ctx context.Context, staker sdk.AccAddress) (sdkmath.Int, error) {
	amount, err := k.RewardsToClaim.Get(ctx, staker)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return sdkmath.ZeroInt(), nil
		}
		return sdkmath.Int{}, err
	}
	return amount, nil
}

// SetRewardsToClaim persists the staker's committed unclaimed reward balance.
// A zero balance removes the entry.
func (k Keeper) SetRewardsToClaim(ctx context.Context, staker sdk.AccAddress, amount sdkmath.Int) error {
	if amount.IsZero() {
		err := k.RewardsToClaim.Remove(ctx, staker)
		if err != nil && !errors.Is(err, collections.ErrNotFound) {
			return err
		}
		return nil
	}
	return k.RewardsToClaim.Set(ctx, staker, amount)
}

// InPostSlashingPeriod reports whether a slash is awaiting settlement.
func (k Keeper) InPostSlashingPeriod(ctx context.Context) (bool, error) {
	flag, err := k.PostSlashing.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return flag, nil
}

// TotalShares returns the total supply of the share denom from the ledger.
func (k Keeper) TotalShares(ctx context.Context) (sdkmath.Int, error) {
	shareDenom, err := k.ShareDenom.Get(ctx)
	if err != nil {
		return sdkmath.Int{}, err
	}
	return k.BankKeeper.GetSupply(ctx, shareDenom).Amount, nil
}

// ShareBalance returns the staker's share balance from the ledger.
func (k Keeper) ShareBalance(ctx context.Context, staker sdk.AccAddress) (sdkmath.Int, error) {
	shareDenom, err := k.ShareDenom.Get(ctx)
	if err != nil {
		return sdkmath.Int{}, err
	}
	return k.BankKeeper.GetBalance(ctx, staker, shareDenom).Amount, nil
}

// GetVaultConfig assembles the full vault configuration from its stored items.
func (k Keeper) GetVaultConfig(ctx context.Context) (types.VaultConfig, error) {
	var cfg types.VaultConfig
	var err error

	if cfg.ShareDenom, err = k.ShareDenom.Get(ctx); err != nil {
		return cfg, fmt.Errorf("failed to get share denom: %w", err)
	}
	if cfg.UnderlyingDenom, err = k.UnderlyingDenom.Get(ctx); err != nil {
		return cfg, fmt.Errorf("failed to get underlying denom: %w", err)
	}
	if cfg.RewardDenom, err = k.RewardDenom.Get(ctx); err != nil {
		return cfg, fmt.Errorf("failed to get reward denom: %w", err)
	}
	if cfg.CooldownSeconds, err = k.CooldownSeconds.Get(ctx); err != nil {
		return cfg, fmt.Errorf("failed to get cooldown seconds: %w", err)
	}
	if cfg.UnstakeWindowSeconds, err = k.UnstakeWindow.Get(ctx); err != nil {
		return cfg, fmt.Errorf("failed to get unstake window: %w", err)
	}
	if cfg.MaxSlashablePercentage, err = k.MaxSlashablePct.Get(ctx); err != nil {
		return cfg, fmt.Errorf("failed to get max slashable percentage: %w", err)
	}
	if cfg.ExchangeRate, err = k.ExchangeRate.Get(ctx); err != nil {
		return cfg, fmt.Errorf("failed to get exchange rate: %w", err)
	}
	if cfg.InPostSlashingPeriod, err = k.InPostSlashingPeriod(ctx); err != nil {
		return cfg, fmt.Errorf("failed to get post slashing flag: %w", err)
	}
	return cfg, nil
}

// requireRole verifies the caller is the current holder of the given role in
// the external registry.
func (k Keeper) requireRole(ctx context.Context, caller sdk.AccAddress, roleID uint64) error {
	holder, err := k.RoleKeeper.GetRoleHolder(ctx, roleID)
	if err != nil {
		return fmt.Errorf("failed to resolve role holder: %w", err)
	}
	if !holder.Equals(caller) {
		return types.ErrUnauthorized.Wrapf("caller %s does not hold role %d", caller.String(), roleID)
	}
	return nil
}
