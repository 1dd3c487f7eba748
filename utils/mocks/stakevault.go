package mocks

import (
	"context"
	"fmt"
	"testing"
	"time"

	sdkmath "cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"

	addresscodec "github.com/cosmos/cosmos-sdk/codec/address"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cometbft/cometbft/crypto"

	"github.com/provlabs/stakevault/keeper"
	"github.com/provlabs/stakevault/types"
)

// Mocks bundles the mocked collaborators wired into a test keeper.
type Mocks struct {
	Bank    *MockBankKeeper
	Accrual *MockAccrualEngine
	Roles   *MockRoleKeeper
	Permit  *MockPermitKeeper
}

// NewStakeVaultKeeper returns a store-backed keeper with all collaborators
// mocked, and a context stamped with the current time.
func NewStakeVaultKeeper(t testing.TB) (sdk.Context, *keeper.Keeper, *Mocks) {
	t.Helper()

	key := storetypes.NewKVStoreKey(types.ModuleName)
	tkey := storetypes.NewTransientStoreKey(fmt.Sprintf("transient_%s", types.ModuleName))
	wrapper := testutil.DefaultContextWithDB(t, key, tkey)

	mocks := &Mocks{
		Bank:    NewMockBankKeeper(),
		Accrual: NewMockAccrualEngine(),
		Roles:   NewMockRoleKeeper(),
		Permit:  &MockPermitKeeper{},
	}

	k := keeper.NewKeeper(
		runtime.NewKVStoreService(key),
		addresscodec.NewBech32Codec("cosmos"),
		mocks.Bank,
		mocks.Accrual,
		mocks.Roles,
		mocks.Permit,
	)

	ctx := wrapper.Ctx.WithBlockTime(time.Now().UTC())
	return ctx, k, mocks
}

// ModuleAddress derives a module account address the same way the module's
// own pool helpers do.
func ModuleAddress(name string) sdk.AccAddress {
	return sdk.AccAddress(crypto.AddressHash([]byte(name)))
}

// MockBankKeeper is a map-backed bank that fails loudly on insufficient
// balances, standing in for both the share ledger and the asset mover.
type MockBankKeeper struct {
	balances map[string]sdk.Coins
	supply   sdk.Coins
}

// NewMockBankKeeper creates an empty mock bank.
func NewMockBankKeeper() *MockBankKeeper {
	return &MockBankKeeper{balances: make(map[string]sdk.Coins)}
}

// FundAccount credits an account and grows supply, bypassing transfer checks.
func (m *MockBankKeeper) FundAccount(addr sdk.AccAddress, amt sdk.Coins) {
	m.balances[addr.String()] = m.balances[addr.String()].Add(amt...)
	m.supply = m.supply.Add(amt...)
}

// FundModule credits a module account and grows supply.
func (m *MockBankKeeper) FundModule(name string, amt sdk.Coins) {
	m.FundAccount(ModuleAddress(name), amt)
}

func (m *MockBankKeeper) move(from, to sdk.AccAddress, amt sdk.Coins) error {
	remaining, negative := m.balances[from.String()].SafeSub(amt...)
	if negative {
		return fmt.Errorf("insufficient funds: %s has %s, needs %s", from, m.balances[from.String()], amt)
	}
	m.balances[from.String()] = remaining
	m.balances[to.String()] = m.balances[to.String()].Add(amt...)
	return nil
}

func (m *MockBankKeeper) SendCoinsFromModuleToAccount(_ context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	return m.move(ModuleAddress(senderModule), recipientAddr, amt)
}

func (m *MockBankKeeper) SendCoinsFromAccountToModule(_ context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	return m.move(senderAddr, ModuleAddress(recipientModule), amt)
}

func (m *MockBankKeeper) MintCoins(_ context.Context, moduleName string, amt sdk.Coins) error {
	m.FundModule(moduleName, amt)
	return nil
}

func (m *MockBankKeeper) BurnCoins(_ context.Context, moduleName string, amt sdk.Coins) error {
	addr := ModuleAddress(moduleName)
	remaining, negative := m.balances[addr.String()].SafeSub(amt...)
	if negative {
		return fmt.Errorf("cannot burn %s: module %s has %s", amt, moduleName, m.balances[addr.String()])
	}
	m.balances[addr.String()] = remaining
	newSupply, negative := m.supply.SafeSub(amt...)
	if negative {
		return fmt.Errorf("cannot burn %s: supply is %s", amt, m.supply)
	}
	m.supply = newSupply
	return nil
}

func (m *MockBankKeeper) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, m.balances[addr.String()].AmountOf(denom))
}

func (m *MockBankKeeper) GetSupply(_ context.Context, denom string) sdk.Coin {
	return sdk.NewCoin(denom, m.supply.AmountOf(denom))
}

// MockAccrualEngine hands out pre-loaded accrual amounts, consuming each on
// the update that observes it, the way an index advance would.
type MockAccrualEngine struct {
	Pending map[string]sdkmath.Int
	Err     error
	Calls   int
}

// NewMockAccrualEngine creates an accrual engine with nothing pending.
func NewMockAccrualEngine() *MockAccrualEngine {
	return &MockAccrualEngine{Pending: make(map[string]sdkmath.Int)}
}

// SetPending queues an accrual amount for the staker's next update.
func (m *MockAccrualEngine) SetPending(staker sdk.AccAddress, amount sdkmath.Int) {
	m.Pending[staker.String()] = amount
}

func (m *MockAccrualEngine) UpdateUserAsset(_ context.Context, staker sdk.AccAddress, _, _ sdkmath.Int) (sdkmath.Int, error) {
	m.Calls++
	if m.Err != nil {
		return sdkmath.Int{}, m.Err
	}
	accrued, ok := m.Pending[staker.String()]
	if !ok {
		return sdkmath.ZeroInt(), nil
	}
	delete(m.Pending, staker.String())
	return accrued, nil
}

// MockRoleKeeper resolves role holders from a fixed table.
type MockRoleKeeper struct {
	Holders map[uint64]sdk.AccAddress
}

// NewMockRoleKeeper creates a role registry with no assignments.
func NewMockRoleKeeper() *MockRoleKeeper {
	return &MockRoleKeeper{Holders: make(map[uint64]sdk.AccAddress)}
}

func (m *MockRoleKeeper) GetRoleHolder(_ context.Context, roleID uint64) (sdk.AccAddress, error) {
	holder, ok := m.Holders[roleID]
	if !ok {
		return nil, fmt.Errorf("no holder for role %d", roleID)
	}
	return holder, nil
}

// MockPermitKeeper accepts every permit unless Err is set.
type MockPermitKeeper struct {
	Err   error
	Calls int
}

func (m *MockPermitKeeper) VerifyPermit(_ context.Context, _, _ sdk.AccAddress, _ sdkmath.Int, _ uint64, _ []byte) error {
	m.Calls++
	return m.Err
}
