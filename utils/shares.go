package utils

import (
	"fmt"

	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Fixed-point rate parameters.
//
// RateUnit sets the exchange-rate scale: a rate of RateUnit (1e18) means one
// asset unit mints exactly one share. Rounding directions are part of the
// accounting contract and must not be changed:
//   - the rate itself rounds UP (CalculateExchangeRate),
//   - both previews round DOWN (CalculateSharesFromAssets,
//     CalculateAssetsFromShares).
//
// Together these guarantee a share is never worth more than the assets
// backing it: an immediate stake->redeem round trip can only lose to
// truncation, never gain.
var RateUnit = math.NewInt(1_000_000_000_000_000_000)

// CalculateSharesFromAssets returns the number of shares minted for a given
// amount of staked assets at the given exchange rate.
//
// Formula (integer, floor):
//
//	shares = floor( assets * rate / RateUnit )
//
// Returns sdk.Coin(shareDenom, shares). Error if any input is negative or
// the rate is not positive.
func CalculateSharesFromAssets(assets, rate math.Int, shareDenom string) (sdk.Coin, error) {
	if assets.IsNegative() {
		return sdk.Coin{}, fmt.Errorf("invalid input: negative values not allowed")
	}
	if !rate.IsPositive() {
		return sdk.Coin{}, fmt.Errorf("invalid exchange rate: must be positive")
	}
	return sdk.NewCoin(shareDenom, assets.Mul(rate).Quo(RateUnit)), nil
}

// CalculateAssetsFromShares returns the amount of assets paid out for a given
// number of shares redeemed at the given exchange rate.
//
// Formula (integer, floor):
//
//	assets = floor( shares * RateUnit / rate )
//
// Returns sdk.Coin(assetDenom, assets). Error if any input is negative or
// the rate is not positive.
func CalculateAssetsFromShares(shares, rate math.Int, assetDenom string) (sdk.Coin, error) {
	if shares.IsNegative() {
		return sdk.Coin{}, fmt.Errorf("invalid input: negative values not allowed")
	}
	if !rate.IsPositive() {
		return sdk.Coin{}, fmt.Errorf("invalid exchange rate: must be positive")
	}
	return sdk.NewCoin(assetDenom, shares.Mul(RateUnit).Quo(rate)), nil
}

// CalculateExchangeRate recomputes the RateUnit-scaled rate from a total
// asset / total share pair.
//
// Formula (integer, ceiling):
//
//	rate = ceil( totalShares * RateUnit / totalAssets )
//
// The ceiling rounds share value down from the staker's perspective, always
// in favor of pool solvency. Errors if totalAssets is zero: there is no
// defined recovery once the pool is emptied, so the divisor is reported
// rather than papered over.
func CalculateExchangeRate(totalAssets, totalShares math.Int) (math.Int, error) {
	if totalAssets.IsNegative() || totalShares.IsNegative() {
		return math.Int{}, fmt.Errorf("invalid input: negative values not allowed")
	}
	if totalAssets.IsZero() {
		return math.Int{}, fmt.Errorf("total assets is zero")
	}
	return CeilDiv(totalShares.Mul(RateUnit), totalAssets), nil
}
