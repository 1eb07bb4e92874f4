package types

import (
	"cosmossdk.io/math"
)

// Pool is a single concentrated-liquidity trading pool for one asset pair
// over one fixed tick range.
//
// Identity fields (assets, vaults, ticks, fee rate, authority) are set once
// at initialization and never change. SqrtPriceX64, Liquidity and the fee
// totals are the mutable state; they are only ever updated by the keeper's
// add-liquidity and swap operations.
type Pool struct {
	// Id is the unique pool identifier assigned at initialization
	Id uint64 `json:"id"`
	// AssetA is the identifier of the first asset of the pair
	AssetA string `json:"asset_a"`
	// AssetB is the identifier of the second asset of the pair
	AssetB string `json:"asset_b"`
	// VaultA is the custody account holding the pool's A-side reserves
	VaultA string `json:"vault_a"`
	// VaultB is the custody account holding the pool's B-side reserves
	VaultB string `json:"vault_b"`
	// TickLower is the lower bound of the active price range
	TickLower int32 `json:"tick_lower"`
	// TickUpper is the upper bound of the active price range
	TickUpper int32 `json:"tick_upper"`
	// SqrtPriceX64 is the square root of the A/B exchange rate, as an
	// unsigned 128-bit fixed-point value
	SqrtPriceX64 math.Int `json:"sqrt_price_x64"`
	// Liquidity is the pool's aggregate active depth
	Liquidity math.Int `json:"liquidity"`
	// FeeRatePpm is the fee charged on swap input, in parts per million
	FeeRatePpm uint64 `json:"fee_rate_ppm"`
	// TotalFeesA is the cumulative fee accrual denominated in AssetA
	TotalFeesA math.Int `json:"total_fees_a"`
	// TotalFeesB is the cumulative fee accrual denominated in AssetB
	TotalFeesB math.Int `json:"total_fees_b"`
	// Authority is the identifier that initialized the pool
	Authority string `json:"authority"`
}

// Validate checks the structural invariants of a pool record.
func (p Pool) Validate() error {
	if p.AssetA == "" || p.AssetB == "" {
		return ErrInvalidInput.Wrap("asset identifiers cannot be empty")
	}
	if p.AssetA == p.AssetB {
		return ErrInvalidInput.Wrap("pool assets must be distinct")
	}
	if p.TickLower >= p.TickUpper {
		return ErrInvalidTickRange.Wrapf("tick_lower %d must be below tick_upper %d", p.TickLower, p.TickUpper)
	}
	if p.SqrtPriceX64.IsNil() || !p.SqrtPriceX64.IsPositive() {
		return ErrInvalidInput.Wrap("sqrt price must be positive")
	}
	if p.Liquidity.IsNil() || p.Liquidity.IsNegative() {
		return ErrInvalidState.Wrap("liquidity cannot be negative")
	}
	if p.TotalFeesA.IsNil() || p.TotalFeesA.IsNegative() {
		return ErrInvalidState.Wrap("total fees A cannot be negative")
	}
	if p.TotalFeesB.IsNil() || p.TotalFeesB.IsNegative() {
		return ErrInvalidState.Wrap("total fees B cannot be negative")
	}
	if p.FeeRatePpm > 1_000_000 {
		return ErrInvalidInput.Wrapf("fee rate %d ppm exceeds 100%%", p.FeeRatePpm)
	}
	return nil
}

// InputAsset returns the asset paid into the pool for the given swap
// direction, and its vault.
func (p Pool) InputAsset(aToB bool) (asset, vault string) {
	if aToB {
		return p.AssetA, p.VaultA
	}
	return p.AssetB, p.VaultB
}

// OutputAsset returns the asset paid out of the pool for the given swap
// direction, and its vault.
func (p Pool) OutputAsset(aToB bool) (asset, vault string) {
	if aToB {
		return p.AssetB, p.VaultB
	}
	return p.AssetA, p.VaultA
}
