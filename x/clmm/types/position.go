package types

import (
	"cosmossdk.io/math"
)

// Position is one owner's liquidity stake in a pool. It is created lazily on
// the owner's first add-liquidity call and grows with every subsequent one;
// no remove path exists in this core, so its liquidity never decreases.
//
// The tick bounds are copied from the pool at creation: every position
// inherits the pool's single fixed range. The fee-growth accumulators are
// recorded for a future pro-rata fee distribution and are not advanced by
// any current operation.
type Position struct {
	// PoolId references the owning pool
	PoolId uint64 `json:"pool_id"`
	// Owner is the liquidity provider's account identifier
	Owner string `json:"owner"`
	// Liquidity is this owner's contributed depth
	Liquidity math.Int `json:"liquidity"`
	// TickLower mirrors the pool's lower bound at creation time
	TickLower int32 `json:"tick_lower"`
	// TickUpper mirrors the pool's upper bound at creation time
	TickUpper int32 `json:"tick_upper"`
	// FeeGrowthInsideA tracks the owner's share of A-side fee accrual
	FeeGrowthInsideA math.Int `json:"fee_growth_inside_a"`
	// FeeGrowthInsideB tracks the owner's share of B-side fee accrual
	FeeGrowthInsideB math.Int `json:"fee_growth_inside_b"`
}

// Validate checks the structural invariants of a position record.
func (p Position) Validate() error {
	if p.Owner == "" {
		return ErrInvalidInput.Wrap("position owner cannot be empty")
	}
	if p.TickLower >= p.TickUpper {
		return ErrInvalidTickRange.Wrapf("tick_lower %d must be below tick_upper %d", p.TickLower, p.TickUpper)
	}
	if p.Liquidity.IsNil() || p.Liquidity.IsNegative() {
		return ErrInvalidState.Wrap("position liquidity cannot be negative")
	}
	if p.FeeGrowthInsideA.IsNil() || p.FeeGrowthInsideA.IsNegative() {
		return ErrInvalidState.Wrap("fee growth A cannot be negative")
	}
	if p.FeeGrowthInsideB.IsNil() || p.FeeGrowthInsideB.IsNegative() {
		return ErrInvalidState.Wrap("fee growth B cannot be negative")
	}
	return nil
}
