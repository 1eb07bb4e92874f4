package types

import (
	"cosmossdk.io/math"
)

// Params are the module's operating parameters.
type Params struct {
	// MaxFeeRatePpm is the largest fee rate accepted at pool initialization,
	// in parts per million of swap input.
	MaxFeeRatePpm uint64 `json:"max_fee_rate_ppm"`
	// MinOrderAmount is the smallest amount_in accepted on limit-order
	// placement. A floor of one rejects zero-amount orders.
	MinOrderAmount math.Int `json:"min_order_amount"`
}

// DefaultParams returns default parameters for the clmm module.
func DefaultParams() Params {
	return Params{
		MaxFeeRatePpm:  100_000, // 10%
		MinOrderAmount: math.NewInt(1),
	}
}

// Validate validates the set of params.
func (p Params) Validate() error {
	if p.MaxFeeRatePpm > 1_000_000 {
		return ErrInvalidInput.Wrapf("max fee rate %d ppm exceeds 100%%", p.MaxFeeRatePpm)
	}
	if p.MinOrderAmount.IsNil() || !p.MinOrderAmount.IsPositive() {
		return ErrInvalidInput.Wrap("min order amount must be positive")
	}
	return nil
}
