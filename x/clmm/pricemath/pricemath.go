// Package pricemath implements the fixed-point numeric core of the
// settlement engine: tick-to-price conversion, liquidity sizing, and swap
// output/price-impact math.
//
// All values live in the unsigned 128-bit domain of the persisted records.
// Internally the package computes on uint256.Int, using its native overflow
// reporting plus an explicit 128-bit ceiling; every violation surfaces as
// types.ErrMathOverflow, including subtraction underflow and division by
// zero.
package pricemath

import (
	"cosmossdk.io/math"
	"github.com/holiman/uint256"

	"github.com/clover-dex/clover/x/clmm/types"
)

const (
	// FeeRateDenom is the parts-per-million denominator of pool fee rates.
	FeeRateDenom = 1_000_000

	// PriceImpactScale scales swap input against liquidity when computing
	// the post-swap sqrt price.
	PriceImpactScale = 1_000_000

	// SqrtPriceBase is the per-tick slope of the linear tick-to-price map.
	SqrtPriceBase = 1_000

	// TickOffset shifts tick indices so they are non-negative before
	// multiplication. Ticks below -TickOffset are unrepresentable and fail
	// as an unsigned-domain underflow.
	TickOffset = 1_000

	maxBits = 128
)

// toUint256 converts a math.Int into the unsigned 128-bit working domain.
func toUint256(v math.Int) (*uint256.Int, error) {
	if v.IsNil() || v.IsNegative() {
		return nil, types.ErrMathOverflow.Wrap("value outside unsigned domain")
	}
	u, overflow := uint256.FromBig(v.BigInt())
	if overflow || u.BitLen() > maxBits {
		return nil, types.ErrMathOverflow.Wrapf("value %s exceeds 128 bits", v)
	}
	return u, nil
}

// fromUint256 converts a working value back to math.Int.
func fromUint256(u *uint256.Int) math.Int {
	return math.NewIntFromBigInt(u.ToBig())
}

// checkedMul multiplies within the 128-bit domain.
func checkedMul(a, b *uint256.Int) (*uint256.Int, error) {
	out, overflow := new(uint256.Int).MulOverflow(a, b)
	if overflow || out.BitLen() > maxBits {
		return nil, types.ErrMathOverflow.Wrap("multiplication overflow")
	}
	return out, nil
}

// checkedAdd adds within the 128-bit domain.
func checkedAdd(a, b *uint256.Int) (*uint256.Int, error) {
	out, carry := new(uint256.Int).AddOverflow(a, b)
	if carry || out.BitLen() > maxBits {
		return nil, types.ErrMathOverflow.Wrap("addition overflow")
	}
	return out, nil
}

// checkedSub subtracts, failing on underflow.
func checkedSub(a, b *uint256.Int) (*uint256.Int, error) {
	if a.Lt(b) {
		return nil, types.ErrMathOverflow.Wrap("subtraction underflow")
	}
	return new(uint256.Int).Sub(a, b), nil
}

// checkedDiv divides, failing on a zero divisor.
func checkedDiv(a, b *uint256.Int) (*uint256.Int, error) {
	if b.IsZero() {
		return nil, types.ErrMathOverflow.Wrap("division by zero")
	}
	return new(uint256.Int).Div(a, b), nil
}
