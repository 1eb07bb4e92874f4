package pricemath

import (
	"cosmossdk.io/math"
	"github.com/holiman/uint256"
)

// FeeAmount returns the fee charged on a gross swap input, floored per call:
// amountIn * feeRatePpm / 1_000_000.
func FeeAmount(amountIn math.Int, feeRatePpm uint64) (math.Int, error) {
	in, err := toUint256(amountIn)
	if err != nil {
		return math.Int{}, err
	}
	num, err := checkedMul(in, uint256.NewInt(feeRatePpm))
	if err != nil {
		return math.Int{}, err
	}
	fee, err := checkedDiv(num, uint256.NewInt(FeeRateDenom))
	if err != nil {
		return math.Int{}, err
	}
	return fromUint256(fee), nil
}

// SwapOutput computes the output amount of a swap under the constant-product
// approximation k = liquidity²: the pool's liquidity stands in for both
// reserves, the input side grows by amountIn, and the output is whatever the
// other side must shed to hold k.
//
//	k          = liquidity * liquidity
//	newReserve = liquidity + amountIn
//	amountOut  = liquidity - k / newReserve
//
// The formula is direction-symmetric; callers pass the post-fee input.
func SwapOutput(liquidity, amountIn math.Int) (math.Int, error) {
	l, err := toUint256(liquidity)
	if err != nil {
		return math.Int{}, err
	}
	in, err := toUint256(amountIn)
	if err != nil {
		return math.Int{}, err
	}

	k, err := checkedMul(l, l)
	if err != nil {
		return math.Int{}, err
	}
	newReserve, err := checkedAdd(l, in)
	if err != nil {
		return math.Int{}, err
	}
	otherReserve, err := checkedDiv(k, newReserve)
	if err != nil {
		return math.Int{}, err
	}
	out, err := checkedSub(l, otherReserve)
	if err != nil {
		return math.Int{}, err
	}
	return fromUint256(out), nil
}

// NextSqrtPrice computes the post-swap sqrt price from the price-impact
// approximation impact = amountIn * PriceImpactScale / liquidity. Swapping
// A for B pushes the price down, B for A pushes it up. A downward move past
// zero is a subtraction underflow in the unsigned domain and fails with
// ErrMathOverflow, as does an upward move past 128 bits.
func NextSqrtPrice(sqrtPrice, liquidity, amountIn math.Int, aToB bool) (math.Int, error) {
	sp, err := toUint256(sqrtPrice)
	if err != nil {
		return math.Int{}, err
	}
	l, err := toUint256(liquidity)
	if err != nil {
		return math.Int{}, err
	}
	in, err := toUint256(amountIn)
	if err != nil {
		return math.Int{}, err
	}

	scaled, err := checkedMul(in, uint256.NewInt(PriceImpactScale))
	if err != nil {
		return math.Int{}, err
	}
	impact, err := checkedDiv(scaled, l)
	if err != nil {
		return math.Int{}, err
	}

	var next *uint256.Int
	if aToB {
		next, err = checkedSub(sp, impact)
	} else {
		next, err = checkedAdd(sp, impact)
	}
	if err != nil {
		return math.Int{}, err
	}
	return fromUint256(next), nil
}
