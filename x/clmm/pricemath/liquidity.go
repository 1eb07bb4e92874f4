package pricemath

import (
	"cosmossdk.io/math"
)

// LiquidityDelta computes how much liquidity a two-sided deposit contributes
// within the pool's tick range at the current sqrt price.
//
// Two candidates are derived, one per deposit side:
//
//	deltaA = amountA * sqrtPrice / (priceUpper - sqrtPrice)
//	deltaB = amountB / (sqrtPrice - priceLower)
//
// and the minimum wins: the binding constraint is whichever asset runs out
// first as the price moves toward its range edge, which keeps the deposit
// ratio consistent with the pool's current price.
//
// A sqrt price at or beyond either bound makes a divisor non-positive and
// fails with ErrMathOverflow; this implicitly rejects deposits into a pool
// whose price sits outside [tickLower, tickUpper].
func LiquidityDelta(sqrtPrice math.Int, tickLower, tickUpper int32, amountA, amountB math.Int) (math.Int, error) {
	priceLower, err := tickToSqrtPriceU256(tickLower)
	if err != nil {
		return math.Int{}, err
	}
	priceUpper, err := tickToSqrtPriceU256(tickUpper)
	if err != nil {
		return math.Int{}, err
	}

	sp, err := toUint256(sqrtPrice)
	if err != nil {
		return math.Int{}, err
	}
	a, err := toUint256(amountA)
	if err != nil {
		return math.Int{}, err
	}
	b, err := toUint256(amountB)
	if err != nil {
		return math.Int{}, err
	}

	// A-side candidate: amountA * sqrtPrice / (priceUpper - sqrtPrice).
	// The subtraction must leave a strictly positive divisor.
	upperGap, err := checkedSub(priceUpper, sp)
	if err != nil {
		return math.Int{}, err
	}
	numA, err := checkedMul(a, sp)
	if err != nil {
		return math.Int{}, err
	}
	deltaA, err := checkedDiv(numA, upperGap)
	if err != nil {
		return math.Int{}, err
	}

	// B-side candidate: amountB / (sqrtPrice - priceLower).
	lowerGap, err := checkedSub(sp, priceLower)
	if err != nil {
		return math.Int{}, err
	}
	deltaB, err := checkedDiv(b, lowerGap)
	if err != nil {
		return math.Int{}, err
	}

	if deltaA.Lt(deltaB) {
		return fromUint256(deltaA), nil
	}
	return fromUint256(deltaB), nil
}
