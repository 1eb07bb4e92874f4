package pricemath

import (
	"cosmossdk.io/math"
	"github.com/holiman/uint256"

	"github.com/clover-dex/clover/x/clmm/types"
)

// TickToSqrtPrice converts a tick index to a fixed-point sqrt price using
// the linear map SqrtPriceBase * (tick + TickOffset).
//
// This is a deliberate placeholder for the geometric per-tick ratio of full
// concentrated-liquidity designs: it preserves monotonicity (a larger tick
// always maps to a strictly larger sqrt price) but not geometric spacing.
// A tick below -TickOffset would go negative before the multiplication and
// fails with ErrMathOverflow, an unsigned-domain underflow.
func TickToSqrtPrice(tick int32) (math.Int, error) {
	shifted := int64(tick) + TickOffset
	if shifted < 0 {
		return math.Int{}, types.ErrMathOverflow.Wrapf("tick %d below offset domain", tick)
	}

	price, err := checkedMul(uint256.NewInt(SqrtPriceBase), uint256.NewInt(uint64(shifted)))
	if err != nil {
		return math.Int{}, err
	}
	return fromUint256(price), nil
}

// tickToSqrtPriceU256 is the in-domain variant used by LiquidityDelta.
func tickToSqrtPriceU256(tick int32) (*uint256.Int, error) {
	shifted := int64(tick) + TickOffset
	if shifted < 0 {
		return nil, types.ErrMathOverflow.Wrapf("tick %d below offset domain", tick)
	}
	return checkedMul(uint256.NewInt(SqrtPriceBase), uint256.NewInt(uint64(shifted)))
}
