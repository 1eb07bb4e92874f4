package keeper

import (
	"math/big"

	"cosmossdk.io/math"

	"github.com/clover-dex/clover/x/clmm/types"
)

// Overflow-checked arithmetic for the keeper's math.Int bookkeeping. All
// persisted numeric fields live in an unsigned 128-bit domain, so every
// result is checked against that ceiling and failures map to
// ErrMathOverflow.

// maxUint128 is 2^128, the exclusive upper bound of the numeric domain.
var maxUint128 = new(big.Int).Lsh(big.NewInt(1), 128)

func checkUint128(v *big.Int) error {
	if v.Sign() < 0 {
		return types.ErrMathOverflow.Wrap("value outside unsigned domain")
	}
	if v.Cmp(maxUint128) >= 0 {
		return types.ErrMathOverflow.Wrap("value exceeds 128 bits")
	}
	return nil
}

// SafeAdd adds two math.Int values with overflow checking.
func SafeAdd(a, b math.Int) (math.Int, error) {
	result := new(big.Int).Add(a.BigInt(), b.BigInt())
	if err := checkUint128(result); err != nil {
		return math.Int{}, err
	}
	return math.NewIntFromBigInt(result), nil
}

// SafeSub subtracts two math.Int values with underflow checking.
func SafeSub(a, b math.Int) (math.Int, error) {
	if a.LT(b) {
		return math.Int{}, types.ErrMathOverflow.Wrapf("cannot subtract %s from %s", b, a)
	}
	return a.Sub(b), nil
}

// SafeMul multiplies two math.Int values with overflow checking.
func SafeMul(a, b math.Int) (math.Int, error) {
	result := new(big.Int).Mul(a.BigInt(), b.BigInt())
	if err := checkUint128(result); err != nil {
		return math.Int{}, err
	}
	return math.NewIntFromBigInt(result), nil
}

// SafeQuo divides two math.Int values with division-by-zero checking.
func SafeQuo(a, b math.Int) (math.Int, error) {
	if b.IsZero() {
		return math.Int{}, types.ErrMathOverflow.Wrap("division by zero")
	}
	result := new(big.Int).Quo(a.BigInt(), b.BigInt())
	if err := checkUint128(result); err != nil {
		return math.Int{}, err
	}
	return math.NewIntFromBigInt(result), nil
}

// SafeMulDiv performs (a * b) / c; the intermediate product is held to the
// same 128-bit ceiling as every other value.
func SafeMulDiv(a, b, c math.Int) (math.Int, error) {
	product, err := SafeMul(a, b)
	if err != nil {
		return math.Int{}, err
	}
	return SafeQuo(product, c)
}
