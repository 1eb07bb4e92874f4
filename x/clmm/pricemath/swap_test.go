package pricemath_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/clover-dex/clover/x/clmm/pricemath"
	"github.com/clover-dex/clover/x/clmm/types"
)

func TestFeeAmount_FlooredPerCall(t *testing.T) {
	tests := []struct {
		name       string
		amountIn   int64
		feeRatePpm uint64
		want       int64
	}{
		{"exact division", 10_000, 3000, 30},
		{"floored", 555, 3000, 1},
		{"below one unit", 100, 3000, 0},
		{"zero rate", 10_000, 0, 0},
		{"full rate", 10_000, 1_000_000, 10_000},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fee, err := pricemath.FeeAmount(math.NewInt(tc.amountIn), tc.feeRatePpm)
			require.NoError(t, err)
			require.Equal(t, math.NewInt(tc.want), fee)
		})
	}
}

func TestFeeAmount_FlooringLosesDust(t *testing.T) {
	// Three swaps of 555 at 3000 ppm each floor to 1, totalling 3;
	// one swap of the aggregate 1665 would floor to 4.
	perCall := math.ZeroInt()
	for i := 0; i < 3; i++ {
		fee, err := pricemath.FeeAmount(math.NewInt(555), 3000)
		require.NoError(t, err)
		perCall = perCall.Add(fee)
	}
	aggregate, err := pricemath.FeeAmount(math.NewInt(1665), 3000)
	require.NoError(t, err)

	require.Equal(t, math.NewInt(3), perCall)
	require.Equal(t, math.NewInt(4), aggregate)
	require.True(t, perCall.LT(aggregate))
}

func TestSwapOutput_ReferenceScenario(t *testing.T) {
	// liquidity 1_000_000, post-fee input 9_970:
	// out = 1_000_000 - 10^12/1_009_970 = 9_872.
	out, err := pricemath.SwapOutput(math.NewInt(1_000_000), math.NewInt(9_970))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(9_872), out)
}

func TestSwapOutput_ZeroLiquidity(t *testing.T) {
	// k and both reserves are zero, so the division has a zero divisor
	// only when the input is also zero; with input the output is zero.
	out, err := pricemath.SwapOutput(math.NewInt(0), math.NewInt(10_000))
	require.NoError(t, err)
	require.True(t, out.IsZero())
}

func TestSwapOutput_NeverExceedsInput(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		liquidity := rapid.Int64Range(1, 1<<50).Draw(rt, "liquidity")
		amountIn := rapid.Int64Range(1, 1<<50).Draw(rt, "amountIn")

		out, err := pricemath.SwapOutput(math.NewInt(liquidity), math.NewInt(amountIn))
		require.NoError(rt, err)
		require.True(rt, out.LTE(math.NewInt(amountIn)),
			"output %s above input %d at liquidity %d", out, amountIn, liquidity)
	})
}

func TestSwapOutput_RoundTripNeverProfits(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		liquidity := rapid.Int64Range(1_000, 1<<40).Draw(rt, "liquidity")
		amountIn := rapid.Int64Range(1, 1<<30).Draw(rt, "amountIn")

		out, err := pricemath.SwapOutput(math.NewInt(liquidity), math.NewInt(amountIn))
		require.NoError(rt, err)

		if out.IsZero() {
			return
		}
		back, err := pricemath.SwapOutput(math.NewInt(liquidity), out)
		require.NoError(rt, err)
		require.True(rt, back.LTE(math.NewInt(amountIn)),
			"round trip returned %s from %d", back, amountIn)
	})
}

func TestNextSqrtPrice_BothDirections(t *testing.T) {
	price := math.NewInt(2_000_000)
	liquidity := math.NewInt(1_000_000)
	amountIn := math.NewInt(9_970)

	down, err := pricemath.NextSqrtPrice(price, liquidity, amountIn, true)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_990_030), down)

	up, err := pricemath.NextSqrtPrice(price, liquidity, amountIn, false)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(2_009_970), up)
}

func TestNextSqrtPrice_ZeroLiquidity(t *testing.T) {
	_, err := pricemath.NextSqrtPrice(math.NewInt(2_000_000), math.NewInt(0), math.NewInt(1), true)
	require.ErrorIs(t, err, types.ErrMathOverflow)
}

func TestNextSqrtPrice_UnderflowPastZero(t *testing.T) {
	// A sell large enough to push the price below zero underflows.
	_, err := pricemath.NextSqrtPrice(math.NewInt(1_000), math.NewInt(1_000_000), math.NewInt(2_000_000), true)
	require.ErrorIs(t, err, types.ErrMathOverflow)
}
