package pricemath_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/clover-dex/clover/x/clmm/pricemath"
	"github.com/clover-dex/clover/x/clmm/types"
)

func TestTickToSqrtPrice_KnownValues(t *testing.T) {
	tests := []struct {
		name string
		tick int32
		want int64
	}{
		{"origin tick", 0, 1_000_000},
		{"reference tick", 1000, 2_000_000},
		{"lower fixture tick", 500, 1_500_000},
		{"upper fixture tick", 3000, 4_000_000},
		{"offset floor", -1000, 0},
		{"negative in-domain", -500, 500_000},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := pricemath.TickToSqrtPrice(tc.tick)
			require.NoError(t, err)
			require.Equal(t, math.NewInt(tc.want), got)
		})
	}
}

func TestTickToSqrtPrice_BelowDomain(t *testing.T) {
	_, err := pricemath.TickToSqrtPrice(-1001)
	require.ErrorIs(t, err, types.ErrMathOverflow)

	_, err = pricemath.TickToSqrtPrice(-2_000_000)
	require.ErrorIs(t, err, types.ErrMathOverflow)
}

func TestTickToSqrtPrice_Monotonic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		tick := rapid.Int32Range(-1000, 1<<30).Draw(rt, "tick")

		price, err := pricemath.TickToSqrtPrice(tick)
		require.NoError(rt, err)

		next, err := pricemath.TickToSqrtPrice(tick + 1)
		require.NoError(rt, err)

		require.True(rt, next.GT(price), "tick %d price %s not below tick %d price %s",
			tick, price, tick+1, next)
	})
}
