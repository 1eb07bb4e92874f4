package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/clover-dex/clover/x/clmm/keeper"
	"github.com/clover-dex/clover/x/clmm/types"
)

func TestParams_Default(t *testing.T) {
	f := newFixture(t)
	require.Equal(t, types.DefaultParams(), f.keeper.GetParams(f.ctx))
}

func TestSetParams(t *testing.T) {
	f := newFixture(t)

	params := types.Params{MaxFeeRatePpm: 50_000, MinOrderAmount: math.NewInt(100)}
	require.NoError(t, f.keeper.SetParams(f.ctx, params))
	require.Equal(t, params, f.keeper.GetParams(f.ctx))

	// New pools are bound by the lowered ceiling.
	_, err := f.keeper.InitializePool(f.ctx, authority, assetA, assetB,
		500, 3000, math.NewInt(2_000_000), 60_000)
	require.ErrorIs(t, err, types.ErrInvalidInput)
}

func TestSetParams_RejectsInvalid(t *testing.T) {
	f := newFixture(t)

	err := f.keeper.SetParams(f.ctx, types.Params{
		MaxFeeRatePpm:  2_000_000,
		MinOrderAmount: math.NewInt(1),
	})
	require.Error(t, err)
	require.Equal(t, types.DefaultParams(), f.keeper.GetParams(f.ctx))
}

func TestWithParamsOption(t *testing.T) {
	params := types.Params{MaxFeeRatePpm: 10_000, MinOrderAmount: math.NewInt(50)}
	f := newFixture(t, keeper.WithParams(params))
	require.Equal(t, params, f.keeper.GetParams(f.ctx))
}

func TestMultiHooks_CallsAllInOrder(t *testing.T) {
	first := &recordingHooks{}
	second := &recordingHooks{}
	f := newFixture(t, keeper.WithHooks(types.NewMultiClmmHooks(first, second)))

	pool := f.setupFundedPool(t)

	require.Equal(t, []uint64{pool.Id}, first.poolsInitialized)
	require.Equal(t, []uint64{pool.Id}, second.poolsInitialized)
	require.Equal(t, []uint64{pool.Id}, first.liquidityAdds)
	require.Equal(t, []uint64{pool.Id}, second.liquidityAdds)
}
