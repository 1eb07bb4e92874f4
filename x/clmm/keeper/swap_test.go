package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/clover-dex/clover/x/clmm/keeper"
	"github.com/clover-dex/clover/x/clmm/types"
)

func TestSwap_ReferenceScenario(t *testing.T) {
	f := newFixture(t)
	pool := f.setupFundedPool(t)

	// 10_000 in at 3000 ppm: fee 30, post-fee input 9_970, output 9_872,
	// price moves from 2_000_000 down to 1_990_030.
	out, err := f.keeper.Swap(f.ctx, trader, pool.Id,
		math.NewInt(10_000), math.NewInt(1), true)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(9_872), out)

	updated, err := f.keeper.GetPool(f.ctx, pool.Id)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_990_030), updated.SqrtPriceX64)
	require.Equal(t, math.NewInt(30), updated.TotalFeesA)
	require.True(t, updated.TotalFeesB.IsZero())
	require.Equal(t, math.NewInt(1_000_000), updated.Liquidity)
}

func TestSwap_CustodyMovements(t *testing.T) {
	f := newFixture(t)
	pool := f.setupFundedPool(t)

	traderABefore := f.balance(t, assetA, trader)
	traderBBefore := f.balance(t, assetB, trader)
	vaultABefore := f.balance(t, assetA, pool.VaultA)
	vaultBBefore := f.balance(t, assetB, pool.VaultB)

	out, err := f.keeper.Swap(f.ctx, trader, pool.Id,
		math.NewInt(10_000), math.NewInt(1), true)
	require.NoError(t, err)

	// Gross input, fee included, lands in the input vault.
	require.Equal(t, traderABefore.SubRaw(10_000), f.balance(t, assetA, trader))
	require.Equal(t, vaultABefore.AddRaw(10_000), f.balance(t, assetA, pool.VaultA))
	require.Equal(t, traderBBefore.Add(out), f.balance(t, assetB, trader))
	require.Equal(t, vaultBBefore.Sub(out), f.balance(t, assetB, pool.VaultB))
}

func TestSwap_ReverseDirection(t *testing.T) {
	f := newFixture(t)
	pool := f.setupFundedPool(t)

	out, err := f.keeper.Swap(f.ctx, trader, pool.Id,
		math.NewInt(10_000), math.NewInt(1), false)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(9_872), out)

	updated, err := f.keeper.GetPool(f.ctx, pool.Id)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(2_009_970), updated.SqrtPriceX64)
	require.True(t, updated.TotalFeesA.IsZero())
	require.Equal(t, math.NewInt(30), updated.TotalFeesB)
}

func TestSwap_SlippageExceededLeavesStateUntouched(t *testing.T) {
	f := newFixture(t)
	pool := f.setupFundedPool(t)

	traderABefore := f.balance(t, assetA, trader)

	_, err := f.keeper.Swap(f.ctx, trader, pool.Id,
		math.NewInt(10_000), math.NewInt(9_873), true)
	require.ErrorIs(t, err, types.ErrSlippageExceeded)

	unchanged, err := f.keeper.GetPool(f.ctx, pool.Id)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(2_000_000), unchanged.SqrtPriceX64)
	require.True(t, unchanged.TotalFeesA.IsZero())
	require.Equal(t, traderABefore, f.balance(t, assetA, trader))
}

func TestSwap_FeeFlooredPerCall(t *testing.T) {
	f := newFixture(t)
	pool := f.setupFundedPool(t)

	// Three swaps of 555 each floor their 1.665 fee to 1; a single swap
	// of the aggregate 1665 would have paid 4.
	for i := 0; i < 3; i++ {
		_, err := f.keeper.Swap(f.ctx, trader, pool.Id,
			math.NewInt(555), math.NewInt(1), true)
		require.NoError(t, err)
	}

	updated, err := f.keeper.GetPool(f.ctx, pool.Id)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(3), updated.TotalFeesA)
}

func TestSwap_ZeroAmount(t *testing.T) {
	f := newFixture(t)
	pool := f.setupFundedPool(t)

	_, err := f.keeper.Swap(f.ctx, trader, pool.Id,
		math.ZeroInt(), math.ZeroInt(), true)
	require.ErrorIs(t, err, types.ErrZeroAmount)
}

func TestSwap_ZeroLiquidityPool(t *testing.T) {
	f := newFixture(t)
	pool := f.setupPool(t)

	// Price impact divides by pool liquidity, which is still zero.
	_, err := f.keeper.Swap(f.ctx, trader, pool.Id,
		math.NewInt(10_000), math.ZeroInt(), true)
	require.ErrorIs(t, err, types.ErrMathOverflow)
}

func TestSwap_PoolNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.keeper.Swap(f.ctx, trader, 7,
		math.NewInt(1), math.ZeroInt(), true)
	require.ErrorIs(t, err, types.ErrPoolNotFound)
}

func TestSwap_TransferFailureLeavesStateUntouched(t *testing.T) {
	f := newFixture(t)
	pool := f.setupFundedPool(t)

	f.ledger.FailNext = true
	_, err := f.keeper.Swap(f.ctx, trader, pool.Id,
		math.NewInt(10_000), math.NewInt(1), true)
	require.ErrorIs(t, err, types.ErrTransferFailed)

	unchanged, err := f.keeper.GetPool(f.ctx, pool.Id)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(2_000_000), unchanged.SqrtPriceX64)
	require.True(t, unchanged.TotalFeesA.IsZero())
}

func TestSwap_FiresHook(t *testing.T) {
	hooks := &recordingHooks{}
	f := newFixture(t, keeper.WithHooks(hooks))
	pool := f.setupFundedPool(t)

	_, err := f.keeper.Swap(f.ctx, trader, pool.Id,
		math.NewInt(10_000), math.NewInt(1), true)
	require.NoError(t, err)
	require.Equal(t, []uint64{pool.Id}, hooks.swaps)
}

func TestSimulateSwap_MatchesExecution(t *testing.T) {
	f := newFixture(t)
	pool := f.setupFundedPool(t)

	quotedOut, quotedFee, err := f.keeper.SimulateSwap(f.ctx, pool.Id, math.NewInt(10_000), true)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(9_872), quotedOut)
	require.Equal(t, math.NewInt(30), quotedFee)

	// Quoting touched nothing.
	unchanged, err := f.keeper.GetPool(f.ctx, pool.Id)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(2_000_000), unchanged.SqrtPriceX64)

	out, err := f.keeper.Swap(f.ctx, trader, pool.Id, math.NewInt(10_000), math.NewInt(1), true)
	require.NoError(t, err)
	require.Equal(t, quotedOut, out)
}
