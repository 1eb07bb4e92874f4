package keeper_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/clover-dex/clover/testutil"
	"github.com/clover-dex/clover/x/clmm/keeper"
	"github.com/clover-dex/clover/x/clmm/types"
)

const (
	assetA = "usol"
	assetB = "uusdc"

	authority = "clover1authority"
	provider  = "clover1provider"
	trader    = "clover1trader"
)

var (
	testGenesisTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	errHookRejected = errors.New("hook rejected")
)

type fixture struct {
	keeper *keeper.Keeper
	ledger *testutil.Ledger
	clock  *testutil.Clock
	ctx    context.Context
}

func newFixture(t *testing.T, opts ...keeper.Option) *fixture {
	t.Helper()
	ledger := testutil.NewLedger()
	clock := testutil.NewClock(testGenesisTime)

	for _, account := range []string{authority, provider, trader} {
		ledger.Fund(assetA, account, math.NewInt(1_000_000_000_000))
		ledger.Fund(assetB, account, math.NewInt(1_000_000_000_000_000))
	}

	return &fixture{
		keeper: keeper.NewKeeper(ledger, clock, log.NewNopLogger(), opts...),
		ledger: ledger,
		clock:  clock,
		ctx:    context.Background(),
	}
}

// setupPool creates the reference pool: assets usol/uusdc over ticks
// [500, 3000), sqrt price 2_000_000, fee 3000 ppm.
func (f *fixture) setupPool(t *testing.T) types.Pool {
	t.Helper()
	pool, err := f.keeper.InitializePool(f.ctx, authority, assetA, assetB,
		500, 3000, math.NewInt(2_000_000), 3000)
	require.NoError(t, err)
	return *pool
}

// setupFundedPool creates the reference pool and seeds it with liquidity
// 1_000_000 from the provider.
func (f *fixture) setupFundedPool(t *testing.T) types.Pool {
	t.Helper()
	pool := f.setupPool(t)

	delta, err := f.keeper.AddLiquidity(f.ctx, provider, pool.Id,
		math.NewInt(1_000_000), math.NewInt(500_000_000_000),
		math.ZeroInt(), math.ZeroInt())
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_000_000), delta)

	funded, err := f.keeper.GetPool(f.ctx, pool.Id)
	require.NoError(t, err)
	return funded
}

func (f *fixture) balance(t *testing.T, asset, account string) math.Int {
	t.Helper()
	balance, err := f.ledger.Balance(f.ctx, asset, account)
	require.NoError(t, err)
	return balance
}

// recordingHooks captures every callback invocation.
type recordingHooks struct {
	poolsInitialized []uint64
	liquidityAdds    []uint64
	swaps            []uint64
	ordersPlaced     []uint64
	err              error
}

func (h *recordingHooks) AfterPoolInitialized(ctx context.Context, poolID uint64, assetA, assetB, authority string) error {
	h.poolsInitialized = append(h.poolsInitialized, poolID)
	return h.err
}

func (h *recordingHooks) AfterLiquidityAdded(ctx context.Context, poolID uint64, provider string, amountA, amountB, liquidityDelta math.Int) error {
	h.liquidityAdds = append(h.liquidityAdds, poolID)
	return h.err
}

func (h *recordingHooks) AfterSwap(ctx context.Context, poolID uint64, trader string, aToB bool, amountIn, amountOut, fee math.Int) error {
	h.swaps = append(h.swaps, poolID)
	return h.err
}

func (h *recordingHooks) AfterOrderPlaced(ctx context.Context, orderID, poolID uint64, owner string, amountIn math.Int, isBid bool) error {
	h.ordersPlaced = append(h.ordersPlaced, orderID)
	return h.err
}
