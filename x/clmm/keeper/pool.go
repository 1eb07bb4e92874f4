package keeper

import (
	"context"
	"sort"

	"cosmossdk.io/math"

	"github.com/clover-dex/clover/x/clmm/types"
)

// InitializePool creates a new trading pool for an asset pair over a fixed
// tick range. Identity fields are immutable afterwards; liquidity and fee
// totals start at zero and only the add-liquidity and swap operations may
// change the pool's numeric state from here on.
//
// Returns ErrInvalidTickRange when tick_lower >= tick_upper,
// ErrPoolAlreadyExists when a pool for the same (pair, range) identity
// exists.
func (k *Keeper) InitializePool(
	ctx context.Context,
	authority string,
	assetA, assetB string,
	tickLower, tickUpper int32,
	sqrtPrice math.Int,
	feeRatePpm uint64,
) (*types.Pool, error) {
	// 1. Input validation
	if authority == "" {
		return nil, types.ErrInvalidInput.Wrap("authority cannot be empty")
	}
	if assetA == "" || assetB == "" {
		return nil, types.ErrInvalidInput.Wrap("asset identifiers cannot be empty")
	}
	if assetA == assetB {
		return nil, types.ErrInvalidInput.Wrap("cannot create pool with identical assets")
	}
	if tickLower >= tickUpper {
		return nil, types.ErrInvalidTickRange.Wrapf("tick_lower %d must be below tick_upper %d", tickLower, tickUpper)
	}
	if sqrtPrice.IsNil() || !sqrtPrice.IsPositive() {
		return nil, types.ErrInvalidInput.Wrap("initial sqrt price must be positive")
	}

	params := k.GetParams(ctx)
	if feeRatePpm > params.MaxFeeRatePpm {
		return nil, types.ErrInvalidInput.Wrapf("fee rate %d ppm exceeds maximum %d", feeRatePpm, params.MaxFeeRatePpm)
	}

	k.mu.Lock()

	// 2. Reject duplicate pool identity
	pairKey := types.PoolPairKey(assetA, assetB, tickLower, tickUpper)
	if _, ok := k.poolByPair[pairKey]; ok {
		k.mu.Unlock()
		return nil, types.ErrPoolAlreadyExists.Wrapf("pool exists for pair %s/%s range [%d, %d)", assetA, assetB, tickLower, tickUpper)
	}

	// 3. Assign identity and custody vaults
	poolID := k.nextPoolID
	k.nextPoolID++

	pool := types.Pool{
		Id:           poolID,
		AssetA:       assetA,
		AssetB:       assetB,
		VaultA:       types.PoolVaultAddress(poolID, assetA),
		VaultB:       types.PoolVaultAddress(poolID, assetB),
		TickLower:    tickLower,
		TickUpper:    tickUpper,
		SqrtPriceX64: sqrtPrice,
		Liquidity:    math.ZeroInt(),
		FeeRatePpm:   feeRatePpm,
		TotalFeesA:   math.ZeroInt(),
		TotalFeesB:   math.ZeroInt(),
		Authority:    authority,
	}

	if err := pool.Validate(); err != nil {
		k.mu.Unlock()
		return nil, err
	}

	// 4. Commit
	k.pools[poolID] = pool
	k.poolByPair[pairKey] = poolID
	k.mu.Unlock()

	k.logger.Info(types.EventTypePoolInitialized,
		types.AttributeKeyPoolID, poolID,
		types.AttributeKeyAssetA, assetA,
		types.AttributeKeyAssetB, assetB,
		types.AttributeKeySqrtPrice, sqrtPrice.String(),
		types.AttributeKeyAuthority, authority,
	)

	k.afterPoolInitialized(ctx, pool)

	return &pool, nil
}

// GetPool retrieves a pool by its unique numeric ID.
// Returns ErrPoolNotFound if the pool does not exist.
func (k *Keeper) GetPool(ctx context.Context, poolID uint64) (types.Pool, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	pool, ok := k.pools[poolID]
	if !ok {
		return types.Pool{}, types.ErrPoolNotFound.Wrapf("pool %d not found", poolID)
	}
	return pool, nil
}

// GetPoolByPair retrieves a pool by its asset pair and tick range.
func (k *Keeper) GetPoolByPair(ctx context.Context, assetA, assetB string, tickLower, tickUpper int32) (types.Pool, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	poolID, ok := k.poolByPair[types.PoolPairKey(assetA, assetB, tickLower, tickUpper)]
	if !ok {
		return types.Pool{}, types.ErrPoolNotFound.Wrapf("pool not found for pair %s/%s", assetA, assetB)
	}
	return k.pools[poolID], nil
}

// GetAllPools returns all pools ordered by ID.
func (k *Keeper) GetAllPools(ctx context.Context) []types.Pool {
	k.mu.RLock()
	defer k.mu.RUnlock()

	pools := make([]types.Pool, 0, len(k.pools))
	for _, pool := range k.pools {
		pools = append(pools, pool)
	}
	sort.Slice(pools, func(i, j int) bool { return pools[i].Id < pools[j].Id })
	return pools
}

// SpotSqrtPrice returns the pool's current sqrt price.
func (k *Keeper) SpotSqrtPrice(ctx context.Context, poolID uint64) (math.Int, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.Int{}, err
	}
	return pool.SqrtPriceX64, nil
}

// setPool commits a pool record. Callers hold the pool's operation lock.
func (k *Keeper) setPool(pool types.Pool) {
	k.mu.Lock()
	k.pools[pool.Id] = pool
	k.mu.Unlock()
}

// afterPoolInitialized fires registered hooks; failures are logged, never
// rolled back, since the pool record has already committed.
func (k *Keeper) afterPoolInitialized(ctx context.Context, pool types.Pool) {
	if k.hooks == nil {
		return
	}
	if err := k.hooks.AfterPoolInitialized(ctx, pool.Id, pool.AssetA, pool.AssetB, pool.Authority); err != nil {
		k.logger.Error("pool initialized hook failed",
			types.AttributeKeyPoolID, pool.Id, "error", err)
	}
}
