package keeper

import (
	"context"
	"sort"

	"cosmossdk.io/math"

	"github.com/clover-dex/clover/x/clmm/pricemath"
	"github.com/clover-dex/clover/x/clmm/types"
)

// AddLiquidity deposits both assets into the pool's custody vaults and
// credits the computed liquidity delta to the pool and to the provider's
// position, creating the position on first use with the pool's tick bounds.
//
// All computation happens before any custody movement: the liquidity delta
// and both post-state values are derived first, the two vault transfers are
// issued only once every check has passed, and the records commit only after
// both transfers succeeded. Any arithmetic or transfer failure aborts with
// no record mutation.
//
// amountAMin/amountBMin are accepted as slippage bounds. Deposits always
// consume the full amounts in this design, so a minimum at or below its
// amount is trivially satisfied; a minimum above its amount is inconsistent
// input and rejected.
func (k *Keeper) AddLiquidity(
	ctx context.Context,
	provider string,
	poolID uint64,
	amountA, amountB, amountAMin, amountBMin math.Int,
) (math.Int, error) {
	// 1. Input validation
	if provider == "" {
		return math.Int{}, types.ErrInvalidInput.Wrap("provider cannot be empty")
	}
	if amountA.IsNil() || !amountA.IsPositive() {
		return math.Int{}, types.ErrInvalidInput.Wrap("amount A must be positive")
	}
	if amountB.IsNil() || !amountB.IsPositive() {
		return math.Int{}, types.ErrInvalidInput.Wrap("amount B must be positive")
	}
	if amountAMin.IsNil() || amountAMin.IsNegative() || amountBMin.IsNil() || amountBMin.IsNegative() {
		return math.Int{}, types.ErrInvalidInput.Wrap("minimum amounts cannot be negative")
	}
	if amountAMin.GT(amountA) || amountBMin.GT(amountB) {
		return math.Int{}, types.ErrInvalidInput.Wrap("minimum amount exceeds deposit amount")
	}

	lock := k.lockPool(poolID)
	lock.Lock()
	defer lock.Unlock()

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.Int{}, err
	}

	// 2. Compute the liquidity delta and both post-states
	delta, err := pricemath.LiquidityDelta(pool.SqrtPriceX64, pool.TickLower, pool.TickUpper, amountA, amountB)
	if err != nil {
		return math.Int{}, err
	}

	newPoolLiquidity, err := SafeAdd(pool.Liquidity, delta)
	if err != nil {
		return math.Int{}, err
	}

	position, found := k.getPosition(poolID, provider)
	if !found {
		position = types.Position{
			PoolId:           poolID,
			Owner:            provider,
			Liquidity:        math.ZeroInt(),
			TickLower:        pool.TickLower,
			TickUpper:        pool.TickUpper,
			FeeGrowthInsideA: math.ZeroInt(),
			FeeGrowthInsideB: math.ZeroInt(),
		}
	}
	newPositionLiquidity, err := SafeAdd(position.Liquidity, delta)
	if err != nil {
		return math.Int{}, err
	}

	// 3. Custody movements, only after every check passed
	if err := k.ledger.Transfer(ctx, pool.AssetA, provider, pool.VaultA, amountA); err != nil {
		return math.Int{}, types.ErrTransferFailed.Wrapf("deposit %s: %v", pool.AssetA, err)
	}
	if err := k.ledger.Transfer(ctx, pool.AssetB, provider, pool.VaultB, amountB); err != nil {
		return math.Int{}, types.ErrTransferFailed.Wrapf("deposit %s: %v", pool.AssetB, err)
	}

	// 4. Commit pool and position together
	pool.Liquidity = newPoolLiquidity
	position.Liquidity = newPositionLiquidity

	k.mu.Lock()
	k.pools[pool.Id] = pool
	k.positions[types.PositionKey(poolID, provider)] = position
	k.mu.Unlock()

	k.logger.Info(types.EventTypeLiquidityAdded,
		types.AttributeKeyPoolID, poolID,
		types.AttributeKeyProvider, provider,
		types.AttributeKeyAmountA, amountA.String(),
		types.AttributeKeyAmountB, amountB.String(),
		types.AttributeKeyLiquidity, delta.String(),
	)

	if k.hooks != nil {
		if err := k.hooks.AfterLiquidityAdded(ctx, poolID, provider, amountA, amountB, delta); err != nil {
			k.logger.Error("liquidity added hook failed",
				types.AttributeKeyPoolID, poolID, "error", err)
		}
	}

	return delta, nil
}

// GetPosition retrieves the liquidity position of one owner in one pool.
func (k *Keeper) GetPosition(ctx context.Context, poolID uint64, owner string) (types.Position, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	position, ok := k.positions[types.PositionKey(poolID, owner)]
	if !ok {
		return types.Position{}, types.ErrPositionNotFound.Wrapf("no position for %s in pool %d", owner, poolID)
	}
	return position, nil
}

// GetAllPositions returns all positions ordered by pool then owner.
func (k *Keeper) GetAllPositions(ctx context.Context) []types.Position {
	k.mu.RLock()
	defer k.mu.RUnlock()

	positions := make([]types.Position, 0, len(k.positions))
	for _, position := range k.positions {
		positions = append(positions, position)
	}
	sort.Slice(positions, func(i, j int) bool {
		if positions[i].PoolId != positions[j].PoolId {
			return positions[i].PoolId < positions[j].PoolId
		}
		return positions[i].Owner < positions[j].Owner
	})
	return positions
}

func (k *Keeper) getPosition(poolID uint64, owner string) (types.Position, bool) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	position, ok := k.positions[types.PositionKey(poolID, owner)]
	return position, ok
}
