package keeper

import (
	"context"

	"github.com/clover-dex/clover/x/clmm/types"
)

// InitGenesis loads a validated genesis state into the keeper, replacing
// whatever it held. The pair index is rebuilt from the pool records rather
// than persisted.
func (k *Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return err
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	k.params = genState.Params

	k.pools = make(map[uint64]types.Pool, len(genState.Pools))
	k.poolByPair = make(map[string]uint64, len(genState.Pools))
	for _, pool := range genState.Pools {
		k.pools[pool.Id] = pool
		k.poolByPair[types.PoolPairKey(pool.AssetA, pool.AssetB, pool.TickLower, pool.TickUpper)] = pool.Id
	}

	k.positions = make(map[string]types.Position, len(genState.Positions))
	for _, position := range genState.Positions {
		k.positions[types.PositionKey(position.PoolId, position.Owner)] = position
	}

	k.orders = make(map[uint64]types.LimitOrder, len(genState.Orders))
	for _, order := range genState.Orders {
		k.orders[order.Id] = order
	}

	k.nextPoolID = genState.NextPoolId
	k.nextOrderID = genState.NextOrderId

	return nil
}

// ExportGenesis returns the keeper's full state in a deterministic order.
func (k *Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	genState := &types.GenesisState{
		Params:    k.GetParams(ctx),
		Pools:     k.GetAllPools(ctx),
		Positions: k.GetAllPositions(ctx),
		Orders:    k.filterOrders(func(types.LimitOrder) bool { return true }),
	}

	k.mu.RLock()
	genState.NextPoolId = k.nextPoolID
	genState.NextOrderId = k.nextOrderID
	k.mu.RUnlock()

	return genState
}
