package types

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
)

// GenesisState is the full exported state of the clmm module.
type GenesisState struct {
	Params      Params       `json:"params"`
	Pools       []Pool       `json:"pools"`
	Positions   []Position   `json:"positions"`
	Orders      []LimitOrder `json:"orders"`
	NextPoolId  uint64       `json:"next_pool_id"`
	NextOrderId uint64       `json:"next_order_id"`
}

// DefaultGenesis returns the default genesis state for the clmm module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:      DefaultParams(),
		Pools:       []Pool{},
		Positions:   []Position{},
		Orders:      []LimitOrder{},
		NextPoolId:  1,
		NextOrderId: 1,
	}
}

// Validate ensures the genesis state is well-formed: every record validates,
// identifiers are unique and below their counters, positions and orders
// reference existing pools, and per pool the aggregate position liquidity
// does not exceed the pool's recorded liquidity.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}

	poolLiquidity := make(map[uint64]sdkmath.Int, len(gs.Pools))
	for _, pool := range gs.Pools {
		if err := pool.Validate(); err != nil {
			return fmt.Errorf("invalid pool %d: %w", pool.Id, err)
		}
		if _, ok := poolLiquidity[pool.Id]; ok {
			return fmt.Errorf("duplicate pool id %d", pool.Id)
		}
		if pool.Id >= gs.NextPoolId {
			return fmt.Errorf("pool id %d not below next pool id %d", pool.Id, gs.NextPoolId)
		}
		poolLiquidity[pool.Id] = pool.Liquidity
	}

	positionTotals := make(map[uint64]sdkmath.Int, len(gs.Pools))
	seenPositions := make(map[string]struct{}, len(gs.Positions))
	for _, pos := range gs.Positions {
		if err := pos.Validate(); err != nil {
			return fmt.Errorf("invalid position %s/%d: %w", pos.Owner, pos.PoolId, err)
		}
		if _, ok := poolLiquidity[pos.PoolId]; !ok {
			return fmt.Errorf("position %s references unknown pool %d", pos.Owner, pos.PoolId)
		}
		key := PositionKey(pos.PoolId, pos.Owner)
		if _, ok := seenPositions[key]; ok {
			return fmt.Errorf("duplicate position %s", key)
		}
		seenPositions[key] = struct{}{}

		total, ok := positionTotals[pos.PoolId]
		if !ok {
			total = sdkmath.ZeroInt()
		}
		positionTotals[pos.PoolId] = total.Add(pos.Liquidity)
	}
	for poolID, total := range positionTotals {
		if total.GT(poolLiquidity[poolID]) {
			return fmt.Errorf("pool %d: aggregate position liquidity %s exceeds pool liquidity %s",
				poolID, total, poolLiquidity[poolID])
		}
	}

	seenOrders := make(map[uint64]struct{}, len(gs.Orders))
	for _, order := range gs.Orders {
		if err := order.Validate(); err != nil {
			return fmt.Errorf("invalid order %d: %w", order.Id, err)
		}
		if _, ok := poolLiquidity[order.PoolId]; !ok {
			return fmt.Errorf("order %d references unknown pool %d", order.Id, order.PoolId)
		}
		if _, ok := seenOrders[order.Id]; ok {
			return fmt.Errorf("duplicate order id %d", order.Id)
		}
		if order.Id >= gs.NextOrderId {
			return fmt.Errorf("order id %d not below next order id %d", order.Id, gs.NextOrderId)
		}
		seenOrders[order.Id] = struct{}{}
	}

	return nil
}
