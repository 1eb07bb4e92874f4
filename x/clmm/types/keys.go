package types

import (
	"fmt"
)

const (
	// ModuleName defines the module name
	ModuleName = "clmm"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName
)

// PoolPairKey returns the lookup key for a pool, derived from its asset pair
// and tick range. The (pair, range) tuple is the pool's identity; at most one
// pool exists per key.
func PoolPairKey(assetA, assetB string, tickLower, tickUpper int32) string {
	return fmt.Sprintf("%s/%s/%d/%d", assetA, assetB, tickLower, tickUpper)
}

// PoolVaultAddress returns the custody account identifier holding one side of
// a pool's reserves.
func PoolVaultAddress(poolID uint64, asset string) string {
	return fmt.Sprintf("%s/pool/%d/vault/%s", ModuleName, poolID, asset)
}

// OrderEscrowAddress returns the custody account identifier holding the
// offered asset of a resting limit order.
func OrderEscrowAddress(orderID uint64) string {
	return fmt.Sprintf("%s/order/%d/escrow", ModuleName, orderID)
}

// PositionKey returns the lookup key for a liquidity position. One position
// exists per (pool, owner).
func PositionKey(poolID uint64, owner string) string {
	return fmt.Sprintf("%d/%s", poolID, owner)
}
