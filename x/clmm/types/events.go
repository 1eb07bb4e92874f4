package types

// Event types emitted through the keeper's structured log
const (
	EventTypePoolInitialized = "pool_initialized"
	EventTypeLiquidityAdded  = "liquidity_added"
	EventTypeSwap            = "swap"
	EventTypeOrderPlaced     = "order_placed"
)

// Log attribute keys
const (
	AttributeKeyPoolID    = "pool_id"
	AttributeKeyOrderID   = "order_id"
	AttributeKeyAssetA    = "asset_a"
	AttributeKeyAssetB    = "asset_b"
	AttributeKeyAuthority = "authority"
	AttributeKeyProvider  = "provider"
	AttributeKeyTrader    = "trader"
	AttributeKeyOwner     = "owner"
	AttributeKeyAmountIn  = "amount_in"
	AttributeKeyAmountOut = "amount_out"
	AttributeKeyAmountA   = "amount_a"
	AttributeKeyAmountB   = "amount_b"
	AttributeKeyLiquidity = "liquidity"
	AttributeKeyFee       = "fee"
	AttributeKeySqrtPrice = "sqrt_price"
	AttributeKeyDirection = "direction"
	AttributeKeyIsBid     = "is_bid"
	AttributeKeyExpiry    = "expiry"
)
