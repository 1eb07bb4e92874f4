package keeper

import (
	"context"
	"sort"
	"time"

	"cosmossdk.io/math"

	"github.com/clover-dex/clover/x/clmm/types"
)

// PlaceLimitOrder records a resting order and moves the offered asset into a
// dedicated per-order escrow account. Bids offer asset B, asks offer asset A.
// The order is pure bookkeeping from here on: no operation in this keeper
// matches, fills, cancels, or expires it. Expiry is stored data for a future
// matcher, and amount_out stays zero until one exists.
func (k *Keeper) PlaceLimitOrder(
	ctx context.Context,
	owner string,
	poolID uint64,
	amountIn, price math.Int,
	isBid bool,
	expiry time.Time,
) (*types.LimitOrder, error) {
	// 1. Input validation
	if owner == "" {
		return nil, types.ErrInvalidInput.Wrap("owner cannot be empty")
	}
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return nil, types.ErrZeroAmount.Wrap("order amount must be positive")
	}
	if price.IsNil() || !price.IsPositive() {
		return nil, types.ErrInvalidInput.Wrap("limit price must be positive")
	}

	params := k.GetParams(ctx)
	if amountIn.LT(params.MinOrderAmount) {
		return nil, types.ErrInvalidInput.Wrapf(
			"order amount %s below minimum %s", amountIn, params.MinOrderAmount)
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return nil, err
	}

	// 2. Assign identity and escrow account
	k.mu.Lock()
	orderID := k.nextOrderID
	k.nextOrderID++
	k.mu.Unlock()

	order := types.LimitOrder{
		Id:        orderID,
		Owner:     owner,
		PoolId:    poolID,
		AmountIn:  amountIn,
		AmountOut: math.ZeroInt(),
		Price:     price,
		IsBid:     isBid,
		IsFilled:  false,
		Escrow:    types.OrderEscrowAddress(orderID),
		CreatedAt: k.clock.Now(),
		Expiry:    expiry,
	}

	// 3. Escrow the offered asset
	offered := order.OfferedAsset(pool)
	if err := k.ledger.Transfer(ctx, offered, owner, order.Escrow, amountIn); err != nil {
		return nil, types.ErrTransferFailed.Wrapf("escrow %s: %v", offered, err)
	}

	// 4. Commit
	k.mu.Lock()
	k.orders[orderID] = order
	k.mu.Unlock()

	k.logger.Info(types.EventTypeOrderPlaced,
		types.AttributeKeyOrderID, orderID,
		types.AttributeKeyPoolID, poolID,
		types.AttributeKeyOwner, owner,
		types.AttributeKeyAmountIn, amountIn.String(),
		types.AttributeKeyIsBid, isBid,
		types.AttributeKeyExpiry, expiry.String(),
	)

	if k.hooks != nil {
		if err := k.hooks.AfterOrderPlaced(ctx, orderID, poolID, owner, amountIn, isBid); err != nil {
			k.logger.Error("order placed hook failed",
				types.AttributeKeyOrderID, orderID, "error", err)
		}
	}

	return &order, nil
}

// GetLimitOrder retrieves a resting order by ID.
// Returns ErrOrderNotFound if the order does not exist.
func (k *Keeper) GetLimitOrder(ctx context.Context, orderID uint64) (types.LimitOrder, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	order, ok := k.orders[orderID]
	if !ok {
		return types.LimitOrder{}, types.ErrOrderNotFound.Wrapf("order %d not found", orderID)
	}
	return order, nil
}

// OrdersByPool returns all orders resting against one pool, ordered by ID.
func (k *Keeper) OrdersByPool(ctx context.Context, poolID uint64) []types.LimitOrder {
	return k.filterOrders(func(o types.LimitOrder) bool { return o.PoolId == poolID })
}

// OrdersByOwner returns all orders placed by one owner, ordered by ID.
func (k *Keeper) OrdersByOwner(ctx context.Context, owner string) []types.LimitOrder {
	return k.filterOrders(func(o types.LimitOrder) bool { return o.Owner == owner })
}

// OpenOrders returns every unfilled order, ordered by ID. This is the
// resting book a future matching engine would consume.
func (k *Keeper) OpenOrders(ctx context.Context) []types.LimitOrder {
	return k.filterOrders(func(o types.LimitOrder) bool { return !o.IsFilled })
}

func (k *Keeper) filterOrders(keep func(types.LimitOrder) bool) []types.LimitOrder {
	k.mu.RLock()
	defer k.mu.RUnlock()

	orders := make([]types.LimitOrder, 0, len(k.orders))
	for _, order := range k.orders {
		if keep(order) {
			orders = append(orders, order)
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].Id < orders[j].Id })
	return orders
}
