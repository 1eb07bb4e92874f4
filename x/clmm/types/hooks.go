package types

import (
	"context"

	sdkmath "cosmossdk.io/math"
)

// ClmmHooks defines the interface for settlement-core callbacks. Hooks fire
// after the operation's state has committed; a hook error is logged by the
// keeper and never rolls the operation back.
type ClmmHooks interface {
	// AfterPoolInitialized is called after a new pool is created.
	AfterPoolInitialized(ctx context.Context, poolID uint64, assetA, assetB, authority string) error

	// AfterLiquidityAdded is called after a successful add-liquidity call.
	AfterLiquidityAdded(ctx context.Context, poolID uint64, provider string, amountA, amountB, liquidityDelta sdkmath.Int) error

	// AfterSwap is called after a successful swap.
	AfterSwap(ctx context.Context, poolID uint64, trader string, aToB bool, amountIn, amountOut, fee sdkmath.Int) error

	// AfterOrderPlaced is called after a limit order is escrowed.
	AfterOrderPlaced(ctx context.Context, orderID, poolID uint64, owner string, amountIn sdkmath.Int, isBid bool) error
}

// MultiClmmHooks combines multiple hooks into a single hook that calls all of them.
type MultiClmmHooks []ClmmHooks

// NewMultiClmmHooks creates a new MultiClmmHooks from a list of hooks.
func NewMultiClmmHooks(hooks ...ClmmHooks) MultiClmmHooks {
	return hooks
}

// AfterPoolInitialized calls AfterPoolInitialized on all registered hooks.
func (h MultiClmmHooks) AfterPoolInitialized(ctx context.Context, poolID uint64, assetA, assetB, authority string) error {
	for _, hook := range h {
		if hook == nil {
			continue
		}
		if err := hook.AfterPoolInitialized(ctx, poolID, assetA, assetB, authority); err != nil {
			return err
		}
	}
	return nil
}

// AfterLiquidityAdded calls AfterLiquidityAdded on all registered hooks.
func (h MultiClmmHooks) AfterLiquidityAdded(ctx context.Context, poolID uint64, provider string, amountA, amountB, liquidityDelta sdkmath.Int) error {
	for _, hook := range h {
		if hook == nil {
			continue
		}
		if err := hook.AfterLiquidityAdded(ctx, poolID, provider, amountA, amountB, liquidityDelta); err != nil {
			return err
		}
	}
	return nil
}

// AfterSwap calls AfterSwap on all registered hooks.
func (h MultiClmmHooks) AfterSwap(ctx context.Context, poolID uint64, trader string, aToB bool, amountIn, amountOut, fee sdkmath.Int) error {
	for _, hook := range h {
		if hook == nil {
			continue
		}
		if err := hook.AfterSwap(ctx, poolID, trader, aToB, amountIn, amountOut, fee); err != nil {
			return err
		}
	}
	return nil
}

// AfterOrderPlaced calls AfterOrderPlaced on all registered hooks.
func (h MultiClmmHooks) AfterOrderPlaced(ctx context.Context, orderID, poolID uint64, owner string, amountIn sdkmath.Int, isBid bool) error {
	for _, hook := range h {
		if hook == nil {
			continue
		}
		if err := hook.AfterOrderPlaced(ctx, orderID, poolID, owner, amountIn, isBid); err != nil {
			return err
		}
	}
	return nil
}
