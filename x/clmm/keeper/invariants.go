package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"

	"github.com/clover-dex/clover/x/clmm/pricemath"
	"github.com/clover-dex/clover/x/clmm/types"
)

// Invariant is one reconciliation check over the keeper's full state. The
// returned string describes the violations found; the bool reports whether
// the invariant is broken.
type Invariant func(ctx context.Context) (string, bool)

// AllInvariants runs every invariant and stops at the first broken one.
func (k *Keeper) AllInvariants() Invariant {
	return func(ctx context.Context) (string, bool) {
		invariants := []Invariant{
			k.PositionLiquidityInvariant(),
			k.PriceBoundsInvariant(),
			k.RecordValidityInvariant(),
			k.EscrowBalanceInvariant(),
		}
		for _, invariant := range invariants {
			if msg, broken := invariant(ctx); broken {
				return msg, true
			}
		}
		return "", false
	}
}

// CheckInvariants runs the full reconciliation pass, returning an error when
// any invariant is broken.
func (k *Keeper) CheckInvariants(ctx context.Context) error {
	if msg, broken := k.AllInvariants()(ctx); broken {
		return types.ErrInvalidState.Wrap(msg)
	}
	return nil
}

// PositionLiquidityInvariant checks that the positions recorded against each
// pool never claim more liquidity in aggregate than the pool holds.
func (k *Keeper) PositionLiquidityInvariant() Invariant {
	return func(ctx context.Context) (string, bool) {
		var (
			msg   string
			count int
		)
		for _, pool := range k.GetAllPools(ctx) {
			total := math.ZeroInt()
			for _, position := range k.GetAllPositions(ctx) {
				if position.PoolId == pool.Id {
					total = total.Add(position.Liquidity)
				}
			}
			if total.GT(pool.Liquidity) {
				count++
				msg += fmt.Sprintf("pool %d: aggregate position liquidity %s exceeds pool liquidity %s\n",
					pool.Id, total, pool.Liquidity)
			}
		}
		return formatInvariant("position-liquidity", count, msg), count != 0
	}
}

// PriceBoundsInvariant checks that every pool holding liquidity has its sqrt
// price strictly inside the sqrt prices of its tick bounds.
func (k *Keeper) PriceBoundsInvariant() Invariant {
	return func(ctx context.Context) (string, bool) {
		var (
			msg   string
			count int
		)
		for _, pool := range k.GetAllPools(ctx) {
			if !pool.Liquidity.IsPositive() {
				continue
			}
			lower, err := pricemath.TickToSqrtPrice(pool.TickLower)
			if err != nil {
				count++
				msg += fmt.Sprintf("pool %d: lower tick %d unrepresentable: %v\n", pool.Id, pool.TickLower, err)
				continue
			}
			upper, err := pricemath.TickToSqrtPrice(pool.TickUpper)
			if err != nil {
				count++
				msg += fmt.Sprintf("pool %d: upper tick %d unrepresentable: %v\n", pool.Id, pool.TickUpper, err)
				continue
			}
			if !pool.SqrtPriceX64.GT(lower) || !pool.SqrtPriceX64.LT(upper) {
				count++
				msg += fmt.Sprintf("pool %d: sqrt price %s outside bounds (%s, %s)\n",
					pool.Id, pool.SqrtPriceX64, lower, upper)
			}
		}
		return formatInvariant("price-bounds", count, msg), count != 0
	}
}

// RecordValidityInvariant re-validates every stored record.
func (k *Keeper) RecordValidityInvariant() Invariant {
	return func(ctx context.Context) (string, bool) {
		var (
			msg   string
			count int
		)
		for _, pool := range k.GetAllPools(ctx) {
			if err := pool.Validate(); err != nil {
				count++
				msg += fmt.Sprintf("pool %d: %v\n", pool.Id, err)
			}
		}
		for _, position := range k.GetAllPositions(ctx) {
			if err := position.Validate(); err != nil {
				count++
				msg += fmt.Sprintf("position %d/%s: %v\n", position.PoolId, position.Owner, err)
			}
		}
		for _, order := range k.filterOrders(func(types.LimitOrder) bool { return true }) {
			if err := order.Validate(); err != nil {
				count++
				msg += fmt.Sprintf("order %d: %v\n", order.Id, err)
			}
		}
		return formatInvariant("record-validity", count, msg), count != 0
	}
}

// EscrowBalanceInvariant checks that every unfilled order's escrow account
// still holds the full offered amount. It only runs when the ledger exposes
// balance reads.
func (k *Keeper) EscrowBalanceInvariant() Invariant {
	return func(ctx context.Context) (string, bool) {
		reader, ok := k.ledger.(types.BalanceReader)
		if !ok {
			return "", false
		}
		var (
			msg   string
			count int
		)
		for _, order := range k.OpenOrders(ctx) {
			pool, err := k.GetPool(ctx, order.PoolId)
			if err != nil {
				count++
				msg += fmt.Sprintf("order %d: %v\n", order.Id, err)
				continue
			}
			offered := order.OfferedAsset(pool)
			balance, err := reader.Balance(ctx, offered, order.Escrow)
			if err != nil {
				count++
				msg += fmt.Sprintf("order %d: escrow balance read failed: %v\n", order.Id, err)
				continue
			}
			if balance.LT(order.AmountIn) {
				count++
				msg += fmt.Sprintf("order %d: escrow holds %s %s, expected at least %s\n",
					order.Id, balance, offered, order.AmountIn)
			}
		}
		return formatInvariant("escrow-balance", count, msg), count != 0
	}
}

func formatInvariant(name string, count int, msg string) string {
	return fmt.Sprintf("%s: %s invariant\nviolations found %d\n%s", types.ModuleName, name, count, msg)
}
