package keeper

import (
	"context"

	"cosmossdk.io/math"

	"github.com/clover-dex/clover/x/clmm/pricemath"
	"github.com/clover-dex/clover/x/clmm/types"
)

// Swap trades an exact input amount against a pool and returns the output
// amount delivered to the trader. The fee is charged on the gross input and
// accrues to the pool's fee counter for the input asset; the remainder drives
// both the output formula and the price update. Pool liquidity is unchanged
// by swaps.
//
// The output must meet amountOutMin or the swap aborts with
// ErrSlippageExceeded before any custody movement, leaving the pool
// untouched. The gross input lands in the input vault (fees commingle with
// principal there; TotalFees* is the accounting split), the output leaves
// the output vault, and the pool record commits only after both transfers
// succeeded.
func (k *Keeper) Swap(
	ctx context.Context,
	trader string,
	poolID uint64,
	amountIn, amountOutMin math.Int,
	aToB bool,
) (math.Int, error) {
	// 1. Input validation
	if trader == "" {
		return math.Int{}, types.ErrInvalidInput.Wrap("trader cannot be empty")
	}
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return math.Int{}, types.ErrZeroAmount.Wrap("swap input must be positive")
	}
	if amountOutMin.IsNil() || amountOutMin.IsNegative() {
		return math.Int{}, types.ErrInvalidInput.Wrap("minimum output cannot be negative")
	}

	lock := k.lockPool(poolID)
	lock.Lock()
	defer lock.Unlock()

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.Int{}, err
	}

	// 2. Full settlement computation before any custody movement
	fee, err := pricemath.FeeAmount(amountIn, pool.FeeRatePpm)
	if err != nil {
		return math.Int{}, err
	}
	inAfterFee, err := SafeSub(amountIn, fee)
	if err != nil {
		return math.Int{}, err
	}
	amountOut, err := pricemath.SwapOutput(pool.Liquidity, inAfterFee)
	if err != nil {
		return math.Int{}, err
	}

	// 3. Slippage protection
	if amountOut.LT(amountOutMin) {
		return math.Int{}, types.ErrSlippageExceeded.Wrapf(
			"output %s below minimum %s", amountOut, amountOutMin)
	}

	newSqrtPrice, err := pricemath.NextSqrtPrice(pool.SqrtPriceX64, pool.Liquidity, inAfterFee, aToB)
	if err != nil {
		return math.Int{}, err
	}

	var newFeesA, newFeesB math.Int
	if aToB {
		newFeesA, err = SafeAdd(pool.TotalFeesA, fee)
		newFeesB = pool.TotalFeesB
	} else {
		newFeesB, err = SafeAdd(pool.TotalFeesB, fee)
		newFeesA = pool.TotalFeesA
	}
	if err != nil {
		return math.Int{}, err
	}

	// 4. Custody movements
	inAsset, inVault := pool.InputAsset(aToB)
	outAsset, outVault := pool.OutputAsset(aToB)

	if err := k.ledger.Transfer(ctx, inAsset, trader, inVault, amountIn); err != nil {
		return math.Int{}, types.ErrTransferFailed.Wrapf("swap input %s: %v", inAsset, err)
	}
	if err := k.ledger.Transfer(ctx, outAsset, outVault, trader, amountOut); err != nil {
		return math.Int{}, types.ErrTransferFailed.Wrapf("swap output %s: %v", outAsset, err)
	}

	// 5. Commit
	pool.SqrtPriceX64 = newSqrtPrice
	pool.TotalFeesA = newFeesA
	pool.TotalFeesB = newFeesB
	k.setPool(pool)

	k.logger.Info(types.EventTypeSwap,
		types.AttributeKeyPoolID, poolID,
		types.AttributeKeyTrader, trader,
		types.AttributeKeyAmountIn, amountIn.String(),
		types.AttributeKeyAmountOut, amountOut.String(),
		types.AttributeKeyFee, fee.String(),
		types.AttributeKeySqrtPrice, newSqrtPrice.String(),
		types.AttributeKeyDirection, swapDirection(aToB),
	)

	if k.hooks != nil {
		if err := k.hooks.AfterSwap(ctx, poolID, trader, aToB, amountIn, amountOut, fee); err != nil {
			k.logger.Error("swap hook failed",
				types.AttributeKeyPoolID, poolID, "error", err)
		}
	}

	return amountOut, nil
}

// SimulateSwap quotes the output and fee of a swap without touching pool
// state or custody. Quotes use the same arithmetic as Swap, so a quote only
// diverges from execution when another operation commits in between.
func (k *Keeper) SimulateSwap(
	ctx context.Context,
	poolID uint64,
	amountIn math.Int,
	aToB bool,
) (amountOut, fee math.Int, err error) {
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return math.Int{}, math.Int{}, types.ErrZeroAmount.Wrap("swap input must be positive")
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	fee, err = pricemath.FeeAmount(amountIn, pool.FeeRatePpm)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	inAfterFee, err := SafeSub(amountIn, fee)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	amountOut, err = pricemath.SwapOutput(pool.Liquidity, inAfterFee)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	return amountOut, fee, nil
}

func swapDirection(aToB bool) string {
	if aToB {
		return "a_to_b"
	}
	return "b_to_a"
}
