package types

import (
	"time"

	"cosmossdk.io/math"
)

// LimitOrder is a resting order whose offered asset sits in a dedicated
// escrow custody account. This core only places orders; filling, cancelling
// and expiring them belongs to a matching process outside it, which is the
// only writer of AmountOut and IsFilled. The open-order queries on the
// keeper are the extension points such a matcher consumes.
type LimitOrder struct {
	// Id is the unique order identifier
	Id uint64 `json:"id"`
	// Owner is the account that placed the order
	Owner string `json:"owner"`
	// PoolId references the pool the order rests on
	PoolId uint64 `json:"pool_id"`
	// AmountIn is the escrowed amount of the offered asset
	AmountIn math.Int `json:"amount_in"`
	// AmountOut is the filled amount, zero until a matcher writes it
	AmountOut math.Int `json:"amount_out"`
	// Price is the limit price
	Price math.Int `json:"price"`
	// IsBid is true when the order offers asset B for asset A
	IsBid bool `json:"is_bid"`
	// IsFilled is set only by an external matching process
	IsFilled bool `json:"is_filled"`
	// Escrow is the custody account holding the offered asset
	Escrow string `json:"escrow"`
	// CreatedAt is the placement timestamp, read from the clock capability
	CreatedAt time.Time `json:"created_at"`
	// Expiry is the absolute expiration timestamp; stored data only, nothing
	// in this core evaluates it
	Expiry time.Time `json:"expiry"`
}

// OfferedAsset returns the pool asset the order escrows: B when bidding,
// A when asking.
func (o LimitOrder) OfferedAsset(pool Pool) string {
	if o.IsBid {
		return pool.AssetB
	}
	return pool.AssetA
}

// IsExpired reports whether the order's expiry has passed at the given time.
// Provided for a future matcher; no current operation checks it.
func (o LimitOrder) IsExpired(now time.Time) bool {
	return now.After(o.Expiry)
}

// Validate checks the structural invariants of an order record.
func (o LimitOrder) Validate() error {
	if o.Owner == "" {
		return ErrInvalidInput.Wrap("order owner cannot be empty")
	}
	if o.AmountIn.IsNil() || !o.AmountIn.IsPositive() {
		return ErrZeroAmount.Wrap("order amount_in must be positive")
	}
	if o.AmountOut.IsNil() || o.AmountOut.IsNegative() {
		return ErrInvalidState.Wrap("order amount_out cannot be negative")
	}
	if o.Price.IsNil() || !o.Price.IsPositive() {
		return ErrInvalidInput.Wrap("order price must be positive")
	}
	return nil
}
