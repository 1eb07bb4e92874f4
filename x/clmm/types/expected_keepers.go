package types

import (
	"context"
	"time"

	"cosmossdk.io/math"
)

// Ledger is the custody capability the settlement core consumes. Every
// custody movement goes through Transfer; a call either fully applies or
// fails with no effect. The core never moves balances itself.
type Ledger interface {
	// Transfer moves amount units of asset from one account to another.
	Transfer(ctx context.Context, asset, from, to string, amount math.Int) error
}

// BalanceReader is an optional extension of Ledger. When the ledger
// implements it, the invariant pass cross-checks escrowed custody against
// actual balances.
type BalanceReader interface {
	// Balance returns the current balance of asset held by account.
	Balance(ctx context.Context, asset, account string) (math.Int, error)
}

// Clock is the time capability, used only to stamp limit-order placement.
type Clock interface {
	Now() time.Time
}
