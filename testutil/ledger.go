// Package testutil provides in-memory fakes for the keeper's external
// collaborators.
package testutil

import (
	"context"
	"fmt"
	"sync"

	"cosmossdk.io/math"
)

// Ledger is an in-memory balance book implementing both the transfer and the
// balance-read capabilities. Accounts are created on first credit; debiting
// more than an account holds fails without any state change.
type Ledger struct {
	mu       sync.Mutex
	balances map[string]map[string]math.Int // asset -> account -> balance

	// FailNext makes the next Transfer call fail, then resets.
	FailNext bool

	// Transfers records every successful transfer in order.
	Transfers []TransferRecord
}

// TransferRecord is one successful ledger movement.
type TransferRecord struct {
	Asset  string
	From   string
	To     string
	Amount math.Int
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{balances: make(map[string]map[string]math.Int)}
}

// Fund credits an account with an amount of an asset.
func (l *Ledger) Fund(asset, account string, amount math.Int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.credit(asset, account, amount)
}

// Transfer moves an amount between accounts, atomically or not at all.
func (l *Ledger) Transfer(ctx context.Context, asset, from, to string, amount math.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.FailNext {
		l.FailNext = false
		return fmt.Errorf("transfer rejected")
	}
	if amount.IsNil() || amount.IsNegative() {
		return fmt.Errorf("invalid transfer amount %s", amount)
	}

	balance := l.balance(asset, from)
	if balance.LT(amount) {
		return fmt.Errorf("insufficient %s balance in %s: have %s, need %s", asset, from, balance, amount)
	}

	l.balances[asset][from] = balance.Sub(amount)
	l.credit(asset, to, amount)
	l.Transfers = append(l.Transfers, TransferRecord{Asset: asset, From: from, To: to, Amount: amount})
	return nil
}

// Balance reports an account's balance of an asset, zero if untouched.
func (l *Ledger) Balance(ctx context.Context, asset, account string) (math.Int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balance(asset, account), nil
}

func (l *Ledger) balance(asset, account string) math.Int {
	if accounts, ok := l.balances[asset]; ok {
		if balance, ok := accounts[account]; ok {
			return balance
		}
	}
	return math.ZeroInt()
}

func (l *Ledger) credit(asset, account string, amount math.Int) {
	if _, ok := l.balances[asset]; !ok {
		l.balances[asset] = make(map[string]math.Int)
	}
	l.balances[asset][account] = l.balance(asset, account).Add(amount)
}
