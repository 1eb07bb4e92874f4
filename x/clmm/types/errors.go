package types

import (
	"cosmossdk.io/errors"
)

// CLMM module sentinel errors
var (
	ErrMathOverflow          = errors.Register(ModuleName, 1, "math overflow")
	ErrSlippageExceeded      = errors.Register(ModuleName, 2, "output amount less than minimum required")
	ErrInsufficientLiquidity = errors.Register(ModuleName, 3, "insufficient liquidity in pool")
	ErrInvalidTickRange      = errors.Register(ModuleName, 4, "invalid tick range")
	ErrOrderExpired          = errors.Register(ModuleName, 5, "order expired")
	ErrPoolNotFound          = errors.Register(ModuleName, 6, "pool not found")
	ErrPoolAlreadyExists     = errors.Register(ModuleName, 7, "pool already exists")
	ErrPositionNotFound      = errors.Register(ModuleName, 8, "position not found")
	ErrOrderNotFound         = errors.Register(ModuleName, 9, "limit order not found")
	ErrInvalidInput          = errors.Register(ModuleName, 10, "invalid input")
	ErrZeroAmount            = errors.Register(ModuleName, 11, "amount cannot be zero")
	ErrTransferFailed        = errors.Register(ModuleName, 12, "ledger transfer failed")
	ErrInvalidState          = errors.Register(ModuleName, 13, "invalid state")
)
