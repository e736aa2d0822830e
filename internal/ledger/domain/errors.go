package domain

import "errors"

// Errors returned by the ledger engine. Callers branch with errors.Is; the
// HTTP layer maps them onto status codes.
var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrInvalidDirection  = errors.New("direction must be \"in\" or \"out\"")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrConflict          = errors.New("concurrent stock update conflict")
)
