package repositories

import "errors"

// Sentinel errors shared by all repository implementations. Services and
// handlers branch on these with errors.Is; anything else coming out of a
// repository is a storage failure.
var (
	ErrProductNotFound   = errors.New("product not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrAccountNotFound   = errors.New("account not found")
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrInsufficientStock = errors.New("insufficient stock")
)
