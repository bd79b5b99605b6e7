package transactions

import "errors"

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrInvalidKind         = errors.New("kind must be income or expense")
)
