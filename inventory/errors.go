package inventory

import "errors"

// Usage errors: programming mistakes, reported at the violating call.
var (
	ErrNegativeCount     = errors.New("count must not be negative")
	ErrTransactionClosed = errors.New("transaction is already committed")
)
