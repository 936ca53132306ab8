package memo

import "errors"

// Domain-specific errors for the memo package.
var (
	ErrInvalidActionPayload = errors.New("invalid action payload")
)
