package source

import "errors"

var (
	// ErrDuplicateSource indicates a name is already registered; use
	// Replace to swap an adapter explicitly.
	ErrDuplicateSource = errors.New("source already registered")
)
