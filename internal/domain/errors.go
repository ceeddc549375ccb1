package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrTransport     = errors.New("model transport failed")
	ErrBusy          = errors.New("a generation is already in progress")
	ErrEmptyIdea     = errors.New("empty recipe idea")
	ErrInvalidConfig = errors.New("invalid configuration")
)
