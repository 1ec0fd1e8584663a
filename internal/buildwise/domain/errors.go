package domain

import "errors"

var (
	ErrBackendUnavailable = errors.New("failed to reach backend")
	ErrUnknownField       = errors.New("unknown form field")
)
