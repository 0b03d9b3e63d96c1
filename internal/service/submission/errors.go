package submission

import "errors"

var (
	// ErrValidation means a required field was missing or empty; nothing was stored.
	ErrValidation = errors.New("name, business, service, and phone are required")

	// ErrNotFound means the target submission does not exist.
	ErrNotFound = errors.New("submission not found")

	// ErrInternal hides store failure detail from callers.
	ErrInternal = errors.New("internal error")
)
