package wizard

import "errors"

// Sentinel error kinds for this package. These allow errors.Is from callers.
var (
	ErrStepIncomplete    = errors.New("wizard step incomplete")
	ErrInvalidTransition = errors.New("invalid wizard transition")
	ErrInvalidValue      = errors.New("invalid wizard value")
)
