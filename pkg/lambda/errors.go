package lambda

import "errors"

var (
	// ErrFreshNameExhausted is returned when capture avoidance needs a new
	// binder name and every letter a-z is already in use.
	ErrFreshNameExhausted = errors.New("no fresh variable name available")

	// ErrInvalidBudget is returned for a beta budget below one.
	ErrInvalidBudget = errors.New("max beta reductions must be at least 1")
)
