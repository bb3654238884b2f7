package landscape

import (
	"errors"
	"fmt"
)

// Domain errors for potential evaluation and minimization.
var (
	// ErrDimensionMismatch indicates an input length inconsistent with the
	// potential's degrees of freedom.
	ErrDimensionMismatch = errors.New("landscape: dimension mismatch")

	// ErrInvalidParameter indicates a parameter outside its valid range
	// (non-positive covariance, volume, step size, block size).
	ErrInvalidParameter = errors.New("landscape: invalid parameter")

	// ErrDiverged indicates the energy or gradient became non-finite
	// during minimization.
	ErrDiverged = errors.New("landscape: energy diverged (NaN or Inf)")
)

// EvalError wraps a domain error with the call that produced it.
type EvalError struct {
	Op      string
	Want    int
	Got     int
	Wrapped error
}

func (e *EvalError) Error() string {
	if e.Want != e.Got {
		return fmt.Sprintf("%s: %v (want %d dof, got %d)", e.Op, e.Wrapped, e.Want, e.Got)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Wrapped)
}

func (e *EvalError) Unwrap() error {
	return e.Wrapped
}

// CheckDOF returns an EvalError wrapping ErrDimensionMismatch when x does
// not have exactly want entries.
func CheckDOF(op string, x Coords, want int) error {
	if len(x) != want {
		return &EvalError{Op: op, Want: want, Got: len(x), Wrapped: ErrDimensionMismatch}
	}
	return nil
}
