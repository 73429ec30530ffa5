package matchgo

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput indicates a precondition violation by the caller.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingScoreFunc is returned when no scoring function is configured.
	ErrMissingScoreFunc = fmt.Errorf("%w: score function must be provided", ErrInvalidInput)

	// ErrMissingKeyFunc is returned when the generic engine is called without
	// a key projection.
	ErrMissingKeyFunc = fmt.Errorf("%w: key function must be provided", ErrInvalidInput)
)

// ErrInsufficientTargets indicates that list B is too short to guarantee a
// match for every item of list A.
//
// Matches ErrInvalidInput via errors.Is.
type ErrInsufficientTargets struct {
	LenA int
	LenB int
}

func (e *ErrInsufficientTargets) Error() string {
	return fmt.Sprintf("list B (%d items) cannot be shorter than list A (%d items)", e.LenB, e.LenA)
}

func (e *ErrInsufficientTargets) Unwrap() error { return ErrInvalidInput }

// ScoreError wraps an error returned by the caller's scoring function,
// identifying the offending index pair.
//
// The underlying error can be accessed via errors.Unwrap.
type ScoreError struct {
	AIndex int
	BIndex int
	cause  error
}

func (e *ScoreError) Error() string {
	return fmt.Sprintf("scoring pair (a=%d, b=%d): %v", e.AIndex, e.BIndex, e.cause)
}

func (e *ScoreError) Unwrap() error { return e.cause }
