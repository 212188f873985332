package syndrome

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is wrapped by every error caused by malformed patterns.
	ErrValidation     = errors.New("invalid error patterns")
	ErrEmptyPatterns  = fmt.Errorf("%w: no patterns given", ErrValidation)
	ErrLengthMismatch = fmt.Errorf("%w: patterns differ in length", ErrValidation)
	ErrZeroLength     = fmt.Errorf("%w: patterns must have at least one element", ErrValidation)
	ErrTooLong        = fmt.Errorf("%w: patterns may have at most %v elements", ErrValidation, MaxLength)
	ErrNotBinary      = fmt.Errorf("%w: elements must be 0 or 1", ErrValidation)

	// ErrConstruction is wrapped by every error raised while assigning syndromes.
	ErrConstruction    = errors.New("syndrome construction failed")
	ErrNoCandidate     = fmt.Errorf("%w: no valid candidate syndrome", ErrConstruction)
	ErrMissingResidual = fmt.Errorf("%w: residual pattern has no syndrome", ErrConstruction)

	// ErrIncompleteBasis is returned when the basis does not span every position.
	ErrIncompleteBasis = errors.New("basis does not cover every position")
)

// ConstructionError describes the dimension class that stopped construction.
// Member and Residual are only set for ErrMissingResidual.
type ConstructionError struct {
	Dimension int
	Basis     Vector
	Member    Vector
	Residual  Vector
	Err       error
}

func (e *ConstructionError) Error() string {
	if errors.Is(e.Err, ErrMissingResidual) {
		return fmt.Sprintf("%v: dimension %v basis %v member %v residual %v",
			e.Err, e.Dimension, e.Basis, e.Member, e.Residual)
	}
	return fmt.Sprintf("%v: dimension %v basis %v", e.Err, e.Dimension, e.Basis)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}
