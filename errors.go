package hclust

import (
	"errors"
	"fmt"
	"strconv"
)

// Precondition failures. A *PreconditionError wraps one of these, so callers
// can test with errors.Is.
var (
	ErrNegativeDistance  = errors.New("negative distance")
	ErrNonFiniteDistance = errors.New("non-finite distance")
	ErrMissingDistance   = errors.New("missing distance")
	ErrAsymmetric        = errors.New("asymmetric distance")
	ErrDiagonal          = errors.New("non-zero self distance")
	ErrUnknownElement    = errors.New("unknown element")
)

// ErrSealed is returned by AddLeaf once distances have been seeded.
var ErrSealed = errors.New("hclust: hierarchy is sealed, no leaves can be added after seeding")

// PreconditionError identifies the pair and value that made the input unusable.
// The engine refuses to continue after returning one.
type PreconditionError struct {
	Op    string
	A, B  ElementID
	Value float64
	Err   error
}

func (e *PreconditionError) Error() string {
	msg := fmt.Sprintf("hclust: %s: %v for pair (%d, %d)", e.Op, e.Err, e.A, e.B)
	if !errors.Is(e.Err, ErrMissingDistance) {
		msg += ": " + strconv.FormatFloat(e.Value, 'g', -1, 64)
	}
	return msg
}

func (e *PreconditionError) Unwrap() error { return e.Err }

func precondition(op string, a, b ElementID, v float64, err error) *PreconditionError {
	return &PreconditionError{Op: op, A: a, B: b, Value: v, Err: err}
}
