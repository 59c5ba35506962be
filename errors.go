package airfoil

import (
	"errors"
	"fmt"

	"github.com/soypat/airfoil/poly2"
)

var (
	// ErrDomain is returned when a query parameter lies outside its documented range.
	ErrDomain = poly2.ErrDomain
	// ErrNoIntersection is returned when a cross-cut ray misses the profile surface,
	// usually a sign of inconsistent surface and camber line data.
	ErrNoIntersection = poly2.ErrNoIntersection
	// ErrMalformedProfile is returned for empty or degenerate profile point sequences.
	ErrMalformedProfile = errors.New("malformed profile")
	// ErrOptimization is returned when the thickest point search exhausts its budget.
	ErrOptimization = errors.New("optimization failure")
)

// QueryError records the failed query and the parameter it was called with.
type QueryError struct {
	Op    string
	Param float64
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("airfoil: %s(%g): %v", e.Op, e.Param, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

func queryErr(op string, param float64, err error) error {
	return &QueryError{Op: op, Param: param, Err: err}
}

func checkFraction(op string, d float64) error {
	if !(d >= 0 && d <= 1) {
		return queryErr(op, d, fmt.Errorf("%w: camber fraction not in [0,1]", ErrDomain))
	}
	return nil
}
