package poly2

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain is returned when a query parameter lies outside its documented range.
	ErrDomain = errors.New("parameter out of domain")
	// ErrDegenerate is returned when a polyline cannot support a query: too few
	// points or zero total length. It wraps ErrDomain.
	ErrDegenerate = fmt.Errorf("%w: degenerate polyline", ErrDomain)
	// ErrNoIntersection is returned when a ray does not meet a polyline.
	ErrNoIntersection = errors.New("no intersection")
)

func fractionErr(d float64) error {
	return fmt.Errorf("%w: fraction %g not in [0,1]", ErrDomain, d)
}
