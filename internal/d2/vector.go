package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// EqualWithin returns true if a and b components differ by no more than tol.
func EqualWithin(a, b r2.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

// MinElem return a vector with the minimum components of two vectors.
func MinElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)}
}

// MaxElem return a vector with the maximum components of two vectors.
func MaxElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)}
}

// Cross returns the z component of the 3D cross product a x b.
func Cross(a, b r2.Vec) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Lerp linearly interpolates from a to b, t = [0,1].
func Lerp(a, b r2.Vec, t float64) r2.Vec {
	return r2.Add(a, r2.Scale(t, r2.Sub(b, a)))
}

// Normal returns the vector rotated 90 degrees clockwise.
func Normal(a r2.Vec) r2.Vec {
	return r2.Vec{X: a.Y, Y: -a.X}
}

// Clamp x between a and b, assume a <= b
func Clamp(x, a, b float64) float64 {
	return math.Min(b, math.Max(x, a))
}

// Set is an ordered collection of 2d points.
type Set []r2.Vec

// Min return the minimum components of a set of vectors.
func (a Set) Min() r2.Vec {
	vmin := a[0]
	for _, v := range a[1:] {
		vmin = MinElem(vmin, v)
	}
	return vmin
}

// Max return the maximum components of a set of vectors.
func (a Set) Max() r2.Vec {
	vmax := a[0]
	for _, v := range a[1:] {
		vmax = MaxElem(vmax, v)
	}
	return vmax
}

// Bounds returns the bounding box of the set. The set must not be empty.
func (a Set) Bounds() r2.Box {
	return r2.Box{Min: a.Min(), Max: a.Max()}
}

// Pol is a polar coordinate.
type Pol struct {
	R, Theta float64
}

// PolarToCartesian converts a polar to a cartesian coordinate.
func (a Pol) PolarToCartesian() r2.Vec {
	return r2.Vec{X: a.R * math.Cos(a.Theta), Y: a.R * math.Sin(a.Theta)}
}
