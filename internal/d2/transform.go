package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Transform represents a 2D affine transformation stored as
// a row-major 3x3 homogeneous matrix.
type Transform struct {
	data [3 * 3]float64 // stack stronk
}

var identityT = Transform{data: [9]float64{
	1, 0, 0,
	0, 1, 0,
	0, 0, 1,
}}

// Identity returns the identity transform.
func Identity() Transform {
	return identityT
}

// Rotate returns a counter-clockwise rotation about the origin by angle radians.
func Rotate(angle float64) Transform {
	s, c := math.Sincos(angle)
	return Transform{data: [9]float64{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}}
}

// Scale returns a transform scaling about the origin by k on both axes.
func Scale(k float64) Transform {
	return Transform{data: [9]float64{
		k, 0, 0,
		0, k, 0,
		0, 0, 1,
	}}
}

// Translate returns a transform translating by v.
func Translate(v r2.Vec) Transform {
	return Transform{data: [9]float64{
		1, 0, v.X,
		0, 1, v.Y,
		0, 0, 1,
	}}
}

func (t *Transform) At(i, j int) float64 {
	return t.data[i*3+j]
}

func (t *Transform) Set(i, j int, v float64) {
	t.data[i*3+j] = v
}

// Mul multiplies 3x3 matrices. The resulting transform applies b first, then a.
func (a Transform) Mul(b Transform) Transform {
	m := Transform{}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m.Set(i, j, a.At(i, 0)*b.At(0, j)+a.At(i, 1)*b.At(1, j)+a.At(i, 2)*b.At(2, j))
		}
	}
	return m
}

// ApplyPos applies the transform to a position.
func (t Transform) ApplyPos(b r2.Vec) r2.Vec {
	return r2.Vec{
		X: t.At(0, 0)*b.X + t.At(0, 1)*b.Y + t.At(0, 2),
		Y: t.At(1, 0)*b.X + t.At(1, 1)*b.Y + t.At(1, 2),
	}
}

// ApplySet applies the transform to every point of s and returns a new set.
func (t Transform) ApplySet(s Set) Set {
	out := make(Set, len(s))
	for i := range s {
		out[i] = t.ApplyPos(s[i])
	}
	return out
}

// Determinant returns the determinant of the 3x3 matrix.
func (a Transform) Determinant() float64 {
	return a.At(0, 0)*(a.At(1, 1)*a.At(2, 2)-a.At(1, 2)*a.At(2, 1)) -
		a.At(0, 1)*(a.At(1, 0)*a.At(2, 2)-a.At(1, 2)*a.At(2, 0)) +
		a.At(0, 2)*(a.At(1, 0)*a.At(2, 1)-a.At(1, 1)*a.At(2, 0))
}

// Inverse returns the inverse of a 3x3 matrix.
func (a Transform) Inverse() Transform {
	m := Transform{}
	d := 1 / a.Determinant()
	m.Set(0, 0, (a.At(1, 1)*a.At(2, 2)-a.At(1, 2)*a.At(2, 1))*d)
	m.Set(0, 1, (a.At(2, 1)*a.At(0, 2)-a.At(0, 1)*a.At(2, 2))*d)
	m.Set(0, 2, (a.At(0, 1)*a.At(1, 2)-a.At(1, 1)*a.At(0, 2))*d)
	m.Set(1, 0, (a.At(1, 2)*a.At(2, 0)-a.At(2, 2)*a.At(1, 0))*d)
	m.Set(1, 1, (a.At(2, 2)*a.At(0, 0)-a.At(2, 0)*a.At(0, 2))*d)
	m.Set(1, 2, (a.At(0, 2)*a.At(1, 0)-a.At(1, 2)*a.At(0, 0))*d)
	m.Set(2, 0, (a.At(1, 0)*a.At(2, 1)-a.At(2, 0)*a.At(1, 1))*d)
	m.Set(2, 1, (a.At(2, 0)*a.At(0, 1)-a.At(0, 0)*a.At(2, 1))*d)
	m.Set(2, 2, (a.At(0, 0)*a.At(1, 1)-a.At(0, 1)*a.At(1, 0))*d)
	return m
}
