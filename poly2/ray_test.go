package poly2_test

import (
	"errors"
	"math"
	"testing"

	"github.com/soypat/airfoil/poly2"
	"gonum.org/v1/gonum/spatial/r2"
)

func unitSquare() poly2.PolyLine {
	return poly2.New([]r2.Vec{{}, {X: 1}, {X: 1, Y: 1}, {Y: 1}, {}})
}

func TestIntersectRay(t *testing.T) {
	sq := unitSquare()
	center := r2.Vec{X: 0.5, Y: 0.5}
	for _, test := range []struct {
		name   string
		origin r2.Vec
		dir    r2.Vec
		p      poly2.PolyLine
		want   r2.Vec
	}{
		{"up", center, r2.Vec{Y: 1}, sq, r2.Vec{X: 0.5, Y: 1}},
		{"down", center, r2.Vec{Y: -3}, sq, r2.Vec{X: 0.5}},
		{"diagonal vertex", center, r2.Vec{X: 1, Y: 1}, sq, r2.Vec{X: 1, Y: 1}},
		{"closest of two", r2.Vec{X: -1, Y: 0.5}, r2.Vec{X: 1}, sq, r2.Vec{Y: 0.5}},
		{"origin on line", r2.Vec{X: 0.5}, r2.Vec{Y: 1}, sq, r2.Vec{X: 0.5}},
		{"collinear", r2.Vec{X: -2}, r2.Vec{X: 1}, sq, r2.Vec{}},
		{"collinear inside", r2.Vec{X: 0.25}, r2.Vec{X: 1}, poly2.New([]r2.Vec{{}, {X: 1}}), r2.Vec{X: 0.25}},
	} {
		got, err := poly2.IntersectRay(test.origin, test.dir, test.p)
		if err != nil {
			t.Errorf("%s: %v", test.name, err)
			continue
		}
		if !eqVec(got, test.want, tol) {
			t.Errorf("%s: got %v, want %v", test.name, got, test.want)
		}
	}
}

func TestIntersectRayMiss(t *testing.T) {
	sq := unitSquare()
	for _, test := range []struct {
		name   string
		origin r2.Vec
		dir    r2.Vec
	}{
		{"away", r2.Vec{X: 2, Y: 2}, r2.Vec{X: 1}},
		{"parallel", r2.Vec{X: -1, Y: 2}, r2.Vec{X: 1}},
		{"behind", r2.Vec{X: 0.5, Y: 2}, r2.Vec{Y: 1}},
	} {
		_, err := poly2.IntersectRay(test.origin, test.dir, sq)
		if !errors.Is(err, poly2.ErrNoIntersection) {
			t.Errorf("%s: want ErrNoIntersection, got %v", test.name, err)
		}
	}
	_, err := poly2.IntersectRay(r2.Vec{}, r2.Vec{}, sq)
	if !errors.Is(err, poly2.ErrDomain) {
		t.Errorf("zero direction: want ErrDomain, got %v", err)
	}
}

func TestIntersectRayCircleBracket(t *testing.T) {
	circle := poly2.New(circlePoints(0.5, 360))
	for _, angle := range []float64{0, 0.4, 1.3, 2.9} {
		dir := r2.Vec{X: math.Cos(angle), Y: math.Sin(angle)}
		up, err := poly2.IntersectRay(r2.Vec{}, dir, circle)
		if err != nil {
			t.Fatal(err)
		}
		down, err := poly2.IntersectRay(r2.Vec{}, r2.Scale(-1, dir), circle)
		if err != nil {
			t.Fatal(err)
		}
		if d := r2.Norm(r2.Sub(up, down)); math.Abs(d-1) > 1e-4 {
			t.Errorf("angle %g: chord through center %g, want 1", angle, d)
		}
	}
}

func circlePoints(r float64, n int) []r2.Vec {
	pts := make([]r2.Vec, n+1)
	for i := 0; i < n; i++ {
		s, c := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		pts[i] = r2.Vec{X: r * c, Y: r * s}
	}
	pts[n] = pts[0]
	return pts
}
