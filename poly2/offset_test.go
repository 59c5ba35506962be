package poly2_test

import (
	"errors"
	"math"
	"testing"

	"github.com/soypat/airfoil/poly2"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestOffsetZeroIsIdentity(t *testing.T) {
	sq := poly2.New([]r2.Vec{{}, {X: 1}, {X: 1, Y: 1}, {Y: 1}})
	got, err := poly2.Offset(sq, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != sq.Len() {
		t.Fatalf("length changed %d -> %d", sq.Len(), got.Len())
	}
	for i := 0; i < sq.Len(); i++ {
		if got.At(i) != sq.At(i) {
			t.Errorf("vertex %d: got %v, want %v", i, got.At(i), sq.At(i))
		}
	}
}

func TestOffsetSquare(t *testing.T) {
	ccw := []r2.Vec{{}, {X: 1}, {X: 1, Y: 1}, {Y: 1}}
	cw := []r2.Vec{{Y: 1}, {X: 1, Y: 1}, {X: 1}, {}}
	for _, test := range []struct {
		name string
		v    []r2.Vec
		dist float64
		want []r2.Vec
	}{
		{"ccw inset", ccw, -0.1, []r2.Vec{{X: .1, Y: .1}, {X: .9, Y: .1}, {X: .9, Y: .9}, {X: .1, Y: .9}}},
		{"cw inset", cw, -0.1, []r2.Vec{{X: .1, Y: .9}, {X: .9, Y: .9}, {X: .9, Y: .1}, {X: .1, Y: .1}}},
		{"ccw outset", ccw, 0.5, []r2.Vec{{X: -.5, Y: -.5}, {X: 1.5, Y: -.5}, {X: 1.5, Y: 1.5}, {X: -.5, Y: 1.5}}},
		{"closed duplicate", append(ccw, r2.Vec{}), -0.25, []r2.Vec{{X: .25, Y: .25}, {X: .75, Y: .25}, {X: .75, Y: .75}, {X: .25, Y: .75}, {X: .25, Y: .25}}},
		{"repeated vertex", []r2.Vec{{}, {X: 1}, {X: 1}, {X: 1, Y: 1}, {Y: 1}}, -0.1, []r2.Vec{{X: .1, Y: .1}, {X: .9, Y: .1}, {X: .9, Y: .1}, {X: .9, Y: .9}, {X: .1, Y: .9}}},
	} {
		got, err := poly2.Offset(poly2.New(test.v), test.dist)
		if err != nil {
			t.Fatalf("%s: %v", test.name, err)
		}
		if got.Len() != len(test.want) {
			t.Fatalf("%s: got %d vertices, want %d", test.name, got.Len(), len(test.want))
		}
		for i, w := range test.want {
			if !eqVec(got.At(i), w, tol) {
				t.Errorf("%s: vertex %d got %v, want %v", test.name, i, got.At(i), w)
			}
		}
	}
}

func TestOffsetAreaMonotonic(t *testing.T) {
	circle := poly2.New(circlePoints(1, 64))
	prev := poly2.Area(circle)
	for _, d := range []float64{0.05, 0.1, 0.3, 0.6, 0.9} {
		inset, err := poly2.Offset(circle, -d)
		if err != nil {
			t.Fatal(err)
		}
		area := poly2.Area(inset)
		if area >= prev {
			t.Fatalf("inset %g: area %g not below %g", d, area, prev)
		}
		prev = area
		// Vertices of a smooth convex inset sit d inside the original outline.
		for i := 0; i < inset.Len(); i++ {
			sd := poly2.Distance(circle, inset.At(i))
			if math.Abs(sd+d) > 1e-3 {
				t.Fatalf("inset %g: vertex %d signed distance %g", d, i, sd)
			}
		}
	}
}

func TestOffsetDegenerate(t *testing.T) {
	for _, v := range [][]r2.Vec{
		nil,
		{{}, {X: 1}},
		{{}, {X: 1}, {}},
		{{}, {X: 1}, {X: 2}},
	} {
		_, err := poly2.Offset(poly2.New(v), -0.1)
		if !errors.Is(err, poly2.ErrDegenerate) {
			t.Errorf("%v: want ErrDegenerate, got %v", v, err)
		}
	}
}

func TestSignedArea(t *testing.T) {
	sq := poly2.New([]r2.Vec{{}, {X: 2}, {X: 2, Y: 2}, {Y: 2}, {}})
	if a := poly2.SignedArea(sq); a != 4 {
		t.Errorf("ccw area %g, want 4", a)
	}
	if !poly2.IsCCW(sq) {
		t.Error("square should be ccw")
	}
	rev := poly2.New([]r2.Vec{{Y: 2}, {X: 2, Y: 2}, {X: 2}, {}})
	if a := poly2.SignedArea(rev); a != -4 {
		t.Errorf("cw area %g, want -4", a)
	}
	if poly2.Area(rev) != 4 {
		t.Error("Area not absolute")
	}
	if b := rev.Bounds(); b.Min != (r2.Vec{}) || b.Max != (r2.Vec{X: 2, Y: 2}) {
		t.Errorf("bounds %v", b)
	}
}

func TestDistance(t *testing.T) {
	sq := unitSquare()
	for _, test := range []struct {
		q    r2.Vec
		want float64
	}{
		{r2.Vec{X: .5, Y: .5}, -.5},
		{r2.Vec{X: .5, Y: .9}, -.1},
		{r2.Vec{X: 2, Y: .5}, 1},
		{r2.Vec{X: 4, Y: 5}, 5},
	} {
		got := poly2.Distance(sq, test.q)
		if math.Abs(got-test.want) > tol {
			t.Errorf("Distance(%v): got %g, want %g", test.q, got, test.want)
		}
		if poly2.Contains(sq, test.q) != (test.want < 0) {
			t.Errorf("Contains(%v) mismatch", test.q)
		}
	}
}
