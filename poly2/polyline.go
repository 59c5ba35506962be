// Package poly2 implements arc-length parameterized 2D polylines and the
// polygon utilities built on top of them: ray intersection, rotation,
// vertex-bisector offsetting and signed distance queries.
package poly2

import (
	"math"
	"sort"

	"github.com/soypat/airfoil/internal/d2"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"
)

const tolerance = 1e-12

// PolyLine is an immutable open sequence of 2D points. Consecutive repeated
// points form zero-length segments which are skipped by every query.
// The zero value is an empty polyline.
type PolyLine struct {
	vertex []r2.Vec
	// cum[i] is the arc length from vertex[0] to vertex[i].
	cum []float64
}

// New returns a PolyLine over a copy of vertex.
func New(vertex []r2.Vec) PolyLine {
	p := PolyLine{vertex: append([]r2.Vec(nil), vertex...)}
	if len(vertex) == 0 {
		return p
	}
	seglen := make([]float64, len(vertex))
	for i := 1; i < len(vertex); i++ {
		seglen[i] = r2.Norm(r2.Sub(vertex[i], vertex[i-1]))
	}
	p.cum = floats.CumSum(make([]float64, len(seglen)), seglen)
	return p
}

// Len returns the number of vertices.
func (p PolyLine) Len() int { return len(p.vertex) }

// At returns the i'th vertex.
func (p PolyLine) At(i int) r2.Vec { return p.vertex[i] }

// Vertices returns a copy of the vertices.
func (p PolyLine) Vertices() []r2.Vec {
	return append([]r2.Vec(nil), p.vertex...)
}

// Length returns the total arc length of the polyline.
func (p PolyLine) Length() float64 {
	if len(p.cum) == 0 {
		return 0
	}
	return p.cum[len(p.cum)-1]
}

// Bounds returns the bounding box of the vertices. It is the zero box for an empty polyline.
func (p PolyLine) Bounds() r2.Box {
	if len(p.vertex) == 0 {
		return r2.Box{}
	}
	return d2.Set(p.vertex).Bounds()
}

// Closed returns the polyline with its first vertex appended when the
// first and last vertices differ.
func (p PolyLine) Closed() PolyLine {
	n := len(p.vertex)
	if n < 2 || d2.EqualWithin(p.vertex[0], p.vertex[n-1], tolerance) {
		return p
	}
	return New(append(p.Vertices(), p.vertex[0]))
}

// locate finds the non-degenerate segment containing arc length d*Length()
// and the local interpolation parameter within it.
func (p PolyLine) locate(d float64) (seg int, local float64, err error) {
	if !(d >= 0 && d <= 1) {
		return 0, 0, fractionErr(d)
	}
	n := len(p.vertex)
	if n < 2 {
		return 0, 0, ErrDegenerate
	}
	total := p.Length()
	if total == 0 {
		return 0, 0, ErrDegenerate
	}
	target := d * total
	// First segment whose end lies at or beyond target.
	seg = sort.SearchFloat64s(p.cum[1:], target)
	if seg > n-2 {
		seg = n - 2
	}
	for seg < n-2 && p.segLen(seg) == 0 {
		seg++
	}
	for seg > 0 && p.segLen(seg) == 0 {
		seg--
	}
	local = d2.Clamp((target-p.cum[seg])/p.segLen(seg), 0, 1)
	return seg, local, nil
}

func (p PolyLine) segLen(i int) float64 { return p.cum[i+1] - p.cum[i] }

// Traverse returns the point at normalized arc-length fraction d along the
// polyline. Traverse(0) and Traverse(1) return the first and last vertex exactly.
func (p PolyLine) Traverse(d float64) (r2.Vec, error) {
	seg, local, err := p.locate(d)
	if err != nil {
		return r2.Vec{}, err
	}
	switch d {
	case 0:
		return p.vertex[0], nil
	case 1:
		return p.vertex[len(p.vertex)-1], nil
	}
	return d2.Lerp(p.vertex[seg], p.vertex[seg+1], local), nil
}

// Direction returns the unit direction of the segment containing the arc-length
// fraction d. At a vertex the segment ending at that vertex is used,
// except at d=0 where the first non-degenerate segment is used.
func (p PolyLine) Direction(d float64) (r2.Vec, error) {
	seg, _, err := p.locate(d)
	if err != nil {
		return r2.Vec{}, err
	}
	return r2.Unit(r2.Sub(p.vertex[seg+1], p.vertex[seg])), nil
}

// DirectionAngle returns the angle in radians of Direction(d) measured
// counter-clockwise from the positive x axis.
func (p PolyLine) DirectionAngle(d float64) (float64, error) {
	dir, err := p.Direction(d)
	if err != nil {
		return 0, err
	}
	return math.Atan2(dir.Y, dir.X), nil
}

// Project returns the arc length from the first vertex to the point on the
// polyline closest to q, and the distance from q to that point.
// It returns NaN values for polylines with less than two vertices.
func (p PolyLine) Project(q r2.Vec) (arcLength, dist float64) {
	arcLength, dist = math.NaN(), math.Inf(1)
	if len(p.vertex) < 2 {
		return math.NaN(), math.NaN()
	}
	for i := 0; i < len(p.vertex)-1; i++ {
		a := p.vertex[i]
		l := p.segLen(i)
		var t float64
		if l > 0 {
			u := r2.Scale(1/l, r2.Sub(p.vertex[i+1], a))
			t = d2.Clamp(r2.Dot(r2.Sub(q, a), u), 0, l)
		}
		closest := d2.Lerp(a, p.vertex[i+1], safeDiv(t, l))
		if dd := r2.Norm(r2.Sub(q, closest)); dd < dist {
			dist = dd
			arcLength = p.cum[i] + t
		}
	}
	return arcLength, dist
}

// Map returns a new polyline with f applied to every vertex.
func (p PolyLine) Map(f func(r2.Vec) r2.Vec) PolyLine {
	v := make([]r2.Vec, len(p.vertex))
	for i := range p.vertex {
		v[i] = f(p.vertex[i])
	}
	return New(v)
}

// Rotate returns a new polyline rotated counter-clockwise about the origin by angle radians.
func (p PolyLine) Rotate(angle float64) PolyLine {
	return New(Rotate(p.vertex, angle))
}

// Rotate rotates every point counter-clockwise about the origin by angle radians
// and returns the result in a new slice.
func Rotate(points []r2.Vec, angle float64) []r2.Vec {
	return d2.Rotate(angle).ApplySet(points)
}

func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
