package poly2

import (
	"fmt"
	"math"

	"github.com/soypat/airfoil/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// maxMiter bounds the vertex displacement at sharp corners to
// maxMiter times the requested offset distance.
const maxMiter = 8

// Offset returns the polygon described by p offset by distance: outwards for
// positive values and inwards for negative values. p is treated as a closed
// polygon; a repeated closing vertex is kept in the result.
//
// Each vertex is moved along the bisector of the outward normals of its adjacent
// edges, scaled so that straight edges end up exactly distance away from their
// originals. The result mirrors p vertex for vertex. Offsets larger than the
// local feature size of p (for example an inset deeper than half the thickness
// near a sharp trailing edge) produce self-intersecting polygons; detecting
// that is the responsibility of the caller.
func Offset(p PolyLine, distance float64) (PolyLine, error) {
	if math.IsNaN(distance) || math.IsInf(distance, 0) {
		return PolyLine{}, fmt.Errorf("%w: offset distance %g", ErrDomain, distance)
	}
	ring := p.vertex
	closed := len(ring) > 1 && d2.EqualWithin(ring[0], ring[len(ring)-1], tolerance)
	if closed {
		ring = ring[:len(ring)-1]
	}
	m := len(ring)
	if m < 3 {
		return PolyLine{}, fmt.Errorf("%w: offset needs 3 vertices, got %d", ErrDegenerate, m)
	}
	if distance == 0 {
		return p, nil
	}
	area := signedArea(ring)
	if area == 0 {
		return PolyLine{}, fmt.Errorf("%w: offset of polygon with zero area", ErrDegenerate)
	}
	orient := 1.0
	if area < 0 {
		orient = -1
	}
	out := make([]r2.Vec, m, m+1)
	for i := range ring {
		prev, next := distinctNeighbors(ring, i)
		n1 := r2.Scale(orient, d2.Normal(r2.Unit(r2.Sub(ring[i], ring[prev]))))
		n2 := r2.Scale(orient, d2.Normal(r2.Unit(r2.Sub(ring[next], ring[i]))))
		bis := r2.Add(n1, n2)
		var shift r2.Vec
		if r2.Norm(bis) < tolerance {
			// Edges fold back onto each other.
			shift = r2.Scale(distance, n1)
		} else {
			bis = r2.Unit(bis)
			c := math.Max(r2.Dot(bis, n1), 1./maxMiter)
			shift = r2.Scale(distance/c, bis)
		}
		out[i] = r2.Add(ring[i], shift)
	}
	if closed {
		out = append(out, out[0])
	}
	return New(out), nil
}

// distinctNeighbors returns the indices of the closest vertices before and
// after i in the ring that do not coincide with ring[i].
func distinctNeighbors(ring []r2.Vec, i int) (prev, next int) {
	m := len(ring)
	prev, next = (i-1+m)%m, (i+1)%m
	for prev != i && d2.EqualWithin(ring[prev], ring[i], tolerance) {
		prev = (prev - 1 + m) % m
	}
	for next != i && d2.EqualWithin(ring[next], ring[i], tolerance) {
		next = (next + 1) % m
	}
	return prev, next
}

// SignedArea returns the area enclosed by p treated as a closed polygon.
// It is positive for counter-clockwise vertex order.
func SignedArea(p PolyLine) float64 {
	return signedArea(p.vertex)
}

// Area returns the absolute area enclosed by p treated as a closed polygon.
func Area(p PolyLine) float64 {
	return math.Abs(signedArea(p.vertex))
}

// IsCCW reports whether the closed polygon p is wound counter-clockwise.
func IsCCW(p PolyLine) bool {
	return signedArea(p.vertex) > 0
}

func signedArea(v []r2.Vec) float64 {
	if len(v) < 3 {
		return 0
	}
	var sum float64
	j := len(v) - 1
	for i := range v {
		sum += d2.Cross(v[j], v[i])
		j = i
	}
	return sum / 2
}
