package poly2

import (
	"fmt"
	"math"

	"github.com/soypat/airfoil/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// IntersectRay returns the intersection between the semi-infinite ray starting
// at origin with direction dir and the segments of p that lies closest to origin.
//
// Ties between intersections at the same distance, such as a ray grazing a vertex
// shared by two segments, resolve to the earlier segment in traversal order.
// Segments parallel to the ray are ignored unless collinear with it, in which
// case the point of their overlap nearest to origin is considered.
// ErrNoIntersection is returned if the ray misses every segment.
func IntersectRay(origin, dir r2.Vec, p PolyLine) (r2.Vec, error) {
	if r2.Norm2(dir) == 0 {
		return r2.Vec{}, fmt.Errorf("%w: zero ray direction", ErrDomain)
	}
	if p.Len() < 2 {
		return r2.Vec{}, ErrDegenerate
	}
	dir = r2.Unit(dir)
	best := math.Inf(1)
	for i := 0; i < len(p.vertex)-1; i++ {
		a, b := p.vertex[i], p.vertex[i+1]
		t, ok := raySegment(origin, dir, a, b)
		if ok && t < best {
			best = t
		}
	}
	if math.IsInf(best, 1) {
		return r2.Vec{}, fmt.Errorf("%w: ray from (%g,%g) towards (%g,%g)", ErrNoIntersection, origin.X, origin.Y, dir.X, dir.Y)
	}
	return r2.Add(origin, r2.Scale(best, dir)), nil
}

// raySegment returns the distance along unit direction dir from origin
// to the nearest point of segment ab hit by the ray.
func raySegment(origin, dir, a, b r2.Vec) (t float64, ok bool) {
	e := r2.Sub(b, a)
	elen := r2.Norm(e)
	if elen == 0 {
		return 0, false
	}
	w := r2.Sub(a, origin)
	denom := d2.Cross(dir, e)
	eps := tolerance * math.Max(1, r2.Norm(w)+elen)
	if math.Abs(denom) > tolerance*elen {
		t = d2.Cross(w, e) / denom
		u := d2.Cross(w, dir) / denom
		utol := eps / elen
		if t < -eps || u < -utol || u > 1+utol {
			return 0, false
		}
		return math.Max(t, 0), true
	}
	// Parallel. Only collinear segments may touch the ray.
	if math.Abs(d2.Cross(w, dir)) > eps {
		return 0, false
	}
	ta := r2.Dot(w, dir)
	tb := r2.Dot(r2.Sub(b, origin), dir)
	if math.Max(ta, tb) < -eps {
		return 0, false
	}
	return math.Max(0, math.Min(ta, tb)), true
}
