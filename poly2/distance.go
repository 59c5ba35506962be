package poly2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Distance returns the minimum distance from q to the closed polygon p.
// The distance is negative if q is contained within p.
// It returns NaN for polylines with less than two vertices.
func Distance(p PolyLine, q r2.Vec) float64 {
	if p.Len() < 2 {
		return math.NaN()
	}
	c := p.Closed()
	dd := math.MaxFloat64 // d^2 to polygon (>0)
	wn := 0               // winding number (inside/outside)

	nsegs := len(c.vertex) - 1
	pb := r2.Sub(q, c.vertex[0])
	for i := 0; i < nsegs; i++ {
		a := c.vertex[i]
		b := c.vertex[i+1]
		pa := pb
		pb = r2.Sub(q, b)
		l := c.segLen(i)
		if l == 0 {
			continue
		}
		u := r2.Scale(1/l, r2.Sub(b, a))
		t := r2.Dot(pa, u)                        // t-parameter of projection onto line
		dn := r2.Dot(pa, r2.Vec{X: u.Y, Y: -u.X}) // normal distance from q to line

		// Distance to line segment
		if t < 0 {
			dd = math.Min(dd, r2.Norm2(pa))
		} else if t > l {
			dd = math.Min(dd, r2.Norm2(pb))
		} else {
			dd = math.Min(dd, dn*dn)
		}

		// See: http://geomalgorithms.com/a03-_inclusion.html
		if a.Y <= q.Y {
			if b.Y > q.Y && dn < 0 { // upward crossing, q left of segment
				wn++
			}
		} else if b.Y <= q.Y && dn > 0 { // downward crossing, q right of segment
			wn--
		}
	}
	d := math.Sqrt(dd)
	if wn != 0 {
		return -d
	}
	return d
}

// Contains reports whether q lies strictly inside the closed polygon p.
func Contains(p PolyLine, q r2.Vec) bool {
	return Distance(p, q) < 0
}
