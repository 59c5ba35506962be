package airfoil

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"

	"github.com/soypat/airfoil/internal/d2"
	"github.com/soypat/airfoil/poly2"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Wing places a Profile at stations along a span. Stations are addressed by
// their span coordinate Z in [0, Length] with the root at Z=0.
// A Wing holds no mutable state; its methods may be called concurrently.
type Wing struct {
	profile *Profile
	parms   WingParms
}

// Section is a profile placed at span coordinate Z.
type Section struct {
	Z          float64
	Chord      float64
	Surface    poly2.PolyLine
	ChordLine  poly2.PolyLine
	CamberLine poly2.PolyLine
}

// NewWing returns a Wing generating sections of profile under the span laws of parms.
func NewWing(profile *Profile, parms WingParms) (*Wing, error) {
	if profile == nil {
		return nil, errors.New("nil profile")
	}
	if err := parms.Validate(); err != nil {
		return nil, err
	}
	return &Wing{profile: profile, parms: parms}, nil
}

// Profile returns the profile the wing is built from.
func (w *Wing) Profile() *Profile { return w.profile }

// Parms returns the span laws of the wing.
func (w *Wing) Parms() WingParms { return w.parms }

func (w *Wing) checkZ(op string, z float64) error {
	if !(z >= 0 && z <= w.parms.Length) {
		return queryErr(op, z, fmt.Errorf("%w: span coordinate not in [0,%g]", ErrDomain, w.parms.Length))
	}
	return nil
}

// ChordAt returns the chord length at span coordinate z under linear taper.
func (w *Wing) ChordAt(z float64) (float64, error) {
	if err := w.checkZ("ChordAt", z); err != nil {
		return 0, err
	}
	return w.chordAt(z), nil
}

func (w *Wing) chordAt(z float64) float64 {
	if z == w.parms.Length {
		return w.parms.RootChord * w.parms.TaperRatio
	}
	return w.parms.RootChord * (1 - (1-w.parms.TaperRatio)*z/w.parms.Length)
}

// TwistAt returns the washout rotation in radians at span coordinate z.
func (w *Wing) TwistAt(z float64) (float64, error) {
	if err := w.checkZ("TwistAt", z); err != nil {
		return 0, err
	}
	return w.parms.Washout * z / w.parms.Length, nil
}

// OffsetAt returns the sweep (X) and dihedral (Y) translation at span coordinate z.
func (w *Wing) OffsetAt(z float64) (r2.Vec, error) {
	if err := w.checkZ("OffsetAt", z); err != nil {
		return r2.Vec{}, err
	}
	return w.offsetAt(z), nil
}

func (w *Wing) offsetAt(z float64) r2.Vec {
	return r2.Vec{X: math.Tan(w.parms.Sweep) * z, Y: math.Tan(w.parms.Dihedral) * z}
}

// transformAt composes twist, then chord scaling, then the sweep/dihedral offset.
func (w *Wing) transformAt(op string, z float64) (d2.Transform, error) {
	if err := w.checkZ(op, z); err != nil {
		return d2.Transform{}, err
	}
	twist := d2.Rotate(w.parms.Washout * z / w.parms.Length)
	scale := d2.Scale(w.chordAt(z))
	return d2.Translate(w.offsetAt(z)).Mul(scale).Mul(twist), nil
}

// TransformPoints places profile-space points at span coordinate z.
// Points are rotated by the twist about the profile origin, scaled
// by the local chord and then offset by sweep and dihedral.
func (w *Wing) TransformPoints(z float64, points []r2.Vec) ([]r2.Vec, error) {
	t, err := w.transformAt("TransformPoints", z)
	if err != nil {
		return nil, err
	}
	return t.ApplySet(points), nil
}

func (w *Wing) transformLine(op string, z float64, p poly2.PolyLine) (poly2.PolyLine, error) {
	t, err := w.transformAt(op, z)
	if err != nil {
		return poly2.PolyLine{}, err
	}
	return p.Map(t.ApplyPos), nil
}

// SurfaceAt returns the profile outline at span coordinate z.
func (w *Wing) SurfaceAt(z float64) (poly2.PolyLine, error) {
	return w.transformLine("SurfaceAt", z, w.profile.surface)
}

// ChordLineAt returns the chord line at span coordinate z.
func (w *Wing) ChordLineAt(z float64) (poly2.PolyLine, error) {
	return w.transformLine("ChordLineAt", z, w.profile.chordLine)
}

// CamberLineAt returns the camber line at span coordinate z.
func (w *Wing) CamberLineAt(z float64) (poly2.PolyLine, error) {
	return w.transformLine("CamberLineAt", z, w.profile.camberLine)
}

// InsetSurfaceAt returns the outline at span coordinate z moved inwards by
// distance, in wing units. It is the inner contour of a skin of that thickness.
// See poly2.Offset for limitations on large insets.
func (w *Wing) InsetSurfaceAt(z, distance float64) (poly2.PolyLine, error) {
	surf, err := w.SurfaceAt(z)
	if err != nil {
		return poly2.PolyLine{}, err
	}
	inset, err := poly2.Offset(surf, -distance)
	if err != nil {
		return poly2.PolyLine{}, queryErr("InsetSurfaceAt", distance, err)
	}
	return inset, nil
}

// CamberPointAt returns the camber point at fraction d of the section at span coordinate z.
func (w *Wing) CamberPointAt(d, z float64) (r2.Vec, error) {
	t, err := w.transformAt("CamberPointAt", z)
	if err != nil {
		return r2.Vec{}, err
	}
	pt, err := w.profile.CamberPoint(d)
	if err != nil {
		return r2.Vec{}, err
	}
	return t.ApplyPos(pt), nil
}

// CrossCutAt returns Profile.CrossCut(d, lineAngle) placed at span coordinate z.
func (w *Wing) CrossCutAt(d, lineAngle, z float64) (upper, lower r2.Vec, err error) {
	t, err := w.transformAt("CrossCutAt", z)
	if err != nil {
		return r2.Vec{}, r2.Vec{}, err
	}
	upper, lower, err = w.profile.CrossCut(d, lineAngle)
	if err != nil {
		return r2.Vec{}, r2.Vec{}, err
	}
	return t.ApplyPos(upper), t.ApplyPos(lower), nil
}

// HingeLine returns the 3D line through the camber points at fraction d of the
// sections at span coordinates z0 and z1.
func (w *Wing) HingeLine(d, z0, z1 float64) (start, end r3.Vec, err error) {
	p0, err := w.CamberPointAt(d, z0)
	if err != nil {
		return r3.Vec{}, r3.Vec{}, err
	}
	p1, err := w.CamberPointAt(d, z1)
	if err != nil {
		return r3.Vec{}, r3.Vec{}, err
	}
	return r3.Vec{X: p0.X, Y: p0.Y, Z: z0}, r3.Vec{X: p1.X, Y: p1.Y, Z: z1}, nil
}

// Station returns every section curve at span coordinate z.
func (w *Wing) Station(z float64) (Section, error) {
	t, err := w.transformAt("Station", z)
	if err != nil {
		return Section{}, err
	}
	return Section{
		Z:          z,
		Chord:      w.chordAt(z),
		Surface:    w.profile.surface.Map(t.ApplyPos),
		ChordLine:  w.profile.chordLine.Map(t.ApplyPos),
		CamberLine: w.profile.camberLine.Map(t.ApplyPos),
	}, nil
}

// Stations computes the sections at each of zs concurrently. The result is in
// the order of zs. The first error encountered cancels pending stations.
func (w *Wing) Stations(ctx context.Context, zs []float64) ([]Section, error) {
	sections := make([]Section, len(zs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range zs {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := w.Station(zs[i])
			if err != nil {
				return err
			}
			sections[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sections, nil
}
