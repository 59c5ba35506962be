// Package airfoil models a digitized airfoil cross-section normalized to unit
// chord and centered on its aerodynamic center, and places that profile along
// a tapered, twisted, swept and dihedral wing span.
//
// All types are immutable after construction and safe for concurrent reads.
package airfoil

import (
	"fmt"
	"math"

	"github.com/soypat/airfoil/internal/d2"
	"github.com/soypat/airfoil/poly2"
	"gonum.org/v1/gonum/spatial/r2"
)

// aeroCenterFraction is the chord fraction of the aerodynamic center.
const aeroCenterFraction = 0.25

// Profile is a unit chord airfoil cross-section with the aerodynamic
// center at the origin.
type Profile struct {
	surface    poly2.PolyLine
	outline    poly2.PolyLine // surface closed for ray casting
	chordLine  poly2.PolyLine
	camberLine poly2.PolyLine

	aeroCenter     r2.Vec // in raw units, before centering
	halfChordPoint r2.Vec
	camberLength   float64
	thickest       float64
	maxThickness   float64
}

// NewProfile normalizes the raw surface, chord line and camber line point
// sequences, given in the same units as chordLength, to unit chord and moves
// the origin to the quarter chord point of the chord line.
// The thickest point of the profile is located during construction.
func NewProfile(surface, chordLine, camberLine []r2.Vec, chordLength float64) (*Profile, error) {
	if !(chordLength > 0) || math.IsInf(chordLength, 1) {
		return nil, queryErr("NewProfile", chordLength, fmt.Errorf("%w: chord length must be positive", ErrDomain))
	}
	for _, sec := range []struct {
		name string
		v    []r2.Vec
		min  int
	}{
		{"surface", surface, 3},
		{"chord line", chordLine, 2},
		{"camber line", camberLine, 2},
	} {
		if len(sec.v) < sec.min {
			return nil, fmt.Errorf("%w: %s has %d points, need at least %d", ErrMalformedProfile, sec.name, len(sec.v), sec.min)
		}
		for i, v := range sec.v {
			if !isFinite(v.X) || !isFinite(v.Y) {
				return nil, fmt.Errorf("%w: %s point %d is not finite", ErrMalformedProfile, sec.name, i)
			}
		}
	}
	normalize := d2.Scale(1 / chordLength)
	normChord := poly2.New(normalize.ApplySet(chordLine))
	if normChord.Length() == 0 {
		return nil, fmt.Errorf("%w: zero length chord line", ErrMalformedProfile)
	}
	aero, err := normChord.Traverse(aeroCenterFraction)
	if err != nil {
		return nil, fmt.Errorf("%w: locating aerodynamic center: %v", ErrMalformedProfile, err)
	}
	center := d2.Translate(r2.Scale(-1, aero)).Mul(normalize)
	p := &Profile{
		surface:    poly2.New(center.ApplySet(surface)),
		chordLine:  poly2.New(center.ApplySet(chordLine)),
		camberLine: poly2.New(center.ApplySet(camberLine)),
		aeroCenter: r2.Scale(chordLength, aero),
	}
	if poly2.Area(p.surface) == 0 {
		return nil, fmt.Errorf("%w: surface encloses no area", ErrMalformedProfile)
	}
	p.outline = p.surface.Closed()
	p.camberLength = p.camberLine.Length()
	if p.camberLength == 0 {
		return nil, fmt.Errorf("%w: zero length camber line", ErrMalformedProfile)
	}
	p.halfChordPoint, err = p.chordLine.Traverse(0.5)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedProfile, err)
	}
	p.thickest, p.maxThickness, err = p.findThickestPoint()
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Surface returns the normalized outline of the profile.
func (p *Profile) Surface() poly2.PolyLine { return p.surface }

// ChordLine returns the normalized chord line.
func (p *Profile) ChordLine() poly2.PolyLine { return p.chordLine }

// CamberLine returns the normalized camber line.
func (p *Profile) CamberLine() poly2.PolyLine { return p.camberLine }

// CamberLineLength returns the arc length of the normalized camber line.
func (p *Profile) CamberLineLength() float64 { return p.camberLength }

// HalfChordPoint returns the mid point of the normalized chord line.
func (p *Profile) HalfChordPoint() r2.Vec { return p.halfChordPoint }

// AeroCenter returns the aerodynamic center in the raw input coordinates.
// It is the origin of the normalized profile.
func (p *Profile) AeroCenter() r2.Vec { return p.aeroCenter }

// ThickestCamberFraction returns the camber fraction at which the profile is thickest.
func (p *Profile) ThickestCamberFraction() float64 { return p.thickest }

// MaxThickness returns the normalized thickness at ThickestCamberFraction.
func (p *Profile) MaxThickness() float64 { return p.maxThickness }

// CamberPoint returns the point on the camber line at arc-length fraction d.
func (p *Profile) CamberPoint(d float64) (r2.Vec, error) {
	if err := checkFraction("CamberPoint", d); err != nil {
		return r2.Vec{}, err
	}
	pt, err := p.camberLine.Traverse(d)
	if err != nil {
		return r2.Vec{}, queryErr("CamberPoint", d, err)
	}
	return pt, nil
}

// CamberAngle returns the angle in radians of the camber line segment at arc-length fraction d.
func (p *Profile) CamberAngle(d float64) (float64, error) {
	if err := checkFraction("CamberAngle", d); err != nil {
		return 0, err
	}
	angle, err := p.camberLine.DirectionAngle(d)
	if err != nil {
		return 0, queryErr("CamberAngle", d, err)
	}
	return angle, nil
}

// CrossCut returns the points where a line through the camber point at fraction d
// meets the surface. With lineAngle zero the line is perpendicular to the camber
// line; lineAngle rotates it counter-clockwise. upper is found along the direction
// lineAngle + pi/2 + camber angle, lower along the opposite direction.
func (p *Profile) CrossCut(d, lineAngle float64) (upper, lower r2.Vec, err error) {
	if err := checkFraction("CrossCut", d); err != nil {
		return r2.Vec{}, r2.Vec{}, err
	}
	origin, err := p.camberLine.Traverse(d)
	if err != nil {
		return r2.Vec{}, r2.Vec{}, queryErr("CrossCut", d, err)
	}
	camberAngle, err := p.camberLine.DirectionAngle(d)
	if err != nil {
		return r2.Vec{}, r2.Vec{}, queryErr("CrossCut", d, err)
	}
	dir := d2.Pol{R: 1, Theta: lineAngle + pi/2 + camberAngle}.PolarToCartesian()
	upper, err = poly2.IntersectRay(origin, dir, p.outline)
	if err != nil {
		return r2.Vec{}, r2.Vec{}, queryErr("CrossCut", d, err)
	}
	lower, err = poly2.IntersectRay(origin, r2.Scale(-1, dir), p.outline)
	if err != nil {
		return r2.Vec{}, r2.Vec{}, queryErr("CrossCut", d, err)
	}
	return upper, lower, nil
}

// Thickness returns the normalized profile thickness measured perpendicular
// to the camber line at camber fraction d.
func (p *Profile) Thickness(d float64) (float64, error) {
	upper, lower, err := p.CrossCut(d, 0)
	if err != nil {
		return 0, err
	}
	return r2.Norm(r2.Sub(upper, lower)), nil
}
