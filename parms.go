package airfoil

import (
	"errors"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"
)

const (
	defaultWingLength  = 200.
	defaultRootChord   = 120.
	defaultWashoutDeg  = 1.
	defaultDihedralDeg = 1.
	defaultSweepDeg    = 0.
	defaultTaperRatio  = 0.8
)

// WingParms are the span laws applied to a profile. Angles are in radians
// and lengths share the units of RootChord.
type WingParms struct {
	Length     float64 // span length from root (Z=0) to tip
	RootChord  float64 // chord length at the root
	TaperRatio float64 // tip chord over root chord
	Washout    float64 // twist at the tip, linear along span
	Dihedral   float64 // vertical offset angle per unit span
	Sweep      float64 // chordwise offset angle per unit span
}

// DefaultWingParms returns a 200 long wing with a 120 root chord,
// 0.8 taper ratio, 1 degree of washout and 1 degree of dihedral.
func DefaultWingParms() WingParms {
	return WingParms{
		Length:     defaultWingLength,
		RootChord:  defaultRootChord,
		TaperRatio: defaultTaperRatio,
		Washout:    DtoR(defaultWashoutDeg),
		Dihedral:   DtoR(defaultDihedralDeg),
		Sweep:      DtoR(defaultSweepDeg),
	}
}

// Validate checks the parameters describe a realizable wing.
func (w WingParms) Validate() error {
	for _, v := range []struct {
		name string
		val  float64
	}{
		{"wing length", w.Length},
		{"root chord", w.RootChord},
		{"taper ratio", w.TaperRatio},
	} {
		if !(v.val > 0) || math.IsInf(v.val, 1) {
			return fmt.Errorf("%w: %s must be positive and finite, got %g", ErrDomain, v.name, v.val)
		}
	}
	if !isFinite(w.Washout) {
		return fmt.Errorf("%w: washout %g", ErrDomain, w.Washout)
	}
	if !(math.Abs(w.Sweep) < pi/2) {
		return fmt.Errorf("%w: sweep %g not in (-pi/2, pi/2)", ErrDomain, w.Sweep)
	}
	if !(math.Abs(w.Dihedral) < pi/2) {
		return fmt.Errorf("%w: dihedral %g not in (-pi/2, pi/2)", ErrDomain, w.Dihedral)
	}
	return nil
}

// wingParmsYAML is the on-disk form of WingParms with angles in degrees.
type wingParmsYAML struct {
	Length      float64 `yaml:"wing_length"`
	RootChord   float64 `yaml:"root_chord"`
	TaperRatio  float64 `yaml:"taper_ratio"`
	WashoutDeg  float64 `yaml:"washout_deg"`
	DihedralDeg float64 `yaml:"dihedral_deg"`
	SweepDeg    float64 `yaml:"sweep_deg"`
}

// LoadWingParms decodes wing parameters from a YAML document such as
//
//	wing_length: 200
//	root_chord: 120
//	taper_ratio: 0.8
//	washout_deg: 1
//	dihedral_deg: 1
//	sweep_deg: 0
//
// Missing keys take the DefaultWingParms values and unknown keys are an error.
func LoadWingParms(r io.Reader) (WingParms, error) {
	y := wingParmsYAML{
		Length:      defaultWingLength,
		RootChord:   defaultRootChord,
		TaperRatio:  defaultTaperRatio,
		WashoutDeg:  defaultWashoutDeg,
		DihedralDeg: defaultDihedralDeg,
		SweepDeg:    defaultSweepDeg,
	}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&y); err != nil && !errors.Is(err, io.EOF) {
		return WingParms{}, fmt.Errorf("decoding wing parameters: %w", err)
	}
	w := WingParms{
		Length:     y.Length,
		RootChord:  y.RootChord,
		TaperRatio: y.TaperRatio,
		Washout:    DtoR(y.WashoutDeg),
		Dihedral:   DtoR(y.DihedralDeg),
		Sweep:      DtoR(y.SweepDeg),
	}
	if err := w.Validate(); err != nil {
		return WingParms{}, err
	}
	return w, nil
}
