// Package foilplot draws airfoil profiles and wing sections with gonum/plot
// for visual inspection of imported and generated geometry.
package foilplot

import (
	"fmt"
	"image/color"
	"io"

	"github.com/soypat/airfoil"
	"github.com/soypat/airfoil/poly2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	surfaceColor = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	chordColor   = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	camberColor  = color.RGBA{R: 200, G: 40, B: 40, A: 255}
	cutColor     = color.RGBA{R: 40, G: 90, B: 200, A: 255}
	insetColor   = color.RGBA{R: 40, G: 160, B: 80, A: 255}
)

// XYs converts a polyline to plotter points.
func XYs(p poly2.PolyLine) plotter.XYs {
	xys := make(plotter.XYs, p.Len())
	for i := range xys {
		v := p.At(i)
		xys[i].X = v.X
		xys[i].Y = v.Y
	}
	return xys
}

// Profile plots the normalized profile with its chord and camber lines, the
// aerodynamic center and a perpendicular cross cut at each of the camber
// fractions in cuts.
func Profile(p *airfoil.Profile, cuts ...float64) (*plot.Plot, error) {
	plt := newPlot("Airfoil profile")
	err := addLines(plt, []namedLine{
		{"surface", p.Surface(), surfaceColor},
		{"chord", p.ChordLine(), chordColor},
		{"camber", p.CamberLine(), camberColor},
	})
	if err != nil {
		return nil, err
	}
	for _, d := range cuts {
		upper, lower, err := p.CrossCut(d, 0)
		if err != nil {
			return nil, err
		}
		cut, err := plotter.NewLine(plotter.XYs{{X: upper.X, Y: upper.Y}, {X: lower.X, Y: lower.Y}})
		if err != nil {
			return nil, err
		}
		cut.Color = cutColor
		cut.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
		plt.Add(cut)
	}
	ac, err := plotter.NewScatter(plotter.XYs{{}})
	if err != nil {
		return nil, err
	}
	ac.GlyphStyle.Shape = draw.CrossGlyph{}
	plt.Add(ac)
	plt.Legend.Add("aero center", ac)
	return plt, nil
}

// Section plots the section of w at span coordinate z. A positive skin
// thickness also draws the inset surface.
func Section(w *airfoil.Wing, z, skin float64) (*plot.Plot, error) {
	s, err := w.Station(z)
	if err != nil {
		return nil, err
	}
	plt := newPlot(fmt.Sprintf("Wing section Z=%g", z))
	lines := []namedLine{
		{"surface", s.Surface, surfaceColor},
		{"chord", s.ChordLine, chordColor},
		{"camber", s.CamberLine, camberColor},
	}
	if skin > 0 {
		inset, err := w.InsetSurfaceAt(z, skin)
		if err != nil {
			return nil, err
		}
		lines = append(lines, namedLine{"inset", inset, insetColor})
	}
	if err := addLines(plt, lines); err != nil {
		return nil, err
	}
	return plt, nil
}

// Write renders plt to w in the given format ("png", "svg", "pdf", ...).
func Write(w io.Writer, plt *plot.Plot, width, height vg.Length, format string) error {
	wt, err := plt.WriterTo(width, height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

type namedLine struct {
	name  string
	line  poly2.PolyLine
	color color.Color
}

func newPlot(title string) *plot.Plot {
	plt := plot.New()
	plt.Title.Text = title
	plt.X.Label.Text = "X"
	plt.Y.Label.Text = "Y"
	plt.Add(plotter.NewGrid())
	return plt
}

func addLines(plt *plot.Plot, lines []namedLine) error {
	for _, nl := range lines {
		l, err := plotter.NewLine(XYs(nl.line))
		if err != nil {
			return fmt.Errorf("plotting %s: %w", nl.name, err)
		}
		l.Color = nl.color
		plt.Add(l)
		plt.Legend.Add(nl.name, l)
	}
	return nil
}
