package foilcsv_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/soypat/airfoil/helpers/foilcsv"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestReadFileNACA0012(t *testing.T) {
	data, err := foilcsv.ReadFile("testdata/naca0012.csv")
	if err != nil {
		t.Fatal(err)
	}
	if data.Chord != 100 {
		t.Errorf("chord: got %g", data.Chord)
	}
	if len(data.Surface) != 121 || len(data.ChordLine) != 2 || len(data.CamberLine) != 61 {
		t.Fatalf("section sizes %d %d %d", len(data.Surface), len(data.ChordLine), len(data.CamberLine))
	}
	if data.ChordLine[1] != (r2.Vec{X: 100}) {
		t.Errorf("chord line end: %v", data.ChordLine[1])
	}
	p, err := data.Profile()
	if err != nil {
		t.Fatal(err)
	}
	if d := p.ThickestCamberFraction(); math.Abs(d-0.3) > 0.03 {
		t.Errorf("thickest camber fraction %g, want about 0.3", d)
	}
	if th := p.MaxThickness(); math.Abs(th-0.12) > 1e-3 {
		t.Errorf("max thickness %g, want about 0.12", th)
	}
	if ac := p.AeroCenter(); ac != (r2.Vec{X: 25}) {
		t.Errorf("aero center %v, want (25,0)", ac)
	}
}

const minimal = `Airfoil,test
Chord(mm), 2
Airfoil surface,
X(mm),Y(mm)
2,0
1,0.2
0,0
1,-0.2

Chord line,
X(mm),Y(mm)
0,0
2,0
Camber line,
X(mm),Y(mm)
0,0
2,0
`

func TestParseMinimal(t *testing.T) {
	data, err := foilcsv.Parse(strings.NewReader(minimal))
	if err != nil {
		t.Fatal(err)
	}
	want := []r2.Vec{{X: 2}, {X: 1, Y: 0.2}, {}, {X: 1, Y: -0.2}}
	if len(data.Surface) != len(want) {
		t.Fatalf("got %d surface points", len(data.Surface))
	}
	for i := range want {
		if data.Surface[i] != want[i] {
			t.Errorf("surface %d: got %v, want %v", i, data.Surface[i], want[i])
		}
	}
	p, err := data.Profile()
	if err != nil {
		t.Fatal(err)
	}
	th, err := p.Thickness(0.5)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(th-0.2) > 1e-12 {
		t.Errorf("thickness at half camber %g, want 0.2", th)
	}
}

func TestParseErrors(t *testing.T) {
	for _, test := range []struct {
		name string
		in   string
	}{
		{"missing chord", strings.Replace(minimal, "Chord(mm), 2\n", "", 1)},
		{"bad chord", strings.Replace(minimal, "Chord(mm), 2", "Chord(mm),two", 1)},
		{"empty chord", strings.Replace(minimal, "Chord(mm), 2", "Chord(mm)", 1)},
		{"odd count", strings.Replace(minimal, "1,0.2\n", "1,0.2,3\n", 1)},
		{"bad number", strings.Replace(minimal, "1,0.2\n", "1,x\n", 1)},
		{"missing camber", minimal[:strings.Index(minimal, "Camber line")]},
		{"empty section", strings.Replace(minimal, "X(mm),Y(mm)\n0,0\n2,0\nCamber", "Camber", 1)},
		{"duplicate section", minimal + "Chord line,\n0,0\n1,0\n"},
	} {
		_, err := foilcsv.Parse(strings.NewReader(test.in))
		if !errors.Is(err, foilcsv.ErrParse) {
			t.Errorf("%s: want ErrParse, got %v", test.name, err)
		}
	}
}
