// Package foilcsv reads airfoil coordinate exports in the comma separated
// layout produced by airfoil plotting tools:
//
//	Chord(mm),100
//	Airfoil surface,
//	X(mm),Y(mm)
//	100.0000,0.0000
//	...
//	Chord line,
//	X(mm),Y(mm)
//	...
//	Camber line,
//	X(mm),Y(mm)
//	...
//
// Lines outside the recognized sections are ignored.
package foilcsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/soypat/airfoil"
	"gonum.org/v1/gonum/spatial/r2"
)

// ErrParse is returned for input that does not follow the expected layout.
var ErrParse = errors.New("parse error")

const (
	chordKey       = "Chord(mm)"
	surfaceHeader  = "Airfoil surface"
	chordHeader    = "Chord line"
	camberHeader   = "Camber line"
	columnsHeaderX = "X(mm)"
)

// Data holds the raw sections of an airfoil export in file units.
type Data struct {
	Chord      float64
	Surface    []r2.Vec
	ChordLine  []r2.Vec
	CamberLine []r2.Vec
}

// Profile builds the normalized airfoil profile from d.
func (d Data) Profile() (*airfoil.Profile, error) {
	return airfoil.NewProfile(d.Surface, d.ChordLine, d.CamberLine, d.Chord)
}

// ReadFile parses the airfoil export at path.
func ReadFile(path string) (Data, error) {
	fp, err := os.Open(path)
	if err != nil {
		return Data{}, err
	}
	defer fp.Close()
	return Parse(fp)
}

type section struct {
	name   string
	values []float64
	seen   bool
}

// Parse reads an airfoil export from r.
func Parse(r io.Reader) (Data, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	sections := map[string]*section{
		surfaceHeader: {name: surfaceHeader},
		chordHeader:   {name: chordHeader},
		camberHeader:  {name: camberHeader},
	}
	var (
		data     Data
		chordSet bool
		current  *section
	)
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return Data{}, fmt.Errorf("%w: %v", ErrParse, err)
		}
		line, _ := cr.FieldPos(0)
		first := strings.TrimSpace(record[0])
		if current != nil {
			if _, err := strconv.ParseFloat(first, 64); err == nil {
				if err := current.appendValues(record); err != nil {
					return Data{}, fmt.Errorf("%w: line %d: %v", ErrParse, line, err)
				}
				continue
			}
			if first == columnsHeaderX && len(current.values) == 0 {
				continue
			}
			current = nil
		}
		switch {
		case first == chordKey:
			if len(record) < 2 {
				return Data{}, fmt.Errorf("%w: line %d: missing chord value", ErrParse, line)
			}
			data.Chord, err = strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
			if err != nil {
				return Data{}, fmt.Errorf("%w: line %d: chord: %v", ErrParse, line, err)
			}
			chordSet = true
		case sections[first] != nil:
			sec := sections[first]
			if sec.seen {
				return Data{}, fmt.Errorf("%w: line %d: duplicate %q section", ErrParse, line, first)
			}
			sec.seen = true
			current = sec
		}
	}
	if !chordSet {
		return Data{}, fmt.Errorf("%w: missing %q entry", ErrParse, chordKey)
	}
	var err error
	if data.Surface, err = sections[surfaceHeader].points(); err != nil {
		return Data{}, err
	}
	if data.ChordLine, err = sections[chordHeader].points(); err != nil {
		return Data{}, err
	}
	if data.CamberLine, err = sections[camberHeader].points(); err != nil {
		return Data{}, err
	}
	return data, nil
}

func (s *section) appendValues(record []string) error {
	for _, field := range record {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return fmt.Errorf("%s: %v", s.name, err)
		}
		s.values = append(s.values, v)
	}
	return nil
}

func (s *section) points() ([]r2.Vec, error) {
	switch {
	case !s.seen:
		return nil, fmt.Errorf("%w: missing %q section", ErrParse, s.name)
	case len(s.values) == 0:
		return nil, fmt.Errorf("%w: empty %q section", ErrParse, s.name)
	case len(s.values)%2 != 0:
		return nil, fmt.Errorf("%w: %q section has odd count of coordinate values (%d)", ErrParse, s.name, len(s.values))
	}
	pts := make([]r2.Vec, len(s.values)/2)
	for i := range pts {
		pts[i] = r2.Vec{X: s.values[2*i], Y: s.values[2*i+1]}
	}
	return pts, nil
}
