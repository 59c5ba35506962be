package airfoil

import (
	"fmt"
	"math"

	"github.com/soypat/airfoil/internal/d2"
	"gonum.org/v1/gonum/optimize"
)

const (
	// thickestSeed is the camber fraction the search starts from.
	thickestSeed = 0.5
	// thickestSimplex is the initial Nelder-Mead simplex size.
	thickestSimplex = 0.05
)

// thickestIterations caps the number of major iterations of the thickest point search.
var thickestIterations = 400

// findThickestPoint maximizes Thickness over the camber fraction with a
// Nelder-Mead search seeded at the middle of the camber line. The search is
// kept within [0,1] by evaluating clamped fractions and penalizing the
// distance outside the interval. Only a local maximum is guaranteed, so
// profiles with several thickness humps may not report the global one.
func (p *Profile) findThickestPoint() (d, thickness float64, err error) {
	var evalErr error
	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			d := d2.Clamp(x[0], 0, 1)
			th, err := p.Thickness(d)
			if err != nil {
				if evalErr == nil {
					evalErr = err
				}
				return math.Inf(1)
			}
			return -th + math.Abs(x[0]-d)
		},
	}
	settings := &optimize.Settings{
		MajorIterations: thickestIterations,
		Concurrent:      1,
		Converger: &optimize.FunctionConverge{
			Absolute:   1e-10,
			Iterations: 20,
		},
	}
	result, err := optimize.Minimize(problem, []float64{thickestSeed}, settings, &optimize.NelderMead{SimplexSize: thickestSimplex})
	switch {
	case evalErr != nil:
		return 0, 0, queryErr("findThickestPoint", thickestSeed, evalErr)
	case err != nil:
		return 0, 0, queryErr("findThickestPoint", thickestSeed, fmt.Errorf("%w: %v", ErrOptimization, err))
	case result == nil:
		return 0, 0, queryErr("findThickestPoint", thickestSeed, ErrOptimization)
	}
	switch result.Status {
	case optimize.IterationLimit, optimize.FunctionEvaluationLimit, optimize.RuntimeLimit:
		return 0, 0, queryErr("findThickestPoint", thickestSeed,
			fmt.Errorf("%w: %s after %d iterations", ErrOptimization, result.Status, result.MajorIterations))
	}
	d = d2.Clamp(result.X[0], 0, 1)
	thickness, err = p.Thickness(d)
	if err != nil {
		return 0, 0, err
	}
	return d, thickness, nil
}
