package fmts

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-aowind/dsp/core"
	"github.com/cwbudde/algo-aowind/measure/wind"
	"gonum.org/v1/gonum/optimize"
)

// SinglePole evaluates variance / (1 - 2*alpha*cos(omega-center) + alpha^2).
func SinglePole(omega, alpha, center, variance float64) float64 {
	return variance / (1 - 2*alpha*math.Cos(omega-center) + alpha*alpha)
}

// minDenominator keeps the model finite for |alpha| -> 1 at the center.
const minDenominator = 1e-300

// peakFit is the least-squares problem for one candidate peak: the
// weighted residual samples y at frequencies w, normalized by scale.
type peakFit struct {
	w, y   []float64
	center float64
	scale  float64
	float  bool
}

// params unpacks the optimizer vector into (alpha, variance, center).
func (p *peakFit) params(x []float64) (alpha, variance, center float64) {
	center = p.center
	if p.float {
		center = x[2]
	}
	return x[0], x[1], center
}

func (p *peakFit) objective(x []float64) float64 {
	alpha, v, c := p.params(x)
	sum := 0.0
	for i, w := range p.w {
		d := 1 - 2*alpha*math.Cos(w-c) + alpha*alpha
		if d < minDenominator {
			return math.MaxFloat64
		}
		r := v/d - p.y[i]
		sum += r * r
	}
	return 0.5 * sum
}

func (p *peakFit) gradient(grad, x []float64) {
	alpha, v, c := p.params(x)
	for i := range grad {
		grad[i] = 0
	}
	for i, w := range p.w {
		cs, sn := math.Cos(w-c), math.Sin(w-c)
		d := 1 - 2*alpha*cs + alpha*alpha
		if d < minDenominator {
			continue
		}
		r := v/d - p.y[i]
		d2 := d * d
		grad[0] += r * (-v * (2*alpha - 2*cs) / d2)
		grad[1] += r / d
		if p.float {
			grad[2] += r * (2 * alpha * v * sn / d2)
		}
	}
}

// solve fits the model starting at (alpha0, 1) in normalized units and
// returns (alpha, variance, center) in the units of the residual.
// A failed or early-terminated BFGS run is polished with Nelder-Mead from
// the best point it reached.
func (p *peakFit) solve(alpha0 float64) (alpha, variance, center float64, err error) {
	x0 := []float64{alpha0, 1}
	if p.float {
		x0 = append(x0, p.center)
	}

	res, err := optimize.Minimize(
		optimize.Problem{Func: p.objective, Grad: p.gradient},
		x0,
		&optimize.Settings{
			GradientThreshold: 1e-8,
			MajorIterations:   500,
			Converger: &optimize.FunctionConverge{
				Absolute:   1e-16,
				Relative:   1e-12,
				Iterations: 50,
			},
		},
		&optimize.BFGS{},
	)
	if err != nil || res == nil || res.Status.Early() {
		start := x0
		if res != nil && core.Finite(res.X...) {
			start = res.X
		}
		res, err = p.polish(start)
		if err != nil {
			return 0, 0, 0, err
		}
	}
	if !core.Finite(res.X...) {
		return 0, 0, 0, fmt.Errorf("%w: non-finite solution", wind.ErrNonConvergence)
	}

	alpha, variance, center = p.params(res.X)
	return alpha, variance * p.scale, center, nil
}

// polish minimizes the objective with Nelder-Mead from start.
func (p *peakFit) polish(start []float64) (*optimize.Result, error) {
	res, err := optimize.Minimize(
		optimize.Problem{Func: p.objective},
		start,
		&optimize.Settings{
			MajorIterations: 5000,
			Converger: &optimize.FunctionConverge{
				Absolute:   1e-18,
				Relative:   1e-14,
				Iterations: 100,
			},
		},
		&optimize.NelderMead{SimplexSize: 0.01},
	)
	if res == nil {
		return nil, fmt.Errorf("%w: %v", wind.ErrNonConvergence, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", wind.ErrNonConvergence, res.Status, err)
	}
	if res.Status.Early() {
		return nil, fmt.Errorf("%w: %s", wind.ErrNonConvergence, res.Status)
	}
	return res, nil
}
