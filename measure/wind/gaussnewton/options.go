package gaussnewton

import (
	"github.com/cwbudde/algo-aowind/dsp/conv"
	"github.com/cwbudde/algo-aowind/dsp/interp"
	"github.com/cwbudde/algo-aowind/measure/wind"
	"github.com/go-logr/logr"
)

// Option configures an Estimator.
type Option func(*config)

type config struct {
	iterations  int
	order       interp.Order
	boundary    interp.Boundary
	strictEdges bool
	method      conv.Method
	initial     wind.Vector
	log         logr.Logger
}

func defaultConfig() config {
	return config{
		iterations: 3,
		order:      interp.OrderCubic,
		boundary:   interp.BoundaryConstant,
		method:     conv.MethodAuto,
		log:        logr.Discard(),
	}
}

// WithIterations sets the number of Gauss-Newton updates per step.
// Values below one are ignored.
func WithIterations(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.iterations = n
		}
	}
}

// WithOrder sets the interpolation order of the frame shift.
func WithOrder(o interp.Order) Option {
	return func(c *config) {
		c.order = o
	}
}

// WithBoundary sets how the frame shift samples outside the grid.
func WithBoundary(b interp.Boundary) Option {
	return func(c *config) {
		c.boundary = b
	}
}

// WithStrictEdges zeroes the outermost gradient samples along each
// derivative axis instead of restricting the gradients to the inner mask.
func WithStrictEdges(strict bool) Option {
	return func(c *config) {
		c.strictEdges = strict
	}
}

// WithGradientMethod selects the convolution used for the gradients.
func WithGradientMethod(m conv.Method) Option {
	return func(c *config) {
		c.method = m
	}
}

// WithInitialWind sets the wind the estimator starts from after Setup.
func WithInitialWind(v wind.Vector) Option {
	return func(c *config) {
		c.initial = v
	}
}

// WithLogger sets the logger. Per-iteration detail is logged at V(1).
func WithLogger(l logr.Logger) Option {
	return func(c *config) {
		c.log = l
	}
}
