package gaussnewton

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-aowind/dsp/conv"
	"github.com/cwbudde/algo-aowind/dsp/core"
	"github.com/cwbudde/algo-aowind/dsp/grid"
	"github.com/cwbudde/algo-aowind/dsp/interp"
	"github.com/cwbudde/algo-aowind/measure/wind"
	"github.com/cwbudde/algo-vecmath"
)

var _ wind.Estimator = (*Estimator)(nil)

// Estimator is the frame-registration wind estimator. It is not safe for
// concurrent use.
type Estimator struct {
	cfg config

	aperture wind.Aperture
	frames   wind.FrameSource
	ready    bool

	wind wind.Vector

	// scratch, sized on first use
	g, ref, shifted *grid.Grid
}

// New returns an estimator configured by opts.
func New(opts ...Option) *Estimator {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.log.GetSink() == nil {
		cfg.log = defaultConfig().log
	}

	return &Estimator{cfg: cfg, wind: cfg.initial}
}

// Setup binds the aperture and optional frame source of t and resets the
// wind to the initial value.
func (e *Estimator) Setup(t wind.Telemetry) error {
	e.ready = false

	a, err := wind.NewAperture(t.Aperture.Full, t.Aperture.Inner)
	if err != nil {
		return err
	}

	e.aperture = a
	e.frames = t.Frames
	e.wind = e.cfg.initial
	e.ready = true
	return nil
}

// Finish releases the aperture and frame source. The persisted wind is
// kept.
func (e *Estimator) Finish() error {
	e.aperture = wind.Aperture{}
	e.frames = nil
	e.g, e.ref, e.shifted = nil, nil, nil
	e.ready = false
	return nil
}

// Wind returns the persisted wind estimate.
func (e *Estimator) Wind() wind.Vector { return e.wind }

// Estimate runs Step over every adjacent pair of the bound frame source in
// time order and returns one wind vector per pair.
func (e *Estimator) Estimate() (wind.Result, error) {
	if !e.ready {
		return wind.Result{}, wind.ErrNotReady
	}
	if e.frames == nil {
		return wind.Result{}, fmt.Errorf("%w: no frame source", wind.ErrNotReady)
	}

	n := e.frames.Len()
	winds := make([]wind.Vector, 0, max(n-1, 0))
	for t := 1; t < n; t++ {
		v, err := e.Step(e.frames.Frame(t), e.frames.Frame(t-1), nil)
		if err != nil {
			return wind.Result{}, fmt.Errorf("gaussnewton: frame %d: %w", t, err)
		}
		winds = append(winds, v)
	}

	e.cfg.log.Info("gauss-newton estimate complete", "pairs", len(winds), "wind", e.wind.String())

	return wind.Result{Kind: wind.KindGaussNewton, Winds: winds, Wind: e.wind}, nil
}

// Step refines the wind between previous and current, starting from prior
// or, when prior is nil, from the persisted wind. On success the result is
// persisted; on error the persisted wind is unchanged.
func (e *Estimator) Step(current, previous *grid.Grid, prior *wind.Vector) (wind.Vector, error) {
	if !e.ready {
		return wind.Vector{}, wind.ErrNotReady
	}

	full, inner := e.aperture.Full, e.aperture.Inner
	if err := grid.SameShape(full, current, previous); err != nil {
		return wind.Vector{}, err
	}
	if len(full.Data) == 0 {
		return wind.Vector{}, fmt.Errorf("%w: empty aperture", wind.ErrSingularSystem)
	}
	e.ensureScratch(full.Rows, full.Cols)

	if _, err := grid.RemovePiston(e.g, current, full); err != nil {
		return wind.Vector{}, err
	}

	gx, gy, err := conv.Gradient(e.g, e.cfg.method)
	if err != nil {
		return wind.Vector{}, fmt.Errorf("gaussnewton: gradient: %w", err)
	}
	if err := applyMask(full, gx, gy); err != nil {
		return wind.Vector{}, err
	}
	if e.cfg.strictEdges {
		zeroBorder(gx, gy)
	} else if err := applyMask(inner, gx, gy); err != nil {
		return wind.Vector{}, err
	}

	gram := [2][2]float64{
		{vecmath.DotProduct(gx.Data, gx.Data), vecmath.DotProduct(gx.Data, gy.Data)},
		{vecmath.DotProduct(gy.Data, gx.Data), vecmath.DotProduct(gy.Data, gy.Data)},
	}

	if _, err := grid.RemovePistonMasked(e.ref, current, inner); err != nil {
		return wind.Vector{}, err
	}

	w := e.wind
	if prior != nil {
		w = *prior
	}

	for it := 0; it < e.cfg.iterations; it++ {
		if err := interp.Shift2D(e.shifted, previous, w.Y, w.X, e.cfg.order, e.cfg.boundary); err != nil {
			return wind.Vector{}, fmt.Errorf("gaussnewton: shift: %w", err)
		}
		if err := applyMask(inner, e.shifted); err != nil {
			return wind.Vector{}, err
		}
		if _, err := grid.RemovePistonMasked(e.shifted, e.shifted, inner); err != nil {
			return wind.Vector{}, err
		}

		// shifted becomes the residual reference - shifted.
		vecmath.ScaleBlockInPlace(e.shifted.Data, -1)
		vecmath.AddBlockInPlace(e.shifted.Data, e.ref.Data)

		num := [2]float64{
			vecmath.DotProduct(gx.Data, e.shifted.Data),
			vecmath.DotProduct(gy.Data, e.shifted.Data),
		}

		step, err := core.Solve2x2(gram, num)
		if err != nil {
			if errors.Is(err, core.ErrSingular) {
				return wind.Vector{}, fmt.Errorf("%w: %w", wind.ErrSingularSystem, err)
			}
			return wind.Vector{}, err
		}

		w = wind.Vector{X: w.X - step[0], Y: w.Y - step[1]}
		e.cfg.log.V(1).Info("gauss-newton update", "iteration", it, "wind", w.String())
	}

	e.wind = w
	return w, nil
}

func (e *Estimator) ensureScratch(rows, cols int) {
	if e.g == nil || e.g.Rows != rows || e.g.Cols != cols {
		e.g = grid.New(rows, cols)
		e.ref = grid.New(rows, cols)
		e.shifted = grid.New(rows, cols)
	}
}

// zeroBorder clears the first and last column of gx and the first and
// last row of gy.
func zeroBorder(gx, gy *grid.Grid) {
	for r := 0; r < gx.Rows; r++ {
		gx.Set(r, 0, 0)
		gx.Set(r, gx.Cols-1, 0)
	}
	for c := 0; c < gy.Cols; c++ {
		gy.Set(0, c, 0)
		gy.Set(gy.Rows-1, c, 0)
	}
}

// applyMask zeroes every sample of gs outside m.
func applyMask(m *grid.Mask, gs ...*grid.Grid) error {
	for _, g := range gs {
		if err := m.Apply(g); err != nil {
			return fmt.Errorf("gaussnewton: mask: %w", err)
		}
	}
	return nil
}
