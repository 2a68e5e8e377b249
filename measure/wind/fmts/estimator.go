package fmts

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/cwbudde/algo-aowind/dsp/grid"
	"github.com/cwbudde/algo-aowind/measure/psd"
	"github.com/cwbudde/algo-aowind/measure/wind"
	"github.com/go-logr/logr"
)

var _ wind.Estimator = (*Estimator)(nil)

// Option configures an Estimator.
type Option func(*options)

type options struct {
	periodogram psd.Config
	workers     int
	openLoop    bool
	log         logr.Logger
}

func defaultOptions() options {
	return options{
		periodogram: psd.DefaultConfig(),
		workers:     runtime.GOMAXPROCS(0),
		log:         logr.Discard(),
	}
}

// WithPeriodogram sets the periodogram configuration. A positive
// System.SampleRate in the telemetry overrides its sample rate.
func WithPeriodogram(cfg psd.Config) Option {
	return func(o *options) {
		o.periodogram = cfg
	}
}

// WithWorkers sets the number of goroutines fitting modes.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithOpenLoop skips the closed-to-open-loop correction.
func WithOpenLoop() Option {
	return func(o *options) {
		o.openLoop = true
	}
}

// WithLogger sets the logger. Per-mode detail is logged at V(1).
func WithLogger(l logr.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

// Estimator runs the FMTS estimate over a mode cube.
type Estimator struct {
	cfg  Config
	opts options

	tel   wind.Telemetry
	ready bool
}

// New returns an estimator for cfg.
func New(cfg Config, opts ...Option) (*Estimator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if err := o.periodogram.Validate(); err != nil {
		return nil, err
	}

	return &Estimator{cfg: cfg, opts: o}, nil
}

// Config returns the fitting configuration.
func (e *Estimator) Config() Config { return e.cfg }

// Setup binds t. It requires a mode cube; a compensation grid and an
// aperture, if given, must match the cube's spatial shape.
func (e *Estimator) Setup(t wind.Telemetry) error {
	e.ready = false

	if t.Modes == nil {
		return fmt.Errorf("%w: telemetry has no mode cube", wind.ErrNotReady)
	}
	if t.Compensation != nil {
		if err := grid.SameShape(t.Modes, t.Compensation); err != nil {
			return fmt.Errorf("fmts: compensation grid: %w", err)
		}
	}
	if t.Aperture.Full != nil {
		if _, err := wind.NewAperture(t.Aperture.Full, t.Aperture.Inner); err != nil {
			return err
		}
		if err := grid.SameShape(t.Aperture, t.Modes); err != nil {
			return fmt.Errorf("fmts: mode grid: %w", err)
		}
	}
	if !e.opts.openLoop {
		if err := t.System.LoopModel().Validate(); err != nil {
			return err
		}
	}

	e.tel = t
	e.ready = true
	return nil
}

// Finish releases the bound telemetry.
func (e *Estimator) Finish() error {
	e.tel = wind.Telemetry{}
	e.ready = false
	return nil
}

// Estimate computes the corrected periodogram and fits every mode.
func (e *Estimator) Estimate() (wind.Result, error) {
	if !e.ready {
		return wind.Result{}, wind.ErrNotReady
	}

	pcfg := e.opts.periodogram
	if e.tel.System.SampleRate > 0 {
		pcfg.SampleRate = e.tel.System.SampleRate
	}

	pipe := psd.Pipeline{Config: pcfg, Logger: e.opts.log}
	if !e.opts.openLoop {
		loop := e.tel.System.LoopModel()
		pipe.Loop = &loop
	}

	per, _, err := pipe.Run(e.tel.Modes, e.tel.Compensation)
	if err != nil {
		return wind.Result{}, err
	}

	tmpl, err := psd.NewTemplate(pcfg)
	if err != nil {
		return wind.Result{}, err
	}

	layers, err := e.fitAll(per, tmpl)
	if err != nil {
		return wind.Result{}, err
	}

	e.opts.log.Info("fmts estimate complete", "modes", per.Data.Kx*per.Data.Ky, "layers", layers.Count())

	return wind.Result{Kind: wind.KindFMTS, Periodogram: per, Layers: layers}, nil
}

type modeJob struct{ k, l int }

// fitAll distributes modes over the worker pool. Each worker owns a
// correlator and scratch buffers; the periodogram is only read.
func (e *Estimator) fitAll(per *psd.Periodogram, tmpl *psd.Template) (*wind.LayerGrid, error) {
	kx, ky := per.Data.Kx, per.Data.Ky
	layers := wind.NewLayerGrid(kx, ky)
	omega := per.Omega()

	workers := min(e.opts.workers, kx*ky)
	fitters := make([]*modeFitter, workers)
	for i := range fitters {
		corr, err := tmpl.NewCorrelator()
		if err != nil {
			return nil, err
		}
		fitters[i] = newModeFitter(e.cfg, corr, e.opts.log.WithValues("worker", i))
	}

	jobs := make(chan modeJob)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i, f := range fitters {
		wg.Add(1)
		go func() {
			defer wg.Done()
			col := make([]float64, per.Length)
			for job := range jobs {
				if errs[i] != nil {
					continue
				}
				col = per.Column(job.k, job.l, col)
				recs, stop := f.run(col, omega)
				if stop != nil && isFatal(stop) {
					errs[i] = fmt.Errorf("fmts: mode (%d, %d): %w", job.k, job.l, stop)
					continue
				}
				layers.Set(job.k, job.l, recs)
			}
		}()
	}

	for k := 0; k < kx; k++ {
		for l := 0; l < ky; l++ {
			jobs <- modeJob{k: k, l: l}
		}
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return layers, nil
}
