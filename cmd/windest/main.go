// Command windest runs both wind estimators on synthetic telemetry and
// prints what they recover.
//
// Usage:
//
//	windest [flags]
//
// Phase frames are advected by a known wind for the Gauss-Newton
// estimator. Fourier-mode series are AR(1) layers, optionally passed
// through a leaky-integrator loop, for the FMTS estimator.
//
// Examples:
//
//	windest
//	windest -wind-x 1.2 -wind-y 0.4 -iterations 6
//	windest -config run.yaml -open-loop -v 1
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-aowind/dsp/interp"
	"github.com/cwbudde/algo-aowind/internal/synth"
	"github.com/cwbudde/algo-aowind/measure/wind"
	"github.com/cwbudde/algo-aowind/measure/wind/fmts"
	"github.com/cwbudde/algo-aowind/measure/wind/gaussnewton"
	"github.com/cwbudde/algo-aowind/stats/frequency"
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	configPath := flag.String("config", "", "YAML run configuration")
	verbosity := flag.Int("v", 0, "log verbosity (1 logs per-iteration detail)")
	windX := flag.Float64("wind-x", 0, "synthetic wind along columns, samples per frame")
	windY := flag.Float64("wind-y", 0, "synthetic wind along rows, samples per frame")
	iterations := flag.Int("iterations", 0, "Gauss-Newton updates per frame pair")
	strict := flag.Bool("strict-edges", false, "zero gradient borders instead of using the inner mask")
	openLoop := flag.Bool("open-loop", false, "skip the loop simulation and correction")
	length := flag.Int("length", 0, "periodogram length (power of two)")
	workers := flag.Int("workers", 0, "FMTS worker goroutines")
	seed := flag.Int64("seed", 0, "synthetic data seed")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: windest [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Runs the Gauss-Newton and FMTS wind estimators on synthetic telemetry.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := loadRunConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "wind-x":
			cfg.Synth.WindX = *windX
		case "wind-y":
			cfg.Synth.WindY = *windY
		case "iterations":
			cfg.GaussNewton.Iterations = *iterations
		case "strict-edges":
			cfg.GaussNewton.StrictEdges = *strict
		case "open-loop":
			cfg.Loop.Open = *openLoop
		case "length":
			cfg.Periodogram.Length = *length
		case "workers":
			cfg.Fitting.Workers = *workers
		case "seed":
			cfg.Synth.Seed = *seed
		}
	})

	log, flush, err := newLogger(*verbosity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer flush()

	if err := run(cfg, log); err != nil {
		log.Error(err, "windest failed")
		flush()
		os.Exit(1)
	}
}

// newLogger returns a console zap logger behind logr. zapr maps V(n) to
// zap level -n.
func newLogger(verbosity int) (logr.Logger, func(), error) {
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(zapcore.Level(-verbosity))
	zc.DisableStacktrace = true

	zl, err := zc.Build()
	if err != nil {
		return logr.Discard(), func() {}, fmt.Errorf("build logger: %w", err)
	}
	return zapr.NewLogger(zl), func() { _ = zl.Sync() }, nil
}

func run(cfg runConfig, log logr.Logger) error {
	gn, err := runGaussNewton(cfg, log.WithName("gaussnewton"))
	if err != nil {
		return err
	}
	layers, err := runFMTS(cfg, log.WithName("fmts"))
	if err != nil {
		return err
	}

	printReport(cfg, gn, layers)
	return nil
}

func runGaussNewton(cfg runConfig, log logr.Logger) (wind.Result, error) {
	sc := cfg.Synth
	full, inner := synth.Pupil(sc.Size, 0.4*float64(sc.Size), 2)
	frames := synth.Frames(synth.Wavy(), sc.Size, sc.Size, sc.Frames, sc.WindY, sc.WindX)

	boundary, err := interp.ParseBoundary(cfg.GaussNewton.Boundary)
	if err != nil {
		return wind.Result{}, err
	}

	est := gaussnewton.New(
		gaussnewton.WithIterations(cfg.GaussNewton.Iterations),
		gaussnewton.WithOrder(interp.Order(cfg.GaussNewton.Order)),
		gaussnewton.WithBoundary(boundary),
		gaussnewton.WithStrictEdges(cfg.GaussNewton.StrictEdges),
		gaussnewton.WithLogger(log),
	)
	tel := wind.Telemetry{
		Aperture: wind.Aperture{Full: full, Inner: inner},
		Frames:   wind.Frames(frames),
	}
	if err := est.Setup(tel); err != nil {
		return wind.Result{}, err
	}
	defer est.Finish()

	return est.Estimate()
}

func runFMTS(cfg runConfig, log logr.Logger) (wind.Result, error) {
	sc := cfg.Synth
	layers := make([]synth.Layer, 0, len(sc.Layers))
	for _, l := range sc.Layers {
		layers = append(layers, synth.Layer{Alpha: l.Alpha, Omega: l.Omega, Sigma: l.Sigma})
	}
	if len(layers) == 0 {
		layers = []synth.Layer{
			{Alpha: 0.95, Omega: 0.8, Sigma: 1},
			{Alpha: 0.9, Omega: -1.6, Sigma: 0.5},
		}
	}

	modes := synth.Modes(sc.Seed, sc.Steps, sc.Modes, sc.Modes, layers...)
	if !cfg.Loop.Open {
		synth.CloseLoop(modes, cfg.Loop.Gain, cfg.Loop.Pole, cfg.Loop.Delay)
	}

	pc, err := cfg.psdConfig()
	if err != nil {
		return wind.Result{}, err
	}

	opts := []fmts.Option{fmts.WithPeriodogram(pc), fmts.WithLogger(log)}
	if cfg.Fitting.Workers > 0 {
		opts = append(opts, fmts.WithWorkers(cfg.Fitting.Workers))
	}
	if cfg.Loop.Open {
		opts = append(opts, fmts.WithOpenLoop())
	}

	est, err := fmts.New(cfg.fmtsConfig(), opts...)
	if err != nil {
		return wind.Result{}, err
	}
	if err := est.Setup(wind.Telemetry{Modes: modes, System: cfg.system()}); err != nil {
		return wind.Result{}, err
	}
	defer est.Finish()

	return est.Estimate()
}

func printReport(cfg runConfig, gn, fm wind.Result) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "Gauss-Newton\ttrue wind (%.3g, %.3g)\n", cfg.Synth.WindX, cfg.Synth.WindY)
	fmt.Fprintf(tw, "Pair\tVx\tVy\t|V|\n")
	fmt.Fprintf(tw, "%s\n", strings.Repeat("-", 40))
	for i, v := range gn.Winds {
		fmt.Fprintf(tw, "%d\t%.4f\t%.4f\t%.4f\n", i+1, v.X, v.Y, v.Norm())
	}
	fmt.Fprintln(tw)

	fmt.Fprintf(tw, "Mode spectra\n")
	fmt.Fprintf(tw, "Mode\tTotal\tPeak Hz\tCentroid Hz\tSpread Hz\tFlatness\n")
	fmt.Fprintf(tw, "%s\n", strings.Repeat("-", 60))
	per := fm.Periodogram
	col := make([]float64, per.Length)
	for k := 0; k < per.Data.Kx; k++ {
		for l := 0; l < per.Data.Ky; l++ {
			col = per.Column(k, l, col)
			st := frequency.Calculate(col, per.Freq)
			fmt.Fprintf(tw, "(%d,%d)\t%.4g\t%.4g\t%.4g\t%.4g\t%.3f\n", k, l, st.Total, st.MaxFreq, st.Centroid, st.Spread, st.Flatness)
		}
	}
	fmt.Fprintln(tw)

	fmt.Fprintf(tw, "FMTS\t%d layers over %d modes\n", fm.Layers.Count(), fm.Layers.Kx*fm.Layers.Ky)
	fmt.Fprintf(tw, "Mode\tLayer\tOmega\tAlpha\tVariance\tRMS\n")
	fmt.Fprintf(tw, "%s\n", strings.Repeat("-", 60))
	for k := 0; k < fm.Layers.Kx; k++ {
		for l := 0; l < fm.Layers.Ky; l++ {
			for i, r := range fm.Layers.At(k, l) {
				fmt.Fprintf(tw, "(%d,%d)\t%d\t%.4f\t%.4f\t%.4g\t%.4g\n", k, l, i, r.Omega, r.Alpha, r.Variance, r.RMS)
			}
		}
	}

	tw.Flush()
}
