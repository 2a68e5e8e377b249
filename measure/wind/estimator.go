package wind

import (
	"github.com/cwbudde/algo-aowind/dsp/grid"
	"github.com/cwbudde/algo-aowind/measure/psd"
)

// Estimator is the lifecycle shared by the wind estimators.
//
// Setup binds telemetry, Estimate runs the estimator over it, and Finish
// releases the bound data and returns the estimator to the not-ready
// state. Estimate before a successful Setup fails with ErrNotReady.
// Estimators are not safe for concurrent use.
type Estimator interface {
	Setup(t Telemetry) error
	Estimate() (Result, error)
	Finish() error
}

// FrameSource is a time-indexed sequence of phase frames.
type FrameSource interface {
	Len() int
	Frame(t int) *grid.Grid
}

// Frames adapts a slice of grids as a FrameSource.
type Frames []*grid.Grid

// Len returns the number of frames.
func (f Frames) Len() int { return len(f) }

// Frame returns frame t.
func (f Frames) Frame(t int) *grid.Grid { return f[t] }

// System holds the adaptive-optics loop parameters.
type System struct {
	SampleRate float64 // control loop rate, Hz
	Delay      float64 // sensor plus actuator delay, seconds
	Gain       float64 // integrator gain
	Pole       float64 // integrator pole (leak), 1 for a pure integrator
}

// LoopModel returns the transfer model of s.
func (s System) LoopModel() psd.LoopModel {
	return psd.LoopModel{SampleRate: s.SampleRate, Delay: s.Delay, Gain: s.Gain, Pole: s.Pole}
}

// Telemetry bundles the data collaborators supply to an estimator. Each
// estimator uses the subset it needs.
type Telemetry struct {
	Aperture Aperture
	Frames   FrameSource

	// Modes holds one complex time series per spatial Fourier mode.
	Modes *grid.ComplexCube
	// Compensation scales each mode's PSD; nil means all ones.
	Compensation *grid.Grid

	System System
}

// Kind tags the estimator that produced a Result.
type Kind int

const (
	KindGaussNewton Kind = iota + 1
	KindFMTS
)

// String returns the estimator name.
func (k Kind) String() string {
	switch k {
	case KindGaussNewton:
		return "gauss-newton"
	case KindFMTS:
		return "fmts"
	default:
		return "unknown"
	}
}

// Result is the output of Estimate. Fields not produced by Kind are zero.
type Result struct {
	Kind Kind

	// Gauss-Newton: one vector per adjacent frame pair, and the last one.
	Winds []Vector
	Wind  Vector

	// FMTS: the corrected, noise-split periodogram and per-mode layers.
	Periodogram *psd.Periodogram
	Layers      *LayerGrid
}
