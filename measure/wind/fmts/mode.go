package fmts

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-aowind/dsp/core"
	"github.com/cwbudde/algo-aowind/measure/psd"
	"github.com/cwbudde/algo-aowind/measure/wind"
	"github.com/go-logr/logr"
	"gonum.org/v1/gonum/floats"
)

// errNoSignal ends a mode's search normally: nothing positive is left
// inside the search window.
var errNoSignal = errors.New("fmts: no signal left to fit")

// residualFloor is the fraction of a bin's original power below which a
// residual counts as fully explained.
const residualFloor = 1e-6

// modeFitter owns the per-mode scratch buffers. One fitter serves one
// worker.
type modeFitter struct {
	cfg  Config
	corr *psd.Correlator
	log  logr.Logger

	residual []float64
	fit      []float64
	masked   []bool
	w, y     []float64
}

func newModeFitter(cfg Config, corr *psd.Correlator, log logr.Logger) *modeFitter {
	return &modeFitter{cfg: cfg, corr: corr, log: log}
}

func (m *modeFitter) reset(n int) {
	m.residual = core.EnsureLen(m.residual, n)
	m.fit = core.EnsureLen(m.fit, n)
	m.masked = core.EnsureLen(m.masked, n)
	core.Zero(m.fit)
	core.Zero(m.masked)
}

// FitMode extracts up to cfg.MaxLayers single-pole peaks from one mode's
// spectrum. column and omega share the DC-centered bin order of a
// psd.Periodogram. The correlator's scratch is the only state touched.
// Fit rejections end the search and are not reported as errors.
func FitMode(column, omega []float64, corr *psd.Correlator, cfg Config) []wind.LayerRecord {
	recs, _ := newModeFitter(cfg, corr, logr.Discard()).run(column, omega)
	return recs
}

// run returns the accepted records and the reason the search stopped;
// a nil reason means MaxLayers was reached.
func (m *modeFitter) run(column, omega []float64) ([]wind.LayerRecord, error) {
	n := len(column)
	m.reset(n)
	copy(m.residual, column)

	var recs []wind.LayerRecord
	for len(recs) < m.cfg.MaxLayers {
		for i := range m.residual {
			m.residual[i] -= m.fit[i]
			if m.residual[i] <= residualFloor*column[i] || m.masked[i] || math.IsNaN(m.residual[i]) {
				m.residual[i] = 0
			}
		}

		idx, err := m.corr.Peak(m.residual)
		if err != nil {
			return recs, err
		}
		candidate := omega[idx]

		rec, err := m.fitPeak(omega, candidate)
		if err != nil {
			m.log.V(1).Info("peak search stopped", "layers", len(recs), "candidate", candidate, "reason", err.Error())
			return recs, err
		}

		recs = append(recs, rec)
		for i, w := range omega {
			m.fit[i] = SinglePole(w, rec.Alpha, rec.Omega, rec.Variance)
			if math.Abs(w-rec.Omega) <= m.cfg.MaskRadius {
				m.masked[i] = true
			}
		}
	}

	return recs, nil
}

// fitPeak fits the model around candidate and applies the acceptance
// rules. Masked bins stay in the window at their zeroed residual.
func (m *modeFitter) fitPeak(omega []float64, candidate float64) (wind.LayerRecord, error) {
	m.w, m.y = m.w[:0], m.y[:0]
	for i, w := range omega {
		if math.Abs(w-candidate) <= m.cfg.SearchRadius {
			m.w = append(m.w, w)
			m.y = append(m.y, m.residual[i])
		}
	}
	if len(m.w) == 0 {
		return wind.LayerRecord{}, fmt.Errorf("%w: empty fit window", errNoSignal)
	}

	ymax := floats.Max(m.y)
	if !(ymax > 0) {
		return wind.LayerRecord{}, fmt.Errorf("%w: no positive residual", errNoSignal)
	}

	a0 := m.cfg.InitialAlpha
	scale := ymax * (1 - a0) * (1 - a0)
	norm := make([]float64, len(m.y))
	floats.ScaleTo(norm, 1/scale, m.y)

	pf := &peakFit{w: m.w, y: norm, center: candidate, scale: scale, float: m.cfg.FloatPeak}
	alpha, variance, center, err := pf.solve(a0)
	if err != nil {
		return wind.LayerRecord{}, err
	}

	if variance < 0 {
		return wind.LayerRecord{}, fmt.Errorf("%w: negative variance %g", wind.ErrFitRejected, variance)
	}
	if alpha < m.cfg.MinAlpha || alpha > m.cfg.MaxAlpha {
		return wind.LayerRecord{}, fmt.Errorf("%w: alpha %g outside [%g, %g]", wind.ErrFitRejected, alpha, m.cfg.MinAlpha, m.cfg.MaxAlpha)
	}

	total := 0.0
	for _, w := range omega {
		total += SinglePole(w, alpha, center, variance)
	}

	return wind.LayerRecord{Alpha: alpha, Omega: center, Variance: variance, RMS: math.Sqrt(total)}, nil
}
