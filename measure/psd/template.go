package psd

import (
	"fmt"

	"github.com/cwbudde/algo-aowind/dsp/conv"
	"github.com/cwbudde/algo-aowind/dsp/grid"
	"github.com/cwbudde/algo-aowind/dsp/spectrum"
)

// Template is the periodogram of a single constant-amplitude segment: the
// window's own power response, peaked at bin 0 in natural FFT order. It
// serves as a matched filter for spectral peaks.
type Template struct {
	// Shape is the template spectrum in natural (unshifted) order.
	Shape []float64
	corr  *conv.CircularCorrelator
}

// NewTemplate builds the template for cfg. Overlap is ignored: the
// template is always one segment long.
func NewTemplate(cfg Config) (*Template, error) {
	cfg.Overlap = false

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	unit := grid.NewComplexCube(cfg.Length, 1, 1)
	for i := range unit.Data {
		unit.Data[i] = 1
	}

	p, err := Compute(unit, nil, cfg)
	if err != nil {
		return nil, fmt.Errorf("psd: template: %w", err)
	}

	shape := make([]float64, cfg.Length)
	spectrum.Unshift(shape, p.Column(0, 0, nil))

	corr, err := conv.NewCircularCorrelator(shape)
	if err != nil {
		return nil, fmt.Errorf("psd: template: %w", err)
	}

	return &Template{Shape: shape, corr: corr}, nil
}

// NewCorrelator returns a correlator with its own FFT plan and buffers.
// Use one per goroutine.
func (t *Template) NewCorrelator() (*Correlator, error) {
	c, err := t.corr.Clone()
	if err != nil {
		return nil, err
	}
	return &Correlator{c: c}, nil
}

// Correlator locates the template's best alignment within a spectrum.
type Correlator struct {
	c *conv.CircularCorrelator
}

// Peak returns the index in residual at which the template best aligns.
// Ties resolve to the lowest index.
func (c *Correlator) Peak(residual []float64) (int, error) {
	corr, err := c.c.Correlate(residual)
	if err != nil {
		return -1, fmt.Errorf("psd: correlate: %w", err)
	}
	idx, _ := conv.FindPeak(corr)
	return idx, nil
}
