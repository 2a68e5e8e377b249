package conv

import (
	"fmt"

	algofft "github.com/cwbudde/algo-fft"
)

// CircularCorrelator computes the circular cross-correlation of signals
// against a fixed template:
//
//	out[k] = sum_n signal[(n+k) mod N] * template[n]
//
// so the argmax of out is the circular offset that best aligns the template
// with the signal. The template spectrum is computed once. A correlator
// owns its FFT plan and scratch buffers and must not be shared between
// goroutines; use Clone to obtain one per worker.
type CircularCorrelator struct {
	n        int
	plan     *algofft.Plan[complex128]
	tmplConj []complex128
	buf      []complex128
	out      []float64
}

// NewCircularCorrelator prepares a correlator for template.
func NewCircularCorrelator(template []float64) (*CircularCorrelator, error) {
	if len(template) == 0 {
		return nil, ErrEmptyKernel
	}

	n := len(template)
	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	spec := make([]complex128, n)
	for i, v := range template {
		spec[i] = complex(v, 0)
	}
	if err := plan.Forward(spec, spec); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}
	for i, v := range spec {
		spec[i] = complex(real(v), -imag(v))
	}

	return &CircularCorrelator{
		n:        n,
		plan:     plan,
		tmplConj: spec,
		buf:      make([]complex128, n),
		out:      make([]float64, n),
	}, nil
}

// Len returns the correlation length.
func (c *CircularCorrelator) Len() int { return c.n }

// Clone returns a correlator sharing the template spectrum but owning a
// fresh plan and buffers.
func (c *CircularCorrelator) Clone() (*CircularCorrelator, error) {
	plan, err := algofft.NewPlan64(c.n)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	return &CircularCorrelator{
		n:        c.n,
		plan:     plan,
		tmplConj: c.tmplConj,
		buf:      make([]complex128, c.n),
		out:      make([]float64, c.n),
	}, nil
}

// Correlate returns the circular correlation of signal with the template.
// The returned slice is owned by the correlator and is overwritten by the
// next call.
func (c *CircularCorrelator) Correlate(signal []float64) ([]float64, error) {
	if len(signal) != c.n {
		return nil, fmt.Errorf("%w: signal %d, template %d", ErrLengthMismatch, len(signal), c.n)
	}

	for i, v := range signal {
		c.buf[i] = complex(v, 0)
	}
	if err := c.plan.Forward(c.buf, c.buf); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}
	for i := range c.buf {
		c.buf[i] *= c.tmplConj[i]
	}
	if err := c.plan.Inverse(c.buf, c.buf); err != nil {
		return nil, fmt.Errorf("conv: inverse FFT failed: %w", err)
	}
	for i, v := range c.buf {
		c.out[i] = real(v)
	}

	return c.out, nil
}

// FindPeak finds the index and value of the maximum in a correlation result.
// Ties resolve to the lowest index.
func FindPeak(corr []float64) (index int, value float64) {
	if len(corr) == 0 {
		return -1, 0
	}

	index = 0
	value = corr[0]

	for i, v := range corr {
		if v > value {
			index = i
			value = v
		}
	}

	return index, value
}
