// Package conv provides 2-D convolution, finite-difference gradients, and
// circular correlation.
//
// Two convolution strategies share the same "same"-mode, zero-padded
// semantics:
//
//   - Direct convolution: spatial accumulation, best for small kernels
//   - FFT convolution: zero-padded 2-D spectra multiplied and inverted
//
// # Usage
//
//	out, err := conv.Convolve2D(img, kernel, conv.MethodAuto)
//	gx, gy, err := conv.Gradient(img, conv.MethodDirect)
//
// [MethodAuto] uses direct convolution while the kernel holds at most 64
// samples and FFT convolution above that.
//
// # Correlation
//
// A [CircularCorrelator] holds the spectrum of a fixed template and slides
// it circularly over signals of the same length:
//
//	c, err := conv.NewCircularCorrelator(template)
//	corr, err := c.Correlate(signal)
//	offset, _ := conv.FindPeak(corr)
package conv
