package biquad_test

import (
	"fmt"
	"math/cmplx"
	"strings"

	"github.com/cwbudde/algo-aowind/dsp/filter/biquad"
)

func ExampleIntegrator() {
	// Pure integrator with loop gain 0.5.
	c := biquad.Integrator(0.5, 1)
	s := biquad.NewSection(c)

	out := make([]string, 4)
	for i := range out {
		out[i] = fmt.Sprintf("%.1f", s.ProcessSample(1))
	}
	fmt.Println(strings.Join(out, " "))

	h := c.Response(250, 1000)
	fmt.Printf("|C| at fs/4: %.4f\n", cmplx.Abs(h))

	// Output:
	// 0.5 1.0 1.5 2.0
	// |C| at fs/4: 0.3536
}
