package conv_test

import (
	"fmt"

	"github.com/cwbudde/algo-aowind/dsp/conv"
	"github.com/cwbudde/algo-aowind/dsp/grid"
)

func ExampleGradient() {
	// A tilt of 0.5 per column and 0.25 per row.
	img := grid.New(5, 5)
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			img.Set(r, c, 0.5*float64(c)+0.25*float64(r))
		}
	}

	gx, gy, _ := conv.Gradient(img, conv.MethodDirect)

	fmt.Printf("gx at center: %.2f\n", gx.At(2, 2))
	fmt.Printf("gy at center: %.2f\n", gy.At(2, 2))

	// Output:
	// gx at center: 0.50
	// gy at center: 0.25
}

func ExampleCircularCorrelator() {
	template := []float64{1, 0.5, 0, 0, 0, 0, 0, 0.5}
	signal := []float64{0, 0, 0, 0.5, 1, 0.5, 0, 0}

	c, _ := conv.NewCircularCorrelator(template)
	corr, _ := c.Correlate(signal)
	offset, _ := conv.FindPeak(corr)

	fmt.Println("Offset:", offset)

	// Output:
	// Offset: 4
}
