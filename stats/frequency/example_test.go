package frequency_test

import (
	"fmt"

	frequencystats "github.com/cwbudde/algo-aowind/stats/frequency"
)

func ExampleCalculate() {
	freqs := []float64{-2, -1, 0, 1}
	power := []float64{0, 1, 2, 1}
	s := frequencystats.Calculate(power, freqs)
	fmt.Printf("peak=%.0f Hz centroid=%.0f Hz\n", s.MaxFreq, s.Centroid)

	// Output:
	// peak=0 Hz centroid=0 Hz
}

func ExampleNyquistBand() {
	fmt.Println(frequencystats.NyquistBand(8, 3))

	// Output:
	// [7 0 1]
}
