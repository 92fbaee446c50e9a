package time_test

import (
	"fmt"

	timestats "github.com/cwbudde/algo-envelope/stats/time"
)

func ExampleCalculate() {
	s := timestats.Calculate([]float64{0, 1, 0, -1})
	fmt.Printf("peak=%.1f rms=%.3f crest=%.2f dB\n", s.Peak, s.RMS, s.CrestFactor_dB)
	// Output: peak=1.0 rms=0.707 crest=3.01 dB
}
