package envelope_test

import (
	"context"
	"fmt"

	"github.com/cwbudde/algo-envelope/dsp/core"
	dspsignal "github.com/cwbudde/algo-envelope/dsp/signal"
	"github.com/cwbudde/algo-envelope/measure/envelope"
)

func ExampleExtractor_Run() {
	gen := dspsignal.NewGenerator(core.WithSampleRate(1000))
	sweep, _ := gen.LinearSweep(5, 50, 0.8, 10000)

	sig, err := envelope.Condition(envelope.Raw{Samples: sweep, Channels: 1, SampleRate: 1000}, 0)
	if err != nil {
		panic(err)
	}

	ex := envelope.NewExtractor(envelope.WithFailFast(false))
	res, err := ex.Run(context.Background(), sig, []envelope.Cutoff{envelope.LowPass(1), envelope.BandPass(4, 8)})
	if err != nil {
		panic(err)
	}
	for _, c := range res.Curves {
		fmt.Println(c.Label, len(c.Samples))
	}
	// Output:
	// Envelope (Hilbert + LP 1 Hz), scaled 10000
	// Envelope (Hilbert + BP 4–8 Hz), scaled 10000
}
