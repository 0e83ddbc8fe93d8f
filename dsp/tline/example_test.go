package tline_test

import (
	"fmt"

	"github.com/cwbudde/linewave/dsp/tline"
)

func ExampleSynthesize() {
	res, err := tline.Synthesize(tline.Params{F0: 300e6, Length: 0})
	if err != nil {
		panic(err)
	}

	fmt.Println(tline.TimeTitle(res.Params))
	fmt.Printf("samples=%d bins=%d tau=%.3f ns\n", res.Time.Len(), res.Spectrum.Len(), res.Delay*1e9)

	// Output:
	// GPIO waveform with reflections (f0=300.0 MHz, L=11.11 cm)
	// samples=10000 bins=4999 tau=1.111 ns
}
