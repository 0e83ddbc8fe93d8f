package core_test

import (
	"fmt"

	"github.com/cwbudde/linewave/dsp/core"
)

func ExampleApplyProcessorOptions() {
	cfg := core.ApplyProcessorOptions(core.WithSampleRate(300e9))
	fmt.Printf("sampleRate=%.0e dt=%.3e\n", cfg.SampleRate, cfg.SampleInterval())

	// Output:
	// sampleRate=3e+11 dt=3.333e-12
}

func ExampleLinearToDB() {
	fmt.Printf("%.1f\n", core.LinearToDB(0.5))

	// Output:
	// -6.0
}
