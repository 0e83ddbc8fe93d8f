package clock_test

import (
	"fmt"

	"github.com/cwbudde/linewave/dsp/clock"
)

func ExampleNew() {
	p, err := clock.New(433.92e6)
	if err != nil {
		panic(err)
	}
	fmt.Println(p)
	fmt.Printf("f0=%.4f MHz radiates %.4f MHz\n", p.Output/1e6, p.Radiated()/1e6)
	// Output:
	// target=433.92 MHz  base=144.64 MHz  harmonic=3  divisor=3
	// f0=166.6667 MHz radiates 500.0000 MHz
}
