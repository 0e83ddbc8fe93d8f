package signal

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/linewave/dsp/core"
)

// Generator creates deterministic signals on a uniform timebase.
type Generator struct {
	cfg core.ProcessorConfig
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return &Generator{
		cfg: core.ApplyProcessorOptions(opts...),
	}
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Timebase returns sample instants t[i] = i*dt in seconds.
func (g *Generator) Timebase(samples int) ([]float64, error) {
	if err := g.check("timebase", samples); err != nil {
		return nil, err
	}
	dt := g.cfg.SampleInterval()
	out := make([]float64, samples)
	for i := range out {
		out[i] = float64(i) * dt
	}
	return out, nil
}

// OddHarmonicSquare synthesizes the truncated Fourier series of a square wave
// of the given amplitude, delayed by delay seconds and scaled by gain:
//
//	x(t) = sum_{n=0}^{harmonics-1} gain * 4A/(pi*k) * sin(2*pi*k*f*t - 2*pi*k*f*delay),  k = 2n+1
//
// The delay is applied per harmonic as a phase shift, so the result is the
// steady-state response rather than a causally started wave.
func (g *Generator) OddHarmonicSquare(freqHz, amplitude float64, harmonics int, delay, gain float64, samples int) ([]float64, error) {
	if err := g.check("square", samples); err != nil {
		return nil, err
	}
	if harmonics <= 0 {
		return nil, fmt.Errorf("square harmonics must be > 0: %d", harmonics)
	}

	out := make([]float64, samples)
	dt := g.cfg.SampleInterval()
	for n := range harmonics {
		k := float64(2*n + 1)
		coeff := gain * 4 * amplitude / (math.Pi * k)
		w := 2 * math.Pi * k * freqHz
		phi := w * delay
		for i := range out {
			out[i] += coeff * math.Sin(w*(float64(i)*dt)-phi)
		}
	}
	return out, nil
}

// Add returns the sample-wise sum of a and b.
func Add(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("add length mismatch: %d != %d", len(a), len(b))
	}
	out := make([]float64, len(a))
	floats.AddTo(out, a, b)
	return out, nil
}

func (g *Generator) check(what string, samples int) error {
	if samples <= 0 {
		return fmt.Errorf("%s samples must be > 0: %d", what, samples)
	}
	if g.cfg.SampleRate <= 0 {
		return fmt.Errorf("%s sample rate must be > 0: %f", what, g.cfg.SampleRate)
	}
	return nil
}
