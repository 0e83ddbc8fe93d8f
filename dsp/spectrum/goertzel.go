package spectrum

import (
	"fmt"
	"math"
)

// Goertzel evaluates one DFT term of a sample stream.
//
// For N samples and a target frequency on bin k = f*N/fs, Magnitude equals
// |X[k]| of an N-point DFT of the same samples. Off-bin targets give the
// magnitude of the DTFT at that frequency.
type Goertzel struct {
	coeff  float64
	s0, s1 float64
}

// NewGoertzel creates an analyzer for frequency, which must lie in
// [0, sampleRate/2].
func NewGoertzel(frequency, sampleRate float64) (*Goertzel, error) {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("goertzel: sample rate must be > 0: %v", sampleRate)
	}
	if !(frequency >= 0 && frequency <= sampleRate/2) {
		return nil, fmt.Errorf("goertzel: frequency %v outside [0, %v]", frequency, sampleRate/2)
	}
	return &Goertzel{coeff: 2 * math.Cos(2*math.Pi*frequency/sampleRate)}, nil
}

// Reset clears the accumulated state.
func (g *Goertzel) Reset() {
	g.s0, g.s1 = 0, 0
}

// Process feeds samples into the recursion.
func (g *Goertzel) Process(input []float64) {
	s0, s1, c := g.s0, g.s1, g.coeff
	for _, x := range input {
		s0, s1 = x+c*s0-s1, s0
	}
	g.s0, g.s1 = s0, s1
}

// Magnitude returns the magnitude of the tracked component.
func (g *Goertzel) Magnitude() float64 {
	p := g.s0*g.s0 + g.s1*g.s1 - g.coeff*g.s0*g.s1
	if p <= 0 {
		return 0
	}
	return math.Sqrt(p)
}

// Bank runs several Goertzel analyzers over the same samples.
type Bank struct {
	analyzers []*Goertzel
}

// NewBank creates one analyzer per frequency.
func NewBank(frequencies []float64, sampleRate float64) (*Bank, error) {
	b := &Bank{analyzers: make([]*Goertzel, len(frequencies))}
	for i, f := range frequencies {
		g, err := NewGoertzel(f, sampleRate)
		if err != nil {
			return nil, err
		}
		b.analyzers[i] = g
	}
	return b, nil
}

// Process feeds the same samples to every analyzer.
func (b *Bank) Process(input []float64) {
	for _, g := range b.analyzers {
		g.Process(input)
	}
}

// Magnitudes returns one magnitude per frequency, in construction order.
func (b *Bank) Magnitudes() []float64 {
	out := make([]float64, len(b.analyzers))
	for i, g := range b.analyzers {
		out[i] = g.Magnitude()
	}
	return out
}
