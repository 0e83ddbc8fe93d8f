package tline

import (
	"errors"
	"fmt"

	"github.com/cwbudde/linewave/dsp/core"
)

const (
	// Amplitude is the logic-level amplitude V0 of the driven square wave.
	Amplitude = 1.0
	// Velocity is the propagation velocity on the line in m/s.
	Velocity = 2e8
	// ReflectionCoefficient is Γ at the far end; 1 models an open circuit.
	ReflectionCoefficient = 1.0
	// Harmonics is the number of odd harmonics summed.
	Harmonics = 5
	// Periods is the number of clock periods sampled.
	Periods = 10
	// SamplesPerPeriod sets dt = T/SamplesPerPeriod.
	SamplesPerPeriod = 1000
)

var (
	// ErrInvalidFrequency is returned when f0 is not a finite positive number.
	ErrInvalidFrequency = errors.New("tline: frequency must be finite and > 0")
	// ErrInvalidLength is returned when the line length is NaN or infinite.
	ErrInvalidLength = errors.New("tline: line length must be finite")
)

// Params are the inputs of one synthesis run.
type Params struct {
	// F0 is the clock frequency in Hz.
	F0 float64
	// Length is the line length in metres. Values <= 0 select the automatic
	// length, see [EffectiveLength].
	Length float64
}

// Validate checks that the parameters can be used in arithmetic.
func (p Params) Validate() error {
	if !core.IsFinite(p.F0) || p.F0 <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidFrequency, p.F0)
	}
	if !core.IsFinite(p.Length) {
		return fmt.Errorf("%w: %v", ErrInvalidLength, p.Length)
	}
	return nil
}

// Period returns T = 1/F0.
func (p Params) Period() float64 {
	return 1 / p.F0
}

// EffectiveLength returns length unchanged when it is positive and otherwise
// v/(6*f0), the automatic length that favours the third harmonic.
func EffectiveLength(f0, length, velocity float64) float64 {
	if length <= 0 {
		return velocity / (6 * f0)
	}
	return length
}

// RoundTripDelay returns τ = 2L/v.
func RoundTripDelay(length, velocity float64) float64 {
	return 2 * length / velocity
}
