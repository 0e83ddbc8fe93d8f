// Package clock plans the general-purpose clock that drives the GPIO pin.
//
// The clock is a fixed 500 MHz PLL divided by an integer. The pin is aimed at
// a target frequency through the third harmonic of the divided square wave, so
// the divider runs at a third of the target.
package clock

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/linewave/dsp/core"
)

const (
	// PLLFrequency is the clock source in Hz.
	PLLFrequency = 500e6
	// Harmonic is the odd harmonic of the divided clock placed on the target.
	Harmonic = 3
	// MinDivisor and MaxDivisor bound the integer divider.
	MinDivisor = 2
	MaxDivisor = 4095
)

var (
	// ErrInvalidTarget is returned for a non-finite or non-positive target.
	ErrInvalidTarget = errors.New("clock: target frequency must be finite and > 0")
	// ErrDivisorRange is returned when the target needs a divider outside
	// [MinDivisor, MaxDivisor].
	ErrDivisorRange = errors.New("clock: divisor out of range")
)

// Plan is the divider setting for a target frequency.
type Plan struct {
	Target   float64 // requested frequency, Hz
	Base     float64 // Target / Harmonic, Hz
	Harmonic int
	Divisor  int
	// Output is PLLFrequency / Divisor, the square-wave frequency the clock
	// actually produces. The divider truncates, so Output >= Base.
	Output float64
}

// New derives the divider for target.
func New(target float64) (Plan, error) {
	if !core.IsFinite(target) || target <= 0 {
		return Plan{}, fmt.Errorf("%w: %v", ErrInvalidTarget, target)
	}

	base := target / Harmonic
	div := math.Floor(PLLFrequency / base)
	if div < MinDivisor || div > MaxDivisor {
		return Plan{}, fmt.Errorf("%w: %.0f not in %d-%d for target %v Hz",
			ErrDivisorRange, div, MinDivisor, MaxDivisor, target)
	}

	return Plan{
		Target:   target,
		Base:     base,
		Harmonic: Harmonic,
		Divisor:  int(div),
		Output:   PLLFrequency / div,
	}, nil
}

// Radiated returns the frequency of the planned harmonic of Output.
func (p Plan) Radiated() float64 {
	return float64(p.Harmonic) * p.Output
}

// Exact reports whether the divider lands the harmonic on the target.
func (p Plan) Exact() bool {
	return core.NearlyEqual(p.Radiated(), p.Target, 1e-9)
}

// String formats the plan in MHz.
func (p Plan) String() string {
	return fmt.Sprintf("target=%.2f MHz  base=%.2f MHz  harmonic=%d  divisor=%d",
		p.Target/1e6, p.Base/1e6, p.Harmonic, p.Divisor)
}
