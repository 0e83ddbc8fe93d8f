package tline

import (
	"fmt"
	"strconv"
	"strings"
)

// SpectrumTitle is the heading of the spectrum chart.
const SpectrumTitle = "Spectrum of GPIO pin signal with reflections"

// spectrumSpan is the displayed spectrum range in multiples of f0.
const spectrumSpan = 10

// TimeTitle returns the heading of the waveform chart for the effective
// parameters, e.g. "GPIO waveform with reflections (f0=300.0 MHz, L=11.11 cm)".
func TimeTitle(p Params) string {
	return fmt.Sprintf("GPIO waveform with reflections (f0=%s MHz, L=%.2f cm)",
		formatDecimal(p.F0/1e6), p.Length*100)
}

// SpectrumLimit returns the upper end of the displayed spectrum range, 10*f0 Hz.
func (r *Result) SpectrumLimit() float64 {
	return spectrumSpan * r.Params.F0
}

// formatDecimal prints the shortest exact representation, keeping at least
// one fractional digit so whole values read as "300.0".
func formatDecimal(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}
