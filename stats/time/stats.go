package time

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/linewave/dsp/core"
)

// Stats holds time-domain waveform statistics.
//
//nolint:revive
type Stats struct {
	Length         int
	DC             float64 // mean
	RMS            float64
	Max            float64
	MaxPos         int
	Min            float64
	MinPos         int
	Peak           float64 // max(|max|, |min|)
	PeakToPeak     float64 // max - min
	CrestFactor    float64 // peak / RMS (linear)
	CrestFactor_dB float64
	ZeroCrossings  int
}

// Calculate computes the statistics of signal. An empty signal yields a
// zero Stats with -Inf crest factor in dB.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return Stats{CrestFactor_dB: math.Inf(-1)}
	}

	maxPos := floats.MaxIdx(signal)
	minPos := floats.MinIdx(signal)
	maxV, minV := signal[maxPos], signal[minPos]

	s := Stats{
		Length:        n,
		DC:            DC(signal),
		RMS:           RMS(signal),
		Max:           maxV,
		MaxPos:        maxPos,
		Min:           minV,
		MinPos:        minPos,
		Peak:          math.Max(math.Abs(maxV), math.Abs(minV)),
		PeakToPeak:    maxV - minV,
		ZeroCrossings: ZeroCrossings(signal),
	}
	if s.RMS > 0 {
		s.CrestFactor = s.Peak / s.RMS
	}
	s.CrestFactor_dB = core.LinearToDB(s.CrestFactor)
	return s
}

// RMS returns the root-mean-square of the signal.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	return math.Sqrt(floats.Dot(signal, signal) / float64(len(signal)))
}

// DC returns the mean (DC offset) of the signal.
func DC(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	// Kahan summation keeps the mean of long, nearly balanced signals exact.
	var sum, c float64
	for _, x := range signal {
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum / float64(len(signal))
}

// ZeroCrossings returns the number of zero crossings in the signal.
// A crossing is counted when consecutive samples have opposite signs.
func ZeroCrossings(signal []float64) int {
	if len(signal) < 2 {
		return 0
	}

	var count int
	for i := 1; i < len(signal); i++ {
		if signal[i-1]*signal[i] < 0 {
			count++
		}
	}

	return count
}
