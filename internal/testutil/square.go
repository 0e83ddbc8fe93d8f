package testutil

import "math"

// SquareSeriesAt evaluates the truncated odd-harmonic square-wave series at a
// single instant by direct summation. Tests use it as a closed-form reference.
func SquareSeriesAt(f0, amplitude float64, harmonics int, t float64) float64 {
	sum := 0.0
	for n := 0; n < harmonics; n++ {
		k := float64(2*n + 1)
		sum += 4 * amplitude / (math.Pi * k) * math.Sin(2*math.Pi*k*f0*t)
	}
	return sum
}
