package spectrum

import (
	"errors"
	"fmt"
	"math"
	"strings"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/mjibson/go-dsp/fft"
)

// Backend selects the DFT implementation used by [Transform].
type Backend int

const (
	// BackendAuto uses algo-fft for power-of-two lengths and go-dsp for
	// everything else, including the 10000-point waveform.
	BackendAuto Backend = iota
	// BackendAlgoFFT is restricted to power-of-two lengths. algo-fft plans
	// mixed-radix sizes such as 1000 or 10000 but returns wrong bins for them.
	BackendAlgoFFT
	BackendGoDSP
	// BackendDirect evaluates the DFT sum directly in O(N^2). It serves as a
	// reference for the fast backends.
	BackendDirect
)

var (
	// ErrEmptyInput is returned when there is nothing to transform.
	ErrEmptyInput = errors.New("spectrum: input must not be empty")
	// ErrLengthMismatch is returned when paired slices differ in length.
	ErrLengthMismatch = errors.New("spectrum: length mismatch")
	// ErrUnknownBackend is returned for an unrecognised backend name or value.
	ErrUnknownBackend = errors.New("spectrum: unknown backend")
	// ErrUnsupportedSize is returned when a backend cannot transform the length.
	ErrUnsupportedSize = errors.New("spectrum: unsupported transform size")
)

var backendNames = []string{"auto", "algofft", "godsp", "direct"}

// String returns the backend name accepted by [ParseBackend].
func (b Backend) String() string {
	if b >= 0 && int(b) < len(backendNames) {
		return backendNames[b]
	}
	return fmt.Sprintf("backend(%d)", int(b))
}

// ParseBackend resolves a backend name.
func ParseBackend(name string) (Backend, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range backendNames {
		if n == name {
			return Backend(i), nil
		}
	}
	return BackendAuto, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
}

// Transform returns the full complex DFT X[k] = sum x[n] exp(-2*pi*i*k*n/N)
// of a real signal, unnormalized, for k = 0..N-1.
func Transform(x []float64, backend Backend) ([]complex128, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}

	switch backend {
	case BackendAuto:
		if isPowerOfTwo(len(x)) {
			if out, err := transformAlgoFFT(x); err == nil {
				return out, nil
			}
		}
		return fft.FFTReal(x), nil
	case BackendAlgoFFT:
		return transformAlgoFFT(x)
	case BackendGoDSP:
		return fft.FFTReal(x), nil
	case BackendDirect:
		return transformDirect(x), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownBackend, int(backend))
	}
}

func transformAlgoFFT(x []float64) ([]complex128, error) {
	if !isPowerOfTwo(len(x)) {
		return nil, fmt.Errorf("%w: algofft needs a power of two, got %d", ErrUnsupportedSize, len(x))
	}

	plan, err := algofft.NewPlan64(len(x))
	if err != nil {
		return nil, fmt.Errorf("spectrum: fft plan for %d points: %w", len(x), err)
	}

	in := make([]complex128, len(x))
	for i, v := range x {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, len(x))
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("spectrum: fft forward: %w", err)
	}
	return out, nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

func transformDirect(x []float64) []complex128 {
	n := len(x)
	out := make([]complex128, n)
	for k := range out {
		var re, im float64
		for i, v := range x {
			// Reduce k*i mod n first so the angle stays small and exact.
			angle := -2 * math.Pi * float64((k*i)%n) / float64(n)
			s, c := math.Sincos(angle)
			re += v * c
			im += v * s
		}
		out[k] = complex(re, im)
	}
	return out
}

// BinFrequencies returns the centre frequency of each DFT bin for n samples
// spaced dt seconds apart, in the conventional fftfreq order:
// 0, 1, ..., ceil(n/2)-1, -floor(n/2), ..., -1 times 1/(n*dt).
func BinFrequencies(n int, dt float64) []float64 {
	if n <= 0 {
		return nil
	}

	val := 1 / (float64(n) * dt)
	out := make([]float64, n)
	pos := (n-1)/2 + 1
	for i := range pos {
		out[i] = float64(i) * val
	}
	for i := pos; i < n; i++ {
		out[i] = float64(i-n) * val
	}
	return out
}

// PositiveBins keeps the bins whose frequency is strictly positive and
// returns those frequencies with the matching magnitudes |X[k]|.
func PositiveBins(freqs []float64, bins []complex128) ([]float64, []float64, error) {
	if len(freqs) != len(bins) {
		return nil, nil, fmt.Errorf("%w: %d freqs, %d bins", ErrLengthMismatch, len(freqs), len(bins))
	}

	keptFreq := make([]float64, 0, len(freqs)/2)
	keptBins := make([]complex128, 0, len(freqs)/2)
	for i, f := range freqs {
		if f > 0 {
			keptFreq = append(keptFreq, f)
			keptBins = append(keptBins, bins[i])
		}
	}
	return keptFreq, Magnitude(keptBins), nil
}
