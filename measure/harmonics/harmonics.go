// Package harmonics measures the odd-harmonic content of a clock waveform and
// predicts how a line reflection reshapes it.
package harmonics

import (
	"math"
	"math/cmplx"
	"sort"

	"github.com/cwbudde/linewave/dsp/core"
	"github.com/cwbudde/linewave/dsp/spectrum"
)

const defaultMaxHarmonic = 9

// Config holds harmonic analysis parameters.
type Config struct {
	FundamentalFreq float64
	// MaxHarmonic is the highest harmonic order examined. Zero selects 9.
	MaxHarmonic int
	// RangeUpperFreq drops harmonics above this frequency. Zero keeps all
	// harmonics present in the spectrum.
	RangeUpperFreq float64
	// Samples is the DFT length behind the spectrum. With it set, each
	// harmonic also reports its time-domain peak amplitude.
	Samples int
	// CoherentGain is the mean of the analysis window. Zero means 1
	// (rectangular).
	CoherentGain float64
}

// Harmonic is the measured level of one odd harmonic.
type Harmonic struct {
	Order   int
	Freq    float64 // centre frequency of the nearest bin, Hz
	Bin     int     // index into the analysed spectrum
	Level   float64 // linear magnitude
	LevelDB float64 // relative to the fundamental
	// Amplitude is 2*Level/(Samples*CoherentGain), the sine amplitude that
	// produces Level. Zero when Config.Samples is unset.
	Amplitude float64
}

// Result holds the harmonic measurement.
//
//nolint:revive
type Result struct {
	FundamentalFreq  float64
	FundamentalLevel float64
	Harmonics        []Harmonic
	// OddHD is sqrt(sum of squared levels of the odd harmonics above the
	// fundamental) divided by the fundamental level.
	OddHD    float64
	OddHD_dB float64
}

// Calculator extracts odd-harmonic levels from a one-sided magnitude spectrum.
type Calculator struct {
	cfg Config
}

// NewCalculator creates a harmonic calculator.
func NewCalculator(cfg Config) *Calculator {
	if cfg.MaxHarmonic <= 0 {
		cfg.MaxHarmonic = defaultMaxHarmonic
	}
	if cfg.RangeUpperFreq < 0 {
		cfg.RangeUpperFreq = 0
	}
	if cfg.CoherentGain <= 0 {
		cfg.CoherentGain = 1
	}
	return &Calculator{cfg: cfg}
}

// Analyze is a one-shot harmonic analysis of a magnitude spectrum.
func Analyze(freq, mag []float64, cfg Config) Result {
	return NewCalculator(cfg).Calculate(freq, mag)
}

// Calculate measures odd harmonics 1, 3, 5, ... of the configured fundamental.
// freq must be strictly increasing and the same length as mag.
func (c *Calculator) Calculate(freq, mag []float64) Result {
	f0 := c.cfg.FundamentalFreq
	if len(freq) == 0 || len(freq) != len(mag) || f0 <= 0 {
		return Result{}
	}

	res := Result{
		FundamentalFreq: f0,
		Harmonics:       make([]Harmonic, 0, (c.cfg.MaxHarmonic+1)/2),
	}

	for k := 1; k <= c.cfg.MaxHarmonic; k += 2 {
		target := float64(k) * f0
		if c.cfg.RangeUpperFreq > 0 && target > c.cfg.RangeUpperFreq {
			break
		}
		if target > freq[len(freq)-1] {
			break
		}

		bin := nearestBin(freq, target)
		res.Harmonics = append(res.Harmonics, Harmonic{
			Order: k,
			Freq:  freq[bin],
			Bin:   bin,
			Level: mag[bin],
		})
	}
	if len(res.Harmonics) == 0 {
		return Result{}
	}

	res.FundamentalLevel = res.Harmonics[0].Level
	sumSq := 0.0
	for i := range res.Harmonics {
		h := &res.Harmonics[i]
		h.LevelDB = core.RatioToDB(h.Level, res.FundamentalLevel)
		if c.cfg.Samples > 0 {
			h.Amplitude = 2 * h.Level / (float64(c.cfg.Samples) * c.cfg.CoherentGain)
		}
		if h.Order > 1 {
			sumSq += h.Level * h.Level
		}
	}
	if res.FundamentalLevel > 0 {
		res.OddHD = math.Sqrt(sumSq) / res.FundamentalLevel
	}
	res.OddHD_dB = core.LinearToDB(res.OddHD)
	return res
}

// Tones measures the odd-harmonic magnitudes of a time-domain signal directly
// with Goertzel filters, without a full transform. The result is indexed by
// (order-1)/2 and matches |X[k]| of a DFT when every harmonic falls on a bin.
func Tones(signal []float64, sampleRate, f0 float64, maxHarmonic int) ([]float64, error) {
	if maxHarmonic <= 0 {
		maxHarmonic = defaultMaxHarmonic
	}
	freqs := make([]float64, 0, (maxHarmonic+1)/2)
	for k := 1; k <= maxHarmonic; k += 2 {
		freqs = append(freqs, float64(k)*f0)
	}

	bank, err := spectrum.NewBank(freqs, sampleRate)
	if err != nil {
		return nil, err
	}
	bank.Process(signal)
	return bank.Magnitudes(), nil
}

// ReflectionGain returns |1 + Γ exp(-j 2π k f0 τ)|, the factor by which a
// reflection delayed by τ scales harmonic k of the driven wave.
func ReflectionGain(k int, f0, tau, gamma float64) float64 {
	phi := 2 * math.Pi * float64(k) * f0 * tau
	return cmplx.Abs(1 + complex(gamma, 0)*cmplx.Exp(complex(0, -phi)))
}

func nearestBin(freq []float64, target float64) int {
	i := sort.SearchFloat64s(freq, target)
	if i >= len(freq) {
		return len(freq) - 1
	}
	if i > 0 && target-freq[i-1] < freq[i]-target {
		return i - 1
	}
	return i
}
