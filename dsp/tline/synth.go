package tline

import (
	"fmt"

	"github.com/cwbudde/linewave/dsp/core"
	"github.com/cwbudde/linewave/dsp/signal"
	"github.com/cwbudde/linewave/dsp/spectrum"
	"github.com/cwbudde/linewave/dsp/window"
)

// TimeSeries holds the sampled waveform. All slices share one length.
type TimeSeries struct {
	Time      []float64 // seconds
	Forward   []float64
	Reflected []float64
	Voltage   []float64 // Forward + Reflected
	// Windowed is Voltage times the periodic analysis window, the exact
	// input of the DFT.
	Windowed []float64
}

// Len returns the sample count.
func (ts TimeSeries) Len() int { return len(ts.Time) }

// SpectrumSeries holds the strictly positive-frequency part of the spectrum.
type SpectrumSeries struct {
	Freq      []float64 // Hz
	Magnitude []float64
	// CoherentGain is the mean of the analysis window, 1 for rectangular.
	CoherentGain float64
}

// Len returns the bin count.
func (s SpectrumSeries) Len() int { return len(s.Freq) }

// Result is the output of [Synthesize].
type Result struct {
	// Params carries the effective length, never the automatic placeholder.
	Params         Params
	Delay          float64
	SampleInterval float64
	Reflection     float64
	Harmonics      int
	Window         window.Type
	Time           TimeSeries
	Spectrum       SpectrumSeries
}

// Synthesize computes the forward, reflected and total waveform for p and the
// magnitude spectrum of the total.
func Synthesize(p Params, opts ...Option) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	cfg := applyOptions(opts)

	p.Length = EffectiveLength(p.F0, p.Length, cfg.velocity)
	tau := RoundTripDelay(p.Length, cfg.velocity)

	gen := signal.NewGenerator(core.WithSampleRate(SamplesPerPeriod * p.F0))
	n := Periods * SamplesPerPeriod

	t, err := gen.Timebase(n)
	if err != nil {
		return nil, fmt.Errorf("tline: timebase: %w", err)
	}
	fwd, err := gen.OddHarmonicSquare(p.F0, cfg.amplitude, cfg.harmonics, 0, 1, n)
	if err != nil {
		return nil, fmt.Errorf("tline: forward wave: %w", err)
	}
	refl, err := gen.OddHarmonicSquare(p.F0, cfg.amplitude, cfg.harmonics, tau, cfg.reflection, n)
	if err != nil {
		return nil, fmt.Errorf("tline: reflected wave: %w", err)
	}
	total, err := signal.Add(fwd, refl)
	if err != nil {
		return nil, fmt.Errorf("tline: total wave: %w", err)
	}

	dt := gen.Config().SampleInterval()
	windowed, spec, err := magnitudeSpectrum(total, dt, cfg)
	if err != nil {
		return nil, err
	}

	return &Result{
		Params:         p,
		Delay:          tau,
		SampleInterval: dt,
		Reflection:     cfg.reflection,
		Harmonics:      cfg.harmonics,
		Window:         cfg.window,
		Time: TimeSeries{
			Time:      t,
			Forward:   fwd,
			Reflected: refl,
			Voltage:   total,
			Windowed:  windowed,
		},
		Spectrum: spec,
	}, nil
}

func magnitudeSpectrum(x []float64, dt float64, cfg config) ([]float64, SpectrumSeries, error) {
	// The frame holds whole periods, so the window takes its periodic form.
	cg, err := window.CoherentGain(window.Generate(cfg.window, len(x), window.WithPeriodic()))
	if err != nil {
		return nil, SpectrumSeries{}, fmt.Errorf("tline: window: %w", err)
	}
	windowed := window.Apply(cfg.window, x, window.WithPeriodic())

	bins, err := spectrum.Transform(windowed, cfg.backend)
	if err != nil {
		return nil, SpectrumSeries{}, fmt.Errorf("tline: spectrum: %w", err)
	}
	freq, mag, err := spectrum.PositiveBins(spectrum.BinFrequencies(len(x), dt), bins)
	if err != nil {
		return nil, SpectrumSeries{}, fmt.Errorf("tline: spectrum: %w", err)
	}
	return windowed, SpectrumSeries{Freq: freq, Magnitude: mag, CoherentGain: cg}, nil
}
