package tline

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/linewave/dsp/spectrum"
	"github.com/cwbudde/linewave/dsp/window"
	"github.com/cwbudde/linewave/internal/testutil"
)

func TestSynthesizeTimebase(t *testing.T) {
	res, err := Synthesize(Params{F0: 1e6, Length: 0.25})
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}

	ts := res.Time
	if ts.Len() != 10000 {
		t.Fatalf("samples = %d, want 10000", ts.Len())
	}
	for _, s := range [][]float64{ts.Forward, ts.Reflected, ts.Voltage} {
		if len(s) != ts.Len() {
			t.Fatalf("component length %d, want %d", len(s), ts.Len())
		}
	}
	testutil.RequireStrictlyIncreasing(t, ts.Time)

	wantDT := 1 / (1000 * 1e6)
	if math.Abs(res.SampleInterval-wantDT) > 1e-24 {
		t.Fatalf("dt = %v, want %v", res.SampleInterval, wantDT)
	}
	for i := 1; i < ts.Len(); i++ {
		if d := ts.Time[i] - ts.Time[i-1]; math.Abs(d-wantDT) > 1e-18 {
			t.Fatalf("spacing at %d = %v, want %v", i, d, wantDT)
		}
	}
	if last := ts.Time[ts.Len()-1]; last >= 10e-6 {
		t.Fatalf("last sample %v not below 10*T", last)
	}
}

func TestSynthesizeForwardWave(t *testing.T) {
	res, err := Synthesize(Params{F0: 1e6, Length: 0.25})
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}

	if res.Time.Forward[0] != 0 {
		t.Fatalf("forward(0) = %v, want 0", res.Time.Forward[0])
	}

	// Sample 125 is t = 1.25e-7 s.
	want := testutil.SquareSeriesAt(1e6, Amplitude, Harmonics, 1.25e-7)
	if got := res.Time.Forward[125]; math.Abs(got-want) > 1e-9 {
		t.Fatalf("forward(1.25e-7) = %v, want %v", got, want)
	}
}

func TestSynthesizeNoReflection(t *testing.T) {
	res, err := Synthesize(Params{F0: 1e6, Length: 0.3}, WithReflection(0))
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	zero := make([]float64, res.Time.Len())
	testutil.RequireSliceNearlyEqual(t, res.Time.Reflected, zero, 0)
	testutil.RequireSliceNearlyEqual(t, res.Time.Voltage, res.Time.Forward, 0)
}

func TestSynthesizeZeroDelayReflection(t *testing.T) {
	// A vanishing length gives τ ≈ 0, so the reflection is Γ times the forward wave.
	res, err := Synthesize(Params{F0: 1e6, Length: 1e-20}, WithReflection(-1))
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	want := make([]float64, res.Time.Len())
	for i, v := range res.Time.Forward {
		want[i] = -v
	}
	testutil.RequireSliceNearlyEqual(t, res.Time.Reflected, want, 1e-12)
}

func TestSynthesizeAutoLength(t *testing.T) {
	res, err := Synthesize(Params{F0: 300e6, Length: 0})
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}

	wantL := 2e8 / (6 * 3e8)
	if math.Abs(res.Params.Length-wantL) > 1e-15 {
		t.Fatalf("effective length = %v, want %v", res.Params.Length, wantL)
	}
	if math.Abs(res.Delay-2*wantL/2e8) > 1e-24 {
		t.Fatalf("delay = %v, want %v", res.Delay, 2*wantL/2e8)
	}
	if got := TimeTitle(res.Params); got != "GPIO waveform with reflections (f0=300.0 MHz, L=11.11 cm)" {
		t.Fatalf("title = %q", got)
	}
	if res.SpectrumLimit() != 3e9 {
		t.Fatalf("spectrum limit = %v, want 3e9", res.SpectrumLimit())
	}
}

func TestSynthesizeSpectrum(t *testing.T) {
	const f0 = 1e6
	res, err := Synthesize(Params{F0: f0})
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}

	sp := res.Spectrum
	n := res.Time.Len()
	if sp.Len() != (n-1)/2 || len(sp.Magnitude) != sp.Len() {
		t.Fatalf("spectrum bins = %d/%d, want %d", sp.Len(), len(sp.Magnitude), (n-1)/2)
	}
	testutil.RequireStrictlyIncreasing(t, sp.Freq)
	testutil.RequireFinite(t, sp.Magnitude)

	// Ten periods give a bin spacing of f0/10, so harmonic k is kept index 10k-1.
	// The automatic length makes τ = T/3, and the open-end reflection scales
	// harmonic k by |1 + exp(-j*2*pi*k/3)| = 2|cos(pi*k/3)|.
	for _, k := range []int{1, 3, 5, 7, 9} {
		i := 10*k - 1
		if math.Abs(sp.Freq[i]-float64(k)*f0) > 1e-6 {
			t.Fatalf("freq[%d] = %v, want %v", i, sp.Freq[i], float64(k)*f0)
		}
		gain := 2 * math.Abs(math.Cos(math.Pi*float64(k)/3))
		want := float64(n) / 2 * 4 * Amplitude / (math.Pi * float64(k)) * gain
		if math.Abs(sp.Magnitude[i]-want) > 1e-6*want {
			t.Fatalf("|X| at harmonic %d = %v, want %v", k, sp.Magnitude[i], want)
		}
	}

	// Even harmonics and off-harmonic bins stay empty.
	for _, i := range []int{19, 14, 200} {
		if sp.Magnitude[i] > 1e-6 {
			t.Fatalf("|X| at %v Hz = %v, want ~0", sp.Freq[i], sp.Magnitude[i])
		}
	}
}

func TestSynthesizeBackendsAgree(t *testing.T) {
	if testing.Short() {
		t.Skip("direct 10000-point DFT")
	}

	p := Params{F0: 305e6, Length: 0.25}
	ref, err := Synthesize(p, WithBackend(spectrum.BackendDirect))
	if err != nil {
		t.Fatalf("direct: %v", err)
	}

	for _, b := range []spectrum.Backend{spectrum.BackendAuto, spectrum.BackendGoDSP} {
		t.Run(b.String(), func(t *testing.T) {
			got, err := Synthesize(p, WithBackend(b))
			if err != nil {
				t.Fatalf("Synthesize() error = %v", err)
			}
			testutil.RequireSliceNearlyEqual(t, got.Spectrum.Magnitude, ref.Spectrum.Magnitude, 1e-4)
		})
	}
}

func TestSynthesizeAlgoFFTRejectsWaveformLength(t *testing.T) {
	_, err := Synthesize(Params{F0: 1e6}, WithBackend(spectrum.BackendAlgoFFT))
	if !errors.Is(err, spectrum.ErrUnsupportedSize) {
		t.Fatalf("err = %v, want ErrUnsupportedSize", err)
	}
}

func TestSynthesizeWindow(t *testing.T) {
	res, err := Synthesize(Params{F0: 1e6}, WithWindow(window.TypeHann), WithHarmonics(1), WithReflection(0))
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	if res.Window != window.TypeHann || res.Harmonics != 1 {
		t.Fatalf("result metadata = %v/%d", res.Window, res.Harmonics)
	}
	if math.Abs(res.Spectrum.CoherentGain-0.5) > 1e-12 {
		t.Fatalf("coherent gain = %v, want 0.5", res.Spectrum.CoherentGain)
	}
	if len(res.Time.Windowed) != res.Time.Len() || res.Time.Windowed[0] != 0 {
		t.Fatalf("windowed series not tapered: len %d, first %v", len(res.Time.Windowed), res.Time.Windowed[0])
	}

	// The periodic Hann frame spans whole periods, so the tone keeps exactly
	// half its amplitude in its own bin.
	want := 5000 * 4 / math.Pi * 0.5
	if got := res.Spectrum.Magnitude[9]; math.Abs(got-want) > 1e-6*want {
		t.Fatalf("|X| at f0 = %v, want %v", got, want)
	}
}

func TestSynthesizeRectangularPassThrough(t *testing.T) {
	res, err := Synthesize(Params{F0: 2e6, Length: 0.1})
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	if res.Spectrum.CoherentGain != 1 {
		t.Fatalf("coherent gain = %v, want 1", res.Spectrum.CoherentGain)
	}
	testutil.RequireSliceNearlyEqual(t, res.Time.Windowed, res.Time.Voltage, 0)
}

func TestSynthesizeInvalid(t *testing.T) {
	if _, err := Synthesize(Params{F0: 0, Length: 1}); !errors.Is(err, ErrInvalidFrequency) {
		t.Fatalf("err = %v, want ErrInvalidFrequency", err)
	}
	if _, err := Synthesize(Params{F0: 1e6, Length: math.NaN()}); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("err = %v, want ErrInvalidLength", err)
	}
}

func TestOptionsIgnoreInvalid(t *testing.T) {
	cfg := applyOptions([]Option{
		WithHarmonics(0),
		WithVelocity(-1),
		WithReflection(math.NaN()),
		WithAmplitude(math.Inf(1)),
		nil,
	})
	if cfg != defaultConfig() {
		t.Fatalf("cfg = %+v, want defaults", cfg)
	}
}
