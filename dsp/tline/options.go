package tline

import (
	"github.com/cwbudde/linewave/dsp/core"
	"github.com/cwbudde/linewave/dsp/spectrum"
	"github.com/cwbudde/linewave/dsp/window"
)

// Option adjusts a synthesis run. The defaults reproduce the fixed model
// constants; options exist for analysis and tests.
type Option func(*config)

type config struct {
	amplitude  float64
	velocity   float64
	reflection float64
	harmonics  int
	window     window.Type
	backend    spectrum.Backend
}

func defaultConfig() config {
	return config{
		amplitude:  Amplitude,
		velocity:   Velocity,
		reflection: ReflectionCoefficient,
		harmonics:  Harmonics,
		window:     window.TypeRectangular,
		backend:    spectrum.BackendAuto,
	}
}

// WithReflection sets the reflection coefficient Γ. Non-finite values are ignored.
func WithReflection(gamma float64) Option {
	return func(c *config) {
		if core.IsFinite(gamma) {
			c.reflection = gamma
		}
	}
}

// WithHarmonics sets the number of odd harmonics. Values <= 0 are ignored.
func WithHarmonics(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.harmonics = n
		}
	}
}

// WithAmplitude sets the logic amplitude V0. Non-finite values are ignored.
func WithAmplitude(v0 float64) Option {
	return func(c *config) {
		if core.IsFinite(v0) {
			c.amplitude = v0
		}
	}
}

// WithVelocity sets the propagation velocity in m/s. Values <= 0 are ignored.
func WithVelocity(v float64) Option {
	return func(c *config) {
		if v > 0 && core.IsFinite(v) {
			c.velocity = v
		}
	}
}

// WithWindow applies an analysis window before the DFT.
func WithWindow(t window.Type) Option {
	return func(c *config) {
		c.window = t
	}
}

// WithBackend selects the DFT backend.
func WithBackend(b spectrum.Backend) Option {
	return func(c *config) {
		c.backend = b
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
