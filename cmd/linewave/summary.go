package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/cwbudde/linewave/dsp/clock"
	"github.com/cwbudde/linewave/dsp/tline"
	"github.com/cwbudde/linewave/measure/harmonics"
	tstats "github.com/cwbudde/linewave/stats/time"
)

func printSummary(w io.Writer, res *tline.Result, plan *clock.Plan, autoLength bool, written []string) error {
	head := color.New(color.FgCyan, color.Bold)
	p := res.Params

	lengthNote := ""
	if autoLength {
		lengthNote = " (auto)"
	}
	if _, err := head.Fprintln(w, tline.TimeTitle(p)); err != nil {
		return err
	}
	if plan != nil {
		note := ""
		if !plan.Exact() {
			note = " (off target)"
		}
		if _, err := fmt.Fprintf(w, "clock: %s  f0=%.4f MHz  radiated=%.4f MHz%s\n",
			plan, plan.Output/1e6, plan.Radiated()/1e6, note); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "line: L=%.4f m%s  tau=%.4f ns  gamma=%g  harmonics=%d  window=%s\n",
		p.Length, lengthNote, res.Delay*1e9, res.Reflection, res.Harmonics, res.Window); err != nil {
		return err
	}

	st := tstats.Calculate(res.Time.Voltage)
	if _, err := fmt.Fprintf(w, "waveform: peak=%.4f  p-p=%.4f  rms=%.4f  crest=%.2f dB  zero-crossings=%d\n\n",
		st.Peak, st.PeakToPeak, st.RMS, st.CrestFactor_dB, st.ZeroCrossings); err != nil {
		return err
	}

	h := harmonics.Analyze(res.Spectrum.Freq, res.Spectrum.Magnitude, harmonics.Config{
		FundamentalFreq: p.F0,
		MaxHarmonic:     2*res.Harmonics - 1,
		RangeUpperFreq:  res.SpectrumLimit(),
		Samples:         res.Time.Len(),
		CoherentGain:    res.Spectrum.CoherentGain,
	})
	tones, err := harmonics.Tones(res.Time.Windowed, 1/res.SampleInterval, p.F0, 2*res.Harmonics-1)
	if err != nil {
		return fmt.Errorf("goertzel cross-check: %w", err)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Harmonic\tFreq [MHz]\t|X|\tGoertzel\tAmplitude\tRel [dB]\tReflection gain\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "--------\t----------\t---\t--------\t---------\t--------\t---------------\n"); err != nil {
		return err
	}
	for _, hk := range h.Harmonics {
		gain := harmonics.ReflectionGain(hk.Order, p.F0, res.Delay, res.Reflection)
		if _, err := fmt.Fprintf(tw, "H%d\t%.3f\t%.2f\t%.2f\t%.4f\t%.2f\t%.3f\n",
			hk.Order, hk.Freq/1e6, hk.Level, tones[(hk.Order-1)/2], hk.Amplitude, hk.LevelDB, gain); err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "odd harmonic distortion: %.2f dB\n", h.OddHD_dB); err != nil {
		return err
	}

	for _, path := range written {
		if _, err := color.New(color.FgGreen).Fprintf(w, "wrote %s\n", path); err != nil {
			return err
		}
	}
	return nil
}
