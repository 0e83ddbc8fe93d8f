// Package export writes synthesized series as CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cwbudde/linewave/dsp/tline"
)

// WriteTimeSeries writes t_s,forward,reflected,total rows.
func WriteTimeSeries(w io.Writer, ts tline.TimeSeries) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"t_s", "forward", "reflected", "total"}); err != nil {
		return err
	}
	for i := range ts.Time {
		if err := cw.Write([]string{
			formatFloat(ts.Time[i]),
			formatFloat(ts.Forward[i]),
			formatFloat(ts.Reflected[i]),
			formatFloat(ts.Voltage[i]),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteSpectrum writes freq_hz,magnitude rows.
func WriteSpectrum(w io.Writer, sp tline.SpectrumSeries) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"freq_hz", "magnitude"}); err != nil {
		return err
	}
	for i := range sp.Freq {
		if err := cw.Write([]string{formatFloat(sp.Freq[i]), formatFloat(sp.Magnitude[i])}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFiles writes waveform.csv and spectrum.csv under dir and returns their paths.
func WriteFiles(dir string, res *tline.Result) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("export: cannot create directory: %w", err)
	}

	files := []struct {
		name  string
		write func(io.Writer) error
	}{
		{"waveform.csv", func(w io.Writer) error { return WriteTimeSeries(w, res.Time) }},
		{"spectrum.csv", func(w io.Writer) error { return WriteSpectrum(w, res.Spectrum) }},
	}

	paths := make([]string, 0, len(files))
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := writeFile(path, f.write); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: cannot create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("export: cannot write %s: %w", path, err)
	}
	return f.Close()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
