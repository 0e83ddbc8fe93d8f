// Package render draws the waveform and spectrum charts with gonum/plot.
package render

import (
	"errors"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/cwbudde/linewave/dsp/tline"
)

const (
	nsPerSecond = 1e9
	hzPerMHz    = 1e6
)

// ErrNoData is returned when a result has nothing to draw.
var ErrNoData = errors.New("render: no data")

// TimeChart plots the total voltage against time in nanoseconds.
func TimeChart(res *tline.Result) (*plot.Plot, error) {
	ts := res.Time
	if ts.Len() == 0 {
		return nil, ErrNoData
	}

	pts := make(plotter.XYs, ts.Len())
	for i := range pts {
		pts[i].X = ts.Time[i] * nsPerSecond
		pts[i].Y = ts.Voltage[i]
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(1)
	line.LineStyle.Color = seriesColor

	p := plot.New()
	p.Title.Text = tline.TimeTitle(res.Params)
	p.X.Label.Text = "Time (ns)"
	p.Y.Label.Text = "Voltage (a.u.)"
	p.Add(plotter.NewGrid(), line)
	return p, nil
}

// SpectrumChart plots the spectrum magnitudes as stems against frequency in
// MHz, limited to [0, 10*f0].
func SpectrumChart(res *tline.Result) (*plot.Plot, error) {
	sp := res.Spectrum
	limit := res.SpectrumLimit()

	pts := make(plotter.XYs, 0, sp.Len())
	for i, f := range sp.Freq {
		if f > limit {
			break
		}
		pts = append(pts, plotter.XY{X: f / hzPerMHz, Y: sp.Magnitude[i]})
	}
	if len(pts) == 0 {
		return nil, ErrNoData
	}

	stems, err := NewStems(pts)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = tline.SpectrumTitle
	p.X.Label.Text = "Frequency (MHz)"
	p.Y.Label.Text = "Amplitude (a.u.)"
	p.Add(plotter.NewGrid(), stems)
	p.X.Min = 0
	p.X.Max = limit / hzPerMHz
	return p, nil
}
