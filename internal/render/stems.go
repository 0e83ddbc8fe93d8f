package render

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Stems draws each point as a vertical line from y=0 to its value, capped
// with a marker. It has no baseline.
type Stems struct {
	plotter.XYs
	draw.LineStyle
	Marker draw.GlyphStyle
}

// NewStems copies xys into a stem plotter with default styling.
func NewStems(xys plotter.XYer) (*Stems, error) {
	data, err := plotter.CopyXYs(xys)
	if err != nil {
		return nil, err
	}
	marker := plotter.DefaultGlyphStyle
	marker.Shape = draw.CircleGlyph{}
	marker.Radius = vg.Points(1.5)
	marker.Color = seriesColor

	line := plotter.DefaultLineStyle
	line.Color = seriesColor
	return &Stems{XYs: data, LineStyle: line, Marker: marker}, nil
}

// Plot implements plot.Plotter.
func (s *Stems) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	y0 := trY(0)
	for _, p := range s.XYs {
		x := trX(p.X)
		if !c.ContainsX(x) {
			continue
		}
		y := trY(p.Y)
		c.StrokeLine2(s.LineStyle, x, y0, x, y)
		c.DrawGlyph(s.Marker, vg.Point{X: x, Y: y})
	}
}

// DataRange implements plot.DataRanger. The y range always includes 0.
func (s *Stems) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax, ymin, ymax = plotter.XYRange(s.XYs)
	if ymin > 0 {
		ymin = 0
	}
	if ymax < 0 {
		ymax = 0
	}
	return xmin, xmax, ymin, ymax
}

var seriesColor = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
