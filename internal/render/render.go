package render

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/cwbudde/linewave/dsp/tline"
)

// Options controls chart output.
type Options struct {
	Dir    string
	Format string // png, svg or pdf
	Width  vg.Length
	Height vg.Length
}

// DefaultOptions returns 12x5 inch PNG charts in the current directory.
func DefaultOptions() Options {
	return Options{
		Dir:    ".",
		Format: "png",
		Width:  12 * vg.Inch,
		Height: 5 * vg.Inch,
	}
}

var formats = map[string]bool{"png": true, "svg": true, "pdf": true}

// ValidFormat reports whether format is a supported output format.
func ValidFormat(format string) bool {
	return formats[strings.ToLower(format)]
}

// RenderAll draws the waveform and spectrum charts concurrently and writes
// them as waveform.<fmt> and spectrum.<fmt> under opts.Dir. The returned
// paths are in that order.
func RenderAll(ctx context.Context, res *tline.Result, opts Options) ([]string, error) {
	format := strings.ToLower(opts.Format)
	if !ValidFormat(format) {
		return nil, fmt.Errorf("render: unsupported format %q", opts.Format)
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("render: cannot create directory: %w", err)
	}

	charts := []struct {
		name  string
		build func(*tline.Result) (*plot.Plot, error)
	}{
		{"waveform", TimeChart},
		{"spectrum", SpectrumChart},
	}

	paths := make([]string, len(charts))
	g, ctx := errgroup.WithContext(ctx)
	for i, c := range charts {
		paths[i] = filepath.Join(opts.Dir, c.name+"."+format)
		g.Go(func() error {
			p, err := c.build(res)
			if err != nil {
				return fmt.Errorf("render %s: %w", c.name, err)
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			return Save(p, paths[i], opts.Width, opts.Height)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

// Save writes p to path in the format given by the file extension.
func Save(p *plot.Plot, path string, w, h vg.Length) error {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	wt, err := p.WriterTo(w, h, format)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: cannot create %s: %w", path, err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if _, err := wt.WriteTo(bw); err != nil {
		return fmt.Errorf("render: cannot write %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("render: cannot write %s: %w", path, err)
	}
	return f.Close()
}
