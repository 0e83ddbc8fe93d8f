// Command linewave synthesizes a square-wave clock with a transmission-line
// reflection and renders its waveform and spectrum.
//
// Usage:
//
//	linewave [flags] <f0-hz> [length-m]
//	linewave [flags] -target <hz> [length-m]
//
// A length of 0 or less (the default) selects the automatic length v/(6*f0).
// With -target the fundamental is not given directly: it is the clock the
// 500 MHz PLL divider produces when aiming its third harmonic at the target.
//
// Examples:
//
//	linewave 300e6
//	linewave 305e6 0.25
//	linewave -format svg -out plots -csv 100e6 0.4
//	linewave -show 50e6
//	linewave -target 433.92e6
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/cwbudde/linewave/dsp/clock"
	"github.com/cwbudde/linewave/dsp/spectrum"
	"github.com/cwbudde/linewave/dsp/tline"
	"github.com/cwbudde/linewave/dsp/window"
	"github.com/cwbudde/linewave/internal/export"
	"github.com/cwbudde/linewave/internal/render"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var errUsage = errors.New("usage")

type options struct {
	params  tline.Params
	clock   *clock.Plan
	outDir  string
	format  string
	show    bool
	csv     bool
	quiet   bool
	noColor bool
	window  window.Type
	backend spectrum.Backend
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		if !errors.Is(err, errUsage) {
			printError(stderr, err)
		}
		return exitUsage
	}
	if opts.noColor {
		color.NoColor = true
	}

	res, err := tline.Synthesize(opts.params, tline.WithWindow(opts.window), tline.WithBackend(opts.backend))
	if err != nil {
		printError(stderr, err)
		return exitError
	}

	ropts := render.DefaultOptions()
	ropts.Dir = opts.outDir
	ropts.Format = opts.format
	written, err := render.RenderAll(ctx, res, ropts)
	if err != nil {
		printError(stderr, err)
		return exitError
	}
	charts := written

	if opts.csv {
		files, err := export.WriteFiles(opts.outDir, res)
		if err != nil {
			printError(stderr, err)
			return exitError
		}
		written = append(written, files...)
	}

	if !opts.quiet {
		if err := printSummary(stdout, res, opts.clock, opts.params.Length <= 0, written); err != nil {
			printError(stderr, fmt.Errorf("failed to write summary: %w", err))
			return exitError
		}
	}

	if opts.show {
		if err := render.Open(ctx, charts...); err != nil {
			printError(stderr, err)
			return exitError
		}
	}
	return exitOK
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("linewave", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		opts       options
		windowName string
		fftName    string
		target     float64
	)
	fs.StringVar(&opts.outDir, "out", ".", "output directory for charts and CSV files")
	fs.StringVar(&opts.format, "format", "png", "chart format: png, svg or pdf")
	fs.BoolVar(&opts.show, "show", false, "open the charts in the system viewer")
	fs.BoolVar(&opts.csv, "csv", false, "also write waveform.csv and spectrum.csv")
	fs.BoolVar(&opts.quiet, "quiet", false, "suppress the summary")
	fs.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	fs.StringVar(&windowName, "window", "rectangular", "analysis window: "+strings.Join(window.Names(), ", "))
	fs.StringVar(&fftName, "fft", "auto", "DFT backend: auto, algofft (power-of-two sizes only), godsp or direct")
	fs.Float64Var(&target, "target", 0, "target frequency in Hz; derives f0 from the PLL divider instead of taking it as an argument")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: linewave [flags] <f0-hz> [length-m]\n")
		fmt.Fprintf(stderr, "       linewave [flags] -target <hz> [length-m]\n\n")
		fmt.Fprintf(stderr, "Synthesizes a square-wave clock with a line reflection and renders\n")
		fmt.Fprintf(stderr, "its waveform and spectrum. A length <= 0 selects v/(6*f0).\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  linewave 300e6\n")
		fmt.Fprintf(stderr, "  linewave 305e6 0.25\n")
		fmt.Fprintf(stderr, "  linewave -format svg -out plots -csv 100e6 0.4\n")
		fmt.Fprintf(stderr, "  linewave -target 433.92e6\n")
	}

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	targetSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "target" {
			targetSet = true
		}
	})

	// The fundamental comes from exactly one place: the first positional or
	// the clock plan.
	pos := fs.Args()
	minPos, maxPos := 1, 2
	if targetSet {
		minPos, maxPos = 0, 1
	}
	if len(pos) < minPos || len(pos) > maxPos {
		fs.Usage()
		return options{}, errUsage
	}

	var f0 float64
	if targetSet {
		plan, err := clock.New(target)
		if err != nil {
			return options{}, err
		}
		opts.clock = &plan
		f0 = plan.Output
	} else {
		v, err := parseNumber("f0", pos[0])
		if err != nil {
			return options{}, err
		}
		f0, pos = v, pos[1:]
	}

	length := 0.0
	if len(pos) == 1 {
		v, err := parseNumber("length", pos[0])
		if err != nil {
			return options{}, err
		}
		length = v
	}
	opts.params = tline.Params{F0: f0, Length: length}
	if err := opts.params.Validate(); err != nil {
		return options{}, err
	}

	var err error
	if !render.ValidFormat(opts.format) {
		return options{}, fmt.Errorf("unsupported format %q (want png, svg or pdf)", opts.format)
	}
	if opts.window, err = window.Parse(windowName); err != nil {
		return options{}, err
	}
	if opts.backend, err = spectrum.ParseBackend(fftName); err != nil {
		return options{}, err
	}
	return opts, nil
}

func parseNumber(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("invalid %s %q: out of range for a 64-bit float", name, s)
	}
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: not a number", name, s)
	}
	return v, nil
}

func printError(w io.Writer, err error) {
	_, _ = color.New(color.FgRed, color.Bold).Fprint(w, "error: ")
	_, _ = fmt.Fprintln(w, err)
}
