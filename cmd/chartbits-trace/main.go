package main

import (
	"fmt"
	"os"
	"time"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/mattn/go-isatty"

	"github.com/AnatoleLucet/chartbits"
	"github.com/AnatoleLucet/chartbits/bench"
	"github.com/AnatoleLucet/chartbits/chart"
	"github.com/AnatoleLucet/chartbits/config"
	"github.com/AnatoleLucet/chartbits/log"
)

func usage(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	fmt.Fprintln(os.Stderr, "usage: chartbits-trace [-b] [-c <config>] [-t none|plain|stack] [-d <max depth>]")
	os.Exit(1)
}

func main() {
	opts, optind, err := getopt.Getopts(os.Args, "bc:t:d:")
	if err != nil {
		usage("error: " + err.Error())
		return
	}
	if len(os.Args[optind:]) > 0 {
		usage("error: invalid arguments")
		return
	}

	var conf string
	var measure bool
	var trace string
	depth := -1
	for _, opt := range opts {
		switch opt.Option {
		case 'b':
			measure = true
		case 'c':
			conf = opt.Value
		case 't':
			trace = opt.Value
		case 'd':
			if _, err := fmt.Sscan(opt.Value, &depth); err != nil || depth < 0 {
				usage("error: -d expects a non-negative number")
			}
		}
	}

	diag, err := loadDiagnostics(conf, trace, depth)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		// redirected to a file, keep the traces
		diag.LogLevel = log.TRACE
	}
	diag.Apply(os.Stderr)

	tracer := diag.Tracer(chartbits.ChartFlags, nil)
	run(diag.Options(tracer), measure)
}

func loadDiagnostics(path, trace string, depth int) (*config.Diagnostics, error) {
	var d *config.Diagnostics
	var err error
	if path != "" {
		d, err = config.Load(path)
	} else {
		d, err = config.Parse(nil)
	}
	if err != nil {
		return nil, err
	}

	if trace != "" {
		if err := d.SetTrace(trace); err != nil {
			return nil, err
		}
	}
	if depth >= 0 {
		d.MaxDispatchDepth = depth
	}
	return d, nil
}

func run(opts []chartbits.Option, measure bool) {
	c := chart.New("demo", opts...)
	x := chart.NewAxis("x", opts...)
	y := chart.NewAxis("y", opts...)
	c.AddAxis(x)
	c.AddAxis(y)

	if measure {
		c.SetGlobalRecorder(bench.Func(func(name string, d time.Duration) {
			fmt.Printf("  %-6s %s\n", name, d)
		}))
	}

	step := func(name string, fn func()) {
		fn()
		fmt.Printf("%-16s chart=%-24s x=%-24s y=%s\n", name,
			chartbits.ChartFlags.Format(c.State().Mask()),
			chartbits.ChartFlags.Format(x.State().Mask()),
			chartbits.ChartFlags.Format(y.State().Mask()))
		c.Draw()
	}

	step("initial", func() {})
	step("x range", func() { x.SetRange(0, 10) })
	step("x label", func() { x.SetLabel("time"); x.SetUnit("s") })
	step("y tick unit", func() { y.SetRange(0, 4000); y.SetTickUnit(1000) })
	step("y redraw", y.Invalidate)
	step("resize", c.Resize)

	fmt.Printf("layouts=%d draws=%d peak-depth=%d\n", c.Layouts(), c.Draws(), chartbits.PeakDispatchDepth())
	fmt.Printf("x ticks %v\ny ticks %v\n", x.TickLabels(), y.TickLabels())
}
