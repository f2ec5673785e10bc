package config

import (
	"io"

	"github.com/go-ini/ini"
	"github.com/pkg/errors"

	"github.com/AnatoleLucet/chartbits"
	"github.com/AnatoleLucet/chartbits/log"
)

type TraceMode string

const (
	TraceNone  TraceMode = "none"
	TracePlain TraceMode = "plain"
	TraceStack TraceMode = "stack"
)

// Diagnostics is the [diagnostics] section.
type Diagnostics struct {
	LogLevel         log.LogLevel `ini:"-"`
	Trace            TraceMode    `ini:"trace"`
	MaxDispatchDepth int          `ini:"max-dispatch-depth"`
	CheckGoroutine   bool         `ini:"check-goroutine"`

	// log-level was given explicitly
	levelSet bool
}

func defaultDiagnostics() Diagnostics {
	return Diagnostics{
		LogLevel: log.INFO,
		Trace:    TraceNone,
	}
}

// Load reads path. A missing [diagnostics] section leaves the defaults.
func Load(path string) (*Diagnostics, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, errors.Wrap(err, "ini.Load")
	}
	return parse(file)
}

// Parse reads an ini document from memory.
func Parse(data []byte) (*Diagnostics, error) {
	file, err := ini.Load(data)
	if err != nil {
		return nil, errors.Wrap(err, "ini.Load")
	}
	return parse(file)
}

func parse(file *ini.File) (*Diagnostics, error) {
	d := defaultDiagnostics()

	sec, err := file.GetSection("diagnostics")
	if err != nil {
		return &d, nil
	}
	if err := sec.MapTo(&d); err != nil {
		return nil, errors.Wrap(err, "[diagnostics]")
	}

	if key, err := sec.GetKey("log-level"); err == nil {
		level, err := log.ParseLevel(key.String())
		if err != nil {
			return nil, errors.Wrap(err, "log-level")
		}
		d.LogLevel = level
		d.levelSet = true
	}

	if err := d.validate(); err != nil {
		return nil, err
	}
	d.traceLevel()

	return &d, nil
}

func (d *Diagnostics) validate() error {
	switch d.Trace {
	case TraceNone, TracePlain, TraceStack:
	case "":
		d.Trace = TraceNone
	default:
		return errors.Errorf("trace must be one of none, plain or stack, got %q", d.Trace)
	}

	if d.MaxDispatchDepth < 0 {
		return errors.Errorf("max-dispatch-depth must not be negative, got %d", d.MaxDispatchDepth)
	}

	return nil
}

// SetTrace overrides the trace mode.
func (d *Diagnostics) SetTrace(mode string) error {
	prev := d.Trace
	d.Trace = TraceMode(mode)
	if err := d.validate(); err != nil {
		d.Trace = prev
		return err
	}
	d.traceLevel()
	return nil
}

// traceLevel lowers the log level so printer output, logged at debug, is not dropped.
// An explicit log-level wins.
func (d *Diagnostics) traceLevel() {
	if d.Trace == TraceNone || d.levelSet || d.LogLevel <= log.DEBUG {
		return
	}
	d.LogLevel = log.DEBUG
}

// Apply sends logs to w at the configured level and sets the dispatch depth
// guard of the calling goroutine.
func (d *Diagnostics) Apply(w io.Writer) {
	log.Init(w, d.LogLevel)
	chartbits.SetMaxDispatchDepth(d.MaxDispatchDepth)
	log.Debugf("diagnostics: %#v", *d)
}

// Tracer returns the listener to add to traced states, or nil when tracing is off.
func (d *Diagnostics) Tracer(flags *chartbits.FlagSet, logger log.Logger) chartbits.StateListener {
	switch d.Trace {
	case TracePlain:
		return chartbits.NewPrinter(flags, logger)
	case TraceStack:
		return chartbits.NewStackTracePrinter(flags, logger)
	}
	return nil
}

// Options turns the settings into BitState options.
func (d *Diagnostics) Options(tracer chartbits.StateListener) []chartbits.Option {
	var opts []chartbits.Option
	if tracer != nil {
		opts = append(opts, chartbits.WithListeners(tracer))
	}
	if d.CheckGoroutine {
		opts = append(opts, chartbits.WithGoroutineCheck())
	}
	return opts
}
