package chart

import (
	"github.com/pkg/errors"

	"github.com/AnatoleLucet/chartbits/bench"
)

// RecorderFactory builds the recorder that displays measurements for a chart.
// It must call closed when that display goes away.
type RecorderFactory func(title string, closed func()) bench.Recorder

// BenchToggle switches live measurement of a chart on and off.
type BenchToggle struct {
	chart   *Chart
	enabled bool

	filter  func(bench.Recorder) bench.Recorder
	factory RecorderFactory
}

func NewBenchToggle(factory RecorderFactory) *BenchToggle {
	if factory == nil {
		panic(errors.New("bench: nil recorder factory"))
	}
	return &BenchToggle{
		filter:  func(r bench.Recorder) bench.Recorder { return r },
		factory: factory,
	}
}

// SetFilter wraps every new recorder, e.g. to keep only draw measurements.
func (b *BenchToggle) SetFilter(filter func(bench.Recorder) bench.Recorder) *BenchToggle {
	if filter == nil {
		panic(errors.New("bench: nil measurement filter"))
	}
	b.filter = filter
	return b
}

// Attach moves the toggle to c. The previous chart stops recording.
func (b *BenchToggle) Attach(c *Chart) {
	if b.chart == c {
		return
	}
	if b.chart != nil {
		b.chart.SetGlobalRecorder(bench.Disabled)
		b.enabled = false
	}
	b.chart = c
}

func (b *BenchToggle) Chart() *Chart { return b.chart }

func (b *BenchToggle) Enabled() bool { return b.enabled }

// Enable starts recording on the attached chart. It reports whether anything changed.
func (b *BenchToggle) Enable() bool {
	if b.enabled || b.chart == nil {
		return false
	}

	c := b.chart
	title := c.Title()
	if title == "" {
		title = "Benchmark"
	}

	rec := b.factory(title, func() {
		c.SetGlobalRecorder(bench.Disabled)
		if b.chart == c {
			b.Disable()
		}
	})
	c.SetGlobalRecorder(b.filter(rec))
	b.enabled = true

	return true
}

// Disable stops recording on the attached chart. It reports whether anything changed.
func (b *BenchToggle) Disable() bool {
	if !b.enabled || b.chart == nil {
		return false
	}

	b.chart.SetGlobalRecorder(bench.Disabled)
	b.enabled = false
	return true
}
