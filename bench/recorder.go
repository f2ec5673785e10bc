// Package bench is the seam between the render pipeline and whatever records
// its timings. Sampling and filtering live with the recorder implementations.
package bench

import "time"

// Recorder receives the duration of a named step of the render pipeline.
type Recorder interface {
	Record(name string, d time.Duration)
}

// Disabled drops every measurement.
var Disabled Recorder = disabled{}

type disabled struct{}

func (disabled) Record(string, time.Duration) {}

// Func adapts a plain function.
type Func func(name string, d time.Duration)

func (f Func) Record(name string, d time.Duration) { f(name, d) }

// OrDisabled returns Disabled for a nil recorder.
func OrDisabled(r Recorder) Recorder {
	if r == nil {
		return Disabled
	}
	return r
}

// IsDisabled reports whether r records nothing.
func IsDisabled(r Recorder) bool {
	return r == nil || r == Disabled
}

// Start returns a func that records the time elapsed since Start under name.
func Start(r Recorder, name string) func() {
	if IsDisabled(r) {
		return func() {}
	}
	start := time.Now()
	return func() { r.Record(name, time.Since(start)) }
}
