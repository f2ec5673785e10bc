package chart

import (
	"github.com/AnatoleLucet/chartbits"
	"github.com/AnatoleLucet/chartbits/bench"
	"github.com/AnatoleLucet/chartbits/log"
)

var logger = log.NewLogger("chart", 2)

// Chart owns its axes. Axis changes propagate into the chart's own state, so
// a single look at the chart tells whether a layout or a redraw is due.
type Chart struct {
	title string
	axes  []*Axis

	state    *chartbits.BitState
	fromAxis chartbits.StateListener

	recorder bench.Recorder

	// per-pass counters, handy for tests and traces
	layouts int
	draws   int
}

func New(title string, opts ...chartbits.Option) *Chart {
	c := &Chart{
		title:    title,
		recorder: bench.Disabled,
	}

	c.state = chartbits.NewBitState(c, chartbits.ChartFlags, opts...)
	c.fromAxis = chartbits.NewListener(c.onAxis)

	return c
}

func (c *Chart) String() string { return c.title }
func (c *Chart) Title() string  { return c.title }

func (c *Chart) State() *chartbits.BitState { return c.state }

func (c *Chart) Axes() []*Axis { return c.axes }

// AddAxis attaches a and marks the chart for layout.
func (c *Chart) AddAxis(a *Axis) {
	for _, existing := range c.axes {
		if existing == a {
			return
		}
	}

	c.axes = append(c.axes, a)
	a.state.AddListener(c.fromAxis)
	c.state.SetFlags(chartbits.AxisLayout, chartbits.AxisCanvas)
}

// RemoveAxis detaches a. Its later changes no longer reach the chart.
func (c *Chart) RemoveAxis(a *Axis) bool {
	for i, existing := range c.axes {
		if existing != a {
			continue
		}

		c.axes = append(c.axes[:i:i], c.axes[i+1:]...)
		a.state.RemoveListener(c.fromAxis)
		c.state.SetFlags(chartbits.AxisLayout, chartbits.AxisCanvas)
		return true
	}
	return false
}

func (c *Chart) onAxis(_ any, oldMask, newMask int) {
	added := newMask &^ oldMask
	c.state.Set(added & chartbits.Mask(chartbits.AxisLayout, chartbits.AxisCanvas))
}

// Resize invalidates the layout of the chart and every axis.
func (c *Chart) Resize() {
	for _, a := range c.axes {
		a.state.SetFlags(chartbits.AxisLayout)
	}
	c.state.SetFlags(chartbits.AxisLayout, chartbits.AxisCanvas)
}

// SetGlobalRecorder routes the timing of layout and draw passes to r.
// Passing nil or bench.Disabled stops recording.
func (c *Chart) SetGlobalRecorder(r bench.Recorder) {
	c.recorder = bench.OrDisabled(r)
}

func (c *Chart) GlobalRecorder() bench.Recorder { return c.recorder }

// Layout services every pending layout bit. It reports whether any work was done.
func (c *Chart) Layout() bool {
	if !c.state.IsDirty(chartbits.AxisLayout.Bit()) && !c.axesDirty() {
		return false
	}
	defer bench.Start(c.recorder, "layout")()

	for _, a := range c.axes {
		if serviced := a.layout(); serviced != 0 {
			logger.Tracef("%s: laid out %s", a, chartbits.ChartFlags.Format(serviced))
		}
	}
	c.state.ClearFlags(chartbits.AxisLayout)
	c.layouts++

	return true
}

// Draw lays out if needed and then redraws when the canvas is dirty.
func (c *Chart) Draw() bool {
	c.Layout()

	if !c.state.IsDirty(chartbits.AxisCanvas.Bit()) {
		return false
	}
	defer bench.Start(c.recorder, "draw")()

	for _, a := range c.axes {
		a.state.ClearFlags(chartbits.AxisCanvas)
	}
	c.state.ClearFlags(chartbits.AxisCanvas)
	c.draws++
	logger.Tracef("%s: drawn (%d)", c, c.draws)

	return true
}

func (c *Chart) Layouts() int { return c.layouts }
func (c *Chart) Draws() int   { return c.draws }

func (c *Chart) axesDirty() bool {
	for _, a := range c.axes {
		if a.state.IsDirty(layoutMask) {
			return true
		}
	}
	return false
}

var layoutMask = chartbits.Mask(
	chartbits.AxisRange,
	chartbits.AxisTickLabelText,
	chartbits.AxisLabelText,
	chartbits.AxisLayout,
)
