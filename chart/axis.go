package chart

import (
	"fmt"
	"strconv"

	"github.com/AnatoleLucet/chartbits"
)

const defaultTickCount = 5

// Axis is a value axis whose dirty state drives the chart's layout and redraw.
type Axis struct {
	name  string
	min   float64
	max   float64
	label string
	unit  string

	// tick values are divided by tickUnit before being printed
	tickUnit   float64
	tickCount  int
	ticks      []float64
	tickLabels []string

	state *chartbits.BitState
}

// NewAxis creates an axis whose every aspect is dirty, so the first layout pass computes it.
func NewAxis(name string, opts ...chartbits.Option) *Axis {
	a := &Axis{
		name:      name,
		max:       1,
		tickUnit:  1,
		tickCount: defaultTickCount,
	}

	opts = append([]chartbits.Option{chartbits.WithInitialMask(chartbits.AxisMask)}, opts...)
	a.state = chartbits.NewBitState(a, chartbits.ChartFlags, opts...)
	a.state.AddListener(chartbits.NewListener(a.cascade))

	return a
}

// cascade closes newly set bits over their consequences:
// range -> tick label text -> layout -> canvas, and axis label text -> layout.
func (a *Axis) cascade(_ any, oldMask, newMask int) {
	want := newMask &^ oldMask

	if chartbits.AxisRange.IsSet(want) {
		want |= chartbits.AxisTickLabelText.Bit()
	}
	if chartbits.IsSet(want, chartbits.Mask(chartbits.AxisTickLabelText, chartbits.AxisLabelText)) {
		want |= chartbits.AxisLayout.Bit()
	}
	if chartbits.AxisLayout.IsSet(want) {
		want |= chartbits.AxisCanvas.Bit()
	}

	a.state.Set(want)
}

func (a *Axis) Name() string   { return a.name }
func (a *Axis) String() string { return a.name }

func (a *Axis) State() *chartbits.BitState { return a.state }

func (a *Axis) Range() (float64, float64) { return a.min, a.max }

func (a *Axis) SetRange(min, max float64) {
	if min > max {
		min, max = max, min
	}
	if min == a.min && max == a.max {
		return
	}
	a.min, a.max = min, max
	a.state.SetFlags(chartbits.AxisRange)
}

func (a *Axis) SetLabel(label string) {
	if label == a.label {
		return
	}
	a.label = label
	a.state.SetFlags(chartbits.AxisLabelText)
}

func (a *Axis) SetUnit(unit string) {
	if unit == a.unit {
		return
	}
	a.unit = unit
	a.state.SetFlags(chartbits.AxisLabelText)
}

// SetTickUnit sets the scale applied to tick labels, e.g. 1e3 to print kHz from Hz.
func (a *Axis) SetTickUnit(unit float64) {
	if unit == 0 || unit == a.tickUnit {
		return
	}
	a.tickUnit = unit
	a.state.SetFlags(chartbits.AxisTickLabelText)
}

func (a *Axis) SetTickCount(n int) {
	if n < 2 || n == a.tickCount {
		return
	}
	a.tickCount = n
	a.state.SetFlags(chartbits.AxisRange)
}

// Invalidate asks for a redraw without any layout change.
func (a *Axis) Invalidate() {
	a.state.SetFlags(chartbits.AxisCanvas)
}

// AxisLabel is the display name with its unit.
func (a *Axis) AxisLabel() string {
	if a.unit == "" {
		return a.label
	}
	return fmt.Sprintf("%s [%s]", a.label, a.unit)
}

func (a *Axis) Ticks() []float64     { return a.ticks }
func (a *Axis) TickLabels() []string { return a.tickLabels }

// layout recomputes what is stale and clears the serviced bits, leaving
// AxisCanvas for the draw pass. It reports what it serviced.
func (a *Axis) layout() int {
	if a.state.IsDirty(chartbits.AxisRange.Bit()) {
		a.computeTicks()
	}
	if a.state.IsDirty(chartbits.AxisTickLabelText.Bit()) {
		a.computeTickLabels()
	}

	return a.state.Clear(layoutMask)
}

func (a *Axis) computeTicks() {
	a.ticks = a.ticks[:0]
	step := (a.max - a.min) / float64(a.tickCount-1)
	for i := 0; i < a.tickCount; i++ {
		a.ticks = append(a.ticks, a.min+step*float64(i))
	}
}

func (a *Axis) computeTickLabels() {
	a.tickLabels = a.tickLabels[:0]
	for _, v := range a.ticks {
		a.tickLabels = append(a.tickLabels, strconv.FormatFloat(v/a.tickUnit, 'g', 4, 64))
	}
}
