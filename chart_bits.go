package chartbits

import "sync"

// ChartBits are the dirty flags of an axis.
type ChartBits int

const (
	AxisLayout        ChartBits = iota // size needs to be evaluated (e.g. labels may be larger)
	AxisCanvas                         // needs to be drawn
	AxisRange                          // anything related to min/max, tick marks, etc.
	AxisTickLabelText                  // the tick label display w/ unit scaling
	AxisLabelText                      // display name or units
)

var chartBitNames = [...]string{
	AxisLayout:        "AxisLayout",
	AxisCanvas:        "AxisCanvas",
	AxisRange:         "AxisRange",
	AxisTickLabelText: "AxisTickLabelText",
	AxisLabelText:     "AxisLabelText",
}

var (
	ChartFlags = NewFlagSet(chartBitNames[:]...)

	KnownMask = ChartFlags.KnownMask()
	AxisMask  = Mask(AxisLayout, AxisCanvas, AxisRange, AxisTickLabelText, AxisLabelText)
)

func (b ChartBits) Bit() int { return ChartFlags.Bit(int(b)) }

func (b ChartBits) IsSet(mask int) bool { return IsSet(mask, b.Bit()) }

func (b ChartBits) String() string { return ChartFlags.Name(int(b)) }

var (
	printerOnce      sync.Once
	sharedPrinter    StateListener
	stackPrinterOnce sync.Once
	sharedStackTrace StateListener
)

// Printer returns the shared debug printer for ChartBits. It has to be added
// to each BitState that should be traced.
func Printer() StateListener {
	printerOnce.Do(func() {
		sharedPrinter = NewPrinter(ChartFlags, nil)
	})
	return sharedPrinter
}

// PrinterWithStackTrace is like Printer but also logs where each transition came from.
func PrinterWithStackTrace() StateListener {
	stackPrinterOnce.Do(func() {
		sharedStackTrace = NewStackTracePrinter(ChartFlags, nil)
	})
	return sharedStackTrace
}
