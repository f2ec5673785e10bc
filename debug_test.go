package chartbits

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type captureLogger struct {
	lines []string
}

func (c *captureLogger) add(format string, args ...any) {
	c.lines = append(c.lines, fmt.Sprintf(format, args...))
}

func (c *captureLogger) Tracef(format string, args ...any) { c.add(format, args...) }
func (c *captureLogger) Debugf(format string, args ...any) { c.add(format, args...) }
func (c *captureLogger) Infof(format string, args ...any)  { c.add(format, args...) }
func (c *captureLogger) Warnf(format string, args ...any)  { c.add(format, args...) }
func (c *captureLogger) Errorf(format string, args ...any) { c.add(format, args...) }

func TestPrinter(t *testing.T) {
	t.Run("logs transitions by name", func(t *testing.T) {
		logger := &captureLogger{}
		s := NewBitState("x-axis", ChartFlags, WithListeners(NewPrinter(ChartFlags, logger)))

		s.SetFlags(AxisRange)
		s.SetFlags(AxisRange, AxisCanvas)
		s.ClearAll()

		assert.Equal(t, []string{
			"x-axis             0 -> AxisRange (+AxisRange)",
			"x-axis             AxisRange -> AxisCanvas|AxisRange (+AxisCanvas)",
		}, logger.lines)
	})

	t.Run("truncates long owners", func(t *testing.T) {
		logger := &captureLogger{}
		s := NewBitState("a-very-long-axis-name-indeed", ChartFlags, WithListeners(NewPrinter(ChartFlags, logger)))

		s.SetFlags(AxisLayout)

		assert.Len(t, logger.lines, 1)
		assert.True(t, strings.HasPrefix(logger.lines[0], "a-very-long-axis-…"), logger.lines[0])
	})

	t.Run("stack trace variant", func(t *testing.T) {
		logger := &captureLogger{}
		s := NewBitState("y-axis", ChartFlags, WithListeners(NewStackTracePrinter(ChartFlags, logger)))

		s.SetFlags(AxisLabelText)

		assert.Len(t, logger.lines, 1)
		assert.True(t, strings.HasPrefix(logger.lines[0], "y-axis"))
		assert.Contains(t, logger.lines[0], "(+AxisLabelText)\n")
		assert.Contains(t, logger.lines[0], "TestPrinter")
	})

	t.Run("does not touch the state", func(t *testing.T) {
		s := NewBitState("x-axis", ChartFlags, WithListeners(NewPrinter(ChartFlags, &captureLogger{})))

		s.SetFlags(AxisRange)
		assert.Equal(t, AxisRange.Bit(), s.Mask())
	})

	t.Run("shared printers", func(t *testing.T) {
		assert.Same(t, Printer(), Printer())
		assert.Same(t, PrinterWithStackTrace(), PrinterWithStackTrace())
		assert.NotEqual(t, Printer(), PrinterWithStackTrace())
	})
}
