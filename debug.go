package chartbits

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"

	"github.com/AnatoleLucet/chartbits/log"
)

// width of the owner column in traces
const ownerColumn = 18

type printer struct {
	flags     *FlagSet
	logger    log.Logger
	withStack bool
}

// NewPrinter returns a listener that logs every transition by flag name at debug level.
// A nil logger logs through the package logger named "bits".
func NewPrinter(flags *FlagSet, logger log.Logger) StateListener {
	return newPrinter(flags, logger, false)
}

// NewStackTracePrinter also logs the call stack that caused each transition.
func NewStackTracePrinter(flags *FlagSet, logger log.Logger) StateListener {
	return newPrinter(flags, logger, true)
}

func newPrinter(flags *FlagSet, logger log.Logger, withStack bool) *printer {
	if flags == nil {
		flags = ChartFlags
	}
	if logger == nil {
		logger = log.NewLogger("bits", 2)
	}
	return &printer{flags: flags, logger: logger, withStack: withStack}
}

func (p *printer) OnTransition(owner any, oldMask, newMask int) {
	line := p.format(owner, oldMask, newMask)
	if !p.withStack {
		p.logger.Debugf("%s", line)
		return
	}

	p.logger.Debugf("%s%+v", line, errors.New(""))
}

func (p *printer) format(owner any, oldMask, newMask int) string {
	label := runewidth.Truncate(ownerLabel(owner), ownerColumn, "…")
	label = runewidth.FillRight(label, ownerColumn)

	return fmt.Sprintf("%s %s -> %s (+%s)",
		label,
		p.flags.Format(oldMask),
		p.flags.Format(newMask),
		p.flags.Format(newMask&^oldMask),
	)
}
