package internal

import "github.com/pkg/errors"

// Contract violations. They are raised with panic since they mean the
// listener graph or a flag catalogue is wired wrong, not that the input was bad.
var (
	ErrUnknownBits      = errors.New("bits outside the known mask")
	ErrNilListener      = errors.New("nil state listener")
	ErrListenerIdentity = errors.New("state listener is not comparable")
	ErrFlagSet          = errors.New("invalid flag set")
	ErrWrongGoroutine   = errors.New("state mutated off its owning goroutine")
	ErrDispatchDepth    = errors.New("dispatch depth exceeded")
)

func violate(err error) {
	panic(err)
}
