package chartbits

import "github.com/AnatoleLucet/chartbits/internal"

// Contract violations raised with panic. Recover and match them with errors.Is.
var (
	ErrUnknownBits      = internal.ErrUnknownBits
	ErrNilListener      = internal.ErrNilListener
	ErrListenerIdentity = internal.ErrListenerIdentity
	ErrFlagSet          = internal.ErrFlagSet
	ErrWrongGoroutine   = internal.ErrWrongGoroutine
	ErrDispatchDepth    = internal.ErrDispatchDepth
)

// SetMaxDispatchDepth bounds how deep a cascade of listeners may nest on the
// calling goroutine; going deeper panics with ErrDispatchDepth. Zero, the
// default, leaves cycle detection to whoever wires the listeners.
//
// The limit applies to BitStates created on this goroutine.
func SetMaxDispatchDepth(n int) {
	internal.GetRuntime().SetMaxDepth(n)
}

func MaxDispatchDepth() int {
	return internal.GetRuntime().MaxDepth()
}

// DispatchDepth returns how many listener dispatches are currently nested on this goroutine.
func DispatchDepth() int {
	return internal.GetRuntime().Depth()
}

// PeakDispatchDepth returns the deepest nesting since the previous call.
func PeakDispatchDepth() int {
	return internal.GetRuntime().Peak()
}

// ReleaseGoroutine forgets the dispatch settings of the calling goroutine.
func ReleaseGoroutine() {
	internal.ReleaseRuntime()
}
