// Package chartbits tracks which aspects of a chart element are stale as a
// bitmask and tells listeners when more of it becomes stale.
package chartbits

import (
	"fmt"

	"github.com/AnatoleLucet/chartbits/internal"
)

// StateListener is notified when a BitState becomes dirtier.
// oldMask and newMask are the complete masks around the change; clearing bits never notifies.
// Listeners are registered by identity, so implementations must be comparable (pointers are);
// registering an uncomparable one panics with ErrListenerIdentity.
type StateListener interface {
	OnTransition(owner any, oldMask, newMask int)
}

// NewListener wraps fn as a StateListener. Keep the result to remove it later.
func NewListener(fn func(owner any, oldMask, newMask int)) StateListener {
	return internal.ListenerFunc(fn)
}

// BitState is the dirty mask of one chart element.
//
// All calls must happen on the goroutine that owns the element. Listener
// dispatch is synchronous: a listener that sets bits on another BitState runs
// that state's listeners before returning. Nothing prevents listener cycles;
// see SetMaxDispatchDepth for an opt-in guard.
type BitState struct {
	state *internal.State
}

type Option func(*options)

type options struct {
	initial        int
	listeners      []StateListener
	checkGoroutine bool
}

// WithInitialMask starts the state dirty with mask, without notifying anyone.
func WithInitialMask(mask int) Option {
	return func(o *options) { o.initial |= mask }
}

// WithListeners registers listeners at construction.
func WithListeners(listeners ...StateListener) Option {
	return func(o *options) { o.listeners = append(o.listeners, listeners...) }
}

// WithGoroutineCheck panics on mutation from a goroutine other than the creating one.
func WithGoroutineCheck() Option {
	return func(o *options) { o.checkGoroutine = true }
}

// NewBitState creates a clean state for owner, accepting only bits from flags.
func NewBitState(owner any, flags *FlagSet, opts ...Option) *BitState {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if flags == nil {
		flags = &FlagSet{}
	}
	s := internal.NewState(owner, flags.set)
	s.CheckGoroutine(o.checkGoroutine)
	s.Set(o.initial)

	for _, l := range o.listeners {
		s.AddListener(l)
	}

	return &BitState{s}
}

// Set ORs mask into the state. If that adds at least one bit, every listener
// is called once with the old and new mask. It reports whether the mask changed.
func (b *BitState) Set(mask int) bool { return b.state.Set(mask) }

// SetFlags is Set for named flags.
func (b *BitState) SetFlags(flags ...Flag) bool { return b.state.Set(flagMask(flags)) }

// Clear removes mask from the state and returns the bits that were set.
// Listeners are not notified.
func (b *BitState) Clear(mask int) int { return b.state.Clear(mask) }

// ClearFlags is Clear for named flags.
func (b *BitState) ClearFlags(flags ...Flag) int { return b.state.Clear(flagMask(flags)) }

// ClearAll clears every bit and returns the previous mask.
func (b *BitState) ClearAll() int { return b.state.ClearAll() }

// IsDirty reports whether any bit of mask is set.
func (b *BitState) IsDirty(mask int) bool { return b.state.IsDirty(mask) }

// IsDirtyAll reports whether every bit of mask is set.
func (b *BitState) IsDirtyAll(mask int) bool { return b.state.IsDirtyAll(mask) }

func (b *BitState) IsClean() bool { return b.state.IsClean() }

func (b *BitState) Mask() int { return b.state.Mask() }

func (b *BitState) Owner() any { return b.state.Owner() }

func (b *BitState) Flags() *FlagSet { return &FlagSet{b.state.Flags()} }

// AddListener registers l. Adding a listener twice has no effect and returns false.
func (b *BitState) AddListener(l StateListener) bool { return b.state.AddListener(l) }

// RemoveListener unregisters l and reports whether it was registered.
func (b *BitState) RemoveListener(l StateListener) bool { return b.state.RemoveListener(l) }

// Setter returns a func that sets mask, for wiring to event callbacks.
func (b *BitState) Setter(mask int) func() {
	b.state.Flags().Validate(mask)
	return func() { b.state.Set(mask) }
}

// PropagateTo makes target receive mask whenever b becomes dirtier.
// The returned listener is already registered on b.
func (b *BitState) PropagateTo(target *BitState, mask int) StateListener {
	var ts *internal.State
	if target != nil {
		ts = target.state
	}
	p := internal.NewPropagator(ts, mask)
	b.state.AddListener(p)
	return p
}

func (b *BitState) String() string {
	return fmt.Sprintf("%s{%s}", ownerLabel(b.state.Owner()), b.state.Flags().Format(b.state.Mask()))
}

func flagMask(flags []Flag) int {
	mask := 0
	for _, f := range flags {
		mask |= f.Bit()
	}
	return mask
}

func ownerLabel(owner any) string {
	switch o := owner.(type) {
	case nil:
		return "<nil>"
	case string:
		return o
	case fmt.Stringer:
		return o.String()
	}
	return fmt.Sprintf("%T", owner)
}
