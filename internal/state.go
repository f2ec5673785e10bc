package internal

import (
	"reflect"

	"github.com/pkg/errors"
)

// State is the dirty mask of one chart element plus the listeners watching it.
// It is not safe for concurrent use: all calls must come from the goroutine
// that renders the element.
type State struct {
	owner any
	flags *FlagSet
	mask  int

	// copy-on-write, so listeners may add or remove listeners while being dispatched
	listeners []Listener

	rt  *Runtime
	gid int64

	checkGoroutine bool
}

func NewState(owner any, flags *FlagSet) *State {
	if flags == nil {
		violate(errors.Wrap(ErrFlagSet, "nil flag set"))
	}

	return &State{
		owner: owner,
		flags: flags,
		rt:    GetRuntime(),
		gid:   getGID(),
	}
}

func (s *State) Owner() any        { return s.owner }
func (s *State) Flags() *FlagSet   { return s.flags }
func (s *State) Mask() int         { return s.mask }
func (s *State) Runtime() *Runtime { return s.rt }

// CheckGoroutine makes every mutation verify it runs on the creating goroutine.
func (s *State) CheckGoroutine(enabled bool) {
	s.checkGoroutine = enabled
}

// Set ORs bits into the mask and notifies listeners if the mask grew.
func (s *State) Set(bits int) bool {
	s.flags.Validate(bits)
	s.checkOwner()

	oldMask := s.mask
	newMask := oldMask | bits
	if newMask == oldMask {
		return false
	}

	listeners := s.listeners
	if len(listeners) == 0 {
		s.mask = newMask
		return true
	}

	s.rt.CheckDepth()
	s.mask = newMask

	s.rt.Dispatch(func() {
		for _, l := range listeners {
			l.OnTransition(s.owner, oldMask, newMask)
		}
	})

	return true
}

// Clear removes bits without notifying anyone and returns the bits that were actually set.
func (s *State) Clear(bits int) int {
	s.flags.Validate(bits)
	s.checkOwner()

	cleared := s.mask & bits
	s.mask &^= bits
	return cleared
}

// ClearAll resets the mask and returns what it was.
func (s *State) ClearAll() int {
	s.checkOwner()

	prev := s.mask
	s.mask = 0
	return prev
}

func (s *State) IsDirty(bits int) bool {
	return s.mask&bits != 0
}

func (s *State) IsDirtyAll(bits int) bool {
	return s.mask&bits == bits
}

func (s *State) IsClean() bool {
	return s.mask == 0
}

// AddListener registers l once. It reports whether l was not yet registered.
func (s *State) AddListener(l Listener) bool {
	if l == nil {
		violate(ErrNilListener)
	}
	if !isComparable(l) {
		violate(errors.Wrapf(ErrListenerIdentity, "%T", l))
	}
	if s.indexOf(l) >= 0 {
		return false
	}

	s.listeners = append(s.listeners, l)
	return true
}

// RemoveListener reports whether l was registered.
func (s *State) RemoveListener(l Listener) bool {
	if l == nil || !isComparable(l) {
		return false
	}
	i := s.indexOf(l)
	if i < 0 {
		return false
	}

	next := make([]Listener, 0, len(s.listeners)-1)
	next = append(next, s.listeners[:i]...)
	next = append(next, s.listeners[i+1:]...)
	s.listeners = next
	return true
}

func (s *State) Listeners() int {
	return len(s.listeners)
}

func (s *State) indexOf(l Listener) int {
	for i, registered := range s.listeners {
		if registered == l {
			return i
		}
	}
	return -1
}

// listeners are registered by identity, which needs ==
func isComparable(l Listener) bool {
	return reflect.TypeOf(l).Comparable()
}

func (s *State) checkOwner() {
	if !s.checkGoroutine {
		return
	}
	if gid := getGID(); gid != s.gid {
		violate(errors.Wrapf(ErrWrongGoroutine, "created on %d, mutated on %d", s.gid, gid))
	}
}
