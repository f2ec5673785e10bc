package internal

// Listener observes a State becoming dirtier.
// oldMask and newMask are the full masks before and after the change.
type Listener interface {
	OnTransition(owner any, oldMask, newMask int)
}

type funcListener struct {
	fn func(owner any, oldMask, newMask int)
}

// ListenerFunc adapts fn. Every call returns a distinct listener,
// so keep the result around to remove it later.
func ListenerFunc(fn func(owner any, oldMask, newMask int)) Listener {
	if fn == nil {
		violate(ErrNilListener)
	}
	return &funcListener{fn}
}

func (l *funcListener) OnTransition(owner any, oldMask, newMask int) {
	l.fn(owner, oldMask, newMask)
}

// Propagator sets bits on a target State whenever its source becomes dirtier.
type Propagator struct {
	target *State
	bits   int
}

func NewPropagator(target *State, bits int) *Propagator {
	if target == nil {
		violate(ErrNilListener)
	}
	target.flags.Validate(bits)
	return &Propagator{target: target, bits: bits}
}

func (p *Propagator) OnTransition(owner any, oldMask, newMask int) {
	p.target.Set(p.bits)
}
