package internal

import "github.com/pkg/errors"

// Runtime holds the dispatch bookkeeping of one goroutine.
// Listener dispatch is synchronous, so nested Set calls made from a listener
// run on the same Runtime and simply increase its depth.
type Runtime struct {
	// current nesting of listener dispatch
	depth int

	// deepest nesting seen since the last reset, for tracing
	peak int

	// 0 means unlimited
	maxDepth int
}

func NewRuntime() *Runtime {
	return &Runtime{}
}

// SetMaxDepth bounds the dispatch nesting. A cascade going deeper panics with ErrDispatchDepth.
func (r *Runtime) SetMaxDepth(n int) {
	if n < 0 {
		n = 0
	}
	r.maxDepth = n
}

func (r *Runtime) MaxDepth() int { return r.maxDepth }

func (r *Runtime) Depth() int { return r.depth }

// Peak returns the deepest dispatch seen since the last call and resets it.
func (r *Runtime) Peak() int {
	p := r.peak
	r.peak = r.depth
	return p
}

// CheckDepth panics with ErrDispatchDepth when one more dispatch would exceed the limit.
// States call it before changing their mask so a refused dispatch leaves them untouched.
func (r *Runtime) CheckDepth() {
	if r.maxDepth > 0 && r.depth >= r.maxDepth {
		violate(errors.Wrapf(ErrDispatchDepth, "limit %d, likely a listener cycle", r.maxDepth))
	}
}

// Dispatch runs fn one level deeper.
func (r *Runtime) Dispatch(fn func()) {
	r.CheckDepth()

	r.depth++
	if r.depth > r.peak {
		r.peak = r.depth
	}
	defer func() { r.depth-- }()

	fn()
}
