package records

import "errors"

// ErrNilComputation is returned when a Lazy has no computation to run.
var ErrNilComputation = errors.New("records: lazy computation is nil")

// LazyFunc computes a deferred record value.
type LazyFunc func() (any, error)

// Supplier adapts a computation that cannot fail into a LazyFunc.
func Supplier(fn func() any) LazyFunc {
	if fn == nil {
		return nil
	}
	return func() (any, error) {
		return fn(), nil
	}
}

// Lazy wraps a computation that runs at most once, on first demand. Failed
// computations are not cached; the next Get runs fn again.
type Lazy struct {
	fn       LazyFunc
	kind     string
	resolved bool
	value    any
}

// NewLazy wraps fn without invoking it.
func NewLazy(fn LazyFunc) *Lazy {
	return &Lazy{fn: fn}
}

// Get returns the computed value, invoking the computation only if no previous
// call succeeded.
func (l *Lazy) Get() (any, error) {
	if l.resolved {
		return l.value, nil
	}
	if l.fn == nil {
		return nil, ErrNilComputation
	}
	value, err := l.fn()
	if err != nil {
		return nil, err
	}
	l.value = value
	l.resolved = true
	l.fn = nil
	return value, nil
}

// Resolved reports whether Get has already produced a value.
func (l *Lazy) Resolved() bool {
	return l != nil && l.resolved
}

func (l *Lazy) kindLabel() string {
	if l.kind == "" {
		return "lazy"
	}
	return l.kind
}
