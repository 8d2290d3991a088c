package records

// Shortcuts holds one pre-bound, zero-argument call per named level of a
// table. The set is fixed when the owning NamedKeeper is constructed.
type Shortcuts[R any] struct {
	names []string
	calls map[string]func() (R, error)
}

func newShortcuts[R any](d *Definition, call func(Level) (R, error)) *Shortcuts[R] {
	s := &Shortcuts[R]{
		names: d.Names(),
		calls: make(map[string]func() (R, error), len(d.table)),
	}
	for name, level := range d.table {
		level := level
		s.calls[name] = func() (R, error) {
			return call(level)
		}
	}
	return s
}

// Names lists the shortcut names ordered by level, then name.
func (s *Shortcuts[R]) Names() []string {
	return append([]string(nil), s.names...)
}

// Get returns the call bound to name.
func (s *Shortcuts[R]) Get(name string) (func() (R, error), bool) {
	fn, ok := s.calls[name]
	return fn, ok
}

// Call invokes the call bound to name. Names outside the table fail with
// ErrUnknownLevel.
func (s *Shortcuts[R]) Call(name string) (R, error) {
	fn, ok := s.calls[name]
	if !ok {
		var zero R
		return zero, unknownLevel(name)
	}
	return fn()
}
