package records

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrFunctionNotRegistered indicates an expression called an unknown function.
	ErrFunctionNotRegistered = errors.New("records: function not registered")
	// ErrDuplicateFunction indicates Register received a name already in use.
	ErrDuplicateFunction = errors.New("records: function already registered")
)

// Function is a helper callable from record expressions.
type Function func(args ...any) (any, error)

// FunctionRegistry stores expression helpers keyed by case-insensitive name.
type FunctionRegistry struct {
	functions map[string]Function
}

// NewFunctionRegistry constructs an empty registry.
func NewFunctionRegistry() *FunctionRegistry {
	return &FunctionRegistry{functions: map[string]Function{}}
}

// Register stores fn under name.
func (r *FunctionRegistry) Register(name string, fn Function) error {
	if fn == nil {
		return fmt.Errorf("records: function %q is nil", name)
	}
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return fmt.Errorf("records: function name must not be empty")
	}
	if r.functions == nil {
		r.functions = map[string]Function{}
	}
	if _, exists := r.functions[key]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateFunction, name)
	}
	r.functions[key] = fn
	return nil
}

// Clone returns a shallow copy of the registry.
func (r *FunctionRegistry) Clone() *FunctionRegistry {
	if r == nil {
		return nil
	}
	clone := &FunctionRegistry{functions: make(map[string]Function, len(r.functions))}
	for name, fn := range r.functions {
		clone.functions[name] = fn
	}
	return clone
}

// Call executes the function registered for name.
func (r *FunctionRegistry) Call(name string, args ...any) (any, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: %s", ErrFunctionNotRegistered, name)
	}
	fn := r.functions[strings.ToLower(name)]
	if fn == nil {
		return nil, fmt.Errorf("%w: %s", ErrFunctionNotRegistered, name)
	}
	return fn(args...)
}

// Names returns registered function names sorted alphabetically.
func (r *FunctionRegistry) Names() []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.functions))
	for name := range r.functions {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// WithFunctionRegistry exposes registry to the keeper's default evaluator.
func WithFunctionRegistry(registry *FunctionRegistry) Option {
	return func(cfg *keeperConfig) {
		if registry == nil {
			return
		}
		cfg.functions = registry.Clone()
	}
}

// WithCustomFunction registers fn under name for the keeper's default
// evaluator. Duplicate names keep the first registration.
func WithCustomFunction(name string, fn Function) Option {
	return func(cfg *keeperConfig) {
		if cfg.functions == nil {
			cfg.functions = NewFunctionRegistry()
		}
		_ = cfg.functions.Register(name, fn)
	}
}
