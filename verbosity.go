package records

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type verbosityKind uint8

const (
	verbosityDefault verbosityKind = iota
	verbosityNumeric
	verbosityNamed
)

// Verbosity is a verbosity argument for NamedKeeper operations: a raw level, a
// symbolic name from the keeper's table, or absent (the zero value) to use
// the keeper default.
type Verbosity struct {
	kind  verbosityKind
	level Level
	name  string
}

// DefaultVerbosity selects the keeper's default level.
var DefaultVerbosity = Verbosity{}

// Numeric returns a verbosity used as-is.
func Numeric(level Level) Verbosity {
	return Verbosity{kind: verbosityNumeric, level: level}
}

// Named returns a verbosity looked up in the keeper's level table.
func Named(name string) Verbosity {
	return Verbosity{kind: verbosityNamed, name: name}
}

// ParseVerbosity reads integers as numeric verbosities, blank input as
// DefaultVerbosity and anything else as a level name.
func ParseVerbosity(value string) Verbosity {
	value = strings.TrimSpace(value)
	if value == "" {
		return DefaultVerbosity
	}
	if n, err := strconv.Atoi(value); err == nil {
		return Numeric(Level(n))
	}
	return Named(value)
}

// IsDefault reports whether v defers to the keeper default.
func (v Verbosity) IsDefault() bool {
	return v.kind == verbosityDefault
}

func (v Verbosity) String() string {
	switch v.kind {
	case verbosityNumeric:
		return v.level.String()
	case verbosityNamed:
		return v.name
	default:
		return "default"
	}
}

// UnmarshalYAML accepts scalars in the ParseVerbosity format.
func (v *Verbosity) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("records: verbosity must be a scalar, line %d", node.Line)
	}
	*v = ParseVerbosity(node.Value)
	return nil
}

// levelPolicy normalizes every verbosity argument before it reaches the
// storage engine.
type levelPolicy struct {
	table      LevelTable
	fallback   Level
	hasDefault bool
}

func (p levelPolicy) resolve(v Verbosity) (Level, error) {
	switch v.kind {
	case verbosityNumeric:
		return v.level, nil
	case verbosityNamed:
		level, ok := p.table[v.name]
		if !ok {
			return 0, unknownLevel(v.name)
		}
		return level, nil
	default:
		if !p.hasDefault {
			return 0, ErrNoDefaultVerbosity
		}
		return p.fallback, nil
	}
}
