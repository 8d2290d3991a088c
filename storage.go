package records

import (
	"maps"
	"slices"
)

// bucket holds the records of a single level. Values are either plain or
// *Lazy until retrieval resolves them.
type bucket map[string]any

// resolve evaluates the deferred value stored under name and caches the plain
// result back into the slot. Plain values are returned untouched. A failed
// computation leaves the slot deferred.
func (b bucket) resolve(name string) (any, error) {
	value := b[name]
	lazy, ok := value.(*Lazy)
	if !ok {
		return value, nil
	}
	resolved, err := lazy.Get()
	if err != nil {
		return nil, err
	}
	b[name] = resolved
	return resolved, nil
}

type storage map[Level]bucket

func (s storage) bucket(level Level) bucket {
	b, ok := s[level]
	if !ok {
		b = bucket{}
		s[level] = b
	}
	return b
}

// levelsUpTo returns the stored levels <= maxLevel, most critical first.
func (s storage) levelsUpTo(maxLevel Level) []Level {
	levels := make([]Level, 0, len(s))
	for level := range s {
		if level <= maxLevel {
			levels = append(levels, level)
		}
	}
	slices.Sort(levels)
	return levels
}

func (s storage) levels() []Level {
	return slices.Sorted(maps.Keys(s))
}

func (s storage) len() int {
	n := 0
	for _, b := range s {
		n += len(b)
	}
	return n
}
