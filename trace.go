package records

import (
	"encoding/json"
	"slices"
)

// Trace reports where a record name is stored at or below a verbosity
// threshold. Producing a trace never resolves deferred values.
type Trace struct {
	Name     string       `json:"name"`
	MaxLevel Level        `json:"max_level"`
	Found    bool         `json:"found"`
	Level    Level        `json:"level,omitempty"`
	Layers   []Provenance `json:"layers"`
}

// Provenance describes one level holding the traced name. Value is only set
// for plain slots.
type Provenance struct {
	Level   Level `json:"level"`
	Winner  bool  `json:"winner"`
	Pending bool  `json:"pending"`
	Value   any   `json:"value,omitempty"`
}

// Trace lists every level <= maxLevel that stores name, most verbose (winning)
// level first.
func (k *Keeper) Trace(name string, maxLevel Level) Trace {
	trace := Trace{Name: name, MaxLevel: maxLevel, Layers: []Provenance{}}
	levels := k.records.levelsUpTo(maxLevel)
	slices.Reverse(levels)
	for _, level := range levels {
		value, ok := k.records[level][name]
		if !ok {
			continue
		}
		entry := Provenance{Level: level, Winner: !trace.Found}
		if _, pending := value.(*Lazy); pending {
			entry.Pending = true
		} else {
			entry.Value = value
		}
		if !trace.Found {
			trace.Found = true
			trace.Level = level
		}
		trace.Layers = append(trace.Layers, entry)
	}
	return trace
}

// ToJSON serialises the trace for logging or transport helpers.
func (t Trace) ToJSON() ([]byte, error) {
	type alias Trace
	return json.Marshal(alias(t))
}

// TraceFromJSON deserialises a payload produced by ToJSON.
func TraceFromJSON(payload []byte) (Trace, error) {
	type alias Trace
	var trace alias
	if err := json.Unmarshal(payload, &trace); err != nil {
		return Trace{}, err
	}
	return Trace(trace), nil
}
