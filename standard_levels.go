package records

const (
	// Conventional levels for diagnostics. Lower numbers stay visible at
	// stricter thresholds.
	LevelCritical    Level = 1
	LevelImportant   Level = 10
	LevelUnimportant Level = 20
	LevelTrivial     Level = 30
)

// StandardLevels returns the critical → important → unimportant → trivial
// table. Each call returns a fresh map.
func StandardLevels() LevelTable {
	return LevelTable{
		"critical":    LevelCritical,
		"important":   LevelImportant,
		"unimportant": LevelUnimportant,
		"trivial":     LevelTrivial,
	}
}

// NewStandard builds a NamedKeeper over StandardLevels.
func NewStandard(defaultVerbosity Verbosity, opts ...Option) (*NamedKeeper, error) {
	return Define(StandardLevels()).New(defaultVerbosity, opts...)
}
