package records

// ProgramCache stores compiled expression programs keyed by expression strings.
type ProgramCache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
}

// WithProgramCache registers a program cache shared by expression records.
func WithProgramCache(cache ProgramCache) Option {
	return func(cfg *keeperConfig) {
		cfg.programCache = cache
	}
}

// MapProgramCache is an unbounded ProgramCache backed by a plain map. Like the
// keeper itself it is not safe for concurrent use.
type MapProgramCache map[string]any

// Get implements ProgramCache.
func (c MapProgramCache) Get(key string) (any, bool) {
	value, ok := c[key]
	return value, ok
}

// Set implements ProgramCache.
func (c MapProgramCache) Set(key string, value any) {
	c[key] = value
}
