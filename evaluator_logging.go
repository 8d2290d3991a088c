package records

import "time"

// ResolveEvent describes one attempt to resolve a deferred record.
type ResolveEvent struct {
	Name     string
	Level    Level
	Kind     string
	Duration time.Duration
	Err      error
}

// ResolveLogger records resolution events.
type ResolveLogger interface {
	LogResolve(ResolveEvent)
}

// ResolveLoggerFunc adapts a function to ResolveLogger.
type ResolveLoggerFunc func(ResolveEvent)

// LogResolve implements ResolveLogger.
func (f ResolveLoggerFunc) LogResolve(event ResolveEvent) {
	if f != nil {
		f(event)
	}
}

type noopResolveLogger struct{}

func (noopResolveLogger) LogResolve(ResolveEvent) {}

// WithResolveLogger attaches a resolve logger to the keeper.
func WithResolveLogger(logger ResolveLogger) Option {
	return func(cfg *keeperConfig) {
		if logger == nil {
			cfg.logger = noopResolveLogger{}
			return
		}
		cfg.logger = logger
	}
}
