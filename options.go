package records

import (
	"strings"
	"time"

	"github.com/goliatone/go-records/pkg/activity"
)

// WithKeeperID overrides the generated keeper identifier reported in activity
// events.
func WithKeeperID(id string) Option {
	return func(cfg *keeperConfig) {
		cfg.id = strings.TrimSpace(id)
	}
}

// WithEvaluator configures the evaluator used by expression records.
func WithEvaluator(e Evaluator) Option {
	return func(cfg *keeperConfig) {
		cfg.evaluator = e
	}
}

// WithClock replaces time.Now for resolution timing and event timestamps.
func WithClock(clock func() time.Time) Option {
	return func(cfg *keeperConfig) {
		cfg.clock = clock
	}
}

// WithActivityHooks attaches activity hooks notified on every deferred
// resolution. Nil entries are dropped.
func WithActivityHooks(hooks activity.Hooks) Option {
	normalized := cloneActivityHooks(hooks)
	return func(cfg *keeperConfig) {
		cfg.activityHooks = normalized
	}
}

// WithActivityConfig overrides the emitter configuration. Emission is enabled
// by default once hooks are present.
func WithActivityConfig(config activity.Config) Option {
	return func(cfg *keeperConfig) {
		cfg.activityConfig = config
	}
}

func cloneActivityHooks(hooks activity.Hooks) activity.Hooks {
	if len(hooks) == 0 {
		return nil
	}
	normalized := make([]activity.ActivityHook, 0, len(hooks))
	for _, hook := range hooks {
		if hook == nil {
			continue
		}
		normalized = append(normalized, hook)
	}
	if len(normalized) == 0 {
		return nil
	}
	return activity.Hooks(normalized)
}
