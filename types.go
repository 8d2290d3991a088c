package records

import (
	"strconv"
	"time"

	"github.com/goliatone/go-records/pkg/activity"
)

// Level gates the visibility of a record. Lower values are more critical and
// stay visible at more restrictive thresholds.
type Level int

func (l Level) String() string {
	return strconv.Itoa(int(l))
}

// Records is the flat name to value view returned by retrieval. It never
// contains deferred values.
type Records map[string]any

// Recorder is the write side of a record store bound to an implicit level.
type Recorder interface {
	RecordValue(name string, value any)
	RecordValues(values map[string]any)
	RecordLazy(name string, fn LazyFunc)
}

// RecordRef identifies a single storage slot.
type RecordRef struct {
	Name  string `json:"name"`
	Level Level  `json:"level"`
}

// RuleContext carries inputs needed when evaluating an expression record.
type RuleContext struct {
	Snapshot any
	Now      *time.Time
	Args     map[string]any
	Metadata map[string]any
	Record   RecordRef
}

func (ctx RuleContext) withDefaultNow() RuleContext {
	if ctx.Now != nil {
		return ctx
	}
	now := time.Now()
	ctx.Now = &now
	return ctx
}

func (ctx RuleContext) timestamp() time.Time {
	ctx = ctx.withDefaultNow()
	return *ctx.Now
}

func (ctx RuleContext) withDefaultMaps() RuleContext {
	if ctx.Args == nil {
		ctx.Args = map[string]any{}
	}
	if ctx.Metadata == nil {
		ctx.Metadata = map[string]any{}
	}
	return ctx
}

func (ctx RuleContext) withDefaults() RuleContext {
	return ctx.withDefaultNow().withDefaultMaps()
}

func (ctx RuleContext) recordLabel() string {
	if ctx.Record.Name == "" {
		return "unknown"
	}
	return ctx.Record.Name + "@" + ctx.Record.Level.String()
}

func (ctx RuleContext) recordBinding() map[string]any {
	if ctx.Record.Name == "" {
		return nil
	}
	return map[string]any{
		"name":  ctx.Record.Name,
		"level": int(ctx.Record.Level),
	}
}

// Evaluator executes expressions against a rule context.
type Evaluator interface {
	Evaluate(ctx RuleContext, expr string) (any, error)
}

type Option func(*keeperConfig)

type keeperConfig struct {
	id             string
	evaluator      Evaluator
	programCache   ProgramCache
	functions      *FunctionRegistry
	logger         ResolveLogger
	activityHooks  activity.Hooks
	activityConfig activity.Config
	clock          func() time.Time
}

func applyOptions(opts []Option) keeperConfig {
	cfg := keeperConfig{
		activityConfig: activity.Config{Enabled: true},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

func (cfg keeperConfig) now() time.Time {
	if cfg.clock != nil {
		return cfg.clock()
	}
	return time.Now()
}

func (cfg keeperConfig) resolveLogger() ResolveLogger {
	if cfg.logger != nil {
		return cfg.logger
	}
	return noopResolveLogger{}
}
