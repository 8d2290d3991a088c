package records

import (
	"context"
	"maps"
	"slices"

	"github.com/goliatone/go-records/pkg/activity"
	"github.com/google/uuid"
)

// Keeper stores named records bucketed by verbosity level and returns a
// filtered, flattened view on demand.
//
// A Keeper is not safe for concurrent use. GetRecords mutates storage when it
// resolves deferred values, so concurrent callers must serialize all access.
type Keeper struct {
	id      string
	cfg     keeperConfig
	records storage
	emitter *activity.Emitter
}

// New constructs an empty Keeper.
func New(opts ...Option) *Keeper {
	cfg := applyOptions(opts)
	id := cfg.id
	if id == "" {
		id = uuid.NewString()
	}
	return &Keeper{
		id:      id,
		cfg:     cfg,
		records: storage{},
		emitter: activity.NewEmitter(cfg.activityHooks, cfg.activityConfig),
	}
}

// ID returns the keeper identifier reported in activity events.
func (k *Keeper) ID() string {
	return k.id
}

// RecordValue stores value under name at level, replacing any record with the
// same name at that level. A *Lazy value is stored as a deferred record.
func (k *Keeper) RecordValue(name string, value any, level Level) {
	k.records.bucket(level)[name] = value
}

// RecordValues merges values into level. Names already present at level and
// absent from values are preserved.
func (k *Keeper) RecordValues(values map[string]any, level Level) {
	maps.Copy(k.records.bucket(level), values)
}

// RecordLazy stores fn as a deferred record. fn runs only when a retrieval at a
// threshold >= level selects this record.
func (k *Keeper) RecordLazy(name string, fn LazyFunc, level Level) {
	k.RecordValue(name, NewLazy(fn), level)
}

// At returns a writer bound to level.
func (k *Keeper) At(level Level) *LevelWriter {
	return &LevelWriter{keeper: k, level: level}
}

// GetRecords returns every record visible at verbosity <= maxLevel. When the same
// name exists at several eligible levels, the highest of them wins.
//
// Deferred records selected by the merge are resolved and their results are
// written back into storage, so later retrievals never run the computation
// again. Records above maxLevel are not touched. If a computation fails, the
// returned error is a *ResolveError and the slot stays deferred.
func (k *Keeper) GetRecords(maxLevel Level) (Records, error) {
	merged := map[string]RecordRef{}
	for _, level := range k.records.levelsUpTo(maxLevel) {
		for name := range k.records[level] {
			merged[name] = RecordRef{Name: name, Level: level}
		}
	}

	out := make(Records, len(merged))
	for _, name := range slices.Sorted(maps.Keys(merged)) {
		ref := merged[name]
		value, err := k.resolve(ref)
		if err != nil {
			return nil, err
		}
		out[name] = value
	}
	return out, nil
}

// Levels returns the levels holding at least one record, most critical first.
func (k *Keeper) Levels() []Level {
	return k.records.levels()
}

// Len returns the number of stored slots across all levels.
func (k *Keeper) Len() int {
	return k.records.len()
}

func (k *Keeper) resolve(ref RecordRef) (any, error) {
	b := k.records[ref.Level]
	lazy, ok := b[ref.Name].(*Lazy)
	if !ok {
		return b[ref.Name], nil
	}

	kind := lazy.kindLabel()
	start := k.cfg.now()
	value, err := b.resolve(ref.Name)
	event := ResolveEvent{
		Name:     ref.Name,
		Level:    ref.Level,
		Kind:     kind,
		Duration: k.cfg.now().Sub(start),
		Err:      err,
	}
	k.cfg.resolveLogger().LogResolve(event)
	k.emitResolve(event)
	if err != nil {
		return nil, &ResolveError{Name: ref.Name, Level: ref.Level, Err: err}
	}
	return value, nil
}

// emitResolve forwards a resolution to the activity hooks. Hook failures are
// not surfaced to the retrieval caller.
func (k *Keeper) emitResolve(event ResolveEvent) {
	if !k.emitter.Enabled() {
		return
	}
	_ = k.emitter.Emit(context.Background(), activity.BuildResolveEvent(activity.ResolveInput{
		KeeperID:   k.id,
		Record:     event.Name,
		Level:      int(event.Level),
		Kind:       event.Kind,
		Duration:   event.Duration,
		Err:        event.Err,
		OccurredAt: k.cfg.now(),
	}))
}
