package records

import (
	"cmp"
	"maps"
	"slices"
	"strings"
)

// LevelTable maps symbolic level names to numeric levels.
type LevelTable map[string]Level

// Definition is a fixed level table from which named keepers are built.
type Definition struct {
	table LevelTable
}

// Define copies table into a new Definition. Later changes to table do not
// affect the definition or keepers built from it.
func Define(table LevelTable) *Definition {
	return &Definition{table: maps.Clone(table)}
}

// Levels returns a copy of the level table.
func (d *Definition) Levels() LevelTable {
	return maps.Clone(d.table)
}

// Lookup returns the level registered under name.
func (d *Definition) Lookup(name string) (Level, bool) {
	level, ok := d.table[name]
	return level, ok
}

// Names lists the table entries ordered by level, then name.
func (d *Definition) Names() []string {
	names := slices.Collect(maps.Keys(d.table))
	slices.SortFunc(names, func(a, b string) int {
		if c := cmp.Compare(d.table[a], d.table[b]); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	return names
}

// New builds a NamedKeeper. defaultVerbosity is resolved once and used by every
// operation called with DefaultVerbosity; pass DefaultVerbosity to build a
// keeper without a default.
func (d *Definition) New(defaultVerbosity Verbosity, opts ...Option) (*NamedKeeper, error) {
	policy := levelPolicy{table: d.table}
	if !defaultVerbosity.IsDefault() {
		level, err := policy.resolve(defaultVerbosity)
		if err != nil {
			return nil, err
		}
		policy.fallback = level
		policy.hasDefault = true
	}

	k := &NamedKeeper{
		keeper: New(opts...),
		policy: policy,
	}
	k.at = newShortcuts(d, func(level Level) (*LevelWriter, error) {
		return k.keeper.At(level), nil
	})
	k.records = newShortcuts(d, k.keeper.GetRecords)
	return k, nil
}

// NamedKeeper is a Keeper whose verbosity arguments may be level names from a
// fixed table, raw levels, or absent. Every argument passes through the same
// normalization before reaching the underlying Keeper.
type NamedKeeper struct {
	keeper  *Keeper
	policy  levelPolicy
	at      *Shortcuts[*LevelWriter]
	records *Shortcuts[Records]
}

// Keeper returns the underlying numeric keeper.
func (k *NamedKeeper) Keeper() *Keeper {
	return k.keeper
}

// DefaultLevel returns the resolved default level, if one was configured.
func (k *NamedKeeper) DefaultLevel() (Level, bool) {
	return k.policy.fallback, k.policy.hasDefault
}

// Level resolves v against the keeper's table and default.
func (k *NamedKeeper) Level(v Verbosity) (Level, error) {
	return k.policy.resolve(v)
}

func (k *NamedKeeper) RecordValue(name string, value any, v Verbosity) error {
	level, err := k.policy.resolve(v)
	if err != nil {
		return err
	}
	k.keeper.RecordValue(name, value, level)
	return nil
}

func (k *NamedKeeper) RecordValues(values map[string]any, v Verbosity) error {
	level, err := k.policy.resolve(v)
	if err != nil {
		return err
	}
	k.keeper.RecordValues(values, level)
	return nil
}

func (k *NamedKeeper) RecordLazy(name string, fn LazyFunc, v Verbosity) error {
	level, err := k.policy.resolve(v)
	if err != nil {
		return err
	}
	k.keeper.RecordLazy(name, fn, level)
	return nil
}

func (k *NamedKeeper) RecordExpr(name, expression string, ctx RuleContext, v Verbosity) error {
	level, err := k.policy.resolve(v)
	if err != nil {
		return err
	}
	k.keeper.RecordExpr(name, expression, ctx, level)
	return nil
}

// At returns a writer bound to the resolved level.
func (k *NamedKeeper) At(v Verbosity) (*LevelWriter, error) {
	level, err := k.policy.resolve(v)
	if err != nil {
		return nil, err
	}
	return k.keeper.At(level), nil
}

// GetRecords resolves v and delegates to Keeper.GetRecords.
func (k *NamedKeeper) GetRecords(v Verbosity) (Records, error) {
	level, err := k.policy.resolve(v)
	if err != nil {
		return nil, err
	}
	return k.keeper.GetRecords(level)
}

// Trace resolves v and delegates to Keeper.Trace.
func (k *NamedKeeper) Trace(name string, v Verbosity) (Trace, error) {
	level, err := k.policy.resolve(v)
	if err != nil {
		return Trace{}, err
	}
	return k.keeper.Trace(name, level), nil
}

// AtShortcuts exposes one writer accessor per named level.
func (k *NamedKeeper) AtShortcuts() *Shortcuts[*LevelWriter] {
	return k.at
}

// RecordShortcuts exposes one retrieval per named level.
func (k *NamedKeeper) RecordShortcuts() *Shortcuts[Records] {
	return k.records
}
