package records

// LevelWriter is a write-only view of a Keeper bound to one level. It holds no
// records of its own.
type LevelWriter struct {
	keeper *Keeper
	level  Level
}

var _ Recorder = (*LevelWriter)(nil)

// Level returns the bound level.
func (w *LevelWriter) Level() Level {
	return w.level
}

// RecordValue forwards to Keeper.RecordValue at the bound level.
func (w *LevelWriter) RecordValue(name string, value any) {
	w.keeper.RecordValue(name, value, w.level)
}

// RecordValues forwards to Keeper.RecordValues at the bound level.
func (w *LevelWriter) RecordValues(values map[string]any) {
	w.keeper.RecordValues(values, w.level)
}

// RecordLazy forwards to Keeper.RecordLazy at the bound level.
func (w *LevelWriter) RecordLazy(name string, fn LazyFunc) {
	w.keeper.RecordLazy(name, fn, w.level)
}

// RecordExpr forwards to Keeper.RecordExpr at the bound level.
func (w *LevelWriter) RecordExpr(name, expression string, ctx RuleContext) {
	w.keeper.RecordExpr(name, expression, ctx, w.level)
}
