package records

import (
	"fmt"
)

// RecordExpr stores a deferred record computed by evaluating expression with
// the keeper's evaluator. ctx is captured as given; the expression only runs
// when a retrieval selects the record, so Snapshot may point at state that is
// still changing. The evaluator also sees a "record" binding holding the
// record's name and level.
func (k *Keeper) RecordExpr(name, expression string, ctx RuleContext, level Level) {
	evaluator := k.resolveEvaluator()
	engine := evaluatorEngineName(evaluator)
	ctx.Record = RecordRef{Name: name, Level: level}
	lazy := NewLazy(func() (any, error) {
		return k.evaluate(evaluator, engine, ctx, expression)
	})
	lazy.kind = "expr:" + engine
	k.RecordValue(name, lazy, level)
}

func (k *Keeper) evaluate(evaluator Evaluator, engine string, ctx RuleContext, expression string) (any, error) {
	if expression == "" {
		return nil, wrapEvaluationError(engine, expression, ctx.recordLabel(), fmt.Errorf("expression must not be empty"))
	}
	if ctx.Now == nil {
		now := k.cfg.now()
		ctx.Now = &now
	}
	ctx = ctx.withDefaultMaps()
	value, err := evaluator.Evaluate(ctx, expression)
	if err != nil {
		return nil, wrapEvaluationError(engine, expression, ctx.recordLabel(), err)
	}
	return value, nil
}

func (k *Keeper) resolveEvaluator() Evaluator {
	if k.cfg.evaluator != nil {
		return k.cfg.evaluator
	}
	k.cfg.evaluator = NewExprEvaluator(
		EvaluatorWithProgramCache(k.cfg.programCache),
		EvaluatorWithFunctionRegistry(k.cfg.functions),
	)
	return k.cfg.evaluator
}

func evaluatorEngineName(e Evaluator) string {
	switch e.(type) {
	case nil:
		return "unknown"
	case *exprEvaluator:
		return "expr"
	case *celEvaluator:
		return "cel"
	default:
		if jsEvaluatorAvailable() && isJSEvaluator(e) {
			return "js"
		}
		return "custom"
	}
}
