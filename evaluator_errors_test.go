package records

import (
	"errors"
	"testing"
)

func TestWrapEvaluationErrorCreatesMetadata(t *testing.T) {
	base := errors.New("boom")
	err := wrapEvaluationError("expr", "flag && missing", "latency@10", base)

	var evalErr *EvaluationError
	if !errors.As(err, &evalErr) {
		t.Fatalf("expected EvaluationError, got %T", err)
	}
	if evalErr.Engine != "expr" {
		t.Fatalf("expected engine expr, got %q", evalErr.Engine)
	}
	if evalErr.Expr != "flag && missing" {
		t.Fatalf("expected expression metadata, got %q", evalErr.Expr)
	}
	if evalErr.Record != "latency@10" {
		t.Fatalf("expected record metadata, got %q", evalErr.Record)
	}
	if !errors.Is(evalErr.Err, base) {
		t.Fatalf("wrapped error should unwrap to base error")
	}
}

func TestWrapEvaluationErrorAugmentsExisting(t *testing.T) {
	base := errors.New("compile failure")
	existing := &EvaluationError{
		Engine: "expr",
		Err:    base,
	}

	err := wrapEvaluationError("cel", "rule", "heap@20", existing)
	if !errors.Is(err, base) {
		t.Fatalf("expected base error to unwrap")
	}
	if existing.Engine != "expr" {
		t.Fatalf("existing engine should not be overwritten, got %q", existing.Engine)
	}
	if existing.Expr != "rule" {
		t.Fatalf("expression should be filled, got %q", existing.Expr)
	}
	if existing.Record != "heap@20" {
		t.Fatalf("record should be filled, got %q", existing.Record)
	}
}

func TestWrapEvaluatorErrorPrefixes(t *testing.T) {
	if wrapEvaluatorError("expr", nil) != nil {
		t.Fatalf("expected nil for nil error")
	}
	err := wrapEvaluatorError("cel", errors.New("bad"))
	if err.Error() != "records: cel evaluator: bad" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	prefixed := errors.New("records: already wrapped")
	if wrapEvaluatorError("cel", prefixed) != prefixed {
		t.Fatalf("expected prefixed error to pass through")
	}
}

func TestResolveErrorUnwraps(t *testing.T) {
	base := errors.New("pprof unavailable")
	err := error(&ResolveError{Name: "heap", Level: 20, Err: base})
	if !errors.Is(err, base) {
		t.Fatalf("expected ResolveError to unwrap to cause")
	}
	if err.Error() != `records: resolve "heap" at level 20: pprof unavailable` {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestUnknownLevelWrapsSentinel(t *testing.T) {
	err := unknownLevel("loud")
	if !errors.Is(err, ErrUnknownLevel) {
		t.Fatalf("expected ErrUnknownLevel, got %v", err)
	}
	if err.Error() != "records: unknown verbosity level: loud" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}
