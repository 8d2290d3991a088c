package records

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownLevel indicates a symbolic verbosity missing from the level table.
	ErrUnknownLevel = errors.New("records: unknown verbosity level")
	// ErrNoDefaultVerbosity indicates an absent verbosity on a keeper built
	// without a default.
	ErrNoDefaultVerbosity = errors.New("records: no default verbosity configured")
)

// ResolveError reports a deferred record whose computation failed during
// retrieval. The slot stays unresolved.
type ResolveError struct {
	Name  string
	Level Level
	Err   error
}

func (e *ResolveError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("records: resolve %q at level %d: %v", e.Name, e.Level, e.Err)
}

func (e *ResolveError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// EvaluationError captures evaluator metadata alongside the originating error.
type EvaluationError struct {
	Engine string
	Expr   string
	Record string
	Err    error
}

func (e *EvaluationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("records: %s evaluator %s record=%s: %v", e.Engine, describeExpression(e.Expr), e.Record, e.Err)
}

func (e *EvaluationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func describeExpression(expr string) string {
	if expr == "" {
		return "expr=<empty>"
	}
	return fmt.Sprintf("expr=%q", expr)
}

func wrapEvaluatorError(engine string, err error) error {
	if err == nil {
		return nil
	}

	var evalErr *EvaluationError
	if errors.As(err, &evalErr) {
		return err
	}

	if strings.HasPrefix(err.Error(), "records:") {
		return err
	}
	return fmt.Errorf("records: %s evaluator: %w", engine, err)
}

func wrapEvaluationError(engine, expr, record string, err error) error {
	if err == nil {
		return nil
	}

	var evalErr *EvaluationError
	if errors.As(err, &evalErr) {
		if evalErr.Engine == "" {
			evalErr.Engine = engine
		}
		if evalErr.Expr == "" {
			evalErr.Expr = expr
		}
		if evalErr.Record == "" {
			evalErr.Record = record
		}
		return evalErr
	}

	return &EvaluationError{
		Engine: engine,
		Expr:   expr,
		Record: record,
		Err:    err,
	}
}

func unknownLevel(name string) error {
	return fmt.Errorf("%w: %s", ErrUnknownLevel, name)
}
