//go:build !js_eval

package records

// NewJSEvaluator is unavailable without the js_eval build tag and returns nil.
// Keepers fall back to the expr evaluator when given a nil evaluator.
func NewJSEvaluator(...EvaluatorOption) Evaluator {
	return nil
}

func jsEvaluatorAvailable() bool {
	return false
}

func isJSEvaluator(Evaluator) bool {
	return false
}
