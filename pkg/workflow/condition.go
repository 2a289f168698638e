package workflow

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mgx-dev/mgx/pkg/models"
)

// EvaluateCondition evaluates a condition expression against the
// execution context. Supported forms:
//
//	steps.build.output.passed              truthiness of a dotted path
//	!steps.build.output.passed             negation
//	steps.build.output.count == 3          equality against a literal
//	input.env != "production"              inequality against a literal
//
// Literals: single- or double-quoted strings, numbers, true/false, null.
// A missing path is falsy (and never equal to any literal except null).
func EvaluateCondition(expression string, context map[string]any) (bool, error) {
	expr := strings.TrimSpace(expression)
	if expr == "" {
		return false, models.NewFailure(models.ErrKindInvalidInput, "empty condition expression")
	}

	if op := findOperator(expr); op != "" {
		parts := strings.SplitN(expr, op, 2)
		left := strings.TrimSpace(parts[0])
		right := strings.TrimSpace(parts[1])
		if left == "" || right == "" {
			return false, models.NewFailure(models.ErrKindInvalidInput,
				"malformed condition %q", expression)
		}
		actual, found := lookupPath(context, left)
		expected, err := parseLiteral(right)
		if err != nil {
			return false, err
		}
		equal := found && literalEqual(actual, expected)
		if !found && expected == nil {
			equal = true
		}
		if op == "!=" {
			return !equal, nil
		}
		return equal, nil
	}

	negate := false
	for strings.HasPrefix(expr, "!") {
		negate = !negate
		expr = strings.TrimSpace(expr[1:])
	}
	value, found := lookupPath(context, expr)
	result := found && truthy(value)
	if negate {
		return !result, nil
	}
	return result, nil
}

func findOperator(expr string) string {
	if strings.Contains(expr, "!=") {
		return "!="
	}
	if strings.Contains(expr, "==") {
		return "=="
	}
	return ""
}

// lookupPath walks a dotted path through nested maps.
func lookupPath(context map[string]any, path string) (any, bool) {
	var current any = context
	for _, segment := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[segment]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

func parseLiteral(s string) (any, error) {
	switch {
	case s == "true":
		return true, nil
	case s == "false":
		return false, nil
	case s == "null":
		return nil, nil
	case len(s) >= 2 && (s[0] == '"' && s[len(s)-1] == '"' || s[0] == '\'' && s[len(s)-1] == '\''):
		return s[1 : len(s)-1], nil
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return n, nil
	}
	return nil, models.NewFailure(models.ErrKindInvalidInput, "unparseable literal %q in condition", s)
}

// literalEqual compares a context value against a parsed literal,
// normalizing numeric types so JSON-decoded ints and floats compare.
func literalEqual(actual, expected any) bool {
	if expected == nil {
		return actual == nil
	}
	if en, ok := expected.(float64); ok {
		switch an := actual.(type) {
		case float64:
			return an == en
		case int:
			return float64(an) == en
		case int64:
			return float64(an) == en
		}
		return false
	}
	return fmt.Sprintf("%v", actual) == fmt.Sprintf("%v", expected)
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	case int:
		return t != 0
	case int64:
		return t != 0
	case map[string]any:
		return len(t) > 0
	case []any:
		return len(t) > 0
	default:
		return true
	}
}
