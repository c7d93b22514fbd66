package verify

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// equalityTolerance is the absolute difference allowed by the = and ==
// operators. Part of the fixture contract.
const equalityTolerance = 0.001

// expectationOperators in match order; two-character operators first so
// ">=" is not parsed as ">" followed by a garbage number.
var expectationOperators = []string{">=", "<=", "==", ">", "<", "="}

// UnknownOperatorError reports a threshold expression whose operator is not
// in the supported set.
type UnknownOperatorError struct {
	Expr string
}

func (e *UnknownOperatorError) Error() string {
	return fmt.Sprintf("unknown operator in score expression %q (supported: >, >=, <, <=, =, ==)", e.Expr)
}

// Expectation is a parsed threshold expression such as "> 0.80"
type Expectation struct {
	Op    string
	Value float64
}

// ParseExpectation parses an expected_score expression. Malformed operators
// fail fast with UnknownOperatorError; malformed numbers fail with a
// descriptive error.
func ParseExpectation(expr string) (Expectation, error) {
	trimmed := strings.TrimSpace(expr)
	if trimmed == "" {
		return Expectation{}, &UnknownOperatorError{Expr: expr}
	}

	for _, op := range expectationOperators {
		rest, ok := strings.CutPrefix(trimmed, op)
		if !ok {
			continue
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(rest), 64)
		if err != nil {
			return Expectation{}, fmt.Errorf("invalid threshold in score expression %q: %w", expr, err)
		}
		return Expectation{Op: op, Value: value}, nil
	}

	return Expectation{}, &UnknownOperatorError{Expr: expr}
}

// Evaluate reports whether a found score satisfies the expectation
func (e Expectation) Evaluate(score float64) bool {
	switch e.Op {
	case ">":
		return score > e.Value
	case ">=":
		return score >= e.Value
	case "<":
		return score < e.Value
	case "<=":
		return score <= e.Value
	case "=", "==":
		return math.Abs(score-e.Value) <= equalityTolerance
	default:
		return false
	}
}

// SatisfiedByAbsence reports whether a missing expected match still passes.
// Only the strictly-low operators qualify: a column expected to score below
// some bound trivially does so when it never reaches the top 5.
func (e Expectation) SatisfiedByAbsence() bool {
	return e.Op == "<" || e.Op == "<="
}

// String returns the canonical form of the expectation
func (e Expectation) String() string {
	return fmt.Sprintf("%s %.3f", e.Op, e.Value)
}
