package verify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExpectation(t *testing.T) {
	tests := []struct {
		expr  string
		op    string
		value float64
	}{
		{">0.80", ">", 0.80},
		{">= 0.95", ">=", 0.95},
		{"<0.2", "<", 0.2},
		{"<= 0.5", "<=", 0.5},
		{"=1.0", "=", 1.0},
		{"== 0.75", "==", 0.75},
		{"  >  0.80  ", ">", 0.80},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			exp, err := ParseExpectation(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.op, exp.Op)
			assert.Equal(t, tt.value, exp.Value)
		})
	}
}

func TestParseExpectationUnknownOperator(t *testing.T) {
	for _, expr := range []string{"~0.5", "!= 0.5", "0.5", "", "about 0.5"} {
		t.Run(expr, func(t *testing.T) {
			_, err := ParseExpectation(expr)
			require.Error(t, err)

			var opErr *UnknownOperatorError
			assert.True(t, errors.As(err, &opErr), "expected UnknownOperatorError, got %v", err)
		})
	}
}

func TestParseExpectationBadNumber(t *testing.T) {
	_, err := ParseExpectation("> high")
	require.Error(t, err)

	var opErr *UnknownOperatorError
	assert.False(t, errors.As(err, &opErr), "bad number is not an operator problem")
}

func TestExpectationEvaluate(t *testing.T) {
	tests := []struct {
		expr     string
		score    float64
		expected bool
	}{
		{">0.80", 0.81, true},
		{">0.80", 0.80, false},
		{">=0.80", 0.80, true},
		{"<0.2", 0.19, true},
		{"<0.2", 0.2, false},
		{"<=0.2", 0.2, true},
		// equality carries a 0.001 absolute tolerance
		{"==1.0", 0.9995, true},
		{"==1.0", 0.998, false},
		{"=0.5", 0.5005, true},
	}

	for _, tt := range tests {
		exp, err := ParseExpectation(tt.expr)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, exp.Evaluate(tt.score),
			"%s against %f", tt.expr, tt.score)
	}
}

func TestExpectationSatisfiedByAbsence(t *testing.T) {
	absencePasses := map[string]bool{
		"<0.5": true, "<=0.5": true,
		">0.5": false, ">=0.5": false, "=0.5": false, "==0.5": false,
	}

	for expr, expected := range absencePasses {
		exp, err := ParseExpectation(expr)
		require.NoError(t, err)
		assert.Equal(t, expected, exp.SatisfiedByAbsence(), expr)
	}
}
