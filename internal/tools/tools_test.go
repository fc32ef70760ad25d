package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/averycrespi/polycalc/internal/results"
)

func TestParsePolynomialTool(t *testing.T) {
	tests := []struct {
		name           string
		arguments      map[string]interface{}
		expectedText   string
		expectedSource string
		expectedName   string
		errorContains  string
	}{
		{
			name:           "Literal",
			arguments:      map[string]interface{}{"expression": "2 + x^2 - x^2 + 3x"},
			expectedText:   "3x+2",
			expectedSource: "literal",
		},
		{
			name:           "Variable",
			arguments:      map[string]interface{}{"expression": "sq"},
			expectedText:   "x^2",
			expectedSource: "variable",
			expectedName:   "sq",
		},
		{
			name:           "Assignment",
			arguments:      map[string]interface{}{"expression": "cube = x^3"},
			expectedText:   "x^3",
			expectedSource: "assigned",
			expectedName:   "cube",
		},
		{
			name:          "Missing expression",
			arguments:     map[string]interface{}{},
			errorContains: "expression parameter is required",
		},
		{
			name:          "Malformed expression",
			arguments:     map[string]interface{}{"expression": "x^"},
			errorContains: "Invalid expression",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool := NewParsePolynomialTool(newTestSession(t, map[string]string{"sq": "x^2"}), zaptest.NewLogger(t))

			text, isError := callTool(t, tool, tt.arguments)
			if tt.errorContains != "" {
				assert.True(t, isError)
				assert.Contains(t, text, tt.errorContains)
				return
			}

			require.False(t, isError, text)
			result := decodeResult[results.ParsePolynomialToolResult](t, text)
			assert.Equal(t, tt.expectedText, result.Result.Polynomial.Text)
			assert.Equal(t, tt.expectedSource, result.Result.Source)
			assert.Equal(t, tt.expectedName, result.Result.Name)
			assert.Equal(t, tt.arguments["expression"], result.Arguments.Expression)
		})
	}
}

func TestParsePolynomialTool_AssignmentIsStored(t *testing.T) {
	sess := newTestSession(t, nil)
	logger := zaptest.NewLogger(t)

	_, isError := callTool(t, NewParsePolynomialTool(sess, logger), map[string]interface{}{"expression": "p = 2x"})
	require.False(t, isError)

	text, isError := callTool(t, NewDifferentiatePolynomialTool(sess, logger), map[string]interface{}{"polynomial": "p"})
	require.False(t, isError, text)
	result := decodeResult[results.DifferentiatePolynomialToolResult](t, text)
	assert.Equal(t, "2", result.Result.Text)
}

func TestBinaryOperationTools(t *testing.T) {
	vars := map[string]string{"a": "x + 1", "b": "x - 1"}

	tests := []struct {
		name     string
		newTool  func(t *testing.T) Tool
		left     string
		right    string
		expected results.PolynomialResult
	}{
		{
			name: "Add",
			newTool: func(t *testing.T) Tool {
				return NewAddPolynomialsTool(newTestSession(t, vars), zaptest.NewLogger(t))
			},
			left:  "a",
			right: "b",
			expected: results.PolynomialResult{
				Text:   "2x",
				Degree: 1,
				Terms:  []results.TermResult{{Coefficient: 2, Degree: 1}},
			},
		},
		{
			name: "Add to zero",
			newTool: func(t *testing.T) Tool {
				return NewAddPolynomialsTool(newTestSession(t, vars), zaptest.NewLogger(t))
			},
			left:  "x^2",
			right: "-x^2",
			expected: results.PolynomialResult{
				Text:   "0",
				Degree: -1,
				Terms:  []results.TermResult{},
			},
		},
		{
			name: "Subtract",
			newTool: func(t *testing.T) Tool {
				return NewSubtractPolynomialsTool(newTestSession(t, vars), zaptest.NewLogger(t))
			},
			left:  "a",
			right: "b",
			expected: results.PolynomialResult{
				Text:   "2",
				Degree: 0,
				Terms:  []results.TermResult{{Coefficient: 2, Degree: 0}},
			},
		},
		{
			name: "Multiply",
			newTool: func(t *testing.T) Tool {
				return NewMultiplyPolynomialsTool(newTestSession(t, vars), zaptest.NewLogger(t))
			},
			left:  "a",
			right: "b",
			expected: results.PolynomialResult{
				Text:   "x^2-1",
				Degree: 2,
				Terms: []results.TermResult{
					{Coefficient: 1, Degree: 2},
					{Coefficient: -1, Degree: 0},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, isError := callTool(t, tt.newTool(t), map[string]interface{}{"left": tt.left, "right": tt.right})
			require.False(t, isError, text)

			result := decodeResult[results.BinaryOperationToolResult](t, text)
			assert.Equal(t, tt.expected, result.Result)
			assert.Equal(t, results.BinaryOperationToolArgs{Left: tt.left, Right: tt.right}, result.Arguments)
			assert.Equal(t, tt.left, result.Left.Input)
			assert.Equal(t, tt.right, result.Right.Input)
		})
	}
}

func TestBinaryOperationTool_Errors(t *testing.T) {
	tests := []struct {
		name          string
		arguments     map[string]interface{}
		errorContains string
	}{
		{name: "Missing left", arguments: map[string]interface{}{"right": "x"}, errorContains: "left parameter is required"},
		{name: "Missing right", arguments: map[string]interface{}{"left": "x"}, errorContains: "right parameter is required"},
		{name: "Unknown variable", arguments: map[string]interface{}{"left": "nope", "right": "x"}, errorContains: "Invalid left"},
		{name: "Malformed right", arguments: map[string]interface{}{"left": "x", "right": "x^-2"}, errorContains: "negative exponent"},
		{name: "Assignment to invalid name", arguments: map[string]interface{}{"left": "bad1 = x", "right": "x"}, errorContains: "Failed to resolve left"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool := NewAddPolynomialsTool(newTestSession(t, nil), zaptest.NewLogger(t))

			text, isError := callTool(t, tool, tt.arguments)
			assert.True(t, isError)
			assert.Contains(t, text, tt.errorContains)
		})
	}
}

func TestMultiplyPolynomialsTool_DegreeOverflow(t *testing.T) {
	sess := newTestSession(t, map[string]string{"big": "x^2147483647 + x"})
	tool := NewMultiplyPolynomialsTool(sess, zaptest.NewLogger(t))

	text, isError := callTool(t, tool, map[string]interface{}{"left": "big", "right": "x + 1"})
	assert.True(t, isError)
	assert.Contains(t, text, "degree 2147483648 exceeds the maximum of 2147483647")

	text, isError = callTool(t, tool, map[string]interface{}{"left": "x^9223372036854775807", "right": "x"})
	assert.True(t, isError)
	assert.Contains(t, text, "exponent out of range")
}

func TestScalePolynomialTool(t *testing.T) {
	tests := []struct {
		name          string
		arguments     map[string]interface{}
		expectedText  string
		errorContains string
	}{
		{
			name:         "Numeric factor",
			arguments:    map[string]interface{}{"factor": float64(3), "polynomial": "x^2 - 1"},
			expectedText: "3x^2-3",
		},
		{
			name:         "String factor",
			arguments:    map[string]interface{}{"factor": "-0.5", "polynomial": "2x"},
			expectedText: "-x",
		},
		{
			name:         "Zero factor",
			arguments:    map[string]interface{}{"factor": 0, "polynomial": "x^5 + x"},
			expectedText: "0",
		},
		{
			name:          "Bad factor",
			arguments:     map[string]interface{}{"factor": "lots", "polynomial": "x"},
			errorContains: "factor must be a number",
		},
		{
			name:          "Missing polynomial",
			arguments:     map[string]interface{}{"factor": 2},
			errorContains: "polynomial parameter is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool := NewScalePolynomialTool(newTestSession(t, nil), zaptest.NewLogger(t))

			text, isError := callTool(t, tool, tt.arguments)
			if tt.errorContains != "" {
				assert.True(t, isError)
				assert.Contains(t, text, tt.errorContains)
				return
			}

			require.False(t, isError, text)
			result := decodeResult[results.ScalePolynomialToolResult](t, text)
			assert.Equal(t, tt.expectedText, result.Result.Text)
		})
	}
}

func TestDifferentiatePolynomialTool(t *testing.T) {
	tool := NewDifferentiatePolynomialTool(newTestSession(t, nil), zaptest.NewLogger(t))

	text, isError := callTool(t, tool, map[string]interface{}{"polynomial": "x^3 + 2x - 2"})
	require.False(t, isError, text)
	result := decodeResult[results.DifferentiatePolynomialToolResult](t, text)
	assert.Equal(t, "3x^2+2", result.Result.Text)
	assert.Equal(t, "x^3+2x-2", result.Operand.Polynomial.Text)

	text, isError = callTool(t, tool, map[string]interface{}{"polynomial": "7"})
	require.False(t, isError, text)
	result = decodeResult[results.DifferentiatePolynomialToolResult](t, text)
	assert.Equal(t, "0", result.Result.Text)
	assert.Equal(t, -1, result.Result.Degree)
}

func TestEvaluatePolynomialTool(t *testing.T) {
	tests := []struct {
		name          string
		arguments     map[string]interface{}
		expected      float64
		errorContains string
	}{
		{
			name:      "Numeric x",
			arguments: map[string]interface{}{"polynomial": "x^2 + 2x + 1", "x": float64(2)},
			expected:  9,
		},
		{
			name:      "String x",
			arguments: map[string]interface{}{"polynomial": "x^3 - x", "x": "-2"},
			expected:  -6,
		},
		{
			name:      "Zero polynomial",
			arguments: map[string]interface{}{"polynomial": "0", "x": 10},
			expected:  0,
		},
		{
			name:          "Missing x",
			arguments:     map[string]interface{}{"polynomial": "x"},
			errorContains: "x parameter is required",
		},
		{
			name:          "Overflow",
			arguments:     map[string]interface{}{"polynomial": "x^400", "x": 10},
			errorContains: "is not a finite number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool := NewEvaluatePolynomialTool(newTestSession(t, nil), zaptest.NewLogger(t))

			text, isError := callTool(t, tool, tt.arguments)
			if tt.errorContains != "" {
				assert.True(t, isError)
				assert.Contains(t, text, tt.errorContains)
				return
			}

			require.False(t, isError, text)
			result := decodeResult[results.EvaluatePolynomialToolResult](t, text)
			assert.InDelta(t, tt.expected, result.Value, 1e-9)
		})
	}
}

func TestComparePolynomialsTool(t *testing.T) {
	tests := []struct {
		name     string
		left     string
		right    string
		expected bool
	}{
		{name: "Same canonical form", left: "x + x^2", right: "x^2 + x", expected: true},
		{name: "Within tolerance", left: "x + 1", right: "x + 1.00000001", expected: true},
		{name: "Different coefficient", left: "x + 1", right: "x + 1.1", expected: false},
		{name: "Different degree", left: "x^2", right: "x^3", expected: false},
		{name: "Variable against literal", left: "sq", right: "x^2", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool := NewComparePolynomialsTool(newTestSession(t, map[string]string{"sq": "x^2"}), zaptest.NewLogger(t))

			text, isError := callTool(t, tool, map[string]interface{}{"left": tt.left, "right": tt.right})
			require.False(t, isError, text)
			result := decodeResult[results.ComparePolynomialsToolResult](t, text)
			assert.Equal(t, tt.expected, result.Equal)
		})
	}
}

func TestStoreAndListPolynomialsTools(t *testing.T) {
	sess := newTestSession(t, nil)
	logger := zaptest.NewLogger(t)
	storeTool := NewStorePolynomialTool(sess, logger)
	listTool := NewListPolynomialsTool(sess, logger)

	text, isError := callTool(t, listTool, map[string]interface{}{})
	require.False(t, isError, text)
	empty := decodeResult[results.ListPolynomialsToolResult](t, text)
	assert.Empty(t, empty.Variables)
	assert.Contains(t, empty.Message, "No polynomials are stored")

	text, isError = callTool(t, storeTool, map[string]interface{}{"name": "q", "polynomial": "x - 1"})
	require.False(t, isError, text)
	stored := decodeResult[results.StorePolynomialToolResult](t, text)
	assert.Equal(t, "q", stored.Stored.Name)
	assert.Equal(t, "x-1", stored.Stored.Polynomial.Text)

	_, isError = callTool(t, storeTool, map[string]interface{}{"name": "p", "polynomial": "q"})
	require.False(t, isError)

	text, isError = callTool(t, storeTool, map[string]interface{}{"name": "bad name", "polynomial": "x"})
	assert.True(t, isError)
	assert.Contains(t, text, "invalid identifier")

	text, isError = callTool(t, listTool, map[string]interface{}{})
	require.False(t, isError, text)
	listed := decodeResult[results.ListPolynomialsToolResult](t, text)
	require.Len(t, listed.Variables, 2)
	assert.Equal(t, "p", listed.Variables[0].Name)
	assert.Equal(t, "x-1", listed.Variables[0].Polynomial.Text)
	assert.Equal(t, "q", listed.Variables[1].Name)
	assert.Equal(t, "Found 2 stored polynomials.", listed.Message)
}
