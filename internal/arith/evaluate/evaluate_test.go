package evaluate_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/artuross/calc/internal/arith/ast"
	"github.com/artuross/calc/internal/arith/evaluate"
	"github.com/artuross/calc/internal/arith/lexer"
	"github.com/artuross/calc/internal/arith/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluator(t *testing.T) {
	type testCase struct {
		inputExpr     string
		expectedValue float64
	}

	testCases := []testCase{
		{inputExpr: "1", expectedValue: 1},
		{inputExpr: "2 + 3 * 4", expectedValue: 14},
		{inputExpr: "10 - 2 - 3", expectedValue: 5},
		{inputExpr: "(2 + 3) * 4", expectedValue: 20},
		{inputExpr: "((1+2)*(3+4)))", expectedValue: 21},
		{inputExpr: "4 / 2", expectedValue: 2},
		{inputExpr: "16 / 4 / 2", expectedValue: 2},
		{inputExpr: "1.5 * 4", expectedValue: 6},
		{inputExpr: "0.1 + 0.2", expectedValue: 0.30000000000000004},
		{inputExpr: "2 * (3 + 4) - 10 / (1 + 4)", expectedValue: 12},
	}

	for index, testCase := range testCases {
		t.Run(fmt.Sprintf("test %02d", index), func(t *testing.T) {
			tokens, err := lexer.Tokenize(testCase.inputExpr)
			require.NoError(t, err)

			expr, err := parser.Parse(tokens)
			require.NoError(t, err)

			value := evaluate.Evaluate(expr)

			assert.Equal(t, testCase.expectedValue, value, "expression: %s", testCase.inputExpr)
		})
	}
}

func TestEvaluator_Division(t *testing.T) {
	t.Run("by zero is positive infinity", func(t *testing.T) {
		value := evaluate.Evaluate(&ast.Binary{
			Operator: ast.OperatorDiv,
			Left:     &ast.Number{Value: 1},
			Right:    &ast.Number{Value: 0},
		})

		assert.True(t, math.IsInf(value, 1))
	})

	t.Run("negative by zero is negative infinity", func(t *testing.T) {
		value := evaluate.Evaluate(&ast.Binary{
			Operator: ast.OperatorDiv,
			Left: &ast.Binary{
				Operator: ast.OperatorSub,
				Left:     &ast.Number{Value: 0},
				Right:    &ast.Number{Value: 1},
			},
			Right: &ast.Number{Value: 0},
		})

		assert.True(t, math.IsInf(value, -1))
	})

	t.Run("zero by zero is NaN", func(t *testing.T) {
		value := evaluate.Evaluate(&ast.Binary{
			Operator: ast.OperatorDiv,
			Left:     &ast.Number{Value: 0},
			Right:    &ast.Number{Value: 0},
		})

		assert.True(t, math.IsNaN(value))
	})
}

func TestEvaluator_UnsupportedNodes(t *testing.T) {
	t.Run("operator", func(t *testing.T) {
		expr := &ast.Binary{
			Operator: ast.Operator("^"),
			Left:     &ast.Number{Value: 2},
			Right:    &ast.Number{Value: 3},
		}

		assert.Panics(t, func() { evaluate.Evaluate(expr) })
	})

	t.Run("nil expression", func(t *testing.T) {
		assert.Panics(t, func() { evaluate.Evaluate(nil) })
	})
}
