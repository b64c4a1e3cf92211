package evaluate

import (
	"fmt"

	"github.com/artuross/calc/internal/arith/ast"
)

// Evaluate folds the tree into a single value. Division follows IEEE 754, so
// dividing by zero yields ±Inf or NaN rather than an error.
func Evaluate(expr ast.Expr) float64 {
	switch expr := expr.(type) {
	case *ast.Number:
		return expr.Value

	case *ast.Binary:
		return evaluateBinary(expr)

	default:
		panic(fmt.Sprintf("evaluate: unsupported expression type: %T", expr))
	}
}

func evaluateBinary(expr *ast.Binary) float64 {
	left := Evaluate(expr.Left)
	right := Evaluate(expr.Right)

	switch expr.Operator {
	case ast.OperatorAdd:
		return left + right

	case ast.OperatorSub:
		return left - right

	case ast.OperatorMul:
		return left * right

	case ast.OperatorDiv:
		return left / right

	default:
		panic(fmt.Sprintf("evaluate: unsupported operator: %q", expr.Operator))
	}
}
