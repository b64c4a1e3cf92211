package ast

var (
	_ Expr = (*Binary)(nil)
	_ Expr = (*Number)(nil)
)

// Expr is implemented only by the node types in this package.
type Expr interface {
	isExpr()
}

type (
	Binary struct {
		Operator Operator
		Left     Expr
		Right    Expr
	}

	Number struct {
		Value float64
	}
)

func (e *Binary) isExpr() {}
func (e *Number) isExpr() {}
