package ast

type Operator string

const (
	OperatorAdd Operator = "+"
	OperatorSub Operator = "-"

	OperatorMul Operator = "*"
	OperatorDiv Operator = "/"
)
