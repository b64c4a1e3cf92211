package parser

import (
	"errors"
	"fmt"

	"github.com/artuross/calc/internal/arith/ast"
	"github.com/artuross/calc/internal/arith/lexer"
)

var (
	ErrUnexpectedEndOfInput = errors.New("unexpected end of input")
	ErrUnexpectedToken      = errors.New("unexpected token")
	ErrUnmatchedParen       = errors.New("unmatched parenthesis")
)

type UnexpectedTokenError struct {
	Found    lexer.Token
	Position int
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("%s %q at position %d", ErrUnexpectedToken, e.Found.RawValue, e.Position)
}

func (e *UnexpectedTokenError) Unwrap() error {
	return ErrUnexpectedToken
}

// UnmatchedParenError is returned when the expression following '(' is not
// closed by ')'. Found is nil when the input ended instead.
type UnmatchedParenError struct {
	Open  int
	Found *lexer.Token
}

func (e *UnmatchedParenError) Error() string {
	if e.Found == nil {
		return fmt.Sprintf("%s: '(' at position %d is never closed", ErrUnmatchedParen, e.Open)
	}

	return fmt.Sprintf("%s: '(' at position %d expects ')' but got %q at position %d", ErrUnmatchedParen, e.Open, e.Found.RawValue, e.Found.Position)
}

func (e *UnmatchedParenError) Unwrap() error {
	return ErrUnmatchedParen
}

var (
	additiveOperators = map[lexer.TokenType]ast.Operator{
		lexer.TokenTypePlus:  ast.OperatorAdd,
		lexer.TokenTypeMinus: ast.OperatorSub,
	}

	multiplicativeOperators = map[lexer.TokenType]ast.Operator{
		lexer.TokenTypeStar:  ast.OperatorMul,
		lexer.TokenTypeSlash: ast.OperatorDiv,
	}
)

type Parser struct {
	tokens []lexer.Token
	pos    int
}

func New(tokens []lexer.Token) *Parser {
	return &Parser{
		tokens: tokens,
	}
}

// Parse builds a tree from a single expression at the start of tokens.
// Tokens following that expression are left unconsumed.
func Parse(tokens []lexer.Token) (ast.Expr, error) {
	return New(tokens).Parse()
}

func (p *Parser) Parse() (ast.Expr, error) {
	return p.parseExpression()
}

// Remaining returns the tokens not consumed by Parse.
func (p *Parser) Remaining() []lexer.Token {
	return p.tokens[p.pos:]
}

func (p *Parser) parseExpression() (ast.Expr, error) {
	return p.parseBinary(additiveOperators, p.parseTerm)
}

func (p *Parser) parseTerm() (ast.Expr, error) {
	return p.parseBinary(multiplicativeOperators, p.parseFactor)
}

// parseBinary parses operand { operator operand } and folds to the left.
func (p *Parser) parseBinary(operators map[lexer.TokenType]ast.Operator, parseOperand func() (ast.Expr, error)) (ast.Expr, error) {
	left, err := parseOperand()
	if err != nil {
		return nil, err
	}

	for {
		token, ok := p.peekToken()
		if !ok {
			return left, nil
		}

		operator, isOp := operators[token.Type]
		if !isOp {
			return left, nil
		}

		p.pos++

		right, err := parseOperand()
		if err != nil {
			return nil, err
		}

		left = &ast.Binary{
			Operator: operator,
			Left:     left,
			Right:    right,
		}
	}
}

func (p *Parser) parseFactor() (ast.Expr, error) {
	token, ok := p.readToken()
	if !ok {
		return nil, ErrUnexpectedEndOfInput
	}

	switch token.Type {
	case lexer.TokenTypeNumber:
		return &ast.Number{Value: token.Value}, nil

	case lexer.TokenTypeParenLeft:
		return p.parseGroupedExpression(token)

	default:
		return nil, &UnexpectedTokenError{Found: token, Position: token.Position}
	}
}

func (p *Parser) parseGroupedExpression(open lexer.Token) (ast.Expr, error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	// closing
	token, ok := p.readToken()
	if !ok {
		return nil, &UnmatchedParenError{Open: open.Position}
	}

	if token.Type != lexer.TokenTypeParenRight {
		return nil, &UnmatchedParenError{Open: open.Position, Found: &token}
	}

	return expr, nil
}

func (p *Parser) peekToken() (lexer.Token, bool) {
	if p.pos >= len(p.tokens) {
		return lexer.Token{}, false
	}

	return p.tokens[p.pos], true
}

func (p *Parser) readToken() (lexer.Token, bool) {
	token, ok := p.peekToken()
	if ok {
		p.pos++
	}

	return token, ok
}
