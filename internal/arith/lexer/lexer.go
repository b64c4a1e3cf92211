package lexer

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"
)

type TokenType string

const (
	TokenTypeNumber     TokenType = "NUMBER"
	TokenTypePlus       TokenType = "+"
	TokenTypeMinus      TokenType = "-"
	TokenTypeStar       TokenType = "*"
	TokenTypeSlash      TokenType = "/"
	TokenTypeParenLeft  TokenType = "("
	TokenTypeParenRight TokenType = ")"
)

var ErrUnexpectedCharacter = errors.New("unexpected character")

// Error is returned when the input contains a character that does not start
// or continue any token.
type Error struct {
	Char     rune
	Position int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %q at position %d", ErrUnexpectedCharacter, e.Char, e.Position)
}

func (e *Error) Unwrap() error {
	return ErrUnexpectedCharacter
}

type Token struct {
	Type     TokenType
	RawValue string
	Value    float64 // set for TokenTypeNumber only
	Position int     // byte offset of the first character
}

func (t Token) String() string {
	if t.Type == TokenTypeNumber {
		return fmt.Sprintf("%s(%s)@%d", t.Type, t.RawValue, t.Position)
	}

	return fmt.Sprintf("%q@%d", t.RawValue, t.Position)
}

var singles = map[rune]TokenType{
	'+': TokenTypePlus,
	'-': TokenTypeMinus,
	'*': TokenTypeStar,
	'/': TokenTypeSlash,
	'(': TokenTypeParenLeft,
	')': TokenTypeParenRight,
}

type Lexer struct {
	input    []byte
	position int
}

func NewLexer(input string) *Lexer {
	return &Lexer{
		input:    []byte(input),
		position: 0,
	}
}

// Tokenize reads all tokens from input. It stops at the first error.
func Tokenize(input string) ([]Token, error) {
	lex := NewLexer(input)

	tokens := make([]Token, 0, len(input)/2+1)
	for {
		token, err := lex.ReadToken()
		if err == io.EOF {
			return tokens, nil
		}
		if err != nil {
			return nil, err
		}

		tokens = append(tokens, *token)
	}
}

// ReadToken returns the next token, or io.EOF once the input is exhausted.
func (l *Lexer) ReadToken() (*Token, error) {
	if err := l.advanceWhitespace(); err != nil {
		return nil, err
	}

	r, _, err := l.peek()
	if err != nil {
		return nil, err
	}

	if isNumberOpeningCharacter(r) {
		return l.readNumber()
	}

	if tokenType, ok := singles[r]; ok {
		startPos := l.position

		_, err := l.read()
		invariant(err != nil, "ReadToken: unexpected read() error after peek()")

		token := Token{
			Type:     tokenType,
			RawValue: string(r),
			Position: startPos,
		}

		return &token, nil
	}

	return nil, &Error{Char: r, Position: l.position}
}

// advanceWhitespace skips spaces only. Tabs and line breaks are unexpected
// characters.
func (l *Lexer) advanceWhitespace() error {
	for {
		r, _, err := l.peek()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		if r != ' ' {
			return nil
		}

		_, _ = l.read()
	}
}

// readNumber consumes digits and at most one '.'. A second '.' is reported
// as an unexpected character instead of being left to strconv.
func (l *Lexer) readNumber() (*Token, error) {
	startPos := l.position
	digits := 0
	dotPos := -1

	for {
		r, _, err := l.peek()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if r == '.' {
			if dotPos >= 0 {
				return nil, &Error{Char: r, Position: l.position}
			}

			dotPos = l.position
		} else if isDigit(r) {
			digits++
		} else {
			break
		}

		_, err = l.read()
		invariant(err != nil, "readNumber: unexpected read() error after peek()")
	}

	if digits == 0 {
		return nil, &Error{Char: '.', Position: dotPos}
	}

	raw := string(l.input[startPos:l.position])

	// out of range literals become +Inf, ParseFloat reports that with ErrRange
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, fmt.Errorf("parse number %q at position %d: %w", raw, startPos, err)
	}

	token := Token{
		Type:     TokenTypeNumber,
		RawValue: raw,
		Value:    value,
		Position: startPos,
	}

	return &token, nil
}

func (l *Lexer) peek() (rune, int, error) {
	if l.position >= len(l.input) {
		return 0, 0, io.EOF
	}

	r, size := utf8.DecodeRune(l.input[l.position:])
	if r == utf8.RuneError {
		return 0, 0, &Error{Char: utf8.RuneError, Position: l.position}
	}

	return r, size, nil
}

func (l *Lexer) read() (rune, error) {
	r, size, err := l.peek()
	if err != nil {
		return 0, err
	}

	l.position += size

	return r, nil
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isNumberOpeningCharacter(r rune) bool {
	return isDigit(r) || r == '.'
}

func invariant(assertion bool, message string) {
	if assertion {
		panic(message)
	}
}
