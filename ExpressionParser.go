package main

import (
	"errors"
	"fmt"
	"strconv"

	"gridSheetCalc/contracts"
)

var ParseError = errors.New("parse error")

// ExpressionParser is a right-recursive descent parser. Chains of operators
// at the same precedence level associate to the right, so `8-4-2` parses as
// `8-(4-2)`. Every node lands in the shared arena; the result of a parse is
// the root handle.
type ExpressionParser struct {
	lexer *Lexer
	arena *contracts.ExprArena
}

func ParseExpression(input string, arena *contracts.ExprArena) (contracts.ExprHandle, error) {
	parser := &ExpressionParser{lexer: NewLexer(input), arena: arena}

	root, err := parser.parseAddSub()
	if err != nil {
		return contracts.NoExpr, err
	}

	trailing, err := parser.lexer.Next()
	if err != nil {
		return contracts.NoExpr, err
	}
	if trailing != nil {
		return contracts.NoExpr, fmt.Errorf("%w: trailing token `%s` at position %d", ParseError, trailing.Text, trailing.Pos)
	}

	return root, nil
}

func (p *ExpressionParser) parseAddSub() (contracts.ExprHandle, error) {
	return p.parseBinary("+-", p.parseMulDivPow, p.parseAddSub)
}

func (p *ExpressionParser) parseMulDivPow() (contracts.ExprHandle, error) {
	return p.parseBinary("*/^", p.parseUnary, p.parseMulDivPow)
}

func (p *ExpressionParser) parseBinary(
	operators string,
	parseLhs func() (contracts.ExprHandle, error),
	parseRhs func() (contracts.ExprHandle, error),
) (contracts.ExprHandle, error) {
	lhs, err := parseLhs()
	if err != nil {
		return contracts.NoExpr, err
	}

	operator, err := p.lexer.Peek()
	if err != nil {
		return contracts.NoExpr, err
	}
	if operator == nil || len(operator.Text) != 1 || !containsByte(operators, operator.Text[0]) {
		return lhs, nil
	}
	_, _ = p.lexer.Next()

	rhs, err := parseRhs()
	if err != nil {
		return contracts.NoExpr, err
	}

	return p.arena.Append(contracts.ExprNode{
		Kind: contracts.ExprBinaryOp,
		Op:   operator.Text[0],
		Lhs:  lhs,
		Rhs:  rhs,
	}), nil
}

func (p *ExpressionParser) parseUnary() (contracts.ExprHandle, error) {
	token, err := p.lexer.Peek()
	if err != nil {
		return contracts.NoExpr, err
	}

	if token != nil && token.Text == "-" {
		_, _ = p.lexer.Next()

		child, err := p.parseUnary()
		if err != nil {
			return contracts.NoExpr, err
		}

		return p.arena.Append(contracts.ExprNode{
			Kind: contracts.ExprUnaryOp,
			Op:   '-',
			Lhs:  child,
		}), nil
	}

	return p.parsePrimary()
}

func (p *ExpressionParser) parsePrimary() (contracts.ExprHandle, error) {
	token, err := p.lexer.Next()
	if err != nil {
		return contracts.NoExpr, err
	}
	if token == nil {
		return contracts.NoExpr, fmt.Errorf("%w: expected primary expression", ParseError)
	}

	if token.Text == "(" {
		inner, err := p.parseAddSub()
		if err != nil {
			return contracts.NoExpr, err
		}

		closing, err := p.lexer.Next()
		if err != nil {
			return contracts.NoExpr, err
		}
		if closing == nil || closing.Text != ")" {
			return contracts.NoExpr, fmt.Errorf("%w: expected `)`", ParseError)
		}

		return inner, nil
	}

	if !isWordChar(token.Text[0]) {
		return contracts.NoExpr, fmt.Errorf("%w: expected primary expression, got `%s` at position %d", ParseError, token.Text, token.Pos)
	}

	if value, err := strconv.ParseFloat(token.Text, 64); err == nil {
		return p.arena.Append(contracts.ExprNode{
			Kind:   contracts.ExprNumber,
			Number: value,
		}), nil
	}

	return p.parseCellRef(token)
}

// parseCellRef turns a word token into a reference: one uppercase column
// letter (0-indexed) followed by an unsigned row index (0-indexed).
func (p *ExpressionParser) parseCellRef(token *Token) (contracts.ExprHandle, error) {
	column := token.Text[0]
	if column < 'A' || column > 'Z' {
		return contracts.NoExpr, fmt.Errorf("%w: bad cell ref `%s` at position %d", ParseError, token.Text, token.Pos)
	}

	row, err := strconv.Atoi(token.Text[1:])
	if err != nil {
		return contracts.NoExpr, fmt.Errorf("%w: bad row in cell ref `%s` at position %d", ParseError, token.Text, token.Pos)
	}

	return p.arena.Append(contracts.ExprNode{
		Kind: contracts.ExprCellRef,
		Row:  row,
		Col:  int(column - 'A'),
	}), nil
}

func containsByte(set string, ch byte) bool {
	for i := 0; i < len(set); i++ {
		if set[i] == ch {
			return true
		}
	}
	return false
}
