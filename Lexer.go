package main

import (
	"errors"
	"fmt"
	"strings"
)

var LexError = errors.New("unrecognized character")

// OperatorChars are the single-character tokens a formula may contain.
const OperatorChars = "+-*/^()"

type Token struct {
	Text string
	Pos  int
}

// Lexer pulls tokens out of one cell's formula text (leading `=` already
// stripped). It is finite and not restartable, but supports one-token
// lookahead via Peek.
type Lexer struct {
	input  string
	pos    int
	peeked *Token
}

func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// Next consumes and returns the next token. A nil token means the input is
// exhausted.
func (l *Lexer) Next() (*Token, error) {
	if l.peeked != nil {
		token := l.peeked
		l.peeked = nil
		return token, nil
	}
	return l.scan()
}

// Peek returns the next token without consuming it.
func (l *Lexer) Peek() (*Token, error) {
	if l.peeked == nil {
		token, err := l.scan()
		if err != nil {
			return nil, err
		}
		l.peeked = token
	}
	return l.peeked, nil
}

func (l *Lexer) scan() (*Token, error) {
	for l.pos < len(l.input) && isSpaceChar(l.input[l.pos]) {
		l.pos++
	}

	if l.pos >= len(l.input) {
		return nil, nil
	}

	start := l.pos
	ch := l.input[l.pos]

	if isWordChar(ch) {
		for l.pos < len(l.input) && isWordChar(l.input[l.pos]) {
			l.pos++
		}
		return &Token{Text: l.input[start:l.pos], Pos: start}, nil
	}

	if strings.IndexByte(OperatorChars, ch) >= 0 {
		l.pos++
		return &Token{Text: l.input[start:l.pos], Pos: start}, nil
	}

	return nil, fmt.Errorf("%w `%c` at position %d", LexError, ch, start)
}

func isSpaceChar(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\v' || ch == '\f'
}

// isWordChar includes `.` so decimal and exponent literals stay one token.
func isWordChar(ch byte) bool {
	return ch >= 'a' && ch <= 'z' ||
		ch >= 'A' && ch <= 'Z' ||
		ch >= '0' && ch <= '9' ||
		ch == '_' || ch == '.'
}
