package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLexer(t *testing.T) {
	t.Run("words_and_operators", func(t *testing.T) {
		lexer := NewLexer("A1+2.5*(B2-3)")

		expected := []string{"A1", "+", "2.5", "*", "(", "B2", "-", "3", ")"}
		actual := _collectTokens(t, lexer)

		assert.Equal(t, expected, actual)
	})

	t.Run("token_positions", func(t *testing.T) {
		lexer := NewLexer("A1 + B2")

		first, err := lexer.Next()
		assert.NoError(t, err)
		assert.Equal(t, 0, first.Pos)

		second, err := lexer.Next()
		assert.NoError(t, err)
		assert.Equal(t, 3, second.Pos)

		third, err := lexer.Next()
		assert.NoError(t, err)
		assert.Equal(t, 5, third.Pos)
	})

	t.Run("whitespace_skipped", func(t *testing.T) {
		lexer := NewLexer("  \t A1   +\t2 ")

		assert.Equal(t, []string{"A1", "+", "2"}, _collectTokens(t, lexer))

		token, err := lexer.Next()
		assert.NoError(t, err)
		assert.Nil(t, token)
	})

	t.Run("peek_does_not_consume", func(t *testing.T) {
		lexer := NewLexer("7+1")

		peeked, err := lexer.Peek()
		assert.NoError(t, err)
		assert.Equal(t, "7", peeked.Text)

		peekedAgain, err := lexer.Peek()
		assert.NoError(t, err)
		assert.Equal(t, peeked, peekedAgain)

		consumed, err := lexer.Next()
		assert.NoError(t, err)
		assert.Equal(t, "7", consumed.Text)

		next, err := lexer.Next()
		assert.NoError(t, err)
		assert.Equal(t, "+", next.Text)
	})

	t.Run("empty_input", func(t *testing.T) {
		lexer := NewLexer("")

		token, err := lexer.Next()
		assert.NoError(t, err)
		assert.Nil(t, token)
	})

	t.Run("unrecognized_character", func(t *testing.T) {
		lexer := NewLexer("2 $ 3")

		first, err := lexer.Next()
		assert.NoError(t, err)
		assert.Equal(t, "2", first.Text)

		_, err = lexer.Next()
		assert.Error(t, err)
		assert.ErrorIs(t, err, LexError)
		assert.Contains(t, err.Error(), "`$`")
		assert.Contains(t, err.Error(), "position 2")
	})
}

func _collectTokens(t *testing.T, lexer *Lexer) []string {
	var texts []string
	for {
		token, err := lexer.Next()
		assert.NoError(t, err)
		if token == nil {
			return texts
		}
		texts = append(texts, token.Text)
	}
}
