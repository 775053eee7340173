package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gridSheetCalc/contracts"
)

func TestTableBuilder(t *testing.T) {
	t.Run("classification", func(t *testing.T) {
		arena := &contracts.ExprArena{}
		table, err := NewTableBuilder(arena).Build("hello | 42 | =1+2 | :<")

		assert.NoError(t, err)
		assert.Equal(t, 1, table.Rows)
		assert.Equal(t, 4, table.Cols)

		assert.Equal(t, contracts.CellText, table.At(0, 0).Kind)
		assert.Equal(t, "hello", table.At(0, 0).Text)

		assert.Equal(t, contracts.CellNumber, table.At(0, 1).Kind)
		assert.Equal(t, 42.0, table.At(0, 1).Value)

		assert.Equal(t, contracts.CellExpression, table.At(0, 2).Kind)
		assert.Equal(t, 3, arena.Size())

		assert.Equal(t, contracts.CellClone, table.At(0, 3).Kind)
		assert.Equal(t, contracts.DirectionLeft, table.At(0, 3).Dir)

		for _, cell := range table.Cells {
			assert.Equal(t, contracts.StatusUnevaluated, cell.Status)
		}
	})

	t.Run("fields_are_trimmed", func(t *testing.T) {
		table, err := NewTableBuilder(&contracts.ExprArena{}).Build("  3.5  |   some text  ")

		assert.NoError(t, err)
		assert.Equal(t, contracts.CellNumber, table.At(0, 0).Kind)
		assert.Equal(t, 3.5, table.At(0, 0).Value)
		assert.Equal(t, "some text", table.At(0, 1).Text)
	})

	t.Run("clone_directions", func(t *testing.T) {
		table, err := NewTableBuilder(&contracts.ExprArena{}).Build(":< | :> | :^ | :v")

		assert.NoError(t, err)
		assert.Equal(t, contracts.DirectionLeft, table.At(0, 0).Dir)
		assert.Equal(t, contracts.DirectionRight, table.At(0, 1).Dir)
		assert.Equal(t, contracts.DirectionUp, table.At(0, 2).Dir)
		assert.Equal(t, contracts.DirectionDown, table.At(0, 3).Dir)
	})

	t.Run("ragged_rows_padded_with_empty_text", func(t *testing.T) {
		table, err := NewTableBuilder(&contracts.ExprArena{}).Build("1 | 2 | 3\n4")

		assert.NoError(t, err)
		assert.Equal(t, 2, table.Rows)
		assert.Equal(t, 3, table.Cols)

		padded := table.At(1, 1)
		assert.Equal(t, contracts.CellText, padded.Kind)
		assert.Equal(t, "", padded.Text)
		assert.Equal(t, contracts.StatusUnevaluated, padded.Status)
	})

	t.Run("trailing_line_break", func(t *testing.T) {
		table, err := NewTableBuilder(&contracts.ExprArena{}).Build("1 | 2\n")

		assert.NoError(t, err)
		assert.Equal(t, 1, table.Rows)
	})

	t.Run("invalid_clone_direction", func(t *testing.T) {
		for _, field := range []string{":x", ":", ":<<", ": <"} {
			t.Run(field, func(t *testing.T) {
				_, err := NewTableBuilder(&contracts.ExprArena{}).Build(field)

				assert.Error(t, err)
				assert.ErrorIs(t, err, ParseError)
				assert.Contains(t, err.Error(), "invalid clone direction")
			})
		}
	})

	t.Run("parse_error_names_the_cell", func(t *testing.T) {
		_, err := NewTableBuilder(&contracts.ExprArena{}).Build("1 | 2\n3 | =4+")

		assert.Error(t, err)
		assert.ErrorIs(t, err, ParseError)
		assert.Contains(t, err.Error(), "cell B1")
	})
}
