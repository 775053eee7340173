package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableRenderer(t *testing.T) {
	t.Run("fixed_six_decimal_numbers", func(t *testing.T) {
		table, _ := _buildAndEvaluate(t, "2.5 | =10/4")

		actual := NewTableRenderer().Render(table)

		assert.Equal(t, "2.500000 | 2.500000\n", actual)
	})

	t.Run("text_cells_keep_their_span", func(t *testing.T) {
		table, _ := _buildAndEvaluate(t, "total | 12")

		actual := NewTableRenderer().Render(table)

		assert.Equal(t, "total | 12.000000\n", actual)
	})

	t.Run("columns_padded_to_widest_value", func(t *testing.T) {
		table, _ := _buildAndEvaluate(t, "apple | 1\nkiwi | 22")

		actual := NewTableRenderer().Render(table)

		expected := "apple | 1.000000 \n" +
			"kiwi  | 22.000000\n"
		assert.Equal(t, expected, actual)
	})

	t.Run("one_line_per_row", func(t *testing.T) {
		table, _ := _buildAndEvaluate(t, "1\n2\n3")

		actual := NewTableRenderer().Render(table)

		assert.Equal(t, 3, strings.Count(actual, "\n"))
	})
}
