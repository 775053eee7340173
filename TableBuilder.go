package main

import (
	"fmt"
	"strconv"
	"strings"

	"gridSheetCalc/contracts"
)

const FormulaPrefix = "="
const ClonePrefix = ":"
const FieldDelimiter = "|"

var cloneDirections = map[string]contracts.Direction{
	"<": contracts.DirectionLeft,
	">": contracts.DirectionRight,
	"^": contracts.DirectionUp,
	"v": contracts.DirectionDown,
}

// TableBuilder turns raw grid text into a table, parsing every formula into
// the shared arena. Dimensions are pre-computed from the maximum field count;
// shorter rows keep their implicit trailing cells as empty text (the Cell
// zero value).
type TableBuilder struct {
	arena *contracts.ExprArena
}

func NewTableBuilder(arena *contracts.ExprArena) *TableBuilder {
	return &TableBuilder{arena: arena}
}

func (b *TableBuilder) Build(grid string) (*contracts.Table, error) {
	rows := splitGridRows(grid)

	cols := 0
	for _, fields := range rows {
		if len(fields) > cols {
			cols = len(fields)
		}
	}

	table := contracts.NewTable(len(rows), cols)

	for rowIndex, fields := range rows {
		for colIndex, field := range fields {
			err := b.classify(table.At(rowIndex, colIndex), field)
			if err != nil {
				return nil, fmt.Errorf("cell %s: %w", cellName(rowIndex, colIndex), err)
			}
		}
	}

	return table, nil
}

// classify checks the field shape in order: formula marker, clone marker,
// full-field numeric literal, plain text.
func (b *TableBuilder) classify(cell *contracts.Cell, field string) error {
	field = strings.TrimSpace(field)

	if strings.HasPrefix(field, FormulaPrefix) {
		handle, err := ParseExpression(strings.TrimPrefix(field, FormulaPrefix), b.arena)
		if err != nil {
			return err
		}
		cell.Kind = contracts.CellExpression
		cell.Expr = handle
		return nil
	}

	if strings.HasPrefix(field, ClonePrefix) {
		marker := strings.TrimPrefix(field, ClonePrefix)
		direction, ok := cloneDirections[marker]
		if !ok {
			return fmt.Errorf("%w: invalid clone direction `%s`", ParseError, marker)
		}
		cell.Kind = contracts.CellClone
		cell.Dir = direction
		return nil
	}

	if value, err := strconv.ParseFloat(field, 64); err == nil {
		cell.Kind = contracts.CellNumber
		cell.Value = value
		return nil
	}

	cell.Kind = contracts.CellText
	cell.Text = field
	return nil
}

func splitGridRows(grid string) [][]string {
	lines := strings.Split(grid, "\n")

	// a trailing line break does not open an extra empty row
	if len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, strings.Split(line, FieldDelimiter))
	}

	return rows
}

func cellName(row int, col int) string {
	if col >= 0 && col < 26 {
		return string(rune('A'+col)) + strconv.Itoa(row)
	}
	return fmt.Sprintf("(%d,%d)", row, col)
}
