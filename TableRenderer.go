package main

import (
	"strconv"
	"strings"

	"gridSheetCalc/contracts"
)

const RenderedFieldSeparator = " | "

// RenderedPrecision is the fixed decimal count for numeric cells.
const RenderedPrecision = 6

// TableRenderer prints an evaluated table: text cells keep their span,
// numeric and expression cells render with fixed precision, and every field
// is right-padded to the widest rendered value in its column.
type TableRenderer struct {
}

func NewTableRenderer() *TableRenderer {
	return &TableRenderer{}
}

func (r *TableRenderer) Render(table *contracts.Table) string {
	rendered := make([]string, len(table.Cells))
	widths := make([]int, table.Cols)

	for index, cell := range table.Cells {
		rendered[index] = renderCell(&cell)
		if col := index % table.Cols; len(rendered[index]) > widths[col] {
			widths[col] = len(rendered[index])
		}
	}

	var output strings.Builder
	fields := make([]string, table.Cols)
	for row := 0; row < table.Rows; row++ {
		for col := 0; col < table.Cols; col++ {
			field := rendered[row*table.Cols+col]
			fields[col] = field + strings.Repeat(" ", widths[col]-len(field))
		}
		output.WriteString(strings.Join(fields, RenderedFieldSeparator))
		output.WriteByte('\n')
	}

	return output.String()
}

func renderCell(cell *contracts.Cell) string {
	if cell.Kind == contracts.CellText {
		return cell.Text
	}
	return strconv.FormatFloat(cell.Value, 'f', RenderedPrecision, 64)
}
