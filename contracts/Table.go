package contracts

// Table is a fixed-size row-major grid of cells. Dimensions never change
// after construction; ragged input rows are padded with empty text cells.
type Table struct {
	Rows  int
	Cols  int
	Cells []Cell
}

func NewTable(rows int, cols int) *Table {
	return &Table{
		Rows:  rows,
		Cols:  cols,
		Cells: make([]Cell, rows*cols),
	}
}

func (t *Table) Contains(row int, col int) bool {
	return row >= 0 && row < t.Rows && col >= 0 && col < t.Cols
}

func (t *Table) At(row int, col int) *Cell {
	return &t.Cells[row*t.Cols+col]
}
