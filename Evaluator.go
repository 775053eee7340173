package main

import (
	"errors"
	"fmt"

	"gridSheetCalc/contracts"
)

var EvaluationError = errors.New("evaluation error")

var CycleError = fmt.Errorf("%w: %s", EvaluationError, "circular reference detected")

var BoundsError = fmt.Errorf("%w: %s", EvaluationError, "reference out of table range")

var TypeError = fmt.Errorf("%w: %s", EvaluationError, "text in math expression")

// Evaluator resolves every cell of one table exactly once. The cell status
// field is the cycle marker: reaching an in-progress cell again means the
// dependency chain loops back into the evaluation stack.
type Evaluator struct {
	table *contracts.Table
	arena *contracts.ExprArena
}

func NewEvaluator(table *contracts.Table, arena *contracts.ExprArena) *Evaluator {
	return &Evaluator{table: table, arena: arena}
}

// EvaluateTable walks the grid in row-major order. EvaluateCell is memoized,
// so the walk order only decides which cell first triggers a dependency
// chain, never the resulting values.
func (e *Evaluator) EvaluateTable() error {
	for row := 0; row < e.table.Rows; row++ {
		for col := 0; col < e.table.Cols; col++ {
			if err := e.EvaluateCell(row, col); err != nil {
				return fmt.Errorf("cell %s: %w", cellName(row, col), err)
			}
		}
	}
	return nil
}

func (e *Evaluator) EvaluateCell(row int, col int) error {
	cell := e.table.At(row, col)

	switch cell.Status {
	case contracts.StatusEvaluated:
		return nil
	case contracts.StatusInProgress:
		return CycleError
	}

	switch cell.Kind {
	case contracts.CellText, contracts.CellNumber:
		cell.Status = contracts.StatusEvaluated
		return nil

	case contracts.CellExpression:
		cell.Status = contracts.StatusInProgress
		value, err := e.evaluateExpr(cell.Expr)
		if err != nil {
			return err
		}
		cell.Value = value
		cell.Status = contracts.StatusEvaluated
		return nil

	default:
		return e.resolveClone(cell, row, col)
	}
}

// resolveClone copies the resolved neighbor's kind and payload over the
// clone cell. A copied expression is rebuilt in the arena with every
// reference shifted opposite to the clone direction, so the clone keeps the
// same relative offsets the original expressed from its own position. The
// original subtree is never touched: other clones may still reference it.
func (e *Evaluator) resolveClone(cell *contracts.Cell, row int, col int) error {
	cell.Status = contracts.StatusInProgress

	rowDelta, colDelta := cell.Dir.Offset()
	srcRow, srcCol := row+rowDelta, col+colDelta
	if !e.table.Contains(srcRow, srcCol) {
		return fmt.Errorf("clone `%s%s` target: %w", ClonePrefix, cell.Dir, BoundsError)
	}

	if err := e.EvaluateCell(srcRow, srcCol); err != nil {
		return err
	}

	src := e.table.At(srcRow, srcCol)
	cell.Kind = src.Kind
	cell.Text = src.Text
	cell.Value = src.Value

	if src.Kind == contracts.CellExpression {
		cell.Expr = e.translate(src.Expr, -rowDelta, -colDelta)
		value, err := e.evaluateExpr(cell.Expr)
		if err != nil {
			return err
		}
		cell.Value = value
	}

	cell.Status = contracts.StatusEvaluated
	return nil
}

func (e *Evaluator) evaluateExpr(handle contracts.ExprHandle) (float64, error) {
	node := *e.arena.Node(handle)

	switch node.Kind {
	case contracts.ExprNumber:
		return node.Number, nil

	case contracts.ExprCellRef:
		if !e.table.Contains(node.Row, node.Col) {
			return 0, fmt.Errorf("%s: %w", cellName(node.Row, node.Col), BoundsError)
		}
		if err := e.EvaluateCell(node.Row, node.Col); err != nil {
			return 0, err
		}
		target := e.table.At(node.Row, node.Col)
		if target.Kind == contracts.CellText {
			return 0, fmt.Errorf("%s: %w", cellName(node.Row, node.Col), TypeError)
		}
		return target.Value, nil

	case contracts.ExprBinaryOp:
		lhs, err := e.evaluateExpr(node.Lhs)
		if err != nil {
			return 0, err
		}
		rhs, err := e.evaluateExpr(node.Rhs)
		if err != nil {
			return 0, err
		}
		switch node.Op {
		case '+':
			return lhs + rhs, nil
		case '-':
			return lhs - rhs, nil
		case '*':
			return lhs * rhs, nil
		case '/':
			// plain IEEE division; ±Inf and NaN pass through
			return lhs / rhs, nil
		default:
			return powTrunc(lhs, rhs), nil
		}

	default:
		value, err := e.evaluateExpr(node.Lhs)
		if err != nil {
			return 0, err
		}
		return -value, nil
	}
}

func (e *Evaluator) translate(handle contracts.ExprHandle, rowShift int, colShift int) contracts.ExprHandle {
	node := *e.arena.Node(handle)

	switch node.Kind {
	case contracts.ExprCellRef:
		node.Row += rowShift
		node.Col += colShift
	case contracts.ExprBinaryOp:
		node.Lhs = e.translate(node.Lhs, rowShift, colShift)
		node.Rhs = e.translate(node.Rhs, rowShift, colShift)
	case contracts.ExprUnaryOp:
		node.Lhs = e.translate(node.Lhs, rowShift, colShift)
	}

	return e.arena.Append(node)
}

// powTrunc truncates the exponent toward zero and multiplies by repeated
// squaring. The loop guard makes zero and negative exponents yield 1.
func powTrunc(base float64, exponent float64) float64 {
	result := 1.0
	factor := base
	for e := int64(exponent); e > 0; e >>= 1 {
		if e&1 == 1 {
			result *= factor
		}
		factor *= factor
	}
	return result
}
