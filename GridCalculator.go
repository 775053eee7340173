package main

import (
	"gridSheetCalc/contracts"
)

// GridCalculator is the one-pass pipeline: build the table and arena from
// raw grid text, evaluate every cell, render the result. Table and arena
// live exactly as long as one Calculate call and are dropped together.
type GridCalculator struct {
	renderer *TableRenderer
}

func NewGridCalculator() *GridCalculator {
	return &GridCalculator{renderer: NewTableRenderer()}
}

func (g *GridCalculator) Calculate(grid string) (string, error) {
	arena := &contracts.ExprArena{}

	table, err := NewTableBuilder(arena).Build(grid)
	if err != nil {
		return "", err
	}

	err = NewEvaluator(table, arena).EvaluateTable()
	if err != nil {
		return "", err
	}

	return g.renderer.Render(table), nil
}
