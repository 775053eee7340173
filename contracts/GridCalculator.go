package contracts

type GridCalculator interface {
	// Calculate runs one parse/evaluate/render pass over raw grid text and
	// returns the rendered table. Any engine error aborts the whole pass.
	Calculate(grid string) (string, error)
}
