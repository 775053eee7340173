package contracts

type CellKind int

const (
	CellText CellKind = iota
	CellNumber
	CellExpression
	CellClone
)

// EvalStatus advances monotonically: Unevaluated -> InProgress -> Evaluated.
// It doubles as the white/gray/black marker for cycle detection.
type EvalStatus int

const (
	StatusUnevaluated EvalStatus = iota
	StatusInProgress
	StatusEvaluated
)

type Direction int

const (
	DirectionLeft Direction = iota
	DirectionRight
	DirectionUp
	DirectionDown
)

// Offset returns the (row, col) delta pointing at the neighbor a clone
// copies from.
func (d Direction) Offset() (int, int) {
	switch d {
	case DirectionLeft:
		return 0, -1
	case DirectionRight:
		return 0, 1
	case DirectionUp:
		return -1, 0
	default:
		return 1, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "<"
	case DirectionRight:
		return ">"
	case DirectionUp:
		return "^"
	default:
		return "v"
	}
}

// Cell is a tagged union over CellKind. Value holds the numeric literal for
// CellNumber and the cached result for an evaluated CellExpression. A cell
// with StatusEvaluated never has kind CellClone: clone resolution rewrites
// the kind before marking the cell evaluated.
type Cell struct {
	Kind   CellKind
	Text   string
	Value  float64
	Expr   ExprHandle
	Dir    Direction
	Status EvalStatus
}
