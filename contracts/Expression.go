package contracts

type ExprKind int

const (
	ExprNumber ExprKind = iota
	ExprCellRef
	ExprBinaryOp
	ExprUnaryOp
)

// ExprHandle is a stable index into an ExprArena. Handles are never
// invalidated individually; the arena is one ownership unit.
type ExprHandle int

const NoExpr ExprHandle = -1

type ExprNode struct {
	Kind   ExprKind
	Number float64
	Row    int
	Col    int
	Op     byte
	Lhs    ExprHandle
	Rhs    ExprHandle
}

// ExprArena is an append-only store of expression nodes. It is populated
// during parsing and grows during evaluation when clone cells synthesize
// translated subtrees.
type ExprArena struct {
	nodes []ExprNode
}

func (a *ExprArena) Append(node ExprNode) ExprHandle {
	a.nodes = append(a.nodes, node)
	return ExprHandle(len(a.nodes) - 1)
}

func (a *ExprArena) Node(handle ExprHandle) *ExprNode {
	return &a.nodes[handle]
}

func (a *ExprArena) Size() int {
	return len(a.nodes)
}
