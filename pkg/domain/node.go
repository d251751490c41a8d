package domain

// Node is a vertex of the search tree.
// Parent is a plain back-pointer used for upward walks only; ownership flows
// from a parent to its Children.
type Node struct {
	// ID is the discovery sequence number. The root is 0.
	ID int

	State    State
	Parent   *Node
	Children []*Node

	// Depth is the number of crossings from the root.
	Depth int

	// Move is the crossing that produced this node (empty for the root).
	Move Move
	// Label is the printable edge text, e.g. "FS moves right".
	Label string
}

// NewRoot wraps the starting state.
func NewRoot(state State) *Node {
	return &Node{State: state}
}

// NewChild builds a node reached from parent by m. The child is not attached:
// callers decide whether it survives the cycle check before calling Attach.
func NewChild(parent *Node, id int, state State, m Move) *Node {
	return &Node{
		ID:     id,
		State:  state,
		Parent: parent,
		Depth:  parent.Depth + 1,
		Move:   m,
		Label:  m.Label(state.Active),
	}
}

// Attach appends child to the ordered children of n.
func (n *Node) Attach(child *Node) {
	n.Children = append(n.Children, child)
}

// IsRoot reports whether n has no parent.
func (n *Node) IsRoot() bool { return n.Parent == nil }

// IsSolution reports whether the node's state is the goal.
func (n *Node) IsSolution() bool { return n.State.IsSolved() }

// IsAncestorDuplicate reports whether a strict ancestor holds an equal state.
// Only the node's own root path is inspected; sibling branches may reach
// the same state independently.
func (n *Node) IsAncestorDuplicate() bool {
	for a := n.Parent; a != nil; a = a.Parent {
		if n.State.Equal(a.State) {
			return true
		}
	}
	return false
}

// Path returns the nodes from the root down to n.
func (n *Node) Path() []*Node {
	var reversed []*Node
	for cur := n; cur != nil; cur = cur.Parent {
		reversed = append(reversed, cur)
	}
	path := make([]*Node, len(reversed))
	for i, node := range reversed {
		path[len(reversed)-1-i] = node
	}
	return path
}
