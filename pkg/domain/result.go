package domain

import (
	"fmt"
	"time"
)

// RejectReason classifies why a move did not produce a node.
type RejectReason string

const (
	// RejectAbsent: a traveller named by the move is on the other bank.
	RejectAbsent RejectReason = "absent"
	// RejectUnsafe: the resulting state leaves a risky pair unattended.
	RejectUnsafe RejectReason = "unsafe"
	// RejectCycle: an ancestor already holds the resulting state.
	RejectCycle RejectReason = "cycle"
)

// RejectReasons lists every reason in a stable order.
var RejectReasons = []RejectReason{RejectAbsent, RejectUnsafe, RejectCycle}

// Stats summarizes one search run.
type Stats struct {
	Processed int                  `json:"processed" yaml:"processed"`
	Accepted  int                  `json:"accepted" yaml:"accepted"`
	Solutions int                  `json:"solutions" yaml:"solutions"`
	Rejected  map[RejectReason]int `json:"rejected" yaml:"rejected"`
	MaxDepth  int                  `json:"max_depth" yaml:"max_depth"`
	Duration  time.Duration        `json:"duration" yaml:"duration"`
}

// Nodes returns the total number of tree nodes, root included.
func (s Stats) Nodes() int { return s.Accepted + 1 }

// Result is the complete search tree plus the solution nodes in discovery order.
// It is built once and never mutated afterwards.
type Result struct {
	RunID     string
	Root      *Node
	Solutions []*Node
	Stats     Stats
}

// Nodes returns every node in breadth-first order from the root.
func (r *Result) Nodes() []*Node {
	if r == nil || r.Root == nil {
		return nil
	}
	out := make([]*Node, 0, r.Stats.Nodes())
	queue := []*Node{r.Root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		out = append(out, n)
		queue = append(queue, n.Children...)
	}
	return out
}

// Find returns the node with the given discovery ID.
func (r *Result) Find(id int) (*Node, error) {
	for _, n := range r.Nodes() {
		if n.ID == id {
			return n, nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
}

// Paths returns the root-to-solution path of every solution.
func (r *Result) Paths() [][]*Node {
	paths := make([][]*Node, 0, len(r.Solutions))
	for _, s := range r.Solutions {
		paths = append(paths, s.Path())
	}
	return paths
}
