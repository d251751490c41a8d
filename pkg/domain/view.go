package domain

import "strings"

// StateView is the serializable form of a State.
type StateView struct {
	Active Side     `json:"active" yaml:"active"`
	Left   []string `json:"left" yaml:"left"`
	Right  []string `json:"right" yaml:"right"`
	Text   string   `json:"text" yaml:"text"`
}

// NodeView is the serializable form of a Node. Children are referenced by ID.
type NodeView struct {
	ID       int       `json:"id" yaml:"id"`
	ParentID *int      `json:"parent_id,omitempty" yaml:"parent_id,omitempty"`
	Depth    int       `json:"depth" yaml:"depth"`
	Move     Move      `json:"move,omitempty" yaml:"move,omitempty"`
	Label    string    `json:"label,omitempty" yaml:"label,omitempty"`
	State    StateView `json:"state" yaml:"state"`
	Children []int     `json:"children" yaml:"children"`
	Solution bool      `json:"solution" yaml:"solution"`
}

// StepView is one crossing of a solution.
type StepView struct {
	Move  Move      `json:"move" yaml:"move"`
	Label string    `json:"label" yaml:"label"`
	State StateView `json:"state" yaml:"state"`
}

// SolutionView is a root-to-goal path.
type SolutionView struct {
	NodeID int        `json:"node_id" yaml:"node_id"`
	Moves  int        `json:"moves" yaml:"moves"`
	Start  StateView  `json:"start" yaml:"start"`
	Steps  []StepView `json:"steps" yaml:"steps"`
	Chain  string     `json:"chain" yaml:"chain"`
}

// ResultView is the serializable form of a whole Result.
type ResultView struct {
	RunID     string         `json:"run_id" yaml:"run_id"`
	Stats     Stats          `json:"stats" yaml:"stats"`
	Nodes     []NodeView     `json:"nodes" yaml:"nodes"`
	Solutions []SolutionView `json:"solutions" yaml:"solutions"`
}

// ViewOf converts a State.
func ViewOf(s State) StateView {
	return StateView{
		Active: s.Active,
		Left:   tokens(s.Left),
		Right:  tokens(s.Right),
		Text:   s.String(),
	}
}

func tokens(s Shore) []string {
	out := make([]string, 0, s.Len())
	for _, o := range s.Occupants() {
		out = append(out, o.String())
	}
	return out
}

// View converts a Node.
func (n *Node) View() NodeView {
	v := NodeView{
		ID:       n.ID,
		Depth:    n.Depth,
		Move:     n.Move,
		Label:    n.Label,
		State:    ViewOf(n.State),
		Children: make([]int, 0, len(n.Children)),
		Solution: n.IsSolution(),
	}
	if n.Parent != nil {
		id := n.Parent.ID
		v.ParentID = &id
	}
	for _, c := range n.Children {
		v.Children = append(v.Children, c.ID)
	}
	return v
}

// SolutionOf converts the path ending at a solution node.
func SolutionOf(n *Node) SolutionView {
	path := n.Path()
	v := SolutionView{
		NodeID: n.ID,
		Moves:  len(path) - 1,
		Start:  ViewOf(path[0].State),
		Steps:  make([]StepView, 0, len(path)-1),
		Chain:  Chain(path),
	}
	for _, step := range path[1:] {
		v.Steps = append(v.Steps, StepView{
			Move:  step.Move,
			Label: step.Label,
			State: ViewOf(step.State),
		})
	}
	return v
}

// Chain renders a path as "<s0>--<label1>->><s1>--...->><sk>".
func Chain(path []*Node) string {
	var sb strings.Builder
	for i, n := range path {
		sb.WriteString(n.State.String())
		if i+1 < len(path) {
			sb.WriteString("--")
			sb.WriteString(path[i+1].Label)
			sb.WriteString("->>")
		}
	}
	return sb.String()
}

// View converts a whole Result.
func (r *Result) View() ResultView {
	nodes := r.Nodes()
	v := ResultView{
		RunID:     r.RunID,
		Stats:     r.Stats,
		Nodes:     make([]NodeView, 0, len(nodes)),
		Solutions: make([]SolutionView, 0, len(r.Solutions)),
	}
	for _, n := range nodes {
		v.Nodes = append(v.Nodes, n.View())
	}
	for _, s := range r.Solutions {
		v.Solutions = append(v.Solutions, SolutionOf(s))
	}
	return v
}
