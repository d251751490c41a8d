package domain

import "strings"

// State is a snapshot of who stands on which bank and where the boat is.
// A State is never mutated after construction; Transition always builds new shores.
type State struct {
	// Active is the bank where the farmer and the boat currently are.
	Active Side

	Left  Shore
	Right Shore
}

// InitialState puts everyone on the left bank.
func InitialState() State {
	return State{
		Active: Left,
		Left:   NewShore(Occupants...),
		Right:  NewShore(),
	}
}

// Shore returns the occupants of the requested bank.
func (s State) Shore(side Side) Shore {
	if side == Left {
		return s.Left
	}
	return s.Right
}

// Transition applies m from the active bank to the opposite one.
// It returns false when any traveller named by m is not on the active bank.
func (s State) Transition(m Move) (State, bool) {
	next := State{
		Active: s.Active.Opposite(),
		Left:   s.Left.clone(),
		Right:  s.Right.clone(),
	}

	from, to := &next.Left, &next.Right
	if s.Active == Right {
		from, to = &next.Right, &next.Left
	}

	for _, o := range m.Occupants() {
		if !from.remove(o) {
			return State{}, false
		}
		to.add(o)
	}
	return next, true
}

// IsAllowed reports whether neither bank leaves the wolf with the sheep
// or the sheep with the cabbage unattended.
func (s State) IsAllowed() bool {
	return s.Left.safe() && s.Right.safe()
}

// IsSolved reports whether everyone reached the right bank.
func (s State) IsSolved() bool {
	all := NewShore(Occupants...).mask()
	return s.Left.IsEmpty() && s.Right.mask() == all
}

// Equal compares by content: same active bank and same membership per bank,
// regardless of the order occupants arrived in.
func (s State) Equal(other State) bool {
	return s.Active == other.Active &&
		s.Left.mask() == other.Left.mask() &&
		s.Right.mask() == other.Right.mask()
}

// String renders the canonical form, e.g. "{L:WSCF R:}".
func (s State) String() string {
	var sb strings.Builder
	sb.WriteString("{L:")
	sb.WriteString(s.Left.String())
	sb.WriteString(" R:")
	sb.WriteString(s.Right.String())
	sb.WriteString("}")
	return sb.String()
}
