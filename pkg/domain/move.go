package domain

import (
	"fmt"
	"strings"
)

// Move names the occupants that cross together. The farmer always rows.
type Move string

const (
	MoveAlone   Move = "F"
	MoveWolf    Move = "FW"
	MoveSheep   Move = "FS"
	MoveCabbage Move = "FC"
)

// Moves is the fixed order in which the search tries every move.
var Moves = []Move{MoveAlone, MoveWolf, MoveSheep, MoveCabbage}

// ParseMove resolves a textual token (case-insensitive) to a Move.
func ParseMove(token string) (Move, error) {
	m := Move(strings.ToUpper(strings.TrimSpace(token)))
	for _, known := range Moves {
		if m == known {
			return known, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMove, token)
}

// Occupants returns the travellers of the move, farmer first.
func (m Move) Occupants() []Occupant {
	out := make([]Occupant, 0, len(m))
	for i := 0; i < len(m); i++ {
		out = append(out, Occupant(m[i]))
	}
	return out
}

// Describe returns a human phrase for the move.
func (m Move) Describe() string {
	occupants := m.Occupants()
	if len(occupants) <= 1 {
		return "farmer crosses alone"
	}
	return "farmer crosses with the " + occupants[1].Name()
}

// Label renders the edge text used in solution chains, e.g. "FS moves right".
func (m Move) Label(destination Side) string {
	return fmt.Sprintf("%s moves %s", m, destination)
}
