package domain

import "strings"

// Occupant is one of the four travellers of the puzzle.
type Occupant byte

const (
	Farmer  Occupant = 'F'
	Wolf    Occupant = 'W'
	Sheep   Occupant = 'S'
	Cabbage Occupant = 'C'
)

// Occupants lists the fixed universe in the order they start on the left bank.
var Occupants = []Occupant{Wolf, Sheep, Cabbage, Farmer}

func (o Occupant) String() string {
	return string(rune(o))
}

// Name returns the lower-case english name of the occupant.
func (o Occupant) Name() string {
	switch o {
	case Farmer:
		return "farmer"
	case Wolf:
		return "wolf"
	case Sheep:
		return "sheep"
	case Cabbage:
		return "cabbage"
	}
	return "unknown"
}

func (o Occupant) bit() uint8 {
	switch o {
	case Farmer:
		return 1
	case Wolf:
		return 2
	case Sheep:
		return 4
	case Cabbage:
		return 8
	}
	return 0
}

// Side identifies a river bank.
type Side string

const (
	Left  Side = "left"
	Right Side = "right"
)

// Opposite returns the other bank.
func (s Side) Opposite() Side {
	if s == Left {
		return Right
	}
	return Left
}

// Shore is the ordered list of occupants standing on one bank.
// The zero value is an empty shore. Shores are values: every mutation
// helper returns a fresh copy and never touches the receiver's backing array.
type Shore struct {
	items []Occupant
}

// NewShore builds a shore holding the given occupants in order.
func NewShore(occupants ...Occupant) Shore {
	items := make([]Occupant, len(occupants))
	copy(items, occupants)
	return Shore{items: items}
}

// Contains reports whether o stands on this shore.
func (s Shore) Contains(o Occupant) bool {
	for _, item := range s.items {
		if item == o {
			return true
		}
	}
	return false
}

// Len returns the number of occupants on the shore.
func (s Shore) Len() int { return len(s.items) }

// IsEmpty reports whether nobody stands on the shore.
func (s Shore) IsEmpty() bool { return len(s.items) == 0 }

// Occupants returns a copy of the occupants in insertion order.
func (s Shore) Occupants() []Occupant {
	out := make([]Occupant, len(s.items))
	copy(out, s.items)
	return out
}

// String concatenates the occupant tokens in insertion order.
func (s Shore) String() string {
	var sb strings.Builder
	for _, item := range s.items {
		sb.WriteByte(byte(item))
	}
	return sb.String()
}

// clone returns an independent copy with spare capacity for one arrival.
func (s Shore) clone() Shore {
	items := make([]Occupant, len(s.items), len(s.items)+2)
	copy(items, s.items)
	return Shore{items: items}
}

// remove deletes o in place and reports whether it was present.
// Only called on shores produced by clone.
func (s *Shore) remove(o Occupant) bool {
	for i, item := range s.items {
		if item == o {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Shore) add(o Occupant) {
	s.items = append(s.items, o)
}

// mask is the order-insensitive identity of the shore.
func (s Shore) mask() uint8 {
	var m uint8
	for _, item := range s.items {
		m |= item.bit()
	}
	return m
}

// safe reports whether the shore satisfies both puzzle constraints on its own.
func (s Shore) safe() bool {
	if s.Contains(Farmer) {
		return true
	}
	if s.Contains(Wolf) && s.Contains(Sheep) {
		return false
	}
	if s.Contains(Sheep) && s.Contains(Cabbage) {
		return false
	}
	return true
}
