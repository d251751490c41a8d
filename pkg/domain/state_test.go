package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/rivercross/pkg/domain"
)

func state(active domain.Side, left, right string) domain.State {
	return domain.State{
		Active: active,
		Left:   shore(left),
		Right:  shore(right),
	}
}

func shore(tokens string) domain.Shore {
	occupants := make([]domain.Occupant, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		occupants = append(occupants, domain.Occupant(tokens[i]))
	}
	return domain.NewShore(occupants...)
}

func TestInitialState(t *testing.T) {
	s := domain.InitialState()
	assert.Equal(t, domain.Left, s.Active)
	assert.Equal(t, "{L:WSCF R:}", s.String())
	assert.True(t, s.IsAllowed())
	assert.False(t, s.IsSolved())
}

func TestState_Transition(t *testing.T) {
	t.Run("Moves travellers to the opposite bank", func(t *testing.T) {
		next, ok := domain.InitialState().Transition(domain.MoveSheep)
		require.True(t, ok)
		assert.Equal(t, domain.Right, next.Active)
		assert.Equal(t, "{L:WC R:FS}", next.String())
	})

	t.Run("Returns from the right bank", func(t *testing.T) {
		next, ok := state(domain.Right, "WC", "FS").Transition(domain.MoveAlone)
		require.True(t, ok)
		assert.Equal(t, domain.Left, next.Active)
		assert.Equal(t, "{L:WCF R:S}", next.String())
	})

	t.Run("Does not mutate the receiver", func(t *testing.T) {
		s := domain.InitialState()
		first, ok := s.Transition(domain.MoveWolf)
		require.True(t, ok)
		second, ok := s.Transition(domain.MoveWolf)
		require.True(t, ok)

		assert.Equal(t, "{L:WSCF R:}", s.String())
		assert.True(t, first.Equal(second))
		assert.Equal(t, first.String(), second.String())
	})

	t.Run("Results do not share shores", func(t *testing.T) {
		s := domain.InitialState()
		a, _ := s.Transition(domain.MoveAlone)
		b, _ := a.Transition(domain.MoveAlone)
		_, _ = b.Transition(domain.MoveCabbage)

		assert.Equal(t, "{L:WSC R:F}", a.String())
		assert.Equal(t, "{L:WSCF R:}", b.String())
	})
}

func TestState_TransitionAbsentTraveller(t *testing.T) {
	// Each token is tried against a state where the named passenger is on the far bank.
	tests := []struct {
		name  string
		from  domain.State
		move  domain.Move
		valid bool
	}{
		{"Farmer on right, active left", state(domain.Left, "WSC", "F"), domain.MoveAlone, false},
		{"Farmer on left, active right", state(domain.Right, "F", "WSC"), domain.MoveAlone, false},
		{"Wolf across, active left", state(domain.Left, "FSC", "W"), domain.MoveWolf, false},
		{"Wolf across, active right", state(domain.Right, "W", "FSC"), domain.MoveWolf, false},
		{"Sheep across, active left", state(domain.Left, "FWC", "S"), domain.MoveSheep, false},
		{"Sheep across, active right", state(domain.Right, "S", "FWC"), domain.MoveSheep, false},
		{"Cabbage across, active left", state(domain.Left, "FWS", "C"), domain.MoveCabbage, false},
		{"Cabbage across, active right", state(domain.Right, "C", "FWS"), domain.MoveCabbage, false},
		{"Wolf beside farmer, active left", state(domain.Left, "FW", "SC"), domain.MoveWolf, true},
		{"Cabbage beside farmer, active right", state(domain.Right, "WS", "FC"), domain.MoveCabbage, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := tt.from.Transition(tt.move)
			assert.Equal(t, tt.valid, ok)
		})
	}
}

func TestState_IsAllowed(t *testing.T) {
	tests := []struct {
		name    string
		state   domain.State
		allowed bool
	}{
		{"Wolf and sheep alone on left", state(domain.Right, "WS", "FC"), false},
		{"Wolf and sheep alone on right", state(domain.Left, "FC", "WS"), false},
		{"Sheep and cabbage alone on left", state(domain.Right, "SC", "FW"), false},
		{"Sheep and cabbage alone on right", state(domain.Left, "FW", "SC"), false},
		{"All three alone", state(domain.Right, "WSC", "F"), false},
		{"Farmer guards wolf and sheep", state(domain.Left, "FWS", "C"), true},
		{"Farmer guards sheep and cabbage", state(domain.Right, "W", "FSC"), true},
		{"Wolf and cabbage alone", state(domain.Right, "WC", "FS"), true},
		{"Sheep alone", state(domain.Left, "S", "FWC"), true},
		{"Everyone across", state(domain.Right, "", "FWSC"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.state.IsAllowed())
		})
	}
}

func TestState_IsSolved(t *testing.T) {
	assert.True(t, state(domain.Right, "", "WCFS").IsSolved())
	assert.True(t, state(domain.Right, "", "CWFS").IsSolved())
	assert.False(t, state(domain.Left, "S", "WCF").IsSolved())
	assert.False(t, domain.InitialState().IsSolved())
}

func TestState_Equal(t *testing.T) {
	assert.True(t, state(domain.Right, "C", "SFW").Equal(state(domain.Right, "C", "WSF")))
	assert.False(t, state(domain.Right, "C", "SFW").Equal(state(domain.Left, "C", "SFW")))
	assert.False(t, state(domain.Right, "C", "SFW").Equal(state(domain.Right, "W", "SFC")))
}

func TestState_PartitionHoldsAcrossTransitions(t *testing.T) {
	seen := []domain.State{domain.InitialState()}
	for i := 0; i < len(seen) && i < 64; i++ {
		s := seen[i]
		counts := map[domain.Occupant]int{}
		for _, o := range s.Left.Occupants() {
			counts[o]++
		}
		for _, o := range s.Right.Occupants() {
			counts[o]++
		}
		for _, o := range domain.Occupants {
			assert.Equal(t, 1, counts[o], "occupant %s in %s", o, s)
		}
		assert.Len(t, counts, 4)
		assert.True(t, s.Shore(s.Active).Contains(domain.Farmer), "farmer must be on the active bank of %s", s)

		for _, m := range domain.Moves {
			if next, ok := s.Transition(m); ok {
				seen = append(seen, next)
			}
		}
	}
}
