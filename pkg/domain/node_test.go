package domain_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/rivercross/pkg/domain"
)

func TestNode_IsAncestorDuplicate(t *testing.T) {
	root := domain.NewRoot(domain.InitialState())

	s1, ok := root.State.Transition(domain.MoveSheep)
	require.True(t, ok)
	n1 := domain.NewChild(root, 1, s1, domain.MoveSheep)
	assert.False(t, n1.IsAncestorDuplicate())
	root.Attach(n1)

	// Sheep goes straight back: equal to the root.
	back, ok := s1.Transition(domain.MoveSheep)
	require.True(t, ok)
	dup := domain.NewChild(n1, 2, back, domain.MoveSheep)
	assert.True(t, dup.IsAncestorDuplicate())

	s2, ok := s1.Transition(domain.MoveAlone)
	require.True(t, ok)
	n2 := domain.NewChild(n1, 2, s2, domain.MoveAlone)
	assert.False(t, n2.IsAncestorDuplicate())
	assert.Equal(t, 2, n2.Depth)
	assert.Equal(t, "F moves left", n2.Label)
}

func TestNode_SiblingBranchesAreNotDeduplicated(t *testing.T) {
	root := domain.NewRoot(domain.InitialState())
	s, _ := root.State.Transition(domain.MoveSheep)

	a := domain.NewChild(root, 1, s, domain.MoveSheep)
	b := domain.NewChild(root, 2, s, domain.MoveSheep)
	root.Attach(a)
	root.Attach(b)

	assert.False(t, b.IsAncestorDuplicate())
	assert.Len(t, root.Children, 2)
}

func TestNode_Path(t *testing.T) {
	root := domain.NewRoot(domain.InitialState())
	assert.True(t, root.IsRoot())
	assert.Equal(t, []*domain.Node{root}, root.Path())

	s1, _ := root.State.Transition(domain.MoveSheep)
	n1 := domain.NewChild(root, 1, s1, domain.MoveSheep)
	s2, _ := s1.Transition(domain.MoveAlone)
	n2 := domain.NewChild(n1, 2, s2, domain.MoveAlone)

	path := n2.Path()
	require.Len(t, path, 3)
	assert.Same(t, root, path[0])
	assert.Same(t, n1, path[1])
	assert.Same(t, n2, path[2])

	assert.Equal(t, "{L:WSCF R:}--FS moves right->>{L:WC R:FS}--F moves left->>{L:WCF R:S}", domain.Chain(path))
}

func TestParseMove(t *testing.T) {
	m, err := domain.ParseMove("fs")
	require.NoError(t, err)
	assert.Equal(t, domain.MoveSheep, m)

	_, err = domain.ParseMove("FWS")
	assert.ErrorIs(t, err, domain.ErrUnknownMove)

	assert.Equal(t, "farmer crosses alone", domain.MoveAlone.Describe())
	assert.Equal(t, "farmer crosses with the cabbage", domain.MoveCabbage.Describe())
}

func TestChainHooks(t *testing.T) {
	var calls []string
	first := domain.LifecycleHooks{
		OnProcess: func(_ context.Context, _ *domain.NodeEvent) { calls = append(calls, "first") },
	}
	second := domain.LifecycleHooks{
		OnProcess: func(_ context.Context, _ *domain.NodeEvent) { calls = append(calls, "second") },
		OnReject:  func(_ context.Context, _ *domain.RejectEvent) { calls = append(calls, "reject") },
	}

	hooks := domain.ChainHooks(first, second)
	hooks.OnProcess(context.Background(), &domain.NodeEvent{})
	hooks.OnReject(context.Background(), &domain.RejectEvent{})
	hooks.OnAccept(context.Background(), &domain.NodeEvent{})

	assert.Equal(t, []string{"first", "second", "reject"}, calls)
}
