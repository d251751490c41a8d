package tests

import (
	"context"
	"sync"
	"testing"

	"github.com/aretw0/rivercross/pkg/domain"
	"github.com/aretw0/rivercross/pkg/ports"
)

// SolverContractTest is a reusable test suite that verifies if an implementation complies with ports.Solver
// for the classic farmer, wolf, sheep and cabbage puzzle.
func SolverContractTest(t *testing.T, solver ports.Solver) {
	t.Helper()

	t.Run("Solve_Success", func(t *testing.T) {
		res, err := solver.Solve(context.Background())
		if err != nil {
			t.Fatalf("unexpected error solving: %v", err)
		}
		if res == nil || res.Root == nil {
			t.Fatal("expected a result with a root node")
		}
		if !res.Root.IsRoot() || res.Root.ID != 0 {
			t.Errorf("root must have id 0 and no parent, got id %d", res.Root.ID)
		}
		if len(res.Solutions) != 2 {
			t.Errorf("expected 2 solutions, got %d", len(res.Solutions))
		}
		for _, s := range res.Solutions {
			if !s.State.IsSolved() {
				t.Errorf("solution %d is not a goal state: %s", s.ID, s.State)
			}
			if s.Depth != 7 {
				t.Errorf("solution %d expected 7 crossings, got %d", s.ID, s.Depth)
			}
		}
	})

	t.Run("Find_NotFound", func(t *testing.T) {
		res, err := solver.Solve(context.Background())
		if err != nil {
			t.Fatalf("unexpected error solving: %v", err)
		}
		if _, err := res.Find(-1); err == nil {
			t.Error("expected error for non-existent node, got nil")
		}
	})

	t.Run("Tree_Consistent", func(t *testing.T) {
		res, err := solver.Solve(context.Background())
		if err != nil {
			t.Fatalf("unexpected error solving: %v", err)
		}

		nodes := res.Nodes()
		if len(nodes) != res.Stats.Nodes() {
			t.Errorf("expected %d nodes, got %d", res.Stats.Nodes(), len(nodes))
		}
		for _, n := range nodes {
			if !n.State.IsAllowed() {
				t.Errorf("node %d holds a forbidden state %s", n.ID, n.State)
			}
			if n.IsAncestorDuplicate() {
				t.Errorf("node %d repeats an ancestor state %s", n.ID, n.State)
			}
			found, err := res.Find(n.ID)
			if err != nil || found != n {
				t.Errorf("node %d cannot be found by id", n.ID)
			}
		}
	})

	t.Run("Solve_Concurrent", func(t *testing.T) {
		var wg sync.WaitGroup
		results := make([]*domain.Result, 8)
		errs := make([]error, len(results))
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i], errs[i] = solver.Solve(context.Background())
			}(i)
		}
		wg.Wait()

		for i, err := range errs {
			if err != nil {
				t.Fatalf("caller %d failed: %v", i, err)
			}
			if results[i].Stats.Nodes() != results[0].Stats.Nodes() {
				t.Errorf("caller %d saw %d nodes, want %d", i, results[i].Stats.Nodes(), results[0].Stats.Nodes())
			}
		}
	})
}
