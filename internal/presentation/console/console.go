// Package console renders the search as the classic line-oriented trace:
// the processing log while the tree is built, then the breadth-first dump,
// then every solution as a chain of states.
package console

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/rivercross/pkg/domain"
)

// Tracer returns hooks that print one line per dequeued node and one per accepted child.
func Tracer(w io.Writer) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnProcess: func(_ context.Context, e *domain.NodeEvent) {
			fmt.Fprintf(w, "Processing Level %d %s\n", e.Node.Depth, e.Node.State)
		},
		OnAccept: func(_ context.Context, e *domain.NodeEvent) {
			fmt.Fprintf(w, "Adding state %s\n", e.Node.State)
		},
		OnSolution: func(_ context.Context, e *domain.NodeEvent) {
			fmt.Fprintf(w, "Found solution %s\n", e.Node.State)
		},
	}
}

// PrintHeader writes the banner printed before the search starts.
func PrintHeader(w io.Writer) {
	fmt.Fprint(w, "Solving Wolf, Sheep, Cabbage, Farmer, River Crossing Puzzle\n\n")
	fmt.Fprintln(w, "Creating State Graph using Breadth First Search")
}

// PrintGraph writes every node of the tree in breadth-first order.
func PrintGraph(w io.Writer, res *domain.Result) {
	fmt.Fprint(w, "\n\nState Graph in Breadth first order\n")
	for _, n := range res.Nodes() {
		fmt.Fprintf(w, "Level %d %s\n", n.Depth, n.State)
	}
	fmt.Fprint(w, "\n\n\n")
}

// PrintSolutions writes the solution count and the chain of every solution.
func PrintSolutions(w io.Writer, res *domain.Result) {
	fmt.Fprintln(w, "Solutions to the River Crossing Puzzle")
	fmt.Fprintf(w, "No. of solutions:  %d\n", len(res.Solutions))
	for i, s := range res.Solutions {
		path := s.Path()
		fmt.Fprintf(w, "Solution %d\n", i+1)
		fmt.Fprintf(w, "No. of moves: %d\n", len(path)-1)
		fmt.Fprintln(w, domain.Chain(path))
	}
}

// Report writes everything that follows the search trace.
func Report(w io.Writer, res *domain.Result) {
	PrintGraph(w, res)
	PrintSolutions(w, res)
}
