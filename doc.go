/*
Package rivercross solves the farmer, wolf, sheep and cabbage river-crossing puzzle.

A farmer must row a wolf, a sheep and a cabbage across a river. The boat holds
the farmer and at most one passenger. Left unattended, the wolf eats the sheep
and the sheep eats the cabbage.

The solver expands every reachable, safe state breadth-first. A candidate is
discarded when one of its own ancestors already holds the same state, so the
result is a tree: two branches may reach the same configuration independently.
Every node whose state has everyone on the right bank is a solution and is not
expanded further.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/rivercross"
		"github.com/aretw0/rivercross/pkg/domain"
	)

	func main() {
		res, err := rivercross.New().Solve(context.Background())
		if err != nil {
			log.Fatal(err)
		}
		for _, s := range res.Solutions {
			fmt.Println(domain.Chain(s.Path()))
		}
	}

# Observability

Pass WithLifecycleHooks to receive an event for every processed node, every
accepted child, every rejected move and the final statistics. The CLI uses the
same hooks to print the search trace and to feed Prometheus counters.
*/
package rivercross
