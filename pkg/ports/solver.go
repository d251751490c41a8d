package ports

import (
	"context"

	"github.com/aretw0/rivercross/pkg/domain"
)

// Solver produces the finished search tree.
// Implementations must be safe for concurrent use.
type Solver interface {
	Solve(ctx context.Context) (*domain.Result, error)
}
