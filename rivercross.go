package rivercross

import (
	"context"
	"log/slog"
	"sync"

	"github.com/aretw0/rivercross/internal/logging"
	"github.com/aretw0/rivercross/internal/search"
	"github.com/aretw0/rivercross/pkg/domain"
)

// Solver is the high-level entry point for the rivercross library.
// It wraps the internal search engine and caches the finished tree so
// that several adapters can read it concurrently.
type Solver struct {
	hooks  domain.LifecycleHooks
	logger *slog.Logger

	mu     sync.Mutex
	result *domain.Result
}

// Option defines a functional option for configuring the Solver.
type Option func(*Solver)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Solver) {
		s.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the solver.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Solver) {
		s.logger = logger
	}
}

// New initializes a new Solver.
func New(opts ...Option) *Solver {
	s := &Solver{}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.NewNop()
	}
	return s
}

// Solve builds the search tree on the first call and returns the cached
// Result afterwards. Hooks only fire during the first, building call.
func (s *Solver) Solve(ctx context.Context) (*domain.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.result != nil {
		return s.result, nil
	}

	engine := search.NewEngine(
		search.WithLifecycleHooks(s.hooks),
		search.WithLogger(s.logger),
	)
	res, err := engine.Run(ctx)
	if err != nil {
		return nil, err
	}
	s.result = res
	return res, nil
}
