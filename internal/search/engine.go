// Package search builds the breadth-first state tree of the river-crossing puzzle.
package search

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/aretw0/rivercross/internal/logging"
	"github.com/aretw0/rivercross/pkg/domain"
)

// Engine expands states level by level, trying every move from every node.
type Engine struct {
	hooks  domain.LifecycleHooks
	logger *slog.Logger
	moves  []domain.Move
	start  domain.State
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates an engine starting from the puzzle's initial state.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		logger: logging.NewNop(),
		moves:  domain.Moves,
		start:  domain.InitialState(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// walker holds the mutable state of one run.
type walker struct {
	*Engine
	ctx    context.Context
	runID  string
	queue  []*domain.Node
	nextID int
	res    *domain.Result
}

// Run builds the complete tree. It only fails if ctx is cancelled.
func (e *Engine) Run(ctx context.Context) (*domain.Result, error) {
	begin := time.Now()
	w := &walker{
		Engine: e,
		ctx:    ctx,
		runID:  uuid.NewString(),
		nextID: 1,
	}
	root := domain.NewRoot(e.start)
	w.res = &domain.Result{
		RunID: w.runID,
		Root:  root,
		Stats: domain.Stats{Rejected: make(map[domain.RejectReason]int, len(domain.RejectReasons))},
	}
	for _, reason := range domain.RejectReasons {
		w.res.Stats.Rejected[reason] = 0
	}

	e.logger.DebugContext(ctx, "search started", "run_id", w.runID, "start", root.State.String())
	w.queue = append(w.queue, root)

	for len(w.queue) > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		w.expand(w.dequeue())
	}

	w.res.Stats.Solutions = len(w.res.Solutions)
	w.res.Stats.Duration = time.Since(begin)

	e.logger.InfoContext(ctx, "search finished",
		"run_id", w.runID,
		"nodes", w.res.Stats.Nodes(),
		"processed", w.res.Stats.Processed,
		"solutions", w.res.Stats.Solutions,
		"max_depth", w.res.Stats.MaxDepth,
	)
	if e.hooks.OnComplete != nil {
		e.hooks.OnComplete(ctx, &domain.CompleteEvent{
			EventBase: w.event(domain.EventComplete),
			Stats:     w.res.Stats,
		})
	}
	return w.res, nil
}

func (w *walker) dequeue() *domain.Node {
	n := w.queue[0]
	w.queue = w.queue[1:]
	w.res.Stats.Processed++
	w.logger.DebugContext(w.ctx, "processing", "level", n.Depth, "state", n.State.String())
	if w.hooks.OnProcess != nil {
		w.hooks.OnProcess(w.ctx, &domain.NodeEvent{EventBase: w.event(domain.EventProcess), Node: n})
	}
	return n
}

// expand tries every move from n and attaches the survivors.
func (w *walker) expand(n *domain.Node) {
	for _, m := range w.moves {
		candidate, ok := n.State.Transition(m)
		if !ok {
			w.reject(n, m, domain.RejectAbsent, domain.State{})
			continue
		}
		if !candidate.IsAllowed() {
			w.reject(n, m, domain.RejectUnsafe, candidate)
			continue
		}

		child := domain.NewChild(n, w.nextID, candidate, m)
		if child.IsAncestorDuplicate() {
			w.reject(n, m, domain.RejectCycle, candidate)
			continue
		}

		w.nextID++
		n.Attach(child)
		w.res.Stats.Accepted++
		if child.Depth > w.res.Stats.MaxDepth {
			w.res.Stats.MaxDepth = child.Depth
		}

		if child.IsSolution() {
			w.res.Solutions = append(w.res.Solutions, child)
			w.logger.DebugContext(w.ctx, "solution found", "level", child.Depth, "state", child.State.String())
			if w.hooks.OnSolution != nil {
				w.hooks.OnSolution(w.ctx, &domain.NodeEvent{EventBase: w.event(domain.EventSolution), Node: child})
			}
			continue
		}

		w.queue = append(w.queue, child)
		if w.hooks.OnAccept != nil {
			w.hooks.OnAccept(w.ctx, &domain.NodeEvent{EventBase: w.event(domain.EventAccept), Node: child})
		}
	}
}

func (w *walker) reject(from *domain.Node, m domain.Move, reason domain.RejectReason, candidate domain.State) {
	w.res.Stats.Rejected[reason]++
	if w.hooks.OnReject != nil {
		w.hooks.OnReject(w.ctx, &domain.RejectEvent{
			EventBase: w.event(domain.EventReject),
			From:      from,
			Move:      m,
			Reason:    reason,
			Candidate: candidate,
		})
	}
}

func (w *walker) event(t domain.EventType) domain.EventBase {
	return domain.EventBase{Timestamp: time.Now(), Type: t, RunID: w.runID}
}
