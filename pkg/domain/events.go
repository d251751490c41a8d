package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventProcess  EventType = "process"
	EventAccept   EventType = "accept"
	EventSolution EventType = "solution"
	EventReject   EventType = "reject"
	EventComplete EventType = "complete"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	RunID     string    `json:"run_id"`
}

// NodeEvent is emitted when a node is dequeued, accepted, or found to be a solution.
type NodeEvent struct {
	EventBase
	Node *Node `json:"-"`
}

// RejectEvent is emitted for every move that does not become a node.
type RejectEvent struct {
	EventBase
	From   *Node        `json:"-"`
	Move   Move         `json:"move"`
	Reason RejectReason `json:"reason"`
	// Candidate is the would-be state. Zero for RejectAbsent.
	Candidate State `json:"-"`
}

// CompleteEvent is emitted once the queue is exhausted.
type CompleteEvent struct {
	EventBase
	Stats Stats `json:"stats"`
}

// LifecycleHooks defines callbacks for search observability.
// Any nil callback is skipped.
type LifecycleHooks struct {
	OnProcess  func(context.Context, *NodeEvent)
	OnAccept   func(context.Context, *NodeEvent)
	OnSolution func(context.Context, *NodeEvent)
	OnReject   func(context.Context, *RejectEvent)
	OnComplete func(context.Context, *CompleteEvent)
}

// ChainHooks returns hooks that invoke every given set in order.
func ChainHooks(sets ...LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnProcess: func(ctx context.Context, e *NodeEvent) {
			for _, h := range sets {
				if h.OnProcess != nil {
					h.OnProcess(ctx, e)
				}
			}
		},
		OnAccept: func(ctx context.Context, e *NodeEvent) {
			for _, h := range sets {
				if h.OnAccept != nil {
					h.OnAccept(ctx, e)
				}
			}
		},
		OnSolution: func(ctx context.Context, e *NodeEvent) {
			for _, h := range sets {
				if h.OnSolution != nil {
					h.OnSolution(ctx, e)
				}
			}
		},
		OnReject: func(ctx context.Context, e *RejectEvent) {
			for _, h := range sets {
				if h.OnReject != nil {
					h.OnReject(ctx, e)
				}
			}
		},
		OnComplete: func(ctx context.Context, e *CompleteEvent) {
			for _, h := range sets {
				if h.OnComplete != nil {
					h.OnComplete(ctx, e)
				}
			}
		},
	}
}
