package cli

import (
	"context"
	"log/slog"

	"github.com/aretw0/rivercross/pkg/domain"
)

// debugHooks logs every rejected move; processed and accepted nodes are
// already logged by the engine.
func debugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnReject: func(ctx context.Context, e *domain.RejectEvent) {
			logger.DebugContext(ctx, "move rejected",
				"from", e.From.State.String(),
				"move", string(e.Move),
				"reason", string(e.Reason),
			)
		},
	}
}
