package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aretw0/rivercross/internal/config"
	httpAdapter "github.com/aretw0/rivercross/pkg/adapters/http"
	"github.com/aretw0/rivercross/pkg/adapters/mcp"
)

const shutdownTimeout = 5 * time.Second

// HTTPHandler builds the read-only API, mounting metrics on the configured path.
func (a *App) HTTPHandler() http.Handler {
	var opts []httpAdapter.Option
	if h := a.MetricsHandler(); h != nil {
		opts = append(opts,
			httpAdapter.WithMetricsHandler(h),
			httpAdapter.WithMetricsPath(a.Config.Metrics.Path),
		)
	}
	return httpAdapter.NewHandler(a.Solver, opts...)
}

// RunServe exposes the tree over HTTP until ctx is cancelled.
func RunServe(ctx context.Context, cfg config.Config) error {
	app, err := NewApp(cfg)
	if err != nil {
		return err
	}
	// Build the tree before accepting traffic so the first request is cheap.
	if _, err := app.Solver.Solve(ctx); err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	srv := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: app.HTTPHandler(),
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		app.Logger.Info("Starting rivercross server", "addr", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.Logger.Warn("Graceful shutdown did not complete", "timeout", shutdownTimeout, "error", err)
			if err := srv.Close(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("error killing server: %w", err)
			}
		}
		app.Logger.Info("rivercross server stopped gracefully")
		return nil
	}
}

// RunMCP serves the MCP tools on the configured transport.
func RunMCP(ctx context.Context, cfg config.Config) error {
	app, err := NewApp(cfg)
	if err != nil {
		return err
	}
	srv := mcp.NewServer(app.Solver)

	switch cfg.MCP.Transport {
	case config.TransportStdio:
		app.Logger.Info("Starting rivercross MCP Server (Stdio)")
		return srv.ServeStdio()
	case config.TransportSSE:
		app.Logger.Info("Starting rivercross MCP Server (SSE)", "addr", cfg.MCP.Addr)
		if err := srv.ServeSSE(ctx, cfg.MCP.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
	return fmt.Errorf("%w: %q", config.ErrUnknownTransport, cfg.MCP.Transport)
}
