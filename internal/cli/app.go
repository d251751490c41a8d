package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/rivercross"
	"github.com/aretw0/rivercross/internal/config"
	"github.com/aretw0/rivercross/internal/logging"
	"github.com/aretw0/rivercross/internal/metrics"
	"github.com/aretw0/rivercross/pkg/domain"
)

// App bundles everything a command needs: settings, logger, metrics and the solver.
type App struct {
	Config   config.Config
	Logger   *slog.Logger
	Registry *prometheus.Registry
	Solver   *rivercross.Solver
}

// LoadConfig reads the config file and applies flag overrides on top.
func LoadConfig(path string, overrides map[string]any) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Apply(overrides); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// NewApp wires a solver with the standard CLI conventions.
// Extra hooks run before the metrics hooks, in the given order.
func NewApp(cfg config.Config, extra ...domain.LifecycleHooks) (*App, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	app := &App{
		Config: cfg,
		Logger: logging.New(level),
	}

	hooks := append([]domain.LifecycleHooks{}, extra...)
	if cfg.Metrics.Enabled {
		app.Registry = prometheus.NewRegistry()
		rec, err := metrics.NewRecorder(app.Registry)
		if err != nil {
			return nil, fmt.Errorf("error registering metrics: %w", err)
		}
		hooks = append(hooks, rec.Hooks())
	}
	if app.Logger.Enabled(context.Background(), slog.LevelDebug) {
		hooks = append(hooks, debugHooks(app.Logger))
	}

	app.Solver = rivercross.New(
		rivercross.WithLogger(app.Logger),
		rivercross.WithLifecycleHooks(domain.ChainHooks(hooks...)),
	)
	return app, nil
}

// MetricsHandler returns the Prometheus handler, or nil when metrics are disabled.
func (a *App) MetricsHandler() http.Handler {
	if a.Registry == nil {
		return nil
	}
	return promhttp.HandlerFor(a.Registry, promhttp.HandlerOpts{})
}
