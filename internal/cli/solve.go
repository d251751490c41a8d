package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/rivercross"
	"github.com/aretw0/rivercross/internal/config"
	"github.com/aretw0/rivercross/internal/presentation/console"
	"github.com/aretw0/rivercross/internal/presentation/graph"
	"github.com/aretw0/rivercross/internal/presentation/tui"
	"github.com/aretw0/rivercross/pkg/domain"
)

// RunSolve builds the tree and writes it to w in the configured format.
func RunSolve(ctx context.Context, w io.Writer, cfg config.Config) error {
	format := cfg.Format
	if format == config.FormatAuto {
		format = config.FormatText
		if isTerminal(w) {
			format = config.FormatRich
		}
	}

	// The text format streams the trace while the tree is built.
	var extra []domain.LifecycleHooks
	if format == config.FormatText {
		extra = append(extra, console.Tracer(w))
	}

	app, err := NewApp(cfg, extra...)
	if err != nil {
		return err
	}
	if format == config.FormatText {
		console.PrintHeader(w)
	}
	res, err := app.Solver.Solve(ctx)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	switch format {
	case config.FormatText:
		console.Report(w, res)
	case config.FormatRich:
		if cfg.Banner {
			tui.PrintBanner(w, rivercross.Version)
		}
		out, err := tui.NewRenderer()(tui.SolutionsMarkdown(res))
		if err != nil {
			return fmt.Errorf("render failed: %w", err)
		}
		fmt.Fprint(w, out)
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res.View())
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res.View()); err != nil {
			return err
		}
		return enc.Close()
	case config.FormatMermaid:
		fmt.Fprint(w, graph.GenerateMermaid(res, nil))
	default:
		return fmt.Errorf("%w: %q", config.ErrUnknownFormat, format)
	}
	return nil
}

// RunGraph writes the Mermaid diagram, optionally highlighting solution paths.
func RunGraph(ctx context.Context, w io.Writer, cfg config.Config, highlight bool) error {
	app, err := NewApp(cfg)
	if err != nil {
		return err
	}
	res, err := app.Solver.Solve(ctx)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	var overlay *graph.GraphOverlay
	if highlight {
		overlay = graph.SolutionOverlay(res)
	}
	fmt.Fprint(w, graph.GenerateMermaid(res, overlay))
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
