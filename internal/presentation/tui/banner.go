package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner writes the rivercross banner in a blue-to-green gradient.
func PrintBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{`        _                                       `, "#38bdf8"},
		{`   _ __(_)_   _____ _ __ ___ _ __ ___  ___ ___ `, "#22d3ee"},
		{`  | '__| \ \ / / _ \ '__/ __| '__/ _ \/ __/ __|`, "#2dd4bf"},
		{`  | |  | |\ V /  __/ | | (__| | | (_) \__ \__ \`, "#34d399"},
		{`  |_|  |_| \_/ \___|_|  \___|_|  \___/|___/___/`, "#4ade80"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	if v := strings.TrimSpace(version); v != "" {
		fmt.Fprintln(w, termenv.String("  v"+v).Faint())
	}
	fmt.Fprintln(w)
}
