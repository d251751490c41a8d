package tui_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/rivercross/internal/presentation/tui"
	"github.com/aretw0/rivercross/internal/search"
)

func TestSolutionsMarkdown(t *testing.T) {
	res, err := search.NewEngine().Run(context.Background())
	require.NoError(t, err)

	md := tui.SolutionsMarkdown(res)
	assert.Contains(t, md, "found **2** solution(s)")
	assert.Contains(t, md, "| Rejected (cycle) | 16 |")
	assert.Contains(t, md, "## Solution 1 (7 moves)")
	assert.Contains(t, md, "1. Farmer crosses with the sheep (right) → `{L:WC R:FS}`")
	assert.Contains(t, md, "7. Farmer crosses with the sheep (right) → `{L: R:CWFS}`")
}

func TestNewRenderer(t *testing.T) {
	render := tui.NewRenderer()
	out, err := render("# Title\n\nbody")
	require.NoError(t, err)
	assert.Contains(t, out, "body")
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	tui.PrintBanner(&buf, "0.1.0\n")
	assert.Contains(t, buf.String(), "v0.1.0")
}
