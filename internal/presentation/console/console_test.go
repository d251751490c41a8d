package console_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/rivercross/internal/presentation/console"
	"github.com/aretw0/rivercross/internal/search"
)

func TestClassicOutput(t *testing.T) {
	want, err := os.ReadFile(filepath.Join("testdata", "classic.golden"))
	require.NoError(t, err)

	var buf bytes.Buffer
	console.PrintHeader(&buf)
	res, err := search.NewEngine(search.WithLifecycleHooks(console.Tracer(&buf))).Run(context.Background())
	require.NoError(t, err)
	console.Report(&buf, res)

	assert.Equal(t, string(want), buf.String())
}

func TestPrintSolutions(t *testing.T) {
	res, err := search.NewEngine().Run(context.Background())
	require.NoError(t, err)

	var buf bytes.Buffer
	console.PrintSolutions(&buf, res)

	out := buf.String()
	assert.Contains(t, out, "No. of solutions:  2\n")
	assert.Contains(t, out, "Solution 2\nNo. of moves: 7\n{L:WSCF R:}--FS moves right->>")
}
