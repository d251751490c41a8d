package metrics_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/rivercross/internal/metrics"
	"github.com/aretw0/rivercross/internal/search"
)

func TestRecorder_MatchesStats(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := metrics.NewRecorder(reg)
	require.NoError(t, err)

	res, err := search.NewEngine(search.WithLifecycleHooks(rec.Hooks())).Run(context.Background())
	require.NoError(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)

	sums := map[string]float64{}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				sums[mf.GetName()] += m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				sums[mf.GetName()] += m.GetGauge().GetValue()
			}
		}
	}

	assert.Equal(t, float64(res.Stats.Processed), sums["rivercross_nodes_processed_total"])
	assert.Equal(t, float64(res.Stats.Accepted), sums["rivercross_states_added_total"])
	assert.Equal(t, float64(res.Stats.Solutions), sums["rivercross_solutions_found_total"])
	assert.Equal(t, float64(1), sums["rivercross_searches_total"])
	assert.Equal(t, float64(7), sums["rivercross_search_max_depth"])
	assert.Equal(t, float64(17+11+16), sums["rivercross_moves_rejected_total"])
}

func TestRecorder_RejectReasons(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := metrics.NewRecorder(reg)
	require.NoError(t, err)

	_, err = search.NewEngine(search.WithLifecycleHooks(rec.Hooks())).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, testutil.CollectAndCount(reg, "rivercross_moves_rejected_total"))
	assert.Equal(t, 1, testutil.CollectAndCount(reg, "rivercross_solutions_found_total"))
	assert.Equal(t, 1, testutil.CollectAndCount(reg, "rivercross_searches_total"))
}

func TestNewRecorder_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metrics.NewRecorder(reg)
	require.NoError(t, err)

	_, err = metrics.NewRecorder(reg)
	assert.Error(t, err)
}
