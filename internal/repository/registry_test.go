package repository

import (
	"bytes"
	"context"
	"runtime"
	"strings"
	"sync"
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Schera-ole/hostexporter/internal/config"
	internalerrors "github.com/Schera-ole/hostexporter/internal/errors"
	models "github.com/Schera-ole/hostexporter/internal/model"
)

func newHostRegistry(t *testing.T) *GaugeRegistry {
	t.Helper()
	gr, err := NewGaugeRegistry(models.HostGauges)
	require.NoError(t, err)
	return gr
}

func TestNewGaugeRegistry(t *testing.T) {
	gr := newHostRegistry(t)

	names := gr.Names()
	require.Len(t, names, len(models.HostGauges))
	for i, desc := range models.HostGauges {
		assert.Equal(t, desc.Name, names[i])
	}
}

func TestNewGaugeRegistry_InvalidDescriptors(t *testing.T) {
	tests := []struct {
		name  string
		descs []models.GaugeDesc
		err   error
	}{
		{
			name:  "empty name",
			descs: []models.GaugeDesc{{Name: "", Help: "help"}},
			err:   internalerrors.ErrInvalidMetric,
		},
		{
			name:  "empty help",
			descs: []models.GaugeDesc{{Name: "some_gauge", Help: ""}},
			err:   internalerrors.ErrInvalidMetric,
		},
		{
			name: "duplicate name",
			descs: []models.GaugeDesc{
				{Name: "some_gauge", Help: "first"},
				{Name: "some_gauge", Help: "second"},
			},
			err: internalerrors.ErrDuplicateMetric,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gr, err := NewGaugeRegistry(tt.descs)
			assert.Nil(t, gr)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestGaugeRegistry_SetAndGet(t *testing.T) {
	gr := newHostRegistry(t)
	ctx := context.Background()

	value, err := gr.GetMetricByName(ctx, models.CPUUsagePercent)
	require.NoError(t, err)
	assert.Equal(t, 0.0, value)

	err = gr.SetMetrics(ctx, []models.Metric{
		{Name: models.CPUUsagePercent, Type: config.GaugeType, Value: 42.5},
		{Name: models.MemoryTotalGB, Type: config.GaugeType, Value: 16},
	})
	require.NoError(t, err)

	value, err = gr.GetMetricByName(ctx, models.CPUUsagePercent)
	require.NoError(t, err)
	assert.Equal(t, 42.5, value)

	value, err = gr.GetMetricByName(ctx, models.MemoryTotalGB)
	require.NoError(t, err)
	assert.Equal(t, 16.0, value)

	// overwritten, not accumulated
	err = gr.SetMetrics(ctx, []models.Metric{{Name: models.CPUUsagePercent, Type: config.GaugeType, Value: 7}})
	require.NoError(t, err)
	value, err = gr.GetMetricByName(ctx, models.CPUUsagePercent)
	require.NoError(t, err)
	assert.Equal(t, 7.0, value)

	_, err = gr.GetMetricByName(ctx, "unknown_gauge")
	assert.ErrorIs(t, err, internalerrors.ErrMetricNotFound)
}

func TestGaugeRegistry_SetMetricsIsAllOrNothing(t *testing.T) {
	gr := newHostRegistry(t)
	ctx := context.Background()

	err := gr.SetMetrics(ctx, []models.Metric{
		{Name: models.CPUUsagePercent, Type: config.GaugeType, Value: 99},
		{Name: "unknown_gauge", Type: config.GaugeType, Value: 1},
	})
	assert.ErrorIs(t, err, internalerrors.ErrMetricNotFound)

	err = gr.SetMetrics(ctx, []models.Metric{
		{Name: models.CPUUsagePercent, Type: config.GaugeType, Value: 99},
		{Name: models.DiskUsedGB, Type: "counter", Value: 1},
	})
	assert.ErrorIs(t, err, internalerrors.ErrInvalidMetric)

	value, err := gr.GetMetricByName(ctx, models.CPUUsagePercent)
	require.NoError(t, err)
	assert.Equal(t, 0.0, value)
}

func TestGaugeRegistry_ListMetrics(t *testing.T) {
	gr := newHostRegistry(t)
	ctx := context.Background()

	require.NoError(t, gr.SetMetrics(ctx, []models.Metric{
		{Name: models.DiskUsedGB, Type: config.GaugeType, Value: 250},
	}))

	metrics, err := gr.ListMetrics(ctx)
	require.NoError(t, err)
	require.Len(t, metrics, len(models.HostGauges))
	for i, desc := range models.HostGauges {
		assert.Equal(t, desc.Name, metrics[i].Name)
		assert.Equal(t, config.GaugeType, metrics[i].Type)
	}
	assert.Equal(t, 250.0, metrics[len(metrics)-1].Value)
}

func TestGaugeRegistry_RenderKeepsRegistrationOrder(t *testing.T) {
	gr, err := NewGaugeRegistry([]models.GaugeDesc{
		{Name: "zeta_gauge", Help: "Last alphabetically"},
		{Name: "alpha_gauge", Help: "First alphabetically"},
	})
	require.NoError(t, err)
	require.NoError(t, gr.SetMetrics(context.Background(), []models.Metric{
		{Name: "zeta_gauge", Type: config.GaugeType, Value: 42.5},
		{Name: "alpha_gauge", Type: config.GaugeType, Value: 16},
	}))

	var buf bytes.Buffer
	require.NoError(t, gr.Render(&buf))

	expected := "# HELP zeta_gauge Last alphabetically\n" +
		"# TYPE zeta_gauge gauge\n" +
		"zeta_gauge 42.5\n" +
		"# HELP alpha_gauge First alphabetically\n" +
		"# TYPE alpha_gauge gauge\n" +
		"alpha_gauge 16\n"
	assert.True(t, strings.HasPrefix(buf.String(), expected), buf.String())
}

func TestGaugeRegistry_RenderAppendsRuntimeFamilies(t *testing.T) {
	gr := newHostRegistry(t)
	require.NoError(t, gr.SetMetrics(context.Background(), []models.Metric{
		{Name: models.CPUUsagePercent, Type: config.GaugeType, Value: 42.5},
	}))

	var buf bytes.Buffer
	require.NoError(t, gr.Render(&buf))

	var parser expfmt.TextParser
	families, err := parser.TextToMetricFamilies(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	for _, desc := range models.HostGauges {
		require.Contains(t, families, desc.Name)
	}
	assert.Equal(t, 42.5, families[models.CPUUsagePercent].GetMetric()[0].GetGauge().GetValue())

	goroutines, ok := families["go_goroutines"]
	require.True(t, ok, "missing go_goroutines")
	assert.Equal(t, dto.MetricType_GAUGE, goroutines.GetType())
	assert.Greater(t, goroutines.GetMetric()[0].GetGauge().GetValue(), 0.0)

	var processFamilies int
	for name := range families {
		if strings.HasPrefix(name, "process_") {
			processFamilies++
		}
	}
	if runtime.GOOS == "linux" {
		assert.Contains(t, families, "process_cpu_seconds_total")
		assert.Positive(t, processFamilies)
	}

	// host gauges come first, runtime families after the last one
	var typed []string
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.HasPrefix(line, "# TYPE ") {
			typed = append(typed, strings.Fields(line)[2])
		}
	}
	require.Greater(t, len(typed), len(models.HostGauges))
	for i, desc := range models.HostGauges {
		assert.Equal(t, desc.Name, typed[i])
	}
	for _, name := range typed[len(models.HostGauges):] {
		assert.False(t, strings.HasPrefix(name, "system_"), name)
	}
}

func TestGaugeRegistry_RenderEveryGaugeOnce(t *testing.T) {
	gr := newHostRegistry(t)

	var buf bytes.Buffer
	require.NoError(t, gr.Render(&buf))
	out := buf.String()

	for _, desc := range models.HostGauges {
		assert.Equal(t, 1, strings.Count(out, "# HELP "+desc.Name+" "+desc.Help+"\n"), desc.Name)
		assert.Equal(t, 1, strings.Count(out, "# TYPE "+desc.Name+" gauge\n"), desc.Name)
		assert.Equal(t, 1, strings.Count(out, "\n"+desc.Name+" "), desc.Name)
	}
}

func TestGaugeRegistry_ContentType(t *testing.T) {
	gr := newHostRegistry(t)
	assert.Equal(t, "text/plain; version=0.0.4; charset=utf-8", gr.ContentType())
}

func TestGaugeRegistry_ConcurrentSetAndRender(t *testing.T) {
	gr := newHostRegistry(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(v float64) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				assert.NoError(t, gr.SetMetrics(ctx, []models.Metric{
					{Name: models.CPUUsagePercent, Type: config.GaugeType, Value: v},
				}))
				var buf bytes.Buffer
				assert.NoError(t, gr.Render(&buf))
			}
		}(float64(i))
	}
	wg.Wait()

	value, err := gr.GetMetricByName(ctx, models.CPUUsagePercent)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, value, 0.0)
	assert.Less(t, value, 8.0)
}
