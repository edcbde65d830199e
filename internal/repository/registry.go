package repository

import (
	"context"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"

	"github.com/Schera-ole/hostexporter/internal/config"
	internalerrors "github.com/Schera-ole/hostexporter/internal/errors"
	models "github.com/Schera-ole/hostexporter/internal/model"
)

// GaugeRegistry implements the Repository interface on top of a
// dedicated prometheus registry.
//
// The set of gauges is fixed at construction. Each gauge is an atomic
// cell, so concurrent writers and renderers need no extra locking. The
// registry also carries the Go runtime and process collectors.
type GaugeRegistry struct {
	// registry gathers the gauges for rendering
	registry *prometheus.Registry

	// gauges maps a gauge name to its cell
	gauges map[string]prometheus.Gauge

	// order keeps the registration order used when rendering
	order []string
}

// NewGaugeRegistry registers one gauge per descriptor, in the given order,
// followed by the go_* and process_* collectors.
func NewGaugeRegistry(descs []models.GaugeDesc) (*GaugeRegistry, error) {
	gr := &GaugeRegistry{
		registry: prometheus.NewRegistry(),
		gauges:   make(map[string]prometheus.Gauge, len(descs)),
		order:    make([]string, 0, len(descs)),
	}
	for _, desc := range descs {
		if err := gr.register(desc); err != nil {
			return nil, err
		}
	}

	runtimeCollectors := []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	}
	for _, c := range runtimeCollectors {
		if err := gr.registry.Register(c); err != nil {
			return nil, fmt.Errorf("registering runtime collector: %w", err)
		}
	}
	return gr, nil
}

func (gr *GaugeRegistry) register(desc models.GaugeDesc) error {
	if desc.Name == "" || desc.Help == "" {
		return fmt.Errorf("%w: name %q, help %q", internalerrors.ErrInvalidMetric, desc.Name, desc.Help)
	}
	if _, exists := gr.gauges[desc.Name]; exists {
		return fmt.Errorf("%w: %s", internalerrors.ErrDuplicateMetric, desc.Name)
	}

	gauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: desc.Name,
		Help: desc.Help,
	})
	if err := gr.registry.Register(gauge); err != nil {
		return fmt.Errorf("%w: %s: %v", internalerrors.ErrInvalidMetric, desc.Name, err)
	}

	gr.gauges[desc.Name] = gauge
	gr.order = append(gr.order, desc.Name)
	return nil
}

// SetMetrics validates every metric before touching any gauge.
func (gr *GaugeRegistry) SetMetrics(ctx context.Context, metrics []models.Metric) error {
	for _, metric := range metrics {
		if metric.Type != config.GaugeType {
			return fmt.Errorf("%w: %s has type %q", internalerrors.ErrInvalidMetric, metric.Name, metric.Type)
		}
		if _, exists := gr.gauges[metric.Name]; !exists {
			return fmt.Errorf("%w: %s", internalerrors.ErrMetricNotFound, metric.Name)
		}
	}
	for _, metric := range metrics {
		gr.gauges[metric.Name].Set(metric.Value)
	}
	return nil
}

// GetMetricByName reads the current value of a gauge.
func (gr *GaugeRegistry) GetMetricByName(ctx context.Context, name string) (float64, error) {
	gauge, exists := gr.gauges[name]
	if !exists {
		return 0, fmt.Errorf("%w: %s", internalerrors.ErrMetricNotFound, name)
	}
	return readGauge(gauge)
}

// ListMetrics returns all gauges in registration order.
func (gr *GaugeRegistry) ListMetrics(ctx context.Context) ([]models.Metric, error) {
	result := make([]models.Metric, 0, len(gr.order))
	for _, name := range gr.order {
		value, err := readGauge(gr.gauges[name])
		if err != nil {
			return nil, err
		}
		result = append(result, models.Metric{Name: name, Type: config.GaugeType, Value: value})
	}
	return result, nil
}

// Render gathers the registry and writes one HELP/TYPE/sample triplet per
// gauge. The prometheus gatherer sorts families by name, so the gauges are
// re-emitted here in registration order, followed by the remaining
// runtime and process families in name order.
func (gr *GaugeRegistry) Render(w io.Writer) error {
	families, err := gr.registry.Gather()
	if err != nil {
		return fmt.Errorf("gathering gauges: %w", err)
	}

	byName := make(map[string]*dto.MetricFamily, len(families))
	for _, family := range families {
		byName[family.GetName()] = family
	}

	for _, name := range gr.order {
		family, ok := byName[name]
		if !ok {
			return fmt.Errorf("%w: %s missing from gathered families", internalerrors.ErrMetricNotFound, name)
		}
		if _, err := expfmt.MetricFamilyToText(w, family); err != nil {
			return fmt.Errorf("rendering %s: %w", name, err)
		}
	}

	for _, family := range families {
		if _, isGauge := gr.gauges[family.GetName()]; isGauge {
			continue
		}
		if _, err := expfmt.MetricFamilyToText(w, family); err != nil {
			return fmt.Errorf("rendering %s: %w", family.GetName(), err)
		}
	}
	return nil
}

// ContentType returns the media type of the text exposition format,
// "text/plain; version=0.0.4; charset=utf-8".
func (gr *GaugeRegistry) ContentType() string {
	return string(expfmt.NewFormat(expfmt.TypeTextPlain))
}

// Names returns the gauge names in registration order.
func (gr *GaugeRegistry) Names() []string {
	names := make([]string, len(gr.order))
	copy(names, gr.order)
	return names
}

func readGauge(gauge prometheus.Gauge) (float64, error) {
	var m dto.Metric
	if err := gauge.Write(&m); err != nil {
		return 0, fmt.Errorf("reading gauge: %w", err)
	}
	return m.GetGauge().GetValue(), nil
}
