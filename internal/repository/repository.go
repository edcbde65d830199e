package repository

import (
	"context"
	"io"

	models "github.com/Schera-ole/hostexporter/internal/model"
)

// Repository holds the exporter's gauges.
type Repository interface {
	// SetMetrics overwrites several gauges. Either every gauge is set or none is.
	SetMetrics(ctx context.Context, metrics []models.Metric) error

	// GetMetricByName and ListMetrics are read accessors. The scrape path
	// does not use them; they serve tests and inspection of gauge state.

	// GetMetricByName returns the current value of a single gauge.
	GetMetricByName(ctx context.Context, name string) (float64, error)

	// ListMetrics returns every gauge in registration order.
	ListMetrics(ctx context.Context) ([]models.Metric, error)

	// Render writes every gauge in the text exposition format.
	Render(w io.Writer) error

	// ContentType is the media type of the output produced by Render.
	ContentType() string
}
