// Package config provides configuration for the exporter.
package config

import "time"

const (
	// GaugeType represents the type string for gauge metrics.
	GaugeType = "gauge"

	// CPUSampleInterval is the window CPU utilization is measured over.
	CPUSampleInterval = time.Second

	// DiskPath is the filesystem whose usage is reported.
	DiskPath = "/"

	// MetricsPath is the scrape endpoint.
	MetricsPath = "/metrics"

	// RequestTimeout bounds a single request, sampling included.
	RequestTimeout = 15 * time.Second
)
