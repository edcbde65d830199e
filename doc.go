// Package hostexporter implements a Prometheus exporter for host resource utilization.
//
// On every scrape the exporter samples the operating system and updates seven gauges:
//   - system_cpu_usage_percent: CPU utilization measured over one second
//   - system_memory_usage_percent, system_memory_total_gb, system_memory_used_gb
//   - system_disk_usage_percent, system_disk_total_gb, system_disk_used_gb (root filesystem)
//
// Sizes are reported in gigabytes (1024³ bytes) rounded to two decimals. The gauges are
// rendered in the Prometheus text exposition format, in registration order, followed
// by the exporter's own go_* and process_* metrics. If any
// subsystem cannot be sampled the scrape fails with HTTP 500 and the gauges keep their
// previous values.
//
// Features:
//   - GET /metrics (and /metrics/) scrape endpoint
//   - GET /ping liveness endpoint
//   - Response compression using gzip
//   - Structured logging
//   - Graceful shutdown handling
//
// The server supports configuration via command-line flags and environment variables.
// The gaugelint command checks gauge descriptors and process exits in the source tree.
package hostexporter
