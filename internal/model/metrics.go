// Package models defines the data structures used throughout the exporter.
package models

// Names of the host gauges.
const (
	CPUUsagePercent    = "system_cpu_usage_percent"
	MemoryUsagePercent = "system_memory_usage_percent"
	DiskUsagePercent   = "system_disk_usage_percent"
	MemoryTotalGB      = "system_memory_total_gb"
	MemoryUsedGB       = "system_memory_used_gb"
	DiskTotalGB        = "system_disk_total_gb"
	DiskUsedGB         = "system_disk_used_gb"
)

// GaugeDesc describes a gauge before it is registered.
type GaugeDesc struct {
	// Name is the series name, unique within the registry
	Name string

	// Help is the human-readable description emitted on the HELP line
	Help string
}

// HostGauges lists the host gauges in registration order.
var HostGauges = []GaugeDesc{
	{Name: CPUUsagePercent, Help: "Current CPU usage percentage"},
	{Name: MemoryUsagePercent, Help: "Current memory usage percentage"},
	{Name: DiskUsagePercent, Help: "Current disk usage percentage"},
	{Name: MemoryTotalGB, Help: "Total memory in GB"},
	{Name: MemoryUsedGB, Help: "Used memory in GB"},
	{Name: DiskTotalGB, Help: "Total disk size in GB"},
	{Name: DiskUsedGB, Help: "Disk used in GB"},
}

// Metric is a single gauge reading.
type Metric struct {
	// Name is the gauge name
	Name string

	// Type is always config.GaugeType
	Type string

	// Value is the current gauge value
	Value float64
}

// MemoryUsage is a virtual memory reading in bytes.
type MemoryUsage struct {
	Total   uint64
	Used    uint64
	Percent float64
}

// DiskUsage is a filesystem usage reading in bytes.
type DiskUsage struct {
	Path    string
	Total   uint64
	Used    uint64
	Percent float64
}

// HostSample holds one reading of every sampled subsystem.
type HostSample struct {
	CPUPercent float64
	Memory     MemoryUsage
	Disk       DiskUsage
}
