package hostgauges

import "github.com/prometheus/client_golang/prometheus"

type GaugeDesc struct {
	Name string
	Help string
}

const (
	cpuUsage  = "system_cpu_usage_percent"
	diskTotal = "System.Disk.Total"
)

var good = []GaugeDesc{
	{Name: cpuUsage, Help: "Current CPU usage percentage"},
	{Name: "system_memory_used_gb", Help: "Used memory in GB"},
}

var bad = []GaugeDesc{
	{Name: diskTotal, Help: "Total disk size in GB"}, // want `gauge name "System.Disk.Total" is not snake_case`
	{Name: "system_disk_used_gb", Help: ""},           // want `gauge "system_disk_used_gb" has no help text`
	{Name: "system_memory_total_gb"},                  // want `gauge "system_memory_total_gb" has no help text`
	{Help: "Orphan help"},                             // want `gauge descriptor has no name`
}

var memory = prometheus.NewGauge(prometheus.GaugeOpts{
	Name: "system_memory_usage_percent",
	Help: "Current memory usage percentage",
})

var disk = prometheus.NewGauge(prometheus.GaugeOpts{
	Name: "DiskUsage", // want `gauge name "DiskUsage" is not snake_case`
	Help: "Current disk usage percentage",
})

func dynamic(name string) GaugeDesc {
	return GaugeDesc{Name: name, Help: "Built at runtime"}
}

func mustRegister(err error) {
	if err != nil {
		panic(err) // want "found usage of panic"
	}
}
