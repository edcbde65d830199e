// Package sampler reads resource utilization from the operating system.
package sampler

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"

	models "github.com/Schera-ole/hostexporter/internal/model"
)

// Provider is the source of host readings.
type Provider interface {
	// CPUPercent measures overall CPU utilization over interval, blocking
	// for its whole duration.
	CPUPercent(ctx context.Context, interval time.Duration) (float64, error)

	// VirtualMemory reports total and used memory.
	VirtualMemory(ctx context.Context) (models.MemoryUsage, error)

	// DiskUsage reports usage of the filesystem mounted at path.
	DiskUsage(ctx context.Context, path string) (models.DiskUsage, error)
}

// HostProvider implements Provider with gopsutil.
type HostProvider struct{}

func NewHostProvider() *HostProvider {
	return &HostProvider{}
}

func (p *HostProvider) CPUPercent(ctx context.Context, interval time.Duration) (float64, error) {
	percents, err := cpu.PercentWithContext(ctx, interval, false)
	if err != nil {
		return 0, fmt.Errorf("error getting CPU usage: %w", err)
	}
	if len(percents) == 0 {
		return 0, fmt.Errorf("error getting CPU usage: no readings returned")
	}
	return percents[0], nil
}

func (p *HostProvider) VirtualMemory(ctx context.Context) (models.MemoryUsage, error) {
	memory, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return models.MemoryUsage{}, fmt.Errorf("error getting memory usage: %w", err)
	}
	return models.MemoryUsage{
		Total:   memory.Total,
		Used:    memory.Used,
		Percent: memory.UsedPercent,
	}, nil
}

func (p *HostProvider) DiskUsage(ctx context.Context, path string) (models.DiskUsage, error) {
	usage, err := disk.UsageWithContext(ctx, path)
	if err != nil {
		return models.DiskUsage{}, fmt.Errorf("error getting disk usage of %s: %w", path, err)
	}
	return models.DiskUsage{
		Path:    usage.Path,
		Total:   usage.Total,
		Used:    usage.Used,
		Percent: usage.UsedPercent,
	}, nil
}
