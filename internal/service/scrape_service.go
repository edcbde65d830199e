// Package service provides the sampling and rendering logic of the exporter.
package service

import (
	"bytes"
	"context"
	"fmt"
	"math"

	"github.com/Schera-ole/hostexporter/internal/config"
	internalerrors "github.com/Schera-ole/hostexporter/internal/errors"
	models "github.com/Schera-ole/hostexporter/internal/model"
	"github.com/Schera-ole/hostexporter/internal/repository"
	"github.com/Schera-ole/hostexporter/internal/sampler"
)

const bytesPerGB = 1024 * 1024 * 1024

// ScrapeService samples the host and renders the gauges it owns.
//
// It is the only writer of its repository. Concurrent scrapes are allowed:
// each one samples independently and the last write to a gauge wins.
type ScrapeService struct {
	// repository holds the gauges
	repository repository.Repository

	// provider reads the operating system
	provider sampler.Provider
}

// NewScrapeService creates a ScrapeService over the given gauges and provider.
func NewScrapeService(repo repository.Repository, provider sampler.Provider) *ScrapeService {

	return &ScrapeService{repository: repo, provider: provider}
}

// Scrape samples the host, updates every gauge and renders the repository.
//
// If any subsystem fails to sample, no gauge is updated and the returned
// error matches errors.ErrSampling.
func (s *ScrapeService) Scrape(ctx context.Context) ([]byte, string, error) {

	sample, err := s.Sample(ctx)
	if err != nil {
		return nil, "", err
	}
	if err := s.Update(ctx, sample); err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	if err := s.repository.Render(&buf); err != nil {
		return nil, "", fmt.Errorf("rendering gauges: %w", err)
	}
	return buf.Bytes(), s.repository.ContentType(), nil
}

// Sample reads CPU, memory and disk utilization without touching the gauges.
// The CPU reading blocks for config.CPUSampleInterval.
func (s *ScrapeService) Sample(ctx context.Context) (models.HostSample, error) {

	cpuPercent, err := s.provider.CPUPercent(ctx, config.CPUSampleInterval)
	if err != nil {
		return models.HostSample{}, internalerrors.NewSamplingError("cpu", err)
	}

	memory, err := s.provider.VirtualMemory(ctx)
	if err != nil {
		return models.HostSample{}, internalerrors.NewSamplingError("memory", err)
	}

	disk, err := s.provider.DiskUsage(ctx, config.DiskPath)
	if err != nil {
		return models.HostSample{}, internalerrors.NewSamplingError("disk", err)
	}

	return models.HostSample{
		CPUPercent: cpuPercent,
		Memory:     memory,
		Disk:       disk,
	}, nil
}

// Update writes a sample into the gauges in one call.
func (s *ScrapeService) Update(ctx context.Context, sample models.HostSample) error {

	return s.repository.SetMetrics(ctx, GaugeValues(sample))
}

// GaugeValues converts a sample into gauge readings. Byte counts become
// gigabytes (1024³ bytes) rounded to two decimals, half away from zero.
// Percentages are kept as sampled.
func GaugeValues(sample models.HostSample) []models.Metric {
	gauge := func(name string, value float64) models.Metric {
		return models.Metric{Name: name, Type: config.GaugeType, Value: value}
	}
	return []models.Metric{
		gauge(models.CPUUsagePercent, sample.CPUPercent),
		gauge(models.MemoryUsagePercent, sample.Memory.Percent),
		gauge(models.DiskUsagePercent, sample.Disk.Percent),
		gauge(models.MemoryTotalGB, BytesToGB(sample.Memory.Total)),
		gauge(models.MemoryUsedGB, BytesToGB(sample.Memory.Used)),
		gauge(models.DiskTotalGB, BytesToGB(sample.Disk.Total)),
		gauge(models.DiskUsedGB, BytesToGB(sample.Disk.Used)),
	}
}

// BytesToGB converts bytes to gigabytes rounded to two decimals.
func BytesToGB(b uint64) float64 {
	return math.Round(float64(b)/bytesPerGB*100) / 100
}
