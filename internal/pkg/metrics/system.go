package metrics

import (
	"context"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
)

const cpuSampleWindow = time.Second

var (
	SystemCPUUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "system_cpu_usage_percent",
			Help: "CPU usage percentage",
		},
	)

	SystemMemoryUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "system_memory_usage_bytes",
			Help: "System memory usage in bytes",
		},
	)

	ApplicationMemoryUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "application_memory_usage_bytes",
			Help: "Application memory usage in bytes (Go heap allocation)",
		},
	)

	ApplicationGoroutines = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "application_goroutines",
			Help: "Number of live goroutines",
		},
	)

	UploadDiskFree = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "upload_disk_free_bytes",
			Help: "Free space on the volume holding delivery photos",
		},
	)

	UploadDiskUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "upload_disk_usage_percent",
			Help: "Used space on the volume holding delivery photos",
		},
	)
)

// StartSystemMetricsCollector снимает метрики раз в interval до отмены ctx.
// uploadDir пустой - дисковые метрики не собираются.
func StartSystemMetricsCollector(ctx context.Context, interval time.Duration, uploadDir string) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				collectSystemMetrics(ctx, uploadDir)
			}
		}
	}()
}

func collectSystemMetrics(ctx context.Context, uploadDir string) {
	cpuPercent, err := cpu.PercentWithContext(ctx, cpuSampleWindow, false)
	if err == nil && len(cpuPercent) > 0 {
		SystemCPUUsage.Set(cpuPercent[0])
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	vmStat, err := mem.VirtualMemoryWithContext(ctx)
	if err == nil {
		SystemMemoryUsage.Set(float64(vmStat.Used))
	}

	ApplicationMemoryUsage.Set(float64(m.Alloc))
	ApplicationGoroutines.Set(float64(runtime.NumGoroutine()))

	if uploadDir == "" {
		return
	}
	usage, err := disk.UsageWithContext(ctx, uploadDir)
	if err == nil {
		UploadDiskFree.Set(float64(usage.Free))
		UploadDiskUsage.Set(usage.UsedPercent)
	}
}
