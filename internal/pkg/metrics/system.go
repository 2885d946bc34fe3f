// Package metrics собирает метрики процесса и хоста для /metrics.
package metrics

import (
	"context"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

const namespace = "ordertracker"

// DefaultCollectInterval - период опроса по умолчанию.
const DefaultCollectInterval = 5 * time.Second

var (
	SystemCPUUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "system_cpu_usage_percent",
			Help:      "Host CPU usage percentage",
		},
	)

	SystemMemoryUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "system_memory_usage_bytes",
			Help:      "Host memory usage in bytes",
		},
	)

	ApplicationMemoryUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "application_memory_usage_bytes",
			Help:      "Go heap allocation of the process in bytes",
		},
	)

	ApplicationGoroutines = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "application_goroutines",
			Help:      "Number of live goroutines",
		},
	)
)

// StartSystemMetricsCollector опрашивает хост каждые interval до отмены ctx.
// interval <= 0 означает DefaultCollectInterval.
func StartSystemMetricsCollector(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultCollectInterval
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				collectSystemMetrics()
			}
		}
	}()
}

func collectSystemMetrics() {
	collectProcessMetrics()

	// cpu.Percent блокирует на секунду замера
	cpuPercent, err := cpu.Percent(time.Second, false)
	if err == nil && len(cpuPercent) > 0 {
		SystemCPUUsage.Set(cpuPercent[0])
	}

	vmStat, err := mem.VirtualMemory()
	if err == nil {
		SystemMemoryUsage.Set(float64(vmStat.Used))
	}
}

func collectProcessMetrics() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	ApplicationMemoryUsage.Set(float64(m.Alloc))
	ApplicationGoroutines.Set(float64(runtime.NumGoroutine()))
}
