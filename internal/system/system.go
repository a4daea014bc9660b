package system

import (
	"fmt"
	"os"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

// HostStats is a snapshot of the machine and of this process, printed in
// the performance report.
type HostStats struct {
	LogicalCPUs    int
	TotalMemory    uint64
	UsedMemoryPct  float64
	ProcessRSS     uint64
	Goroutines     int
	ProcessCPUTime float64 // seconds, user+system
}

// Snapshot collects HostStats. Fields that cannot be read on this platform
// are left at zero; only a failure to read anything is reported.
func Snapshot() (HostStats, error) {
	stats := HostStats{Goroutines: runtime.NumGoroutine()}
	var firstErr error

	if n, err := cpu.Counts(true); err == nil {
		stats.LogicalCPUs = n
	} else {
		firstErr = err
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		stats.TotalMemory = vm.Total
		stats.UsedMemoryPct = vm.UsedPercent
	} else if firstErr == nil {
		firstErr = err
	}

	proc, err := process.NewProcess(int32(os.Getpid()))
	if err == nil {
		if info, err := proc.MemoryInfo(); err == nil {
			stats.ProcessRSS = info.RSS
		}
		if times, err := proc.Times(); err == nil {
			stats.ProcessCPUTime = times.User + times.System
		}
	}

	if stats.LogicalCPUs == 0 && stats.TotalMemory == 0 && firstErr != nil {
		return stats, fmt.Errorf("failed to read host stats: %w", firstErr)
	}
	return stats, nil
}

// DefaultWorkers is the worker count used when none is configured.
func DefaultWorkers() int {
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// FormatBytes renders a byte count in MiB.
func FormatBytes(b uint64) string {
	return fmt.Sprintf("%.1f MiB", float64(b)/(1024*1024))
}
