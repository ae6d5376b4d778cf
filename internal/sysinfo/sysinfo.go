// Package sysinfo is a thin facade over host resource queries so the
// resource checks stay declarative. It wraps gopsutil with stdlib
// fallbacks where a degraded answer is better than none.
package sysinfo

import (
	"runtime"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/tmiller/ttscheck/internal/errors"
)

// CPUCount returns the number of logical CPU cores. It falls back to
// runtime.NumCPU when the host query fails, so it cannot error.
func CPUCount() int {
	n, err := cpu.Counts(true)
	if err != nil || n <= 0 {
		return runtime.NumCPU()
	}
	return n
}

// Memory returns total and available physical memory in bytes.
func Memory() (total, available uint64, err error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, 0, errors.Wrap(err, "querying virtual memory")
	}
	return vm.Total, vm.Available, nil
}

// DiskFree returns the free bytes on the filesystem containing path.
func DiskFree(path string) (uint64, error) {
	usage, err := disk.Usage(path)
	if err != nil {
		return 0, errors.Wrapf(err, "querying disk usage for %s", path)
	}
	return usage.Free, nil
}

// GB converts bytes to gigabytes for threshold comparisons.
func GB(bytes uint64) float64 {
	return float64(bytes) / (1 << 30)
}

// HumanBytes renders a byte count for display (e.g. "7.8 GiB").
func HumanBytes(bytes uint64) string {
	return humanize.IBytes(bytes)
}
