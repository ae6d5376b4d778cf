package checks

import (
	"context"
	"fmt"

	"github.com/tmiller/ttscheck/internal/config"
	"github.com/tmiller/ttscheck/internal/sysinfo"
	"github.com/tmiller/ttscheck/internal/validate"
)

// Resource thresholds, in cores and gigabytes. TTS inference is memory
// hungry and model downloads need headroom on disk.
const (
	cpuGood = 4
	cpuMin  = 2

	memGoodGB = 8
	memMinGB  = 4

	diskGoodGB = 10
	diskMinGB  = 5
)

// Resources validates host capacity: CPU cores, physical memory, and free
// disk space under the project root.
func Resources(ctx context.Context, col *validate.Collector, cfg *config.Config) {
	cores := sysinfo.CPUCount()
	switch {
	case cores >= cpuGood:
		col.Record(validate.CategoryResources, "CPU", validate.StatusPass,
			fmt.Sprintf("%d cores (Good)", cores), "")
	case cores >= cpuMin:
		col.Record(validate.CategoryResources, "CPU", validate.StatusWarn,
			fmt.Sprintf("%d cores (Minimum)", cores), "")
	default:
		col.Record(validate.CategoryResources, "CPU", validate.StatusFail,
			fmt.Sprintf("%d cores (Insufficient)", cores), "")
	}

	total, available, err := sysinfo.Memory()
	if err != nil {
		col.Record(validate.CategoryResources, "Memory", validate.StatusWarn,
			"Could not check memory", err.Error())
	} else {
		msg := fmt.Sprintf("%.1fGB total, %.1fGB available",
			sysinfo.GB(total), sysinfo.GB(available))
		switch {
		case sysinfo.GB(total) >= memGoodGB:
			col.Record(validate.CategoryResources, "Memory", validate.StatusPass, msg, "")
		case sysinfo.GB(total) >= memMinGB:
			col.Record(validate.CategoryResources, "Memory", validate.StatusWarn,
				msg+" (8GB+ recommended)", "")
		default:
			col.Record(validate.CategoryResources, "Memory", validate.StatusFail,
				msg+" (4GB minimum required)", "")
		}
	}

	free, err := sysinfo.DiskFree(cfg.ProjectRoot)
	if err != nil {
		col.Record(validate.CategoryResources, "Disk Space", validate.StatusWarn,
			"Could not check disk space", err.Error())
		return
	}
	msg := fmt.Sprintf("%.1fGB free", sysinfo.GB(free))
	switch {
	case sysinfo.GB(free) >= diskGoodGB:
		col.Record(validate.CategoryResources, "Disk Space", validate.StatusPass, msg, "")
	case sysinfo.GB(free) >= diskMinGB:
		col.Record(validate.CategoryResources, "Disk Space", validate.StatusWarn,
			msg+" (10GB+ recommended)", "")
	default:
		col.Record(validate.CategoryResources, "Disk Space", validate.StatusFail,
			msg+" (5GB minimum required)", "")
	}
}
