package checks

import (
	"context"
	"fmt"
	"runtime"

	"github.com/tmiller/ttscheck/internal/config"
	"github.com/tmiller/ttscheck/internal/pyenv"
	"github.com/tmiller/ttscheck/internal/sysinfo"
	"github.com/tmiller/ttscheck/internal/validate"
)

// Accelerator probes GPU support through the deployment's torch install:
// CUDA everywhere, plus Metal (MPS) on darwin hosts. Absence of a GPU is a
// warning, not a failure, since inference falls back to CPU.
func Accelerator(ctx context.Context, col *validate.Collector, cfg *config.Config) {
	py := pyenv.New(cfg.Interpreter, cfg.ProjectRoot)

	if _, err := py.ModuleVersion(ctx, evalTimeout, "torch"); err != nil {
		col.Record(validate.CategoryAccelerator, "PyTorch", validate.StatusFail,
			"PyTorch not installed", err.Error())
		return
	}

	info, err := py.CUDA(ctx, evalTimeout)
	switch {
	case err != nil:
		col.Record(validate.CategoryAccelerator, "NVIDIA CUDA", validate.StatusWarn,
			"CUDA probe failed", err.Error())
	case info.Available:
		col.Record(validate.CategoryAccelerator, "NVIDIA CUDA", validate.StatusPass,
			fmt.Sprintf("%d GPU(s): %s (%.1fGB)",
				info.DeviceCount, info.DeviceName, sysinfo.GB(info.MemoryBytes)),
			sysinfo.HumanBytes(info.MemoryBytes))
	default:
		col.Record(validate.CategoryAccelerator, "NVIDIA CUDA", validate.StatusWarn,
			"CUDA not available (will use CPU)", "")
	}

	if runtime.GOOS != "darwin" {
		return
	}
	ok, err := py.MPS(ctx, evalTimeout)
	if err != nil {
		// Older torch builds have no MPS backend at all; stay quiet.
		return
	}
	if ok {
		col.Record(validate.CategoryAccelerator, "Apple MPS", validate.StatusPass,
			"MPS acceleration available", "")
	} else {
		col.Record(validate.CategoryAccelerator, "Apple MPS", validate.StatusWarn,
			"MPS acceleration not available", "")
	}
}
