// Package checks implements the category runners: the concrete probes
// behind each validation category. Every probe converts its own failure
// into a FAIL or WARN outcome at the probe boundary; nothing in this
// package returns an error to the orchestrator.
package checks

import (
	"time"

	"github.com/tmiller/ttscheck/internal/validate"
)

// Probe timeouts. Network and subprocess probes are bounded so a single
// unreachable host or hung process cannot stall the run.
const (
	dialTimeout       = 3 * time.Second
	evalTimeout       = 10 * time.Second
	helpTimeout       = 10 * time.Second
	listModelsTimeout = 15 * time.Second
	ffmpegTimeout     = 5 * time.Second
)

// For resolves a category to its runner. The switch is exhaustive over the
// closed category set; a nil return is impossible for values produced by
// validate.ParseCategory or validate.Categories.
func For(cat validate.Category) validate.RunnerFunc {
	switch cat {
	case validate.CategoryRuntime:
		return Runtime
	case validate.CategoryDependencies:
		return Dependencies
	case validate.CategoryResources:
		return Resources
	case validate.CategoryAccelerator:
		return Accelerator
	case validate.CategoryStructure:
		return Structure
	case validate.CategoryConfig:
		return ConfigFiles
	case validate.CategoryDeployment:
		return Deployment
	case validate.CategoryNetwork:
		return Network
	case validate.CategoryApplication:
		return Application
	case validate.CategoryAudio:
		return Audio
	default:
		return nil
	}
}
