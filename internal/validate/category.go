package validate

import (
	"strings"

	"github.com/tmiller/ttscheck/internal/errors"
)

// Category identifies a named group of related checks. The set is closed:
// every category carries its runner via the dispatch in internal/checks,
// so an unknown category is impossible past flag parsing.
type Category int

const (
	// CategoryRuntime covers the Python interpreter and environment.
	CategoryRuntime Category = iota

	// CategoryDependencies covers required Python packages.
	CategoryDependencies

	// CategoryResources covers CPU, memory, and disk.
	CategoryResources

	// CategoryAccelerator covers GPU/CUDA (and MPS on macOS).
	CategoryAccelerator

	// CategoryStructure covers required project files and directories.
	CategoryStructure

	// CategoryConfig covers environment and configuration files.
	CategoryConfig

	// CategoryDeployment covers per-target deployment folders.
	CategoryDeployment

	// CategoryNetwork covers TCP reachability of external endpoints.
	CategoryNetwork

	// CategoryApplication covers smoke tests of the application under test.
	CategoryApplication

	// CategoryAudio covers the media converter binary and audio libraries.
	CategoryAudio
)

// Categories returns every category in its fixed execution order.
func Categories() []Category {
	return []Category{
		CategoryRuntime,
		CategoryDependencies,
		CategoryResources,
		CategoryAccelerator,
		CategoryStructure,
		CategoryConfig,
		CategoryDeployment,
		CategoryNetwork,
		CategoryApplication,
		CategoryAudio,
	}
}

// String returns the flag name used with --category.
func (c Category) String() string {
	switch c {
	case CategoryRuntime:
		return "python"
	case CategoryDependencies:
		return "dependencies"
	case CategoryResources:
		return "system"
	case CategoryAccelerator:
		return "gpu"
	case CategoryStructure:
		return "structure"
	case CategoryConfig:
		return "config"
	case CategoryDeployment:
		return "deployment"
	case CategoryNetwork:
		return "network"
	case CategoryApplication:
		return "application"
	case CategoryAudio:
		return "audio"
	default:
		return "unknown"
	}
}

// Title returns the display name used in outcome records.
func (c Category) Title() string {
	switch c {
	case CategoryRuntime:
		return "Python"
	case CategoryDependencies:
		return "Dependencies"
	case CategoryResources:
		return "System"
	case CategoryAccelerator:
		return "GPU"
	case CategoryStructure:
		return "Structure"
	case CategoryConfig:
		return "Config"
	case CategoryDeployment:
		return "Deployment"
	case CategoryNetwork:
		return "Network"
	case CategoryApplication:
		return "Application"
	case CategoryAudio:
		return "Audio"
	default:
		return "Unknown"
	}
}

// Section returns the console banner shown before the category runs.
func (c Category) Section() string {
	switch c {
	case CategoryRuntime:
		return "PYTHON ENVIRONMENT"
	case CategoryDependencies:
		return "PYTHON DEPENDENCIES"
	case CategoryResources:
		return "SYSTEM RESOURCES"
	case CategoryAccelerator:
		return "GPU AND ACCELERATION"
	case CategoryStructure:
		return "PROJECT STRUCTURE"
	case CategoryConfig:
		return "CONFIGURATION FILES"
	case CategoryDeployment:
		return "DEPLOYMENT CONFIGURATIONS"
	case CategoryNetwork:
		return "NETWORK CONNECTIVITY"
	case CategoryApplication:
		return "APPLICATION FUNCTIONALITY"
	case CategoryAudio:
		return "AUDIO SYSTEM"
	default:
		return "UNKNOWN"
	}
}

// CategoryNames returns the accepted --category values in execution order.
func CategoryNames() []string {
	cats := Categories()
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = c.String()
	}
	return names
}

// ParseCategory resolves a --category flag value. Unknown names return
// ErrUnknownCategory; this is a usage error, not a check failure.
func ParseCategory(name string) (Category, error) {
	for _, c := range Categories() {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, errors.Wrapf(errors.ErrUnknownCategory,
		"%q (valid: %s)", name, strings.Join(CategoryNames(), ", "))
}
