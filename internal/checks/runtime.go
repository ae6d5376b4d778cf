package checks

import (
	"context"
	"fmt"

	goversion "github.com/hashicorp/go-version"

	"github.com/tmiller/ttscheck/internal/config"
	"github.com/tmiller/ttscheck/internal/pyenv"
	"github.com/tmiller/ttscheck/internal/validate"
)

// minPython is the minimum supported interpreter version.
var minPython = goversion.Must(goversion.NewVersion("3.8"))

// Runtime validates the Python interpreter: version, isolated environment,
// and pip availability.
func Runtime(ctx context.Context, col *validate.Collector, cfg *config.Config) {
	py := pyenv.New(cfg.Interpreter, cfg.ProjectRoot)

	v, err := py.Version(ctx, evalTimeout)
	switch {
	case err != nil:
		col.Record(validate.CategoryRuntime, "Version", validate.StatusFail,
			fmt.Sprintf("Interpreter %s not usable", cfg.Interpreter), err.Error())
	case v.GreaterThanOrEqual(minPython):
		col.Record(validate.CategoryRuntime, "Version", validate.StatusPass,
			fmt.Sprintf("Python %s", v), "")
	default:
		col.Record(validate.CategoryRuntime, "Version", validate.StatusFail,
			fmt.Sprintf("Python %s (3.8+ required)", v), "")
	}

	if env, ok := pyenv.VirtualEnv(); ok {
		col.Record(validate.CategoryRuntime, "Virtual Environment", validate.StatusPass,
			fmt.Sprintf("Active: %s", env), "")
	} else {
		col.Record(validate.CategoryRuntime, "Virtual Environment", validate.StatusWarn,
			"No virtual environment detected", "")
	}

	if pip, err := py.PipVersion(ctx, evalTimeout); err != nil {
		col.Record(validate.CategoryRuntime, "pip", validate.StatusFail,
			"pip not available", err.Error())
	} else {
		col.Record(validate.CategoryRuntime, "pip", validate.StatusPass,
			fmt.Sprintf("pip %s", pip), "")
	}
}
