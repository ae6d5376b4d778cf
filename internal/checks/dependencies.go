package checks

import (
	"context"
	"fmt"

	"github.com/tmiller/ttscheck/internal/config"
	"github.com/tmiller/ttscheck/internal/pyenv"
	"github.com/tmiller/ttscheck/internal/validate"
)

// Dependencies verifies each required Python package is importable and
// reports its version.
func Dependencies(ctx context.Context, col *validate.Collector, cfg *config.Config) {
	py := pyenv.New(cfg.Interpreter, cfg.ProjectRoot)

	for _, pkg := range cfg.Packages {
		ver, err := py.ModuleVersion(ctx, evalTimeout, pkg.Name)
		if err != nil {
			col.Record(validate.CategoryDependencies, pkg.Name, validate.StatusFail,
				fmt.Sprintf("%s not installed", pkg.Description), err.Error())
			continue
		}
		col.Record(validate.CategoryDependencies, pkg.Name, validate.StatusPass,
			fmt.Sprintf("%s v%s", pkg.Description, ver), "")
	}
}
