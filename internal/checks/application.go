package checks

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tmiller/ttscheck/internal/config"
	"github.com/tmiller/ttscheck/internal/pyenv"
	"github.com/tmiller/ttscheck/internal/validate"
)

// sourceImport smoke-tests the application's import surface the way the
// web UI and CLI entry points load it.
const sourceImport = `import sys; sys.path.insert(0, "src"); from tts_tool import TTSProcessor`

// Application smoke-tests the deployment's entry points: the main.py CLI
// (--help and --list-models) and the importability of the source package.
func Application(ctx context.Context, col *validate.Collector, cfg *config.Config) {
	py := pyenv.New(cfg.Interpreter, cfg.ProjectRoot)

	if _, err := os.Stat(cfg.Path("main.py")); err != nil {
		col.Record(validate.CategoryApplication, "main.py --help", validate.StatusFail,
			"main.py not found", "")
	} else {
		runEntryPoint(ctx, col, py, "main.py --help", helpTimeout, "main.py", "--help")
	}

	runEntryPoint(ctx, col, py, "List models", listModelsTimeout, "main.py", "--list-models")

	initPath := filepath.Join("src", "tts_tool", "__init__.py")
	if _, err := os.Stat(cfg.Path(initPath)); err != nil {
		col.Record(validate.CategoryApplication, "Source module", validate.StatusFail,
			"Module structure invalid", initPath+" not found")
		return
	}
	col.Record(validate.CategoryApplication, "Source module", validate.StatusPass,
		"Module structure valid", "")

	if err := py.CheckImport(ctx, helpTimeout, sourceImport); err != nil {
		col.Record(validate.CategoryApplication, "TTSProcessor import", validate.StatusFail,
			"Import failed", err.Error())
		return
	}
	col.Record(validate.CategoryApplication, "TTSProcessor import", validate.StatusPass,
		"Import successful", "")
}

func runEntryPoint(ctx context.Context, col *validate.Collector, py pyenv.Interpreter,
	name string, timeout time.Duration, args ...string) {
	res, err := py.Run(ctx, timeout, args...)
	switch {
	case err != nil:
		col.Record(validate.CategoryApplication, name, validate.StatusFail,
			"Command error", err.Error())
	case res.ExitCode != 0:
		col.Record(validate.CategoryApplication, name, validate.StatusFail,
			"Command failed", lastLine(res.Stderr))
	default:
		col.Record(validate.CategoryApplication, name, validate.StatusPass,
			"Command works", "")
	}
}

// lastLine returns the final non-empty line of s, which for Python
// tracebacks is the exception summary.
func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if l := strings.TrimSpace(lines[i]); l != "" {
			return l
		}
	}
	return strings.TrimSpace(s)
}
