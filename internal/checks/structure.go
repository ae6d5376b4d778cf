package checks

import (
	"context"
	"os"

	"github.com/tmiller/ttscheck/internal/config"
	"github.com/tmiller/ttscheck/internal/validate"
)

// Structure verifies the project tree: required files and directories
// relative to the project root.
func Structure(ctx context.Context, col *validate.Collector, cfg *config.Config) {
	for _, f := range cfg.RequiredFiles {
		name := "File: " + f
		info, err := os.Stat(cfg.Path(f))
		if err != nil || info.IsDir() {
			col.Record(validate.CategoryStructure, name, validate.StatusFail, "Missing", "")
			continue
		}
		col.Record(validate.CategoryStructure, name, validate.StatusPass, "Exists", "")
	}

	for _, d := range cfg.RequiredDirs {
		name := "Directory: " + d
		info, err := os.Stat(cfg.Path(d))
		if err != nil || !info.IsDir() {
			col.Record(validate.CategoryStructure, name, validate.StatusFail, "Missing", "")
			continue
		}
		col.Record(validate.CategoryStructure, name, validate.StatusPass, "Exists", "")
	}
}
