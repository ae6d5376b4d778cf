package checks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tmiller/ttscheck/internal/config"
	"github.com/tmiller/ttscheck/internal/validate"
)

// Deployment verifies each deployment target has a populated configuration
// directory under the deployment dir.
func Deployment(ctx context.Context, col *validate.Collector, cfg *config.Config) {
	for _, t := range cfg.DeploymentTargets {
		dir := filepath.Join(cfg.ProjectRoot, cfg.DeploymentDir, t.Dir)
		entries, err := os.ReadDir(dir)
		if err != nil {
			col.Record(validate.CategoryDeployment, t.Name, validate.StatusFail,
				"Configuration missing", err.Error())
			continue
		}
		col.Record(validate.CategoryDeployment, t.Name, validate.StatusPass,
			fmt.Sprintf("%d files", len(entries)), dir)
	}
}
