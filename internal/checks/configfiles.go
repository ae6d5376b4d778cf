package checks

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/tmiller/ttscheck/internal/config"
	"github.com/tmiller/ttscheck/internal/errors"
	"github.com/tmiller/ttscheck/internal/validate"
	"github.com/tmiller/ttscheck/pkg/fileutil"
)

// ConfigFiles validates the deployment's configuration surface: the .env
// file and its expected variables, the production YAML config, the
// pyproject TOML, and the Docker packaging files.
func ConfigFiles(ctx context.Context, col *validate.Collector, cfg *config.Config) {
	checkEnvFile(col, cfg)
	checkProductionConfig(col, cfg)
	checkPyProject(col, cfg)

	for _, f := range []string{"Dockerfile", "docker-compose.yml"} {
		if _, err := os.Stat(cfg.Path(f)); err != nil {
			col.Record(validate.CategoryConfig, f, validate.StatusWarn, "Not found", "")
			continue
		}
		col.Record(validate.CategoryConfig, f, validate.StatusPass, "Exists", "")
	}
}

func checkEnvFile(col *validate.Collector, cfg *config.Config) {
	data, err := fileutil.ReadFileWithLimit(cfg.Path(cfg.EnvFile))
	if err != nil {
		col.Record(validate.CategoryConfig, ".env file", validate.StatusWarn,
			"Not found (will use defaults)", "")
		return
	}
	col.Record(validate.CategoryConfig, ".env file", validate.StatusPass, "Exists", "")

	// Prefer a real env parse; fall back to a substring scan when the file
	// has lines viper's env reader rejects.
	declared := func(name string) bool {
		return strings.Contains(string(data), name+"=")
	}
	v := viper.New()
	v.SetConfigType("env")
	if err := v.ReadConfig(bytes.NewReader(data)); err == nil {
		declared = v.IsSet
	}

	for _, name := range cfg.EnvVars {
		if declared(name) {
			col.Record(validate.CategoryConfig, name, validate.StatusPass, "Set", "")
		} else {
			col.Record(validate.CategoryConfig, name, validate.StatusWarn, "Not set", "")
		}
	}
}

func checkProductionConfig(col *validate.Collector, cfg *config.Config) {
	const name = "Production config"
	data, err := fileutil.ReadFileWithLimit(cfg.Path(cfg.ProductionConfig))
	if err != nil {
		col.Record(validate.CategoryConfig, name, validate.StatusWarn, "Not found", "")
		return
	}
	col.Record(validate.CategoryConfig, name, validate.StatusPass, "Exists", "")

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		col.Record(validate.CategoryConfig, name+" syntax", validate.StatusFail,
			"Invalid YAML", err.Error())
		return
	}
	col.Record(validate.CategoryConfig, name+" syntax", validate.StatusInfo,
		"Valid YAML format", "")
}

func checkPyProject(col *validate.Collector, cfg *config.Config) {
	data, err := fileutil.ReadFileWithLimit(cfg.Path(cfg.PyProject))
	if err != nil {
		// pyproject.toml is optional; nothing to report when absent.
		return
	}
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		col.Record(validate.CategoryConfig, cfg.PyProject, validate.StatusFail,
			"Invalid TOML", tomlErrorDetail(err))
		return
	}
	col.Record(validate.CategoryConfig, cfg.PyProject, validate.StatusPass,
		"Valid TOML format", "")
}

// tomlErrorDetail includes the decoder's position when available.
func tomlErrorDetail(err error) string {
	var derr *toml.DecodeError
	if errors.As(err, &derr) {
		row, col := derr.Position()
		return fmt.Sprintf("%s (line %d, column %d)", derr.Error(), row, col)
	}
	return err.Error()
}
