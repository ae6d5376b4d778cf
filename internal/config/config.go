// Package config provides configuration management for ttscheck using Viper.
package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"github.com/tmiller/ttscheck/internal/errors"
)

// AppName is the application name used for config file naming.
const AppName = "ttscheck"

// Config describes the deployment under test and where to probe it.
// Every field has a default reproducing the stock TTS Tool layout, so
// running ttscheck with no config file validates a standard checkout.
type Config struct {
	// ProjectRoot is the root of the deployment under test.
	ProjectRoot string `mapstructure:"project_root" yaml:"project_root"`

	// Interpreter is the Python executable used for runtime, dependency,
	// accelerator, and application probes.
	Interpreter string `mapstructure:"interpreter" yaml:"interpreter"`

	// ReportPath is where the JSON summary artifact is written.
	ReportPath string `mapstructure:"report_path" yaml:"report_path"`

	// Packages are the Python libraries the deployment requires.
	Packages []Package `mapstructure:"packages" yaml:"packages"`

	// RequiredFiles and RequiredDirs define the expected project layout,
	// relative to ProjectRoot.
	RequiredFiles []string `mapstructure:"required_files" yaml:"required_files"`
	RequiredDirs  []string `mapstructure:"required_dirs" yaml:"required_dirs"`

	// EnvFile is the env-format file checked for declared variables.
	EnvFile string `mapstructure:"env_file" yaml:"env_file"`

	// EnvVars are the variables expected to be declared in EnvFile.
	EnvVars []string `mapstructure:"env_vars" yaml:"env_vars"`

	// ProductionConfig is the YAML config validated for syntax.
	ProductionConfig string `mapstructure:"production_config" yaml:"production_config"`

	// PyProject is the TOML project file validated for syntax when present.
	PyProject string `mapstructure:"pyproject" yaml:"pyproject"`

	// DeploymentDir holds one folder per deployment target.
	DeploymentDir string `mapstructure:"deployment_dir" yaml:"deployment_dir"`

	// DeploymentTargets maps target folder names to display names.
	DeploymentTargets []Target `mapstructure:"deployment_targets" yaml:"deployment_targets"`

	// Endpoints are probed for TCP reachability.
	Endpoints []Endpoint `mapstructure:"endpoints" yaml:"endpoints"`

	// AudioLibraries are the Python audio packages the Audio category
	// verifies in addition to the ffmpeg binary.
	AudioLibraries []string `mapstructure:"audio_libraries" yaml:"audio_libraries"`
}

// Package is a required Python library and its display name.
type Package struct {
	Name        string `mapstructure:"name" yaml:"name"`
	Description string `mapstructure:"description" yaml:"description"`
}

// Target is a deployment configuration folder and its display name.
type Target struct {
	Dir  string `mapstructure:"dir" yaml:"dir"`
	Name string `mapstructure:"name" yaml:"name"`
}

// Endpoint is a named host:port probed over TCP.
type Endpoint struct {
	Name string `mapstructure:"name" yaml:"name"`
	Host string `mapstructure:"host" yaml:"host"`
	Port int    `mapstructure:"port" yaml:"port"`
}

// Path resolves a project-relative path against ProjectRoot.
func (c *Config) Path(rel string) string {
	return filepath.Join(c.ProjectRoot, rel)
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName(AppName)
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(filepath.Join(xdg.ConfigHome, AppName))

	viper.SetEnvPrefix("TTSCHECK")
	viper.AutomaticEnv()

	viper.SetDefault("project_root", ".")
	viper.SetDefault("interpreter", "python3")
	viper.SetDefault("report_path", "config_validation_report.json")
	viper.SetDefault("packages", defaultPackages())
	viper.SetDefault("required_files", []string{"main.py", "requirements.txt", "README.md"})
	viper.SetDefault("required_dirs", []string{
		"src", "src/tts_tool", "examples", "tests", "docs", "deployment_configs",
	})
	viper.SetDefault("env_file", ".env")
	viper.SetDefault("env_vars", []string{
		"TTS_DEVICE", "TTS_CACHE_DIR", "TTS_WEB_PORT", "TTS_DEFAULT_MODEL",
	})
	viper.SetDefault("production_config", "production/config/production.yml")
	viper.SetDefault("pyproject", "pyproject.toml")
	viper.SetDefault("deployment_dir", "deployment_configs")
	viper.SetDefault("deployment_targets", defaultTargets())
	viper.SetDefault("endpoints", defaultEndpoints())
	viper.SetDefault("audio_libraries", []string{"pydub", "librosa", "soundfile"})
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations and falls back to
// defaults when no file is found.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If the user specified a path, this is an error
			if path != "" {
				return nil, errors.Wrapf(err, "config file not found at %s", path)
			}
			// Otherwise it's fine to use defaults
		} else {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	return &cfg, nil
}

func defaultPackages() []map[string]any {
	return []map[string]any{
		{"name": "torch", "description": "PyTorch"},
		{"name": "transformers", "description": "Transformers"},
		{"name": "gradio", "description": "Gradio"},
		{"name": "librosa", "description": "Librosa"},
		{"name": "soundfile", "description": "SoundFile"},
		{"name": "datasets", "description": "Datasets"},
		{"name": "huggingface_hub", "description": "Hugging Face Hub"},
		{"name": "numpy", "description": "NumPy"},
		{"name": "scipy", "description": "SciPy"},
		{"name": "tqdm", "description": "tqdm"},
	}
}

func defaultTargets() []map[string]any {
	return []map[string]any{
		{"dir": "huggingface", "name": "Hugging Face Spaces"},
		{"dir": "streamlit", "name": "Streamlit Cloud"},
		{"dir": "docker", "name": "Docker Production"},
		{"dir": "render", "name": "Render.com"},
	}
}

func defaultEndpoints() []map[string]any {
	return []map[string]any{
		{"name": "Google DNS", "host": "8.8.8.8", "port": 53},
		{"name": "GitHub", "host": "github.com", "port": 443},
		{"name": "Hugging Face", "host": "huggingface.co", "port": 443},
	}
}
