// Package commands implements the CLI for ttscheck.
package commands

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tmiller/ttscheck/internal/checks"
	"github.com/tmiller/ttscheck/internal/config"
	"github.com/tmiller/ttscheck/internal/errors"
	"github.com/tmiller/ttscheck/internal/logging"
	"github.com/tmiller/ttscheck/internal/validate"
)

// version is set at build time via ldflags.
// Default to the release version for local builds.
const version = "1.0.0"

// toolName appears in the transcript header and the --version output.
const toolName = "TTS Deployment Validator"

var (
	verbose      bool
	quiet        bool
	jsonOut      bool
	noColor      bool
	categoryFlag string
	projectFlag  string
	reportFlag   string
	configFlag   string

	// Captured by initConfig for later reporting.
	loadedConfig  *config.Config
	configLoadErr error
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"include probe details in the transcript")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress the transcript (report and exit code only)")
	rootCmd.Flags().BoolVar(&jsonOut, "json", false,
		"suppress the transcript and print the report as JSON on stdout")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false,
		"disable ANSI colors in the transcript")
	rootCmd.Flags().StringVarP(&categoryFlag, "category", "c", "",
		"run a single category: "+strings.Join(validate.CategoryNames(), ", "))
	rootCmd.Flags().StringVarP(&projectFlag, "project", "p", "",
		"project root of the deployment under test (default from config)")
	rootCmd.Flags().StringVar(&reportFlag, "report", "",
		"path for the JSON report artifact (default from config)")
	rootCmd.Flags().StringVar(&configFlag, "config", "",
		"config file (default: ./ttscheck.yaml, then XDG config dir)")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate(toolName + " v{{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	loadedConfig, configLoadErr = config.Load(configFlag)
}

var rootCmd = &cobra.Command{
	Use:   "ttscheck",
	Short: "Deployment readiness validator for the TTS Tool",
	Long: `ttscheck validates a TTS Tool deployment end to end: Python runtime,
required packages, system resources, GPU acceleration, project layout,
configuration files, deployment targets, network reachability,
application entry points, and the audio toolchain.

Each check records PASS, FAIL, WARN, or INFO. The full transcript is
printed to the console and a JSON report artifact is written for CI and
audit trails. The exit code is 0 when no check failed and 1 otherwise,
so ttscheck slots directly into deploy pipelines.`,
	Example: `  # Validate the deployment in the current directory
  ttscheck

  # Validate a checkout elsewhere, with probe details
  ttscheck --project /srv/tts-tool --verbose

  # Only the network checks
  ttscheck --category network

  # Machine-readable output for CI
  ttscheck --json --report /tmp/report.json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		if configLoadErr != nil {
			err := errors.Wrap(configLoadErr, "loading configuration")
			return errors.NewUsageError(err,
				"Fix the config file or pass --config with a valid one")
		}

		cfg := loadedConfig
		if projectFlag != "" {
			cfg.ProjectRoot = projectFlag
		}
		if reportFlag != "" {
			cfg.ReportPath = reportFlag
		}

		var only *validate.Category
		if categoryFlag != "" {
			cat, err := validate.ParseCategory(categoryFlag)
			if err != nil {
				return errors.NewUsageError(err,
					"Valid categories: "+strings.Join(validate.CategoryNames(), ", "))
			}
			only = &cat
		}

		runner := validate.NewRunner(validate.Options{
			Config:   cfg,
			Out:      cmd.OutOrStdout(),
			ToolName: toolName,
			Version:  version,
			Verbose:  verbose,
			Quiet:    quiet || jsonOut,
			NoColor:  noColor,
			Runners:  checks.For,
		})

		report, err := runner.Run(cmd.Context(), only)
		if err != nil {
			return err
		}

		if jsonOut {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(report); err != nil {
				return errors.NewReportError(errors.Wrap(err, "encoding report"))
			}
		}

		if !report.OK() {
			return errors.NewExitError(errors.ErrChecksFailed, errors.ExitChecksFailed)
		}
		return nil
	},
}

// setupLogging configures the default logger from the output flags. The
// transcript is the primary output; diagnostic logs sit below it and only
// surface with --verbose.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbose {
		return errors.NewUsageError(
			errors.New("cannot use --quiet and --verbose together"),
			"Pick one of --quiet or --verbose")
	}
	if jsonOut && verbose {
		return errors.NewUsageError(
			errors.New("cannot use --json and --verbose together"),
			"--json already includes per-check details")
	}
	if jsonOut && quiet {
		return errors.NewUsageError(
			errors.New("cannot use --json and --quiet together"),
			"--json already suppresses the transcript")
	}

	level := slog.LevelWarn
	switch {
	case quiet || jsonOut:
		level = slog.LevelError
	case verbose:
		level = slog.LevelDebug
	}

	slog.SetDefault(logging.New(logging.Config{
		Level:  level,
		Format: logging.FormatText,
		Output: cmd.ErrOrStderr(),
	}))
	return nil
}

// Execute runs the root command and maps the result to a process exit code.
// Check failures exit silently (the transcript already said everything);
// usage and report errors print to stderr with a suggestion when one exists.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return errors.ExitSuccess
	}

	if !errors.Is(err, errors.ErrChecksFailed) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		var exitErr *errors.ExitError
		if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
			fmt.Fprintln(os.Stderr, exitErr.Suggestion)
		}
	}
	return errors.Code(err)
}
