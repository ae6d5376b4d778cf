package validate

import (
	"context"
	"io"

	"github.com/tmiller/ttscheck/internal/config"
	"github.com/tmiller/ttscheck/internal/errors"
)

// RunnerFunc executes one category's probes, recording exactly one outcome
// per probe. It has no return value: probe errors are converted into FAIL
// or WARN outcomes at the probe boundary, never propagated.
type RunnerFunc func(ctx context.Context, col *Collector, cfg *config.Config)

// Options configures a validation run.
type Options struct {
	// Config is the validator configuration (project root, endpoints, ...).
	Config *config.Config

	// Out receives the console transcript. Defaults to io.Discard.
	Out io.Writer

	// ToolName and Version identify the tool in the header and report.
	ToolName string
	Version  string

	// Verbose includes outcome details in the transcript.
	Verbose bool

	// Quiet suppresses the transcript entirely; the artifact and exit
	// code are unaffected.
	Quiet bool

	// NoColor disables ANSI colors in the transcript.
	NoColor bool

	// Runners resolves a category to its RunnerFunc. The mapping is a
	// closed, exhaustive switch (see internal/checks), injected here so
	// the engine is testable with stub runners.
	Runners func(Category) RunnerFunc
}

// Runner drives the end-to-end sequence: select categories, execute them
// sequentially, classify, render, and persist. A fresh Collector is created
// per run and discarded once the report consumes it.
type Runner struct {
	opts    Options
	printer *Printer
}

// NewRunner creates a Runner from the given options.
func NewRunner(opts Options) *Runner {
	out := opts.Out
	if out == nil || opts.Quiet {
		out = io.Discard
	}
	return &Runner{
		opts:    opts,
		printer: NewPrinter(out, opts.Verbose, opts.NoColor),
	}
}

// Run executes the selected category, or every category in the fixed order
// when only is nil. The returned report is always non-nil once the checks
// have run; the error is non-nil only when the report artifact could not
// be persisted.
func (r *Runner) Run(ctx context.Context, only *Category) (*Report, error) {
	col := NewCollector(r.printer.Outcome)
	r.printer.Header(r.opts.ToolName, r.opts.Version)

	cats := Categories()
	if only != nil {
		cats = []Category{*only}
	}

	for _, cat := range cats {
		r.printer.Section(cat)
		if run := r.opts.Runners(cat); run != nil {
			run(ctx, col, r.opts.Config)
		}
	}

	outcomes, stats := col.Snapshot()
	verdict := Classify(stats)
	report := BuildReport(r.opts.Version, outcomes, stats, verdict)

	r.printer.Summary(stats, verdict, r.opts.Config.ReportPath)

	if err := report.WriteArtifact(r.opts.Config.ReportPath); err != nil {
		return report, errors.NewReportError(err)
	}
	return report, nil
}
