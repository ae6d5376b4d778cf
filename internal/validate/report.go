package validate

import (
	"time"

	"github.com/tmiller/ttscheck/internal/errors"
	"github.com/tmiller/ttscheck/pkg/fileutil"
)

// Report is the persisted summary document. It is write-only history: the
// engine never reads it back, and each run overwrites the previous artifact.
type Report struct {
	// Timestamp is the run completion time in ISO-8601 form.
	Timestamp string `json:"timestamp"`

	// Version is the tool version that produced the report.
	Version string `json:"version"`

	// Summary holds the aggregate counts and success rate.
	Summary Summary `json:"summary"`

	// Verdict is the classifier's readiness assessment.
	Verdict Verdict `json:"verdict"`

	// Results lists every outcome in emission order.
	Results []Outcome `json:"results"`
}

// Summary is the aggregate block of the report document.
type Summary struct {
	TotalChecks int     `json:"total_checks"`
	Passed      int     `json:"passed"`
	Warnings    int     `json:"warnings"`
	Failed      int     `json:"failed"`
	SuccessRate float64 `json:"success_rate"`
}

// BuildReport assembles the report document from a run's collected state.
func BuildReport(version string, outcomes []Outcome, stats Stats, verdict Verdict) *Report {
	return &Report{
		Timestamp: time.Now().Format(time.RFC3339),
		Version:   version,
		Summary: Summary{
			TotalChecks: stats.Total,
			Passed:      stats.Passed,
			Warnings:    stats.Warned,
			Failed:      stats.Failed,
			SuccessRate: stats.SuccessRate(),
		},
		Verdict: verdict,
		Results: outcomes,
	}
}

// OK reports whether the run had no FAIL outcomes. This is the process
// exit signal.
func (r *Report) OK() bool {
	return r.Summary.Failed == 0
}

// WriteArtifact persists the report as indented JSON, atomically replacing
// any previous artifact. A write failure here is fatal to the caller:
// silent loss of the audit artifact defeats the tool's purpose.
func (r *Report) WriteArtifact(path string) error {
	return errors.Wrapf(fileutil.AtomicWriteJSON(path, r), "writing report to %s", path)
}
