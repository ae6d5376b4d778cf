package validate

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tmiller/ttscheck/internal/config"
	"github.com/tmiller/ttscheck/internal/errors"
)

// stubRunners records one passing outcome per category and tracks which
// categories were dispatched.
func stubRunners(ran *[]Category) func(Category) RunnerFunc {
	return func(cat Category) RunnerFunc {
		return func(ctx context.Context, col *Collector, cfg *config.Config) {
			*ran = append(*ran, cat)
			col.Record(cat, "stub", StatusPass, "ok", "")
		}
	}
}

func testOptions(t *testing.T, ran *[]Category) Options {
	t.Helper()
	return Options{
		Config: &config.Config{
			ProjectRoot: t.TempDir(),
			ReportPath:  filepath.Join(t.TempDir(), "report.json"),
		},
		ToolName: "Test Validator",
		Version:  "0.0.1",
		Runners:  stubRunners(ran),
	}
}

func TestRunnerRunsAllCategoriesInOrder(t *testing.T) {
	var ran []Category
	r := NewRunner(testOptions(t, &ran))

	report, err := r.Run(context.Background(), nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := Categories()
	if len(ran) != len(want) {
		t.Fatalf("ran %d categories, want %d", len(ran), len(want))
	}
	for i := range want {
		if ran[i] != want[i] {
			t.Errorf("ran[%d] = %v, want %v", i, ran[i], want[i])
		}
	}
	if report.Summary.TotalChecks != len(want) {
		t.Errorf("TotalChecks = %d, want %d", report.Summary.TotalChecks, len(want))
	}
	if !report.OK() {
		t.Error("all-pass run should be OK")
	}
}

func TestRunnerSingleCategory(t *testing.T) {
	var ran []Category
	r := NewRunner(testOptions(t, &ran))

	only := CategoryNetwork
	report, err := r.Run(context.Background(), &only)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(ran) != 1 || ran[0] != CategoryNetwork {
		t.Fatalf("ran = %v, want [network only]", ran)
	}
	if report.Summary.TotalChecks != 1 {
		t.Errorf("TotalChecks = %d, want 1", report.Summary.TotalChecks)
	}
}

func TestRunnerTranscript(t *testing.T) {
	var ran []Category
	opts := testOptions(t, &ran)
	var buf bytes.Buffer
	opts.Out = &buf
	opts.NoColor = true

	r := NewRunner(opts)
	only := CategoryAudio
	if _, err := r.Run(context.Background(), &only); err != nil {
		t.Fatalf("Run: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Test Validator", "AUDIO SYSTEM", "[PASS] ok", "VALIDATION SUMMARY"} {
		if !strings.Contains(out, want) {
			t.Errorf("transcript missing %q:\n%s", want, out)
		}
	}
}

func TestRunnerQuietSuppressesTranscript(t *testing.T) {
	var ran []Category
	opts := testOptions(t, &ran)
	var buf bytes.Buffer
	opts.Out = &buf
	opts.Quiet = true

	r := NewRunner(opts)
	if _, err := r.Run(context.Background(), nil); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("quiet run wrote %d bytes to out", buf.Len())
	}
}

func TestRunnerReportWriteFailure(t *testing.T) {
	var ran []Category
	opts := testOptions(t, &ran)
	opts.Config.ReportPath = filepath.Join(t.TempDir(), "missing", "report.json")

	r := NewRunner(opts)
	report, err := r.Run(context.Background(), nil)
	if err == nil {
		t.Fatal("expected report write error")
	}
	if report == nil {
		t.Fatal("report should survive a write failure")
	}
	if code := errors.Code(err); code != errors.ExitReport {
		t.Errorf("exit code = %d, want %d", code, errors.ExitReport)
	}
}
