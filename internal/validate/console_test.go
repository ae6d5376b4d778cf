package validate

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrinterOutcome(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false, true)

	p.Outcome(Outcome{Status: StatusPass, Message: "Python 3.11.4"})
	p.Outcome(Outcome{Status: StatusWarn, Message: "Not set", Details: "hidden"})

	out := buf.String()
	if !strings.Contains(out, "[PASS] Python 3.11.4") {
		t.Errorf("missing pass line in %q", out)
	}
	if !strings.Contains(out, "[WARN] Not set") {
		t.Errorf("missing warn line in %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Error("details printed without verbose")
	}
}

func TestPrinterOutcomeVerbose(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true, true)

	p.Outcome(Outcome{Status: StatusFail, Message: "Import failed", Details: "ModuleNotFoundError: torch"})

	out := buf.String()
	if !strings.Contains(out, "Details: ModuleNotFoundError: torch") {
		t.Errorf("details missing in verbose mode: %q", out)
	}
}

func TestPrinterSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false, true)

	stats := Stats{Total: 10, Passed: 9, Warned: 1}
	p.Summary(stats, Classify(stats), "report.json")

	out := buf.String()
	for _, want := range []string{
		"VALIDATION SUMMARY",
		"Total Checks: 10",
		"Passed: 9",
		"Success Rate: 90.0%",
		"Overall Status: EXCELLENT",
		"Detailed report saved to: report.json",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}
