package validate

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildReport(t *testing.T) {
	col := NewCollector(nil)
	col.Record(CategoryRuntime, "Version", StatusPass, "Python 3.11.4", "")
	col.Record(CategoryRuntime, "pip", StatusFail, "pip not available", "boom")

	outcomes, stats := col.Snapshot()
	report := BuildReport("1.0.0", outcomes, stats, Classify(stats))

	require.Equal(t, "1.0.0", report.Version)
	require.NotEmpty(t, report.Timestamp)
	require.Equal(t, 2, report.Summary.TotalChecks)
	require.Equal(t, 1, report.Summary.Passed)
	require.Equal(t, 1, report.Summary.Failed)
	require.InDelta(t, 50.0, report.Summary.SuccessRate, 0.01)
	require.Equal(t, TierNeedsAttention, report.Verdict.Tier)
	require.Len(t, report.Results, 2)
	require.False(t, report.OK())
}

func TestReportOK(t *testing.T) {
	clean := BuildReport("1.0.0", nil, Stats{Total: 3, Passed: 2, Warned: 1}, Verdict{})
	require.True(t, clean.OK(), "warnings alone should not fail the run")

	failed := BuildReport("1.0.0", nil, Stats{Total: 3, Passed: 2, Failed: 1}, Verdict{})
	require.False(t, failed.OK())
}

func TestWriteArtifact(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.json")

	col := NewCollector(nil)
	col.Record(CategoryNetwork, "GitHub", StatusPass, "Connection successful", "github.com:443")
	outcomes, stats := col.Snapshot()
	report := BuildReport("1.0.0", outcomes, stats, Classify(stats))

	require.NoError(t, report.WriteArtifact(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	for _, key := range []string{"timestamp", "version", "summary", "verdict", "results"} {
		require.Contains(t, decoded, key)
	}

	// A second run replaces the artifact rather than appending.
	require.NoError(t, report.WriteArtifact(path))
	again, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(again, &decoded))
}

func TestWriteArtifactUnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "report.json")
	report := BuildReport("1.0.0", nil, Stats{}, Verdict{})
	require.Error(t, report.WriteArtifact(path))
}
