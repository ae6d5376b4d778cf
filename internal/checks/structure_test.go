package checks

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/tmiller/ttscheck/internal/config"
	"github.com/tmiller/ttscheck/internal/validate"
)

func TestStructure(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "main.py"), []byte("print('hi')\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(root, "src", "tts_tool"), 0755); err != nil {
		t.Fatal(err)
	}
	// A file where a directory is expected must still count as missing.
	if err := os.WriteFile(filepath.Join(root, "docs"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{
		ProjectRoot:   root,
		RequiredFiles: []string{"main.py", "requirements.txt"},
		RequiredDirs:  []string{"src", "src/tts_tool", "docs"},
	}

	col := validate.NewCollector(nil)
	Structure(context.Background(), col, cfg)

	outcomes, stats := col.Snapshot()
	if stats.Total != 5 {
		t.Fatalf("recorded %d outcomes, want 5", stats.Total)
	}

	tests := []struct {
		name string
		want validate.Status
	}{
		{"File: main.py", validate.StatusPass},
		{"File: requirements.txt", validate.StatusFail},
		{"Directory: src", validate.StatusPass},
		{"Directory: src/tts_tool", validate.StatusPass},
		{"Directory: docs", validate.StatusFail},
	}
	for _, tt := range tests {
		if got := findOutcome(t, outcomes, tt.name); got.Status != tt.want {
			t.Errorf("%s: status %q, want %q", tt.name, got.Status, tt.want)
		}
	}
}
