package checks

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/tmiller/ttscheck/internal/config"
	"github.com/tmiller/ttscheck/internal/validate"
)

func TestDeployment(t *testing.T) {
	root := t.TempDir()
	dockerDir := filepath.Join(root, "deployment_configs", "docker")
	if err := os.MkdirAll(dockerDir, 0755); err != nil {
		t.Fatal(err)
	}
	for _, f := range []string{"Dockerfile", "docker-compose.yml"} {
		if err := os.WriteFile(filepath.Join(dockerDir, f), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}

	cfg := &config.Config{
		ProjectRoot:   root,
		DeploymentDir: "deployment_configs",
		DeploymentTargets: []config.Target{
			{Dir: "docker", Name: "Docker Production"},
			{Dir: "render", Name: "Render.com"},
		},
	}

	col := validate.NewCollector(nil)
	Deployment(context.Background(), col, cfg)
	outcomes, stats := col.Snapshot()

	docker := findOutcome(t, outcomes, "Docker Production")
	if docker.Status != validate.StatusPass {
		t.Errorf("docker: status %q, want PASS", docker.Status)
	}
	if docker.Message != "2 files" {
		t.Errorf("docker: message %q, want %q", docker.Message, "2 files")
	}

	if got := findOutcome(t, outcomes, "Render.com"); got.Status != validate.StatusFail {
		t.Errorf("render: status %q, want FAIL", got.Status)
	}
	if stats.Failed != 1 {
		t.Errorf("stats.Failed = %d, want 1", stats.Failed)
	}
}
