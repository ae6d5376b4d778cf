package pyenv

import "testing"

func TestErrorSummary(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"single line", "SyntaxError: invalid syntax", "SyntaxError: invalid syntax"},
		{
			"traceback",
			"Traceback (most recent call last):\n  File \"<string>\", line 1, in <module>\nModuleNotFoundError: No module named 'torch'\n",
			"ModuleNotFoundError: No module named 'torch'",
		},
		{"trailing blank lines", "boom\n\n\n", "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errorSummary(tt.in); got != tt.want {
				t.Errorf("errorSummary(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestVirtualEnv(t *testing.T) {
	t.Setenv("VIRTUAL_ENV", "")
	t.Setenv("CONDA_DEFAULT_ENV", "")
	if _, ok := VirtualEnv(); ok {
		t.Error("no env vars set, expected ok=false")
	}

	t.Setenv("VIRTUAL_ENV", "/srv/venv")
	if env, ok := VirtualEnv(); !ok || env != "/srv/venv" {
		t.Errorf("VirtualEnv() = %q, %v", env, ok)
	}

	t.Setenv("VIRTUAL_ENV", "")
	t.Setenv("CONDA_DEFAULT_ENV", "tts")
	if env, ok := VirtualEnv(); !ok || env != "tts" {
		t.Errorf("VirtualEnv() = %q, %v", env, ok)
	}
}

func TestNew(t *testing.T) {
	i := New("python3.11", "/srv/tts-tool")
	if i.Python != "python3.11" || i.Dir != "/srv/tts-tool" {
		t.Errorf("New() = %+v", i)
	}
}
