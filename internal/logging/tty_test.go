package logging

import (
	"bytes"
	"testing"
)

func TestIsTTYBuffer(t *testing.T) {
	if IsTTY(&bytes.Buffer{}) {
		t.Error("a bytes.Buffer is not a terminal")
	}
}

func TestSupportsColor(t *testing.T) {
	var buf bytes.Buffer

	t.Setenv("TERM", "xterm-256color")
	if supportsColor(&buf, false) {
		t.Error("non-TTY writer should not support color")
	}

	t.Setenv("NO_COLOR", "1")
	if supportsColor(&buf, true) {
		t.Error("NO_COLOR must disable color even on a TTY")
	}
}

func TestSupportsColorDumbTerm(t *testing.T) {
	var buf bytes.Buffer
	t.Setenv("TERM", "dumb")
	if supportsColor(&buf, true) {
		t.Error("TERM=dumb must disable color")
	}
}
