// Package pyenv queries the deployment's Python interpreter: version,
// environment, installed modules, and accelerator support. All probes shell
// out to the configured interpreter under bounded timeouts; ttscheck never
// links against the application under test.
package pyenv

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	goversion "github.com/hashicorp/go-version"

	"github.com/tmiller/ttscheck/internal/errors"
)

// Interpreter identifies the Python executable used for probes and the
// working directory its commands run in.
type Interpreter struct {
	// Python is the interpreter executable (path or name resolved via PATH).
	Python string

	// Dir is the working directory for every invocation, normally the
	// project root of the deployment under test.
	Dir string
}

// New creates an Interpreter rooted at dir.
func New(python, dir string) Interpreter {
	return Interpreter{Python: python, Dir: dir}
}

// RunResult captures a completed interpreter invocation.
type RunResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Run invokes the interpreter with args under a bounded timeout. A non-zero
// exit is reported through RunResult, not the error; the error is reserved
// for invocation failures and timeouts.
func (i Interpreter) Run(ctx context.Context, timeout time.Duration, args ...string) (RunResult, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, i.Python, args...)
	cmd.Dir = i.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := RunResult{Stdout: stdout.String(), Stderr: stderr.String()}

	slog.Debug("python probe",
		"interpreter", i.Python,
		"args", strings.Join(args, " "),
		"err", err)

	if err == nil {
		return res, nil
	}
	if ctx.Err() == context.DeadlineExceeded {
		return res, errors.Wrapf(ctx.Err(), "%s timed out after %s", i.Python, timeout)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	}
	return res, errors.Wrapf(err, "invoking %s", i.Python)
}

// Eval runs a code snippet via -c and returns its trimmed stdout.
// A non-zero exit is an error carrying the interpreter's stderr.
func (i Interpreter) Eval(ctx context.Context, timeout time.Duration, code string) (string, error) {
	res, err := i.Run(ctx, timeout, "-c", code)
	if err != nil {
		return "", err
	}
	if res.ExitCode != 0 {
		return "", errors.Newf("exit %d: %s", res.ExitCode, errorSummary(res.Stderr))
	}
	return strings.TrimSpace(res.Stdout), nil
}

// Version returns the interpreter's version.
func (i Interpreter) Version(ctx context.Context, timeout time.Duration) (*goversion.Version, error) {
	out, err := i.Eval(ctx, timeout, `import sys; print("%d.%d.%d" % sys.version_info[:3])`)
	if err != nil {
		return nil, err
	}
	v, err := goversion.NewVersion(out)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing interpreter version %q", out)
	}
	return v, nil
}

// PipVersion returns pip's version string, or an error when pip is not
// available in the interpreter.
func (i Interpreter) PipVersion(ctx context.Context, timeout time.Duration) (string, error) {
	out, err := i.Eval(ctx, timeout, `from pip import __version__; print(__version__)`)
	if err != nil {
		return "", err
	}
	return out, nil
}

// ModuleVersion imports the named module and returns its __version__
// attribute ("unknown" when the module defines none). A failed import is
// an error.
func (i Interpreter) ModuleVersion(ctx context.Context, timeout time.Duration, module string) (string, error) {
	code := "import " + module + ` as _m; print(getattr(_m, "__version__", "unknown"))`
	return i.Eval(ctx, timeout, code)
}

// CheckImport runs an arbitrary import statement and reports whether it
// succeeded. Used for smoke-testing the application's import surface
// (e.g. "import sys; sys.path.insert(0, 'src'); from tts_tool import TTSProcessor").
func (i Interpreter) CheckImport(ctx context.Context, timeout time.Duration, stmt string) error {
	_, err := i.Eval(ctx, timeout, stmt)
	return err
}

// VirtualEnv reports the active isolated environment, checking virtualenv
// and conda activation markers.
func VirtualEnv() (string, bool) {
	if v := os.Getenv("VIRTUAL_ENV"); v != "" {
		return v, true
	}
	if v := os.Getenv("CONDA_DEFAULT_ENV"); v != "" {
		return v, true
	}
	return "", false
}

// CUDAInfo describes the interpreter's view of CUDA support.
type CUDAInfo struct {
	Available   bool
	DeviceCount int
	DeviceName  string
	MemoryBytes uint64
}

const cudaProbe = `
import torch
if torch.cuda.is_available():
    p = torch.cuda.get_device_properties(0)
    print("yes|%d|%s|%d" % (torch.cuda.device_count(), torch.cuda.get_device_name(0), p.total_memory))
else:
    print("no")
`

// CUDA probes CUDA availability through the interpreter's torch install.
// The caller is expected to have verified torch is importable; an error here
// means the probe itself failed, not that CUDA is absent.
func (i Interpreter) CUDA(ctx context.Context, timeout time.Duration) (CUDAInfo, error) {
	out, err := i.Eval(ctx, timeout, cudaProbe)
	if err != nil {
		return CUDAInfo{}, err
	}
	if out == "no" {
		return CUDAInfo{}, nil
	}

	parts := strings.SplitN(out, "|", 4)
	if len(parts) != 4 || parts[0] != "yes" {
		return CUDAInfo{}, errors.Newf("unexpected CUDA probe output %q", out)
	}
	count, err := strconv.Atoi(parts[1])
	if err != nil {
		return CUDAInfo{}, errors.Wrap(err, "parsing device count")
	}
	memBytes, err := strconv.ParseUint(parts[3], 10, 64)
	if err != nil {
		return CUDAInfo{}, errors.Wrap(err, "parsing device memory")
	}
	return CUDAInfo{
		Available:   true,
		DeviceCount: count,
		DeviceName:  parts[2],
		MemoryBytes: memBytes,
	}, nil
}

const mpsProbe = `
import torch
mps = getattr(torch.backends, "mps", None)
print("yes" if mps is not None and mps.is_available() else "no")
`

// MPS probes Apple Metal acceleration through torch. Only meaningful on
// darwin hosts.
func (i Interpreter) MPS(ctx context.Context, timeout time.Duration) (bool, error) {
	out, err := i.Eval(ctx, timeout, mpsProbe)
	if err != nil {
		return false, err
	}
	return out == "yes", nil
}

// errorSummary returns the last non-empty line of s, which for Python
// tracebacks is the exception summary.
func errorSummary(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if l := strings.TrimSpace(lines[i]); l != "" {
			return l
		}
	}
	return strings.TrimSpace(s)
}
