package checks

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/tmiller/ttscheck/internal/config"
	"github.com/tmiller/ttscheck/internal/pyenv"
	"github.com/tmiller/ttscheck/internal/validate"
)

// Audio validates the audio toolchain: the ffmpeg binary and the Python
// audio processing libraries.
func Audio(ctx context.Context, col *validate.Collector, cfg *config.Config) {
	checkFFmpeg(ctx, col)

	py := pyenv.New(cfg.Interpreter, cfg.ProjectRoot)
	for _, lib := range cfg.AudioLibraries {
		if err := py.CheckImport(ctx, evalTimeout, "import "+lib); err != nil {
			col.Record(validate.CategoryAudio, lib, validate.StatusFail,
				"Not installed", err.Error())
			continue
		}
		col.Record(validate.CategoryAudio, lib, validate.StatusPass, "Available", "")
	}
}

func checkFFmpeg(ctx context.Context, col *validate.Collector) {
	const name = "FFmpeg"

	path, err := exec.LookPath("ffmpeg")
	if err != nil {
		col.Record(validate.CategoryAudio, name, validate.StatusFail,
			"Not installed", "")
		return
	}

	ctx, cancel := context.WithTimeout(ctx, ffmpegTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, path, "-version")
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		col.Record(validate.CategoryAudio, name, validate.StatusWarn,
			"Version check failed", err.Error())
		return
	}
	banner, _, _ := strings.Cut(strings.TrimSpace(out.String()), "\n")
	col.Record(validate.CategoryAudio, name, validate.StatusPass, banner, path)
}
