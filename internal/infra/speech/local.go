package speech

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// LocalEngine runs an espeak-compatible synthesizer and waits for it to finish.
type LocalEngine struct {
	command string
	voice   string
	logger  *slog.Logger
}

func NewLocalEngine(command, voice string, logger *slog.Logger) *LocalEngine {
	if command == "" {
		command = "espeak-ng"
	}
	return &LocalEngine{command: command, voice: voice, logger: logger}
}

func (e *LocalEngine) Synthesize(ctx context.Context, text, outPath string) error {
	args := []string{"-w", outPath}
	if e.voice != "" {
		args = append(args, "-v", e.voice)
	}
	args = append(args, "--stdin")

	cmd := exec.CommandContext(ctx, e.command, args...)
	cmd.Stdin = strings.NewReader(text)

	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("running %s: %w (%s)", e.command, err, strings.TrimSpace(string(out)))
	}

	info, err := os.Stat(outPath)
	if err != nil {
		return fmt.Errorf("%s wrote no audio: %w", e.command, err)
	}

	e.logger.Debug("local speech written", "path", outPath, "bytes", info.Size())
	return nil
}
