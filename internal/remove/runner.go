package remove

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
)

// maxOutputSize caps captured installer output.
const maxOutputSize = 256 * 1024

// CommandFunc executes a command and returns its combined output and exit
// code. Injected in tests; the default shells out. A non-zero exit is
// reported through the exit code, not the error.
type CommandFunc func(ctx context.Context, name string, args ...string) (string, int, error)

func runCommand(ctx context.Context, name string, args ...string) (string, int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	hideWindow(cmd)

	var out bytes.Buffer
	lw := &limitedWriter{buf: &out, limit: maxOutputSize}
	cmd.Stdout = lw
	cmd.Stderr = lw

	err := cmd.Run()
	output := strings.TrimSpace(out.String())
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return output, exitErr.ExitCode(), nil
		}
		return output, -1, err
	}
	return output, 0, nil
}

// limitedWriter discards output beyond its limit without erroring, so a
// chatty installer cannot balloon memory.
type limitedWriter struct {
	buf     *bytes.Buffer
	limit   int
	written int
}

func (w *limitedWriter) Write(p []byte) (int, error) {
	if w.written >= w.limit {
		return len(p), nil
	}
	remaining := w.limit - w.written
	chunk := p
	if len(chunk) > remaining {
		chunk = chunk[:remaining]
	}
	n, err := w.buf.Write(chunk)
	w.written += n
	return len(p), err
}
