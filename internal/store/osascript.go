package store

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// DefaultOsascriptBin is used when no binary path is configured.
const DefaultOsascriptBin = "/usr/bin/osascript"

// Runner executes automation scripts through osascript. Both backends share
// one runner; the JXA variant carries structured JSON on stdout, the
// AppleScript variant plain text.
type Runner struct {
	bin     string
	timeout time.Duration
}

// NewRunner creates a runner for the given osascript binary. A zero timeout
// means no deadline beyond the caller's context, matching the store's
// no-timeout contract.
func NewRunner(bin string, timeout time.Duration) *Runner {
	if bin == "" {
		bin = DefaultOsascriptBin
	}
	return &Runner{bin: bin, timeout: timeout}
}

// RunJXA executes a JavaScript-for-Automation program and returns stdout.
func (r *Runner) RunJXA(ctx context.Context, script string) ([]byte, error) {
	return r.run(ctx, []string{"-l", "JavaScript", "-e", script})
}

// RunAppleScript executes an AppleScript program and returns stdout as text.
func (r *Runner) RunAppleScript(ctx context.Context, script string) (string, error) {
	out, err := r.run(ctx, []string{"-e", script})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

func (r *Runner) run(ctx context.Context, args []string) ([]byte, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, r.bin, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		diag := strings.TrimSpace(stderr.String())
		if diag == "" {
			diag = err.Error()
		}
		// The scripting layer has no structured error model; surface its
		// diagnostic text verbatim.
		return nil, fmt.Errorf("store: osascript: %s", diag)
	}
	return stdout.Bytes(), nil
}

// escapeAppleScript escapes a string for embedding in a double-quoted
// AppleScript literal.
func escapeAppleScript(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return s
}
