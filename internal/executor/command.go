package executor

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// CommandRunner abstracts command execution for testability.
type CommandRunner interface {
	Run(ctx context.Context, command string) (output string, err error)
}

// ExecCommandRunner executes commands directly, without a shell.
type ExecCommandRunner struct {
	WorkDir string // Working directory for commands (empty = current dir)
}

// NewExecCommandRunner creates a CommandRunner that executes real commands.
func NewExecCommandRunner(workDir string) *ExecCommandRunner {
	return &ExecCommandRunner{WorkDir: workDir}
}

// Run splits command on whitespace, executes it, and returns stdout.
// On failure the error includes stderr.
func (r *ExecCommandRunner) Run(ctx context.Context, command string) (string, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return "", fmt.Errorf("empty command")
	}

	cmd := exec.CommandContext(ctx, fields[0], fields[1:]...)
	if r.WorkDir != "" {
		cmd.Dir = r.WorkDir
	}

	var stderr strings.Builder
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return string(output), fmt.Errorf("%w: %s", err, msg)
		}
		return string(output), err
	}
	return string(output), nil
}
