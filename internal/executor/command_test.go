package executor

import (
	"context"
	"strings"
	"testing"
)

func TestExecCommandRunner(t *testing.T) {
	runner := NewExecCommandRunner(t.TempDir())

	output, err := runner.Run(context.Background(), "echo hello world")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if strings.TrimSpace(output) != "hello world" {
		t.Errorf("Expected 'hello world', got %q", output)
	}
}

func TestExecCommandRunnerErrors(t *testing.T) {
	runner := NewExecCommandRunner("")

	if _, err := runner.Run(context.Background(), "   "); err == nil {
		t.Error("Expected error for empty command")
	}
	if _, err := runner.Run(context.Background(), "pubcop-definitely-missing-binary"); err == nil {
		t.Error("Expected error for missing binary")
	}
}

func TestExecCommandRunnerCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewExecCommandRunner("").Run(ctx, "echo hi"); err == nil {
		t.Error("Expected error for cancelled context")
	}
}
