package executor

import (
	"context"
	"fmt"
	"strings"
)

// branchCommand prints the checked-out branch name, or "HEAD" when detached
const branchCommand = "git rev-parse --abbrev-ref HEAD"

// GitBranchReader reports the current git branch by shelling out to git.
type GitBranchReader struct {
	// CommandRunner for executing git (optional, uses ExecCommandRunner if nil)
	CommandRunner CommandRunner

	// WorkDir is the working directory for git commands (empty = current dir)
	WorkDir string
}

// NewGitBranchReader creates a GitBranchReader that runs git in workDir.
func NewGitBranchReader(workDir string) *GitBranchReader {
	return &GitBranchReader{WorkDir: workDir}
}

// NewGitBranchReaderWithRunner creates a GitBranchReader with a custom command runner.
// Useful for testing.
func NewGitBranchReaderWithRunner(runner CommandRunner) *GitBranchReader {
	return &GitBranchReader{CommandRunner: runner}
}

// CurrentBranch returns the name of the checked-out branch.
func (g *GitBranchReader) CurrentBranch(ctx context.Context) (string, error) {
	output, err := g.runner().Run(ctx, branchCommand)
	if err != nil {
		return "", fmt.Errorf("make sure you have git installed and are in a git repository: %w", err)
	}

	branch := strings.TrimSpace(output)
	if branch == "" {
		return "", fmt.Errorf("git returned an empty branch name")
	}
	return branch, nil
}

func (g *GitBranchReader) runner() CommandRunner {
	if g.CommandRunner != nil {
		return g.CommandRunner
	}
	return NewExecCommandRunner(g.WorkDir)
}
