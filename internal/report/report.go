// Package report writes a machine-readable summary of a pubcop run so CI
// systems can archive why a publish was allowed or blocked.
package report

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/harrison/pubcop/internal/filelock"
	"github.com/harrison/pubcop/internal/models"
)

// Report is the on-disk representation of a run.
type Report struct {
	RunID      string        `yaml:"run_id"`
	Version    string        `yaml:"version"`
	Command    string        `yaml:"command"`
	Tag        string        `yaml:"tag"`
	PackageDir string        `yaml:"package_dir"`
	Passed     bool          `yaml:"passed"`
	StartedAt  time.Time     `yaml:"started_at"`
	DurationMS int64         `yaml:"duration_ms"`
	Checks     []CheckReport `yaml:"checks"`
}

// CheckReport records a single check outcome.
type CheckReport struct {
	Name       string `yaml:"name"`
	Passed     bool   `yaml:"passed"`
	Detail     string `yaml:"detail,omitempty"`
	Error      string `yaml:"error,omitempty"`
	DurationMS int64  `yaml:"duration_ms"`
}

// FromResult converts a run result into a Report.
func FromResult(result *models.RunResult) Report {
	r := Report{
		RunID:      result.RunID,
		Version:    result.Context.Version,
		Command:    result.Context.Command,
		Tag:        result.Tag,
		PackageDir: result.PackageDir,
		Passed:     !result.Failed(),
		StartedAt:  result.StartedAt,
		DurationMS: result.Duration.Milliseconds(),
		Checks:     make([]CheckReport, 0, len(result.Results)),
	}

	for _, check := range result.Results {
		cr := CheckReport{
			Name:       string(check.Check),
			Passed:     check.Passed,
			Detail:     check.Detail,
			DurationMS: check.Duration.Milliseconds(),
		}
		if check.Error != nil {
			cr.Error = check.Error.Error()
		}
		r.Checks = append(r.Checks, cr)
	}

	return r
}

// Writer persists run reports as YAML.
type Writer struct{}

// NewWriter creates a report Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write encodes result and writes it to path. Relative paths are resolved
// against the run's package directory.
func (w *Writer) Write(ctx context.Context, result *models.RunResult, path string) error {
	if result == nil {
		return fmt.Errorf("run result cannot be nil")
	}

	if !filepath.IsAbs(path) {
		path = filepath.Join(result.PackageDir, path)
	}

	data, err := yaml.Marshal(FromResult(result))
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	if err := filelock.LockAndWrite(ctx, path, data); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}
