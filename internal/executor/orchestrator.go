package executor

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/harrison/pubcop/internal/checks"
	"github.com/harrison/pubcop/internal/config"
	"github.com/harrison/pubcop/internal/logger"
	"github.com/harrison/pubcop/internal/models"
	"github.com/harrison/pubcop/internal/npm"
)

// IgnoredCommands are npm commands that can trigger the hook without
// publishing. Older npm versions run prepublish on install and pack.
var IgnoredCommands = []string{"pack", "install", "i", "ci", "cit", "it"}

// PublishCommand is the only npm command pubcop validates.
const PublishCommand = "publish"

// Logger defines the interface for reporting run progress and check results.
type Logger interface {
	LogRunStart(ctx models.InvocationContext, tag string)
	LogCheckResult(result models.CheckResult)
	LogSummary(result *models.RunResult)
	Debugf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

// ConfigLoader resolves the configuration for a package root.
type ConfigLoader interface {
	Load(packageDir string) (*config.Config, error)
}

// ReportWriter persists a finished run.
type ReportWriter interface {
	Write(ctx context.Context, result *models.RunResult, path string) error
}

// Orchestrator decides which checks apply to an npm invocation, runs them in
// order, and aggregates their outcomes.
type Orchestrator struct {
	configLoader ConfigLoader
	rootFinder   config.PackageRootFinder
	branches     checks.BranchLookup
	logger       Logger
	reports      ReportWriter
}

// NewOrchestrator creates a new Orchestrator instance.
// The logger and report writer are optional and can be nil.
func NewOrchestrator(loader ConfigLoader, finder config.PackageRootFinder, branches checks.BranchLookup, log Logger, reports ReportWriter) *Orchestrator {
	if loader == nil || finder == nil || branches == nil {
		panic("config loader, package root finder and branch lookup are required")
	}
	if log == nil {
		log = logger.NewNoOpLogger()
	}

	return &Orchestrator{
		configLoader: loader,
		rootFinder:   finder,
		branches:     branches,
		logger:       log,
		reports:      reports,
	}
}

// Run validates a single npm invocation.
//
// Non-publish commands in IgnoredCommands return a skipped result. Any other
// non-publish command, a --tag without value, a missing package root, or an
// invalid configuration is returned as an error before any check runs.
// Otherwise every enabled check runs even if an earlier one failed; callers
// inspect RunResult.Failed for the outcome.
func (o *Orchestrator) Run(ctx context.Context, inv models.InvocationContext) (*models.RunResult, error) {
	startTime := time.Now()
	result := &models.RunResult{
		RunID:     uuid.NewString(),
		Context:   inv,
		StartedAt: startTime,
	}

	if slices.Contains(IgnoredCommands, inv.Command) {
		result.Skipped = true
		o.logger.LogSummary(result)
		return result, nil
	}

	if inv.Command != PublishCommand {
		return nil, fmt.Errorf("%w: cannot run pubcop for command '%s'. Make sure you're running pubcop in the prepublishOnly/prepublish npm script",
			ErrUnexpectedCommand, inv.Command)
	}

	tag, err := npm.PublishTag(inv.Args)
	if err != nil {
		return nil, err
	}
	result.Tag = tag

	packageDir, err := o.rootFinder.Find()
	if err != nil {
		return nil, err
	}
	result.PackageDir = packageDir

	cfg, err := o.configLoader.Load(packageDir)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	o.logger.Debugf("Package root: %s", packageDir)
	o.logger.LogRunStart(inv, tag)

	for _, check := range cfg.EnabledChecks() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		checkResult := o.runCheck(ctx, check, cfg, result)
		result.Results = append(result.Results, checkResult)
		o.logger.LogCheckResult(checkResult)
	}

	result.Duration = time.Since(startTime)
	o.logger.LogSummary(result)

	if cfg.ReportPath != "" && o.reports != nil {
		if err := o.reports.Write(ctx, result, cfg.ReportPath); err != nil {
			o.logger.Warnf("Could not write run report: %v", err)
		}
	}

	return result, nil
}

// runCheck executes one check and captures its outcome.
func (o *Orchestrator) runCheck(ctx context.Context, check models.CheckName, cfg *config.Config, run *models.RunResult) models.CheckResult {
	start := time.Now()
	version := run.Context.Version

	var detail string
	var err error

	switch check {
	case models.CheckTag:
		detail, err = checks.CheckTag(version, run.Tag, cfg.StandardTags)
	case models.CheckBranch:
		detail, err = checks.CheckBranch(ctx, version, cfg.BranchNames, o.branches)
	case models.CheckChangelog:
		err = checks.CheckChangelog(version, run.PackageDir, cfg.ChangelogPath)
	default:
		err = fmt.Errorf("unknown check %q", check)
	}

	return models.CheckResult{
		Check:    check,
		Passed:   err == nil,
		Detail:   detail,
		Error:    err,
		Duration: time.Since(start),
	}
}
