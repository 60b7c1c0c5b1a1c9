package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/harrison/pubcop/internal/checks"
	"github.com/harrison/pubcop/internal/config"
	"github.com/harrison/pubcop/internal/executor"
	"github.com/harrison/pubcop/internal/logger"
	"github.com/harrison/pubcop/internal/npm"
	"github.com/harrison/pubcop/internal/report"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// ErrChecksFailed is returned when at least one check failed. The failures
// have already been printed, so callers only need to set the exit code.
var ErrChecksFailed = errors.New("one or more publish checks failed")

// Dependencies are the process-level collaborators of the root command.
// Zero values fall back to the real environment.
type Dependencies struct {
	// Getenv reads npm's environment (default os.Getenv)
	Getenv func(string) string

	// WorkDir is where the package root search and git start (default cwd)
	WorkDir string

	// Branches reports the current git branch (default: git in WorkDir)
	Branches checks.BranchLookup
}

// NewRootCommand creates and returns the root cobra command for pubcop
func NewRootCommand() *cobra.Command {
	return NewRootCommandWithDeps(Dependencies{})
}

// NewRootCommandWithDeps creates the root command with injected collaborators.
func NewRootCommandWithDeps(deps Dependencies) *cobra.Command {
	if deps.Getenv == nil {
		deps.Getenv = os.Getenv
	}
	if deps.Branches == nil {
		deps.Branches = executor.NewGitBranchReader(deps.WorkDir)
	}

	defaults := config.DefaultConfig()
	var (
		configPath    string
		checkList     []string
		standardTags  []string
		branchNames   []string
		changelogPath string
		logLevel      string
		reportPath    string
	)

	cmd := &cobra.Command{
		Use:   "pubcop",
		Short: "Pre-publish checks for npm packages",
		Long: `pubcop guards npm publishes. Run it from the prepublishOnly script of a
package and it verifies, before anything reaches the registry, that:
  - the dist-tag matches the version (standard releases on a standard tag,
    prereleases on the tag named by their first prerelease identifier)
  - the changelog has a heading for a standard release
  - a standard release is published from an allowed git branch

List flags accept several space-separated values:
  pubcop --checks tag branch --branch-name main release

Exit code: 0 if every check passed, 1 otherwise`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			overrides := config.FlagOverrides{}
			if flags.Changed("checks") {
				overrides.Checks = &checkList
			}
			if flags.Changed("standard-tags") {
				overrides.StandardTags = &standardTags
			}
			if flags.Changed("branch-name") {
				overrides.BranchNames = &branchNames
			}
			if flags.Changed("changelog-path") {
				overrides.ChangelogPath = &changelogPath
			}
			if flags.Changed("log-level") {
				overrides.LogLevel = &logLevel
			}
			if flags.Changed("report") {
				overrides.ReportPath = &reportPath
			}

			return runChecks(cmd, deps, &config.Loader{Path: configPath, Flags: overrides}, logLevel)
		},
	}

	cmd.SetGlobalNormalizationFunc(normalizeFlagAlias)
	cmd.Flags().StringSliceVarP(&checkList, "checks", "c", defaults.Checks,
		"Validations to perform: tag, branch, changelog, or all")
	cmd.Flags().StringSliceVar(&standardTags, "standard-tags", defaults.StandardTags,
		"Tags acceptable for a standard release (e.g. latest next)")
	cmd.Flags().StringSliceVar(&branchNames, "branch-name", defaults.BranchNames,
		"Branches a standard release may be published from")
	cmd.Flags().StringVar(&changelogPath, "changelog-path", defaults.ChangelogPath,
		"Changelog location relative to the package root")
	cmd.Flags().StringVar(&configPath, "config", "",
		"Config file (default: .pubcop.yaml in the package root)")
	cmd.Flags().StringVar(&logLevel, "log-level", defaults.LogLevel,
		"Diagnostic verbosity: debug, info, warn, error")
	cmd.Flags().StringVar(&reportPath, "report", "",
		"Write a YAML run report to this path (relative to the package root)")

	return cmd
}

// flagAliases are the short long-form names accepted for list and path flags.
var flagAliases = map[string]string{
	"st": "standard-tags",
	"bn": "branch-name",
	"cp": "changelog-path",
}

// normalizeFlagAlias maps --st, --bn and --cp onto their full flag names.
func normalizeFlagAlias(f *pflag.FlagSet, name string) pflag.NormalizedName {
	if full, ok := flagAliases[name]; ok {
		name = full
	}
	return pflag.NormalizedName(name)
}

// runChecks resolves the npm context and runs the orchestrator.
func runChecks(cmd *cobra.Command, deps Dependencies, loader *config.Loader, logLevel string) error {
	inv, err := npm.FromEnv(deps.Getenv)
	if err != nil {
		return err
	}

	console := logger.NewConsoleLogger(cmd.OutOrStdout(), logLevel)
	orch := executor.NewOrchestrator(
		&levelSyncLoader{loader: loader, console: console},
		config.NewPackageRootFinder(deps.WorkDir),
		deps.Branches,
		console,
		report.NewWriter(),
	)

	result, err := orch.Run(cmd.Context(), inv)
	if err != nil {
		return err
	}

	if result.Failed() {
		return fmt.Errorf("%w: %d of %d", ErrChecksFailed, len(result.FailedChecks()), len(result.Results))
	}
	return nil
}

// levelSyncLoader applies the resolved log level to the console once the
// package configuration is known.
type levelSyncLoader struct {
	loader  *config.Loader
	console *logger.ConsoleLogger
}

func (l *levelSyncLoader) Load(packageDir string) (*config.Config, error) {
	cfg, err := l.loader.Load(packageDir)
	if err != nil {
		return nil, err
	}
	l.console.SetLevel(cfg.LogLevel)
	return cfg, nil
}
