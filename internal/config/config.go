package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/harrison/pubcop/internal/models"
)

// FileName is the optional per-package configuration file, looked up in the package root
const FileName = ".pubcop.yaml"

// CheckAll expands to every available check
const CheckAll = "all"

// Config represents pubcop configuration options
type Config struct {
	// Checks lists the validations to perform (tag, branch, changelog, or all)
	Checks []string `yaml:"checks"`

	// StandardTags are the dist-tags acceptable for a standard release
	StandardTags []string `yaml:"standard_tags"`

	// BranchNames are the git branches a standard release may be published from
	BranchNames []string `yaml:"branch_names"`

	// ChangelogPath is the changelog location relative to the package root
	ChangelogPath string `yaml:"changelog_path"`

	// LogLevel sets the diagnostic verbosity (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// ReportPath, when set, receives a YAML report of the run
	ReportPath string `yaml:"report_path"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Checks:        []string{CheckAll},
		StandardTags:  []string{"latest"},
		BranchNames:   []string{"master"},
		ChangelogPath: "CHANGELOG.md",
		LogLevel:      "info",
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply values present in the file over the defaults
	if len(fileCfg.Checks) > 0 {
		cfg.Checks = fileCfg.Checks
	}
	if len(fileCfg.StandardTags) > 0 {
		cfg.StandardTags = fileCfg.StandardTags
	}
	if len(fileCfg.BranchNames) > 0 {
		cfg.BranchNames = fileCfg.BranchNames
	}
	if fileCfg.ChangelogPath != "" {
		cfg.ChangelogPath = fileCfg.ChangelogPath
	}
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	if fileCfg.ReportPath != "" {
		cfg.ReportPath = fileCfg.ReportPath
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration from .pubcop.yaml in the specified directory
// If the file doesn't exist, returns default configuration without error
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, FileName))
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(checks, standardTags, branchNames *[]string, changelogPath, logLevel, reportPath *string) {
	if checks != nil {
		c.Checks = *checks
	}
	if standardTags != nil {
		c.StandardTags = *standardTags
	}
	if branchNames != nil {
		c.BranchNames = *branchNames
	}
	if changelogPath != nil {
		c.ChangelogPath = *changelogPath
	}
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if reportPath != nil {
		c.ReportPath = *reportPath
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	if len(c.Checks) == 0 {
		return fmt.Errorf("checks cannot be empty")
	}
	for _, check := range c.Checks {
		if check == CheckAll {
			continue
		}
		if !slices.Contains(models.AllChecks, models.CheckName(check)) {
			return fmt.Errorf("invalid check %q, must be one of: tag, branch, changelog, all", check)
		}
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: debug, info, warn, error", c.LogLevel)
	}

	if c.ChangelogPath == "" {
		return fmt.Errorf("changelog_path cannot be empty")
	}

	return nil
}

// EnabledChecks returns the configured checks in run order, with "all"
// expanded to every check.
func (c *Config) EnabledChecks() []models.CheckName {
	if slices.Contains(c.Checks, CheckAll) {
		return slices.Clone(models.AllChecks)
	}

	var enabled []models.CheckName
	for _, check := range models.AllChecks {
		if slices.Contains(c.Checks, string(check)) {
			enabled = append(enabled, check)
		}
	}
	return enabled
}
