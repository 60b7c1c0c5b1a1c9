package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrConfigNotFound is returned when an explicitly requested config file does not exist.
var ErrConfigNotFound = errors.New("config file not found")

// FlagOverrides holds command-line values that take precedence over the
// config file. Nil fields were not set on the command line.
type FlagOverrides struct {
	Checks        *[]string
	StandardTags  *[]string
	BranchNames   *[]string
	ChangelogPath *string
	LogLevel      *string
	ReportPath    *string
}

// Loader resolves the configuration for a package root.
type Loader struct {
	// Path is an explicit config file; empty means .pubcop.yaml in the package root
	Path string

	// Flags are applied on top of the file
	Flags FlagOverrides
}

// Load reads the config file for packageDir, applies flag overrides and validates the result.
func (l *Loader) Load(packageDir string) (*Config, error) {
	var (
		cfg *Config
		err error
	)
	if l.Path == "" {
		cfg, err = LoadConfigFromDir(packageDir)
	} else {
		// Only the implicit .pubcop.yaml is optional
		if _, statErr := os.Stat(l.Path); errors.Is(statErr, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, l.Path)
		}
		cfg, err = LoadConfig(l.Path)
	}
	if err != nil {
		return nil, err
	}

	f := l.Flags
	cfg.MergeWithFlags(f.Checks, f.StandardTags, f.BranchNames, f.ChangelogPath, f.LogLevel, f.ReportPath)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
