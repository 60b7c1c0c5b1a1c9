// Package semver parses the subset of semantic versions that pubcop needs to
// validate a release: the numeric core plus the prerelease and metadata
// identifier lists. It deliberately offers no ordering or range matching.
package semver

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ErrInvalidVersion is returned when a string does not match MAJOR.MINOR.PATCH[-PRE][+META].
	ErrInvalidVersion = errors.New("not a valid semver version")

	// ErrEmptyIdentifier is returned when a prerelease or metadata section has an empty segment.
	ErrEmptyIdentifier = errors.New("identifiers in a semver version must not be empty")
)

// versionRegex matches https://semver.org/ versions. The identifier groups allow
// dots so that empty segments can be reported separately.
var versionRegex = regexp.MustCompile(`^([0-9]+)\.([0-9]+)\.([0-9]+)(?:-([a-zA-Z0-9-.]+))?(?:\+([a-zA-Z0-9-.]+))?$`)

// Version is a parsed semantic version.
type Version struct {
	Major uint64
	Minor uint64
	Patch uint64

	// Prerelease holds the dot-separated identifiers after '-'. The first one
	// names the release channel (e.g. "beta" in 1.0.0-beta.3).
	Prerelease []string

	// Metadata holds the dot-separated identifiers after '+'.
	Metadata []string
}

// Parse parses version into its components.
func Parse(version string) (*Version, error) {
	match := versionRegex.FindStringSubmatch(version)
	if match == nil {
		return nil, fmt.Errorf("%w %s", ErrInvalidVersion, version)
	}

	parsed := &Version{}
	numbers := []*uint64{&parsed.Major, &parsed.Minor, &parsed.Patch}
	for i, target := range numbers {
		n, err := strconv.ParseUint(match[i+1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w %s: %v", ErrInvalidVersion, version, err)
		}
		*target = n
	}

	var err error
	if parsed.Prerelease, err = parseIdentifiers(match[4]); err != nil {
		return nil, err
	}
	if parsed.Metadata, err = parseIdentifiers(match[5]); err != nil {
		return nil, err
	}

	return parsed, nil
}

// IsStandard reports whether version has neither prerelease nor metadata identifiers.
func IsStandard(version string) (bool, error) {
	parsed, err := Parse(version)
	if err != nil {
		return false, err
	}
	return parsed.IsStandard(), nil
}

// IsStandard reports whether v is a plain MAJOR.MINOR.PATCH release.
func (v *Version) IsStandard() bool {
	return len(v.Prerelease) == 0 && len(v.Metadata) == 0
}

// String renders v in canonical form.
func (v *Version) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d.%d.%d", v.Major, v.Minor, v.Patch)
	if len(v.Prerelease) > 0 {
		sb.WriteString("-")
		sb.WriteString(strings.Join(v.Prerelease, "."))
	}
	if len(v.Metadata) > 0 {
		sb.WriteString("+")
		sb.WriteString(strings.Join(v.Metadata, "."))
	}
	return sb.String()
}

func parseIdentifiers(section string) ([]string, error) {
	if section == "" {
		return nil, nil
	}

	parts := strings.Split(section, ".")
	for _, part := range parts {
		if part == "" {
			return nil, ErrEmptyIdentifier
		}
	}
	return parts, nil
}
