package checks

import (
	"fmt"
	"slices"

	"github.com/harrison/pubcop/internal/semver"
)

// CheckTag verifies that tag is a valid npm dist-tag for version.
//
// Standard tags (e.g. "latest") may only be used for plain MAJOR.MINOR.PATCH
// versions. Any other tag must match the first prerelease identifier, so
// 1.0.0-beta.3 can only be published under "beta". Metadata is not inspected
// for non-standard tags.
func CheckTag(version, tag string, standardTags []string) (string, error) {
	parsed, err := semver.Parse(version)
	if err != nil {
		return "", err
	}

	if slices.Contains(standardTags, tag) {
		if len(parsed.Prerelease) > 0 {
			return "", fmt.Errorf("%w (version %s, tag %s)", ErrPrereleaseOnStandardTag, version, tag)
		}
		if len(parsed.Metadata) > 0 {
			return "", fmt.Errorf("%w (version %s, tag %s)", ErrMetadataOnStandardTag, version, tag)
		}
		return tag, nil
	}

	if len(parsed.Prerelease) == 0 {
		return "", fmt.Errorf("%w (version %s, tag %s)", ErrMissingPrereleaseForTag, version, tag)
	}

	if channel := parsed.Prerelease[0]; channel != tag {
		return "", fmt.Errorf("%w (expected %s, found %s)", ErrTagMismatch, tag, channel)
	}

	return tag, nil
}
