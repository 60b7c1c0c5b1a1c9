package semver

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		version    string
		major      uint64
		minor      uint64
		patch      uint64
		prerelease []string
		metadata   []string
	}{
		{"standard", "1.2.3", 1, 2, 3, nil, nil},
		{"zeros", "0.0.0", 0, 0, 0, nil, nil},
		{"prerelease", "1.0.0-beta.0", 1, 0, 0, []string{"beta", "0"}, nil},
		{"metadata", "1.0.0+sha.abcd", 1, 0, 0, nil, []string{"sha", "abcd"}},
		{"both", "10.20.30-rc.1+build-7", 10, 20, 30, []string{"rc", "1"}, []string{"build-7"}},
		{"hyphen identifier", "1.0.0-alpha-1", 1, 0, 0, []string{"alpha-1"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Parse(tt.version)
			require.NoError(t, err)
			assert.Equal(t, tt.major, v.Major)
			assert.Equal(t, tt.minor, v.Minor)
			assert.Equal(t, tt.patch, v.Patch)
			assert.Equal(t, tt.prerelease, v.Prerelease)
			assert.Equal(t, tt.metadata, v.Metadata)
			assert.Equal(t, tt.version, v.String())
		})
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    error
	}{
		{"not semver", "not-valid-beta.0", ErrInvalidVersion},
		{"empty", "", ErrInvalidVersion},
		{"missing patch", "1.2", ErrInvalidVersion},
		{"leading v", "v1.2.3", ErrInvalidVersion},
		{"signed", "-1.2.3", ErrInvalidVersion},
		{"empty prerelease marker", "1.2.3-", ErrInvalidVersion},
		{"bad characters", "1.2.3-beta_1", ErrInvalidVersion},
		{"overflow", "99999999999999999999.0.0", ErrInvalidVersion},
		{"double dot prerelease", "1.2.3-beta..0", ErrEmptyIdentifier},
		{"trailing dot prerelease", "1.2.3-beta.", ErrEmptyIdentifier},
		{"leading dot metadata", "1.2.3+.sha", ErrEmptyIdentifier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.version)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "expected %v, got %v", tt.want, err)
		})
	}
}

func TestInvalidVersionMessageNamesInput(t *testing.T) {
	_, err := Parse("not-valid-beta.0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not-valid-beta.0")
}

func TestIsStandard(t *testing.T) {
	tests := []struct {
		version string
		want    bool
	}{
		{"1.0.0", true},
		{"1.0.0-beta.0", false},
		{"1.0.0+sha.abcd", false},
		{"1.0.0-beta.0+sha.abcd", false},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			got, err := IsStandard(tt.version)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := IsStandard("1.0")
	assert.ErrorIs(t, err, ErrInvalidVersion)
}

func TestParseRoundTrip(t *testing.T) {
	identifier := rapid.StringMatching(`[a-zA-Z0-9-]{1,8}`)

	rapid.Check(t, func(t *rapid.T) {
		major := rapid.Uint64Range(0, 1_000_000).Draw(t, "major")
		minor := rapid.Uint64Range(0, 1_000_000).Draw(t, "minor")
		patch := rapid.Uint64Range(0, 1_000_000).Draw(t, "patch")
		prerelease := rapid.SliceOfN(identifier, 0, 4).Draw(t, "prerelease")
		metadata := rapid.SliceOfN(identifier, 0, 4).Draw(t, "metadata")

		raw := fmt.Sprintf("%d.%d.%d", major, minor, patch)
		if len(prerelease) > 0 {
			raw += "-" + strings.Join(prerelease, ".")
		}
		if len(metadata) > 0 {
			raw += "+" + strings.Join(metadata, ".")
		}

		v, err := Parse(raw)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", raw, err)
		}
		if v.Major != major || v.Minor != minor || v.Patch != patch {
			t.Fatalf("Parse(%q) = %d.%d.%d", raw, v.Major, v.Minor, v.Patch)
		}
		if strings.Join(v.Prerelease, ".") != strings.Join(prerelease, ".") || len(v.Prerelease) != len(prerelease) {
			t.Fatalf("prerelease mismatch for %q: %v", raw, v.Prerelease)
		}
		if strings.Join(v.Metadata, ".") != strings.Join(metadata, ".") || len(v.Metadata) != len(metadata) {
			t.Fatalf("metadata mismatch for %q: %v", raw, v.Metadata)
		}
		if v.IsStandard() != (len(prerelease) == 0 && len(metadata) == 0) {
			t.Fatalf("IsStandard mismatch for %q", raw)
		}
	})
}
