package checks

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/harrison/pubcop/internal/semver"
)

// BranchLookup reports the name of the currently checked-out branch.
type BranchLookup interface {
	CurrentBranch(ctx context.Context) (string, error)
}

// CheckBranch verifies that a standard release is published from one of
// validBranches. Prerelease and metadata versions are not enforced and return
// an empty detail without consulting lookup.
func CheckBranch(ctx context.Context, version string, validBranches []string, lookup BranchLookup) (string, error) {
	standard, err := semver.IsStandard(version)
	if err != nil {
		return "", err
	}
	if !standard {
		return "", nil
	}

	branch, err := lookup.CurrentBranch(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBranchLookupFailed, err)
	}

	if !slices.Contains(validBranches, branch) {
		return "", fmt.Errorf("%w. Currently on %s but expected one of the following: %s",
			ErrInvalidBranch, branch, strings.Join(validBranches, ", "))
	}

	return branch, nil
}
