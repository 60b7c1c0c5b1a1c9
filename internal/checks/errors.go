// Package checks implements the individual pre-publish validations: release
// tag, changelog entry, and git branch. Each check is a plain function that
// returns an optional detail string on success or an error describing why the
// publish should be blocked.
package checks

import "errors"

// Tag check failures
var (
	ErrPrereleaseOnStandardTag = errors.New("standard release versions must not have a prerelease section")
	ErrMetadataOnStandardTag   = errors.New("standard release versions must not have a metadata section")
	ErrMissingPrereleaseForTag = errors.New("tagged release versions must have a prerelease section")
	ErrTagMismatch             = errors.New("tagged release versions must contain the tag name in the prerelease section")
)

// Changelog check failures
var (
	ErrChangelogNotFound     = errors.New("no changelog found")
	ErrChangelogUnreadable   = errors.New("unable to read changelog")
	ErrChangelogEntryMissing = errors.New("no entry found in changelog")
)

// Branch check failures
var (
	ErrBranchLookupFailed = errors.New("unable to fetch current git branch")
	ErrInvalidBranch      = errors.New("invalid branch found for standard release")
)
