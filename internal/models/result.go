package models

import "time"

// CheckName identifies one of the validations pubcop can run.
type CheckName string

// Check names accepted on the command line and in .pubcop.yaml
const (
	CheckTag       CheckName = "tag"
	CheckBranch    CheckName = "branch"
	CheckChangelog CheckName = "changelog"
)

// AllChecks lists every check in the order they are run.
var AllChecks = []CheckName{CheckTag, CheckBranch, CheckChangelog}

// DisplayName returns the label printed next to the result glyph.
func (c CheckName) DisplayName() string {
	switch c {
	case CheckTag:
		return "Tag"
	case CheckBranch:
		return "Git Branch"
	case CheckChangelog:
		return "Changelog"
	default:
		return string(c)
	}
}

// CheckResult represents the outcome of running a single check
type CheckResult struct {
	Check    CheckName     // Which check produced this result
	Passed   bool          // True on success
	Detail   string        // Optional success detail (tag or branch name)
	Error    error         // Failure reason, nil on success
	Duration time.Duration // Time taken to run the check
}

// Message returns the text shown after the check name: the detail on
// success, the error message on failure.
func (r CheckResult) Message() string {
	if !r.Passed && r.Error != nil {
		return r.Error.Error()
	}
	return r.Detail
}

// RunResult represents the aggregate result of one pubcop invocation
type RunResult struct {
	RunID      string            // Unique identifier for this run
	Context    InvocationContext // npm context the run was started with
	Tag        string            // Effective publish tag
	PackageDir string            // Package root the checks ran against
	Skipped    bool              // True when the command is not a real publish
	Results    []CheckResult     // Per-check outcomes in run order
	StartedAt  time.Time         // When the run began
	Duration   time.Duration     // Total run time
}

// Failed reports whether any requested check failed.
func (r *RunResult) Failed() bool {
	for _, result := range r.Results {
		if !result.Passed {
			return true
		}
	}
	return false
}

// FailedChecks returns the results of checks that did not pass.
func (r *RunResult) FailedChecks() []CheckResult {
	var failed []CheckResult
	for _, result := range r.Results {
		if !result.Passed {
			failed = append(failed, result)
		}
	}
	return failed
}
