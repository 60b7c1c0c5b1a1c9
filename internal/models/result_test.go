package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckNameDisplayName(t *testing.T) {
	tests := []struct {
		check CheckName
		want  string
	}{
		{CheckTag, "Tag"},
		{CheckBranch, "Git Branch"},
		{CheckChangelog, "Changelog"},
		{CheckName("custom"), "custom"},
	}

	for _, tt := range tests {
		t.Run(string(tt.check), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.check.DisplayName())
		})
	}
}

func TestCheckResultMessage(t *testing.T) {
	ok := CheckResult{Check: CheckTag, Passed: true, Detail: "latest"}
	assert.Equal(t, "latest", ok.Message())

	failed := CheckResult{Check: CheckBranch, Error: errors.New("wrong branch")}
	assert.Equal(t, "wrong branch", failed.Message())
}

func TestRunResultFailed(t *testing.T) {
	run := &RunResult{}
	assert.False(t, run.Failed(), "no checks means no failure")

	run.Results = []CheckResult{
		{Check: CheckTag, Passed: true},
		{Check: CheckChangelog, Passed: true},
	}
	assert.False(t, run.Failed())
	assert.Empty(t, run.FailedChecks())

	run.Results = append(run.Results, CheckResult{Check: CheckBranch, Error: errors.New("boom")})
	assert.True(t, run.Failed())
	failed := run.FailedChecks()
	if assert.Len(t, failed, 1) {
		assert.Equal(t, CheckBranch, failed[0].Check)
	}
}
