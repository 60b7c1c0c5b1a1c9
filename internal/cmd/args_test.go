package cmd

import (
	"reflect"
	"testing"
)

func TestExpandListArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"empty", []string{}, []string{}},
		{"single value", []string{"--checks", "tag"}, []string{"--checks", "tag"}},
		{
			"multiple values",
			[]string{"--checks", "tag", "branch"},
			[]string{"--checks", "tag", "--checks", "branch"},
		},
		{
			"shorthand",
			[]string{"-c", "tag", "changelog"},
			[]string{"-c", "tag", "-c", "changelog"},
		},
		{
			"assignment form",
			[]string{"--branch-name=dev", "something-else"},
			[]string{"--branch-name=dev", "--branch-name", "something-else"},
		},
		{
			"list then scalar flag",
			[]string{"--standard-tags", "next", "latest", "--changelog-path", "docs/CHANGELOG.md"},
			[]string{"--standard-tags", "next", "--standard-tags", "latest", "--changelog-path", "docs/CHANGELOG.md"},
		},
		{
			"two list flags",
			[]string{"--checks", "branch", "--branch-name", "dev", "other"},
			[]string{"--checks", "branch", "--branch-name", "dev", "--branch-name", "other"},
		},
		{
			"aliases",
			[]string{"--st", "next", "latest", "--bn", "dev", "other", "--cp", "HISTORY.md"},
			[]string{"--st", "next", "--st", "latest", "--bn", "dev", "--bn", "other", "--cp", "HISTORY.md"},
		},
		{"scalar flag untouched", []string{"--report", "out.yaml"}, []string{"--report", "out.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpandListArgs(tt.args)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExpandListArgs(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}
