package cmd

import "strings"

// listFlags take several space-separated values, as in
// "pubcop --checks tag branch".
var listFlags = map[string]bool{
	"--checks":        true,
	"-c":              true,
	"--standard-tags": true,
	"--st":            true,
	"--branch-name":   true,
	"--bn":            true,
}

// ExpandListArgs rewrites "--flag a b" into "--flag a --flag b" for list
// flags so that pflag, which only takes one value per occurrence, sees every
// value. Other arguments pass through unchanged.
func ExpandListArgs(args []string) []string {
	expanded := make([]string, 0, len(args))

	current := ""
	for _, arg := range args {
		switch {
		case listFlags[arg]:
			current = arg
			expanded = append(expanded, arg)
			continue
		case listAssignment(arg) != "":
			// "--checks=tag branch"
			current = listAssignment(arg)
			expanded = append(expanded, arg)
			continue
		case strings.HasPrefix(arg, "-"):
			current = ""
		case current != "" && len(expanded) > 0 && expanded[len(expanded)-1] != current:
			// Second and later values of a list flag
			expanded = append(expanded, current)
		}
		expanded = append(expanded, arg)
	}

	return expanded
}

// listAssignment returns the flag name when arg is "--list-flag=value".
func listAssignment(arg string) string {
	name, _, found := strings.Cut(arg, "=")
	if found && listFlags[name] {
		return name
	}
	return ""
}
