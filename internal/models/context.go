package models

// InvocationContext is the npm command context pubcop was launched from.
type InvocationContext struct {
	Version string   // Package version being published
	Command string   // npm command name, with a leading "run" removed
	Args    []string // Remaining tokens after the command name
}
