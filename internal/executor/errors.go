package executor

import "errors"

// ErrUnexpectedCommand indicates pubcop was run for an npm command other than publish.
var ErrUnexpectedCommand = errors.New("unexpected npm command")
