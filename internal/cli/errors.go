package cli

import "errors"

const (
	// ExitOK reports success.
	ExitOK = 0
	// ExitFailure covers usage, write and unexpected failures alike.
	ExitFailure = 1
)

// ErrUsage signals missing or malformed invocation arguments.
var ErrUsage = errors.New("cli: usage")
