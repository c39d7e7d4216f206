package usage

import "fmt"

// MissingArgument is returned when a required argument is not provided.
func MissingArgument(arg string) *Error {
	return &Error{
		Kind:    ErrMissingArgument,
		Message: fmt.Sprintf("bmd: missing required argument '%s'", arg),
	}
}

// NotInteractive is returned when a TUI command runs without a terminal.
func NotInteractive(command string) *Error {
	return &Error{
		Kind:    ErrNotInteractive,
		Message: fmt.Sprintf("bmd: '%s' requires an interactive terminal", command),
	}
}
