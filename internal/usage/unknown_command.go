package usage

import (
	"fmt"
	"strings"
)

// UnknownCommand is returned when a command token does not resolve.
// Suggestions, if any, are appended as a "did you mean" hint.
func UnknownCommand(command string, suggestions ...string) *Error {
	msg := fmt.Sprintf("bmd: '%s' is not a bmd command. See 'bmd --help'.", command)
	if len(suggestions) > 0 {
		msg += "\n\nThe most similar commands are:\n\t" + strings.Join(suggestions, "\n\t")
	}
	return &Error{
		Kind:    ErrUnknownCommand,
		Message: msg,
	}
}

// NotFound is returned when a lookup finds nothing.
func NotFound(what string) *Error {
	return &Error{
		Kind:    ErrNotFound,
		Message: fmt.Sprintf("bmd: no results for '%s'", what),
	}
}
