package usage

import (
	"fmt"
	"strings"
)

// InvalidFlag is returned when a flag is not valid in the current context.
func InvalidFlag(flag string) *Error {
	return &Error{
		Kind:    ErrInvalidFlag,
		Message: fmt.Sprintf("bmd: invalid flag '%s'", flag),
	}
}

// InvalidValue is returned when an argument is present but not acceptable.
func InvalidValue(name, value string, allowed ...string) *Error {
	msg := fmt.Sprintf("bmd: invalid %s '%s'", name, value)
	if len(allowed) > 0 {
		msg += fmt.Sprintf(" (expected one of: %s)", strings.Join(allowed, ", "))
	}
	return &Error{
		Kind:    ErrInvalidValue,
		Message: msg,
	}
}

// InvalidConfigKey is returned when a config key is not known.
func InvalidConfigKey(key string) *Error {
	return &Error{
		Kind:    ErrInvalidConfigKey,
		Message: fmt.Sprintf("bmd: '%s' is not a valid config key. See 'bmd config list'.", key),
	}
}
