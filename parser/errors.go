package parser

import (
	i3config "github.com/gigawhitlocks/i3-hacking"
)

// Error codes used by parser:
const (
	// UnboundHandlerError indicates that the grammar names a handler with no
	// registered function.
	UnboundHandlerError = i3config.ParserErrors + iota

	// UnknownHandlerError indicates a registered handler the grammar never calls.
	UnknownHandlerError
)

func unboundHandlerError(name string) *i3config.Error {
	return i3config.FormatError(UnboundHandlerError, "no handler registered for %q", name)
}

func unknownHandlerError(name string) *i3config.Error {
	return i3config.FormatError(UnknownHandlerError, "handler %q not named by the grammar", name)
}
