/*
Package i3config is a table-driven parser for i3-style window manager
configuration files.

Consists of subpackages:
  - cmd/i3gramgen: console utility converting a parser-spec file to a Go source file containing the grammar table;
  - cmd/i3confcheck: console utility parsing a configuration file and reporting diagnostics;
  - grammar: defines the state/token table consumed by the parser;
  - specdef: converts a textual parser-spec (state blocks with token descriptors) to a grammar table;
  - lexer: lexical analyzer used by specdef;
  - source: defines the input buffer and line bookkeeping used by lexer and by error reporting;
  - parser: the configuration parser itself (token recognizer, capture stack, error recovery);
  - logger: zap-based log setup used by the parser's diagnostic output;
  - config: the actual configuration grammar, its semantic handlers, and the surrounding passes
    (variable substitution, version detection, duplicate-binding check).

Typical usage is:

1. Describe the accepted directives in the parser-spec language (see specdef docs).
The spec does not contain Go code; the same spec can be parsed at program start
or translated to a generated Go file with i3gramgen.

2. Register a semantic handler for every call target named in the spec.

3. Create a parser for the grammar and feed it complete configuration buffers;
collect the emitted result records and the has_errors flag.

Package config does all three steps for the built-in configuration format.
*/
package i3config

import (
	"fmt"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	SpecDefErrors = 1   // used by specdef
	LexicalErrors = 101 // used by lexer
	ParserErrors  = 201 // used by parser
	ConfigErrors  = 301 // used by config
)

// Error is the error type used by i3config subpackages.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message including source name and position information if provided.
	Message string

	// SourceName contains source name that caused this error or empty string.
	SourceName string

	// Line contains line number in source file or 0.
	Line int

	// Col contains column number in source file or 0.
	Col int
}

// SourcePos is used to retrieve source name and position information when constructing an error;
// source.Pos and lexer.Token implement this interface.
type SourcePos interface {
	// SourceName returns source file name or empty string.
	SourceName() string
	// Line returns line number or 0.
	Line() int
	// Col returns column number or 0.
	Col() int
}

// NewError creates new Error structure.
// name, line, and col will be added to error message if provided (non-zero).
func NewError(code int, msg, name string, line, col int) *Error {
	if name != "" && line != 0 && col != 0 {
		msg += fmt.Sprintf(" in %s at line %d col %d", name, line, col)
	}
	return &Error{code, msg, name, line, col}
}

// Error simply returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

// FormatError creates Error structure with no source and position information.
// params will be added to error message using fmt.Sprintf function.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, "", 0, 0)
}

// FormatErrorPos creates Error structure with source and position information.
// pos must not be nil.
// params will be added to error message using fmt.Sprintf function.
func FormatErrorPos(pos SourcePos, code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, pos.SourceName(), pos.Line(), pos.Col())
}
