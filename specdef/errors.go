package specdef

import (
	"strings"

	i3config "github.com/gigawhitlocks/i3-hacking"
	"github.com/gigawhitlocks/i3-hacking/lexer"
)

const (
	UnexpectedEofError = i3config.SpecDefErrors + iota
	UnexpectedTokenError
	StateDefinedError
	UnknownStateError
	NoStatesError
	WrongFirstStateError
	UnreachableStateError
	NoErrorAnchorError
	EmptyLiteralError
)

func eofError(token *lexer.Token) *i3config.Error {
	return i3config.FormatErrorPos(token, UnexpectedEofError, "unexpected EoF")
}

func unexpectedTokenError(token *lexer.Token) *i3config.Error {
	return i3config.FormatErrorPos(token, UnexpectedTokenError, "unexpected %q", token.Text())
}

func stateDefinedError(token *lexer.Token) *i3config.Error {
	return i3config.FormatErrorPos(token, StateDefinedError, "state %s already defined", token.Text())
}

func unknownStateError(name, suggestion string) *i3config.Error {
	msg := "undefined state " + name
	if suggestion != "" {
		msg += " (did you mean " + suggestion + "?)"
	}
	return i3config.FormatError(UnknownStateError, msg)
}

func noStatesError() *i3config.Error {
	return i3config.FormatError(NoStatesError, "spec defines no states")
}

func wrongFirstStateError(name string) *i3config.Error {
	return i3config.FormatError(WrongFirstStateError, "first state must be INITIAL, got %s", name)
}

func unreachableStatesError(names []string) *i3config.Error {
	return i3config.FormatError(UnreachableStateError, "unreachable states: "+strings.Join(names, ", "))
}

func noErrorAnchorError() *i3config.Error {
	return i3config.FormatError(NoErrorAnchorError, "INITIAL state declares no error token")
}

func emptyLiteralError(token *lexer.Token) *i3config.Error {
	return i3config.FormatErrorPos(token, EmptyLiteralError, "empty literal")
}
