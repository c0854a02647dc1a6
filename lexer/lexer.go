// Package lexer defines the lexical analyzer used by specdef to read
// parser-spec files. The runtime configuration parser does not use it; token
// recognition there is driven by the grammar table directly.
package lexer

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	i3config "github.com/gigawhitlocks/i3-hacking"
	"github.com/gigawhitlocks/i3-hacking/source"
)

const (
	// ErrorTokenType is the type for fake tokens capturing broken lexemes.
	// Lexer will never return a token of this type, an error with message
	// containing token text will be returned instead.
	ErrorTokenType = EofTokenType - 1

	// ErrorTokenName is the type name for ErrorTokenType.
	ErrorTokenName = "-error-"
)

// Error codes used by lexer:
const (
	// WrongCharError indicates that lexer cannot fetch any token at current position.
	WrongCharError = i3config.LexicalErrors + iota

	// BadTokenError indicates that lexer has fetched a token of ErrorTokenType.
	BadTokenError
)

// TokenType describes token type for specific capturing group of regular expression.
type TokenType struct {
	Type     int
	TypeName string
}

// Lexer fetches tokens from a single Source using regexp.Regexp.
// Each token type maps to its own regexp capturing group index.
// A match containing no captured groups is treated as insignificant lexeme
// (e.g. whitespace), in this case lexer tries again at the new position.
type Lexer struct {
	types []TokenType
	re    *regexp.Regexp
	src   *source.Source
	pos   int
}

// New creates new Lexer.
// Each n-th element of types describes token type for (n+1)-th regexp capturing group.
func New(re *regexp.Regexp, types []TokenType, src *source.Source) *Lexer {
	ts := make([]TokenType, len(types))
	copy(ts, types)
	return &Lexer{types: ts, re: re, src: src}
}

// Pos returns current position in the source.
func (l *Lexer) Pos() int {
	return l.pos
}

func wrongCharError(s *source.Source, content []byte, pos int) *i3config.Error {
	r, _ := utf8.DecodeRune(content)
	msg := fmt.Sprintf("wrong char %q (u+%x)", r, r)
	line, col := s.LineCol(pos)
	return i3config.NewError(WrongCharError, msg, s.Name(), line, col)
}

func wrongTokenError(t *Token) *i3config.Error {
	return i3config.FormatErrorPos(t, BadTokenError, "bad token %q", t.Text())
}

// Next fetches the token starting at current position and advances the position.
// Returns nil token and *i3config.Error on a lexical error.
// Returns EoF token at the end of the source.
func (l *Lexer) Next() (*Token, error) {
	for {
		if l.pos >= l.src.Len() {
			return EofToken(l.src), nil
		}

		content := l.src.Content()[l.pos:]
		match := l.re.FindSubmatchIndex(content)
		if len(match) == 0 || match[0] != 0 || match[1] <= match[0] {
			return nil, wrongCharError(l.src, content, l.pos)
		}

		for i := 2; i < len(match); i += 2 {
			if match[i] < 0 || match[i+1] < 0 {
				continue
			}

			sp := source.NewPos(l.src, l.pos+match[i])
			tokenType := ErrorTokenType
			typeName := ErrorTokenName
			if len(l.types) >= (i >> 1) {
				tokenType = l.types[(i>>1)-1].Type
				typeName = l.types[(i>>1)-1].TypeName
			}
			token := NewToken(tokenType, typeName, string(content[match[i]:match[i+1]]), sp)
			if tokenType == ErrorTokenType {
				return nil, wrongTokenError(token)
			}

			l.pos += match[1]
			return token, nil
		}

		// Insignificant lexeme, skip and retry.
		l.pos += match[1]
	}
}
