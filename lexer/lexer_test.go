package lexer

import (
	"regexp"
	"testing"

	"github.com/gigawhitlocks/i3-hacking/internal/test"
	"github.com/gigawhitlocks/i3-hacking/source"
)

const (
	numberTok = iota
	wordTok
)

var testRe = regexp.MustCompile(`^(?:[ \t\n]+|([0-9]+)|([a-z]+)|(!.{0,5}))`)

var testTypes = []TokenType{
	{numberTok, "number"},
	{wordTok, "word"},
}

func newTestLexer(content string) *Lexer {
	return New(testRe, testTypes, source.New("sample", []byte(content)))
}

func TestTokenSequence(t *testing.T) {
	l := newTestLexer("ab 12\n cd")
	expected := []struct {
		tokenType int
		text      string
		line, col int
	}{
		{wordTok, "ab", 1, 1},
		{numberTok, "12", 1, 4},
		{wordTok, "cd", 2, 2},
	}
	for _, ex := range expected {
		tok, e := l.Next()
		test.Assert(t, e == nil, "unexpected error: %v", e)
		test.ExpectInt(t, ex.tokenType, tok.Type())
		test.Expect(t, tok.Text() == ex.text, ex.text, tok.Text())
		test.Assert(t, tok.Line() == ex.line && tok.Col() == ex.col,
			"%q: expecting %d:%d, got %d:%d", ex.text, ex.line, ex.col, tok.Line(), tok.Col())
	}

	tok, e := l.Next()
	test.Assert(t, e == nil, "unexpected error: %v", e)
	test.ExpectInt(t, EofTokenType, tok.Type())

	// EoF is sticky.
	tok, _ = l.Next()
	test.ExpectInt(t, EofTokenType, tok.Type())
}

func TestWrongChar(t *testing.T) {
	l := newTestLexer("ab %")
	_, e := l.Next()
	test.Assert(t, e == nil, "unexpected error: %v", e)
	_, e = l.Next()
	test.ExpectErrorCode(t, WrongCharError, e)
}

func TestBrokenToken(t *testing.T) {
	l := newTestLexer("!boom")
	_, e := l.Next()
	test.ExpectErrorCode(t, BadTokenError, e)
}
