// Package parser implements the table-driven configuration parser: a token
// recognizer dispatching on the current state's expected tokens, a capture
// stack threading named literals into semantic handlers, and line-based error
// recovery producing source excerpts.
//
// A Parser is immutable and safe for concurrent use; all mutable state of one
// run lives in a per-invocation context created by Parse.
package parser

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/gigawhitlocks/i3-hacking/grammar"
	"github.com/gigawhitlocks/i3-hacking/source"
)

// Handler is a semantic action invoked by a call transition. It reads its
// arguments from the capture stack and writes its outcome, including the
// next state, into res. res.NextState is seeded from the grammar before the
// call. Handlers must not retain args values beyond their own return.
type Handler func(args *Captures, res *Result)

// Handlers maps handler names, as used in call transitions of the spec, to
// their functions.
type Handlers map[string]Handler

// Context carries per-file information across one or more Parse calls:
// the file name used in log output and the cumulative error flag consumed
// by downstream diagnostics.
type Context struct {
	FileName  string
	HasErrors bool
}

// Parser holds the grammar table and the resolved handler vector.
type Parser struct {
	grammar  *grammar.Grammar
	handlers []Handler
	log      *zap.SugaredLogger

	// CriteriaInit, when set, is invoked at parser entry and after every end
	// token so that criteria handlers start each directive from a clean
	// match. The argument is the state the upcoming directive starts in.
	CriteriaInit func(next grammar.StateID)
}

// New creates a parser for g. Every handler named by the grammar must be
// present in hs and vice versa. A nil log discards diagnostic output.
func New(g *grammar.Grammar, hs Handlers, log *zap.SugaredLogger) (*Parser, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	handlers := make([]Handler, len(g.Handlers))
	for i, name := range g.Handlers {
		h, found := hs[name]
		if !found {
			return nil, unboundHandlerError(name)
		}
		handlers[i] = h
	}
	for name := range hs {
		if _, found := g.HandlerIndex(name); !found {
			return nil, unknownHandlerError(name)
		}
	}

	return &Parser{grammar: g, handlers: handlers, log: log}, nil
}

// statelistSize bounds the state history. The history holds the path of
// block-opening states from INITIAL to the current state; config grammars
// nest a couple of levels at most.
const statelistSize = 10

// run is the per-invocation parse context.
type run struct {
	p   *Parser
	ctx *Context
	src *source.Source

	input   []byte
	walk    int
	linecnt int

	state        grammar.StateID
	statelist    [statelistSize]grammar.StateID
	statelistIdx int

	stack   Captures
	results []Result
}

// Parse consumes the entire input and returns the ordered sequence of result
// records. Parse errors are recovered internally: each one produces a record,
// sets ctx.HasErrors, and parsing resumes on the next line.
func (p *Parser) Parse(input []byte, ctx *Context) []Result {
	r := &run{
		p:            p,
		ctx:          ctx,
		src:          source.New(ctx.FileName, input),
		input:        input,
		linecnt:      1,
		state:        grammar.Initial,
		statelistIdx: 1,
		results:      make([]Result, 0),
	}
	r.statelist[0] = grammar.Initial

	p.dumpInput(input)
	if p.CriteriaInit != nil {
		p.CriteriaInit(grammar.Initial)
	}

	// The "<=" is intentional: the terminating end-of-input is handled
	// explicitly by looking for an end token.
	for r.walk <= len(input) {
		// Skip whitespace before every token; newlines are relevant since
		// they separate configuration directives.
		for r.walk < len(input) && (input[r.walk] == ' ' || input[r.walk] == '\t') {
			r.walk++
		}

		if !r.recognize() {
			r.reportError()
			r.recover()
		}
	}

	return r.results
}

// dumpInput writes the entire buffer to the debug log, one message per line.
func (p *Parser) dumpInput(input []byte) {
	lines := strings.Split(string(input), "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		p.log.Debugf("CONFIG(line %3d): %s", i+1, line)
	}
}

// recognize tries every expected token of the current state in declared
// order. On match it advances the cursor, captures the value if the
// descriptor names one, and performs the transition. Returns false if no
// descriptor matches.
func (r *run) recognize() bool {
	tokens := r.p.grammar.States[r.state].Tokens
	for i := range tokens {
		token := &tokens[i]
		switch token.Kind {
		case grammar.LiteralToken:
			if r.matchLiteral(token) {
				return true
			}

		case grammar.NumberToken:
			if r.matchNumber(token) {
				return true
			}

		case grammar.WordToken, grammar.StringToken:
			if r.matchWord(token) {
				return true
			}

		case grammar.LineToken:
			r.matchLine(token)
			return true

		case grammar.EndToken:
			if r.matchEnd(token) {
				return true
			}
		}
	}
	return false
}

func (r *run) matchLiteral(token *grammar.Token) bool {
	end := r.walk + len(token.Text)
	if end > len(r.input) || !strings.EqualFold(string(r.input[r.walk:end]), token.Text) {
		return false
	}

	if token.Identifier != "" {
		r.stack.PushString(token.Identifier, token.Text)
	}
	r.walk = end
	r.nextState(token)
	return true
}

// matchNumber accepts decimal integers only. Values that overflow int64 are
// not a match and fall through to the next descriptor.
func (r *run) matchNumber(token *grammar.Token) bool {
	i := r.walk
	if i < len(r.input) && (r.input[i] == '+' || r.input[i] == '-') {
		i++
	}
	digits := i
	for i < len(r.input) && r.input[i] >= '0' && r.input[i] <= '9' {
		i++
	}
	if i == digits {
		return false
	}

	num, e := strconv.ParseInt(string(r.input[r.walk:i]), 10, 64)
	if e != nil {
		return false
	}

	if token.Identifier != "" {
		r.stack.PushNumber(token.Identifier, num)
	}
	r.walk = i
	r.nextState(token)
	return true
}

func isWordDelimiter(b byte) bool {
	switch b {
	case ' ', '\t', ']', ',', ';', '\r', '\n':
		return true
	}
	return false
}

// matchWord handles both word and string tokens; they differ only in the
// delimiter set of the unquoted form.
func (r *run) matchWord(token *grammar.Token) bool {
	beginning := r.walk
	walk := r.walk
	if walk < len(r.input) && r.input[walk] == '"' {
		beginning++
		walk++
		for walk < len(r.input) && (r.input[walk] != '"' || r.input[walk-1] == '\\') {
			walk++
		}
	} else if token.Kind == grammar.StringToken {
		for walk < len(r.input) && r.input[walk] != '\r' && r.input[walk] != '\n' {
			walk++
		}
	} else {
		for walk < len(r.input) && !isWordDelimiter(r.input[walk]) {
			walk++
		}
	}

	if walk == beginning {
		return false
	}

	if token.Identifier != "" {
		r.stack.PushString(token.Identifier, unescape(r.input[beginning:walk]))
	}
	// Skip the ending double quote of a quoted string.
	if walk < len(r.input) && r.input[walk] == '"' {
		walk++
	}
	r.walk = walk
	r.nextState(token)
	return true
}

// unescape rewrites \" to ". All other backslash sequences are preserved so
// that regular-expression payloads survive unmodified.
func unescape(raw []byte) string {
	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\\' && i+1 < len(raw) && raw[i+1] == '"' {
			i++
		}
		out = append(out, raw[i])
	}
	return string(out)
}

func (r *run) matchLine(token *grammar.Token) {
	for r.walk < len(r.input) && r.input[r.walk] != '\n' && r.input[r.walk] != '\r' {
		r.walk++
	}
	r.nextState(token)
	r.linecnt++
	r.walk++
}

func (r *run) matchEnd(token *grammar.Token) bool {
	if r.walk < len(r.input) && r.input[r.walk] != '\n' && r.input[r.walk] != '\r' {
		return false
	}

	r.nextState(token)
	// Re-initialize the criteria system after every directive so that
	// directives without criteria start from a clean match.
	if r.p.CriteriaInit != nil {
		r.p.CriteriaInit(r.state)
	}
	r.linecnt++
	r.walk++
	return true
}

// nextState performs the transition of a matched descriptor: on a call it
// invokes the handler, appends its result record, and adopts the returned
// next state; then it updates the state history.
func (r *run) nextState(token *grammar.Token) {
	next := token.Next
	if next == grammar.Call {
		res := Result{Success: true, NextState: token.CallNext}
		r.p.handlers[token.Handler](&r.stack, &res)
		r.results = append(r.results, res)
		next = res.NextState
		r.stack.Clear()
	}

	r.state = next
	if next == grammar.Initial {
		r.stack.Clear()
	}

	// If we are jumping back to a state we have been in previously, just
	// truncate the history accordingly.
	for i := 0; i < r.statelistIdx; i++ {
		if r.statelist[i] == next {
			r.statelistIdx = i + 1
			return
		}
	}

	if r.statelistIdx == statelistSize {
		fmt.Fprintln(os.Stderr, "BUG: parser state history full. This means either a bug "+
			"in the code, or a grammar spec nesting states more than 10 levels deep.")
		panic("state history overflow")
	}
	r.statelist[r.statelistIdx] = next
	r.statelistIdx++
}

// recover skips the rest of the failed line and follows the error token of
// the nearest enclosing state that declares one.
func (r *run) recover() {
	// Skip to the next \n, but do not consume it: the following iteration
	// matches it as an end token in whatever state recovery enters, which
	// keeps line accounting consistent.
	for r.walk <= len(r.input) && (r.walk == len(r.input) || r.input[r.walk] != '\n') {
		r.walk++
	}

	r.stack.Clear()

	for i := r.statelistIdx - 1; i >= 0; i-- {
		errToken, found := r.p.grammar.ErrorTokenOf(r.statelist[i])
		if found {
			r.nextState(&errToken)
			return
		}
	}

	// specdef guarantees an error token on INITIAL, and INITIAL is always
	// the first history entry.
	fmt.Fprintln(os.Stderr, "BUG: no error token found in any active parser state.")
	panic("no error recovery anchor")
}
