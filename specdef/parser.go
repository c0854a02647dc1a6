package specdef

import (
	"regexp"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/gigawhitlocks/i3-hacking/grammar"
	"github.com/gigawhitlocks/i3-hacking/lexer"
	"github.com/gigawhitlocks/i3-hacking/source"
)

const (
	nlTok      = "nl"
	literalTok = "literal"
	arrowTok   = "arrow"
	nameTok    = "name"
	dirTok     = "dir"
	opTok      = "op"
	wrongTok   = ""
)

const (
	stateKeyword = "state"
	callKeyword  = "call"
	dynamicDir   = "!dynamic"
)

var kindNames = map[string]grammar.TokenKind{
	"number": grammar.NumberToken,
	"word":   grammar.WordToken,
	"string": grammar.StringToken,
	"line":   grammar.LineToken,
	"end":    grammar.EndToken,
	"error":  grammar.ErrorToken,
}

var specRe *regexp.Regexp

var specTokenTypes = []lexer.TokenType{
	{Type: 1, TypeName: nlTok},
	{Type: 2, TypeName: literalTok},
	{Type: 3, TypeName: arrowTok},
	{Type: 4, TypeName: nameTok},
	{Type: 5, TypeName: dirTok},
	{Type: 6, TypeName: opTok},
	{Type: lexer.ErrorTokenType, TypeName: wrongTok},
}

func init() {
	specRe = regexp.MustCompile(
		`^(?:[ \t\r]+|#[^\n]*|` +
			`(\n)|` +
			`('[^'\n]*')|` +
			`(->)|` +
			`([A-Za-z_][A-Za-z_0-9-]*)|` +
			`(![a-z]+)|` +
			`([=,;:])|` +
			`(['!].{0,10}))`)
}

// tokenEntry is one descriptor line item before state names are resolved.
type tokenEntry struct {
	kind       grammar.TokenKind
	text       string
	identifier string
	target     string // target state name, "" means INITIAL
	call       string // handler name for call transitions
	callNext   string // seed state for the handler result, "" means INITIAL
	isCall     bool
}

type stateEntry struct {
	name   string
	tokens []tokenEntry
}

type parseContext struct {
	lx         *lexer.Lexer
	states     []*stateEntry
	stateIndex map[string]int
	dynamic    []string
	savedToken *lexer.Token
}

// ParseString parses a spec and returns a grammar table on success.
// Returns nil and *i3config.Error on error.
func ParseString(name, content string) (*grammar.Grammar, error) {
	return Parse(source.New(name, []byte(content)))
}

// ParseBytes parses a spec and returns a grammar table on success.
// Returns nil and *i3config.Error on error.
func ParseBytes(name string, content []byte) (*grammar.Grammar, error) {
	return Parse(source.New(name, content))
}

// Parse parses a spec and returns a grammar table on success.
// Returns nil and *i3config.Error on error.
func Parse(s *source.Source) (*grammar.Grammar, error) {
	c := &parseContext{
		lx:         lexer.New(specRe, specTokenTypes, s),
		stateIndex: map[string]int{},
	}
	e := c.parse()
	if e != nil {
		return nil, e
	}

	return c.buildGrammar()
}

func (c *parseContext) fetch() (*lexer.Token, error) {
	if c.savedToken != nil {
		t := c.savedToken
		c.savedToken = nil
		return t, nil
	}
	return c.lx.Next()
}

func (c *parseContext) unfetch(t *lexer.Token) {
	c.savedToken = t
}

// fetchSkipNl returns the next token that is not a line break.
func (c *parseContext) fetchSkipNl() (*lexer.Token, error) {
	for {
		t, e := c.fetch()
		if e != nil || t.TypeName() != nlTok {
			return t, e
		}
	}
}

func (c *parseContext) expect(typeName string) (*lexer.Token, error) {
	t, e := c.fetch()
	if e != nil {
		return nil, e
	}
	if t.Type() == lexer.EofTokenType {
		return nil, eofError(t)
	}
	if t.TypeName() != typeName {
		return nil, unexpectedTokenError(t)
	}
	return t, nil
}

func (c *parseContext) parse() error {
	for {
		t, e := c.fetchSkipNl()
		if e != nil {
			return e
		}
		if t.Type() == lexer.EofTokenType {
			break
		}
		if t.TypeName() == dirTok {
			e = c.parseDirective(t)
			if e != nil {
				return e
			}
			continue
		}
		if t.TypeName() != nameTok || t.Text() != stateKeyword {
			return unexpectedTokenError(t)
		}

		e = c.parseStateBlock()
		if e != nil {
			return e
		}
	}

	if len(c.states) == 0 {
		return noStatesError()
	}
	return nil
}

// parseDirective parses "!dynamic NAME {, NAME}". Dynamic states are entered
// only through handler-returned next states, so the reachability check treats
// them as roots.
func (c *parseContext) parseDirective(dir *lexer.Token) error {
	if dir.Text() != dynamicDir {
		return unexpectedTokenError(dir)
	}

	for {
		t, e := c.expect(nameTok)
		if e != nil {
			return e
		}
		c.dynamic = append(c.dynamic, t.Text())

		t, e = c.fetch()
		if e != nil {
			return e
		}
		if t.TypeName() == opTok && t.Text() == "," {
			continue
		}
		if t.TypeName() == nlTok || t.Type() == lexer.EofTokenType {
			return nil
		}
		return unexpectedTokenError(t)
	}
}

func (c *parseContext) parseStateBlock() error {
	nameToken, e := c.expect(nameTok)
	if e != nil {
		return e
	}
	name := nameToken.Text()
	if _, defined := c.stateIndex[name]; defined {
		return stateDefinedError(nameToken)
	}
	if len(c.states) == 0 && name != "INITIAL" {
		return wrongFirstStateError(name)
	}

	colon, e := c.expect(opTok)
	if e != nil {
		return e
	}
	if colon.Text() != ":" {
		return unexpectedTokenError(colon)
	}

	st := &stateEntry{name: name}
	c.stateIndex[name] = len(c.states)
	c.states = append(c.states, st)

	for {
		t, e := c.fetchSkipNl()
		if e != nil {
			return e
		}
		if t.Type() == lexer.EofTokenType {
			return nil
		}
		if t.TypeName() == nameTok && t.Text() == stateKeyword {
			c.unfetch(t)
			return nil
		}

		e = c.parseDescriptor(st, t)
		if e != nil {
			return e
		}
	}
}

// parseDescriptor parses one "[ident =] token {, token} -> target" line.
// first is the already fetched first token of the line.
func (c *parseContext) parseDescriptor(st *stateEntry, first *lexer.Token) error {
	identifier := ""
	if first.TypeName() == nameTok {
		next, e := c.fetch()
		if e != nil {
			return e
		}
		if next.TypeName() == opTok && next.Text() == "=" {
			identifier = first.Text()
			first, e = c.fetch()
			if e != nil {
				return e
			}
		} else {
			c.unfetch(next)
		}
	}

	entries := make([]tokenEntry, 0, 1)
	for {
		kind, text, e := c.tokenItem(first)
		if e != nil {
			return e
		}
		entries = append(entries, tokenEntry{kind: kind, text: text, identifier: identifier})

		t, e := c.fetch()
		if e != nil {
			return e
		}
		if t.TypeName() == opTok && t.Text() == "," {
			first, e = c.fetch()
			if e != nil {
				return e
			}
			continue
		}
		if t.TypeName() != arrowTok {
			if t.Type() == lexer.EofTokenType {
				return eofError(t)
			}
			return unexpectedTokenError(t)
		}
		break
	}

	target, call, callNext, isCall, e := c.parseTarget()
	if e != nil {
		return e
	}

	for i := range entries {
		entries[i].target = target
		entries[i].call = call
		entries[i].callNext = callNext
		entries[i].isCall = isCall
	}
	st.tokens = append(st.tokens, entries...)
	return nil
}

func (c *parseContext) tokenItem(t *lexer.Token) (kind grammar.TokenKind, text string, e error) {
	switch t.TypeName() {
	case literalTok:
		text = t.Text()[1 : len(t.Text())-1]
		if text == "" {
			return 0, "", emptyLiteralError(t)
		}
		return grammar.LiteralToken, text, nil

	case nameTok:
		kind, found := kindNames[t.Text()]
		if !found {
			return 0, "", unexpectedTokenError(t)
		}
		return kind, "", nil
	}

	if t.Type() == lexer.EofTokenType {
		return 0, "", eofError(t)
	}
	return 0, "", unexpectedTokenError(t)
}

// parseTarget parses everything after "->" up to the end of the line.
func (c *parseContext) parseTarget() (target, call, callNext string, isCall bool, e error) {
	t, e := c.fetch()
	if e != nil {
		return
	}
	if t.TypeName() == nlTok || t.Type() == lexer.EofTokenType {
		return // empty target, INITIAL
	}
	if t.TypeName() != nameTok {
		e = unexpectedTokenError(t)
		return
	}

	if t.Text() != callKeyword {
		target = t.Text()
		e = c.endOfLine()
		return
	}

	isCall = true
	ct, e := c.expect(nameTok)
	if e != nil {
		return
	}
	call = ct.Text()

	t, e = c.fetch()
	if e != nil {
		return
	}
	if t.TypeName() == opTok && t.Text() == ";" {
		var nt *lexer.Token
		nt, e = c.expect(nameTok)
		if e != nil {
			return
		}
		callNext = nt.Text()
		e = c.endOfLine()
		return
	}
	if t.TypeName() == nlTok || t.Type() == lexer.EofTokenType {
		return
	}
	e = unexpectedTokenError(t)
	return
}

func (c *parseContext) endOfLine() error {
	t, e := c.fetch()
	if e != nil {
		return e
	}
	if t.TypeName() != nlTok && t.Type() != lexer.EofTokenType {
		return unexpectedTokenError(t)
	}
	return nil
}

func (c *parseContext) resolveState(name string) (grammar.StateID, error) {
	if name == "" {
		return grammar.Initial, nil
	}
	index, found := c.stateIndex[name]
	if !found {
		return 0, unknownStateError(name, c.suggestState(name))
	}
	return grammar.StateID(index), nil
}

// suggestState returns the defined state name closest to the misspelled one,
// or "" if nothing is remotely similar.
func (c *parseContext) suggestState(name string) string {
	candidates := make([]string, 0, len(c.states))
	for _, st := range c.states {
		candidates = append(candidates, st.name)
	}
	ranks := fuzzy.RankFindFold(name, candidates)
	if len(ranks) == 0 {
		return ""
	}
	best := ranks[0]
	for _, r := range ranks[1:] {
		if r.Distance < best.Distance {
			best = r
		}
	}
	return best.Target
}

func (c *parseContext) buildGrammar() (*grammar.Grammar, error) {
	g := &grammar.Grammar{States: make([]grammar.State, len(c.states))}
	handlerIndex := map[string]int{}

	for si, st := range c.states {
		tokens := make([]grammar.Token, len(st.tokens))
		for ti, te := range st.tokens {
			gt := grammar.Token{
				Kind:       te.kind,
				Text:       te.text,
				Identifier: te.identifier,
			}
			if te.isCall {
				hi, found := handlerIndex[te.call]
				if !found {
					hi = len(g.Handlers)
					handlerIndex[te.call] = hi
					g.Handlers = append(g.Handlers, te.call)
				}
				next, e := c.resolveState(te.callNext)
				if e != nil {
					return nil, e
				}
				gt.Next = grammar.Call
				gt.Handler = hi
				gt.CallNext = next
			} else {
				next, e := c.resolveState(te.target)
				if e != nil {
					return nil, e
				}
				gt.Next = next
			}
			tokens[ti] = gt
		}
		g.States[si] = grammar.State{Name: st.name, Tokens: tokens}
	}

	if _, found := g.ErrorTokenOf(grammar.Initial); !found {
		return nil, noErrorAnchorError()
	}

	e := c.checkReachability(g)
	if e != nil {
		return nil, e
	}
	return g, nil
}

func (c *parseContext) checkReachability(g *grammar.Grammar) error {
	reached := make([]bool, len(g.States))
	reached[grammar.Initial] = true
	work := []grammar.StateID{grammar.Initial}
	for _, name := range c.dynamic {
		s, e := c.resolveState(name)
		if e != nil {
			return e
		}
		if !reached[s] {
			reached[s] = true
			work = append(work, s)
		}
	}
	for len(work) > 0 {
		s := work[len(work)-1]
		work = work[:len(work)-1]
		for _, t := range g.States[s].Tokens {
			targets := []grammar.StateID{t.Next}
			if t.Next == grammar.Call {
				targets = []grammar.StateID{t.CallNext}
			}
			for _, n := range targets {
				if n >= 0 && !reached[n] {
					reached[n] = true
					work = append(work, n)
				}
			}
		}
	}

	var unreachable []string
	for i, r := range reached {
		if !r {
			unreachable = append(unreachable, g.States[i].Name)
		}
	}
	if len(unreachable) > 0 {
		return unreachableStatesError(unreachable)
	}
	return nil
}
