// Package grammar defines the state/token table consumed by the parser.
// The table is pure data: a list of states, each holding an ordered list of
// token descriptors. It is produced by the specdef package (or by a file
// generated with i3gramgen) and never modified afterwards.
package grammar

// StateID identifies a parser state. State 0 is always INITIAL.
type StateID int

const (
	// Initial is the start state and the resynchronization anchor.
	Initial StateID = 0

	// Call marks a descriptor whose transition invokes a semantic handler;
	// the handler result supplies the actual next state.
	Call StateID = -1
)

// TokenKind enumerates the descriptor kinds recognized by the parser.
type TokenKind int

const (
	// LiteralToken matches the descriptor text case-insensitively.
	LiteralToken TokenKind = iota

	// NumberToken matches a decimal integer.
	NumberToken

	// WordToken matches a run of bytes up to space, tab, ']', ',', ';',
	// CR, LF, or end of input, or a double-quoted run.
	WordToken

	// StringToken matches like WordToken but an unquoted run extends to
	// the end of the line.
	StringToken

	// LineToken consumes the rest of the line including one terminator.
	LineToken

	// EndToken matches CR, LF, or end of input.
	EndToken

	// ErrorToken never matches input; it marks the state error recovery
	// jumps to after a failed line.
	ErrorToken
)

var kindNames = [...]string{"literal", "number", "word", "string", "line", "end", "error"}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Token is one row of a state's token table.
type Token struct {
	// Kind selects the matching rule.
	Kind TokenKind

	// Text contains the literal text for LiteralToken, "" otherwise.
	Text string

	// Identifier is the capture name for the matched value, "" for no capture.
	Identifier string

	// Next is the state to enter on match, or Call.
	Next StateID

	// Handler is the handler table index used when Next == Call.
	Handler int

	// CallNext seeds the result's next state before the handler runs.
	// Only meaningful when Next == Call.
	CallNext StateID
}

// State is a named state with its ordered descriptor list.
type State struct {
	Name   string
	Tokens []Token
}

// Grammar is the complete table: states indexed by StateID plus the handler
// names referenced by call transitions, in first-use order.
type Grammar struct {
	States   []State
	Handlers []string
}

// StateName returns the name of s or "?" for an out-of-range id.
func (g *Grammar) StateName(s StateID) string {
	if s < 0 || int(s) >= len(g.States) {
		return "?"
	}
	return g.States[s].Name
}

// StateByName returns the id of the named state.
func (g *Grammar) StateByName(name string) (StateID, bool) {
	for i := range g.States {
		if g.States[i].Name == name {
			return StateID(i), true
		}
	}
	return 0, false
}

// HandlerIndex returns the index of the named handler.
func (g *Grammar) HandlerIndex(name string) (int, bool) {
	for i, h := range g.Handlers {
		if h == name {
			return i, true
		}
	}
	return 0, false
}

// ErrorTokenOf returns the first error descriptor of s, if any.
func (g *Grammar) ErrorTokenOf(s StateID) (Token, bool) {
	for _, t := range g.States[s].Tokens {
		if t.Kind == ErrorToken {
			return t, true
		}
	}
	return Token{}, false
}
