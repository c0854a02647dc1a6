package parser

import (
	"strings"

	"github.com/gigawhitlocks/i3-hacking/grammar"
)

// expectedTokens builds the "Expected one of these tokens: ..." message for
// the current state. Literals are enclosed in single quotes, error tokens are
// internal only and omitted, all other kinds are rendered in angle brackets.
func (r *run) expectedTokens() string {
	tokens := r.p.grammar.States[r.state].Tokens
	parts := make([]string, 0, len(tokens))
	for _, token := range tokens {
		switch token.Kind {
		case grammar.LiteralToken:
			parts = append(parts, "'"+token.Text+"'")
		case grammar.ErrorToken:
		default:
			parts = append(parts, "<"+token.Kind.String()+">")
		}
	}
	return "Expected one of these tokens: " + strings.Join(parts, ", ")
}

// pointerLine renders the caret line for the line starting at lineStart: one
// byte per source byte, spaces (tabs preserved for column alignment) before
// the cursor and '^' from the cursor to the end of the line.
func (r *run) pointerLine(lineStart int) string {
	var b strings.Builder
	for i := lineStart; i < len(r.input) && r.input[i] != '\n' && r.input[i] != '\r'; i++ {
		switch {
		case i >= r.walk:
			b.WriteByte('^')
		case r.input[i] == '\t':
			b.WriteByte('\t')
		default:
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// reportError logs a parse error with source context, appends the structured
// error record, and marks the context. The cursor is left untouched; recovery
// is a separate step.
func (r *run) reportError() {
	message := r.expectedTokens()
	lineStart := r.src.StartOfLine(r.walk)
	position := r.pointerLine(lineStart)
	log := r.p.log

	log.Errorf("CONFIG: %s", message)
	log.Errorf("CONFIG: (in file %s)", r.ctx.FileName)

	// Up to two context lines before the error.
	if r.linecnt > 1 {
		before1 := r.src.StartOfLine(lineStart - 2)
		if r.linecnt > 2 {
			before2 := r.src.StartOfLine(before1 - 2)
			log.Errorf("CONFIG: Line %3d: %s", r.linecnt-2, r.src.Line(before2))
		}
		log.Errorf("CONFIG: Line %3d: %s", r.linecnt-1, r.src.Line(before1))
	}

	log.Errorf("CONFIG: Line %3d: %s", r.linecnt, r.src.Line(lineStart))
	log.Errorf("CONFIG:           %s", position)

	// Up to two context lines after the error.
	next := lineStart
	for i := 0; i < 2; i++ {
		next = r.src.NextLineStart(next)
		if next < 0 {
			break
		}
		log.Errorf("CONFIG: Line %3d: %s", r.linecnt+i+1, r.src.Line(next))
	}

	r.ctx.HasErrors = true
	r.results = append(r.results, Result{
		ParseError:    true,
		Error:         message,
		Input:         string(r.input),
		ErrorPosition: position,
	})
}
