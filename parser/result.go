package parser

import (
	"github.com/gigawhitlocks/i3-hacking/grammar"
)

// Result is one record of the reply sequence: either the outcome of a
// semantic handler or a structured parse error. The zero payload is lazily
// allocated; encoding (JSON or otherwise) is left to the caller.
type Result struct {
	Success       bool            `json:"success"`
	ParseError    bool            `json:"parse_error,omitempty"`
	Error         string          `json:"error,omitempty"`
	Input         string          `json:"input,omitempty"`
	ErrorPosition string          `json:"errorposition,omitempty"`
	Payload       map[string]any  `json:"payload,omitempty"`
	NextState     grammar.StateID `json:"-"`
}

// Set stores a handler-defined payload value.
func (r *Result) Set(key string, value any) {
	if r.Payload == nil {
		r.Payload = map[string]any{}
	}
	r.Payload[key] = value
}
