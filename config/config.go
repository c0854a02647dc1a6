// Package config parses i3-style window manager configuration files. It owns
// the parser spec for the configuration grammar, the semantic handlers that
// build a Config value from the directive stream, and the passes surrounding
// the parser itself: variable substitution, format version detection, and the
// duplicate-keybinding check.
package config

import (
	_ "embed"
	"sync"

	"go.uber.org/zap"

	"github.com/gigawhitlocks/i3-hacking/grammar"
	"github.com/gigawhitlocks/i3-hacking/parser"
	"github.com/gigawhitlocks/i3-hacking/specdef"
)

//go:embed config.spec
var specText string

var (
	grammarOnce sync.Once
	configGram  *grammar.Grammar
	grammarErr  error
)

// Grammar returns the table built from the embedded parser spec. The spec is
// part of the package; failing to parse it is a build bug, reported once.
func Grammar() (*grammar.Grammar, error) {
	grammarOnce.Do(func() {
		configGram, grammarErr = specdef.ParseString("config.spec", specText)
	})
	return configGram, grammarErr
}

// Binding is one keyboard binding: bindsym or bindcode, an optional
// --release flag, the modifier+key combo as written, and the command.
type Binding struct {
	Bindtype string
	Release  bool
	Combo    string
	Command  string
}

// Criterion is one window matching condition, e.g. class="URxvt".
type Criterion struct {
	Type  string
	Value string
}

// Assignment routes windows matching the criteria to a workspace.
type Assignment struct {
	Criteria  []Criterion
	Workspace string
}

// ForWindow runs a command for every new window matching the criteria.
type ForWindow struct {
	Criteria []Criterion
	Command  string
}

// Exec is an exec or exec_always directive.
type Exec struct {
	Command     string
	NoStartupID bool
	Always      bool
}

// WorkspaceAssignment pins a numbered workspace to an output. Output is ""
// for a bare "workspace N" directive.
type WorkspaceAssignment struct {
	Number int64
	Output string
}

// ColorSpec is one client color class. Indicator is optional.
type ColorSpec struct {
	Border     string
	Background string
	Text       string
	Indicator  string
}

// Config is the structured result of parsing one configuration buffer.
type Config struct {
	Font             string
	FloatingModifier string
	IPCSocket        string

	Bindings   []Binding
	Modes      map[string][]Binding
	Workspaces []WorkspaceAssignment
	Assigns    []Assignment
	ForWindows []ForWindow
	Execs      []Exec
	Colors     map[string]ColorSpec

	// Options holds the single-value directives (workspace_layout,
	// default_orientation, new_window, hide_edge_borders,
	// focus_follows_mouse, force_focus_wrapping) keyed by directive name.
	Options map[string]string
}

func newConfig() *Config {
	return &Config{
		Modes:   map[string][]Binding{},
		Colors:  map[string]ColorSpec{},
		Options: map[string]string{},
	}
}

// Parse parses one configuration buffer. The input must already be variable
// substituted (see Substitute); ParseFile runs the full pipeline. Parse
// errors do not stop parsing: they are recorded in the result sequence and in
// ctx.HasErrors.
func Parse(input []byte, ctx *parser.Context, log *zap.SugaredLogger) (*Config, []parser.Result, error) {
	g, e := Grammar()
	if e != nil {
		return nil, nil, e
	}

	b := newBuilder(g)
	p, e := parser.New(g, b.handlers(), log)
	if e != nil {
		return nil, nil, e
	}
	p.CriteriaInit = b.criteriaInit

	results := p.Parse(input, ctx)
	return b.cfg, results, nil
}
