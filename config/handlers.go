package config

import (
	"strings"

	"github.com/gigawhitlocks/i3-hacking/grammar"
	"github.com/gigawhitlocks/i3-hacking/parser"
)

// builder accumulates a Config from handler calls. A builder serves exactly
// one Parse invocation.
type builder struct {
	cfg *Config

	// currentMode is "" at the top level; inside a mode block it holds the
	// mode name and bindings go into cfg.Modes instead of cfg.Bindings.
	currentMode string

	// criteria collects the [class="..." instance="..."] conditions of the
	// directive being parsed. criteriaNext is the state to resume in once
	// the closing bracket pops the criteria, seeded by the
	// cfg_for_window_init / cfg_assign_init handlers.
	criteria     []Criterion
	criteriaNext grammar.StateID

	forWindowState grammar.StateID
	assignState    grammar.StateID
}

func newBuilder(g *grammar.Grammar) *builder {
	b := &builder{cfg: newConfig(), criteriaNext: grammar.Initial}
	b.forWindowState, _ = g.StateByName("FOR_WINDOW_COMMAND")
	b.assignState, _ = g.StateByName("ASSIGN_WORKSPACE")
	return b
}

// criteriaInit resets the pending criteria. The parser calls it once before
// parsing and again after every statement.
func (b *builder) criteriaInit(next grammar.StateID) {
	b.criteria = nil
	b.criteriaNext = grammar.Initial
}

func (b *builder) handlers() parser.Handlers {
	return parser.Handlers{
		"cfg_binding":               b.binding,
		"cfg_enter_mode":            b.enterMode,
		"cfg_mode_binding":          b.modeBinding,
		"cfg_mode_end":              b.modeEnd,
		"cfg_floating_modifier":     b.floatingModifier,
		"cfg_workspace":             b.workspace,
		"cfg_for_window_init":       b.forWindowInit,
		"cfg_assign_init":           b.assignInit,
		"cfg_criteria_add":          b.criteriaAdd,
		"cfg_criteria_pop_state":    b.criteriaPopState,
		"cfg_for_window":            b.forWindow,
		"cfg_assign":                b.assign,
		"cfg_exec":                  b.exec,
		"cfg_font":                  b.font,
		"cfg_workspace_layout":      b.option("workspace_layout", "layout"),
		"cfg_default_orientation":   b.option("default_orientation", "orientation"),
		"cfg_new_window":            b.option("new_window", "border"),
		"cfg_hide_edge_borders":     b.option("hide_edge_borders", "edges"),
		"cfg_force_focus_wrapping":  b.option("force_focus_wrapping", "value"),
		"cfg_focus_follows_mouse":   b.option("focus_follows_mouse", "value"),
		"cfg_ipc_socket":            b.ipcSocket,
		"cfg_color":                 b.color,
	}
}

func makeBinding(args *parser.Captures) Binding {
	return Binding{
		Bindtype: args.String("bindtype"),
		Release:  args.String("release") != "",
		Combo:    args.String("combo"),
		Command:  args.String("command"),
	}
}

func (b *builder) binding(args *parser.Captures, res *parser.Result) {
	bind := makeBinding(args)
	res.Set("bindtype", bind.Bindtype)
	res.Set("combo", bind.Combo)
	res.Set("command", bind.Command)
	b.cfg.Bindings = append(b.cfg.Bindings, bind)
}

func (b *builder) enterMode(args *parser.Captures, res *parser.Result) {
	b.currentMode = args.String("modename")
	res.Set("mode", b.currentMode)
	if _, found := b.cfg.Modes[b.currentMode]; !found {
		b.cfg.Modes[b.currentMode] = nil
	}
}

func (b *builder) modeBinding(args *parser.Captures, res *parser.Result) {
	bind := makeBinding(args)
	res.Set("mode", b.currentMode)
	res.Set("combo", bind.Combo)
	res.Set("command", bind.Command)
	b.cfg.Modes[b.currentMode] = append(b.cfg.Modes[b.currentMode], bind)
}

func (b *builder) modeEnd(args *parser.Captures, res *parser.Result) {
	res.Set("mode", b.currentMode)
	b.currentMode = ""
}

func (b *builder) floatingModifier(args *parser.Captures, res *parser.Result) {
	b.cfg.FloatingModifier = args.String("modifiers")
	res.Set("modifiers", b.cfg.FloatingModifier)
}

func (b *builder) workspace(args *parser.Captures, res *parser.Result) {
	ws := WorkspaceAssignment{
		Number: args.Number("ws"),
		Output: args.String("output"),
	}
	res.Set("workspace", ws.Number)
	if ws.Output != "" {
		res.Set("output", ws.Output)
	}
	b.cfg.Workspaces = append(b.cfg.Workspaces, ws)
}

func (b *builder) forWindowInit(args *parser.Captures, res *parser.Result) {
	b.criteria = nil
	b.criteriaNext = b.forWindowState
}

func (b *builder) assignInit(args *parser.Captures, res *parser.Result) {
	b.criteria = nil
	b.criteriaNext = b.assignState
}

func (b *builder) criteriaAdd(args *parser.Captures, res *parser.Result) {
	b.criteria = append(b.criteria, Criterion{
		Type:  args.String("ctype"),
		Value: args.String("cvalue"),
	})
}

func (b *builder) criteriaPopState(args *parser.Captures, res *parser.Result) {
	res.NextState = b.criteriaNext
}

func (b *builder) forWindow(args *parser.Captures, res *parser.Result) {
	fw := ForWindow{
		Criteria: b.criteria,
		Command:  args.String("command"),
	}
	res.Set("command", fw.Command)
	b.cfg.ForWindows = append(b.cfg.ForWindows, fw)
}

func (b *builder) assign(args *parser.Captures, res *parser.Result) {
	a := Assignment{
		Criteria:  b.criteria,
		Workspace: args.String("workspace"),
	}
	res.Set("workspace", a.Workspace)
	b.cfg.Assigns = append(b.cfg.Assigns, a)
}

func (b *builder) exec(args *parser.Captures, res *parser.Result) {
	e := Exec{
		Command:     args.String("command"),
		NoStartupID: args.String("no_startup_id") != "",
		Always:      strings.EqualFold(args.String("exectype"), "exec_always"),
	}
	res.Set("command", e.Command)
	b.cfg.Execs = append(b.cfg.Execs, e)
}

func (b *builder) font(args *parser.Captures, res *parser.Result) {
	b.cfg.Font = args.String("fontname")
	res.Set("font", b.cfg.Font)
}

// option builds a handler for the directives that store a single value under
// the directive name.
func (b *builder) option(name, capture string) parser.Handler {
	return func(args *parser.Captures, res *parser.Result) {
		v := args.String(capture)
		res.Set(name, v)
		b.cfg.Options[name] = v
	}
}

func (b *builder) ipcSocket(args *parser.Captures, res *parser.Result) {
	b.cfg.IPCSocket = args.String("path")
	res.Set("path", b.cfg.IPCSocket)
}

func (b *builder) color(args *parser.Captures, res *parser.Result) {
	class := args.String("colorclass")
	spec := ColorSpec{
		Border:     args.String("border"),
		Background: args.String("background"),
		Text:       args.String("text"),
		Indicator:  args.String("indicator"),
	}
	res.Set("colorclass", class)
	b.cfg.Colors[class] = spec
}
