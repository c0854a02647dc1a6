package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gigawhitlocks/i3-hacking/parser"
)

func nopLog() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

func parseConfig(t *testing.T, input string) (*Config, []parser.Result, *parser.Context) {
	t.Helper()
	ctx := &parser.Context{FileName: "test.cfg"}
	cfg, results, e := Parse([]byte(input), ctx, nopLog())
	require.NoError(t, e)
	return cfg, results, ctx
}

func TestGrammarBuilds(t *testing.T) {
	g, e := Grammar()
	require.NoError(t, e)
	assert.NotEmpty(t, g.States)
	assert.NotEmpty(t, g.Handlers)
}

func TestParseFullConfig(t *testing.T) {
	input := `# i3 config file (v4)
font -misc-fixed-medium-r-normal--13-120-75-75-C-70-iso10646-1
floating_modifier Mod4
bindsym Mod4+Return exec urxvt
bindcode --release 214 exec --no-startup-id xlock
workspace 2 output VGA1
workspace_layout tabbed
new_window 1pixel
hide_edge_borders both
default_orientation horizontal
force_focus_wrapping true
focus_follows_mouse no
ipc-socket /tmp/i3.sock
for_window [class="urxvt" instance="irssi"] move to workspace 3
assign [class="Firefox"] → 4
exec --no-startup-id nm-applet
exec_always setxkbmap -layout de
client.focused #4c7899 #285577 #ffffff #2e9ef4
mode "resize" {
	bindsym h resize shrink width
	bindsym j resize grow height
}
`
	cfg, _, ctx := parseConfig(t, input)
	assert.False(t, ctx.HasErrors)

	expected := &Config{
		Font:             "-misc-fixed-medium-r-normal--13-120-75-75-C-70-iso10646-1",
		FloatingModifier: "Mod4",
		IPCSocket:        "/tmp/i3.sock",
		Bindings: []Binding{
			{Bindtype: "bindsym", Combo: "Mod4+Return", Command: "exec urxvt"},
			{Bindtype: "bindcode", Release: true, Combo: "214", Command: "exec --no-startup-id xlock"},
		},
		Modes: map[string][]Binding{
			"resize": {
				{Bindtype: "bindsym", Combo: "h", Command: "resize shrink width"},
				{Bindtype: "bindsym", Combo: "j", Command: "resize grow height"},
			},
		},
		Workspaces: []WorkspaceAssignment{{Number: 2, Output: "VGA1"}},
		Assigns: []Assignment{
			{Criteria: []Criterion{{Type: "class", Value: "Firefox"}}, Workspace: "4"},
		},
		ForWindows: []ForWindow{
			{
				Criteria: []Criterion{
					{Type: "class", Value: "urxvt"},
					{Type: "instance", Value: "irssi"},
				},
				Command: "move to workspace 3",
			},
		},
		Execs: []Exec{
			{Command: "nm-applet", NoStartupID: true},
			{Command: "setxkbmap -layout de", Always: true},
		},
		Colors: map[string]ColorSpec{
			"client.focused": {
				Border:     "#4c7899",
				Background: "#285577",
				Text:       "#ffffff",
				Indicator:  "#2e9ef4",
			},
		},
		Options: map[string]string{
			"workspace_layout":     "tabbed",
			"new_window":           "1pixel",
			"hide_edge_borders":    "both",
			"default_orientation":  "horizontal",
			"force_focus_wrapping": "true",
			"focus_follows_mouse":  "no",
		},
	}

	if diff := cmp.Diff(expected, cfg); diff != "" {
		t.Errorf("config mismatch (-expected +got):\n%s", diff)
	}
}

func TestWorkspaceWithoutOutput(t *testing.T) {
	cfg, _, ctx := parseConfig(t, "workspace 7\n")
	assert.False(t, ctx.HasErrors)
	require.Len(t, cfg.Workspaces, 1)
	assert.Equal(t, WorkspaceAssignment{Number: 7}, cfg.Workspaces[0])
}

func TestColorWithoutIndicator(t *testing.T) {
	cfg, _, _ := parseConfig(t, "client.urgent #2f343a #900000 #ffffff\n")
	require.Contains(t, cfg.Colors, "client.urgent")
	assert.Equal(t, "", cfg.Colors["client.urgent"].Indicator)
}

func TestCriteriaResetBetweenDirectives(t *testing.T) {
	input := `for_window [class="a"] border none
assign [instance="b"] → 2
`
	cfg, _, ctx := parseConfig(t, input)
	assert.False(t, ctx.HasErrors)
	require.Len(t, cfg.ForWindows, 1)
	require.Len(t, cfg.Assigns, 1)
	assert.Equal(t, []Criterion{{Type: "class", Value: "a"}}, cfg.ForWindows[0].Criteria)
	assert.Equal(t, []Criterion{{Type: "instance", Value: "b"}}, cfg.Assigns[0].Criteria)
}

func TestRecoveryInsideModeBlock(t *testing.T) {
	input := `mode "launch" {
	bogus line
	bindsym a exec st
}
bindsym b exec st
`
	cfg, results, ctx := parseConfig(t, input)
	assert.True(t, ctx.HasErrors)

	errors := 0
	for _, r := range results {
		if r.ParseError {
			errors++
		}
	}
	assert.Equal(t, 1, errors)

	// The broken line does not knock the parser out of the mode block.
	require.Len(t, cfg.Modes["launch"], 1)
	assert.Equal(t, "a", cfg.Modes["launch"][0].Combo)
	require.Len(t, cfg.Bindings, 1)
	assert.Equal(t, "b", cfg.Bindings[0].Combo)
}

func TestCommentsAndSetLinesIgnored(t *testing.T) {
	input := `# a comment
set $mod Mod4
bindsym q exec qutebrowser
`
	cfg, _, ctx := parseConfig(t, input)
	assert.False(t, ctx.HasErrors)
	require.Len(t, cfg.Bindings, 1)
}

func TestQuotedCriterionValue(t *testing.T) {
	cfg, _, _ := parseConfig(t, `for_window [title="hello \"world\""] floating enable`+"\n")
	require.Len(t, cfg.ForWindows, 1)
	assert.Equal(t, `hello "world"`, cfg.ForWindows[0].Criteria[0].Value)
}
