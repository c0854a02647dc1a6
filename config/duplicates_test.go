package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gigawhitlocks/i3-hacking/parser"
)

func checkDuplicates(cfg *Config) bool {
	ctx := &parser.Context{}
	CheckDuplicateBindings(cfg, ctx, nopLog())
	return ctx.HasErrors
}

func TestDuplicateBindings(t *testing.T) {
	cfg := newConfig()
	cfg.Bindings = []Binding{
		{Bindtype: "bindsym", Combo: "Mod4+x", Command: "exec st"},
		{Bindtype: "bindsym", Combo: "mod4+X", Command: "exec urxvt"},
	}
	assert.True(t, checkDuplicates(cfg))
}

func TestDistinctBindings(t *testing.T) {
	cfg := newConfig()
	cfg.Bindings = []Binding{
		{Bindtype: "bindsym", Combo: "Mod4+x", Command: "exec st"},
		{Bindtype: "bindsym", Combo: "Mod4+y", Command: "exec st"},
	}
	assert.False(t, checkDuplicates(cfg))
}

func TestReleaseFlagDistinguishesBindings(t *testing.T) {
	cfg := newConfig()
	cfg.Bindings = []Binding{
		{Bindtype: "bindsym", Combo: "Mod4+x", Command: "exec st"},
		{Bindtype: "bindsym", Release: true, Combo: "Mod4+x", Command: "exec st"},
	}
	assert.False(t, checkDuplicates(cfg))
}

func TestBindtypeDistinguishesBindings(t *testing.T) {
	cfg := newConfig()
	cfg.Bindings = []Binding{
		{Bindtype: "bindsym", Combo: "214", Command: "exec st"},
		{Bindtype: "bindcode", Combo: "214", Command: "exec st"},
	}
	assert.False(t, checkDuplicates(cfg))
}

func TestDuplicatesScopedPerMode(t *testing.T) {
	cfg := newConfig()
	cfg.Bindings = []Binding{{Bindtype: "bindsym", Combo: "h", Command: "focus left"}}
	cfg.Modes["resize"] = []Binding{{Bindtype: "bindsym", Combo: "h", Command: "resize shrink width"}}
	assert.False(t, checkDuplicates(cfg))

	cfg.Modes["resize"] = append(cfg.Modes["resize"],
		Binding{Bindtype: "bindsym", Combo: "h", Command: "resize grow width"})
	assert.True(t, checkDuplicates(cfg))
}
