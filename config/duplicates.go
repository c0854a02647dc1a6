package config

import (
	"strings"

	"go.uber.org/zap"

	"github.com/gigawhitlocks/i3-hacking/parser"
)

func duplicateBindings(binds []Binding, ctx *parser.Context, log *zap.SugaredLogger) {
	for i, current := range binds {
		// Only check the bindings before the current one.
		for _, bind := range binds[:i] {
			// bindsym and bindcode never collide here, the keysym
			// to keycode translation happens later.
			if bind.Bindtype != current.Bindtype {
				continue
			}
			if !strings.EqualFold(bind.Combo, current.Combo) || bind.Release != current.Release {
				continue
			}

			ctx.HasErrors = true
			log.Errorf("Duplicate keybinding in config file:\n  %s %s, command %q",
				current.Bindtype, current.Combo, current.Command)
		}
	}
}

// CheckDuplicateBindings checks for duplicate key bindings, the same combo
// configured more than once with the same bindtype and release flag. Each
// mode has its own key space. Duplicates are reported to the log and flagged
// in ctx.HasErrors.
func CheckDuplicateBindings(cfg *Config, ctx *parser.Context, log *zap.SugaredLogger) {
	duplicateBindings(cfg.Bindings, ctx, log)
	for _, binds := range cfg.Modes {
		duplicateBindings(binds, ctx, log)
	}
}
