package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectVersion(t *testing.T) {
	samples := []struct {
		input   string
		version int
	}{
		{"# i3 config file (v4)\n", 4},
		{"bindcode 214 exec st\n", 4},
		{"workspace_layout tabbed\n", 4},
		{"force_focus_wrapping true\n", 4},
		{"bindsym Mod1+f focus left\n", 4},
		{"bindsym x border normal\n", 4},
		{"bind Mod1+f exec st\nbindsym y workspace 2\n", 4},
		{"bind Mod1+f f\n", 3},
		{"bind Mod1+f exec st\n", 3},
		{"font -misc-fixed\nfloating_modifier Mod1\n", 3},
		{"", 3},
		// An unterminated last line is not examined.
		{"bindcode 214 exec st", 3},
	}
	for _, s := range samples {
		assert.Equal(t, s.version, DetectVersion([]byte(s.input), nopLog()), "input %q", s.input)
	}
}
