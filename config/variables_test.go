package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstitute(t *testing.T) {
	input := "set $mod Mod4\nbindsym $mod+Return exec urxvt\n"
	out := string(Substitute([]byte(input), nopLog()))
	assert.Contains(t, out, "bindsym Mod4+Return exec urxvt")
}

func TestSubstituteCaseInsensitive(t *testing.T) {
	input := "set $Mod Mod4\nbindsym $MOD+x exec st\n"
	out := string(Substitute([]byte(input), nopLog()))
	assert.Contains(t, out, "bindsym Mod4+x exec st")
}

func TestSubstituteLaterDefinitionWinsTies(t *testing.T) {
	input := "set $m XX\nset $mod Mod4\nbindsym $mod+x exec st\n"
	out := string(Substitute([]byte(input), nopLog()))
	assert.Contains(t, out, "bindsym Mod4+x exec st")
}

func TestSubstituteIndentedSetLine(t *testing.T) {
	input := "  \tset $term urxvt\nbindsym x exec $term\n"
	out := string(Substitute([]byte(input), nopLog()))
	assert.Contains(t, out, "exec urxvt")
}

func TestSubstituteMalformed(t *testing.T) {
	samples := []string{
		"set mod Mod4\nbindsym mod+x exec st\n",
		"set $lonely\nbindsym x exec st\n",
	}
	for _, input := range samples {
		out := string(Substitute([]byte(input), nopLog()))
		assert.Equal(t, input, out)
	}
}

func TestSubstituteNoVariables(t *testing.T) {
	input := "bindsym x exec st\n"
	assert.Equal(t, input, string(Substitute([]byte(input), nopLog())))
}
