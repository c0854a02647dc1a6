package config

import (
	"bytes"
	"strings"

	"go.uber.org/zap"
)

// variable is one `set $name value` assignment.
type variable struct {
	key   string
	value string
}

// collectVariables scans the buffer for `set $name value` lines. Later
// assignments are placed first so that they win when two keys match at the
// same position.
func collectVariables(input []byte, log *zap.SugaredLogger) []variable {
	var vars []variable
	for _, line := range strings.Split(string(input), "\n") {
		line = strings.TrimRight(line, "\r")
		fields := strings.TrimLeft(line, " \t")
		sep := strings.IndexAny(fields, " \t")
		if sep < 0 {
			continue
		}
		word := fields[:sep]
		if len(word) < 3 || word[0] == '#' || !strings.EqualFold(word, "set") {
			continue
		}

		rest := strings.TrimLeft(fields[sep:], " \t")
		if !strings.HasPrefix(rest, "$") {
			log.Error("Malformed variable assignment, name has to start with $")
			continue
		}
		sep = strings.IndexAny(rest, " \t")
		if sep < 0 {
			log.Error("Malformed variable assignment, need a value")
			continue
		}
		v := variable{
			key:   rest[:sep],
			value: strings.TrimLeft(rest[sep+1:], " \t"),
		}
		vars = append([]variable{v}, vars...)
		log.Debugf("Got new variable %s = %s", v.key, v.value)
	}
	return vars
}

// Substitute collects the `set $name value` assignments of the buffer and
// returns a copy with every occurrence of each $name replaced by its value.
// Matching is case insensitive and picks the variable occurring earliest at
// each position. The set lines themselves stay in the buffer; the grammar
// skips them.
func Substitute(input []byte, log *zap.SugaredLogger) []byte {
	vars := collectVariables(input, log)
	if len(vars) == 0 {
		return input
	}

	lowered := strings.ToLower(string(input))
	keys := make([]string, len(vars))
	for i, v := range vars {
		keys[i] = strings.ToLower(v.key)
	}

	var out bytes.Buffer
	walk := 0
	for walk < len(input) {
		nearest := -1
		distance := len(input) + 1
		for i, key := range keys {
			m := strings.Index(lowered[walk:], key)
			if m >= 0 && m < distance {
				distance = m
				nearest = i
			}
		}
		if nearest < 0 {
			out.Write(input[walk:])
			break
		}
		out.Write(input[walk : walk+distance])
		out.WriteString(vars[nearest].value)
		walk += distance + len(vars[nearest].key)
	}
	return out.Bytes()
}
