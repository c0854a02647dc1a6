package config

import (
	"strings"

	"go.uber.org/zap"
)

// Statements that cannot occur in a v3 configuration file.
var v4Statements = []string{
	"bindcode",
	"force_focus_wrapping",
	"# i3 config file (v4)",
	"workspace_layout",
}

// Bound commands that cannot occur in a v3 configuration file.
var v4Commands = []string{
	"layout",
	"floating",
	"workspace",
	"focus left",
	"focus right",
	"focus up",
	"focus down",
	"border normal",
	"border 1pixel",
	"border pixel",
	"border borderless",
	"--no-startup-id",
	"bar",
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// DetectVersion goes through each line of the buffer and checks for
// statements and commands which only occur in v4 configuration files. If it
// finds any it returns 4, otherwise 3. Only lines terminated by a newline are
// considered.
func DetectVersion(input []byte, log *zap.SugaredLogger) int {
	s := string(input)
	for {
		nl := strings.IndexByte(s, '\n')
		if nl < 0 {
			return 3
		}
		line := s[:nl]
		s = s[nl+1:]

		for _, stmt := range v4Statements {
			if hasPrefixFold(line, stmt) {
				log.Debugf("deciding for version 4 due to this line: %s", line)
				return 4
			}
		}

		// For bind statements the command decides.
		if !hasPrefixFold(line, "bind") {
			continue
		}
		bind := line
		for i := 0; i < 2; i++ {
			sep := strings.IndexByte(bind, ' ')
			if sep < 0 {
				bind = ""
				break
			}
			bind = strings.TrimLeft(bind[sep:], " \t")
		}
		if bind == "" {
			continue
		}
		for _, cmd := range v4Commands {
			if hasPrefixFold(bind, cmd) {
				log.Debugf("deciding for version 4 due to this line: %s", line)
				return 4
			}
		}
	}
}
