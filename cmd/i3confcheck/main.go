/*
i3confcheck validates an i3-style configuration file. It runs the full
parsing pipeline (variable substitution, version detection, parsing, the
duplicate-binding check) and prints every error with its source context. For
unknown top-level directives it suggests the closest known one.
*/
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gigawhitlocks/i3-hacking/config"
	"github.com/gigawhitlocks/i3-hacking/grammar"
	"github.com/gigawhitlocks/i3-hacking/logger"
	"github.com/gigawhitlocks/i3-hacking/parser"
)

var (
	logLevel string
	logFile  string
	dumpJson bool
)

func main() {
	cmd := &cobra.Command{
		Use:           "i3confcheck [flags] <file>",
		Short:         "validate an i3-style configuration file",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0])
		},
	}
	cmd.Flags().StringVarP(&logLevel, "level", "l", "error", "log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&logFile, "log-file", "", "also write logs to this file")
	cmd.Flags().BoolVarP(&dumpJson, "json", "j", false, "print the parsed configuration as JSON")

	if e := cmd.Execute(); e != nil {
		fmt.Fprintln(os.Stderr, e.Error())
		os.Exit(1)
	}
}

func run(path string) error {
	lcfg := logger.DefaultConfig()
	lcfg.Level = logLevel
	lcfg.FileName = logFile
	log, e := logger.New(lcfg)
	if e != nil {
		return e
	}
	defer log.Sync()

	ctx := &parser.Context{FileName: path}
	cfg, _, e := config.ParseFile(path, ctx, log)
	if e != nil {
		return e
	}

	if ctx.HasErrors {
		suggestDirectives(path, log)
		return fmt.Errorf("%s contains errors", path)
	}

	if dumpJson {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if e = enc.Encode(cfg); e != nil {
			return e
		}
	}

	fmt.Printf("%s is valid\n", path)
	return nil
}

var directiveRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z_.-]+$`)

// topLevelDirectives lists the keywords accepted at the top level, taken from
// the grammar's start state.
func topLevelDirectives() []string {
	g, e := config.Grammar()
	if e != nil {
		return nil
	}
	var names []string
	for _, t := range g.States[grammar.Initial].Tokens {
		if t.Kind == grammar.LiteralToken && directiveRe.MatchString(t.Text) {
			names = append(names, t.Text)
		}
	}
	sort.Strings(names)
	return names
}

// suggestDirectives re-scans the file and prints a "did you mean" hint for
// every line whose first word is not a known top-level directive. A rough
// heuristic, but good enough to point at typos like "bindsim".
func suggestDirectives(path string, log *zap.SugaredLogger) {
	buf, e := os.ReadFile(path)
	if e != nil {
		return
	}
	known := topLevelDirectives()
	if len(known) == 0 {
		return
	}

	for n, line := range strings.Split(string(buf), "\n") {
		word, _, _ := strings.Cut(strings.TrimLeft(line, " \t"), " ")
		word = strings.TrimRight(word, "\r")
		if !directiveRe.MatchString(word) || word == "set" || word == "mode" {
			continue
		}
		lower := strings.ToLower(word)
		match := false
		for _, name := range known {
			if name == lower {
				match = true
				break
			}
		}
		if match {
			continue
		}
		ranks := fuzzy.RankFindFold(word, known)
		if len(ranks) == 0 {
			continue
		}
		sort.Sort(ranks)
		log.Warnf("line %d: unknown directive %q, did you mean %q?", n+1, word, ranks[0].Target)
	}
}
