package config

import (
	"os"

	"go.uber.org/zap"

	i3config "github.com/gigawhitlocks/i3-hacking"
	"github.com/gigawhitlocks/i3-hacking/parser"
)

const (
	ReadFileError = i3config.ConfigErrors + iota
)

func readFileError(path string, e error) *i3config.Error {
	return i3config.FormatError(ReadFileError, "cannot read configuration file %s: %s", path, e)
}

// ParseFile runs the full pipeline on one configuration file: variable
// substitution, version detection, parsing, and the duplicate-binding check.
// If ctx.FileName is empty it is set to the file path. Parse errors are
// reported through the result sequence and ctx.HasErrors; the returned error
// covers I/O and grammar failures only.
func ParseFile(path string, ctx *parser.Context, log *zap.SugaredLogger) (*Config, []parser.Result, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	buf, e := os.ReadFile(path)
	if e != nil {
		return nil, nil, readFileError(path, e)
	}
	if ctx.FileName == "" {
		ctx.FileName = path
	}

	buf = Substitute(buf, log)

	if DetectVersion(buf, log) == 3 {
		log.Warnf("%s looks like a v3 configuration file, please convert it to the v4 format", path)
	}

	cfg, results, e := Parse(buf, ctx, log)
	if e != nil {
		return nil, nil, e
	}

	CheckDuplicateBindings(cfg, ctx, log)
	return cfg, results, nil
}
