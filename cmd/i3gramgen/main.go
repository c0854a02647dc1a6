/*
i3gramgen translates a configuration parser spec to a Go or JSON file.
Usage is

	i3gramgen ([-j] | [-p <name>] [-v <name>]) [-o <name>] <file>

-j instructs i3gramgen to output a JSON file instead of Go source;

-o <name> defines the output file name, default is the name of the input file
with a .go or .json suffix;

-p <name> defines the Go package name, default is the directory name of the
output file;

-v <name> defines the generated Go variable name of type *grammar.Grammar,
default is derived from the input file name;

<file> defines a spec file parsable by specdef.Parse().
*/
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gigawhitlocks/i3-hacking/grammar"
	"github.com/gigawhitlocks/i3-hacking/specdef"
)

var (
	generateJson                      bool
	outFileName, packageName, varName string
)

func main() {
	cmd := &cobra.Command{
		Use:           "i3gramgen ([-j] | [-p <name>] [-v <name>]) [-o <name>] <file>",
		Short:         "translate a configuration parser spec to a Go or JSON file",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0])
		},
	}
	cmd.Flags().BoolVarP(&generateJson, "json", "j", false, "output JSON instead of Go")
	cmd.Flags().StringVarP(&outFileName, "out", "o", "", "output file name, default is the name of input file with .go or .json suffix")
	cmd.Flags().StringVarP(&packageName, "package", "p", "", "Go package name, default is dir name of output file")
	cmd.Flags().StringVarP(&varName, "var", "v", "", "Go variable name, default is derived from the input file name")

	if e := cmd.Execute(); e != nil {
		fmt.Println(e.Error())
		os.Exit(3)
	}
}

func run(inFileName string) error {
	if outFileName == "" {
		ext := filepath.Ext(inFileName)
		outFileName = inFileName[:len(inFileName)-len(ext)]
		if generateJson {
			outFileName += ".json"
		} else {
			outFileName += ".go"
		}
	}

	var gr *grammar.Grammar
	src, e := os.ReadFile(inFileName)
	if e == nil {
		gr, e = specdef.ParseBytes(inFileName, src)
	}
	var content []byte
	if e == nil {
		if generateJson {
			content, e = makeJson(gr)
		} else {
			content, e = makeGo(gr, inFileName)
		}
	}
	if e == nil {
		e = os.WriteFile(outFileName, content, 0o666)
	}
	return e
}

func makeJson(gr *grammar.Grammar) ([]byte, error) {
	return json.MarshalIndent(gr, "", "  ")
}

var kindConsts = [...]string{
	grammar.LiteralToken: "LiteralToken",
	grammar.NumberToken:  "NumberToken",
	grammar.WordToken:    "WordToken",
	grammar.StringToken:  "StringToken",
	grammar.LineToken:    "LineToken",
	grammar.EndToken:     "EndToken",
	grammar.ErrorToken:   "ErrorToken",
}

func makeGo(gr *grammar.Grammar, inFileName string) ([]byte, error) {
	if packageName == "" {
		dir, e := filepath.Abs(outFileName)
		if e != nil {
			return nil, e
		}

		dir, _ = filepath.Split(dir)
		_, packageName = filepath.Split(dir[:len(dir)-1])
	}
	if varName == "" {
		base := filepath.Base(inFileName)
		base = base[:len(base)-len(filepath.Ext(base))]
		varName = strings.Map(func(r rune) rune {
			if r == '-' || r == '.' {
				return '_'
			}
			return r
		}, base) + "Grammar"
	}

	re := regexp.MustCompile("^[A-Za-z_][A-Za-z_0-9]*$")
	if !re.MatchString(packageName) {
		return nil, fmt.Errorf("invalid package name: %s", packageName)
	}
	if !re.MatchString(varName) {
		return nil, fmt.Errorf("invalid variable name: %s", varName)
	}

	var buffer bytes.Buffer

	buffer.WriteString("// Code generated with i3gramgen.\n\n" +
		"package " + packageName + "\n\n" +
		"import \"github.com/gigawhitlocks/i3-hacking/grammar\"\n\n" +
		"var " + varName + " = &grammar.Grammar{\n")

	buffer.WriteString("\tStates: []grammar.State{\n")
	for i, st := range gr.States {
		buffer.WriteString(fmt.Sprintf("\t\t{Name: %q, Tokens: []grammar.Token{ // %d\n", st.Name, i))
		for _, t := range st.Tokens {
			buffer.WriteString("\t\t\t{Kind: grammar." + kindConsts[t.Kind])
			if t.Text != "" {
				buffer.WriteString(fmt.Sprintf(", Text: %q", t.Text))
			}
			if t.Identifier != "" {
				buffer.WriteString(fmt.Sprintf(", Identifier: %q", t.Identifier))
			}
			if t.Next == grammar.Call {
				buffer.WriteString(fmt.Sprintf(", Next: grammar.Call, Handler: %d, CallNext: %d", t.Handler, t.CallNext))
			} else if t.Next != grammar.Initial {
				buffer.WriteString(fmt.Sprintf(", Next: %d", t.Next))
			}
			buffer.WriteString("},\n")
		}
		buffer.WriteString("\t\t}},\n")
	}
	buffer.WriteString("\t},\n")

	buffer.WriteString("\tHandlers: []string{")
	for i, h := range gr.Handlers {
		if i > 0 {
			buffer.WriteString(", ")
		}
		buffer.WriteString(fmt.Sprintf("%q", h))
	}
	buffer.WriteString("},\n}\n")

	return buffer.Bytes(), nil
}
