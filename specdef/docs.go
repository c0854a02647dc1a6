/*
Package specdef converts a textual parser-spec to a grammar.Grammar table.

The parser-spec language is line-oriented. A spec is a sequence of state
blocks; the first block must define the INITIAL state:
*/
//  # comment
//  state INITIAL:
//    end ->
//    error ->
//    '#' -> IGNORE_LINE
//    'mode' -> MODENAME
//    workspace = 'workspace' -> WORKSPACE
//
//  state WORKSPACE:
//    ws = number -> WORKSPACE_OUTPUT
//
//  state WORKSPACE_OUTPUT:
//    output = word -> call cfg_workspace
/*
A state block starts with "state NAME:" and holds one token descriptor per
line. A descriptor is

	[identifier =] token {, token} -> [target]

where token is either a single-quoted literal (matched case-insensitively by
the parser) or one of the kind names: number, word, string, line, end, error.
Comma-separated tokens produce one descriptor each, all sharing the same
identifier and target, in declaration order.

The target is a state name, or empty (meaning INITIAL), or a handler call:

	-> call handler_name
	-> call handler_name; STATE

The optional "; STATE" form seeds the result's next state before the handler
runs; the handler may overwrite it. With the short form the seed is INITIAL.

State names may be referenced before their blocks are defined. Every
referenced state must be defined exactly once, every defined state must be
reachable, and the INITIAL state must declare an error descriptor so that
error recovery always finds an anchor.

A state entered only through handler-returned next states has no static
incoming transition; declare it with the !dynamic directive to exempt it from
the reachability check:

	!dynamic FOR_WINDOW_COMMAND, ASSIGN_WORKSPACE

Comments start with # and extend to the end of the line. Blank lines are
ignored.
*/
package specdef
