package parser

import (
	"fmt"
	"os"
)

// stackSize is the capture stack capacity. Exceeding it means the grammar
// spec names more than stackSize identified tokens in one directive, which is
// a spec bug, not an input error.
const stackSize = 10

type captureEntry struct {
	identifier string
	isNumber   bool
	str        string
	num        int64
}

// Captures is the small stack where identified literals are stored during the
// parsing of a single directive. Values live until Clear, which the parser
// calls at every directive boundary; handlers must not retain references to
// them beyond their own return.
type Captures struct {
	entries [stackSize]captureEntry
	used    int
}

// PushString stores s under identifier. If the identifier is already present
// the previous value is kept and s is appended after a comma; criteria-like
// handlers rely on this directive-scoped accumulation.
func (c *Captures) PushString(identifier, s string) {
	for i := 0; i < c.used; i++ {
		if c.entries[i].identifier == identifier {
			c.entries[i].str += "," + s
			return
		}
	}
	if c.used == stackSize {
		c.bug()
	}
	c.entries[c.used] = captureEntry{identifier: identifier, str: s}
	c.used++
}

// PushNumber stores n in a fresh slot. Numbers never accumulate; pushing the
// same identifier twice within one directive is a grammar bug.
func (c *Captures) PushNumber(identifier string, n int64) {
	if c.used == stackSize {
		c.bug()
	}
	c.entries[c.used] = captureEntry{identifier: identifier, isNumber: true, num: n}
	c.used++
}

// String returns the string stored under identifier, or "" if absent.
func (c *Captures) String(identifier string) string {
	for i := 0; i < c.used; i++ {
		if c.entries[i].identifier == identifier {
			return c.entries[i].str
		}
	}
	return ""
}

// Number returns the number stored under identifier, or 0 if absent.
func (c *Captures) Number(identifier string) int64 {
	for i := 0; i < c.used; i++ {
		if c.entries[i].identifier == identifier {
			return c.entries[i].num
		}
	}
	return 0
}

// Clear releases all slots.
func (c *Captures) Clear() {
	for i := 0; i < c.used; i++ {
		c.entries[i] = captureEntry{}
	}
	c.used = 0
}

func (c *Captures) bug() {
	fmt.Fprintln(os.Stderr, "BUG: parser capture stack full. This means either a bug "+
		"in the code, or a directive which contains more than 10 identified tokens.")
	panic("capture stack overflow")
}
