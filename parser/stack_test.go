package parser

import (
	"testing"

	"github.com/gigawhitlocks/i3-hacking/internal/test"
)

func TestCapturesAccumulate(t *testing.T) {
	var c Captures
	c.PushString("mods", "Mod1")
	c.PushString("mods", "Shift")
	c.PushString("key", "Return")
	test.Expect(t, c.String("mods") == "Mod1,Shift", "Mod1,Shift", c.String("mods"))
	test.Expect(t, c.String("key") == "Return", "Return", c.String("key"))
}

func TestCapturesDefaults(t *testing.T) {
	var c Captures
	test.Expect(t, c.String("missing") == "", "", c.String("missing"))
	test.ExpectInt(t, 0, int(c.Number("missing")))
}

func TestCapturesClear(t *testing.T) {
	var c Captures
	c.PushString("a", "x")
	c.PushNumber("n", 42)
	c.Clear()
	test.Expect(t, c.String("a") == "", "", c.String("a"))
	test.ExpectInt(t, 0, int(c.Number("n")))

	// A cleared stack is fully reusable.
	c.PushString("a", "y")
	test.Expect(t, c.String("a") == "y", "y", c.String("a"))
}

func TestCapturesOverflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expecting a panic")
		}
	}()
	var c Captures
	for i := 0; i <= stackSize; i++ {
		c.PushNumber("n", int64(i))
	}
}
