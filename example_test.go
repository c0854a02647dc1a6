package i3config_test

import (
	"fmt"

	"github.com/gigawhitlocks/i3-hacking/config"
	"github.com/gigawhitlocks/i3-hacking/parser"
)

func Example() {
	input := []byte("bindsym Mod1+Return exec /usr/bin/urxvt\n" +
		"floating_modifier Mod1\n" +
		"workspace 3 output DP-1\n")

	ctx := &parser.Context{FileName: "example.cfg"}
	cfg, _, e := config.Parse(input, ctx, nil)
	if e != nil {
		fmt.Println(e)
		return
	}

	fmt.Println(cfg.Bindings[0].Combo, "->", cfg.Bindings[0].Command)
	fmt.Println("floating modifier:", cfg.FloatingModifier)
	fmt.Printf("workspace %d on %s\n", cfg.Workspaces[0].Number, cfg.Workspaces[0].Output)
	// Output:
	// Mod1+Return -> exec /usr/bin/urxvt
	// floating modifier: Mod1
	// workspace 3 on DP-1
}
