// Command wlproxy is a transparent proxy for the Wayland display protocol.
package main

import (
	"os"

	"github.com/mahkoh/wl-proxy-sub012/cmd/wlproxy/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		commands.PrintErr("Error: %v", err)
		os.Exit(1)
	}
}
