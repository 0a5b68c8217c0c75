// mythoji previews the fantasy glyph tables from the terminal, so you can
// check what actually renders before relying on a combination in-game.
package main

import (
	"os"

	"github.com/KirkDiggler/mythoji/cmd/mythoji/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
