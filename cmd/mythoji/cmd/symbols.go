package cmd

import (
	"fmt"

	"github.com/KirkDiggler/mythoji"
	"github.com/spf13/cobra"
)

var symbolsCmd = &cobra.Command{
	Use:   "symbols",
	Short: "List symbol glyphs",
	RunE:  runSymbols,
}

func runSymbols(cmd *cobra.Command, args []string) error {
	for _, s := range mythoji.Symbols() {
		fmt.Printf("%-22s %s\n", string(s), s)
	}
	return nil
}
