package cmd

import (
	"fmt"

	"github.com/KirkDiggler/mythoji"
	"github.com/spf13/cobra"
)

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "List item glyphs",
	RunE:  runItems,
}

func runItems(cmd *cobra.Command, args []string) error {
	for _, i := range mythoji.Items() {
		fmt.Printf("%-18s %s\n", string(i), i)
	}
	return nil
}
