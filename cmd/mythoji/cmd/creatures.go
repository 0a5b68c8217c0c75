package cmd

import (
	"fmt"

	"github.com/KirkDiggler/mythoji"
	"github.com/spf13/cobra"
)

var creaturesCmd = &cobra.Command{
	Use:   "creatures",
	Short: "List creature glyphs",
	RunE:  runCreatures,
}

func runCreatures(cmd *cobra.Command, args []string) error {
	for _, c := range mythoji.Creatures() {
		fmt.Printf("%-16s %s\n", string(c), c)
	}
	return nil
}
