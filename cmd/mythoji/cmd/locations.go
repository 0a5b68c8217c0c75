package cmd

import (
	"fmt"

	"github.com/KirkDiggler/mythoji"
	"github.com/spf13/cobra"
)

var locationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "List location glyphs",
	RunE:  runLocations,
}

func runLocations(cmd *cobra.Command, args []string) error {
	for _, l := range mythoji.Locations() {
		fmt.Printf("%-18s %s\n", string(l), l)
	}
	return nil
}
