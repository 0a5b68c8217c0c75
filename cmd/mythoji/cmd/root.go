package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "mythoji",
	Short:        "mythoji — fantasy glyph preview",
	Long:         "Prints the fantasy glyph tables and resolves category/modifier combinations, mirroring what the library produces in-game.",
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(peopleCmd)
	rootCmd.AddCommand(creaturesCmd)
	rootCmd.AddCommand(locationsCmd)
	rootCmd.AddCommand(itemsCmd)
	rootCmd.AddCommand(symbolsCmd)
	rootCmd.AddCommand(resolveCmd)
}
