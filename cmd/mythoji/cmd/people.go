package cmd

import (
	"fmt"

	"github.com/KirkDiggler/mythoji"
	"github.com/spf13/cobra"
)

var peopleGrid bool

var peopleCmd = &cobra.Command{
	Use:   "people",
	Short: "List person archetypes",
	RunE:  runPeople,
}

func init() {
	peopleCmd.Flags().BoolVar(&peopleGrid, "grid", false, "print every skin tone and gender combination")
}

func runPeople(cmd *cobra.Command, args []string) error {
	for _, p := range mythoji.Persons() {
		fmt.Printf("%-12s %s\n", string(p), p)

		if !peopleGrid {
			continue
		}
		for _, tone := range mythoji.SkinTones() {
			for _, gender := range mythoji.Genders() {
				glyph, err := mythoji.Resolve(p, tone, gender)
				if err != nil {
					return err
				}
				fmt.Printf("  %-24s %s\n", fmt.Sprintf("%s + %s", tone, gender), glyph)
			}
		}
	}
	return nil
}
