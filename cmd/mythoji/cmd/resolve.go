package cmd

import (
	"fmt"

	"github.com/KirkDiggler/mythoji"
	"github.com/spf13/cobra"
)

var (
	resolveTone   string
	resolveGender string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <family> <name>",
	Short: "Resolve a category and optional modifiers to a glyph",
	Args:  cobra.ExactArgs(2),
	RunE:  runResolve,
	Example: `  mythoji resolve location castle
  mythoji resolve person elf --tone medium_light --gender female`,
}

func init() {
	resolveCmd.Flags().StringVar(&resolveTone, "tone", "", "skin tone (person family only)")
	resolveCmd.Flags().StringVar(&resolveGender, "gender", "", "gender (person family only)")
}

func runResolve(cmd *cobra.Command, args []string) error {
	cat, err := parseCategory(args[0], args[1])
	if err != nil {
		return err
	}

	var mods []mythoji.Modifier
	if resolveTone != "" {
		tone, err := mythoji.ParseSkinTone(resolveTone)
		if err != nil {
			return err
		}
		mods = append(mods, tone)
	}
	if resolveGender != "" {
		gender, err := mythoji.ParseGender(resolveGender)
		if err != nil {
			return err
		}
		mods = append(mods, gender)
	}

	glyph, err := mythoji.Resolve(cat, mods...)
	if err != nil {
		return err
	}

	fmt.Println(glyph)
	return nil
}

func parseCategory(family, name string) (mythoji.Category, error) {
	switch family {
	case "person":
		p, err := mythoji.ParsePerson(name)
		return p, err
	case "creature":
		c, err := mythoji.ParseCreature(name)
		return c, err
	case "location":
		l, err := mythoji.ParseLocation(name)
		return l, err
	case "item":
		i, err := mythoji.ParseItem(name)
		return i, err
	case "symbol":
		s, err := mythoji.ParseSymbol(name)
		return s, err
	default:
		return nil, fmt.Errorf("unknown family %q (want person, creature, location, item, or symbol)", family)
	}
}
