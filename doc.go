// Package mythoji maps fantasy-themed concepts to display glyphs (emoji),
// so a text-based game can render an elf, a castle, or a crossed pair of
// swords without maintaining its own character tables.
//
// Every concept belongs to one of five closed families: Person, Creature,
// Location, Item, and Symbol. Each value renders to a fixed glyph:
//
//	fmt.Println(mythoji.LocationCastle) // 🏰
//
// Person archetypes additionally accept skin-tone and gender modifiers,
// composed into a single emoji sequence by Resolve:
//
//	glyph, err := mythoji.Resolve(mythoji.PersonElf, mythoji.GenderFemale)
//	// glyph == "🧝‍♀️"
//
// Resolution is a pure function over compile-time constants. It allocates
// nothing beyond the returned glyph and is safe for concurrent use.
//
// Not every terminal or font renders every composed sequence; callers that
// care should probe their output target and fall back to a plainer glyph
// when a combination does not display.
package mythoji
