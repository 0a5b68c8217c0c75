package mythoji

// Person is a fantasy person archetype. Person is the only family that
// accepts modifiers: both the skin-tone and gender axes apply.
type Person string

const (
	// PersonAdult is a generic person, e.g. "🧑"
	PersonAdult Person = "adult"

	// PersonArtist is an artist, e.g. "🧑‍🎨"
	PersonArtist Person = "artist"

	// PersonBaby is a baby, e.g. "👶"
	PersonBaby Person = "baby"

	// PersonBald is a bald person, e.g. "🧑‍🦲"
	PersonBald Person = "bald"

	// PersonBearded is a person with a beard, e.g. "🧔"
	PersonBearded Person = "bearded"

	// PersonChild is a child, e.g. "🧒"
	PersonChild Person = "child"

	// PersonElder is an old person, e.g. "🧓"
	PersonElder Person = "elder"

	// PersonElf is an elf, e.g. "🧝"
	PersonElf Person = "elf"

	// PersonFairy is a fairy, e.g. "🧚"
	PersonFairy Person = "fairy"

	// PersonGenie is a genie, e.g. "🧞"
	PersonGenie Person = "genie"

	// PersonHeadscarf is a person with a headscarf, e.g. "🧕"
	PersonHeadscarf Person = "headscarf"

	// PersonMage is a mage, e.g. "🧙"
	PersonMage Person = "mage"

	// PersonMerfolk is a merfolk, e.g. "🧜"
	PersonMerfolk Person = "merfolk"

	// PersonRoyalty is a person of royalty, e.g. "🤴"
	PersonRoyalty Person = "royalty"

	// PersonSkullCap is a person with a skull cap, e.g. "👲"
	PersonSkullCap Person = "skull_cap"

	// PersonTurban is a person with a turban, e.g. "👳"
	PersonTurban Person = "turban"

	// PersonVampire is a vampire, e.g. "🧛"
	PersonVampire Person = "vampire"

	// PersonZombie is a zombie, e.g. "🧟"
	PersonZombie Person = "zombie"
)

// Persons returns every person archetype in the closed set.
func Persons() []Person {
	return []Person{
		PersonAdult,
		PersonArtist,
		PersonBaby,
		PersonBald,
		PersonBearded,
		PersonChild,
		PersonElder,
		PersonElf,
		PersonFairy,
		PersonGenie,
		PersonHeadscarf,
		PersonMage,
		PersonMerfolk,
		PersonRoyalty,
		PersonSkullCap,
		PersonTurban,
		PersonVampire,
		PersonZombie,
	}
}

// ParsePerson returns the person archetype named s.
func ParsePerson(s string) (Person, error) {
	p := Person(s)
	if !p.IsValid() {
		return "", newError(CodeInvalidArgument, "unknown person %q", s)
	}
	return p, nil
}

// Glyph returns the base glyph for the archetype.
func (p Person) Glyph() Glyph {
	switch p {
	case PersonAdult:
		return "🧑"
	case PersonArtist:
		return "🧑‍🎨"
	case PersonBaby:
		return "👶"
	case PersonBald:
		return "🧑‍🦲"
	case PersonBearded:
		return "🧔"
	case PersonChild:
		return "🧒"
	case PersonElder:
		return "🧓"
	case PersonElf:
		return "🧝"
	case PersonFairy:
		return "🧚"
	case PersonGenie:
		return "🧞"
	case PersonHeadscarf:
		return "🧕"
	case PersonMage:
		return "🧙"
	case PersonMerfolk:
		return "🧜"
	case PersonRoyalty:
		return "🤴"
	case PersonSkullCap:
		return "👲"
	case PersonTurban:
		return "👳"
	case PersonVampire:
		return "🧛"
	case PersonZombie:
		return "🧟"
	default:
		return ""
	}
}

// String returns the rendered glyph, or the raw value if the archetype is
// not in the closed set.
func (p Person) String() string {
	if g := p.Glyph(); g != "" {
		return string(g)
	}
	return string(p)
}

// IsValid checks if the person archetype is valid
func (p Person) IsValid() bool {
	return p.Glyph() != ""
}

func (p Person) supportsAxis(a Axis) bool {
	return a == AxisSkinTone || a == AxisGender
}
