package mythoji

// Creature is a living thing that is not a person archetype: beasts,
// vermin, and the occasional monster. Creatures accept no modifiers.
//
// Where the emoji set offers a choice, glyphs show the side view of the
// creature rather than its face.
type Creature string

const (
	// CreatureAnt is an ant, e.g. "🐜"
	CreatureAnt Creature = "ant"

	// CreatureBat is a bat, e.g. "🦇"
	CreatureBat Creature = "bat"

	// CreatureBeetle is a beetle, e.g. "🐞"
	CreatureBeetle Creature = "beetle"

	// CreatureBison is a bison, e.g. "🦬"
	CreatureBison Creature = "bison"

	// CreatureBoar is a boar, e.g. "🐗"
	CreatureBoar Creature = "boar"

	// CreatureBug is a bug, e.g. "🐛"
	CreatureBug Creature = "bug"

	// CreatureButterfly is a butterfly, e.g. "🦋"
	CreatureButterfly Creature = "butterfly"

	// CreatureCamel is a camel, e.g. "🐫"
	CreatureCamel Creature = "camel"

	// CreatureCat is a cat, e.g. "🐈"
	CreatureCat Creature = "cat"

	// CreatureCockroach is a cockroach, e.g. "🪳"
	CreatureCockroach Creature = "cockroach"

	// CreatureCow is a cow, e.g. "🐄"
	CreatureCow Creature = "cow"

	// CreatureCrab is a crab, e.g. "🦀"
	CreatureCrab Creature = "crab"

	// CreatureCrocodile is a crocodile, e.g. "🐊"
	CreatureCrocodile Creature = "crocodile"

	// CreatureDeer is a deer, e.g. "🦌"
	CreatureDeer Creature = "deer"

	// CreatureDog is a dog, e.g. "🐕"
	CreatureDog Creature = "dog"

	// CreatureDragon is a dragon, e.g. "🐉"
	CreatureDragon Creature = "dragon"

	// CreatureEagle is an eagle, e.g. "🦅"
	CreatureEagle Creature = "eagle"

	// CreatureElephant is an elephant, e.g. "🐘"
	CreatureElephant Creature = "elephant"

	// CreatureFish is a fish, e.g. "🐟"
	CreatureFish Creature = "fish"

	// CreatureGhost is a ghost, e.g. "👻"
	CreatureGhost Creature = "ghost"

	// CreatureGoat is a goat, e.g. "🐐"
	CreatureGoat Creature = "goat"

	// CreatureGoblin is a goblin, e.g. "👺"
	CreatureGoblin Creature = "goblin"

	// CreatureHoneybee is a honeybee, e.g. "🐝"
	CreatureHoneybee Creature = "honeybee"

	// CreatureHorse is a horse, e.g. "🐎"
	CreatureHorse Creature = "horse"

	// CreatureLeopard is a leopard, e.g. "🐆"
	CreatureLeopard Creature = "leopard"

	// CreatureLlama is a llama, e.g. "🦙"
	CreatureLlama Creature = "llama"

	// CreatureMammoth is a mammoth, e.g. "🦣"
	CreatureMammoth Creature = "mammoth"

	// CreatureMouse is a mouse, e.g. "🐁"
	CreatureMouse Creature = "mouse"

	// CreatureOgre is an ogre, e.g. "👹"
	CreatureOgre Creature = "ogre"

	// CreaturePig is a pig, e.g. "🐖"
	CreaturePig Creature = "pig"

	// CreatureRabbit is a rabbit, e.g. "🐇"
	CreatureRabbit Creature = "rabbit"

	// CreatureRam is a ram, e.g. "🐏"
	CreatureRam Creature = "ram"

	// CreatureRat is a rat, e.g. "🐀"
	CreatureRat Creature = "rat"

	// CreatureRhinoceros is a rhinoceros, e.g. "🦏"
	CreatureRhinoceros Creature = "rhinoceros"

	// CreatureScorpion is a scorpion, e.g. "🦂"
	CreatureScorpion Creature = "scorpion"

	// CreatureShark is a shark, e.g. "🦈"
	CreatureShark Creature = "shark"

	// CreatureSnake is a snake, e.g. "🐍"
	CreatureSnake Creature = "snake"

	// CreatureSpider is a spider, e.g. "🕷"
	CreatureSpider Creature = "spider"

	// CreatureTiger is a tiger, e.g. "🐅"
	CreatureTiger Creature = "tiger"

	// CreatureTropicalFish is a tropical fish, e.g. "🐠"
	CreatureTropicalFish Creature = "tropical_fish"

	// CreatureWaterBuffalo is a water buffalo, e.g. "🐃"
	CreatureWaterBuffalo Creature = "water_buffalo"

	// CreatureWolf is a wolf, e.g. "🐺"
	CreatureWolf Creature = "wolf"
)

// Creatures returns every creature in the closed set.
func Creatures() []Creature {
	return []Creature{
		CreatureAnt,
		CreatureBat,
		CreatureBeetle,
		CreatureBison,
		CreatureBoar,
		CreatureBug,
		CreatureButterfly,
		CreatureCamel,
		CreatureCat,
		CreatureCockroach,
		CreatureCow,
		CreatureCrab,
		CreatureCrocodile,
		CreatureDeer,
		CreatureDog,
		CreatureDragon,
		CreatureEagle,
		CreatureElephant,
		CreatureFish,
		CreatureGhost,
		CreatureGoat,
		CreatureGoblin,
		CreatureHoneybee,
		CreatureHorse,
		CreatureLeopard,
		CreatureLlama,
		CreatureMammoth,
		CreatureMouse,
		CreatureOgre,
		CreaturePig,
		CreatureRabbit,
		CreatureRam,
		CreatureRat,
		CreatureRhinoceros,
		CreatureScorpion,
		CreatureShark,
		CreatureSnake,
		CreatureSpider,
		CreatureTiger,
		CreatureTropicalFish,
		CreatureWaterBuffalo,
		CreatureWolf,
	}
}

// ParseCreature returns the creature named s.
func ParseCreature(s string) (Creature, error) {
	c := Creature(s)
	if !c.IsValid() {
		return "", newError(CodeInvalidArgument, "unknown creature %q", s)
	}
	return c, nil
}

// Glyph returns the base glyph for the creature.
func (c Creature) Glyph() Glyph {
	switch c {
	case CreatureAnt:
		return "🐜"
	case CreatureBat:
		return "🦇"
	case CreatureBeetle:
		return "🐞"
	case CreatureBison:
		return "🦬"
	case CreatureBoar:
		return "🐗"
	case CreatureBug:
		return "🐛"
	case CreatureButterfly:
		return "🦋"
	case CreatureCamel:
		return "🐫"
	case CreatureCat:
		return "🐈"
	case CreatureCockroach:
		return "🪳"
	case CreatureCow:
		return "🐄"
	case CreatureCrab:
		return "🦀"
	case CreatureCrocodile:
		return "🐊"
	case CreatureDeer:
		return "🦌"
	case CreatureDog:
		return "🐕"
	case CreatureDragon:
		return "🐉"
	case CreatureEagle:
		return "🦅"
	case CreatureElephant:
		return "🐘"
	case CreatureFish:
		return "🐟"
	case CreatureGhost:
		return "👻"
	case CreatureGoat:
		return "🐐"
	case CreatureGoblin:
		return "👺"
	case CreatureHoneybee:
		return "🐝"
	case CreatureHorse:
		return "🐎"
	case CreatureLeopard:
		return "🐆"
	case CreatureLlama:
		return "🦙"
	case CreatureMammoth:
		return "🦣"
	case CreatureMouse:
		return "🐁"
	case CreatureOgre:
		return "👹"
	case CreaturePig:
		return "🐖"
	case CreatureRabbit:
		return "🐇"
	case CreatureRam:
		return "🐏"
	case CreatureRat:
		return "🐀"
	case CreatureRhinoceros:
		return "🦏"
	case CreatureScorpion:
		return "🦂"
	case CreatureShark:
		return "🦈"
	case CreatureSnake:
		return "🐍"
	case CreatureSpider:
		return "🕷"
	case CreatureTiger:
		return "🐅"
	case CreatureTropicalFish:
		return "🐠"
	case CreatureWaterBuffalo:
		return "🐃"
	case CreatureWolf:
		return "🐺"
	default:
		return ""
	}
}

// String returns the rendered glyph, or the raw value if the creature is
// not in the closed set.
func (c Creature) String() string {
	if g := c.Glyph(); g != "" {
		return string(g)
	}
	return string(c)
}

// IsValid checks if the creature is valid
func (c Creature) IsValid() bool {
	return c.Glyph() != ""
}

func (c Creature) supportsAxis(Axis) bool {
	return false
}
