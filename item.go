package mythoji

// Item is a carryable object, piece of scenery, or consumable. Items
// accept no modifiers.
type Item string

const (
	// ItemAmulet is an amulet, e.g. "🧿"
	ItemAmulet Item = "amulet"

	// ItemAxe is an axe, e.g. "🪓"
	ItemAxe Item = "axe"

	// ItemBag is a bag, e.g. "🎒"
	ItemBag Item = "bag"

	// ItemBandage is a bandage, e.g. "🩹"
	ItemBandage Item = "bandage"

	// ItemBed is a bed, e.g. "🛏"
	ItemBed Item = "bed"

	// ItemBeer is a beer, e.g. "🍺"
	ItemBeer Item = "beer"

	// ItemBlackFlag is a black flag, e.g. "🏴"
	ItemBlackFlag Item = "black_flag"

	// ItemBloodDrop is a drop of blood, e.g. "🩸"
	ItemBloodDrop Item = "blood_drop"

	// ItemBomb is a bomb, e.g. "💣"
	ItemBomb Item = "bomb"

	// ItemBoomerang is a boomerang, e.g. "🪃"
	ItemBoomerang Item = "boomerang"

	// ItemBowAndArrow is a bow and arrow, e.g. "🏹"
	ItemBowAndArrow Item = "bow_and_arrow"

	// ItemBrick is a brick, e.g. "🧱"
	ItemBrick Item = "brick"

	// ItemCandle is a candle, e.g. "🕯"
	ItemCandle Item = "candle"

	// ItemClosedBook is a closed book, e.g. "📕"
	ItemClosedBook Item = "closed_book"

	// ItemCoat is a coat, e.g. "🧥"
	ItemCoat Item = "coat"

	// ItemCoffin is a coffin, e.g. "⚰️"
	ItemCoffin Item = "coffin"

	// ItemCoin is a coin, e.g. "🪙"
	ItemCoin Item = "coin"

	// ItemCrossedSwords is a pair of crossed swords, e.g. "⚔️"
	ItemCrossedSwords Item = "crossed_swords"

	// ItemCrown is a crown, e.g. "👑"
	ItemCrown Item = "crown"

	// ItemCrystalBall is a crystal ball, e.g. "🔮"
	ItemCrystalBall Item = "crystal_ball"

	// ItemCutOfMeat is a cut of meat, e.g. "🥩"
	ItemCutOfMeat Item = "cut_of_meat"

	// ItemDagger is a dagger, e.g. "🗡"
	ItemDagger Item = "dagger"

	// ItemDart is a dart, e.g. "🎯"
	ItemDart Item = "dart"

	// ItemDoor is a door, e.g. "🚪"
	ItemDoor Item = "door"

	// ItemFallenLeaf is a fallen leaf, e.g. "🍂"
	ItemFallenLeaf Item = "fallen_leaf"

	// ItemFirecracker is a firecracker, e.g. "🧨"
	ItemFirecracker Item = "firecracker"

	// ItemGemstone is a gemstone, e.g. "💎"
	ItemGemstone Item = "gemstone"

	// ItemGrave is a grave, e.g. "🪦"
	ItemGrave Item = "grave"

	// ItemHammer is a hammer, e.g. "🔨"
	ItemHammer Item = "hammer"

	// ItemHammerAndPick is a hammer and pick, e.g. "⚒️"
	ItemHammerAndPick Item = "hammer_and_pick"

	// ItemHourglass is an hourglass with the sand run out, e.g. "⌛"
	ItemHourglass Item = "hourglass"

	// ItemHourglassFlowing is an hourglass with sand still flowing, e.g. "⏳"
	ItemHourglassFlowing Item = "hourglass_flowing"

	// ItemJar is a jar, e.g. "🏺"
	ItemJar Item = "jar"

	// ItemKey is a key, e.g. "🗝️"
	ItemKey Item = "key"

	// ItemLeaf is a leaf, e.g. "🍃"
	ItemLeaf Item = "leaf"

	// ItemMap is a map, e.g. "🗺"
	ItemMap Item = "map"

	// ItemMapleLeaf is a maple leaf, e.g. "🍁"
	ItemMapleLeaf Item = "maple_leaf"

	// ItemMeatOnBone is meat on a bone, e.g. "🍖"
	ItemMeatOnBone Item = "meat_on_bone"

	// ItemPick is a pickaxe, e.g. "⛏"
	ItemPick Item = "pick"

	// ItemPoultryLeg is a poultry leg, e.g. "🍗"
	ItemPoultryLeg Item = "poultry_leg"

	// ItemPrayerBeads is a string of prayer beads, e.g. "📿"
	ItemPrayerBeads Item = "prayer_beads"

	// ItemRedEnvelope is a red envelope, e.g. "🧧"
	ItemRedEnvelope Item = "red_envelope"

	// ItemRedHeart is a red heart, e.g. "❤️"
	ItemRedHeart Item = "red_heart"

	// ItemRedLantern is a red lantern, e.g. "🏮"
	ItemRedLantern Item = "red_lantern"

	// ItemRock is a rock, e.g. "🪨"
	ItemRock Item = "rock"

	// ItemScroll is a scroll, e.g. "📜"
	ItemScroll Item = "scroll"

	// ItemShield is a shield, e.g. "🛡"
	ItemShield Item = "shield"

	// ItemOpenBook is an open book, e.g. "📖"
	ItemOpenBook Item = "open_book"

	// ItemTriangularFlag is a triangular flag, e.g. "🚩"
	ItemTriangularFlag Item = "triangular_flag"

	// ItemTrident is a trident, e.g. "🔱"
	ItemTrident Item = "trident"

	// ItemUrn is an urn, e.g. "⚱️"
	ItemUrn Item = "urn"

	// ItemWand is a wand, e.g. "🪄"
	ItemWand Item = "wand"

	// ItemWaterDrop is a water drop, e.g. "💧"
	ItemWaterDrop Item = "water_drop"
)

// Items returns every item in the closed set.
func Items() []Item {
	return []Item{
		ItemAmulet,
		ItemAxe,
		ItemBag,
		ItemBandage,
		ItemBed,
		ItemBeer,
		ItemBlackFlag,
		ItemBloodDrop,
		ItemBomb,
		ItemBoomerang,
		ItemBowAndArrow,
		ItemBrick,
		ItemCandle,
		ItemClosedBook,
		ItemCoat,
		ItemCoffin,
		ItemCoin,
		ItemCrossedSwords,
		ItemCrown,
		ItemCrystalBall,
		ItemCutOfMeat,
		ItemDagger,
		ItemDart,
		ItemDoor,
		ItemFallenLeaf,
		ItemFirecracker,
		ItemGemstone,
		ItemGrave,
		ItemHammer,
		ItemHammerAndPick,
		ItemHourglass,
		ItemHourglassFlowing,
		ItemJar,
		ItemKey,
		ItemLeaf,
		ItemMap,
		ItemMapleLeaf,
		ItemMeatOnBone,
		ItemOpenBook,
		ItemPick,
		ItemPoultryLeg,
		ItemPrayerBeads,
		ItemRedEnvelope,
		ItemRedHeart,
		ItemRedLantern,
		ItemRock,
		ItemScroll,
		ItemShield,
		ItemTriangularFlag,
		ItemTrident,
		ItemUrn,
		ItemWand,
		ItemWaterDrop,
	}
}

// ParseItem returns the item named s.
func ParseItem(s string) (Item, error) {
	i := Item(s)
	if !i.IsValid() {
		return "", newError(CodeInvalidArgument, "unknown item %q", s)
	}
	return i, nil
}

// Glyph returns the base glyph for the item.
func (i Item) Glyph() Glyph {
	switch i {
	case ItemAmulet:
		return "🧿"
	case ItemAxe:
		return "🪓"
	case ItemBag:
		return "🎒"
	case ItemBandage:
		return "🩹"
	case ItemBed:
		return "🛏"
	case ItemBeer:
		return "🍺"
	case ItemBlackFlag:
		return "🏴"
	case ItemBloodDrop:
		return "🩸"
	case ItemBomb:
		return "💣"
	case ItemBoomerang:
		return "🪃"
	case ItemBowAndArrow:
		return "🏹"
	case ItemBrick:
		return "🧱"
	case ItemCandle:
		return "🕯"
	case ItemClosedBook:
		return "📕"
	case ItemCoat:
		return "🧥"
	case ItemCoffin:
		return "⚰️"
	case ItemCoin:
		return "🪙"
	case ItemCrossedSwords:
		return "⚔️"
	case ItemCrown:
		return "👑"
	case ItemCrystalBall:
		return "🔮"
	case ItemCutOfMeat:
		return "🥩"
	case ItemDagger:
		return "🗡"
	case ItemDart:
		return "🎯"
	case ItemDoor:
		return "🚪"
	case ItemFallenLeaf:
		return "🍂"
	case ItemFirecracker:
		return "🧨"
	case ItemGemstone:
		return "💎"
	case ItemGrave:
		return "🪦"
	case ItemHammer:
		return "🔨"
	case ItemHammerAndPick:
		return "⚒️"
	case ItemHourglass:
		return "⌛"
	case ItemHourglassFlowing:
		return "⏳"
	case ItemJar:
		return "🏺"
	case ItemKey:
		return "🗝️"
	case ItemLeaf:
		return "🍃"
	case ItemMap:
		return "🗺"
	case ItemMapleLeaf:
		return "🍁"
	case ItemMeatOnBone:
		return "🍖"
	case ItemOpenBook:
		return "📖"
	case ItemPick:
		return "⛏"
	case ItemPoultryLeg:
		return "🍗"
	case ItemPrayerBeads:
		return "📿"
	case ItemRedEnvelope:
		return "🧧"
	case ItemRedHeart:
		return "❤️"
	case ItemRedLantern:
		return "🏮"
	case ItemRock:
		return "🪨"
	case ItemScroll:
		return "📜"
	case ItemShield:
		return "🛡"
	case ItemTriangularFlag:
		return "🚩"
	case ItemTrident:
		return "🔱"
	case ItemUrn:
		return "⚱️"
	case ItemWand:
		return "🪄"
	case ItemWaterDrop:
		return "💧"
	default:
		return ""
	}
}

// String returns the rendered glyph, or the raw value if the item is not
// in the closed set.
func (i Item) String() string {
	if g := i.Glyph(); g != "" {
		return string(g)
	}
	return string(i)
}

// IsValid checks if the item is valid
func (i Item) IsValid() bool {
	return i.Glyph() != ""
}

func (i Item) supportsAxis(Axis) bool {
	return false
}
