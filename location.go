package mythoji

// Location is a fantasy place or landmark. Locations accept no modifiers.
type Location string

const (
	// LocationCampsite is a campsite, e.g. "🏕"
	LocationCampsite Location = "campsite"

	// LocationCanoe is a canoe, e.g. "🛶"
	LocationCanoe Location = "canoe"

	// LocationCastle is a castle, e.g. "🏰"
	LocationCastle Location = "castle"

	// LocationCave is a cave, e.g. "🕳"
	LocationCave Location = "cave"

	// LocationClassicBuilding is a classical building, e.g. "🏛"
	LocationClassicBuilding Location = "classic_building"

	// LocationDeciduousTree is a deciduous tree, e.g. "🌳"
	LocationDeciduousTree Location = "deciduous_tree"

	// LocationDesert is a desert, e.g. "🏜"
	LocationDesert Location = "desert"

	// LocationEvergreenTree is an evergreen tree, e.g. "🌲"
	LocationEvergreenTree Location = "evergreen_tree"

	// LocationHut is a hut, e.g. "🛖"
	LocationHut Location = "hut"

	// LocationJapaneseCastle is a Japanese-style castle, e.g. "🏯"
	LocationJapaneseCastle Location = "japanese_castle"

	// LocationMountain is a mountain, e.g. "⛰"
	LocationMountain Location = "mountain"

	// LocationOasis is an oasis, e.g. "🏜"
	LocationOasis Location = "oasis"

	// LocationPalace is a palace, e.g. "🏯"
	LocationPalace Location = "palace"

	// LocationPalmTree is a palm tree, e.g. "🌴"
	LocationPalmTree Location = "palm_tree"

	// LocationSailboat is a sailboat, e.g. "⛵"
	LocationSailboat Location = "sailboat"

	// LocationSnowyMountain is a snow-capped mountain, e.g. "🏔"
	LocationSnowyMountain Location = "snowy_mountain"

	// LocationTent is a tent, e.g. "⛺"
	LocationTent Location = "tent"

	// LocationVolcano is a volcano, e.g. "🌋"
	LocationVolcano Location = "volcano"
)

// Locations returns every location in the closed set.
func Locations() []Location {
	return []Location{
		LocationCampsite,
		LocationCanoe,
		LocationCastle,
		LocationCave,
		LocationClassicBuilding,
		LocationDeciduousTree,
		LocationDesert,
		LocationEvergreenTree,
		LocationHut,
		LocationJapaneseCastle,
		LocationMountain,
		LocationOasis,
		LocationPalace,
		LocationPalmTree,
		LocationSailboat,
		LocationSnowyMountain,
		LocationTent,
		LocationVolcano,
	}
}

// ParseLocation returns the location named s.
func ParseLocation(s string) (Location, error) {
	l := Location(s)
	if !l.IsValid() {
		return "", newError(CodeInvalidArgument, "unknown location %q", s)
	}
	return l, nil
}

// Glyph returns the base glyph for the location.
func (l Location) Glyph() Glyph {
	switch l {
	case LocationCampsite:
		return "🏕"
	case LocationCanoe:
		return "🛶"
	case LocationCastle:
		return "🏰"
	case LocationCave:
		return "🕳"
	case LocationClassicBuilding:
		return "🏛"
	case LocationDeciduousTree:
		return "🌳"
	case LocationDesert:
		return "🏜"
	case LocationEvergreenTree:
		return "🌲"
	case LocationHut:
		return "🛖"
	case LocationJapaneseCastle:
		return "🏯"
	case LocationMountain:
		return "⛰"
	case LocationOasis:
		return "🏜"
	case LocationPalace:
		return "🏯"
	case LocationPalmTree:
		return "🌴"
	case LocationSailboat:
		return "⛵"
	case LocationSnowyMountain:
		return "🏔"
	case LocationTent:
		return "⛺"
	case LocationVolcano:
		return "🌋"
	default:
		return ""
	}
}

// String returns the rendered glyph, or the raw value if the location is
// not in the closed set.
func (l Location) String() string {
	if g := l.Glyph(); g != "" {
		return string(g)
	}
	return string(l)
}

// IsValid checks if the location is valid
func (l Location) IsValid() bool {
	return l.Glyph() != ""
}

func (l Location) supportsAxis(Axis) bool {
	return false
}
