package mythoji

// SkinTone is a modifier on the skin-tone axis. The fragment attaches
// directly to the base pictograph; SkinToneNeutral contributes nothing and
// leaves the glyph in its default color.
type SkinTone string

const (
	// SkinToneNeutral leaves the default (usually yellow) skin tone
	SkinToneNeutral SkinTone = "neutral"

	// SkinToneLight renders a light skin tone
	SkinToneLight SkinTone = "light"

	// SkinToneMediumLight renders a medium-light skin tone
	SkinToneMediumLight SkinTone = "medium_light"

	// SkinToneMedium renders a medium skin tone
	SkinToneMedium SkinTone = "medium"

	// SkinToneMediumDark renders a medium-dark skin tone
	SkinToneMediumDark SkinTone = "medium_dark"

	// SkinToneDark renders a dark skin tone
	SkinToneDark SkinTone = "dark"
)

// SkinTones returns every skin tone in the closed set.
func SkinTones() []SkinTone {
	return []SkinTone{
		SkinToneNeutral,
		SkinToneLight,
		SkinToneMediumLight,
		SkinToneMedium,
		SkinToneMediumDark,
		SkinToneDark,
	}
}

// ParseSkinTone returns the skin tone named s.
func ParseSkinTone(s string) (SkinTone, error) {
	t := SkinTone(s)
	if !t.IsValid() {
		return "", newError(CodeInvalidArgument, "unknown skin tone %q", s)
	}
	return t, nil
}

// Axis returns the skin-tone axis
func (t SkinTone) Axis() Axis {
	return AxisSkinTone
}

// String returns the string representation of the skin tone
func (t SkinTone) String() string {
	return string(t)
}

// IsValid checks if the skin tone is valid
func (t SkinTone) IsValid() bool {
	switch t {
	case SkinToneNeutral, SkinToneLight, SkinToneMediumLight,
		SkinToneMedium, SkinToneMediumDark, SkinToneDark:
		return true
	default:
		return false
	}
}

func (t SkinTone) fragment() Glyph {
	switch t {
	case SkinToneLight:
		return "🏻"
	case SkinToneMediumLight:
		return "🏼"
	case SkinToneMedium:
		return "🏽"
	case SkinToneMediumDark:
		return "🏾"
	case SkinToneDark:
		return "🏿"
	default:
		return ""
	}
}
