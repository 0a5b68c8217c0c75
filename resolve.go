package mythoji

import "strings"

const (
	// zwj joins codepoints into a single rendered emoji sequence
	zwj = "\u200d"

	// vs16 requests emoji presentation for a symbol codepoint
	vs16 = "\ufe0f"
)

// Resolve composes the glyph for a category with zero or more modifiers.
//
// Modifiers of different axes may be supplied in either order; at most one
// modifier per axis is accepted. A modifier for an axis the category does
// not define is rejected rather than ignored, so caller mistakes surface
// at the call site.
//
// Composition follows standard emoji sequencing: the skin-tone fragment
// attaches directly to the base pictograph, and the gender sign is joined
// with a zero-width joiner and given a trailing variation selector.
func Resolve(cat Category, mods ...Modifier) (Glyph, error) {
	if cat == nil || !cat.IsValid() {
		return "", newError(CodeInvalidArgument, "unknown category %q", cat)
	}

	var tone, gender Glyph
	seen := make(map[Axis]bool, len(mods))
	for _, mod := range mods {
		if mod == nil {
			return "", newError(CodeInvalidArgument, "nil modifier supplied")
		}
		if !mod.IsValid() {
			return "", newError(CodeInvalidArgument, "unknown %s modifier", mod.Axis()).
				WithMeta("axis", mod.Axis())
		}

		axis := mod.Axis()
		if seen[axis] {
			return "", newError(CodeConflictingModifier, "multiple %s modifiers supplied", axis).
				WithMeta("axis", axis)
		}
		seen[axis] = true

		if !cat.supportsAxis(axis) {
			return "", newError(CodeUnsupportedModifier, "category %q does not support the %s axis", cat, axis).
				WithMeta("axis", axis)
		}

		switch axis {
		case AxisSkinTone:
			tone = mod.fragment()
		case AxisGender:
			gender = mod.fragment()
		}
	}

	out := withSkinTone(cat.Glyph(), tone)
	if gender != "" {
		out += zwj + gender + vs16
	}
	return out, nil
}

// withSkinTone attaches a tone fragment to the base pictograph. Compound
// bases like the artist (person + ZWJ + palette) take the tone on their
// leading codepoint, before the first joiner.
func withSkinTone(base, tone Glyph) Glyph {
	if tone == "" {
		return base
	}
	if i := strings.Index(string(base), zwj); i >= 0 {
		return base[:i] + tone + base[i:]
	}
	return base + tone
}
