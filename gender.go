package mythoji

// Gender is a modifier on the gender axis. The fragment is a sign rather
// than a pictograph, so composition joins it with a zero-width joiner and a
// trailing variation selector. GenderNeutral contributes nothing.
type Gender string

const (
	// GenderNeutral leaves the glyph ungendered
	GenderNeutral Gender = "neutral"

	// GenderMale renders the glyph as male
	GenderMale Gender = "male"

	// GenderFemale renders the glyph as female
	GenderFemale Gender = "female"
)

// Genders returns every gender in the closed set.
func Genders() []Gender {
	return []Gender{
		GenderNeutral,
		GenderMale,
		GenderFemale,
	}
}

// ParseGender returns the gender named s.
func ParseGender(s string) (Gender, error) {
	g := Gender(s)
	if !g.IsValid() {
		return "", newError(CodeInvalidArgument, "unknown gender %q", s)
	}
	return g, nil
}

// Axis returns the gender axis
func (g Gender) Axis() Axis {
	return AxisGender
}

// String returns the string representation of the gender
func (g Gender) String() string {
	return string(g)
}

// IsValid checks if the gender is valid
func (g Gender) IsValid() bool {
	switch g {
	case GenderNeutral, GenderMale, GenderFemale:
		return true
	default:
		return false
	}
}

func (g Gender) fragment() Glyph {
	switch g {
	case GenderMale:
		return "♂"
	case GenderFemale:
		return "♀"
	default:
		return ""
	}
}
