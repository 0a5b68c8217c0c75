package mythoji

// Glyph is the rendered form of a resolved concept: an emoji, or a short
// emoji sequence joined with zero-width joiners. Glyphs are immutable and
// intended to be embedded directly in display text.
type Glyph string

// String returns the glyph as a plain string.
func (g Glyph) String() string {
	return string(g)
}

// Axis is a modifier dimension. A resolution accepts at most one modifier
// per axis.
type Axis string

const (
	// AxisSkinTone selects the skin tone of a person glyph
	AxisSkinTone Axis = "skin_tone"

	// AxisGender selects the presented gender of a person glyph
	AxisGender Axis = "gender"
)

// String returns the string representation of the axis
func (a Axis) String() string {
	return string(a)
}

// Category is a fantasy concept with an associated base glyph. The five
// families (Person, Creature, Location, Item, Symbol) implement it; the
// unexported method keeps the set closed, so callers cannot introduce
// categories of their own.
type Category interface {
	// Glyph returns the base glyph, or "" for an out-of-range value
	Glyph() Glyph

	// String returns the rendered glyph, so categories can be embedded
	// in display text directly
	String() string

	// IsValid reports whether the value is a member of its closed set
	IsValid() bool

	supportsAxis(Axis) bool
}

// Modifier is a secondary attribute applied during resolution. SkinTone and
// Gender implement it; the set is closed the same way Category is.
type Modifier interface {
	// Axis returns the dimension this modifier occupies
	Axis() Axis

	// IsValid reports whether the value is a member of its closed set
	IsValid() bool

	fragment() Glyph
}
