package mythoji

// Symbol is an abstract marker a game overlays on the world, such as a
// status effect or emphasis punctuation. Symbols accept no modifiers.
type Symbol string

const (
	// SymbolAnger is an anger mark, e.g. "💢"
	SymbolAnger Symbol = "anger"

	// SymbolAngrySpeechBubble is an angry speech bubble, e.g. "🗯️"
	SymbolAngrySpeechBubble Symbol = "angry_speech_bubble"

	// SymbolComet is a comet, e.g. "☄️"
	SymbolComet Symbol = "comet"

	// SymbolCyclone is a cyclone, e.g. "🌀"
	SymbolCyclone Symbol = "cyclone"

	// SymbolDoubleExclamation is a double exclamation mark, e.g. "‼️"
	SymbolDoubleExclamation Symbol = "double_exclamation"

	// SymbolExclamationQuestion is an exclamation with a question mark, e.g. "⁉️"
	SymbolExclamationQuestion Symbol = "exclamation_question"

	// SymbolFemaleSign is a female sign, e.g. "♀️"
	SymbolFemaleSign Symbol = "female_sign"

	// SymbolFire is a flame, e.g. "🔥"
	SymbolFire Symbol = "fire"

	// SymbolLightning is a lightning bolt, e.g. "⚡"
	SymbolLightning Symbol = "lightning"

	// SymbolMaleSign is a male sign, e.g. "♂️"
	SymbolMaleSign Symbol = "male_sign"

	// SymbolRedExclamation is a red exclamation mark, e.g. "❗"
	SymbolRedExclamation Symbol = "red_exclamation"

	// SymbolRedQuestion is a red question mark, e.g. "❓"
	SymbolRedQuestion Symbol = "red_question"

	// SymbolSnowflake is a snowflake, e.g. "❄️"
	SymbolSnowflake Symbol = "snowflake"

	// SymbolSparkles is a spray of sparkles, e.g. "✨"
	SymbolSparkles Symbol = "sparkles"

	// SymbolSpeechBubble is a speech bubble, e.g. "💬"
	SymbolSpeechBubble Symbol = "speech_bubble"

	// SymbolWhiteExclamation is a white exclamation mark, e.g. "❕"
	SymbolWhiteExclamation Symbol = "white_exclamation"

	// SymbolWhiteQuestion is a white question mark, e.g. "❔"
	SymbolWhiteQuestion Symbol = "white_question"

	// SymbolZzz is a "zzz" sleep mark, e.g. "💤"
	SymbolZzz Symbol = "zzz"
)

// Symbols returns every symbol in the closed set.
func Symbols() []Symbol {
	return []Symbol{
		SymbolAnger,
		SymbolAngrySpeechBubble,
		SymbolComet,
		SymbolCyclone,
		SymbolDoubleExclamation,
		SymbolExclamationQuestion,
		SymbolFemaleSign,
		SymbolFire,
		SymbolLightning,
		SymbolMaleSign,
		SymbolRedExclamation,
		SymbolRedQuestion,
		SymbolSnowflake,
		SymbolSparkles,
		SymbolSpeechBubble,
		SymbolWhiteExclamation,
		SymbolWhiteQuestion,
		SymbolZzz,
	}
}

// ParseSymbol returns the symbol named s.
func ParseSymbol(s string) (Symbol, error) {
	sym := Symbol(s)
	if !sym.IsValid() {
		return "", newError(CodeInvalidArgument, "unknown symbol %q", s)
	}
	return sym, nil
}

// Glyph returns the base glyph for the symbol.
func (s Symbol) Glyph() Glyph {
	switch s {
	case SymbolAnger:
		return "💢"
	case SymbolAngrySpeechBubble:
		return "🗯️"
	case SymbolComet:
		return "☄️"
	case SymbolCyclone:
		return "🌀"
	case SymbolDoubleExclamation:
		return "‼️"
	case SymbolExclamationQuestion:
		return "⁉️"
	case SymbolFemaleSign:
		return "♀️"
	case SymbolFire:
		return "🔥"
	case SymbolLightning:
		return "⚡"
	case SymbolMaleSign:
		return "♂️"
	case SymbolRedExclamation:
		return "❗"
	case SymbolRedQuestion:
		return "❓"
	case SymbolSnowflake:
		return "❄️"
	case SymbolSparkles:
		return "✨"
	case SymbolSpeechBubble:
		return "💬"
	case SymbolWhiteExclamation:
		return "❕"
	case SymbolWhiteQuestion:
		return "❔"
	case SymbolZzz:
		return "💤"
	default:
		return ""
	}
}

// String returns the rendered glyph, or the raw value if the symbol is not
// in the closed set.
func (s Symbol) String() string {
	if g := s.Glyph(); g != "" {
		return string(g)
	}
	return string(s)
}

// IsValid checks if the symbol is valid
func (s Symbol) IsValid() bool {
	return s.Glyph() != ""
}

func (s Symbol) supportsAxis(Axis) bool {
	return false
}
