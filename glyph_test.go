package mythoji_test

import (
	"testing"

	"github.com/KirkDiggler/mythoji"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClosedSets_EveryMemberHasAGlyph(t *testing.T) {
	t.Run("persons", func(t *testing.T) {
		for _, p := range mythoji.Persons() {
			assert.True(t, p.IsValid(), string(p))
			assert.NotEmpty(t, p.Glyph(), string(p))
		}
	})

	t.Run("creatures", func(t *testing.T) {
		for _, c := range mythoji.Creatures() {
			assert.True(t, c.IsValid(), string(c))
			assert.NotEmpty(t, c.Glyph(), string(c))
		}
	})

	t.Run("locations", func(t *testing.T) {
		for _, l := range mythoji.Locations() {
			assert.True(t, l.IsValid(), string(l))
			assert.NotEmpty(t, l.Glyph(), string(l))
		}
	})

	t.Run("items", func(t *testing.T) {
		for _, i := range mythoji.Items() {
			assert.True(t, i.IsValid(), string(i))
			assert.NotEmpty(t, i.Glyph(), string(i))
		}
	})

	t.Run("symbols", func(t *testing.T) {
		for _, s := range mythoji.Symbols() {
			assert.True(t, s.IsValid(), string(s))
			assert.NotEmpty(t, s.Glyph(), string(s))
		}
	})

	t.Run("skin tones", func(t *testing.T) {
		for _, tone := range mythoji.SkinTones() {
			assert.True(t, tone.IsValid(), string(tone))
			assert.Equal(t, mythoji.AxisSkinTone, tone.Axis())
		}
	})

	t.Run("genders", func(t *testing.T) {
		for _, g := range mythoji.Genders() {
			assert.True(t, g.IsValid(), string(g))
			assert.Equal(t, mythoji.AxisGender, g.Axis())
		}
	})
}

func TestCategory_String(t *testing.T) {
	tests := []struct {
		name string
		cat  mythoji.Category
		want string
	}{
		{name: "castle", cat: mythoji.LocationCastle, want: "🏰"},
		{name: "elf", cat: mythoji.PersonElf, want: "🧝"},
		{name: "dragon", cat: mythoji.CreatureDragon, want: "🐉"},
		{name: "crossed swords", cat: mythoji.ItemCrossedSwords, want: "⚔️"},
		{name: "sparkles", cat: mythoji.SymbolSparkles, want: "✨"},
		{name: "oasis shares the desert glyph", cat: mythoji.LocationOasis, want: "🏜"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cat.String())
			assert.Equal(t, mythoji.Glyph(tt.want), tt.cat.Glyph())
		})
	}
}

func TestCategory_StringFallsBackToRawValue(t *testing.T) {
	// out-of-range values render their raw name rather than an empty
	// string, so mistakes stay visible in output and error messages
	assert.Equal(t, "atlantis", mythoji.Location("atlantis").String())
	assert.False(t, mythoji.Location("atlantis").IsValid())
}

func TestParse_RoundTrips(t *testing.T) {
	for _, p := range mythoji.Persons() {
		got, err := mythoji.ParsePerson(string(p))
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	for _, c := range mythoji.Creatures() {
		got, err := mythoji.ParseCreature(string(c))
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	for _, l := range mythoji.Locations() {
		got, err := mythoji.ParseLocation(string(l))
		require.NoError(t, err)
		assert.Equal(t, l, got)
	}

	for _, i := range mythoji.Items() {
		got, err := mythoji.ParseItem(string(i))
		require.NoError(t, err)
		assert.Equal(t, i, got)
	}

	for _, s := range mythoji.Symbols() {
		got, err := mythoji.ParseSymbol(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	for _, tone := range mythoji.SkinTones() {
		got, err := mythoji.ParseSkinTone(string(tone))
		require.NoError(t, err)
		assert.Equal(t, tone, got)
	}

	for _, g := range mythoji.Genders() {
		got, err := mythoji.ParseGender(string(g))
		require.NoError(t, err)
		assert.Equal(t, g, got)
	}
}

func TestParse_RejectsUnknownNames(t *testing.T) {
	_, err := mythoji.ParsePerson("balrog")
	require.Error(t, err)
	assert.True(t, mythoji.IsInvalidArgument(err))

	_, err = mythoji.ParseSkinTone("plaid")
	require.Error(t, err)
	assert.True(t, mythoji.IsInvalidArgument(err))

	_, err = mythoji.ParseLocation("")
	require.Error(t, err)
	assert.True(t, mythoji.IsInvalidArgument(err))
}
