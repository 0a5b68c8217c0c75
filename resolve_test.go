package mythoji_test

import (
	"testing"

	"github.com/KirkDiggler/mythoji"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_Composition(t *testing.T) {
	tests := []struct {
		name string
		cat  mythoji.Category
		mods []mythoji.Modifier
		want mythoji.Glyph
	}{
		{
			name: "castle without modifiers",
			cat:  mythoji.LocationCastle,
			want: "🏰",
		},
		{
			name: "dragon without modifiers",
			cat:  mythoji.CreatureDragon,
			want: "🐉",
		},
		{
			name: "female elf with neutral tone",
			cat:  mythoji.PersonElf,
			mods: []mythoji.Modifier{mythoji.SkinToneNeutral, mythoji.GenderFemale},
			want: "🧝‍♀️",
		},
		{
			name: "female elf with medium-light tone",
			cat:  mythoji.PersonElf,
			mods: []mythoji.Modifier{mythoji.SkinToneMediumLight, mythoji.GenderFemale},
			want: "🧝🏼‍♀️",
		},
		{
			name: "male vampire",
			cat:  mythoji.PersonVampire,
			mods: []mythoji.Modifier{mythoji.GenderMale},
			want: "🧛‍♂️",
		},
		{
			name: "dark-skinned mage without gender",
			cat:  mythoji.PersonMage,
			mods: []mythoji.Modifier{mythoji.SkinToneDark},
			want: "🧙🏿",
		},
		{
			// the artist base is already a ZWJ sequence; the tone must
			// land on the leading pictograph, not at the end
			name: "dark-skinned artist",
			cat:  mythoji.PersonArtist,
			mods: []mythoji.Modifier{mythoji.SkinToneDark},
			want: "🧑🏿‍🎨",
		},
		{
			name: "neutral modifiers are a no-op",
			cat:  mythoji.PersonAdult,
			mods: []mythoji.Modifier{mythoji.SkinToneNeutral, mythoji.GenderNeutral},
			want: "🧑",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := mythoji.Resolve(tt.cat, tt.mods...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_AxisIndependence(t *testing.T) {
	for _, person := range mythoji.Persons() {
		for _, tone := range mythoji.SkinTones() {
			for _, gender := range mythoji.Genders() {
				a, err := mythoji.Resolve(person, tone, gender)
				require.NoError(t, err)

				b, err := mythoji.Resolve(person, gender, tone)
				require.NoError(t, err)

				assert.Equal(t, a, b, "%s with %s and %s", string(person), tone, gender)
			}
		}
	}
}

func TestResolve_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		cat     mythoji.Category
		mods    []mythoji.Modifier
		checkFn func(error) bool
		code    mythoji.Code
	}{
		{
			name:    "gender on a location",
			cat:     mythoji.LocationCastle,
			mods:    []mythoji.Modifier{mythoji.GenderFemale},
			checkFn: mythoji.IsUnsupportedModifier,
			code:    mythoji.CodeUnsupportedModifier,
		},
		{
			name:    "neutral tone on a location is still rejected",
			cat:     mythoji.LocationCave,
			mods:    []mythoji.Modifier{mythoji.SkinToneNeutral},
			checkFn: mythoji.IsUnsupportedModifier,
			code:    mythoji.CodeUnsupportedModifier,
		},
		{
			name:    "gender on a creature",
			cat:     mythoji.CreatureWolf,
			mods:    []mythoji.Modifier{mythoji.GenderMale},
			checkFn: mythoji.IsUnsupportedModifier,
			code:    mythoji.CodeUnsupportedModifier,
		},
		{
			name:    "tone on an item",
			cat:     mythoji.ItemDagger,
			mods:    []mythoji.Modifier{mythoji.SkinToneLight},
			checkFn: mythoji.IsUnsupportedModifier,
			code:    mythoji.CodeUnsupportedModifier,
		},
		{
			name:    "tone on a symbol",
			cat:     mythoji.SymbolFire,
			mods:    []mythoji.Modifier{mythoji.SkinToneMedium},
			checkFn: mythoji.IsUnsupportedModifier,
			code:    mythoji.CodeUnsupportedModifier,
		},
		{
			name:    "two skin tones",
			cat:     mythoji.PersonMage,
			mods:    []mythoji.Modifier{mythoji.SkinToneLight, mythoji.SkinToneDark},
			checkFn: mythoji.IsConflictingModifier,
			code:    mythoji.CodeConflictingModifier,
		},
		{
			name:    "two genders",
			cat:     mythoji.PersonElf,
			mods:    []mythoji.Modifier{mythoji.GenderMale, mythoji.GenderFemale},
			checkFn: mythoji.IsConflictingModifier,
			code:    mythoji.CodeConflictingModifier,
		},
		{
			name:    "duplicate neutral gender",
			cat:     mythoji.PersonElf,
			mods:    []mythoji.Modifier{mythoji.GenderNeutral, mythoji.GenderNeutral},
			checkFn: mythoji.IsConflictingModifier,
			code:    mythoji.CodeConflictingModifier,
		},
		{
			name:    "category outside the closed set",
			cat:     mythoji.Location("atlantis"),
			checkFn: mythoji.IsInvalidArgument,
			code:    mythoji.CodeInvalidArgument,
		},
		{
			name:    "modifier outside the closed set",
			cat:     mythoji.PersonElf,
			mods:    []mythoji.Modifier{mythoji.SkinTone("plaid")},
			checkFn: mythoji.IsInvalidArgument,
			code:    mythoji.CodeInvalidArgument,
		},
		{
			name:    "nil modifier",
			cat:     mythoji.PersonElf,
			mods:    []mythoji.Modifier{nil},
			checkFn: mythoji.IsInvalidArgument,
			code:    mythoji.CodeInvalidArgument,
		},
		{
			name:    "nil modifier after a valid one",
			cat:     mythoji.PersonElf,
			mods:    []mythoji.Modifier{mythoji.GenderFemale, nil},
			checkFn: mythoji.IsInvalidArgument,
			code:    mythoji.CodeInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := mythoji.Resolve(tt.cat, tt.mods...)
			require.Error(t, err)
			assert.Empty(t, got)
			assert.True(t, tt.checkFn(err))
			assert.Equal(t, tt.code, mythoji.ErrorCode(err))
		})
	}
}

func TestResolve_Totality(t *testing.T) {
	var cats []mythoji.Category
	for _, p := range mythoji.Persons() {
		cats = append(cats, p)
	}
	for _, c := range mythoji.Creatures() {
		cats = append(cats, c)
	}
	for _, l := range mythoji.Locations() {
		cats = append(cats, l)
	}
	for _, i := range mythoji.Items() {
		cats = append(cats, i)
	}
	for _, s := range mythoji.Symbols() {
		cats = append(cats, s)
	}

	for _, cat := range cats {
		first, err := mythoji.Resolve(cat)
		require.NoError(t, err)
		assert.NotEmpty(t, first)
		assert.Equal(t, cat.Glyph(), first)

		// pure function: same inputs, same glyph
		again, err := mythoji.Resolve(cat)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
