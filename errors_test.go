package mythoji_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/KirkDiggler/mythoji"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCode_OnResolutionErrors(t *testing.T) {
	_, err := mythoji.Resolve(mythoji.LocationCastle, mythoji.GenderFemale)
	require.Error(t, err)
	assert.Equal(t, mythoji.CodeUnsupportedModifier, mythoji.ErrorCode(err))
	assert.True(t, mythoji.IsCode(err, mythoji.CodeUnsupportedModifier))
	assert.False(t, mythoji.IsCode(err, mythoji.CodeConflictingModifier))

	_, err = mythoji.Resolve(mythoji.PersonElf, mythoji.SkinToneLight, mythoji.SkinToneDark)
	require.Error(t, err)
	assert.Equal(t, mythoji.CodeConflictingModifier, mythoji.ErrorCode(err))
}

func TestErrorCode_ForeignAndNilErrors(t *testing.T) {
	assert.Equal(t, mythoji.CodeUnknown, mythoji.ErrorCode(errors.New("boom")))
	assert.Equal(t, mythoji.CodeUnknown, mythoji.ErrorCode(nil))
	assert.False(t, mythoji.IsUnsupportedModifier(errors.New("boom")))
	assert.Nil(t, mythoji.ErrorMeta(errors.New("boom")))
}

func TestErrorMeta_CarriesTheOffendingAxis(t *testing.T) {
	_, err := mythoji.Resolve(mythoji.LocationCastle, mythoji.GenderFemale)
	require.Error(t, err)

	meta := mythoji.ErrorMeta(err)
	require.NotNil(t, meta)
	assert.Equal(t, mythoji.AxisGender, meta["axis"])
}

func TestError_SurvivesWrapping(t *testing.T) {
	_, err := mythoji.Resolve(mythoji.PersonElf, mythoji.GenderMale, mythoji.GenderFemale)
	require.Error(t, err)

	wrapped := fmt.Errorf("rendering avatar: %w", err)
	assert.True(t, mythoji.IsConflictingModifier(wrapped))
	assert.Equal(t, mythoji.CodeConflictingModifier, mythoji.ErrorCode(wrapped))
}

func TestError_WithMeta(t *testing.T) {
	_, err := mythoji.Resolve(mythoji.PersonElf, mythoji.GenderMale, mythoji.GenderFemale)
	require.Error(t, err)

	var mErr *mythoji.Error
	require.True(t, errors.As(err, &mErr))

	mErr = mErr.WithMeta("caller", "avatar_test")
	assert.Equal(t, "avatar_test", mErr.Meta["caller"])
	assert.NotEmpty(t, mErr.Error())
}
