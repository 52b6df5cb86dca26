package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyAcceptsValidLengths(t *testing.T) {
	for _, hexLen := range []int{32, 48, 64} {
		h := ""
		for len(h) < hexLen {
			h += "ab"
		}
		h = h[:hexLen]
		key, err := Key(h)
		require.NoError(t, err)
		assert.Equal(t, hexLen/2, len(key))
	}
}

func TestKeyRejectsBadLength(t *testing.T) {
	_, err := Key("aabbcc")
	require.Error(t, err)
	var iie *InvalidInputError
	require.True(t, errors.As(err, &iie))
	assert.True(t, errors.Is(err, ErrBadKeyLength))
}

func TestKeyRejectsBadHex(t *testing.T) {
	_, err := Key("not-hex-at-all-zz")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadHex))
}

func TestTweakFF1AnyLength(t *testing.T) {
	tw, err := Tweak("", -1)
	require.NoError(t, err)
	assert.Equal(t, 0, len(tw))

	tw, err = Tweak("aabbccdd", -1)
	require.NoError(t, err)
	assert.Equal(t, 4, len(tw))
}

func TestTweakFF3ExactLength(t *testing.T) {
	_, err := Tweak("cf29da1e18d970", 7)
	require.NoError(t, err)

	_, err = Tweak("aabb", 7)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadTweakLength))
}

func TestTextLength(t *testing.T) {
	require.NoError(t, TextLength("op", 6, 6, 57))
	require.Error(t, TextLength("op", 5, 6, 57))
	require.Error(t, TextLength("op", 58, 6, 57))
	require.NoError(t, TextLength("op", 57, 6, 57))
}

func TestFF3MaxLengthRadix10(t *testing.T) {
	assert.Equal(t, 57, FF3MaxLength(10))
}

func TestFF3MaxLengthRadix2(t *testing.T) {
	assert.Equal(t, 192, FF3MaxLength(2))
}

func TestFF1MinLengthRadix10(t *testing.T) {
	assert.Equal(t, 6, FF1MinLength(10))
}
