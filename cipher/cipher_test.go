package cipher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFF1KnownAnswer(t *testing.T) {
	c, err := New(FF1, "2b7e151628aed2a6abf7158809cf4f3c", "0123456789")
	require.NoError(t, err)

	ct, err := c.Encrypt("", "0123456789")
	require.NoError(t, err)
	assert.Equal(t, "2433477484", ct)

	pt, err := c.Decrypt("", ct)
	require.NoError(t, err)
	assert.Equal(t, "0123456789", pt)
}

func TestFF3_1KnownAnswer(t *testing.T) {
	c, err := New(FF3_1, "ad41ec5d2356deae53ae76f50b4ba6d2", "0123456789")
	require.NoError(t, err)

	ct, err := c.Encrypt("cf29da1e18d970", "6520935496")
	require.NoError(t, err)
	assert.Equal(t, "4716569208", ct)

	pt, err := c.Decrypt("cf29da1e18d970", ct)
	require.NoError(t, err)
	assert.Equal(t, "6520935496", pt)
}

func TestReuseAcrossTweaks(t *testing.T) {
	c, err := New(FF1, "2b7e151628aed2a6abf7158809cf4f3c", "0123456789")
	require.NoError(t, err)

	ctA, err := c.Encrypt("aa", "123456")
	require.NoError(t, err)
	ctB, err := c.Encrypt("bb", "123456")
	require.NoError(t, err)
	assert.NotEqual(t, ctA, ctB)
}

func TestWithMaxFF1Length(t *testing.T) {
	c, err := New(FF1, "2b7e151628aed2a6abf7158809cf4f3c", "0123456789", WithMaxFF1Length(10))
	require.NoError(t, err)

	_, err = c.Encrypt("", "12345678901")
	assert.Error(t, err)
}

func TestFF3_1RejectsWrongTweakLength(t *testing.T) {
	c, err := New(FF3_1, "ad41ec5d2356deae53ae76f50b4ba6d2", "0123456789")
	require.NoError(t, err)

	_, err = c.Encrypt("aabb", "123456")
	assert.Error(t, err)
}

func TestNewRejectsBadKey(t *testing.T) {
	_, err := New(FF1, "not-hex", "0123456789")
	assert.Error(t, err)
}
