package alphabet

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsDuplicate(t *testing.T) {
	_, err := New("abca")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateSymbol))
}

func TestNewRejectsTooSmall(t *testing.T) {
	_, err := New("a")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTooSmall))

	_, err = New("")
	require.Error(t, err)
}

func TestRadixAndIndex(t *testing.T) {
	a, err := New("0123456789")
	require.NoError(t, err)
	assert.Equal(t, 10, a.Radix())

	idx, ok := a.IndexOf('5')
	require.True(t, ok)
	assert.Equal(t, uint16(5), idx)

	_, ok = a.IndexOf('x')
	assert.False(t, ok)

	assert.Equal(t, '5', a.SymbolAt(5))
}

func TestUnicodeScalars(t *testing.T) {
	a, err := New("aàáâãä")
	require.NoError(t, err)
	assert.Equal(t, 6, a.Radix())
	idx, ok := a.IndexOf('ã')
	require.True(t, ok)
	assert.Equal(t, uint16(4), idx)
}

func TestToFromNumerals(t *testing.T) {
	a, err := New("0123456789")
	require.NoError(t, err)

	nums, err := a.ToNumerals("0123456789")
	require.NoError(t, err)
	assert.Equal(t, []uint16{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, nums)

	back := a.FromNumerals(nums)
	assert.Equal(t, "0123456789", back)
}

func TestToNumeralsRejectsUnknownChar(t *testing.T) {
	a, err := New("0123456789")
	require.NoError(t, err)

	_, err = a.ToNumerals("012x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCharNotInAlphabet))
}
