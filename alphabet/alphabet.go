// Package alphabet provides the ordered-symbol-set abstraction FPE encodes
// plaintext through: a sequence of distinct Unicode scalars with O(1)
// index lookup in either direction.
package alphabet

import (
	"errors"
	"fmt"
)

// ErrDuplicateSymbol is the sentinel cause for an alphabet containing the
// same scalar more than once.
var ErrDuplicateSymbol = errors.New("alphabet: duplicate symbol")

// ErrTooSmall is the sentinel cause for an alphabet with fewer than two
// distinct symbols (radix must be at least 2 for a Feistel split to make
// sense).
var ErrTooSmall = errors.New("alphabet: radix must be at least 2")

// Alphabet maps an ordered set of distinct Unicode scalars to indices
// 0..Radix()-1 and back.
type Alphabet struct {
	symbols []rune
	index   map[rune]uint16
}

// New builds an Alphabet from s, ranging over it by Unicode scalar (not
// byte, not grapheme cluster). It rejects a repeated scalar and an
// alphabet with fewer than two symbols.
func New(s string) (*Alphabet, error) {
	symbols := []rune(s)
	index := make(map[rune]uint16, len(symbols))
	for i, r := range symbols {
		if _, dup := index[r]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSymbol, r)
		}
		index[r] = uint16(i)
	}
	if len(symbols) < 2 {
		return nil, ErrTooSmall
	}
	return &Alphabet{symbols: symbols, index: index}, nil
}

// Radix returns the number of distinct symbols.
func (a *Alphabet) Radix() int {
	return len(a.symbols)
}

// IndexOf returns the numeral for r and true, or (0, false) if r is not a
// member of the alphabet.
func (a *Alphabet) IndexOf(r rune) (uint16, bool) {
	i, ok := a.index[r]
	return i, ok
}

// SymbolAt returns the scalar for numeral i. It panics if i is out of
// range — callers only ever pass numerals produced by this same alphabet.
func (a *Alphabet) SymbolAt(i uint16) rune {
	return a.symbols[i]
}

// ErrCharNotInAlphabet is the sentinel cause for a plaintext/ciphertext
// character outside the alphabet.
var ErrCharNotInAlphabet = errors.New("alphabet: character not in alphabet")

// ToNumerals converts s into a numeral sequence over a, or an error if any
// scalar of s is not a member of a.
func (a *Alphabet) ToNumerals(s string) ([]uint16, error) {
	runes := []rune(s)
	out := make([]uint16, len(runes))
	for i, r := range runes {
		idx, ok := a.IndexOf(r)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrCharNotInAlphabet, r)
		}
		out[i] = idx
	}
	return out, nil
}

// FromNumerals renders a numeral sequence back to a string over a.
func (a *Alphabet) FromNumerals(x []uint16) string {
	runes := make([]rune, len(x))
	for i, n := range x {
		runes[i] = a.SymbolAt(n)
	}
	return string(runes)
}
