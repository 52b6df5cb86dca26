// Package fpe provides format-preserving tokenization on top of FF1:
// Tokenize/Detokenize split a value into data characters and format
// characters (hyphens, dots, @ signs, and the like), run FF1 over the
// data characters only, and reassemble the result in the original
// layout — the shape SSNs, card numbers, and similar formatted
// identifiers need. Callers needing FF3-1, a non-ASCII alphabet, or
// direct control over the alphabet should use the ff1/ff3_1/cipher
// packages instead.
package fpe

import (
	"fmt"

	tinksubtle "github.com/google/tink/go/subtle"

	"github.com/ff-go/fpe/alphabet"
	"github.com/ff-go/fpe/internal/validate"
	"github.com/ff-go/fpe/subtle"
)

// FF1 tokenizes and detokenizes formatted values with a fixed key and
// tweak.
type FF1 struct {
	key   []byte
	tweak []byte
}

// NewFF1 creates a tokenizer bound to key (16, 24, or 32 raw bytes) and
// tweak (any length, including none).
func NewFF1(key, tweak []byte) (*FF1, error) {
	if err := tinksubtle.ValidateAESKeySize(uint32(len(key))); err != nil {
		return nil, fmt.Errorf("fpe: invalid key size: %w", err)
	}
	return &FF1{key: key, tweak: tweak}, nil
}

// Tokenize encrypts plaintext's data characters in place, leaving format
// characters untouched.
func (f *FF1) Tokenize(plaintext string) (string, error) {
	formatMask, dataChars := SeparateFormatAndData(plaintext)
	if dataChars == "" {
		return plaintext, nil
	}

	alpha, err := alphabet.New(DetermineAlphabet(dataChars))
	if err != nil {
		return "", validate.Wrap("build alphabet", err)
	}

	tokenizedData, err := f.crypt(alpha, dataChars, true)
	if err != nil {
		return "", fmt.Errorf("fpe: tokenize: %w", err)
	}

	return ReconstructWithFormat(tokenizedData, formatMask, plaintext), nil
}

// Detokenize inverts Tokenize. originalPlaintext, if non-empty, pins the
// alphabet to the one Tokenize would have chosen for the original value;
// otherwise the alphabet is guessed from tokenized itself.
func (f *FF1) Detokenize(tokenized string, originalPlaintext string) (string, error) {
	formatMask, dataChars := SeparateFormatAndData(tokenized)
	if dataChars == "" {
		return tokenized, nil
	}

	var alphabetStr string
	if originalPlaintext != "" {
		_, originalDataChars := SeparateFormatAndData(originalPlaintext)
		alphabetStr = DetermineAlphabet(originalDataChars)
	} else {
		alphabetStr = DetermineAlphabet(dataChars)
	}

	alpha, err := alphabet.New(alphabetStr)
	if err != nil {
		return "", validate.Wrap("build alphabet", err)
	}

	plaintextData, err := f.crypt(alpha, dataChars, false)
	if err != nil {
		return "", fmt.Errorf("fpe: detokenize: %w", err)
	}

	return ReconstructWithFormat(plaintextData, formatMask, tokenized), nil
}

func (f *FF1) crypt(alpha *alphabet.Alphabet, dataChars string, encrypting bool) (string, error) {
	nums, err := alpha.ToNumerals(dataChars)
	if err != nil {
		return "", validate.Wrap("encode data characters", err)
	}

	minlen := validate.FF1MinLength(alpha.Radix())
	if err := validate.TextLength("check length", len(nums), minlen, 1<<16); err != nil {
		return "", err
	}

	engine, err := subtle.NewFF1(f.key, alpha.Radix())
	if err != nil {
		return "", validate.Wrap("build engine", err)
	}

	var out []uint16
	if encrypting {
		out, err = engine.Encrypt(f.tweak, nums)
	} else {
		out, err = engine.Decrypt(f.tweak, nums)
	}
	if err != nil {
		return "", err
	}

	return alpha.FromNumerals(out), nil
}

// Verify that *FF1 implements FPE.
var _ FPE = (*FF1)(nil)
