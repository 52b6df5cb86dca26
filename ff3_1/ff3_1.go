// Package ff3_1 implements NIST SP 800-38G Rev. 1 FF3-1 format-preserving
// encryption over caller-supplied Unicode alphabets.
package ff3_1

import (
	"github.com/ff-go/fpe/alphabet"
	"github.com/ff-go/fpe/internal/validate"
	"github.com/ff-go/fpe/subtle"
)

// TweakLength is the required tweak length for FF3-1, in bytes.
const TweakLength = 7

// Encrypt maps text, a string over alphabet, to a ciphertext of the same
// length over the same alphabet, using the AES key keyHex (32, 48, or 64
// hex characters) and the 7-byte tweak tweakHex (exactly 14 hex
// characters).
func Encrypt(keyHex, tweakHex, alphabetStr, text string) (string, error) {
	return crypt(keyHex, tweakHex, alphabetStr, text, true)
}

// Decrypt inverts Encrypt.
func Decrypt(keyHex, tweakHex, alphabetStr, text string) (string, error) {
	return crypt(keyHex, tweakHex, alphabetStr, text, false)
}

func crypt(keyHex, tweakHex, alphabetStr, text string, encrypting bool) (string, error) {
	key, err := validate.Key(keyHex)
	if err != nil {
		return "", err
	}
	tweak, err := validate.Tweak(tweakHex, TweakLength)
	if err != nil {
		return "", err
	}
	a, err := alphabet.New(alphabetStr)
	if err != nil {
		return "", validate.Wrap("build alphabet", err)
	}

	numerals, err := a.ToNumerals(text)
	if err != nil {
		return "", validate.Wrap("encode text", err)
	}

	minlen := validate.FF3MinLength(a.Radix())
	maxlen := validate.FF3MaxLength(a.Radix())
	if err := validate.TextLength("check length", len(numerals), minlen, maxlen); err != nil {
		return "", err
	}

	engine, err := subtle.NewFF3_1(key, a.Radix())
	if err != nil {
		return "", validate.Wrap("build engine", err)
	}

	var out []uint16
	if encrypting {
		out, err = engine.Encrypt(tweak, numerals)
	} else {
		out, err = engine.Decrypt(tweak, numerals)
	}
	if err != nil {
		return "", err
	}

	return a.FromNumerals(out), nil
}
