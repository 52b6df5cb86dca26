// Package ff1 implements NIST SP 800-38G FF1 format-preserving
// encryption over caller-supplied Unicode alphabets.
package ff1

import (
	"github.com/ff-go/fpe/alphabet"
	"github.com/ff-go/fpe/internal/validate"
	"github.com/ff-go/fpe/subtle"
)

// MaxPlaintextLength bounds the numeral-string length this implementation
// will process. NIST SP 800-38G does not pin a small practical maximum
// (the true bound comes from the PRF's 32-bit length fields), so this is
// a documented, generous cap rather than a silent truncation.
const MaxPlaintextLength = 1 << 16

// Encrypt maps text, a string over alphabet, to a ciphertext of the same
// length over the same alphabet, using the AES key keyHex (32, 48, or 64
// hex characters) and tweak tweakHex (any even-length hex string,
// including the empty string).
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
	tweak, err := validate.Tweak(tweakHex, -1)
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

	minlen := validate.FF1MinLength(a.Radix())
	if err := validate.TextLength("check length", len(numerals), minlen, MaxPlaintextLength); err != nil {
		return "", err
	}

	engine, err := subtle.NewFF1(key, a.Radix())
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
