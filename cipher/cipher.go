// Package cipher provides a reusable FPE handle: Cipher pre-validates a
// key, alphabet, and variant once and amortizes AES key scheduling and
// alphabet construction across repeated Encrypt/Decrypt calls against
// different tweaks, the shape repeated per-record tokenization needs.
//
// It runs the same validation steps and the same subtle FF1/FF3-1 engines
// that ff1/ff3_1 use (it calls the engines directly, not the ff1/ff3_1
// functions), and is safe for concurrent use by multiple goroutines.
package cipher

import (
	"fmt"

	"github.com/ff-go/fpe/alphabet"
	"github.com/ff-go/fpe/internal/validate"
	"github.com/ff-go/fpe/subtle"
)

// Variant selects the FPE construction a Cipher uses.
type Variant int

const (
	// FF1 selects NIST SP 800-38G FF1.
	FF1 Variant = iota
	// FF3_1 selects NIST SP 800-38G Rev. 1 FF3-1.
	FF3_1
)

// Option configures a Cipher at construction time.
type Option func(*options)

type options struct {
	maxFF1Length int
}

func defaultOptions() options {
	return options{maxFF1Length: 1 << 16}
}

// WithMaxFF1Length overrides the practical maximum plaintext length FF1
// will accept (see ff1.MaxPlaintextLength for the default and rationale).
// It has no effect on an FF3_1-variant Cipher.
func WithMaxFF1Length(n int) Option {
	return func(o *options) {
		o.maxFF1Length = n
	}
}

// Cipher is a validated, reusable FPE handle bound to one variant, key,
// and alphabet.
type Cipher struct {
	variant  Variant
	alphabet *alphabet.Alphabet
	minlen   int
	maxlen   int

	ff1 *subtle.FF1
	ff3 *subtle.FF3_1
}

// New validates keyHex and alphabetStr once and builds a Cipher for the
// given variant.
func New(variant Variant, keyHex, alphabetStr string, opts ...Option) (*Cipher, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	key, err := validate.Key(keyHex)
	if err != nil {
		return nil, err
	}
	a, err := alphabet.New(alphabetStr)
	if err != nil {
		return nil, validate.Wrap("build alphabet", err)
	}

	c := &Cipher{variant: variant, alphabet: a}

	switch variant {
	case FF1:
		c.minlen = validate.FF1MinLength(a.Radix())
		c.maxlen = o.maxFF1Length
		c.ff1, err = subtle.NewFF1(key, a.Radix())
	case FF3_1:
		c.minlen = validate.FF3MinLength(a.Radix())
		c.maxlen = validate.FF3MaxLength(a.Radix())
		c.ff3, err = subtle.NewFF3_1(key, a.Radix())
	default:
		return nil, fmt.Errorf("cipher: unknown variant %d", variant)
	}
	if err != nil {
		return nil, validate.Wrap("build engine", err)
	}
	return c, nil
}

// Encrypt maps text to a ciphertext of the same length over the
// Cipher's alphabet, using tweakHex for this call only.
func (c *Cipher) Encrypt(tweakHex, text string) (string, error) {
	return c.crypt(tweakHex, text, true)
}

// Decrypt inverts Encrypt.
func (c *Cipher) Decrypt(tweakHex, text string) (string, error) {
	return c.crypt(tweakHex, text, false)
}

func (c *Cipher) crypt(tweakHex, text string, encrypting bool) (string, error) {
	wantTweakLen := -1
	if c.variant == FF3_1 {
		wantTweakLen = 7
	}
	tweak, err := validate.Tweak(tweakHex, wantTweakLen)
	if err != nil {
		return "", err
	}

	numerals, err := c.alphabet.ToNumerals(text)
	if err != nil {
		return "", validate.Wrap("encode text", err)
	}
	if err := validate.TextLength("check length", len(numerals), c.minlen, c.maxlen); err != nil {
		return "", err
	}

	var out []uint16
	switch c.variant {
	case FF1:
		if encrypting {
			out, err = c.ff1.Encrypt(tweak, numerals)
		} else {
			out, err = c.ff1.Decrypt(tweak, numerals)
		}
	case FF3_1:
		if encrypting {
			out, err = c.ff3.Encrypt(tweak, numerals)
		} else {
			out, err = c.ff3.Decrypt(tweak, numerals)
		}
	}
	if err != nil {
		return "", err
	}
	return c.alphabet.FromNumerals(out), nil
}
