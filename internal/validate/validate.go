// Package validate centralizes the input checks shared by ff1 and ff3_1:
// hex decoding, key/tweak length, and plaintext length bounds. Every
// failure is wrapped into a single exported error type so callers can
// either match the umbrella type or discriminate the underlying cause.
package validate

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math"
)

// Sentinel causes. Callers discriminate with errors.Is against these and
// the umbrella type with errors.As against *InvalidInputError.
var (
	ErrBadHex            = errors.New("validate: malformed hex string")
	ErrBadKeyLength      = errors.New("validate: key must decode to 16, 24, or 32 bytes")
	ErrBadTweakLength    = errors.New("validate: invalid tweak length")
	ErrSmallRadix        = errors.New("validate: radix must be at least 2")
	ErrLengthOutOfBounds = errors.New("validate: text length out of bounds for this radix")
)

// InvalidInputError is the single exported error class FPE operations
// return on any validation failure. Op names the failing step; Cause is
// one of the sentinels above (or an alphabet/hex package error wrapped
// through it).
type InvalidInputError struct {
	Op    string
	Cause error
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("fpe: %s: %v", e.Op, e.Cause)
}

func (e *InvalidInputError) Unwrap() error {
	return e.Cause
}

func invalid(op string, cause error) *InvalidInputError {
	return &InvalidInputError{Op: op, Cause: cause}
}

// Key decodes keyHex and checks it is a valid AES key length.
func Key(keyHex string) ([]byte, error) {
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, invalid("decode key", fmt.Errorf("%w: %v", ErrBadHex, err))
	}
	switch len(key) {
	case 16, 24, 32:
		return key, nil
	default:
		return nil, invalid("check key length", ErrBadKeyLength)
	}
}

// Tweak decodes tweakHex. If wantLen >= 0, the decoded tweak must have
// exactly that many bytes (FF3-1); a negative wantLen permits any length,
// including zero (FF1).
func Tweak(tweakHex string, wantLen int) ([]byte, error) {
	tweak, err := hex.DecodeString(tweakHex)
	if err != nil {
		return nil, invalid("decode tweak", fmt.Errorf("%w: %v", ErrBadHex, err))
	}
	if wantLen >= 0 && len(tweak) != wantLen {
		return nil, invalid("check tweak length", fmt.Errorf("%w: want %d bytes, got %d", ErrBadTweakLength, wantLen, len(tweak)))
	}
	return tweak, nil
}

// TextLength checks n against [minlen, maxlen], both inclusive.
func TextLength(op string, n, minlen, maxlen int) error {
	if n < minlen || n > maxlen {
		return invalid(op, fmt.Errorf("%w: length %d not in [%d, %d]", ErrLengthOutOfBounds, n, minlen, maxlen))
	}
	return nil
}

// Wrap tags an arbitrary error (e.g. from the alphabet package) as an
// InvalidInputError under op.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return invalid(op, err)
}

// FF1MinLength returns the NIST minimum domain-size length for radix:
// ceil(6 / log10(radix)), floored at 2.
func FF1MinLength(radix int) int {
	return minLenFromDomain(radix)
}

// FF3MinLength returns ceil(6 / log10(radix)), floored at 2 — the same
// formula as FF1MinLength (the floor only matters above radix 10^6).
func FF3MinLength(radix int) int {
	return minLenFromDomain(radix)
}

func minLenFromDomain(radix int) int {
	n := int(math.Ceil(6 / math.Log10(float64(radix))))
	if n < 2 {
		return 2
	}
	return n
}

// FF3MaxLength returns floor(192 / log2(radix)), the literal bound the
// boundary properties (e.g. 57 for radix 10) are pinned against.
func FF3MaxLength(radix int) int {
	return int(math.Floor(192 / math.Log2(float64(radix))))
}
