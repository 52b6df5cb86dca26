package subtle

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"
	"math/big"

	tinksubtle "github.com/google/tink/go/subtle"

	"github.com/ff-go/fpe/internal/numeral"
)

const ff3_1Rounds = 8

// ErrBadTweakLength is returned when a tweak other than 7 bytes is
// supplied to NewFF3_1's Encrypt/Decrypt.
var ErrBadTweakLength = errors.New("subtle: FF3-1 tweak must be 7 bytes")

// FF3_1 is a validated FF3-1 engine bound to one key and radix. Per
// SP 800-38G Rev. 1, the AES block cipher is built from the byte-reversed
// key, not the key as supplied.
type FF3_1 struct {
	block cipher.Block
	radix int
}

// NewFF3_1 validates key (16, 24, or 32 bytes) and radix (>= 2) and
// builds the AES block cipher from the byte-reversed key.
func NewFF3_1(key []byte, radix int) (*FF3_1, error) {
	if radix < 2 {
		return nil, ErrRadixTooSmall
	}
	if err := tinksubtle.ValidateAESKeySize(uint32(len(key))); err != nil {
		return nil, fmt.Errorf("subtle: invalid FF3-1 key size: %w", err)
	}
	block, err := aes.NewCipher(numeral.ReverseBytes(key))
	if err != nil {
		return nil, fmt.Errorf("subtle: building AES block cipher: %w", err)
	}
	return &FF3_1{block: block, radix: radix}, nil
}

// Encrypt runs the 8-round FF3-1 Feistel construction forward over x, a
// numeral sequence in [0, radix). tweak must be exactly 7 bytes.
func (f *FF3_1) Encrypt(tweak []byte, x []uint16) ([]uint16, error) {
	return f.crypt(tweak, x, true)
}

// Decrypt runs the FF3-1 Feistel construction in reverse, inverting
// Encrypt.
func (f *FF3_1) Decrypt(tweak []byte, x []uint16) ([]uint16, error) {
	return f.crypt(tweak, x, false)
}

func (f *FF3_1) crypt(tweak []byte, x []uint16, encrypting bool) ([]uint16, error) {
	if len(tweak) != 7 {
		return nil, ErrBadTweakLength
	}
	n := len(x)
	u := (n + 1) / 2
	v := n - u
	radix := f.radix
	radixBig := big.NewInt(int64(radix))

	a := append([]uint16(nil), x[:u]...)
	b := append([]uint16(nil), x[u:]...)

	tl, tr := splitTweak(tweak)

	order := make([]int, ff3_1Rounds)
	for i := range order {
		order[i] = i
	}
	if !encrypting {
		for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
			order[i], order[j] = order[j], order[i]
		}
	}

	for _, i := range order {
		var m int
		var w []byte
		if i%2 == 0 {
			m = u
			w = tr
		} else {
			m = v
			w = tl
		}

		var pSrc []uint16
		if encrypting {
			pSrc = b
		} else {
			pSrc = a
		}

		p := make([]byte, 16)
		copy(p[:4], w)
		p[3] ^= byte(i)

		numP := numeral.NumRadix(numeral.ReverseUint16(pSrc), radix)
		// At the top of the accepted length range (e.g. a 29-numeral half
		// at radix 10) the value can exceed 96 bits; only its low 12 bytes
		// enter P.
		pNumBytes := numP.Bytes()
		if len(pNumBytes) > 12 {
			pNumBytes = pNumBytes[len(pNumBytes)-12:]
		}
		copy(p[16-len(pNumBytes):], pNumBytes)

		revP := numeral.ReverseBytes(p)
		y := make([]byte, aes.BlockSize)
		f.block.Encrypt(y, revP)
		y = numeral.ReverseBytes(y)

		yNum := numeral.NumBytes(y)

		var addSrc []uint16
		if encrypting {
			addSrc = a
		} else {
			addSrc = b
		}

		modulus := new(big.Int).Exp(radixBig, big.NewInt(int64(m)), nil)
		c := new(big.Int)
		if encrypting {
			c.Add(numeral.NumRadix(numeral.ReverseUint16(addSrc), radix), yNum)
		} else {
			c.Sub(numeral.NumRadix(numeral.ReverseUint16(addSrc), radix), yNum)
		}
		c.Mod(c, modulus)

		cDigits := numeral.ReverseUint16(numeral.StrRadix(c, radix, m))

		if encrypting {
			a, b = b, cDigits
		} else {
			b, a = a, cDigits
		}
	}

	out := make([]uint16, 0, n)
	out = append(out, a...)
	out = append(out, b...)
	return out, nil
}

// splitTweak expands the 56-bit (7-byte) tweak into its two 32-bit
// halves per SP 800-38G Rev. 1: TL gets the tweak's high 28 bits plus a
// zero nibble, TR gets the low 28 bits plus a zero nibble.
func splitTweak(tweak []byte) (tl, tr []byte) {
	tl = []byte{tweak[0], tweak[1], tweak[2], tweak[3] & 0xF0}
	tr = []byte{tweak[4], tweak[5], tweak[6], (tweak[3] & 0x0F) << 4}
	return tl, tr
}
