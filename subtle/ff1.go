// Package subtle implements the raw NIST SP 800-38G FF1 and SP 800-38G
// Rev. 1 FF3-1 Feistel round loops over numeral slices. It has no notion
// of alphabets, hex strings, or the umbrella error type — those live in
// the ff1, ff3_1, and alphabet packages. Callers that don't need a
// pre-validated, repeatedly-used cipher object should use ff1/ff3_1
// instead of this package directly.
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

const ff1Rounds = 10

// ErrRadixTooSmall is returned when a radix below 2 is supplied to
// NewFF1 or NewFF3_1.
var ErrRadixTooSmall = errors.New("subtle: radix must be at least 2")

// FF1 is a validated FF1 engine bound to one key and radix; it is safe
// for concurrent use by multiple goroutines since Encrypt/Decrypt never
// mutate its fields.
type FF1 struct {
	block cipher.Block
	radix int
}

// NewFF1 validates key (must be 16, 24, or 32 bytes) and radix (must be
// >= 2) and builds the AES block cipher used by every round.
func NewFF1(key []byte, radix int) (*FF1, error) {
	if radix < 2 {
		return nil, ErrRadixTooSmall
	}
	if err := tinksubtle.ValidateAESKeySize(uint32(len(key))); err != nil {
		return nil, fmt.Errorf("subtle: invalid FF1 key size: %w", err)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("subtle: building AES block cipher: %w", err)
	}
	return &FF1{block: block, radix: radix}, nil
}

// Encrypt runs the 10-round FF1 Feistel construction forward over x, a
// numeral sequence in [0, radix), using tweak as the round-function
// tweak. Callers must have already validated len(x) against the FF1
// length bounds for this radix.
func (f *FF1) Encrypt(tweak []byte, x []uint16) ([]uint16, error) {
	return f.crypt(tweak, x, true)
}

// Decrypt runs the FF1 Feistel construction in reverse, inverting
// Encrypt.
func (f *FF1) Decrypt(tweak []byte, x []uint16) ([]uint16, error) {
	return f.crypt(tweak, x, false)
}

func (f *FF1) crypt(tweak []byte, x []uint16, encrypting bool) ([]uint16, error) {
	n := len(x)
	u := n / 2
	v := n - u
	radix := f.radix
	radixBig := big.NewInt(int64(radix))

	a := append([]uint16(nil), x[:u]...)
	b := append([]uint16(nil), x[u:]...)

	t := len(tweak)
	bBytes := byteLen(ceilLog2Pow(radix, v))
	d := 4*ceilDiv(bBytes, 4) + 4

	p := f.prefixBlock(u, n, t)

	order := make([]int, ff1Rounds)
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
		if i%2 == 0 {
			m = u
		} else {
			m = v
		}

		var numSrc []uint16
		if encrypting {
			numSrc = b
		} else {
			numSrc = a
		}

		q := buildQ(tweak, i, numeral.NumRadix(numSrc, radix), bBytes)

		r, err := f.cbcMAC(append(append([]byte(nil), p...), q...))
		if err != nil {
			return nil, err
		}

		s := f.expand(r, d)
		y := numeral.NumBytes(s)

		modulus := new(big.Int).Exp(radixBig, big.NewInt(int64(m)), nil)

		var addSrc []uint16
		if encrypting {
			addSrc = a
		} else {
			addSrc = b
		}

		c := new(big.Int)
		if encrypting {
			c.Add(numeral.NumRadix(addSrc, radix), y)
		} else {
			c.Sub(numeral.NumRadix(addSrc, radix), y)
		}
		c.Mod(c, modulus)

		cDigits := numeral.StrRadix(c, radix, m)

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

func (f *FF1) prefixBlock(u, n, t int) []byte {
	p := make([]byte, 16)
	p[0] = 0x01
	p[1] = 0x02
	p[2] = 0x01
	p[3] = byte(f.radix >> 16)
	p[4] = byte(f.radix >> 8)
	p[5] = byte(f.radix)
	p[6] = 0x0a
	p[7] = byte(u % 256)
	p[8] = byte(n >> 24)
	p[9] = byte(n >> 16)
	p[10] = byte(n >> 8)
	p[11] = byte(n)
	p[12] = byte(t >> 24)
	p[13] = byte(t >> 16)
	p[14] = byte(t >> 8)
	p[15] = byte(t)
	return p
}

func buildQ(tweak []byte, round int, numB *big.Int, bBytes int) []byte {
	t := len(tweak)
	padLen := mod(-t-bBytes-1, 16)
	q := make([]byte, 0, t+padLen+1+bBytes)
	q = append(q, tweak...)
	q = append(q, make([]byte, padLen)...)
	q = append(q, byte(round))

	numBBytes := numB.Bytes()
	padded := make([]byte, bBytes)
	copy(padded[bBytes-len(numBBytes):], numBBytes)
	q = append(q, padded...)
	return q
}

// cbcMAC computes AES-CBC-MAC over msg (which must be a multiple of the
// AES block size) with a zero IV, returning the last ciphertext block.
func (f *FF1) cbcMAC(msg []byte) ([]byte, error) {
	if len(msg)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("subtle: CBC-MAC input not block aligned: %d bytes", len(msg))
	}
	iv := make([]byte, aes.BlockSize)
	mode := cipher.NewCBCEncrypter(f.block, iv)
	out := make([]byte, len(msg))
	mode.CryptBlocks(out, msg)
	return out[len(out)-aes.BlockSize:], nil
}

// expand produces d bytes of pseudorandom output from r using the FF1
// S-generation loop: S = R || AES(R xor <1>) || AES(R xor <2>) || ...
func (f *FF1) expand(r []byte, d int) []byte {
	s := append([]byte(nil), r...)
	for j := int64(1); len(s) < d; j++ {
		block := xorCounter(r, j)
		enc := make([]byte, aes.BlockSize)
		f.block.Encrypt(enc, block)
		s = append(s, enc...)
	}
	return s[:d]
}

func xorCounter(r []byte, j int64) []byte {
	ctr := make([]byte, aes.BlockSize)
	for i := 0; i < 8; i++ {
		ctr[aes.BlockSize-1-i] = byte(j >> (8 * i))
	}
	out := append([]byte(nil), r...)
	for i := range out {
		out[i] ^= ctr[i]
	}
	return out
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// ceilLog2Pow returns ceil(v * log2(radix)), the bit length needed for a
// v-numeral base-radix value, computed exactly via big.Int rather than
// floating point.
func ceilLog2Pow(radix, v int) int {
	val := new(big.Int).Exp(big.NewInt(int64(radix)), big.NewInt(int64(v)), nil)
	less := new(big.Int).Sub(val, big.NewInt(1))
	return less.BitLen()
}

func byteLen(bits int) int {
	return ceilDiv(bits, 8)
}
