// Package numeral implements the base-radix numeral/integer conversions
// shared by the FF1 and FF3-1 Feistel round loops: NUM_radix, STR_radix^m,
// and the byte/rune reversals FF3-1 needs on top of them.
package numeral

import "math/big"

// NumRadix returns NUM_radix(X): the big-endian (most significant numeral
// first) base-radix interpretation of X as a non-negative integer.
func NumRadix(x []uint16, radix int) *big.Int {
	result := new(big.Int)
	r := big.NewInt(int64(radix))
	for _, digit := range x {
		result.Mul(result, r)
		result.Add(result, big.NewInt(int64(digit)))
	}
	return result
}

// StrRadix returns STR_radix^m(val): the length-m base-radix representation
// of val, most significant numeral first, zero-padded. It panics if val does
// not fit in m numerals — callers must reduce modulo radix^m first, which
// every call site in the subtle FF1 and FF3-1 engines does.
func StrRadix(val *big.Int, radix, m int) []uint16 {
	out := make([]uint16, m)
	r := big.NewInt(int64(radix))
	rem := new(big.Int).Set(val)
	zero := new(big.Int)
	for i := m - 1; i >= 0; i-- {
		var digit big.Int
		rem.DivMod(rem, r, &digit)
		out[i] = uint16(digit.Int64())
	}
	if rem.Cmp(zero) != 0 {
		panic("numeral: value does not fit in requested length")
	}
	return out
}

// NumBytes interprets b as a big-endian unsigned integer.
func NumBytes(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// ReverseUint16 returns a reversed copy of x.
func ReverseUint16(x []uint16) []uint16 {
	out := make([]uint16, len(x))
	for i, v := range x {
		out[len(x)-1-i] = v
	}
	return out
}

// ReverseBytes returns a reversed copy of b.
func ReverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}
