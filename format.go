package fpe

import "unicode"

// SeparateFormatAndData splits s into a format mask (true = format rune,
// false = data rune) and the data runes only, operating on Unicode
// scalars rather than bytes so multi-byte format characters (e.g. an
// em dash) round-trip correctly. Letters and digits (by Unicode
// category, not just ASCII) are data; everything else — hyphens, dots,
// colons, at signs, whitespace — is format.
func SeparateFormatAndData(s string) ([]bool, string) {
	runes := []rune(s)
	formatMask := make([]bool, len(runes))
	dataChars := make([]rune, 0, len(runes))

	for i, r := range runes {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			formatMask[i] = false
			dataChars = append(dataChars, r)
		} else {
			formatMask[i] = true
		}
	}

	return formatMask, string(dataChars)
}

// ReconstructWithFormat reinserts format runes from original at the
// positions formatMask marks, filling the remaining positions from data
// in order.
func ReconstructWithFormat(data string, formatMask []bool, original string) string {
	originalRunes := []rune(original)
	dataRunes := []rune(data)
	result := make([]rune, len(formatMask))
	dataIdx := 0

	for i := 0; i < len(formatMask); i++ {
		if formatMask[i] {
			result[i] = originalRunes[i]
		} else if dataIdx < len(dataRunes) {
			result[i] = dataRunes[dataIdx]
			dataIdx++
		} else {
			result[i] = '0'
		}
	}

	return string(result)
}

// DetermineAlphabet guesses an ASCII alphanumeric alphabet from
// plaintext's content, for callers of Tokenize/Detokenize that don't
// want to name an alphabet explicitly. Callers with a non-ASCII or
// otherwise custom character set should build their own alphabet and use
// the ff1/ff3_1 packages directly instead.
func DetermineAlphabet(plaintext string) string {
	hasLetters := false
	hasDigits := false

	for _, r := range plaintext {
		switch {
		case unicode.IsDigit(r):
			hasDigits = true
		case unicode.IsLetter(r):
			hasLetters = true
		}
	}

	alphabet := ""
	if hasDigits {
		alphabet += "0123456789"
	}
	if hasLetters {
		alphabet += "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	}
	if alphabet == "" {
		alphabet = "0123456789"
	}

	return alphabet
}
