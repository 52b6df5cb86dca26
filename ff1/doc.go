// Package ff1 is the public, four-argument entry point for FF1
// encryption: Encrypt/Decrypt take a hex-encoded key, a hex-encoded
// tweak, an alphabet string, and the text to transform, and return a
// string of the same length over the same alphabet.
//
// For repeated calls against the same key and alphabet, see the cipher
// package, which amortizes validation and AES key scheduling across
// calls.
package ff1
