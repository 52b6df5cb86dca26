// Package ff3_1 is the public, four-argument entry point for FF3-1
// encryption: Encrypt/Decrypt take a hex-encoded key, a hex-encoded
// 7-byte tweak, an alphabet string, and the text to transform, and
// return a string of the same length over the same alphabet.
package ff3_1
