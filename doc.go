// Package base65536 converts binary data into text which can be sent safely through "Unicode-clean" text
// systems without information being lost. It is analogous to Base64 but with a much larger character
// repertoire: every character carries 16 bits, i.e. two bytes per character, where Base64 manages 0.75.
//
// Every pair of input bytes is mapped onto one of 65536 characters. If the input has an odd length, the
// final byte is mapped onto one of 256 characters from a separate block. Decoding is the exact inverse.
//
//	text := base65536.Encode([]byte{0x00, 0x01, 0x02}) // "㔀ᔂ"
//	data, err := base65536.Decode(text)
//
// Lookup tables are built once during package initialization and are never modified afterwards, so all
// functions in this package are safe for concurrent use.
package base65536
