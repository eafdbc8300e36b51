package base65536

import (
	"github.com/pkg/errors"
	"strings"
	"unicode/utf8"
)

// Encode returns the base65536 encoding of src. Every two bytes (most significant first) become one
// character. If the length of src is odd, the last byte gets encoded into a character from the 8-bit block.
func Encode(src []byte) string {
	l := len(src)
	if l == 0 {
		return ""
	}

	var sb strings.Builder
	// Most characters are 3 bytes long in UTF-8, the rest are 4
	sb.Grow(EncodedLen(l) * utf8.UTFMax)

	i := 0
	for ; i+1 < l; i += 2 {
		z := uint16(src[i])<<8 | uint16(src[i+1])
		sb.WriteRune(lookup.encode16[z])
	}

	// Final odd byte
	if i < l {
		sb.WriteRune(lookup.encode8[src[i]])
	}

	return sb.String()
}

// EncodeString encodes the UTF-8 representation of s. It's the same as calling Encode([]byte(s)).
func EncodeString(s string) string {
	return Encode([]byte(s))
}

// EncodedLen returns the number of characters (not bytes!) Encode produces for an input of n bytes.
func EncodedLen(n int) int {
	return (n + 1) / 2
}

// Decode returns the bytes represented by the base65536 string s. Decoding stops at the first character
// which is not part of the encoding and returns an *UnrecognizedCharacterError; no partial output is
// returned in that case.
//
// Decode is driven by characters, not positions: a character from the 8-bit block is accepted anywhere in
// the input, even though Encode only ever produces one at the very end.
func Decode(s string) ([]byte, error) {
	dst := make([]byte, 0, len(s)/3*2+1)

	for offset, chr := range s {
		e, ok := lookup.decode[chr]
		if !ok {
			return nil, errors.WithStack(&UnrecognizedCharacterError{Char: chr, Offset: offset})
		}
		switch e.bits {
		case BitsPerChar:
			dst = append(dst, byte(e.value>>8), byte(e.value&0xFF))
		case BitsPerByte:
			dst = append(dst, byte(e.value))
		default:
			return nil, errors.WithStack(&InvalidTableEntryError{Char: chr, Bits: int(e.bits)})
		}
	}

	return dst, nil
}

// DecodedLen returns the number of bytes Decode returns for s, provided s is valid. Characters which
// are not part of the encoding are not counted.
func DecodedLen(s string) int {
	n := 0
	for _, chr := range s {
		if e, ok := lookup.decode[chr]; ok {
			n += int(e.bits) / 8
		}
	}
	return n
}

// Lookup returns the bit width of the block r belongs to (BitsPerChar or BitsPerByte) and the value it
// decodes to. ok is false if r is not a base65536 character.
func Lookup(r rune) (bits int, value int, ok bool) {
	e, ok := lookup.decode[r]
	if !ok {
		return 0, 0, false
	}
	return int(e.bits), int(e.value), true
}
