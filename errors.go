package base65536

import (
	"fmt"
	"github.com/pkg/errors"
)

var (
	// ErrUnrecognizedCharacter is matched (with errors.Is) by every error returned when Decode finds a
	// character which is not part of the encoding
	ErrUnrecognizedCharacter = errors.New("unrecognized base65536 character")

	// ErrInvalidTableEntry is matched by errors reporting a lookup entry with an unknown bit width. It means
	// the lookup tables are broken; it is never caused by the input.
	ErrInvalidTableEntry = errors.New("invalid base65536 table entry")
)

// UnrecognizedCharacterError is returned by Decode when the input contains a character outside the
// base65536 repertoire.
type UnrecognizedCharacterError struct {
	// Char is the offending character. Invalid UTF-8 is reported as utf8.RuneError.
	Char rune
	// Offset is the byte offset of Char within the decoded string
	Offset int
}

func (e *UnrecognizedCharacterError) Error() string {
	return fmt.Sprintf("unrecognized base65536 character %q (%U) at offset %v", e.Char, e.Char, e.Offset)
}

func (e *UnrecognizedCharacterError) Is(target error) bool {
	return target == ErrUnrecognizedCharacter
}

// InvalidTableEntryError signals a lookup table entry which is neither 16 nor 8 bits wide.
type InvalidTableEntryError struct {
	Char rune
	Bits int
}

func (e *InvalidTableEntryError) Error() string {
	return fmt.Sprintf("invalid code point length %v for %U", e.Bits, e.Char)
}

func (e *InvalidTableEntryError) Is(target error) bool {
	return target == ErrInvalidTableEntry
}
