package base65536

import (
	"github.com/pkg/errors"
	"sync"
	"unicode/utf8"
)

const (
	// BitsPerChar is the number of payload bits carried by one character of the main block
	BitsPerChar = 16
	// BitsPerByte is the number of payload bits carried by the character of a trailing odd byte
	BitsPerByte = 8
)

// pairStrings is the compressed representation of the character repertoire. Every string is a tier:
// tier 0 holds the 16-bit characters, tier 1 the 8-bit ones. Each string is a list of (first, last) rune
// pairs, each pair being an inclusive range of code points.
var pairStrings = []string{
	"\u3400\u4cff" +
		"\u4e00\u9eff" +
		"\ua100\ua3ff" +
		"\ua500\ua5ff" +
		"\U00010600\U000106ff" +
		"\U00012000\U000122ff" +
		"\U00013000\U000133ff" +
		"\U00014400\U000145ff" +
		"\U00016800\U000169ff" +
		"\U00020000\U000285ff",
	"\u1500\u15ff",
}

// entry is the value of the reverse lookup table
type entry struct {
	bits  uint8
	value uint16
}

// tables holds the forward (value -> rune) and the reverse (rune -> value) lookup.
type tables struct {
	encode16 [1 << BitsPerChar]rune
	encode8  [1 << BitsPerByte]rune
	decode   map[rune]entry
}

var lookup *tables
var lookupInitialized sync.Once

func init() {
	setupLookup()
}

func setupLookup() {
	lookupInitialized.Do(func() {
		t, err := buildTables(pairStrings)
		if err != nil {
			// The descriptor is a constant. If it's broken, there's nothing sensible we could encode with.
			panic(err)
		}
		lookup = t
	})
}

// buildTables expands the pair strings into the lookup tables. The descriptor is verified on the way: every
// tier must cover exactly 2^bits code points and no code point may appear twice.
func buildTables(pairStrings []string) (*tables, error) {
	if len(pairStrings) != 2 {
		return nil, errors.Errorf("expected 2 tiers, got %v", len(pairStrings))
	}

	t := &tables{
		decode: make(map[rune]entry, (1<<BitsPerChar)+(1<<BitsPerByte)),
	}

	for r, pairString := range pairStrings {
		numZBits := BitsPerChar - BitsPerByte*r // 0 -> 16, 1 -> 8
		if !utf8.ValidString(pairString) {
			return nil, errors.Errorf("tier %v: range description is not valid UTF-8", r)
		}
		runes := []rune(pairString)
		if len(runes)%2 != 0 {
			return nil, errors.Errorf("tier %v: odd number of range endpoints (%v)", r, len(runes))
		}

		z2 := 0
		for i := 0; i < len(runes); i += 2 {
			first, last := runes[i], runes[i+1]
			if first > last {
				return nil, errors.Errorf("tier %v: range %U-%U is reversed", r, first, last)
			}
			for codePoint := first; codePoint <= last; codePoint++ {
				if z2 >= 1<<numZBits {
					return nil, errors.Errorf("tier %v: more than %v code points", r, 1<<numZBits)
				}
				if _, ok := t.decode[codePoint]; ok {
					return nil, errors.Errorf("tier %v: code point %U assigned twice", r, codePoint)
				}

				// SPECIAL CASE: the 16-bit tier is keyed with the bytes of the counter swapped. The encoding
				// was originally constructed taking the bytes in the wrong order and existing data depends on it.
				z := z2
				if numZBits == BitsPerChar {
					z = 256*(z2%256) + (z2 >> 8)
					t.encode16[z] = codePoint
				} else {
					t.encode8[z] = codePoint
				}
				t.decode[codePoint] = entry{bits: uint8(numZBits), value: uint16(z)}
				z2++
			}
		}

		if z2 != 1<<numZBits {
			return nil, errors.Errorf("tier %v: expected %v code points, got %v", r, 1<<numZBits, z2)
		}
	}

	return t, nil
}
