package base65536

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_TablesBijective(t *testing.T) {
	tbl, err := buildTables(pairStrings)
	require.NoError(t, err)
	require.Len(t, tbl.decode, (1<<BitsPerChar)+(1<<BitsPerByte))

	for z, chr := range tbl.encode16 {
		e, ok := tbl.decode[chr]
		require.True(t, ok, "Character %U for value %v missing in reverse table", chr, z)
		require.Equal(t, uint8(BitsPerChar), e.bits)
		require.Equal(t, uint16(z), e.value)
	}
	for z, chr := range tbl.encode8 {
		e, ok := tbl.decode[chr]
		require.True(t, ok, "Character %U for value %v missing in reverse table", chr, z)
		require.Equal(t, uint8(BitsPerByte), e.bits)
		require.Equal(t, uint16(z), e.value)
	}
}

func Test_TablesByteSwap(t *testing.T) {
	// The n-th code point of the 16-bit block is stored under the byte-swapped n
	require.Equal(t, rune(0x3400), lookup.encode16[0x0000])
	require.Equal(t, rune(0x3401), lookup.encode16[0x0100])
	require.Equal(t, rune(0x3500), lookup.encode16[0x0001])
	require.Equal(t, rune(0x285ff), lookup.encode16[0xffff])

	// ...while the 8-bit block is not swapped
	require.Equal(t, rune(0x1500), lookup.encode8[0x00])
	require.Equal(t, rune(0x1502), lookup.encode8[0x02])
	require.Equal(t, rune(0x15ff), lookup.encode8[0xff])
}

func Test_TablesSameAfterSetup(t *testing.T) {
	before := lookup
	setupLookup()
	require.True(t, before == lookup, "Lookup tables were rebuilt")
}

func Test_BuildTablesMalformed(t *testing.T) {
	tests := map[string]struct {
		descriptor []string
		message    string
	}{
		"one tier":        {[]string{pairStrings[0]}, "expected 2 tiers, got 1"},
		"three tiers":     {[]string{pairStrings[0], pairStrings[1], pairStrings[1]}, "expected 2 tiers, got 3"},
		"odd endpoints":   {[]string{pairStrings[0], "ᔀᗿᘀ"}, "odd number of range endpoints"},
		"reversed range":  {[]string{pairStrings[0], "ᗿᔀ"}, "is reversed"},
		"too short":       {[]string{pairStrings[0], "ᔀᗾ"}, "tier 1: expected 256 code points, got 255"},
		"too long":        {[]string{pairStrings[0], "ᔀᘀ"}, "tier 1: more than 256 code points"},
		"duplicate":       {[]string{pairStrings[0], "ᔀᕿᔀᕿ"}, "U+1500 assigned twice"},
		"across tiers":    {[]string{pairStrings[0], "㐀㓿"}, "U+3400 assigned twice"},
		"not utf-8":       {[]string{pairStrings[0], "\xff\xfe"}, "not valid UTF-8"},
		"short main tier": {[]string{"㐀䳿", pairStrings[1]}, "tier 0: expected 65536 code points, got 6400"},
	}

	for name, test := range tests {
		_, err := buildTables(test.descriptor)
		require.Errorf(t, err, "Expected an error for descriptor %q", name)
		require.Containsf(t, err.Error(), test.message, "Wrong error for descriptor %q", name)
	}
}
