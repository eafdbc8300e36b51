package base65536

import (
	"bytes"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"math/rand"
	"testing"
	"unicode/utf8"
)

var encoderTest = []byte("\000\000\000\000\377\377\377\377\125\125\125\125\252\252\252\252" +
	"\201\143\310\322\307\174\262\027\137\117\316\311\111\055\122\041" +
	"\141\251\161\040\045\263\006\163\346\330\104\060\171\120\127\277")

func Test_RoundTripAscii(t *testing.T) {
	ascii := "Hello, father, wow, cool!"
	encoded := Encode([]byte(ascii))
	require.Equal(t, "\u9a48\ua36c\u616f\u9b20\U00013261\u9a68\u6172\U00014520\U0001456f\u552c\U00012063\ua36f\u1521", encoded)

	decoded, err := Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, ascii, string(decoded))
}

func Test_KnownValueEncode(t *testing.T) {
	require.Equal(t, "㔀ᔂ", Encode([]byte{0x00, 0x01, 0x02}))
}

func Test_KnownValueDecode(t *testing.T) {
	decoded, err := Decode("㔀ᔂ")
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x01, 0x02}, decoded)
}

func Test_KnownValues(t *testing.T) {
	tests := []struct {
		data    []byte
		encoded string
	}{
		{[]byte{0x00, 0x00}, "㐀"},
		{[]byte{0x01, 0x00}, "㐁"},
		{[]byte{0xff, 0xff}, "\U000285ff"},
		{[]byte{0x00}, "ᔀ"},
		{[]byte{0xff}, "ᗿ"},
		{[]byte{0, 1, 2, 3, 4, 5, 6, 7}, "㔀㜂㤄㬆"},
	}
	for _, test := range tests {
		require.Equal(t, test.encoded, Encode(test.data), "Invalid encoding of %v", test.data)

		decoded, err := Decode(test.encoded)
		require.NoError(t, err)
		require.Equal(t, test.data, decoded)
	}
}

func Test_EmptyInput(t *testing.T) {
	require.Equal(t, "", Encode([]byte{}))
	require.Equal(t, "", Encode(nil))

	decoded, err := Decode("")
	require.NoError(t, err)
	require.NotNil(t, decoded)
	require.Len(t, decoded, 0)
}

func Test_EncodeString(t *testing.T) {
	str := "Drink mal ein Jägermeister ☃"
	require.Equal(t, Encode([]byte(str)), EncodeString(str))

	decoded, err := Decode(EncodeString(str))
	require.NoError(t, err)
	require.Equal(t, str, string(decoded))
}

func Test_RoundTrip(t *testing.T) {
	decoded, err := Decode(Encode(encoderTest))
	require.NoError(t, err)
	require.Equal(t, encoderTest, decoded)

	// Every length from 0 to 257, to hit both the even and the odd branch
	rnd := rand.New(rand.NewSource(65536))
	for l := 0; l < 258; l++ {
		data := make([]byte, l)
		rnd.Read(data)

		encoded := Encode(data)
		require.Equal(t, (l+1)/2, utf8.RuneCountInString(encoded), "Invalid length for input of %v bytes", l)
		require.Equal(t, EncodedLen(l), utf8.RuneCountInString(encoded))
		require.Equal(t, l, DecodedLen(encoded))

		decoded, err := Decode(encoded)
		require.NoError(t, err)
		require.True(t, bytes.Equal(data, decoded), "Round trip failed for input of %v bytes", l)
	}
}

func Test_AllPairs(t *testing.T) {
	data := make([]byte, 0, 2*65536)
	for z := 0; z < 65536; z++ {
		data = append(data, byte(z>>8), byte(z))
	}

	encoded := Encode(data)
	seen := make(map[rune]bool, 65536)
	for _, chr := range encoded {
		require.False(t, seen[chr], "Character %U produced twice", chr)
		seen[chr] = true
	}
	require.Len(t, seen, 65536)

	decoded, err := Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, data, decoded)
}

func Test_Deterministic(t *testing.T) {
	first := Encode(encoderTest)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, Encode(encoderTest))
	}
}

func Test_RoundTripStrings(t *testing.T) {
	// Any string made of known characters survives decode + encode, as long as the 8-bit character is last
	for _, str := range []string{"", "㐀", "\U000285ffᔀ", "ꄀꗿ\U00016800ᗿ"} {
		decoded, err := Decode(str)
		require.NoError(t, err)
		require.Equal(t, str, Encode(decoded))
	}
}

func Test_DecodePermissive(t *testing.T) {
	// 8-bit characters are accepted in the middle of the input
	decoded, err := Decode("ᔁ㐀ᔂ")
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x00, 0x00, 0x02}, decoded)
}

func Test_DecodeInvalidCharacter(t *testing.T) {
	decoded, err := Decode("notbase65536")
	require.Error(t, err)
	require.Nil(t, decoded)
	require.True(t, errors.Is(err, ErrUnrecognizedCharacter))
	require.False(t, errors.Is(err, ErrInvalidTableEntry))
	require.Contains(t, err.Error(), "unrecognized base65536 character")

	var uce *UnrecognizedCharacterError
	require.True(t, errors.As(err, &uce))
	require.Equal(t, 'n', uce.Char)
	require.Equal(t, 0, uce.Offset)
}

func Test_DecodeInvalidCharacterOffset(t *testing.T) {
	_, err := Decode("㐀㐁!㐂")

	var uce *UnrecognizedCharacterError
	require.True(t, errors.As(err, &uce))
	require.Equal(t, '!', uce.Char)
	require.Equal(t, 6, uce.Offset)
}

func Test_DecodeInvalidUtf8(t *testing.T) {
	_, err := Decode("㐀\xff")

	var uce *UnrecognizedCharacterError
	require.True(t, errors.As(err, &uce))
	require.Equal(t, utf8.RuneError, uce.Char)
	require.Equal(t, 3, uce.Offset)
}

func Test_InvalidTableEntryError(t *testing.T) {
	var err error = &InvalidTableEntryError{Char: 'a', Bits: 12}
	require.True(t, errors.Is(err, ErrInvalidTableEntry))
	require.False(t, errors.Is(err, ErrUnrecognizedCharacter))
	require.Contains(t, err.Error(), "12")
}

func Test_Lookup(t *testing.T) {
	bits, value, ok := Lookup('㔀')
	require.True(t, ok)
	require.Equal(t, BitsPerChar, bits)
	require.Equal(t, 0x0001, value)

	bits, value, ok = Lookup('ᔂ')
	require.True(t, ok)
	require.Equal(t, BitsPerByte, bits)
	require.Equal(t, 0x02, value)

	_, _, ok = Lookup('a')
	require.False(t, ok)
}

func Test_DecodedLenSkipsUnknown(t *testing.T) {
	require.Equal(t, 0, DecodedLen("abc"))
	require.Equal(t, 3, DecodedLen("㐀xᔀ"))
}

func Test_Concurrent(t *testing.T) {
	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func(i int) {
			data := bytes.Repeat([]byte{byte(i)}, 1000+i)
			decoded, err := Decode(Encode(data))
			if err == nil && !bytes.Equal(data, decoded) {
				err = errors.Errorf("round trip failed in routine %v", i)
			}
			done <- err
		}(i)
	}
	for i := 0; i < 8; i++ {
		require.NoError(t, <-done)
	}
}

func BenchmarkEncode(b *testing.B) {
	data := make([]byte, 64*1024)
	rand.New(rand.NewSource(1)).Read(data)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Encode(data)
	}
}

func BenchmarkDecode(b *testing.B) {
	data := make([]byte, 64*1024)
	rand.New(rand.NewSource(1)).Read(data)
	encoded := Encode(data)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Decode(encoded); err != nil {
			b.Fatal(err)
		}
	}
}
