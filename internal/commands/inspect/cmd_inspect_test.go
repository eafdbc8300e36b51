package inspect

import (
	"bytes"
	"github.com/bokysan/base65536"
	"github.com/bokysan/base65536/internal/streams"
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_Inspect(t *testing.T) {
	chars := Inspect("㔀xᔂ")
	require.Len(t, chars, 3)

	require.Equal(t, Character{Char: '㔀', Offset: 0, Bits: base65536.BitsPerChar, Value: 0x0001}, chars[0])
	require.Equal(t, Character{Char: 'x', Offset: 3, Bits: 0, Value: 0}, chars[1])
	require.Equal(t, Character{Char: 'ᔂ', Offset: 4, Bits: base65536.BitsPerByte, Value: 0x02}, chars[2])

	require.Contains(t, chars[0].String(), "16-bit  0x0001")
	require.Contains(t, chars[1].String(), "not base65536")
	require.Contains(t, chars[2].String(), "8-bit  0x02")
}

func Test_Execute(t *testing.T) {
	old := streams.Stdout
	defer func() { streams.Stdout = old }()
	out := &bytes.Buffer{}
	streams.Stdout = out

	require.NoError(t, NewCommand().Execute([]string{"㔀", "ᔂ!"}))
	require.Contains(t, out.String(), "U+3500")
	require.Contains(t, out.String(), "U+1502")
	require.Contains(t, out.String(), "3 characters, 1 not part of base65536")
}

func Test_ExecuteNothing(t *testing.T) {
	require.Error(t, NewCommand().Execute(nil))
}
