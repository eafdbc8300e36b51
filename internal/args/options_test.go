package args

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_CodecEncoder(t *testing.T) {
	c := &Codec{}
	e, err := c.Encoder()
	require.NoError(t, err)
	require.Equal(t, "Base65536", e.Name())

	c.Encoding = "Base64"
	e, err = c.Encoder()
	require.NoError(t, err)
	require.Equal(t, "Base64", e.Name())

	c.Encoding = "T"
	e, err = c.Encoder()
	require.NoError(t, err)
	require.Equal(t, "Base32", e.Name())

	c.Encoding = "base3"
	_, err = c.Encoder()
	require.Error(t, err)

	c.Encoding = "q"
	_, err = c.Encoder()
	require.Error(t, err)
}

func Test_Inputs(t *testing.T) {
	require.Equal(t, []string{"-"}, Inputs(nil))
	require.Equal(t, []string{"a", "b"}, Inputs([]string{"a", "b"}))
}
