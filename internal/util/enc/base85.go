package enc

import (
	"encoding/ascii85"
	"fmt"
	"github.com/pkg/errors"
)

// -------------------------------------------------------

// Base85Encoder encodes 4 bytes to 5 characters
type Base85Encoder struct {
}

func (b *Base85Encoder) Name() string {
	return "Base85"
}

func (b *Base85Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base85Encoder) Code() byte {
	return 'W'
}

func (b *Base85Encoder) Encode(data []byte) string {
	dst := make([]byte, ascii85.MaxEncodedLen(len(data)))
	n := ascii85.Encode(dst, data)
	return string(dst[:n])
}

func (b *Base85Encoder) Decode(data string) ([]byte, error) {
	// Four zero bytes are encoded as a single 'z', hence the worst case is 4 bytes per character
	dst := make([]byte, 4*len(data))
	ndst, _, err := ascii85.Decode(dst, []byte(data), true)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not decode %v", b.Name())
	}
	return dst[:ndst], nil
}

func (b *Base85Encoder) Ratio() float64 {
	return 5.0 / 4.0
}

func (b *Base85Encoder) Binary() bool {
	return false
}
