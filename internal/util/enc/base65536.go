package enc

import (
	"fmt"
	"github.com/bokysan/base65536"
)

// Base65536Encoder encodes 2 bytes into 1 character
type Base65536Encoder struct {
}

func (b *Base65536Encoder) Name() string {
	return "Base65536"
}

func (b *Base65536Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base65536Encoder) Code() byte {
	return 'Z'
}

func (b *Base65536Encoder) Encode(data []byte) string {
	return base65536.Encode(data)
}

// Decode does not wrap the error: base65536 already returns it with a stack trace attached.
func (b *Base65536Encoder) Decode(data string) ([]byte, error) {
	return base65536.Decode(data)
}

func (b *Base65536Encoder) Ratio() float64 {
	return 1.0 / 2.0
}

func (b *Base65536Encoder) Binary() bool {
	return false
}
