package enc

import (
	"github.com/pkg/errors"
	"strings"
)

// Encoder converts binary data into text and back
type Encoder interface {
	// Name is the user-friendly name of this encoder
	Name() string
	// Code represents the short (one-letter) code for the encoder
	Code() byte

	// Encode will take an array of bytes and encode it using this encoder
	Encode([]byte) string

	// Decode is the reverse process of encoding
	Decode(string) ([]byte, error)

	// Ratio returns the (approximate) number of output characters per one input byte
	Ratio() float64

	// Binary is true when the output may contain any byte, line breaks included. Such output must not be
	// wrapped or have line breaks added or stripped.
	Binary() bool
}

// encoders lists all known encoders, the preferred one first
var encoders = []Encoder{
	&Base65536Encoder{},
	&Base91Encoder{},
	&Base128Encoder{},
	&Base85Encoder{},
	&Base64Encoder{},
	&Base64uEncoder{},
	&Base32Encoder{},
	&RawEncoder{},
}

// Default returns the encoder used when none is specified
func Default() Encoder {
	return encoders[0]
}

// All returns the list of known encoders
func All() []Encoder {
	res := make([]Encoder, len(encoders))
	copy(res, encoders)
	return res
}

// Names returns the names of all known encoders, in lowercase
func Names() []string {
	res := make([]string, 0, len(encoders))
	for _, e := range encoders {
		res = append(res, strings.ToLower(e.Name()))
	}
	return res
}

// ByName will find the encoder by its name. Names are not case-sensitive.
func ByName(name string) (Encoder, error) {
	for _, e := range encoders {
		if strings.EqualFold(e.Name(), strings.TrimSpace(name)) {
			return e, nil
		}
	}
	return nil, errors.Errorf("Unknown encoding '%v'. Expected one of: %v", name, strings.Join(Names(), ", "))
}

// Find returns the encoder matching the given name or, if a single letter is given, the one-letter code.
func Find(nameOrCode string) (Encoder, error) {
	nameOrCode = strings.TrimSpace(nameOrCode)
	if len(nameOrCode) == 1 {
		return ByCode(nameOrCode[0])
	}
	return ByName(nameOrCode)
}

// ByCode will find the encoder by its one-letter code. Codes are case-sensitive.
func ByCode(code byte) (Encoder, error) {
	for _, e := range encoders {
		if e.Code() == code {
			return e, nil
		}
	}
	return nil, errors.Errorf("Unknown encoding code '%c'", code)
}
