package streams

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"io/ioutil"
	"os"
)

// StandardIO is the name which denotes stdin for inputs and stdout for outputs
const StandardIO = "-"

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}

// Stdin and Stdout may be replaced in tests
var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
)

// OpenInput opens the named file for reading. An empty name or "-" reads from Stdin, which is never closed.
func OpenInput(name string) (*NamedReader, error) {
	if name == "" || name == StandardIO {
		return NewNamedReader(ioutil.NopCloser(Stdin), "stdin"), nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not open %v", name)
	}
	return NewNamedReader(f, name), nil
}

// OpenOutput creates (or truncates) the named file. An empty name or "-" writes to Stdout, which is never
// closed.
func OpenOutput(name string) (*NamedWriter, error) {
	if name == "" || name == StandardIO {
		return NewNamedWriter(nopWriteCloser{Stdout}, "stdout"), nil
	}

	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not create %v", name)
	}
	return NewNamedWriter(f, name), nil
}

// ReadInput reads the whole named input into memory and closes it.
func ReadInput(name string) ([]byte, error) {
	r, err := OpenInput(name)
	if err != nil {
		return nil, err
	}
	defer LogClose(r)

	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not read %v", r)
	}
	log.Debugf("Read %v bytes from %v", len(data), r)
	return data, nil
}
