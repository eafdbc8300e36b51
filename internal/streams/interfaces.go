package streams

import (
	"io"
)

// Closed is an interface which defines if a method to check if a stream is closed or not
type Closed interface {
	Closed() bool
}

type ReadCloserClosed interface {
	io.ReadCloser
	Closed
}

type WriteCloserClosed interface {
	io.WriteCloser
	Closed
}

type UnwrappedReadCloser interface {
	Unwrap() io.ReadCloser
}

type UnwrappedWriteCloser interface {
	Unwrap() io.WriteCloser
}
