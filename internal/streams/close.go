package streams

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
)

// LogClose will close the stream and log the error, if closing fails. Streams which report they are already
// closed are skipped.
func LogClose(closer io.Closer) error {
	if closer == nil {
		return nil
	}

	if c, ok := closer.(Closed); ok {
		if c.Closed() {
			return nil
		}
	}

	if err := closer.Close(); err != nil {
		err = errors.WithStack(err)
		log.WithError(err).Errorf("Could not close: %v", err)
		return err
	}
	return nil
}
