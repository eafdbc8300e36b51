package util

import (
	"github.com/bokysan/base65536"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"os"
)

const (
	// ErrData is returned when the input could not be decoded (EX_DATAERR)
	ErrData = 65
	// ErrGeneric is returned for all other errors
	ErrGeneric = 99
)

// DataError marks errors caused by malformed input data, as opposed to errors in the environment
// (missing files, bad flags...)
type DataError struct {
	error
}

// NewDataError wraps the given error into a DataError. Nil stays nil.
func NewDataError(err error) error {
	if err == nil {
		return nil
	}
	return &DataError{err}
}

func (e *DataError) Unwrap() error {
	return e.error
}

// ExitCode returns the process exit code matching the given error
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var flagsError *flags.Error
	if errors.As(err, &flagsError) {
		switch flagsError.Type {
		case flags.ErrHelp:
			return 0
		case flags.ErrUnknown:
			return ErrGeneric
		}
		return int(flagsError.Type)
	}

	var dataError *DataError
	if errors.As(err, &dataError) || errors.Is(err, base65536.ErrUnrecognizedCharacter) {
		return ErrData
	}

	return ErrGeneric
}

// MustErrorNilOrExit will check the provided argument. If it's `nil` it will simply return. If it's
// not `nil`, it will log the error as `log.FatalLevel` and exit immediately with the code returned by
// ExitCode. Help requests exit with code 0.
func MustErrorNilOrExit(err error) {
	if err == nil {
		return
	}

	code := ExitCode(err)
	if code == 0 {
		os.Exit(0)
		return
	}

	log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Error: %+v", err)
	log.Exit(code)
}
