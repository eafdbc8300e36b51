package decode

import (
	"github.com/bokysan/base65536/internal/args"
	"github.com/bokysan/base65536/internal/logging"
	"github.com/bokysan/base65536/internal/streams"
	"github.com/bokysan/base65536/internal/util"
	"github.com/davecgh/go-spew/spew"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"strings"
)

// Command reads text and writes out the binary data it represents
type Command struct {
	args.Codec `yaml:",inline"`
}

func NewCommand() *Command {
	return &Command{}
}

// Execute decodes every file given as an argument (or stdin, if there are none). Output of files which fail
// to decode is not written; the errors are reported together at the end.
func (c *Command) Execute(files []string) error {
	logging.SetupLogging()

	encoder, err := c.Encoder()
	if err != nil {
		return err
	}

	out, err := streams.OpenOutput(c.Output)
	if err != nil {
		return err
	}
	defer streams.LogClose(out)

	var errs error
	for _, name := range args.Inputs(files) {
		text, err := streams.ReadInput(name)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}

		input := string(text)
		if !encoder.Binary() {
			input = StripLineBreaks(input)
		}
		data, err := encoder.Decode(input)
		if err != nil {
			errs = multierror.Append(errs, util.NewDataError(errors.Wrapf(err, "Could not decode %v", name)))
			continue
		}
		log.Debugf("Decoded %v bytes from %v using %v", len(data), name, encoder.Name())
		if log.IsLevelEnabled(log.TraceLevel) {
			log.Tracef("Decoded data:\n%v", spew.Sdump(data))
		}

		if _, err := out.Write(data); err != nil {
			return errors.Wrapf(err, "Could not write to %v", out)
		}
	}

	return errs
}

var lineBreaks = strings.NewReplacer("\r", "", "\n", "")

// StripLineBreaks removes the line breaks added by wrapping (and the trailing newline)
func StripLineBreaks(text string) string {
	return lineBreaks.Replace(text)
}
