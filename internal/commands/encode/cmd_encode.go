package encode

import (
	"github.com/bokysan/base65536/internal/args"
	"github.com/bokysan/base65536/internal/logging"
	"github.com/bokysan/base65536/internal/streams"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"strings"
	"unicode/utf8"
)

// Command reads binary data and writes it out as text
type Command struct {
	args.Codec `yaml:",inline"`

	Wrap      int  `short:"w" long:"wrap"       yaml:"wrap"       description:"Insert a line break after this many characters. 0 disables wrapping."`
	NoNewline bool `short:"n" long:"no-newline" yaml:"no-newline" description:"Do not output the trailing newline. Implied for raw."`
}

func NewCommand() *Command {
	return &Command{}
}

// Execute encodes every file given as an argument (or stdin, if there are none). Files which cannot be read
// are skipped and reported together at the end. Binary output is written as-is: no wrapping, no newline.
func (c *Command) Execute(files []string) error {
	logging.SetupLogging()

	if c.Wrap < 0 {
		return errors.Errorf("Invalid wrap width: %v", c.Wrap)
	}

	encoder, err := c.Encoder()
	if err != nil {
		return err
	}
	if encoder.Binary() && c.Wrap > 0 {
		return errors.Errorf("%v output cannot be wrapped", encoder.Name())
	}

	out, err := streams.OpenOutput(c.Output)
	if err != nil {
		return err
	}
	defer streams.LogClose(out)

	var errs error
	for _, name := range args.Inputs(files) {
		data, err := streams.ReadInput(name)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}

		text := encoder.Encode(data)
		log.Debugf("Encoded %v bytes of %v into %v characters using %v", len(data), name, utf8.RuneCountInString(text), encoder.Name())

		if !encoder.Binary() {
			text = Wrap(text, c.Wrap)
		}
		if !c.NoNewline && !encoder.Binary() {
			text += "\n"
		}
		if _, err := io.WriteString(out, text); err != nil {
			return errors.Wrapf(err, "Could not write to %v", out)
		}
	}

	return errs
}

// Wrap inserts a newline after every width characters (runes, not bytes). Width of 0 or less returns the
// text unchanged.
func Wrap(text string, width int) string {
	if width <= 0 || utf8.RuneCountInString(text) <= width {
		return text
	}

	var sb strings.Builder
	sb.Grow(len(text) + len(text)/width + 1)
	n := 0
	for _, r := range text {
		if n == width {
			sb.WriteByte('\n')
			n = 0
		}
		sb.WriteRune(r)
		n++
	}
	return sb.String()
}
