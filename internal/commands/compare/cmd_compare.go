package compare

import (
	"bytes"
	"fmt"
	"github.com/bokysan/base65536/internal/args"
	"github.com/bokysan/base65536/internal/logging"
	"github.com/bokysan/base65536/internal/streams"
	"github.com/bokysan/base65536/internal/util/enc"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"text/tabwriter"
	"unicode/utf16"
	"unicode/utf8"
)

// Command encodes the input with every known encoder and prints how big the results are
type Command struct {
}

func NewCommand() *Command {
	return &Command{}
}

// Result describes the output of one encoder for one input
type Result struct {
	Encoder    enc.Encoder
	InputBytes int
	Chars      int // number of Unicode code points
	UTF8Bytes  int
	UTF16Units int
	RoundTrip  bool // decoding the output yields the input
}

// CharsPerByte returns the number of characters per one byte of input
func (r Result) CharsPerByte() float64 {
	if r.InputBytes == 0 {
		return 0
	}
	return float64(r.Chars) / float64(r.InputBytes)
}

// Measure encodes data with every encoder in the list
func Measure(data []byte, encoders []enc.Encoder) []Result {
	res := make([]Result, 0, len(encoders))
	for _, e := range encoders {
		text := e.Encode(data)
		decoded, err := e.Decode(text)
		res = append(res, Result{
			Encoder:    e,
			InputBytes: len(data),
			Chars:      utf8.RuneCountInString(text),
			UTF8Bytes:  len(text),
			UTF16Units: len(utf16.Encode([]rune(text))),
			RoundTrip:  err == nil && bytes.Equal(data, decoded),
		})
	}
	return res
}

func (c *Command) Execute(files []string) error {
	logging.SetupLogging()

	var errs error
	for _, name := range args.Inputs(files) {
		data, err := streams.ReadInput(name)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		log.Debugf("Comparing encoders on %v (%v bytes)", name, len(data))

		if err := Print(streams.Stdout, name, Measure(data, enc.All())); err != nil {
			return errors.Wrapf(err, "Could not write results for %v", name)
		}
	}
	return errs
}

// Print writes the results as a table
func Print(w io.Writer, name string, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)
	if len(results) > 0 {
		fmt.Fprintf(tw, "%v (%v bytes)\t\t\t\t\t\t\n", name, results[0].InputBytes)
	}
	fmt.Fprintf(tw, "Encoding\tCode\tChars\tUTF-8\tUTF-16\tChars/byte\tRound trip\t\n")
	for _, r := range results {
		rt := "ok"
		if !r.RoundTrip {
			rt = "FAILED"
		}
		fmt.Fprintf(tw, "%v\t%c\t%v\t%v\t%v\t%.3f\t%v\t\n",
			r.Encoder.Name(), r.Encoder.Code(), r.Chars, r.UTF8Bytes, r.UTF16Units, r.CharsPerByte(), rt)
	}
	return errors.WithStack(tw.Flush())
}
