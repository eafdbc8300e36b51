package inspect

import (
	"fmt"
	"github.com/bokysan/base65536"
	"github.com/bokysan/base65536/internal/logging"
	"github.com/bokysan/base65536/internal/streams"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"strings"
)

// Command explains, character by character, how a text decodes
type Command struct {
}

func NewCommand() *Command {
	return &Command{}
}

// Character is the description of one character of the inspected text
type Character struct {
	Char   rune
	Offset int
	Bits   int // BitsPerChar, BitsPerByte or 0 if the character is not part of the encoding
	Value  int
}

func (c Character) String() string {
	switch c.Bits {
	case base65536.BitsPerChar:
		return fmt.Sprintf("%6v  %-8U %c  16-bit  0x%04x", c.Offset, c.Char, c.Char, c.Value)
	case base65536.BitsPerByte:
		return fmt.Sprintf("%6v  %-8U %c   8-bit  0x%02x", c.Offset, c.Char, c.Char, c.Value)
	default:
		return fmt.Sprintf("%6v  %-8U %q  not base65536", c.Offset, c.Char, c.Char)
	}
}

// Inspect returns the description of every character of text
func Inspect(text string) []Character {
	res := make([]Character, 0, len(text)/3+1)
	for offset, r := range text {
		bits, value, _ := base65536.Lookup(r)
		res = append(res, Character{Char: r, Offset: offset, Bits: bits, Value: value})
	}
	return res
}

func (c *Command) Execute(texts []string) error {
	logging.SetupLogging()

	if len(texts) == 0 {
		return errors.Errorf("Nothing to inspect. Provide the text as an argument.")
	}

	text := strings.Join(texts, "")
	chars := Inspect(text)
	if log.IsLevelEnabled(log.TraceLevel) {
		log.Tracef("Inspected characters:\n%v", spew.Sdump(chars))
	}

	return errors.WithStack(Print(streams.Stdout, chars))
}

// Print writes one line per character
func Print(w io.Writer, chars []Character) error {
	unknown := 0
	for _, c := range chars {
		if c.Bits == 0 {
			unknown++
		}
		if _, err := fmt.Fprintln(w, c.String()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%v characters, %v not part of base65536\n", len(chars), unknown)
	return err
}
