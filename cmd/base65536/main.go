package main

import (
	"fmt"
	"github.com/bokysan/base65536/internal/args"
	"github.com/bokysan/base65536/internal/commands/compare"
	"github.com/bokysan/base65536/internal/commands/decode"
	"github.com/bokysan/base65536/internal/commands/encode"
	"github.com/bokysan/base65536/internal/commands/inspect"
	"github.com/bokysan/base65536/internal/commands/version"
	b6Flags "github.com/bokysan/base65536/internal/flags"
	"github.com/bokysan/base65536/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"os"
	"path"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// Base65536 is the main executable
type Base65536 struct {
	parser *flags.Parser
}

// NewBase65536 will create a new instance of Base65536 and initialize the parser
func NewBase65536() *Base65536 {
	executableFilename := os.Args[0]
	executablePath := path.Base(executableFilename)

	b := &Base65536{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
	}

	b.setupGeneral()
	b.setupCommand("version", "Print the version", "Print the application version and exit", &version.Command{})
	b.setupCommand("encode", "Encode binary data",
		"Encode files (or stdin) into text. Base65536 packs two bytes into every character.", encode.NewCommand())
	b.setupCommand("decode", "Decode text",
		"Decode text produced by the encode command back into binary data. Line breaks are ignored.", decode.NewCommand())
	b.setupCommand("compare", "Compare encodings",
		"Encode files (or stdin) with every known encoding and print the size of the results", compare.NewCommand())
	b.setupCommand("inspect", "Inspect characters",
		"Print the block and the value of every character of the given text", inspect.NewCommand())

	return b
}

// setupGeneral will configure general options
func (b *Base65536) setupGeneral() {
	if _, err := b.parser.AddGroup("General", "General options", &args.General); err != nil {
		util.MustErrorNilOrExit(errors.WithStack(err))
	}
}

// setupCommand adds a command to the parser
func (b *Base65536) setupCommand(name, short, long string, cmd interface{}) {
	_, err := b.parser.AddCommand(name, short, long, cmd)
	util.MustErrorNilOrExit(err)
}

// main parses the command line, reads the configuration file and runs the selected command
func main() {
	b := NewBase65536()
	args.General.ConfigurationFile = func(file string) error {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			message := fmt.Sprintf("Configuration file %s does not exist.", file)
			util.MustErrorNilOrExit(&flags.Error{
				Type:    ErrConfigFileDoesNotExist,
				Message: message,
			})
		}

		yamlParser := b6Flags.NewYamlParser(b.parser)

		args.General.ConfigurationFilePath = file
		return yamlParser.ParseFile(file)
	}

	_, err := b.parser.Parse()
	util.MustErrorNilOrExit(err)
}
