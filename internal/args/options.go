package args

import (
	"github.com/bokysan/base65536/internal/streams"
	"github.com/bokysan/base65536/internal/util/enc"
	"strings"
)

type CallbackOption func(string) error

// General options are shared by all commands
var General struct {
	Verbose               []bool         `short:"v" long:"verbose"             env:"VERBOSITY"            description:"Show verbose debug information"`
	ConfigurationFile     CallbackOption `short:"c" long:"config"              env:"CONFIG"               description:"Configuration file (yaml-formatted)" no-ini:"true"`
	ConfigurationFilePath string
	LogFile               *string `short:"l" long:"log-file"            env:"LOG_FILE"             description:"Log file (file will be appended). If not set, defaults to stderr." default:"-"`
	LogFormat             string  `short:"f" long:"log-format"          env:"LOG_FORMAT"           description:"Log file format (json or text)." choice:"text" choice:"json" default:"text"`
	LogColor              string  `short:"C" long:"log-color"           env:"LOG_COLOR"            description:"Should the log output be colored? true, false or auto" choice:"yes" choice:"no" choice:"true" choice:"false" choice:"auto" default:"auto"`
	LogFullTimestamp      bool    `          long:"log-full-timestamp"  env:"LOG_FULL_TIMESTAMP"   description:"Display full timestamp in logs."`
	LogReportCaller       bool    `          long:"log-report-caller"   env:"LOG_REPORT_CALLER"    description:"If you wish to add the calling method as a field."`
}

// Codec options are shared by the commands which convert data. They carry no defaults in the tags: the flags
// parser would apply them after the configuration file has been read and overwrite its values.
type Codec struct {
	Encoding string `short:"e" long:"encoding" yaml:"encoding" description:"Encoding to use: base65536 (default), base91, base128, base85, base64, base64u, base32 or raw. One-letter codes (Z, X, V, W, S, U, T, R) are accepted as well."`
	Output   string `short:"o" long:"output"   yaml:"output"   description:"Output file. If not set, defaults to stdout."`
}

// Encoder returns the selected encoder or the default one, if none was selected.
func (c *Codec) Encoder() (enc.Encoder, error) {
	if strings.TrimSpace(c.Encoding) == "" {
		return enc.Default(), nil
	}
	return enc.Find(c.Encoding)
}

// Inputs returns the list of files to process. No files means stdin.
func Inputs(files []string) []string {
	if len(files) == 0 {
		return []string{streams.StandardIO}
	}
	return files
}
