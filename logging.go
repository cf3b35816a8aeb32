package mustache

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is the package-level logger every construction and execute
// failure this module reports is also logged through, with file/line
// fields matching the diagnostic coordinates already carried by Error.
// Callers can override it before calling Parse/Execute.
var Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

func logConstructErr(file string, line int, err error) {
	Logger.Error().Str("file", file).Int("line", line).Err(err).Msg("mustache: construct failed")
}

func logExecuteErr(file string, line int, err error) {
	Logger.Error().Str("file", file).Int("line", line).Err(err).Msg("mustache: execute failed")
}
