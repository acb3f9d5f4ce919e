package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// Log discards everything until Init or InitConsole is called.
var Log = zerolog.New(io.Discard)

// Init points Log at radiogo.log inside dir. The terminal belongs to the UI,
// so interactive sessions never log to stderr.
func Init(dir, level string) (io.Closer, error) {
	logPath := filepath.Join(os.TempDir(), "radiogo.log")
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err == nil {
			logPath = filepath.Join(dir, "radiogo.log")
		}
	}

	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		return nil, fmt.Errorf("could not open log file: %w", err)
	}

	Log = zerolog.New(file).With().Timestamp().Caller().Logger().Level(parseLevel(level))
	Log.Info().Str("path", logPath).Msg("Logger initialized")
	return file, nil
}

// InitConsole is used by headless mode.
func InitConsole(level string) {
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	Log = zerolog.New(out).With().Timestamp().Logger().Level(parseLevel(level))
}

func parseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		return zerolog.InfoLevel
	}
	return lvl
}
