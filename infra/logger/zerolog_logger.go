package logger

import (
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	formatMu     sync.Mutex
	outputFormat string
)

// Configure sets the minimum level and output format for loggers created
// afterwards. An empty format keeps the FC_ENV detection.
func Configure(level, format string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(lvl)
	formatMu.Lock()
	outputFormat = format
	formatMu.Unlock()
	return nil
}

// ZerologLogger implements Logger using rs/zerolog.
type ZerologLogger struct {
	log zerolog.Logger
}

// NewZerologLogger creates a ZerologLogger. The output format comes from
// Configure when set, otherwise from the FC_ENV environment variable:
// human-readable console output in "dev", JSON everywhere else. All logs
// include the provided component field.
func NewZerologLogger(component string) Logger {
	formatMu.Lock()
	format := outputFormat
	formatMu.Unlock()
	if format == "" {
		if strings.ToLower(os.Getenv("FC_ENV")) == "dev" {
			format = "console"
		} else {
			format = "json"
		}
	}
	var z zerolog.Logger
	if format == "console" {
		writer := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
		z = zerolog.New(writer).With().Timestamp().Str("component", component).Logger()
	} else {
		z = zerolog.New(os.Stdout).With().Timestamp().Str("component", component).Logger()
	}
	return &ZerologLogger{log: z}
}

func (l *ZerologLogger) Debugf(format string, args ...any) {
	l.log.Debug().Msgf(format, args...)
}

func (l *ZerologLogger) Debugw(msg string, fields map[string]any) {
	ev := l.log.Debug()
	for k, v := range fields {
		ev = ev.Interface(k, v)
	}
	ev.Msg(msg)
}

func (l *ZerologLogger) Infof(format string, args ...any) {
	l.log.Info().Msgf(format, args...)
}

func (l *ZerologLogger) Warnf(format string, args ...any) {
	l.log.Warn().Msgf(format, args...)
}

func (l *ZerologLogger) Errorf(format string, args ...any) {
	l.log.Error().Msgf(format, args...)
}
