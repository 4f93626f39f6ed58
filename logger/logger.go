package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/ip812/portfolio/config"
)

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

type zerologLogger struct {
	log zerolog.Logger
}

func New(cfg *config.Config) Logger {
	level, err := zerolog.ParseLevel(cfg.App.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stdout
	if cfg.App.Env == config.Local {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}
	}

	return &zerologLogger{
		log: zerolog.New(out).Level(level).With().
			Timestamp().
			Str("env", string(cfg.App.Env)).
			Logger(),
	}
}

func NewWithWriter(w io.Writer, level zerolog.Level) Logger {
	return &zerologLogger{
		log: zerolog.New(w).Level(level).With().Timestamp().Logger(),
	}
}

// NewNop discards everything; used in tests.
func NewNop() Logger {
	return &zerologLogger{log: zerolog.Nop()}
}

func (l *zerologLogger) Debug(format string, args ...any) {
	l.log.Debug().Msg(fmt.Sprintf(format, args...))
}

func (l *zerologLogger) Info(format string, args ...any) {
	l.log.Info().Msg(fmt.Sprintf(format, args...))
}

func (l *zerologLogger) Warn(format string, args ...any) {
	l.log.Warn().Msg(fmt.Sprintf(format, args...))
}

func (l *zerologLogger) Error(format string, args ...any) {
	l.log.Error().Msg(fmt.Sprintf(format, args...))
}
