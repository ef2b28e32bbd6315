package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelNone:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}

func LevelFromString(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug
	case "INFO":
		return LevelInfo
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR":
		return LevelError
	case "NONE", "DISABLED", "OFF":
		return LevelNone
	default:
		return LevelDebug // Default to DEBUG
	}
}

func (l Level) zerolog() zerolog.Level {
	switch l {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.Disabled
	}
}

// Logger is a leveled printf-style logger backed by zerolog.
type Logger struct {
	zl    zerolog.Logger
	level Level
}

// New writes JSON lines to out, or human readable lines when out is a terminal.
func New(out io.Writer, level Level) *Logger {
	if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		out = zerolog.ConsoleWriter{Out: f, TimeFormat: "15:04:05"}
	}
	zl := zerolog.New(out).With().Timestamp().Logger().Level(level.zerolog())
	return &Logger{zl: zl, level: level}
}

// Nop discards everything.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop(), level: LevelNone}
}

func (l *Logger) Debugf(format string, v ...interface{}) {
	if l == nil {
		return
	}
	l.zl.Debug().Msgf(format, v...)
}

func (l *Logger) Infof(format string, v ...interface{}) {
	if l == nil {
		return
	}
	l.zl.Info().Msgf(format, v...)
}

func (l *Logger) Warnf(format string, v ...interface{}) {
	if l == nil {
		return
	}
	l.zl.Warn().Msgf(format, v...)
}

func (l *Logger) Errorf(format string, v ...interface{}) {
	if l == nil {
		return
	}
	l.zl.Error().Msgf(format, v...)
}

// Fatalf logs at error level and exits the process.
func (l *Logger) Fatalf(format string, v ...interface{}) {
	if l != nil {
		l.zl.Error().Msgf(format, v...)
	} else {
		fmt.Fprintf(os.Stderr, format+"\n", v...)
	}
	os.Exit(1)
}

func (l *Logger) SetLevel(level Level) {
	l.level = level
	l.zl = l.zl.Level(level.zerolog())
}

func (l *Logger) Level() Level {
	return l.level
}
