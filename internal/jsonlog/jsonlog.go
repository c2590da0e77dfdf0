package jsonlog

import (
	"io"
	"os"
	"runtime/debug"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Level represents the severity level of a log entry.
type Level int8

const (
	LevelInfo Level = iota
	LevelError
	LevelFatal
	LevelOff
)

// String translates the level numbers into a human-readable representation.
func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "INFO"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	default:
		return ""
	}
}

// ParseLevel maps a configuration value ("info", "error", "fatal", "off") to a Level.
func ParseLevel(s string) (Level, bool) {
	switch s {
	case "info", "INFO":
		return LevelInfo, true
	case "error", "ERROR":
		return LevelError, true
	case "fatal", "FATAL":
		return LevelFatal, true
	case "off", "OFF":
		return LevelOff, true
	}
	return LevelInfo, false
}

type Logger struct {
	mu       sync.Mutex // Ensures atomic writes.
	zl       zerolog.Logger
	minLevel Level // Minimum severity level.
	exit     func(int)
}

// New returns a Logger that writes one JSON object per line to out. Its logs
// will have a severity level at or above the given value.
func New(out io.Writer, minLevel Level) *Logger {
	zl := zerolog.New(out).With().Timestamp().Logger()
	return &Logger{
		zl:       zl,
		minLevel: minLevel,
		exit:     os.Exit,
	}
}

func init() {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	zerolog.LevelFieldMarshalFunc = func(l zerolog.Level) string {
		switch l {
		case zerolog.ErrorLevel:
			return LevelError.String()
		case zerolog.FatalLevel:
			return LevelFatal.String()
		default:
			return LevelInfo.String()
		}
	}
}

// Helper functions to print at the predefined levels. The properties argument allows for arbitrary data to be attached to the log.

func (l *Logger) PrintInfo(message string, properties map[string]string) {
	l.print(LevelInfo, message, properties)
}

func (l *Logger) PrintError(err error, properties map[string]string) {
	l.print(LevelError, err.Error(), properties)
}

func (l *Logger) PrintFatal(err error, properties map[string]string) {
	l.print(LevelFatal, err.Error(), properties)
	l.exit(1) // For entries at the FATAL level, we also terminate the application.
}

func (l *Logger) print(level Level, message string, properties map[string]string) {
	if level < l.minLevel {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	var ev *zerolog.Event
	switch level {
	case LevelError:
		ev = l.zl.Error()
	case LevelFatal:
		// WithLevel keeps zerolog from calling os.Exit itself.
		ev = l.zl.WithLevel(zerolog.FatalLevel)
	default:
		ev = l.zl.Info()
	}

	if len(properties) > 0 {
		props := zerolog.Dict()
		for k, v := range properties {
			props.Str(k, v)
		}
		ev = ev.Dict("properties", props)
	}

	// Include a stack trace for entries at the ERROR and FATAL levels.
	if level >= LevelError {
		ev = ev.Str("trace", string(debug.Stack()))
	}

	ev.Msg(message)
}

// Write satisfies the io.Writer interface. Logs written with Write will always be at the ERROR level, and won't have any additional properties.
func (l *Logger) Write(message []byte) (n int, err error) {
	l.print(LevelError, string(message), nil)
	return len(message), nil
}
