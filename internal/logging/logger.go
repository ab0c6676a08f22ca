// Package logging wraps zerolog with key/value helpers. Logs go to stderr in
// console form unless a file is configured, in which case lumberjack rotates it.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// DefaultLevel keeps stderr quiet so narration and error text stay readable.
const DefaultLevel = "warn"

var (
	mu     sync.RWMutex
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).
		With().Timestamp().Logger().Level(zerolog.WarnLevel)
)

// InitLogger configures the package logger. An empty file logs to stderr.
func InitLogger(file string, maxSizeMB, maxBackups, maxAgeDays int, compress bool, level string) {
	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}
	if strings.TrimSpace(file) != "" {
		out = &lumberjack.Logger{
			Filename:   file,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
			Compress:   compress,
		}
	}

	l := zerolog.New(out).With().Timestamp().Logger().Level(parseLevel(level))

	mu.Lock()
	logger = l
	mu.Unlock()
}

// SetLogLevel changes the level of the current logger.
func SetLogLevel(level string) {
	mu.Lock()
	logger = logger.Level(parseLevel(level))
	mu.Unlock()
}

// SetLoggerForTest replaces the package logger.
func SetLoggerForTest(l zerolog.Logger) {
	mu.Lock()
	logger = l
	mu.Unlock()
}

// Logger returns a copy of the package logger for callers that want the
// zerolog API directly.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Debug logs msg with key/value pairs at debug level.
func Debug(msg string, kv ...any) { log(zerolog.DebugLevel, msg, kv) }

// Info logs msg with key/value pairs at info level.
func Info(msg string, kv ...any) { log(zerolog.InfoLevel, msg, kv) }

// Warn logs msg with key/value pairs at warn level.
func Warn(msg string, kv ...any) { log(zerolog.WarnLevel, msg, kv) }

// Error logs msg with key/value pairs at error level.
func Error(msg string, kv ...any) { log(zerolog.ErrorLevel, msg, kv) }

func log(level zerolog.Level, msg string, kv []any) {
	l := Logger()
	event := l.WithLevel(level)
	if event == nil {
		return
	}
	if len(kv) > 0 {
		event = event.Fields(kv)
	}
	event.Msg(msg)
}

func parseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.WarnLevel
	}
	return lvl
}
