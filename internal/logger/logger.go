// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// the constructors and context helpers used throughout bwenv.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// The entry point constructs one *Logger and passes it down explicitly;
// there is no package-level logger.
//
// Log output never goes to stdout: `bwenv get -o -` writes secrets there.
package logger

import (
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Output formats accepted by [New].
const (
	FormatAuto    = "auto"
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// New constructs a *Logger for the given role label writing to w.
//
// level is one of zerolog's level names ("debug", "info", "warn", ...);
// an unknown or empty level means info. format is [FormatConsole],
// [FormatJSON] or [FormatAuto]; auto picks the console writer when w is a
// terminal and JSON otherwise.
//
// JSON entries carry a "role" field, a timestamp and a "func" caller field
// holding the fully-qualified function name.
func New(role string, w io.Writer, level, format string) *Logger {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	if resolveFormat(w, format) == FormatConsole {
		out := zerolog.ConsoleWriter{
			Out:             w,
			NoColor:         !isTerminal(w),
			PartsExclude:    []string{zerolog.TimestampFieldName},
			FieldsExclude:   []string{"role", "run_id"},
			FormatLevel:     consoleLevel,
			FormatTimestamp: func(any) string { return "" },
		}
		return &Logger{zerolog.New(out).Level(lvl).With().Str("role", role).Logger()}
	}

	logger := zerolog.New(w).Level(lvl).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithStr returns a child logger carrying an additional string field.
func (l *Logger) WithStr(key, value string) *Logger {
	return &Logger{l.With().Str(key, value).Logger()}
}

func resolveFormat(w io.Writer, format string) string {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatConsole:
		return FormatConsole
	case FormatJSON:
		return FormatJSON
	default:
		if isTerminal(w) {
			return FormatConsole
		}
		return FormatJSON
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// consoleLevel hides the level for info messages so that routine output
// reads like plain text.
func consoleLevel(i any) string {
	level, _ := i.(string)
	switch level {
	case "", zerolog.LevelInfoValue:
		return ""
	default:
		return strings.ToUpper(level) + ":"
	}
}
