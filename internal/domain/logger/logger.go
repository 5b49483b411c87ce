// Package logger holds the program logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// Pl holds the global *ProgramLogger variable.
var Pl = NewProgramLogger(os.Stdout, os.Stderr, 0)

// ProgramLogger writes informational lines to one stream and diagnostics to another.
//
// Debug lines are only written when their level is below the configured debug level.
type ProgramLogger struct {
	mu    sync.Mutex
	info  zerolog.Logger
	diag  zerolog.Logger
	level int
}

// NewProgramLogger returns a logger writing info to out and warnings/errors to errOut.
func NewProgramLogger(out, errOut io.Writer, debugLevel int) *ProgramLogger {
	return &ProgramLogger{
		info:  zerolog.New(consoleWriter(out)).Level(zerolog.DebugLevel),
		diag:  zerolog.New(consoleWriter(errOut)).Level(zerolog.DebugLevel),
		level: debugLevel,
	}
}

// consoleWriter renders "[info] message" style lines without timestamps.
func consoleWriter(w io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      true,
		PartsOrder:   []string{zerolog.LevelFieldName, zerolog.MessageFieldName},
		FormatLevel:  formatLevel,
		FormatCaller: func(any) string { return "" },
	}
}

func formatLevel(i any) string {
	s, _ := i.(string)
	switch s {
	case zerolog.LevelErrorValue:
		return "[error]"
	case zerolog.LevelWarnValue:
		return "[warn]"
	case zerolog.LevelDebugValue:
		return "[debug]"
	default:
		return "[info]"
	}
}

// SetLevel sets the debug verbosity (0-5).
func (pl *ProgramLogger) SetLevel(l int) {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	pl.level = l
}

// Level returns the debug verbosity.
func (pl *ProgramLogger) Level() int {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	return pl.level
}

// I logs an informational message.
func (pl *ProgramLogger) I(format string, args ...any) {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	pl.info.Info().Msg(sprintf(format, args...))
}

// W logs a warning to the diagnostic stream.
func (pl *ProgramLogger) W(format string, args ...any) {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	pl.diag.Warn().Msg(sprintf(format, args...))
}

// E logs an error to the diagnostic stream.
func (pl *ProgramLogger) E(format string, args ...any) {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	pl.diag.Error().Msg(sprintf(format, args...))
}

// D logs a debug message if l is below the configured level.
func (pl *ProgramLogger) D(l int, format string, args ...any) {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	if l >= pl.level {
		return
	}
	pl.diag.Debug().Msg(sprintf(format, args...))
}

func sprintf(format string, args ...any) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}
