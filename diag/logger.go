// SPDX-License-Identifier: MIT

package diag

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// ackSuffix is appended to every Warnf line.
const ackSuffix = " Press enter to continue."

// Logger is a thin facade over *logrus.Logger with an acknowledgment reader
// for Warnf. The zero value is not usable; construct with New or Standard.
type Logger struct {
	log *logrus.Logger

	ackMu sync.Mutex // serializes readers of ack
	ack   io.Reader  // source of Warnf acknowledgments (nil ⇒ never block)
}

// Option configures a Logger at construction time.
type Option func(*logrus.Logger)

// WithLevel sets the minimum level that is emitted.
func WithLevel(level logrus.Level) Option {
	return func(l *logrus.Logger) { l.SetLevel(level) }
}

// WithExit replaces the process exit hook used by Fatalf.
// A hook that returns lets the caller continue after a fatal report.
func WithExit(exit func(code int)) Option {
	return func(l *logrus.Logger) { l.ExitFunc = exit }
}

// WithFormatter overrides the default text formatter.
func WithFormatter(f logrus.Formatter) Option {
	return func(l *logrus.Logger) { l.SetFormatter(f) }
}

// New builds a Logger writing to out and reading Warnf acknowledgments from ack.
// A nil ack makes Warnf non-blocking. ack is read one byte at a time and never
// past the acknowledging '\n', so it can be shared with another line reader
// (the console reads commands from the same stdin).
func New(out io.Writer, ack io.Reader, opts ...Option) *Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})
	l.SetLevel(logrus.InfoLevel)
	for _, set := range opts {
		set(l)
	}

	return &Logger{log: l, ack: ack}
}

var (
	stdOnce sync.Once
	std     *Logger
)

// Standard returns the process-wide logger (stderr, acknowledgments on stdin).
func Standard() *Logger {
	stdOnce.Do(func() { std = New(os.Stderr, os.Stdin) })

	return std
}

// Logrus exposes the underlying logger for callers that need fields or hooks.
func (l *Logger) Logrus() *logrus.Logger { return l.log }

// Logf emits an informational line.
func (l *Logger) Logf(format string, args ...interface{}) {
	l.log.Infof(format, args...)
}

// Debugf emits a debug line (suppressed unless the level allows it).
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.log.Debugf(format, args...)
}

// Warnf emits a warning and waits for one line on the acknowledgment reader.
// EOF on the reader counts as an acknowledgment.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.log.Warn(fmt.Sprintf(format, args...) + ackSuffix)
	if l.ack == nil {
		return
	}

	l.ackMu.Lock()
	defer l.ackMu.Unlock()
	var c [1]byte
	for {
		n, err := l.ack.Read(c[:])
		if err != nil || (n == 1 && c[0] == '\n') {
			return
		}
	}
}

// Fatalf logs at fatal level and calls the exit hook with status 1.
func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.log.Fatalf(format, args...)
}
