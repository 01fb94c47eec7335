// SPDX-License-Identifier: MIT

// Command mvec demonstrates the buffer, matrix and curve packages.
//
// Without flags it transposes a 3×3 matrix, logging it before and after, and
// checks that every buffer was released. With -console it opens an
// interactive prompt (see `help` inside the console).
package main

import (
	"flag"
	"io"
	"os"

	"github.com/katalvlaran/mvec/buffer"
	"github.com/katalvlaran/mvec/diag"
	"github.com/katalvlaran/mvec/matrix"
	"github.com/sirupsen/logrus"
)

var (
	consoleMode = flag.Bool("console", false, "Open the interactive console.")
	debugMode   = flag.Bool("debug", false, "Enable debug logging.")
	unchecked   = flag.Bool("unchecked", false, "Disable buffer range and lifecycle checks.")
	history     = flag.String("history", "/tmp/mvec.history", "Console history file.")
)

func main() {
	flag.Parse()

	logger := newLogger(os.Stdout, os.Stdin, *debugMode)

	trOpts := []buffer.Option{buffer.WithChecks(!*unchecked)}
	if !*consoleMode {
		// Batch runs treat every violation as fatal; the console reports them.
		trOpts = append(trOpts, buffer.WithFatal(logger))
	}
	tr := buffer.NewTracker(trOpts...)

	if *unchecked {
		logger.Warnf("buffer checks are disabled; invalid indices will panic.")
	}

	if *consoleMode {
		if err := runConsole(tr, logger, *history); err != nil {
			logger.Fatalf("console: %v", err)
		}
	} else {
		runDemo(tr, logger)
	}

	if err := tr.Checkpoint(); err != nil {
		logger.Fatalf("%v", err)
	}
	logger.Debugf("all buffers released")
}

// newLogger builds the command logger. Messages are printed unquoted so
// multi-line matrices keep their row layout.
func newLogger(out io.Writer, ack io.Reader, debug bool) *diag.Logger {
	opts := []diag.Option{diag.WithFormatter(&logrus.TextFormatter{
		DisableQuote:     true,
		DisableTimestamp: true,
		DisableColors:    true,
	})}
	if debug {
		opts = append(opts, diag.WithLevel(logrus.DebugLevel))
	}

	return diag.New(out, ack, opts...)
}

// runDemo transposes a 3×3 float matrix in place.
func runDemo(tr *buffer.Tracker, logger *diag.Logger) {
	m := buffer.FromRaw(tr, []float32{
		0, 1, 2,
		3, 4, 5,
		6, 7, 8,
	})
	defer func() { _ = m.Destroy() }()

	logMatrix(tr, logger, "Start:\n%s", m, 3)
	if err := matrix.Transpose(m, 3, 3); err != nil {
		logger.Fatalf("%v", err)
	}
	logMatrix(tr, logger, "Result:\n%s", m, 3)
}

// logMatrix logs b through format, perRow elements per line.
func logMatrix[T buffer.Element](tr *buffer.Tracker, logger *diag.Logger, format string, b *buffer.Buffer[T], perRow int) {
	str, err := buffer.Stringify(tr, b, perRow)
	if err != nil {
		logger.Fatalf("%v", err)
		return
	}
	logger.Logf(format, str.String())
	_ = str.Destroy()
}
