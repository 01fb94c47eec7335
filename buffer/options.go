// SPDX-License-Identifier: MIT

// Package buffer: functional configuration for Tracker.
//
// Options are resolved once in NewTracker and shared by every buffer the
// tracker accounts for. There is no global mutable configuration; Default()
// is simply a tracker built with fatal reporting on.

package buffer

import "github.com/katalvlaran/mvec/diag"

// DefaultChecked enables validation of destroyed buffers, copy/sub ranges and
// length alignment.
const DefaultChecked = true

const panicNilLogger = "buffer: WithFatal: logger must not be nil"

// Option mutates tracker options.
type Option func(*Options)

// Options is the resolved tracker configuration.
type Options struct {
	checked bool         // DefaultChecked
	fatal   *diag.Logger // nil ⇒ violations are returned, not reported
}

// WithChecks switches between checked (true) and unchecked (false) mode.
func WithChecks(on bool) Option {
	return func(o *Options) { o.checked = on }
}

// WithFatal routes every invariant violation to l.Fatalf before it is returned.
// Panics on a nil logger (programmer error).
func WithFatal(l *diag.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.fatal = l }
}

// Checked reports whether validation is on.
func (o Options) Checked() bool { return o.checked }

// Fatal reports whether violations are routed to a fatal logger.
func (o Options) Fatal() bool { return o.fatal != nil }

func gatherOptions(user ...Option) Options {
	o := Options{checked: DefaultChecked}
	for _, set := range user {
		set(&o) // last writer wins
	}

	return o
}
