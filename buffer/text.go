// SPDX-License-Identifier: MIT

package buffer

import (
	"fmt"
	"io"
)

// DefaultTextCapacity is the initial capacity, in bytes, of text built by
// Stringify.
const DefaultTextCapacity = 1024

// Formatting literals for Stringify.
const (
	_fmtOpen  = "[ "
	_fmtClose = "]"
	_fmtFloat = "%3.3f, "
	_fmtInt   = "%6d, "
	_fmtRow   = "\n"
)

// Text is a span-1 buffer used as a string builder. Appends are plain byte
// appends and follow the exact-growth rule of Buffer.
type Text struct {
	*Buffer[byte]
}

var (
	_ io.Writer       = Text{}
	_ io.StringWriter = Text{}
	_ fmt.Stringer    = Text{}
)

// NewText creates an empty text buffer with the given byte capacity.
func NewText(tr *Tracker, capacity int) Text {
	return Text{New[byte](tr, capacity)}
}

// TextFrom creates a text buffer holding s.
func TextFrom(tr *Tracker, s string) Text {
	return Text{FromRaw(tr, []byte(s))}
}

// Write appends p.
func (t Text) Write(p []byte) (int, error) {
	if err := t.Append(p...); err != nil {
		return 0, err
	}

	return len(p), nil
}

// WriteString appends s.
func (t Text) WriteString(s string) (int, error) {
	return t.Write([]byte(s))
}

// Printf appends the formatted text, growing the buffer to fit.
func (t Text) Printf(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(t, format, args...)

	return err
}

// String returns a copy of the text.
func (t Text) String() string { return string(t.data) }

// Stringify renders b as "[ e0, e1, ... ]" with a newline after every
// perRow-th element except the last. Floats use "%3.3f", integers "%6d".
// The returned Text is accounted against tr and must be destroyed by the caller.
func Stringify[T Element](tr *Tracker, b *Buffer[T], perRow int) (Text, error) {
	if err := b.live(opStringify); err != nil {
		return Text{}, err
	}
	if perRow <= 0 {
		return Text{}, b.tr.fail(bufferErrorf(opStringify, fmt.Errorf("per row %d: %w", perRow, ErrRowWidth)))
	}

	verb := _fmtInt
	if isFloat[T]() {
		verb = _fmtFloat
	}

	// Writes into a fresh, live Text cannot fail.
	str := NewText(tr, DefaultTextCapacity)
	_, _ = str.WriteString(_fmtOpen)
	last := len(b.data) - 1
	for i, v := range b.data {
		_ = str.Printf(verb, v)
		if i%perRow == perRow-1 && i < last {
			_, _ = str.WriteString(_fmtRow)
		}
	}
	_, _ = str.WriteString(_fmtClose)

	return str, nil
}
