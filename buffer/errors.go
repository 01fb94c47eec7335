// SPDX-License-Identifier: MIT

// Package buffer: sentinel error set.
// Every message is prefixed with "buffer: ". Operations wrap these with the
// method tag ("Buffer.Copy: buffer: index out of range"); match with errors.Is.

package buffer

import (
	"errors"
	"fmt"
)

var (
	// ErrNilBuffer indicates a nil *Buffer was passed or used as receiver.
	ErrNilBuffer = errors.New("buffer: nil buffer")

	// ErrDestroyed indicates use of a buffer after Destroy (checked mode only),
	// including a second Destroy.
	ErrDestroyed = errors.New("buffer: use after destroy")

	// ErrOutOfRange indicates an element index or count outside the live range.
	ErrOutOfRange = errors.New("buffer: index out of range")

	// ErrMisaligned indicates a byte length that is not a multiple of the span.
	ErrMisaligned = errors.New("buffer: length not a multiple of span")

	// ErrSpanMismatch indicates two buffers with different element widths.
	ErrSpanMismatch = errors.New("buffer: span mismatch")

	// ErrBroadcast indicates a paired iteration whose lengths do not divide.
	ErrBroadcast = errors.New("buffer: count not divisible for broadcast")

	// ErrInvalidOwner indicates the reserved owner id 0 was used to lock/unlock.
	ErrInvalidOwner = errors.New("buffer: invalid lock owner")

	// ErrAlreadyLocked indicates the caller tried to lock a buffer it already holds.
	ErrAlreadyLocked = errors.New("buffer: lock already held by caller")

	// ErrNotOwner indicates an unlock from an owner that does not hold the lock.
	ErrNotOwner = errors.New("buffer: unlock by non-owner")

	// ErrLeak indicates live bytes at a tracker checkpoint.
	ErrLeak = errors.New("buffer: memory leak")

	// ErrDoubleFree indicates the tracker went negative (a buffer was released twice).
	ErrDoubleFree = errors.New("buffer: double free")

	// ErrRowWidth indicates a non-positive elements-per-row for Stringify.
	ErrRowWidth = errors.New("buffer: elements per row must be > 0")
)

// Method tags for error wrapping.
const (
	opNew       = "New"
	opDestroy   = "Destroy"
	opSetLength = "SetLength"
	opSetCount  = "SetCount"
	opResize    = "Resize"
	opGet       = "Get"
	opSet       = "Set"
	opAppend    = "Append"
	opPop       = "Pop"
	opClone     = "Clone"
	opCopy      = "Copy"
	opSub       = "Sub"
	opCast      = "Cast"
	opBoth      = "Both"
	opLock      = "AwaitLock"
	opUnlock    = "Unlock"
	opStringify = "Stringify"
	opQuery     = "Query"
)

// bufferErrorf tags err with the method name, preserving it for errors.Is.
func bufferErrorf(op string, err error) error {
	return fmt.Errorf("Buffer.%s: %w", op, err)
}
