// SPDX-License-Identifier: MIT

// Package buffer - Buffer[T] storage, sizing and element access.
//
// Purpose:
//   - Own one contiguous []T whose byte length/capacity are reported in bytes.
//   - Grow to exactly the requested size (no geometric growth), truncate on shrink.
//   - Keep the tracker in step with every capacity change.
//
// Complexity quicksheet:
//   - New: O(count) zero-init; At/Get/Set: O(1); SetCount/SetLength: O(n) only
//     when growing beyond capacity, O(1) otherwise; Clone: O(n).

package buffer

import (
	"fmt"
	"unsafe"

	"go.uber.org/atomic"
)

// Buffer is a resizable container of fixed-width elements.
//   - data holds the live elements; cap(data) is the capacity.
//   - owner is the advisory lock holder (0 = unlocked).
//   - tr accounts for the header and capacity bytes.
type Buffer[T Element] struct {
	data      []T           // live elements, len ≤ cap
	owner     atomic.Uint32 // advisory lock owner, see lock.go
	tr        *Tracker      // never nil after New
	destroyed bool          // set by Destroy
}

// New creates a buffer with room for count elements and length 0.
// MAIN DESCRIPTION:
//   - Allocates count*span bytes of capacity and charges header+capacity to tr.
//
// Inputs:
//   - tr: accounting tracker; nil selects Default().
//   - count: element capacity; negative is a programmer error (reported, clamped to 0).
//
// Complexity:
//   - Time O(count), Space O(count).
func New[T Element](tr *Tracker, count int) *Buffer[T] {
	tr = tr.or()
	if count < 0 {
		_ = tr.fail(bufferErrorf(opNew, fmt.Errorf("count %d: %w", count, ErrOutOfRange)))
		count = 0
	}

	b := &Buffer[T]{
		data: make([]T, 0, count),
		tr:   tr,
	}
	tr.Record(headerBytes + int64(count)*int64(SpanOf[T]()))

	return b
}

// FromRaw creates a buffer holding a copy of data (capacity == length).
func FromRaw[T Element](tr *Tracker, data []T) *Buffer[T] {
	b := New[T](tr, len(data))
	b.data = append(b.data, data...)

	return b
}

// Destroy releases the storage and the tracker charge.
// In checked mode a second Destroy returns ErrDestroyed; unchecked, it drives
// the tracker negative so the next Checkpoint reports ErrDoubleFree.
func (b *Buffer[T]) Destroy() error {
	if b == nil {
		return bufferErrorf(opDestroy, ErrNilBuffer)
	}
	if b.tr.opts.checked && b.destroyed {
		return b.tr.fail(bufferErrorf(opDestroy, ErrDestroyed))
	}

	b.tr.Record(-(headerBytes + int64(b.Cap())))
	b.data = nil
	b.destroyed = true

	return nil
}

// live validates the receiver for op. Destroyed buffers are only detected in
// checked mode.
func (b *Buffer[T]) live(op string) error {
	if b == nil {
		return bufferErrorf(op, ErrNilBuffer)
	}
	if b.tr.opts.checked && b.destroyed {
		return b.tr.fail(bufferErrorf(op, ErrDestroyed))
	}

	return nil
}

// Check reports whether b may be used: ErrNilBuffer for a nil receiver,
// ErrDestroyed (checked mode only) after Destroy. Unlike the methods of b it
// does not report through the tracker; callers pass the result to Fail.
func (b *Buffer[T]) Check() error {
	if b == nil {
		return ErrNilBuffer
	}
	if b.tr.opts.checked && b.destroyed {
		return ErrDestroyed
	}

	return nil
}

// Tracker returns the tracker this buffer is accounted against.
func (b *Buffer[T]) Tracker() *Tracker { return b.tr }

// Span returns the element width.
func (b *Buffer[T]) Span() Span { return SpanOf[T]() }

// Len returns the length in bytes.
func (b *Buffer[T]) Len() int { return len(b.data) * int(SpanOf[T]()) }

// Cap returns the capacity in bytes.
func (b *Buffer[T]) Cap() int { return cap(b.data) * int(SpanOf[T]()) }

// Count returns the number of live elements (Len / Span).
func (b *Buffer[T]) Count() int { return len(b.data) }

// Destroyed reports whether Destroy has been called.
func (b *Buffer[T]) Destroyed() bool { return b.destroyed }

// SetLength sets the length in bytes; it must be a multiple of the span.
// Growth beyond capacity reallocates to exactly newLength bytes.
func (b *Buffer[T]) SetLength(newLength int) error {
	if err := b.live(opSetLength); err != nil {
		return err
	}
	span := int(SpanOf[T]())
	if b.tr.opts.checked && (newLength < 0 || newLength%span != 0) {
		return b.tr.fail(bufferErrorf(opSetLength, fmt.Errorf("%d bytes, span %d: %w", newLength, span, ErrMisaligned)))
	}

	b.setCount(newLength / span)

	return nil
}

// SetCount sets the length in elements with the same growth rule as SetLength.
func (b *Buffer[T]) SetCount(n int) error {
	if err := b.live(opSetCount); err != nil {
		return err
	}
	if n < 0 {
		return b.tr.fail(bufferErrorf(opSetCount, fmt.Errorf("count %d: %w", n, ErrOutOfRange)))
	}

	b.setCount(n)

	return nil
}

// setCount grows exactly when needed and zeroes newly exposed elements.
func (b *Buffer[T]) setCount(n int) {
	old := len(b.data)
	if n > cap(b.data) {
		b.realloc(n)
	}
	b.data = b.data[:n]
	if n > old {
		clear(b.data[old:n])
	}
}

// realloc moves the live elements into storage of exactly capacity elements
// and records the capacity delta. The length is truncated if needed.
func (b *Buffer[T]) realloc(capacity int) {
	keep := min(len(b.data), capacity)
	next := make([]T, keep, capacity)
	copy(next, b.data[:keep])

	b.tr.Record(int64(capacity-cap(b.data)) * int64(SpanOf[T]()))
	b.data = next
}

// Resize sets the capacity to exactly newCapacity bytes, truncating the length
// when it no longer fits. Shrinking releases the difference to the tracker.
func (b *Buffer[T]) Resize(newCapacity int) error {
	if err := b.live(opResize); err != nil {
		return err
	}
	span := int(SpanOf[T]())
	if newCapacity < 0 || newCapacity%span != 0 {
		return b.tr.fail(bufferErrorf(opResize, fmt.Errorf("%d bytes, span %d: %w", newCapacity, span, ErrMisaligned)))
	}
	if newCapacity/span == cap(b.data) {
		return nil
	}

	b.realloc(newCapacity / span)

	return nil
}

// At returns a pointer to element i without any validation beyond Go's own
// slice bounds check. The pointer is invalidated by any growth.
func (b *Buffer[T]) At(i int) *T { return &b.data[i] }

// Get returns element i or ErrOutOfRange.
func (b *Buffer[T]) Get(i int) (T, error) {
	var zero T
	if err := b.live(opGet); err != nil {
		return zero, err
	}
	if i < 0 || i >= len(b.data) {
		return zero, b.tr.fail(bufferErrorf(opGet, fmt.Errorf("index %d, count %d: %w", i, len(b.data), ErrOutOfRange)))
	}

	return b.data[i], nil
}

// Set stores v at element i or returns ErrOutOfRange.
func (b *Buffer[T]) Set(i int, v T) error {
	if err := b.live(opSet); err != nil {
		return err
	}
	if i < 0 || i >= len(b.data) {
		return b.tr.fail(bufferErrorf(opSet, fmt.Errorf("index %d, count %d: %w", i, len(b.data), ErrOutOfRange)))
	}
	b.data[i] = v

	return nil
}

// Append pushes values at the end, growing exactly to fit.
func (b *Buffer[T]) Append(values ...T) error {
	if err := b.live(opAppend); err != nil {
		return err
	}
	if need := len(b.data) + len(values); need > cap(b.data) {
		b.realloc(need)
	}
	b.data = append(b.data, values...)

	return nil
}

// Pop removes the last n elements and returns them in order.
// Capacity is left untouched.
func (b *Buffer[T]) Pop(n int) ([]T, error) {
	if err := b.live(opPop); err != nil {
		return nil, err
	}
	if n < 0 || n > len(b.data) {
		return nil, b.tr.fail(bufferErrorf(opPop, fmt.Errorf("pop %d of %d: %w", n, len(b.data), ErrOutOfRange)))
	}

	keep := len(b.data) - n
	out := make([]T, n)
	copy(out, b.data[keep:])
	b.data = b.data[:keep]

	return out, nil
}

// Clone returns a deep copy accounted against the same tracker.
func (b *Buffer[T]) Clone() (*Buffer[T], error) {
	if err := b.live(opClone); err != nil {
		return nil, err
	}

	return FromRaw(b.tr, b.data), nil
}

// Values returns a copy of the live elements.
func (b *Buffer[T]) Values() []T {
	out := make([]T, len(b.data))
	copy(out, b.data)

	return out
}

// Bytes returns the live elements as raw bytes in host byte order.
// The slice aliases the storage and is invalidated by any growth.
func (b *Buffer[T]) Bytes() []byte {
	if len(b.data) == 0 {
		return nil
	}

	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(b.data))), b.Len())
}
