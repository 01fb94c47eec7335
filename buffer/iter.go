// SPDX-License-Identifier: MIT

package buffer

import (
	"fmt"
	"iter"
)

// All yields every live element in order. The sequence is lazy, finite and
// may be ranged over again; each pass observes the current contents.
func (b *Buffer[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range b.data {
			if !yield(v) {
				return
			}
		}
	}
}

// Each yields (index, pointer) pairs so callers can mutate in place.
// Pointers must not be retained across growth.
func (b *Buffer[T]) Each() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := range b.data {
			if !yield(i, &b.data[i]) {
				return
			}
		}
	}
}

// Both pairs every element of a with b[i mod count(b)], broadcasting b when
// it is shorter.
// MAIN DESCRIPTION:
//   - a is walked fully; b wraps around count(a)/count(b) times.
//
// Errors:
//   - ErrSpanMismatch when A and B differ in width.
//   - ErrBroadcast when b is empty or count(a) is not a multiple of count(b).
//
// Notes:
//   - a and b are assumed not to overlap.
//
// Complexity:
//   - Time O(count(a)), Space O(1).
func Both[A, B Element](a *Buffer[A], b *Buffer[B]) (iter.Seq2[*A, *B], error) {
	if err := a.live(opBoth); err != nil {
		return nil, err
	}
	if err := b.live(opBoth); err != nil {
		return nil, err
	}
	if SpanOf[A]() != SpanOf[B]() {
		return nil, a.tr.fail(bufferErrorf(opBoth, fmt.Errorf(
			"span %d vs %d: %w", SpanOf[A](), SpanOf[B](), ErrSpanMismatch)))
	}
	if len(b.data) == 0 || len(a.data)%len(b.data) != 0 {
		return nil, a.tr.fail(bufferErrorf(opBoth, fmt.Errorf(
			"%d by %d: %w", len(a.data), len(b.data), ErrBroadcast)))
	}

	return func(yield func(*A, *B) bool) {
		nb := len(b.data)
		for i := range a.data {
			if !yield(&a.data[i], &b.data[i%nb]) {
				return
			}
		}
	}, nil
}
