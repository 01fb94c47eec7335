// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/mvec/buffer"
)

// Transpose rewrites the row-major m×n matrix held in b as its n×m transpose,
// in place.
// MAIN DESCRIPTION:
//   - Element at linear index i (row i/n, column i%n) belongs at
//     f(i) = (i mod n)*m + i div n in the result. f is a permutation of
//     [0, m*n); each of its cycles is rotated one step through a single
//     scratch element.
//
// Implementation:
//   - Stage 1: validate shape; return early when min(m,n) == 1 (a vector is
//     its own transpose in row-major layout).
//   - Stage 2: allocate a visited bitmap of m*n bits from b's tracker.
//   - Stage 3: for every unvisited start in [1, m*n-2], carry b[start] along
//     start → f(start) → … → start, swapping it into each slot and marking it.
//   - Stage 4: release the bitmap.
//
// Behavior highlights:
//   - Indices 0 and m*n-1 are fixed points and are never touched.
//   - Extra storage is one element plus ⌈m*n/64⌉ words; no second matrix.
//   - b's count is unchanged; callers reinterpret it as n×m afterwards.
//
// Errors:
//   - buffer.ErrNilBuffer, buffer.ErrDestroyed, ErrInvalidDimensions,
//     ErrDimensionMismatch (count != m*n).
//
// Determinism:
//   - Fixed start order and cycle direction.
//
// Complexity:
//   - Time O(m*n) (each element moves once), Space O(1) elements + m*n bits.
//
// AI-Hints:
//   - Transpose(b, m, n) followed by Transpose(b, n, m) restores b.
func Transpose[T buffer.Element](b *buffer.Buffer[T], m, n int) error {
	if err := ValidateMatrix(b, m, n); err != nil {
		return fail(b, opTranspose, err)
	}
	if min(m, n) == 1 {
		return nil
	}

	total := m * n
	seen := newBitmap(b.Tracker(), total)
	defer seen.release()

	var carry T // the one scratch element
	for start := 1; start < total-1; start++ {
		if seen.test(start) {
			continue
		}

		carry = *b.At(start)
		j := start
		for {
			j = (j%n)*m + j/n // f(j)
			slot := b.At(j)
			carry, *slot = *slot, carry
			seen.set(j)
			if j == start {
				break
			}
		}
	}

	return nil
}

// bitmap is a fixed-size bit set stored in a tracked Buffer[uint64].
type bitmap struct {
	words *buffer.Buffer[uint64]
}

// newBitmap allocates room for n bits, all clear.
func newBitmap(tr *buffer.Tracker, n int) bitmap {
	words := (n + 63) / 64
	b := buffer.New[uint64](tr, words)
	_ = b.SetCount(words) // fresh buffer; zeroed

	return bitmap{words: b}
}

func (bm bitmap) test(i int) bool { return *bm.words.At(i>>6)&(1<<(uint(i)&63)) != 0 }

func (bm bitmap) set(i int) { *bm.words.At(i>>6) |= 1 << (uint(i) & 63) }

func (bm bitmap) release() { _ = bm.words.Destroy() }
