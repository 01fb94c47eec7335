// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/mvec/buffer"
)

// Dot performs dense matrix multiplication C = A × B on row-major buffers.
// Implementation:
//   - Stage 1: validate A as m×n and B as n×p.
//   - Stage 2: allocate C (m×p) from A's tracker.
//   - Stage 3: for each (row, col) accumulate Σ_k A[row,k]·B[k,col] left to
//     right in T and store it.
//
// Behavior highlights:
//   - Accumulation stays in T: integers wrap on overflow, floats follow IEEE
//     rounding in k order. No zero skipping, no reordering.
//   - A and B are never mutated; C is a fresh buffer owned by the caller.
//
// Inputs:
//   - a: m×n buffer. b: n×p buffer with the same element type.
//
// Returns:
//   - *buffer.Buffer[T]: m×p product.
//
// Errors:
//   - buffer.ErrNilBuffer, buffer.ErrDestroyed, ErrInvalidDimensions,
//     ErrDimensionMismatch.
//
// Complexity:
//   - Time O(m*n*p), Space O(m*p).
func Dot[T buffer.Element](a, b *buffer.Buffer[T], m, n, p int) (*buffer.Buffer[T], error) {
	if err := ValidateMatrix(a, m, n); err != nil {
		return nil, fail(a, opDot, err)
	}
	if err := ValidateMatrix(b, n, p); err != nil {
		return nil, fail(b, opDot, err)
	}

	c := buffer.New[T](a.Tracker(), m*p)
	_ = c.SetCount(m * p) // fresh buffer

	var (
		row, col, k int
		sum         T
		rowA        int
	)
	for row = 0; row < m; row++ {
		rowA = row * n
		for col = 0; col < p; col++ {
			sum = 0
			for k = 0; k < n; k++ {
				sum += *a.At(rowA + k) * *b.At(k*p + col)
			}
			*c.At(row*p + col) = sum
		}
	}

	return c, nil
}
