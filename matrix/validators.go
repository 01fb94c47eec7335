// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for shape checks on row-major buffers.
//  - Return plain sentinels (tagged with the validator name) so kernels can
//    wrap uniformly with matrixErrorf.
//
// Determinism & Performance:
//  - All checks are O(1) and allocate nothing.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/mvec/buffer"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateShape ensures every dimension is positive.
//
// Returns ErrInvalidDimensions otherwise.
// Complexity: O(len(dims)).
func ValidateShape(dims ...int) error {
	for _, d := range dims {
		if d <= 0 {
			return validatorErrorf("ValidateShape", fmt.Errorf("%v: %w", dims, ErrInvalidDimensions))
		}
	}

	return nil
}

// ValidateMatrix ensures b is usable and holds exactly rows*cols elements.
// The error is returned, not reported; kernels hand it to b's tracker.
//
// Errors: buffer.ErrNilBuffer, buffer.ErrDestroyed (checked mode),
// ErrInvalidDimensions, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMatrix[T buffer.Element](b *buffer.Buffer[T], rows, cols int) error {
	if err := b.Check(); err != nil {
		return validatorErrorf("ValidateMatrix", err)
	}
	if err := ValidateShape(rows, cols); err != nil {
		return err
	}
	if b.Count() != rows*cols {
		return validatorErrorf("ValidateMatrix", fmt.Errorf(
			"%d elements for %dx%d: %w", b.Count(), rows, cols, ErrDimensionMismatch))
	}

	return nil
}
