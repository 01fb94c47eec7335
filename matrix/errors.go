// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Kernels return these (wrapped with an operation tag) and tests
// check them via errors.Is. Buffer-level failures (nil, destroyed) are passed
// through from package buffer unchanged. Violations on a live operand are
// reported through that operand's tracker (see fail).

package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mvec/buffer"
)

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrDimensionMismatch indicates that a buffer's element count does not
	// match the declared shape (m*n for Transpose, m*n / n*p for Dot).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)

// Operation name constants for unified error wrapping.
const (
	opTranspose   = "Transpose"
	opDot         = "Dot"
	opIdentity    = "Identity"
	opSetIdentity = "SetIdentity"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// fail tags err and reports it through b's tracker, so a fatal tracker
// terminates on shape violations too. A nil b has no tracker; err is returned.
func fail[T buffer.Element](b *buffer.Buffer[T], tag string, err error) error {
	err = matrixErrorf(tag, err)
	if b == nil {
		return err
	}

	return b.Tracker().Fail(err)
}
