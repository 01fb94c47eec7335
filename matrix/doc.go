// Package matrix offers dense row-major kernels over buffer.Buffer values.
//
// The matrix package provides:
//
//   - Transpose: in-place transpose of an m×n matrix by permutation cycles,
//     using one scratch element and an m*n-bit visited map.
//   - Dot: C = A × B for any buffer.Element type, accumulating in that type.
//   - Identity / SetIdentity: n×n identity fill.
//
// A matrix here is just a buffer plus the shape the caller passes in; the
// buffer's element count must equal the product of the dimensions. Scratch
// and result buffers are accounted against the operand's tracker.
//
// See the tests in this package for usage patterns.
package matrix
