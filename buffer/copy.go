// SPDX-License-Identifier: MIT

package buffer

import "fmt"

// Copy copies count elements from src[srcIndex:] into dst[dstIndex:].
// MAIN DESCRIPTION:
//   - Same element type on both sides, so the spans always agree.
//   - dst grows (exactly, via SetCount) when dstIndex+count exceeds its count.
//
// Errors (checked mode):
//   - ErrNilBuffer, ErrDestroyed.
//   - ErrOutOfRange when srcIndex+count exceeds src's count, or any index/count
//     is negative. Source-side violations are reported through src's tracker,
//     a negative dstIndex through dst's; each side's checked mode applies.
//
// Notes:
//   - dst == src is allowed; overlapping ranges behave like memmove.
//
// Complexity:
//   - Time O(count) plus O(dst) on growth.
func Copy[T Element](dst, src *Buffer[T], dstIndex, srcIndex, count int) error {
	if err := dst.live(opCopy); err != nil {
		return err
	}
	if err := src.live(opCopy); err != nil {
		return err
	}
	if src.tr.opts.checked {
		if srcIndex < 0 || count < 0 || srcIndex+count > len(src.data) {
			return src.tr.fail(bufferErrorf(opCopy, fmt.Errorf(
				"src[%d:%d] of %d into dst[%d]: %w", srcIndex, srcIndex+count, len(src.data), dstIndex, ErrOutOfRange)))
		}
	}
	if dst.tr.opts.checked && dstIndex < 0 {
		return dst.tr.fail(bufferErrorf(opCopy, fmt.Errorf("dst index %d: %w", dstIndex, ErrOutOfRange)))
	}

	if end := dstIndex + count; end > len(dst.data) {
		dst.setCount(end)
	}
	copy(dst.data[dstIndex:dstIndex+count], src.data[srcIndex:srcIndex+count])

	return nil
}

// Sub returns a new buffer holding a deep copy of count elements of src
// starting at index. The result is accounted against src's tracker.
func Sub[T Element](src *Buffer[T], index, count int) (*Buffer[T], error) {
	if err := src.live(opSub); err != nil {
		return nil, err
	}
	if src.tr.opts.checked {
		if index < 0 || count < 0 || index+count > len(src.data) {
			return nil, src.tr.fail(bufferErrorf(opSub, fmt.Errorf(
				"[%d:%d] of %d: %w", index, index+count, len(src.data), ErrOutOfRange)))
		}
	}

	return FromRaw(src.tr, src.data[index:index+count]), nil
}

// Cast converts every element of src to To and returns the result as a new
// buffer accounted against tr. Both element types must share the same span,
// so the byte length is preserved.
func Cast[To, From Element](tr *Tracker, src *Buffer[From]) (*Buffer[To], error) {
	if err := src.live(opCast); err != nil {
		return nil, err
	}
	tr = tr.or()
	if SpanOf[To]() != SpanOf[From]() {
		return nil, tr.fail(bufferErrorf(opCast, fmt.Errorf(
			"span %d to %d: %w", SpanOf[From](), SpanOf[To](), ErrSpanMismatch)))
	}

	out := New[To](tr, len(src.data))
	for _, v := range src.data {
		out.data = append(out.data, To(v))
	}

	return out, nil
}
