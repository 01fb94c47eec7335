// SPDX-License-Identifier: MIT

package curve

import (
	"fmt"

	"github.com/katalvlaran/mvec/buffer"
	"golang.org/x/exp/constraints"
)

// Lerp interpolates from a toward b: (1-t)*a + t*b.
// Lerp(a, b, 0) == a and Lerp(a, b, 1) == b exactly for finite inputs.
func Lerp[T constraints.Float](a, b, t T) T {
	return (1-t)*a + t*b
}

// Bezier evaluates the curve defined by the control points in points at t.
// MAIN DESCRIPTION:
//   - De Casteljau: each pass replaces adjacent points (P_i, P_i+1) with
//     Lerp(P_i, P_i+1, t) per axis, so a row of r points yields r-1 points.
//     After k-1 passes a single point remains.
//
// Implementation:
//   - Stage 1: validate axes and shape.
//   - Stage 2: allocate a scratch buffer sized for the whole triangle,
//     k + (k-1) + … + 1 points, and seed it with the control points.
//   - Stage 3: append each reduced row after the previous one.
//   - Stage 4: copy the last point out as a fresh buffer; destroy scratch.
//
// Behavior highlights:
//   - t == 0 returns the first control point, t == 1 the last.
//   - A single control point is returned as a copy.
//   - Scratch and result are accounted against points' tracker.
//
// Errors:
//   - buffer.ErrNilBuffer, buffer.ErrDestroyed (checked mode), ErrInvalidAxes,
//     ErrShape, ErrNoPoints. All but the nil case are reported through the
//     points' tracker.
//
// Complexity:
//   - Time O(k²·axes), Space O(k²·axes).
func Bezier[T constraints.Float](points *buffer.Buffer[T], axes int, t T) (*buffer.Buffer[T], error) {
	if err := points.Check(); err != nil {
		return nil, fail(points, err)
	}
	if axes <= 0 {
		return nil, fail(points, fmt.Errorf("axes %d: %w", axes, ErrInvalidAxes))
	}
	count := points.Count()
	if count == 0 {
		return nil, fail(points, ErrNoPoints)
	}
	if count%axes != 0 {
		return nil, fail(points, fmt.Errorf("%d elements, %d axes: %w", count, axes, ErrShape))
	}

	k := count / axes
	cache := buffer.New[T](points.Tracker(), k*(k+1)/2*axes)
	defer func() { _ = cache.Destroy() }()
	if err := buffer.Copy(cache, points, 0, 0, count); err != nil {
		return nil, curveErrorf(opBezier, err)
	}

	rowStart := 0
	for rowPoints := k; rowPoints > 1; rowPoints-- {
		next := cache.Count()
		if err := cache.SetCount(next + (rowPoints-1)*axes); err != nil {
			return nil, curveErrorf(opBezier, err)
		}
		for i := 0; i < rowPoints-1; i++ {
			p := rowStart + i*axes
			for c := 0; c < axes; c++ {
				*cache.At(next + i*axes + c) = Lerp(*cache.At(p + c), *cache.At(p + axes + c), t)
			}
		}
		rowStart = next
	}

	out, err := buffer.Sub(cache, cache.Count()-axes, axes)
	if err != nil {
		return nil, curveErrorf(opBezier, err)
	}

	return out, nil
}
