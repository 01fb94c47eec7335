// SPDX-License-Identifier: MIT

package curve

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mvec/buffer"
	"golang.org/x/exp/constraints"
)

var (
	// ErrInvalidAxes indicates a non-positive number of axes per point.
	ErrInvalidAxes = errors.New("curve: axes must be > 0")

	// ErrShape indicates an element count that is not a multiple of the axes.
	ErrShape = errors.New("curve: element count not a multiple of axes")

	// ErrNoPoints indicates an empty control-point buffer.
	ErrNoPoints = errors.New("curve: no control points")
)

const opBezier = "Bezier"

func curveErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// fail tags err and reports it through the tracker of points.
func fail[T constraints.Float](points *buffer.Buffer[T], err error) error {
	err = curveErrorf(opBezier, err)
	if points == nil {
		return err
	}

	return points.Tracker().Fail(err)
}
