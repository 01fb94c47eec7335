// SPDX-License-Identifier: MIT

package buffer

import (
	"reflect"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Element is the set of fixed-width numeric types a Buffer can hold.
type Element interface {
	constraints.Integer | constraints.Float
}

// Span is the byte width of one element.
type Span uint8

// Supported spans.
const (
	Span8  Span = 1
	Span16 Span = 2
	Span32 Span = 4
	Span64 Span = 8
)

// Bytes returns the span as an int.
func (s Span) Bytes() int { return int(s) }

// Valid reports whether s is one of the supported widths.
func (s Span) Valid() bool {
	switch s {
	case Span8, Span16, Span32, Span64:
		return true
	default:
		return false
	}
}

// SpanOf reports the span of T.
func SpanOf[T Element]() Span {
	var zero T
	return Span(unsafe.Sizeof(zero))
}

// isFloat reports whether T has a floating-point underlying type.
func isFloat[T Element]() bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
