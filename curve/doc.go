// SPDX-License-Identifier: MIT

// Package curve evaluates Bezier curves over buffer.Buffer control points by
// De Casteljau reduction.
//
// Control points are stored back to back: k points of a axes each occupy
// k*a consecutive elements. The parameter t is not clamped; values outside
// [0, 1] extrapolate along the curve.
package curve
