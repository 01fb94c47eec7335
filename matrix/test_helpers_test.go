// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the transpose and dot kernels.
//   • Keep every test on its own tracker so leaks are caught per test.

package matrix_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/katalvlaran/mvec/buffer"
	"github.com/katalvlaran/mvec/diag"
	"github.com/stretchr/testify/require"
)

// floatEps is the absolute tolerance for float32 comparisons against gonum.
const floatEps = 1e-4

// newTracker returns an isolated tracker that must be clean at test end.
func newTracker(tb testing.TB) *buffer.Tracker {
	tb.Helper()
	tr := buffer.NewTracker()
	tb.Cleanup(func() {
		require.NoError(tb, tr.Checkpoint(), "tracker not clean at end of test")
	})

	return tr
}

// fatalTracker returns a tracker whose violations go to a logger with a
// recording exit hook, plus the recorded exit codes and the log output.
func fatalTracker(tb testing.TB) (*buffer.Tracker, *[]int, *bytes.Buffer) {
	tb.Helper()
	var (
		out   bytes.Buffer
		codes []int
	)
	l := diag.New(&out, nil, diag.WithExit(func(code int) { codes = append(codes, code) }))

	return buffer.NewTracker(buffer.WithFatal(l)), &codes, &out
}

// seq returns 0, 1, …, n-1 as T.
func seq[T buffer.Element](n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = T(i)
	}

	return out
}

// randFloats returns n deterministic pseudo-random values in [-1, 1).
func randFloats(n int, seed int64) []float32 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float32, n)
	for i := range out {
		out[i] = rng.Float32()*2 - 1
	}

	return out
}

// mustDestroy destroys b or fails the test.
func mustDestroy[T buffer.Element](tb testing.TB, b *buffer.Buffer[T]) {
	tb.Helper()
	require.NoError(tb, b.Destroy())
}
