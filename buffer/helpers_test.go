// SPDX-License-Identifier: MIT
// Package buffer_test contains shared fixtures for the buffer tests.

package buffer_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/mvec/buffer"
	"github.com/katalvlaran/mvec/diag"
	"github.com/stretchr/testify/require"
)

// newTracker returns an isolated tracker that must be clean when the test ends.
func newTracker(t *testing.T, opts ...buffer.Option) *buffer.Tracker {
	t.Helper()
	tr := buffer.NewTracker(opts...)
	t.Cleanup(func() {
		require.NoError(t, tr.Checkpoint(), "tracker not clean at end of test")
	})

	return tr
}

// exits records the status codes passed to a diag exit hook.
type exits struct{ codes []int }

func (e *exits) exit(code int) { e.codes = append(e.codes, code) }

// fatalTracker returns a tracker that reports violations to a logger whose
// exit hook is recorded instead of terminating the test binary.
func fatalTracker(t *testing.T) (*buffer.Tracker, *exits, *bytes.Buffer) {
	t.Helper()
	var (
		out bytes.Buffer
		rec exits
	)
	l := diag.New(&out, nil, diag.WithExit(rec.exit))

	return buffer.NewTracker(buffer.WithFatal(l)), &rec, &out
}

// headerSize measures the per-buffer header charge on a scratch tracker.
func headerSize(t *testing.T) int64 {
	t.Helper()
	tr := buffer.NewTracker()
	b := buffer.New[byte](tr, 0)
	h := tr.Live()
	require.NoError(t, b.Destroy())

	return h
}
