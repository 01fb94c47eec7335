// SPDX-License-Identifier: MIT

package buffer

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/dustin/go-humanize"
	"github.com/katalvlaran/mvec/diag"
	"go.uber.org/atomic"
)

// headerBytes is the accounted size of a buffer header, charged on New and
// released on Destroy alongside the capacity.
var headerBytes = int64(unsafe.Sizeof(Buffer[byte]{}))

// Tracker accounts for every byte owned by the buffers created against it.
// The counter grows by header+capacity on New, by the capacity delta on
// growth, and shrinks symmetrically on Resize and Destroy.
//
// Trackers are independent: tests build their own with NewTracker and assert
// a clean Checkpoint without interference from other tests.
type Tracker struct {
	live atomic.Int64
	opts Options
}

// NewTracker returns an empty tracker configured by opts.
func NewTracker(opts ...Option) *Tracker {
	return &Tracker{opts: gatherOptions(opts...)}
}

var (
	defaultOnce    sync.Once
	defaultTracker *Tracker
)

// Default returns the process-wide tracker used when a nil *Tracker is passed.
// It runs in checked mode and reports violations through diag.Standard().
func Default() *Tracker {
	defaultOnce.Do(func() {
		defaultTracker = NewTracker(WithFatal(diag.Standard()))
	})

	return defaultTracker
}

// or returns t, or Default() when t is nil.
func (t *Tracker) or() *Tracker {
	if t == nil {
		return Default()
	}

	return t
}

// Options returns the resolved configuration.
func (t *Tracker) Options() Options { return t.opts }

// Record adjusts the live-byte counter by delta.
func (t *Tracker) Record(delta int64) { t.live.Add(delta) }

// Live returns the bytes currently accounted for.
func (t *Tracker) Live() int64 { return t.live.Load() }

// Checkpoint verifies that every accounted byte has been released.
// A positive counter is ErrLeak, a negative one ErrDoubleFree. With fatal
// reporting enabled the violation terminates the process.
func (t *Tracker) Checkpoint() error {
	n := t.live.Load()
	switch {
	case n > 0:
		return t.fail(fmt.Errorf("%w of %s (%d bytes)", ErrLeak, humanize.IBytes(uint64(n)), n))
	case n < 0:
		return t.fail(fmt.Errorf("%w: %s released twice (%d bytes)", ErrDoubleFree, humanize.IBytes(uint64(-n)), -n))
	default:
		return nil
	}
}

// Fail applies the tracker's reporting policy to err: with fatal reporting
// enabled it is logged through Fatalf. err is returned unchanged so callers
// outside this package can route their own invariant violations the same way
// buffer methods do. A nil tracker selects Default().
func (t *Tracker) Fail(err error) error { return t.or().fail(err) }

// fail reports err through the fatal logger when configured and returns it.
func (t *Tracker) fail(err error) error {
	if t.opts.fatal != nil {
		t.opts.fatal.Fatalf("%v", err)
	}

	return err
}
