// SPDX-License-Identifier: MIT

// Package buffer provides Buffer[T], a resizable container of fixed-width
// numeric elements, together with the pieces that travel with it:
//
//   - Tracker: injectable byte accounting with a leak checkpoint.
//   - Owner / AwaitLock / Unlock: advisory per-buffer lock (CAS based).
//   - Text / Stringify / Query: span-1 text building on top of Buffer[byte].
//
// Element width (the span) is part of the type: Buffer[float32] has span 4,
// Buffer[int16] span 2, and so on. Bytes() is the only raw view.
//
// Lifecycle:
//
//	b := buffer.New[float32](tr, 9) // capacity 36 bytes, length 0
//	_ = b.SetCount(9)               // length 36 bytes
//	...
//	_ = b.Destroy()                 // tracker returns to its prior value
//	err := tr.Checkpoint()          // nil when every buffer was destroyed
//
// Growth is exact: any request beyond capacity reallocates to exactly the
// requested size. Shrinking only truncates the length.
//
// Checked vs unchecked:
//
//   - Checked (default): use-after-destroy, range errors in Copy/Sub and
//     misaligned lengths are returned as sentinel errors and, when the tracker
//     was built WithFatal, reported through diag.Logger.Fatalf.
//   - Unchecked (WithChecks(false)): those validations are skipped. Bad indices
//     then surface as Go runtime panics; memory is never silently corrupted.
//
// Get/Set, the lock and span rules are validated in both modes.
//
// Buffers are not safe for concurrent use; coordinate through the advisory
// lock. Only the tracker counter and the lock owner are atomic.
package buffer
