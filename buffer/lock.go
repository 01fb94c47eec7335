// SPDX-License-Identifier: MIT

package buffer

import (
	"fmt"
	"runtime"
)

// Owner identifies a lock holder. Zero is reserved for "unlocked".
type Owner uint8

// Unlocked is the owner value of a free buffer.
const Unlocked Owner = 0

// Owner returns the current lock holder, or Unlocked.
func (b *Buffer[T]) Owner() Owner { return Owner(b.owner.Load()) }

// Locked reports whether any owner holds the lock.
func (b *Buffer[T]) Locked() bool { return b.Owner() != Unlocked }

// AwaitLock spins until the buffer is free and then records owner as holder.
//
// The lock is advisory: nothing else in this package consults it. There is
// no backoff and no timeout; the spin yields the processor between attempts.
// Re-locking by the current holder is rejected instead of spinning forever.
func (b *Buffer[T]) AwaitLock(owner Owner) error {
	if err := b.live(opLock); err != nil {
		return err
	}
	if owner == Unlocked {
		return b.tr.fail(bufferErrorf(opLock, ErrInvalidOwner))
	}

	for !b.owner.CompareAndSwap(uint32(Unlocked), uint32(owner)) {
		if b.Owner() == owner {
			return b.tr.fail(bufferErrorf(opLock, fmt.Errorf("owner %d: %w", owner, ErrAlreadyLocked)))
		}
		runtime.Gosched()
	}

	return nil
}

// TryLock takes the lock for owner if it is free and reports success.
func (b *Buffer[T]) TryLock(owner Owner) bool {
	if owner == Unlocked {
		return false
	}

	return b.owner.CompareAndSwap(uint32(Unlocked), uint32(owner))
}

// Unlock releases the lock held by owner. Any other caller gets ErrNotOwner,
// which is fatal when the tracker reports violations.
func (b *Buffer[T]) Unlock(owner Owner) error {
	if err := b.live(opUnlock); err != nil {
		return err
	}
	if owner == Unlocked {
		return b.tr.fail(bufferErrorf(opUnlock, ErrInvalidOwner))
	}
	if !b.owner.CompareAndSwap(uint32(owner), uint32(Unlocked)) {
		return b.tr.fail(bufferErrorf(opUnlock, fmt.Errorf(
			"owner %d tried to unlock while owner %d held the lock: %w", owner, b.Owner(), ErrNotOwner)))
	}

	return nil
}
