// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lock

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/concur/backoff"
	"code.hybscloud.com/concur/park"
)

const (
	unlocked         uint32 = 0
	lockedNoWaiters  uint32 = 1
	lockedWithWaiter uint32 = 2
)

// BlockingLock is a three-state futex-style mutex: unlocked, locked with no
// parked waiters, or locked with at least one parked waiter. Lock spins b
// first; once b reports its ceiling reached, the lock marks itself
// with-waiters and parks via [park.Wait] rather than spinning indefinitely.
// Unlock wakes one parked waiter only when the word indicated one was
// present, so the common uncontended release never touches [park.Wake].
type BlockingLock struct {
	state atomix.Uint32
}

// Lock acquires the lock, escalating from b's spin cycle to an OS park once
// b's ceiling is reached.
func (l *BlockingLock) Lock(b backoff.Backoff) {
	if l.state.CompareAndSwapAcqRel(unlocked, lockedNoWaiters) {
		return
	}
	for {
		escalate := b.Backoff()
		if !escalate {
			if l.state.CompareAndSwapAcqRel(unlocked, lockedNoWaiters) {
				return
			}
			continue
		}
		cur := l.state.SwapAcqRel(lockedWithWaiter)
		if cur == unlocked {
			return
		}
		park.Wait(&l.state, lockedWithWaiter)
	}
}

// TryLock attempts a single uncontended acquisition.
func (l *BlockingLock) TryLock() bool {
	return l.state.CompareAndSwapAcqRel(unlocked, lockedNoWaiters)
}

// Unlock releases the lock, waking one parked waiter if the state indicated
// any were present.
func (l *BlockingLock) Unlock() {
	if l.state.SwapAcqRel(unlocked) == lockedWithWaiter {
		park.Wake(&l.state, 1)
	}
}

// Addr exposes the lock's state word to [code.hybscloud.com/concur/cond] so
// Cond can requeue parked waiters directly onto it via [park.Requeue].
func (l *BlockingLock) Addr() *atomix.Uint32 {
	return &l.state
}

// MarkWaiting transitions the lock's state word to with-waiters without
// acquiring or releasing it, for use by [code.hybscloud.com/concur/cond]
// just before it requeues a waiter onto this lock's address. An unlocked
// lock is left as it is.
func (l *BlockingLock) MarkWaiting() {
	for {
		cur := l.state.LoadAcquire()
		if cur == lockedWithWaiter || cur == unlocked {
			return
		}
		if l.state.CompareAndSwapAcqRel(cur, lockedWithWaiter) {
			return
		}
	}
}
