// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cond pairs a [code.hybscloud.com/concur/lock.BlockingLock] with a
// condition-variable-like wait/notify object, the spec.md §4.5 collaborator
// the mutex queue (concur/mqueue) is built on.
package cond

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/concur/backoff"
	"code.hybscloud.com/concur/lock"
	"code.hybscloud.com/concur/park"
)

// Cond is bound to a single [lock.BlockingLock] for its whole lifetime: the
// guard passed to every Wait call must be that same lock, already held by
// the calling goroutine.
type Cond struct {
	guard *lock.BlockingLock
	seq   atomix.Uint32
}

// New returns a Cond paired with guard.
func New(guard *lock.BlockingLock) *Cond {
	return &Cond{guard: guard}
}

// Wait atomically releases guard and parks the caller, reacquiring guard
// before returning. Spurious wakeups are permitted; callers must re-check
// their predicate in a loop, exactly as with sync.Cond.
func (c *Cond) Wait() {
	c.WaitWithBackoff(backoff.NoBackoff{})
}

// WaitWithBackoff is Wait with an explicit backoff spun while reacquiring
// guard after being woken.
func (c *Cond) WaitWithBackoff(b backoff.Backoff) {
	seq := c.seq.LoadAcquire()
	c.guard.Unlock()
	park.Wait(&c.seq, seq)
	c.guard.Lock(b)
}

// NotifyOne wakes at most one waiter parked in Wait.
func (c *Cond) NotifyOne() {
	c.seq.AddAcqRel(1)
	park.Wake(&c.seq, 1)
}

// NotifyAll wakes every waiter parked in Wait. It marks guard with-waiters
// (when guard is held) and hands off through [park.Requeue]; because the
// park emulation cannot move a parked goroutine between addresses, every
// waiter is woken directly and re-races for guard in its own Lock call.
func (c *Cond) NotifyAll() {
	c.seq.AddAcqRel(1)
	c.guard.MarkWaiting()
	park.Requeue(&c.seq, c.guard.Addr(), -1, 0)
}
