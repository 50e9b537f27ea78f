// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lock

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/concur/backoff"
)

// TicketLock serves waiters strictly FIFO: each acquirer fetch-and-increments
// a shared tail ticket, then spins until the head ticket reaches its own.
// The distance between the waiter's own ticket and the current head is
// recomputed and threaded through [backoff.ProportionalAdapter] on every
// spin, so a backoff that implements
// [backoff.Proportional] can delay threads far from the head proportionally
// more than threads about to be served.
type TicketLock struct {
	tail atomix.Uint64
	head atomix.Uint64
}

// Lock acquires the lock, spinning b (via the proportional adapter) while
// waiting for its ticket to be served.
func (l *TicketLock) Lock(b backoff.Backoff) {
	my := l.tail.AddAcqRel(1) - 1
	for l.head.LoadAcquire() != my {
		distance := my - l.head.LoadAcquire()
		backoff.ProportionalAdapter(b, uint32(distance))
	}
}

// TryLock acquires the lock only if it is currently unheld and no other
// waiter is already queued ahead of an immediately-servable ticket.
func (l *TicketLock) TryLock() bool {
	head := l.head.LoadAcquire()
	tail := l.tail.LoadAcquire()
	if head != tail {
		return false
	}
	return l.tail.CompareAndSwapAcqRel(head, head+1)
}

// Unlock advances the head ticket, serving the next waiter in line.
func (l *TicketLock) Unlock() {
	l.head.AddAcqRel(1)
}
