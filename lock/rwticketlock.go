// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lock

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/concur/backoff"
)

// RWTicketLock is a FIFO reader/writer lock: readers and writers draw from
// the same ticket dispenser, so a writer behind N already-ticketed readers
// is served after those N readers and before any reader that arrives later
// — the lock never starves a writer by letting new readers cut the queue.
//
// Readers past their ticket advance serving immediately, so consecutive
// reader tickets run concurrently; a writer past its ticket additionally
// waits for every reader that entered ahead of it to finish (readers
// reaching zero) before proceeding, and only advances serving itself on
// Unlock, holding the lock exclusively for its whole critical section.
type RWTicketLock struct {
	next    atomix.Uint64
	serving atomix.Uint64
	readers atomix.Int64
}

// RLock acquires a shared (read) hold on the lock.
func (l *RWTicketLock) RLock(b backoff.Backoff) {
	my := l.next.AddAcqRel(1) - 1
	for l.serving.LoadAcquire() != my {
		backoff.ProportionalAdapter(b, uint32(my-l.serving.LoadAcquire()))
	}
	l.readers.AddAcqRel(1)
	l.serving.AddAcqRel(1)
}

// RUnlock releases a shared hold acquired with RLock.
func (l *RWTicketLock) RUnlock() {
	l.readers.AddAcqRel(-1)
}

// Lock acquires an exclusive (write) hold on the lock.
func (l *RWTicketLock) Lock(b backoff.Backoff) {
	my := l.next.AddAcqRel(1) - 1
	for l.serving.LoadAcquire() != my {
		backoff.ProportionalAdapter(b, uint32(my-l.serving.LoadAcquire()))
	}
	for l.readers.LoadAcquire() != 0 {
		b.Backoff()
	}
}

// Unlock releases an exclusive hold acquired with Lock, handing the lock to
// the next queued ticket (reader or writer).
func (l *RWTicketLock) Unlock() {
	l.serving.AddAcqRel(1)
}
