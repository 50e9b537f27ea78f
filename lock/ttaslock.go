// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lock

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/concur/backoff"
)

// TTASLock is a test-and-test-and-set spin lock: it spins on a plain
// acquire load between CAS attempts instead of retrying the CAS itself,
// keeping a contended cache line in the Shared MESI state while waiting
// rather than bouncing it Modified on every failed attempt.
type TTASLock struct {
	locked atomix.Uint32
}

// Lock spins b, re-reading the flag before every CAS attempt, until it
// acquires the lock.
func (l *TTASLock) Lock(b backoff.Backoff) {
	for {
		for l.locked.LoadAcquire() != 0 {
			b.Backoff()
		}
		if l.TryLock() {
			return
		}
	}
}

// TryLock attempts a single acquisition, returning false if the lock is
// already held.
func (l *TTASLock) TryLock() bool {
	return l.locked.LoadAcquire() == 0 && l.locked.CompareAndSwapAcqRel(0, 1)
}

// Unlock releases the lock. Calling Unlock without holding the lock is
// undefined.
func (l *TTASLock) Unlock() {
	l.locked.StoreRelease(0)
}
