// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lock

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/concur/backoff"
)

// SpinLock is a test-and-set spin lock over a single atomic flag: every
// acquisition attempt, contended or not, issues a CompareAndSwap.
type SpinLock struct {
	locked atomix.Uint32
}

// Lock spins b between CAS attempts until it acquires the lock.
func (l *SpinLock) Lock(b backoff.Backoff) {
	for !l.TryLock() {
		b.Backoff()
	}
}

// TryLock attempts a single acquisition, returning false if the lock is
// already held.
func (l *SpinLock) TryLock() bool {
	return l.locked.CompareAndSwapAcqRel(0, 1)
}

// Unlock releases the lock. Calling Unlock without holding the lock is
// undefined.
func (l *SpinLock) Unlock() {
	l.locked.StoreRelease(0)
}
