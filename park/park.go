// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package park provides a futex-equivalent OS wait primitive: park a
// goroutine on the address of a 32-bit word until the word's value
// changes, and wake waiters parked on that address.
//
// Go exposes no portable raw futex syscall, so this is the condvar-backed
// emulation spec.md §4.3 explicitly allows when no native facility exists.
// Waiters are bucketed by address hash into a fixed table of monitors, the
// same "shard of mutex+cond" shape used by user-space futex emulations
// (parking-lot designs) and by evenk's own futex_cond_var fallback for
// non-Linux targets.
//
// All three operations are best-effort: spurious wakeups are permitted.
// Callers must always re-check the word after Wait returns.
package park

import (
	"sync"
	"unsafe"

	"code.hybscloud.com/atomix"
)

func ptrOf(addr *atomix.Uint32) unsafe.Pointer {
	return unsafe.Pointer(addr)
}

const bucketCount = 256

type bucket struct {
	mu   sync.Mutex
	cond sync.Cond
}

var buckets = newBuckets()

func newBuckets() *[bucketCount]bucket {
	var b [bucketCount]bucket
	for i := range b {
		b[i].cond.L = &b[i].mu
	}
	return &b
}

func bucketFor(addr *atomix.Uint32) *bucket {
	h := uintptr(ptrOf(addr))
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	return &buckets[h%bucketCount]
}

// Wait blocks the calling goroutine if and only if addr currently holds
// expect. It returns as soon as the word is observed to change, after a
// Wake targeting addr, or spuriously.
func Wait(addr *atomix.Uint32, expect uint32) {
	b := bucketFor(addr)
	b.mu.Lock()
	if addr.LoadAcquire() == expect {
		b.cond.Wait()
	}
	b.mu.Unlock()
}

// Wake wakes up to n goroutines parked on addr. n <= 0 wakes all of them.
func Wake(addr *atomix.Uint32, n int) {
	b := bucketFor(addr)
	b.mu.Lock()
	if n <= 0 {
		b.cond.Broadcast()
	} else {
		for i := 0; i < n; i++ {
			b.cond.Signal()
		}
	}
	b.mu.Unlock()
}

// Requeue stands in for a futex requeue from from to to: it wakes up to
// wake goroutines parked on from (all of them when wake <= 0) and, when
// requeue is non-zero, wakes up to requeue goroutines parked on to (all of
// them when requeue < 0). No waiter is moved between addresses.
//
// The condvar-backed emulation cannot literally move a goroutine between
// wait queues the way a kernel futex requeue does, so Requeue approximates
// it by waking the requested counts directly on both buckets; goroutines
// woken on from observe the guard state and re-park on to themselves if
// the predicate still holds. This preserves the only externally observable
// contract (bounded, best-effort wakeups, no missed wakeup), at the cost of
// one extra spurious wake cycle versus a true kernel requeue.
func Requeue(from, to *atomix.Uint32, wake, requeue int) {
	Wake(from, wake)
	if requeue != 0 {
		Wake(to, requeue)
	}
}
