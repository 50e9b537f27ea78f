// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package concur provides a bounded ring-buffer queue built around a
// per-slot ticket/status token, together with the wait strategies, locks,
// condition pairing, mutex queue, task type, and thread pool that round out
// a native-style concurrency toolkit.
//
// # The ring
//
// Ring[T, S] is the core: a fixed-capacity FIFO where every slot carries a
// single atomic token fusing a round sequence number with a four-bit status
// (VALID, INVALID, WAITING, CLOSED). Producers and consumers each claim a
// monotonic ticket (fetch-and-add on tail or head), wait for their slot to
// reach the expected sequence, then publish or consume. S, the wait
// strategy, is a compile-time type parameter — [SpinWait], [YieldWait],
// [ParkWait], or [CondWait] — so the chosen strategy's calls are direct and
// monomorphized rather than dispatched through an interface on every
// operation.
//
//	r := concur.Build[int, concur.SpinWait](concur.New(1024))
//	status, err := r.Push(42)
//	v, status := r.WaitPop()
//
// # Closing
//
// Close is tri-state (open → closing → closed) so concurrent Close calls
// are idempotent and producers already holding a ticket inside the final
// reserved lap are allowed to complete. Producers and consumers past that
// lap observe [Closed]. Close does not rescue a producer blocked with no
// consumer draining the queue — see [Ring.Close].
//
// # Non-blocking variants
//
// TryPush and TryPop never claim a ticket they cannot immediately fill:
// they peek the target slot and only commit via compare-and-swap once it
// is confirmed ready, reporting [Full] or [Busy] on failure instead of
// blocking.
//
// # Supporting packages
//
// concur/backoff holds pause primitives and backoff policies used to pace
// the ring's spin loop before it escalates to S's blocking wait cycle.
// concur/park is the OS-park emulation [ParkWait] escalates to.
// concur/lock, concur/cond, and concur/mqueue are external collaborators —
// a mutex-queue alternative to the ring, and the primitives a thread pool
// (concur/pool) is built from around a task.Task.
package concur
