// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concur

import (
	"sync"
	"unsafe"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/concur/backoff"
)

// ptrSize is the size of a pointer in bytes.
const ptrSize = int(unsafe.Sizeof(uintptr(0)))

// pad is cache line padding to prevent false sharing between the ring's
// hot counter fields.
type pad [64]byte

// WaitStrategy is the single small capability interface every slot wait
// mode implements: an initial acquire load, an escalated wait cycle that
// blocks (to whatever degree the strategy allows) until the token changes
// away from a known-stale snapshot, a publish-and-wake, a wake-without-
// publish, and a close transition. Ring is generic over WaitStrategy so the
// strategy is selected once at construction and every call after that is a
// direct, monomorphized call — no dynamic dispatch on the hot path.
type WaitStrategy interface {
	Load(sc *slotControl) uint32
	// WaitAndLoad blocks (to whatever degree the strategy allows) while
	// sc's token still equals stale — the value the caller most recently
	// observed and found not yet ready — then returns the freshly
	// observed token. stale is a snapshot to park against, not a target
	// to wait for: the caller re-evaluates its own readiness predicate
	// against the returned value.
	WaitAndLoad(sc *slotControl, stale uint32) uint32
	StoreAndWake(sc *slotControl, value uint32)
	Wake(sc *slotControl)
	Close(sc *slotControl)
}

// slotControl is the per-slot state every WaitStrategy operates on: the
// token itself, plus a mutex+cond pair that only CondWait uses. Keeping one
// control shape for all four strategies avoids parameterizing the slot
// layout by S as well as T.
type slotControl struct {
	token atomix.Uint32
	mu    sync.Mutex
	cond  sync.Cond
}

type slot[T any] struct {
	slotControl
	value T
}

// Ring is the bounded ring-buffer queue: the toolkit's core. Producer and
// consumer roles are configured at construction via [Builder] (Counter
// chooses atomic vs. local ticket sources per role); the wait strategy S is
// fixed at compile time as a type parameter.
type Ring[T any, S WaitStrategy] struct {
	_            pad
	tail         Counter
	_            pad
	head         Counter
	_            pad
	closeState   atomix.Uint32
	lastAccepted atomix.Uint64
	_            pad

	slots  []slot[T]
	n      uint64
	mask   uint64
	assign func(dst *T, v T) error
}

const (
	ringOpen uint32 = iota
	ringClosing
	ringClosed
)

func newRing[T any, S WaitStrategy](capacity int, singleProducer, singleConsumer bool, assign func(dst *T, v T) error) *Ring[T, S] {
	n := uint64(capacity)

	r := &Ring[T, S]{
		slots:  make([]slot[T], n),
		n:      n,
		mask:   n - 1,
		assign: assign,
	}
	for i := range r.slots {
		r.slots[i].cond.L = &r.slots[i].mu
		r.slots[i].token.StoreRelaxed(encodeToken(uint64(i)))
	}
	if singleProducer {
		r.tail = &LocalCounter{}
	} else {
		r.tail = &AtomicCounter{}
	}
	if singleConsumer {
		r.head = &LocalCounter{}
	} else {
		r.head = &AtomicCounter{}
	}
	return r
}

func (r *Ring[T, S]) isPastLast(count uint64) bool {
	if r.closeState.LoadAcquire() != ringClosed {
		return false
	}
	last := r.lastAccepted.LoadAcquire()
	return int64(last-count) <= 0
}

// ticketRole distinguishes the two shapes of "is this slot ready for me"
// predicate a ticket holder can have: a producer wants a bare, unpublished
// slot; a consumer wants a slot some producer already published.
type ticketRole int

const (
	roleProducer ticketRole = iota
	roleConsumer
)

// tokenReady reports whether tok satisfies expect for round role, ignoring
// waitingBit and closedBit: waitingBit never survives into a published
// value (StoreAndWake always writes a full fresh word), and closedBit may
// be OR-ed onto an otherwise-ready slot by a concurrent Close — a producer
// or consumer already holding a ticket within the accepted lap must still
// be able to match its slot, so closedBit must not block that match (the
// caller's isPastLast check, not this bit, is what decides Closed).
//
// A producer's expect is the bare round token: ready means the status
// nibble is entirely clear. A consumer's expect is the same bare round
// token, but ready means the producer has published VALID or INVALID for
// that round — i.e. exactly one of the two status bits is set.
func tokenReady(tok, expect uint32, role ticketRole) bool {
	clean := tok &^ (waitingBit | closedBit)
	if role == roleProducer {
		return clean == expect
	}
	return clean == expect|validBit || clean == expect|invalidBit
}

// waitForToken repeatedly checks sc's token against expect per role's
// readiness predicate, applying the close check on every failed read
// before consulting b: once b reports its ceiling reached, every
// subsequent check escalates through S's blocking wait cycle, parking
// against the last-observed (stale) token rather than the target, so S can
// legitimately block until that exact snapshot changes.
func (r *Ring[T, S]) waitForToken(sc *slotControl, expect uint32, count uint64, role ticketRole, b backoff.Backoff) (tok uint32, closed bool) {
	var s S
	tok = s.Load(sc)
	escalated := false
	for !tokenReady(tok, expect, role) {
		if r.isPastLast(count) {
			return tok, true
		}
		if !escalated {
			escalated = b.Backoff()
			if !escalated {
				tok = s.Load(sc)
				continue
			}
		}
		tok = s.WaitAndLoad(sc, tok)
	}
	return tok, false
}

// Push moves v into the queue, blocking (per S's wait behavior, with a
// no-op backoff ahead of it) until space is available or the queue closes.
func (r *Ring[T, S]) Push(v T) (Status, error) {
	return r.PushWithBackoff(v, backoff.NoBackoff{})
}

// PushWithBackoff is Push with an explicit backoff policy spun before each
// escalation to S's blocking wait cycle.
func (r *Ring[T, S]) PushWithBackoff(v T, b backoff.Backoff) (Status, error) {
	count := r.tail.Add(1)
	idx := count & r.mask
	sc := &r.slots[idx].slotControl
	expect := encodeToken(count)

	_, closed := r.waitForToken(sc, expect, count, roleProducer, b)
	if closed {
		return Closed, nil
	}

	var s S
	if r.assign != nil {
		if err := r.assign(&r.slots[idx].value, v); err != nil {
			s.StoreAndWake(sc, expect|invalidBit)
			return 0, err
		}
	} else {
		r.slots[idx].value = v
	}
	s.StoreAndWake(sc, expect|validBit)
	return Success, nil
}

// TryPush is a single non-blocking attempt. Unlike Push it never claims a
// ticket it cannot immediately fill: it peeks the slot at the current tail
// and only advances tail via compare-and-swap once that slot is confirmed
// ready, so a failed attempt never strands a round the way blindly
// fetch-and-adding tail would. Returns Full when the slot is not yet free,
// Busy when another producer won the race to claim it.
func (r *Ring[T, S]) TryPush(v T) (Status, error) {
	var s S
	tail := r.tail.Load()
	idx := tail & r.mask
	sc := &r.slots[idx].slotControl
	expect := encodeToken(tail)

	tok := s.Load(sc)
	if !tokenReady(tok, expect, roleProducer) {
		if r.isPastLast(tail) {
			return Closed, nil
		}
		return Full, nil
	}
	if !r.tail.CompareAndSwap(tail, tail+1) {
		return Busy, nil
	}

	if r.assign != nil {
		if err := r.assign(&r.slots[idx].value, v); err != nil {
			s.StoreAndWake(sc, expect|invalidBit)
			return 0, err
		}
	} else {
		r.slots[idx].value = v
	}
	s.StoreAndWake(sc, expect|validBit)
	return Success, nil
}

// WaitPop moves a value out of the queue, blocking (with a no-op backoff)
// until one is available or the queue closes.
func (r *Ring[T, S]) WaitPop() (T, Status) {
	return r.WaitPopWithBackoff(backoff.NoBackoff{})
}

// WaitPopWithBackoff is WaitPop with an explicit backoff policy. A slot
// observed INVALID is republished for the next producer round and the
// dequeue retries with a fresh head ticket; the caller never sees Empty.
func (r *Ring[T, S]) WaitPopWithBackoff(b backoff.Backoff) (T, Status) {
	var s S
	for {
		count := r.head.Add(1)
		idx := count & r.mask
		sc := &r.slots[idx].slotControl
		expect := encodeToken(count)

		tok, closed := r.waitForToken(sc, expect, count, roleConsumer, b)
		if closed {
			var zero T
			return zero, Closed
		}

		if tok&validBit != 0 {
			v := r.slots[idx].value
			var zero T
			r.slots[idx].value = zero
			s.StoreAndWake(sc, encodeToken(count+r.n))
			return v, Success
		}

		s.StoreAndWake(sc, encodeToken(count+r.n))
	}
}

// TryPop is a single non-blocking attempt, symmetric with TryPush: it peeks
// the slot at the current head and only advances head via compare-and-swap
// once confirmed ready. A slot observed INVALID still costs this caller a
// head ticket, but is reported as Busy rather than silently retried, since
// a one-shot call has no internal loop to retry from.
func (r *Ring[T, S]) TryPop() (T, Status) {
	var s S
	var zero T
	head := r.head.Load()
	idx := head & r.mask
	sc := &r.slots[idx].slotControl
	expect := encodeToken(head)

	tok := s.Load(sc)
	if !tokenReady(tok, expect, roleConsumer) {
		if r.isPastLast(head) {
			return zero, Closed
		}
		return zero, Busy
	}
	if !r.head.CompareAndSwap(head, head+1) {
		return zero, Busy
	}

	if tok&validBit != 0 {
		v := r.slots[idx].value
		r.slots[idx].value = zero
		s.StoreAndWake(sc, encodeToken(head+r.n))
		return v, Success
	}
	s.StoreAndWake(sc, encodeToken(head+r.n))
	return zero, Busy
}

// Close marks the queue closed. The winner of the open→closing transition
// reserves a full lap of tail sequence (tail.fetch_add(N)) as last_accepted
// before flipping to closed, so producers and consumers already holding a
// ticket within that lap are allowed to complete; everyone past it observes
// Closed. Close does not rescue producers blocked with zero consumers
// draining the queue — closing is not a delivery guarantee, only a
// lifecycle transition (spec.md's open question, resolved as preserve).
func (r *Ring[T, S]) Close() {
	if !r.closeState.CompareAndSwapAcqRel(ringOpen, ringClosing) {
		return
	}
	last := r.tail.Add(r.n)
	r.lastAccepted.StoreRelease(last)
	r.closeState.StoreRelease(ringClosed)

	var s S
	for i := range r.slots {
		s.Close(&r.slots[i].slotControl)
	}
}

// IsClosed reports whether Close has completed its transition.
func (r *Ring[T, S]) IsClosed() bool {
	return r.closeState.LoadAcquire() == ringClosed
}

// IsEmpty reports whether head and tail were observed equal. The result is
// a racy snapshot in the presence of concurrent producers/consumers.
func (r *Ring[T, S]) IsEmpty() bool {
	return r.head.Load() == r.tail.Load()
}

// IsFull reports whether tail was observed at least a full lap ahead of
// head. Like IsEmpty, this is a racy snapshot.
func (r *Ring[T, S]) IsFull() bool {
	return r.tail.Load()-r.head.Load() >= r.n
}

// IsLockFree is always false: ParkWait and CondWait may park a goroutine,
// and even SpinWait's backing caller may choose to sleep.
func (r *Ring[T, S]) IsLockFree() bool {
	return false
}

// Cap returns the ring's usable capacity: the exact power of two, at least
// 16, passed to [New].
func (r *Ring[T, S]) Cap() int {
	return int(r.n)
}
