// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package mqueue provides an unbounded FIFO behind a
// [code.hybscloud.com/concur/lock.BlockingLock] and a
// [code.hybscloud.com/concur/cond.Cond] — the external-collaborator queue
// spec.md §4.6 describes as an alternative to the bounded ring for code
// that does not want a fixed capacity. It contributes no novel algorithm of
// its own; it exists so a [code.hybscloud.com/concur/pool.Pool] has more
// than one queue shape to choose from.
package mqueue

import (
	"container/list"

	"code.hybscloud.com/concur"
	"code.hybscloud.com/concur/backoff"
	"code.hybscloud.com/concur/cond"
	"code.hybscloud.com/concur/lock"
)

// Queue is an unbounded, closable FIFO of values of type T.
type Queue[T any] struct {
	mu       lock.BlockingLock
	notEmpty *cond.Cond
	items    list.List
	closed   bool
}

// New returns an empty, open Queue.
func New[T any]() *Queue[T] {
	q := &Queue[T]{}
	q.notEmpty = cond.New(&q.mu)
	return q
}

// Push appends v to the back of the queue. Push on a closed queue is a
// no-op and reports [concur.Closed].
func (q *Queue[T]) Push(v T) (concur.Status, error) {
	q.mu.Lock(backoff.NoBackoff{})
	defer q.mu.Unlock()
	if q.closed {
		return concur.Closed, nil
	}
	q.items.PushBack(v)
	q.notEmpty.NotifyOne()
	return concur.Success, nil
}

// TryPush is Push without blocking for the lock: it reports [concur.Busy]
// instead of waiting if the lock is currently held.
func (q *Queue[T]) TryPush(v T) (concur.Status, error) {
	if !q.mu.TryLock() {
		return concur.Busy, nil
	}
	defer q.mu.Unlock()
	if q.closed {
		return concur.Closed, nil
	}
	q.items.PushBack(v)
	q.notEmpty.NotifyOne()
	return concur.Success, nil
}

// WaitPop removes and returns the value at the front of the queue, blocking
// until one is available or the queue is closed and drained.
func (q *Queue[T]) WaitPop() (T, concur.Status) {
	q.mu.Lock(backoff.NoBackoff{})
	for q.items.Len() == 0 && !q.closed {
		q.notEmpty.Wait()
	}
	var zero T
	if q.items.Len() == 0 {
		q.mu.Unlock()
		return zero, concur.Closed
	}
	v := q.items.Remove(q.items.Front()).(T)
	q.mu.Unlock()
	return v, concur.Success
}

// TryPop is WaitPop without blocking: it reports [concur.Busy] if the lock
// is held or the queue is momentarily empty but not yet closed.
func (q *Queue[T]) TryPop() (T, concur.Status) {
	var zero T
	if !q.mu.TryLock() {
		return zero, concur.Busy
	}
	defer q.mu.Unlock()
	if q.items.Len() == 0 {
		if q.closed {
			return zero, concur.Closed
		}
		return zero, concur.Busy
	}
	return q.items.Remove(q.items.Front()).(T), concur.Success
}

// Close marks the queue closed and wakes every blocked WaitPop. Pending
// values remain poppable until drained; Close is idempotent.
func (q *Queue[T]) Close() {
	q.mu.Lock(backoff.NoBackoff{})
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	q.mu.Unlock()
	q.notEmpty.NotifyAll()
}

// IsClosed reports whether Close has been called.
func (q *Queue[T]) IsClosed() bool {
	q.mu.Lock(backoff.NoBackoff{})
	closed := q.closed
	q.mu.Unlock()
	return closed
}

// IsEmpty reports whether the queue currently holds no values.
func (q *Queue[T]) IsEmpty() bool {
	q.mu.Lock(backoff.NoBackoff{})
	empty := q.items.Len() == 0
	q.mu.Unlock()
	return empty
}
