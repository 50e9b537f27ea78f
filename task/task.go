// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package task provides a move-only, no-argument callable, the unit of
// work spec.md §3.4/§4.9 describes: a thread pool submits and drains these
// instead of arbitrary closures directly, so the queue's element type is
// fixed and the pool's panic-recovery and invalid-call handling live in one
// place.
//
// Go has no small-buffer-optimized inline storage to speak of: a closure
// that captures state already gets its captured variables heap-allocated
// by the compiler's own escape analysis, exactly the "heap fallback" path
// spec.md's task describes for oversized targets. Task therefore wraps a
// plain func() error rather than reimplementing inline-vs-heap dispatch by
// hand; move semantics are expressed as "construct once, Run consumes it",
// matching spec.md's "null task after invocation" behavior.
package task

import (
	"errors"
	"fmt"
)

// ErrInvalidCall is returned by Run when invoked on a null or
// already-consumed Task. It is a programmer error, not a control-flow
// signal, so unlike concur.Status it does not satisfy iox's
// would-block/semantic predicates — callers compare it with errors.Is
// directly.
var ErrInvalidCall = errors.New("task: invalid call")

// Fn is the callable a Task wraps.
type Fn func() error

// Task is a move-only unit of work: a zero Task is "null" and Run on it
// reports ErrInvalidCall, matching spec.md §3.4/§6. Task values are cheap
// to copy (a function value and a consumed flag) but must not be Run more
// than once — doing so is a caller bug, also surfaced as ErrInvalidCall
// rather than silently re-running or panicking.
type Task struct {
	fn       Fn
	consumed bool
}

// New wraps fn as a Task. A nil fn produces a null Task.
func New(fn Fn) Task {
	return Task{fn: fn}
}

// IsNull reports whether t has no callable to run, either because it was
// never given one or because Run already consumed it.
func (t Task) IsNull() bool {
	return t.fn == nil || t.consumed
}

// Run invokes t's callable exactly once. A second Run on the same value,
// or Run on a null Task, returns ErrInvalidCall without calling fn. Run
// does not itself recover panics — concur/pool wraps Run with its own
// recovery so a misbehaving task cannot take a worker goroutine down.
func (t *Task) Run() error {
	if t.fn == nil || t.consumed {
		return ErrInvalidCall
	}
	fn := t.fn
	t.consumed = true
	t.fn = nil
	if err := fn(); err != nil {
		return fmt.Errorf("task: %w", err)
	}
	return nil
}
