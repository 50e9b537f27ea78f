// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package pool provides a fixed-size worker pool draining a queue of
// [task.Task] — spec.md §4.9's thread pool. The pool never grows, shrinks,
// or migrates a task between workers once queued; it is deliberately not a
// work-stealing scheduler (spec.md §1's explicit non-goal).
package pool

import (
	"runtime"
	"runtime/debug"
	"sync"

	"code.hybscloud.com/concur"
	"code.hybscloud.com/concur/task"
)

// Queue is the small interface a Pool drains: both
// [code.hybscloud.com/concur/mqueue.Queue][task.Task] and any
// [code.hybscloud.com/concur.Ring][task.Task, S] satisfy it directly,
// letting a Pool be built over either the unbounded mutex queue or the
// bounded ring without adapter code.
type Queue interface {
	Push(task.Task) (concur.Status, error)
	WaitPop() (task.Task, concur.Status)
	Close()
	IsClosed() bool
}

// Pool owns a fixed set of worker goroutines draining q. Submit, Stop, and
// Wait may be called concurrently from any goroutine; Wait is safe to call
// more than once.
type Pool struct {
	q       Queue
	cfg     Config
	stats   statsStore
	wg      sync.WaitGroup
	waitMu  sync.Mutex
	stopped atomicBool
}

// atomicBool is a tiny zero-value-usable flag; the pool only needs a
// single CAS-guarded transition (open -> stopped), not the general
// multi-state word concur's own ring/lock types use.
type atomicBool struct {
	mu  sync.Mutex
	val bool
}

func (b *atomicBool) setTrue() (was bool) {
	b.mu.Lock()
	was = b.val
	b.val = true
	b.mu.Unlock()
	return was
}

func (b *atomicBool) get() bool {
	b.mu.Lock()
	v := b.val
	b.mu.Unlock()
	return v
}

// New starts a Pool of opts-configured worker goroutines draining q.
func New(q Queue, opts ...Option) *Pool {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.NumWorkers < 1 {
		cfg.NumWorkers = 1
	}

	p := &Pool{q: q, cfg: cfg}
	p.wg.Add(cfg.NumWorkers)
	for i := 0; i < cfg.NumWorkers; i++ {
		go p.runWorker()
	}
	return p
}

// Submit wraps fn as a task and pushes it onto the pool's queue. Submit on
// a stopped pool returns [concur.Closed] without running fn.
func (p *Pool) Submit(fn func() error) (concur.Status, error) {
	if p.stopped.get() {
		return concur.Closed, nil
	}
	status, err := p.q.Push(task.New(fn))
	if err != nil {
		return status, err
	}
	if status == concur.Success {
		p.stats.submitted.AddAcqRel(1)
	}
	return status, nil
}

// Stop marks the pool stopped and closes its queue. Workers finish any task
// already drained, then exit on observing the queue closed; Stop does not
// itself wait for them — call Wait for that.
func (p *Pool) Stop() {
	if p.stopped.setTrue() {
		return
	}
	p.q.Close()
}

// Wait blocks until every worker goroutine has exited. Concurrent Wait
// calls are safe: they serialize on an internal lock rather than racing on
// sync.WaitGroup.Wait, which tolerates concurrent callers but not a
// concurrent Add — Stop already closed the queue by the time any caller
// reaches here, so no further Add happens after the first Wait proceeds.
func (p *Pool) Wait() {
	p.waitMu.Lock()
	defer p.waitMu.Unlock()
	p.wg.Wait()
}

// Stats returns a snapshot of the pool's submitted/completed/failed/running
// counters.
func (p *Pool) Stats() Stats {
	return p.stats.get()
}

func (p *Pool) runWorker() {
	defer p.wg.Done()
	if p.cfg.PinWorkerThreads {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
	}

	for {
		t, status := p.q.WaitPop()
		if status == concur.Closed {
			return
		}
		p.runTask(&t)
	}
}

func (p *Pool) runTask(t *task.Task) {
	p.stats.running.AddAcqRel(1)
	defer p.stats.running.AddAcqRel(-1)

	defer func() {
		if r := recover(); r != nil {
			p.stats.failed.AddAcqRel(1)
			if p.cfg.PanicHandler != nil {
				p.cfg.PanicHandler(r, debug.Stack())
			}
		}
	}()

	if err := t.Run(); err != nil {
		p.stats.failed.AddAcqRel(1)
		return
	}
	p.stats.completed.AddAcqRel(1)
}
