// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pool

import "runtime"

// Config holds Pool construction parameters.
type Config struct {
	// NumWorkers is the fixed number of worker goroutines. The pool never
	// grows or shrinks this count and never migrates a task between
	// workers once queued (spec.md's explicit non-goal: no work-stealing).
	NumWorkers int
	// PanicHandler, if set, receives the recovered value and stack trace
	// whenever a task panics. With or without a handler, the panic is
	// counted in Stats.Failed and the worker continues draining the queue.
	PanicHandler func(value any, stack []byte)
	// PinWorkerThreads best-effort locks each worker goroutine to its own
	// OS thread via runtime.LockOSThread, the closest Go analogue to
	// spec.md §4.9's optional per-worker CPU-affinity API — Go exposes no
	// portable way to set a CPU affinity bitmask, so this only pins the
	// goroutine-to-thread binding and otherwise leaves scheduling to the
	// Go runtime.
	PinWorkerThreads bool
}

// DefaultConfig returns a Config with NumWorkers set to GOMAXPROCS and no
// panic handler or thread pinning.
func DefaultConfig() Config {
	return Config{NumWorkers: runtime.GOMAXPROCS(0)}
}
