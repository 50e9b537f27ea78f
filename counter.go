// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concur

import "code.hybscloud.com/atomix"

// Counter is a ring's head or tail ticket source. Add performs a
// fetch-and-add and returns the pre-addition value (the ticket), matching
// the pre-increment semantics spec.md's enqueue/dequeue algorithms describe.
type Counter interface {
	Add(delta uint64) uint64
	Load() uint64
	CompareAndSwap(old, new uint64) bool
}

// AtomicCounter is a Counter safe for concurrent use by multiple producers
// or multiple consumers. It backs any ring role the builder does not
// declare single-threaded.
type AtomicCounter struct {
	v atomix.Uint64
}

func (c *AtomicCounter) Add(delta uint64) uint64 {
	return c.v.AddAcqRel(delta) - delta
}

func (c *AtomicCounter) Load() uint64 {
	return c.v.LoadAcquire()
}

func (c *AtomicCounter) CompareAndSwap(old, new uint64) bool {
	return c.v.CompareAndSwapAcqRel(old, new)
}

// LocalCounter is a plain, non-atomic Counter for a ring role the builder
// has been told is single-threaded (SingleProducer/SingleConsumer). It
// avoids the cost of an atomic fetch-and-add on a ticket no other goroutine
// will ever touch.
type LocalCounter struct {
	v uint64
}

func (c *LocalCounter) Add(delta uint64) uint64 {
	prev := c.v
	c.v += delta
	return prev
}

func (c *LocalCounter) Load() uint64 {
	return c.v
}

func (c *LocalCounter) CompareAndSwap(old, new uint64) bool {
	if c.v != old {
		return false
	}
	c.v = new
	return true
}
