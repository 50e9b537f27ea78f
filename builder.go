// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concur

// Options configures ring construction, in the style of lfq's own
// Options/Builder pair.
type Options struct {
	capacity       int
	singleProducer bool
	singleConsumer bool
}

// Builder creates a [Ring] with fluent configuration.
//
// Example:
//
//	r := concur.Build[Event, concur.SpinWait](concur.New(1024))
//	r := concur.Build[Event, concur.ParkWait](concur.New(1024).SingleProducer().SingleConsumer())
type Builder struct {
	opts Options
}

// New creates a ring builder with the given capacity. Unlike lfq's own
// New*, which silently rounds an arbitrary capacity up to the next power of
// two, concur requires the caller to pass an exact power of two no smaller
// than 16 and panics otherwise: spec.md's slot token reserves its low 4 bits
// for status (VALID/INVALID/WAITING/CLOSED), so a ring below that floor, or
// one whose size doesn't evenly mask `count mod N`, can't express the
// token's sequence/status split and is a programmer error, not a value to
// silently correct (spec.md §7, "Argument violations... fail loudly at
// construction").
func New(capacity int) *Builder {
	if capacity < 16 {
		panic("concur: capacity must be >= 16")
	}
	if capacity&(capacity-1) != 0 {
		panic("concur: capacity must be a power of two")
	}
	return &Builder{opts: Options{capacity: capacity}}
}

// SingleProducer declares that only one goroutine will ever push, letting
// Build use a non-atomic [LocalCounter] for the tail ticket.
func (b *Builder) SingleProducer() *Builder {
	b.opts.singleProducer = true
	return b
}

// SingleConsumer declares that only one goroutine will ever pop, letting
// Build use a non-atomic [LocalCounter] for the head ticket.
func (b *Builder) SingleConsumer() *Builder {
	b.opts.singleConsumer = true
	return b
}

// Build creates a Ring[T, S] from b. S is fixed at the call site (all four
// wait strategies are zero-size, so there is nothing to configure on them
// at runtime); T and S are both supplied as explicit type arguments.
func Build[T any, S WaitStrategy](b *Builder) *Ring[T, S] {
	return newRing[T, S](b.opts.capacity, b.opts.singleProducer, b.opts.singleConsumer, nil)
}

// BuildWithAssign is Build plus a recoverable value-assignment hook. When
// assign returns a non-nil error, Push/PushWithBackoff/TryPush republish
// the slot INVALID and propagate the error to the caller instead of
// completing the publish — the Go expression of spec.md's exception-safety
// guard around slot assignment, without requiring panics as the
// error-carrying mechanism.
func BuildWithAssign[T any, S WaitStrategy](b *Builder, assign func(dst *T, v T) error) *Ring[T, S] {
	return newRing[T, S](b.opts.capacity, b.opts.singleProducer, b.opts.singleConsumer, assign)
}
