// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package backoff

import "runtime"

// Backoff delays a spinning caller and reports whether its ceiling has
// been reached. true means "stop calling me, escalate or park"; false
// means "keep spinning, call me again".
//
// Backoffs carry state across calls within one acquisition attempt, so
// callers hold them by value (or, for the stateful variants, take their
// address) and reuse the same instance for the whole spin loop.
type Backoff interface {
	Backoff() bool
}

// Proportional is implemented by backoffs whose delay scales with a
// caller-supplied factor (e.g. distance from the head of a ticket lock).
// See [ProportionalAdapter].
type Proportional interface {
	BackoffFactor(factor uint32) bool
}

// NoBackoff never delays; every call reports ceiling-reached immediately.
type NoBackoff struct{}

func (NoBackoff) Backoff() bool { return true }

// YieldBackoff yields the calling goroutine to the scheduler once per
// call and never reports ceiling-reached.
type YieldBackoff struct{}

func (YieldBackoff) Backoff() bool {
	runtime.Gosched()
	return false
}

// ConstBackoff pauses for a fixed delay on every call and never reports
// ceiling-reached.
type ConstBackoff struct {
	Pause Pause
	Delay uint32
}

func (b ConstBackoff) Backoff() bool {
	b.Pause.Pause(b.Delay)
	return false
}

func (b ConstBackoff) BackoffFactor(factor uint32) bool {
	b.Pause.Pause(b.Delay * factor)
	return false
}

// LinearBackoff grows its delay by Step on each call, saturating at
// Ceiling, and reports ceiling-reached once the saturation point is hit.
type LinearBackoff struct {
	Pause   Pause
	Ceiling uint32
	Step    uint32

	count uint32
}

func (b *LinearBackoff) Backoff() bool {
	b.Pause.Pause(b.count)
	b.count += b.Step
	if b.count > b.Ceiling {
		b.count = b.Ceiling
		return true
	}
	return false
}

// ExponentialBackoff doubles (plus one) its delay on each call, saturating
// at Ceiling, and reports ceiling-reached once saturated.
type ExponentialBackoff struct {
	Pause   Pause
	Ceiling uint32

	count uint32
}

func (b *ExponentialBackoff) Backoff() bool {
	b.Pause.Pause(b.count)
	b.count = 2*b.count + 1
	if b.count > b.Ceiling {
		b.count = b.Ceiling
		return true
	}
	return false
}

// ProportionalBackoff pauses for Delay*factor when called through
// [ProportionalAdapter] or BackoffFactor directly; called as a plain
// Backoff it uses factor 1. It never reports ceiling-reached.
type ProportionalBackoff struct {
	Pause Pause
	Delay uint32
}

func (b ProportionalBackoff) Backoff() bool {
	b.Pause.Pause(b.Delay)
	return false
}

func (b ProportionalBackoff) BackoffFactor(factor uint32) bool {
	b.Pause.Pause(b.Delay * factor)
	return false
}

// CompositeBackoff invokes First until it reports ceiling-reached, then
// invokes Second on every call thereafter. It reports ceiling-reached only
// when Second does.
type CompositeBackoff struct {
	First  Backoff
	Second Backoff

	useSecond bool
}

func (b *CompositeBackoff) Backoff() bool {
	if b.useSecond {
		return b.Second.Backoff()
	}
	b.useSecond = b.First.Backoff()
	return false
}
