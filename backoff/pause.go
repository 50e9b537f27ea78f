// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package backoff composes micro-delay primitives into stateful busy-wait
// policies used by spinning locks and the bounded ring queue's spin-mode
// wait strategy.
package backoff

import (
	"time"

	"code.hybscloud.com/spin"
)

// Pause maps a non-negative count to a delay. A count of zero is a no-op.
type Pause interface {
	Pause(n uint32)
}

// CPUCycle delays by n empty optimization-barrier iterations.
type CPUCycle struct{}

func (CPUCycle) Pause(n uint32) {
	for ; n > 0; n-- {
	}
}

// CPURelax delays by n CPU-hint-to-spin-wait instructions, via
// [code.hybscloud.com/spin]'s adaptive pause helper.
type CPURelax struct{}

func (CPURelax) Pause(n uint32) {
	var sw spin.Wait
	for ; n > 0; n-- {
		sw.Once()
	}
}

// NanoSleep delays by a single OS sleep of n nanoseconds.
type NanoSleep struct{}

func (NanoSleep) Pause(n uint32) {
	if n == 0 {
		return
	}
	time.Sleep(time.Duration(n))
}
