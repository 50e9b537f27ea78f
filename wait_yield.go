// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concur

import "runtime"

// YieldWait is SpinWait plus a scheduler yield before each escalated reload,
// trading a little latency for letting other goroutines run ahead of a
// tight CPU-bound retry loop.
type YieldWait struct{}

func (YieldWait) Load(sc *slotControl) uint32 {
	return sc.token.LoadAcquire()
}

func (YieldWait) WaitAndLoad(sc *slotControl, _ uint32) uint32 {
	runtime.Gosched()
	return sc.token.LoadRelaxed()
}

func (YieldWait) StoreAndWake(sc *slotControl, value uint32) {
	sc.token.StoreRelease(value)
}

func (YieldWait) Wake(*slotControl) {}

func (YieldWait) Close(sc *slotControl) {
	for {
		cur := sc.token.LoadAcquire()
		if cur&closedBit != 0 {
			return
		}
		if sc.token.CompareAndSwapAcqRel(cur, cur|closedBit) {
			return
		}
	}
}
