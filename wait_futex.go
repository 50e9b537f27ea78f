// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concur

import "code.hybscloud.com/concur/park"

// ParkWait escalates to the concur/park OS-wait emulation once a waiter has
// marked the slot WAITING, so a blocked producer or consumer spends no
// further CPU until woken.
type ParkWait struct{}

func (ParkWait) Load(sc *slotControl) uint32 {
	return sc.token.LoadAcquire()
}

func (ParkWait) WaitAndLoad(sc *slotControl, stale uint32) uint32 {
	cur := sc.token.LoadAcquire()
	for cur == stale {
		waiting := cur | waitingBit
		if cur != waiting && !sc.token.CompareAndSwapAcqRel(cur, waiting) {
			cur = sc.token.LoadAcquire()
			continue
		}
		park.Wait(&sc.token, waiting)
		cur = sc.token.LoadAcquire()
	}
	return cur
}

func (ParkWait) StoreAndWake(sc *slotControl, value uint32) {
	prev := sc.token.SwapAcqRel(value)
	if prev&waitingBit != 0 {
		park.Wake(&sc.token, 0)
	}
}

func (ParkWait) Wake(sc *slotControl) {
	park.Wake(&sc.token, 1)
}

func (ParkWait) Close(sc *slotControl) {
	for {
		cur := sc.token.LoadAcquire()
		next := cur | closedBit
		if sc.token.CompareAndSwapAcqRel(cur, next) {
			if cur&waitingBit != 0 {
				park.Wake(&sc.token, 0)
			}
			return
		}
	}
}
