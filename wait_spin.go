// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concur

// SpinWait is the pure-spin slot wait strategy. Every escalated wait cycle
// is a single relaxed reload; all pacing comes from the caller's backoff
// policy. SpinWait never leaves user space.
type SpinWait struct{}

func (SpinWait) Load(sc *slotControl) uint32 {
	return sc.token.LoadAcquire()
}

func (SpinWait) WaitAndLoad(sc *slotControl, _ uint32) uint32 {
	return sc.token.LoadRelaxed()
}

func (SpinWait) StoreAndWake(sc *slotControl, value uint32) {
	sc.token.StoreRelease(value)
}

func (SpinWait) Wake(*slotControl) {}

func (SpinWait) Close(sc *slotControl) {
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
