// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concur

// CondWait escalates to a slot-local sync.Cond. Unlike ParkWait it never
// leaves a bit on the token to say a waiter is present — the mutex-guarded
// wait/notify pair already avoids the missed-wakeup race, so there is
// nothing for StoreAndWake to branch on; it notifies unconditionally.
type CondWait struct{}

func (CondWait) Load(sc *slotControl) uint32 {
	return sc.token.LoadAcquire()
}

func (CondWait) WaitAndLoad(sc *slotControl, stale uint32) uint32 {
	sc.mu.Lock()
	for sc.token.LoadAcquire() == stale {
		sc.cond.Wait()
	}
	cur := sc.token.LoadAcquire()
	sc.mu.Unlock()
	return cur
}

func (CondWait) StoreAndWake(sc *slotControl, value uint32) {
	sc.mu.Lock()
	sc.token.StoreRelease(value)
	sc.mu.Unlock()
	sc.cond.Broadcast()
}

func (CondWait) Wake(sc *slotControl) {
	sc.cond.Broadcast()
}

func (CondWait) Close(sc *slotControl) {
	sc.mu.Lock()
	sc.token.StoreRelease(sc.token.LoadAcquire() | closedBit)
	sc.mu.Unlock()
	sc.cond.Broadcast()
}
