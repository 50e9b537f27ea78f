// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lock_test

import (
	"sync"
	"testing"

	"code.hybscloud.com/concur/backoff"
	"code.hybscloud.com/concur/lock"
)

type locker interface {
	Lock(backoff.Backoff)
	TryLock() bool
	Unlock()
}

func contend(t *testing.T, l locker, goroutines, incrementsEach int) {
	t.Helper()
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < incrementsEach; j++ {
				l.Lock(backoff.YieldBackoff{})
				counter++
				l.Unlock()
			}
		}()
	}
	wg.Wait()
	want := goroutines * incrementsEach
	if counter != want {
		t.Fatalf("counter=%d, want %d (lost updates mean mutual exclusion broke)", counter, want)
	}
}

func TestSpinLockMutualExclusion(t *testing.T) {
	contend(t, &lock.SpinLock{}, 8, 10000)
}

func TestTTASLockMutualExclusion(t *testing.T) {
	contend(t, &lock.TTASLock{}, 8, 10000)
}

func TestBlockingLockMutualExclusion(t *testing.T) {
	contend(t, &lock.BlockingLock{}, 8, 10000)
}

// TestTicketLockFairness is spec.md scenario S5: 80,000 total increments
// across 8 threads must all land (FIFO serialization means no thread ever
// need wait unboundedly).
func TestTicketLockFairness(t *testing.T) {
	contend(t, &lock.TicketLock{}, 8, 10000)
}

func TestTryLockFailsWhileHeld(t *testing.T) {
	var l lock.SpinLock
	l.Lock(backoff.NoBackoff{})
	if l.TryLock() {
		t.Fatal("TryLock must fail while the lock is already held")
	}
	l.Unlock()
	if !l.TryLock() {
		t.Fatal("TryLock must succeed once the lock is released")
	}
}

func TestRWTicketLockAllowsConcurrentReaders(t *testing.T) {
	var l lock.RWTicketLock
	var active int32
	var maxObserved int32
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				l.RLock(backoff.YieldBackoff{})
				mu.Lock()
				active++
				if active > maxObserved {
					maxObserved = active
				}
				mu.Unlock()
				mu.Lock()
				active--
				mu.Unlock()
				l.RUnlock()
			}
		}()
	}
	wg.Wait()
	if maxObserved < 2 {
		t.Fatalf("expected concurrent readers, max concurrently active was %d", maxObserved)
	}
}

func TestRWTicketLockWriterExclusive(t *testing.T) {
	var l lock.RWTicketLock
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 2000; j++ {
				l.Lock(backoff.YieldBackoff{})
				counter++
				l.Unlock()
			}
		}()
	}
	wg.Wait()
	if counter != 16000 {
		t.Fatalf("counter=%d, want 16000", counter)
	}
}

func TestRWTicketLockQueuedReadersAndWriterAllComplete(t *testing.T) {
	var l lock.RWTicketLock
	var order []string
	var mu sync.Mutex

	l.Lock(backoff.NoBackoff{}) // hold the write lock so all of the below queue up

	var wg sync.WaitGroup
	wg.Add(3)
	started := make(chan struct{}, 3)
	go func() {
		defer wg.Done()
		started <- struct{}{}
		l.RLock(backoff.YieldBackoff{})
		mu.Lock()
		order = append(order, "r1")
		mu.Unlock()
		l.RUnlock()
	}()
	go func() {
		defer wg.Done()
		started <- struct{}{}
		l.Lock(backoff.YieldBackoff{})
		mu.Lock()
		order = append(order, "w1")
		mu.Unlock()
		l.Unlock()
	}()
	go func() {
		defer wg.Done()
		started <- struct{}{}
		l.RLock(backoff.YieldBackoff{})
		mu.Lock()
		order = append(order, "r2")
		mu.Unlock()
		l.RUnlock()
	}()
	for i := 0; i < 3; i++ {
		<-started
	}
	l.Unlock()
	wg.Wait()

	if len(order) != 3 {
		t.Fatalf("got %d completions, want 3", len(order))
	}
}
