// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pool_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"code.hybscloud.com/concur"
	"code.hybscloud.com/concur/mqueue"
	"code.hybscloud.com/concur/pool"
	"code.hybscloud.com/concur/task"
)

func TestPoolOverMutexQueue(t *testing.T) {
	q := mqueue.New[task.Task]()
	p := pool.New(q, pool.WithNumWorkers(4))

	var counter int64
	const n = 1000
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		status, err := p.Submit(func() error {
			atomic.AddInt64(&counter, 1)
			wg.Done()
			return nil
		})
		if err != nil || status != concur.Success {
			t.Fatalf("submit %d: status=%v err=%v", i, status, err)
		}
	}
	wg.Wait()
	p.Stop()
	p.Wait()

	if counter != n {
		t.Fatalf("counter=%d, want %d", counter, n)
	}
	if status, _ := p.Submit(func() error { return nil }); status != concur.Closed {
		t.Fatalf("submit after stop must report Closed, got %v", status)
	}
}

// TestPoolOverRingThroughput is spec.md scenario S6 (scaled down for test
// speed): a pool backed by the bounded ring queue must run every submitted
// task exactly once, and Wait must join every worker.
func TestPoolOverRingThroughput(t *testing.T) {
	r := concur.Build[task.Task, concur.ParkWait](concur.New(1024))
	p := pool.New(r, pool.WithNumWorkers(8))

	var counter int64
	const n = 100000
	for i := 0; i < n; i++ {
		for {
			status, err := p.Submit(func() error {
				atomic.AddInt64(&counter, 1)
				return nil
			})
			if err != nil {
				t.Fatalf("submit: %v", err)
			}
			if status == concur.Success {
				break
			}
		}
	}

	p.Stop()
	p.Wait()

	if counter != n {
		t.Fatalf("counter=%d, want %d", counter, n)
	}
}

func TestPoolRecoversFromPanickingTask(t *testing.T) {
	q := mqueue.New[task.Task]()
	var handled int32
	p := pool.New(q, pool.WithNumWorkers(2), pool.WithPanicHandler(func(value any, stack []byte) {
		atomic.AddInt32(&handled, 1)
	}))

	done := make(chan struct{})
	p.Submit(func() error {
		panic("boom")
	})
	p.Submit(func() error {
		close(done)
		return nil
	})

	<-done
	p.Stop()
	p.Wait()

	if atomic.LoadInt32(&handled) != 1 {
		t.Fatalf("panic handler invoked %d times, want 1", handled)
	}
	stats := p.Stats()
	if stats.Failed < 1 {
		t.Fatalf("stats.Failed=%d, want >= 1", stats.Failed)
	}
}

func TestWaitIsSafeFromMultipleGoroutines(t *testing.T) {
	q := mqueue.New[task.Task]()
	p := pool.New(q, pool.WithNumWorkers(2))
	p.Submit(func() error { return nil })
	p.Stop()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Wait()
		}()
	}
	wg.Wait()
}
