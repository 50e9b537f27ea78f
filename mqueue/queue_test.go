// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mqueue_test

import (
	"sync"
	"testing"

	"code.hybscloud.com/concur"
	"code.hybscloud.com/concur/mqueue"
)

func TestPushWaitPopFIFO(t *testing.T) {
	q := mqueue.New[int]()
	for i := 0; i < 10; i++ {
		if status, err := q.Push(i); status != concur.Success || err != nil {
			t.Fatalf("push(%d): status=%v err=%v", i, status, err)
		}
	}
	for i := 0; i < 10; i++ {
		v, status := q.WaitPop()
		if status != concur.Success || v != i {
			t.Fatalf("pop %d: got (%d, %v)", i, v, status)
		}
	}
}

func TestWaitPopBlocksThenDelivers(t *testing.T) {
	q := mqueue.New[int]()
	done := make(chan int)
	go func() {
		v, status := q.WaitPop()
		if status != concur.Success {
			t.Errorf("unexpected status %v", status)
		}
		done <- v
	}()
	q.Push(7)
	if v := <-done; v != 7 {
		t.Fatalf("got %d, want 7", v)
	}
}

func TestCloseDrainsThenCloses(t *testing.T) {
	q := mqueue.New[int]()
	q.Push(1)
	q.Push(2)
	q.Close()

	for _, want := range []int{1, 2} {
		v, status := q.WaitPop()
		if status != concur.Success || v != want {
			t.Fatalf("got (%d, %v), want (%d, Success)", v, status, want)
		}
	}
	if _, status := q.WaitPop(); status != concur.Closed {
		t.Fatalf("expected Closed after drain, got %v", status)
	}
}

func TestCloseIsIdempotentAndWakesWaiters(t *testing.T) {
	q := mqueue.New[int]()
	const n = 8
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, status := q.WaitPop(); status != concur.Closed {
				t.Errorf("got %v, want Closed", status)
			}
		}()
	}
	q.Close()
	q.Close()
	wg.Wait()
}

func TestPushAfterCloseReportsClosed(t *testing.T) {
	q := mqueue.New[int]()
	q.Close()
	if status, err := q.Push(1); status != concur.Closed || err != nil {
		t.Fatalf("push after close: status=%v err=%v", status, err)
	}
}

func TestIsEmptyIsClosed(t *testing.T) {
	q := mqueue.New[int]()
	if !q.IsEmpty() {
		t.Fatal("fresh queue must be empty")
	}
	q.Push(1)
	if q.IsEmpty() {
		t.Fatal("queue with one value must not be empty")
	}
	if q.IsClosed() {
		t.Fatal("fresh queue must not be closed")
	}
	q.Close()
	if !q.IsClosed() {
		t.Fatal("queue must be closed after Close")
	}
}

func TestTryPushTryPop(t *testing.T) {
	q := mqueue.New[int]()
	if status, err := q.TryPush(1); status != concur.Success || err != nil {
		t.Fatalf("TryPush: status=%v err=%v", status, err)
	}
	v, status := q.TryPop()
	if status != concur.Success || v != 1 {
		t.Fatalf("TryPop: got (%d, %v)", v, status)
	}
	if _, status := q.TryPop(); status != concur.Busy {
		t.Fatalf("TryPop on empty queue must return Busy, got %v", status)
	}
}
