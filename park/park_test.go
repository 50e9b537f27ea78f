// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package park_test

import (
	"sync"
	"testing"
	"time"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/concur/park"
)

func TestWaitWakeOne(t *testing.T) {
	var word atomix.Uint32
	word.StoreRelaxed(0)

	var wg sync.WaitGroup
	woke := make(chan struct{})
	wg.Add(1)
	go func() {
		defer wg.Done()
		park.Wait(&word, 0)
		close(woke)
	}()

	time.Sleep(20 * time.Millisecond)
	word.StoreRelease(1)
	park.Wake(&word, 1)

	select {
	case <-woke:
	case <-time.After(time.Second):
		t.Fatal("waiter never woke up")
	}
	wg.Wait()
}

func TestWakeAll(t *testing.T) {
	var word atomix.Uint32
	const n = 8

	var wg sync.WaitGroup
	var woken atomix.Uint32
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			park.Wait(&word, 0)
			woken.AddAcqRel(1)
		}()
	}

	time.Sleep(20 * time.Millisecond)
	word.StoreRelease(1)
	park.Wake(&word, 0)

	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("only %d/%d waiters woke", woken.LoadRelaxed(), n)
	}
}

func TestWaitDoesNotBlockWhenValueChanged(t *testing.T) {
	var word atomix.Uint32
	word.StoreRelaxed(1)

	done := make(chan struct{})
	go func() {
		park.Wait(&word, 0) // expect mismatches current value, returns immediately
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait blocked despite mismatched expected value")
	}
}
