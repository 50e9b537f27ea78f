// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/concur/task"
)

// TestRunAfterMovePreservesSemantics is spec.md's task round-trip property:
// task(f); move; move; invoke() must produce the same result as f().
func TestRunAfterMovePreservesSemantics(t *testing.T) {
	ran := false
	tk := task.New(func() error {
		ran = true
		return nil
	})

	moved1 := tk
	moved2 := moved1

	if err := moved2.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ran {
		t.Fatal("moved task did not invoke the original callable")
	}
}

func TestRunPropagatesError(t *testing.T) {
	want := errors.New("boom")
	tk := task.New(func() error { return want })
	err := tk.Run()
	if err == nil || !errors.Is(err, want) {
		t.Fatalf("Run() = %v, want wrapping %v", err, want)
	}
}

func TestNullTaskInvalidCall(t *testing.T) {
	var tk task.Task
	if !tk.IsNull() {
		t.Fatal("zero-value Task must be null")
	}
	if err := tk.Run(); !errors.Is(err, task.ErrInvalidCall) {
		t.Fatalf("Run() on a null task = %v, want ErrInvalidCall", err)
	}
}

func TestSecondRunIsInvalidCall(t *testing.T) {
	tk := task.New(func() error { return nil })
	if err := tk.Run(); err != nil {
		t.Fatalf("first Run: unexpected error %v", err)
	}
	if err := tk.Run(); !errors.Is(err, task.ErrInvalidCall) {
		t.Fatalf("second Run() = %v, want ErrInvalidCall", err)
	}
}
