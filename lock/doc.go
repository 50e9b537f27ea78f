// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package lock provides mutual-exclusion primitives parameterized by a
// backoff policy: [SpinLock], [TTASLock], [TicketLock], [RWTicketLock], and
// [BlockingLock]. Every lock exposes Lock(backoff.Backoff) and Unlock, and
// every lock but RWTicketLock also exposes TryLock; RWTicketLock adds
// RLock(backoff.Backoff) and RUnlock for shared holds. Acquisition uses acquire ordering and release uses release
// ordering throughout, so Unlock without a matching prior Lock by the same
// goroutine is undefined, exactly as spec.md §4.4 requires.
package lock
