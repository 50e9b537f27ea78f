// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package backoff

// ProportionalAdapter routes through b's BackoffFactor call when b is a
// [Proportional] backoff, and through its plain Backoff call otherwise.
// This lets call sites (the ticket lock in particular) pass any backoff
// to an API that sometimes has a factor to offer and sometimes doesn't,
// without the caller needing to know which kind of backoff it was given.
func ProportionalAdapter(b Backoff, factor uint32) bool {
	if p, ok := b.(Proportional); ok {
		return p.BackoffFactor(factor)
	}
	return b.Backoff()
}
