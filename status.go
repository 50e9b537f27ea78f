// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concur

import "code.hybscloud.com/iox"

// Status is the five-way result code every ring operation reports. It
// satisfies error so call sites that only care about success/failure can
// treat a non-nil return the usual Go way, while call sites that care about
// which way an operation failed can switch on the value directly.
type Status int

const (
	// Success means the operation completed.
	Success Status = iota
	// empty means a slot was observed INVALID. It never escapes the ring's
	// own retry loop — WaitPop/WaitPopWithBackoff absorb it internally and
	// TryPop reports Busy instead, since a caller that only gets one
	// attempt cannot distinguish "retry now" from "retry after a round".
	empty
	// Full means a non-blocking push could not claim a ready slot.
	Full
	// Closed means the queue is closed and this operation will never
	// succeed in the future.
	Closed
	// Busy means a non-blocking operation lost a race or found its slot
	// not yet at the expected sequence.
	Busy
)

func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case empty:
		return "empty"
	case Full:
		return "full"
	case Closed:
		return "closed"
	case Busy:
		return "busy"
	default:
		return "status(unknown)"
	}
}

func (s Status) Error() string {
	return "concur: " + s.String()
}

// Unwrap lets errors.Is(status, iox.ErrWouldBlock) succeed for the two
// statuses that mean "nothing to do right now, try again later" — the same
// comparison callers already use against lfq.ErrWouldBlock.
func (s Status) Unwrap() error {
	if s == Full || s == Busy {
		return iox.ErrWouldBlock
	}
	return nil
}
