// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concur

// Each ring slot carries a single atomix.Uint32 "token" that fuses a round
// sequence number (high bits) with a status nibble (low 4 bits). validBit
// and invalidBit are mutually exclusive; waitingBit and closedBit may each
// be OR-ed onto either a bare sequence or an already-published status.
const (
	statusBits = 4
	statusMask = uint32(1)<<statusBits - 1

	validBit   = uint32(1) << 0
	invalidBit = uint32(1) << 1
	waitingBit = uint32(1) << 2
	closedBit  = uint32(1) << 3
)

// encodeToken returns the bare (status-free) token for ticket count: the
// round sequence shifted into the high 28 bits. Producers and consumers OR
// in a status bit before publishing.
//
// Ring counters are uint64 (see counter.go and SPEC_FULL's widening of
// spec.md's 32-bit counters), but the token itself stays 32 bits, matching
// the original design. The shift keeps only the low 28 bits of count, so
// the stored sequence wraps every 2^28 tickets whatever the counter width;
// the wider head/tail tickets only keep the close check's signed distance
// (isPastLast) from wrapping at 2^32.
func encodeToken(count uint64) uint32 {
	return uint32(count) << statusBits
}
