// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package concur

// RaceEnabled is true when the race detector is active. It is exported
// for tests that need to skip stress tests whose acquire/release-only
// synchronization the race detector cannot observe; no test in this
// module reads it.
const RaceEnabled = true
