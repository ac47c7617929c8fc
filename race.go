// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package tsq

// RaceEnabled is true when the race detector is active.
// Used by tests to skip concurrent tests that publish data through
// acquire/release on the slot count rather than through a primitive
// the race detector understands.
const RaceEnabled = true
