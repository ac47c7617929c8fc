// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tsq

// cacheLineSize is the assumed destructive-interference size. Every
// field written by a different goroutine (producer vs. consumer, or
// producer vs. producer) is separated by at least this many bytes so
// that independent writers never share a cache line.
//
// 128 is used rather than the common x86 value of 64 because it also
// covers platforms (e.g. Apple Silicon, some ARM server parts) with
// wider adjacent-line prefetch; a conservative default costs nothing
// but a few bytes of padding per queue.
const cacheLineSize = 128

// pad reserves a full cache line of padding between fields.
type pad [cacheLineSize]byte

// padAfterUint64 fills the remainder of a cache line following one
// uint64-sized field.
type padAfterUint64 [cacheLineSize - 8]byte
