// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tsq

import "code.hybscloud.com/iox"

// ErrWouldBlock indicates Dequeue found no value ready.
//
// This only applies to [Queue.Dequeue] and [OverflowQueue.Dequeue] — the
// spin and overflow variants. [WaitQueue.Dequeue] never returns it; it
// blocks instead.
//
// ErrWouldBlock is a control flow signal, not a failure: an empty queue
// is an expected, normal outcome. This is an alias for [iox.ErrWouldBlock]
// for ecosystem consistency.
//
// Example:
//
//	for {
//	    v, err := q.Dequeue()
//	    if err == nil {
//	        process(v)
//	        continue
//	    }
//	    if tsq.IsWouldBlock(err) {
//	        runtime.Gosched()
//	        continue
//	    }
//	}
var ErrWouldBlock = iox.ErrWouldBlock

// IsWouldBlock reports whether err indicates Dequeue found nothing ready.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}
