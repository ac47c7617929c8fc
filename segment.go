// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tsq

import "code.hybscloud.com/atomix"

// emptyTS is the sentinel count value meaning "not yet published".
// It is also used as the initial "no candidate" value during the
// consumer's merge scan, since it compares greater than any real
// timestamp.
const emptyTS = ^uint64(0)

// slot holds one payload value and its publication timestamp.
//
// data is written with a plain store by the owning producer, then
// count is published with a release store. A consumer that observes
// count != emptyTS via an acquire load is guaranteed to see the
// matching data, because the release store happens after the plain
// store in program order on the producer's goroutine.
type slot[T any] struct {
	data  T
	count atomix.Uint64
	_     padAfterUint64
}

// segment is one fixed-capacity node of a producer lane's linked list.
//
// readHead is touched only by the consumer; writeHead and next are
// touched only by the owning producer. Slots at [0, writeHead) have
// been published (count != emptyTS, eventually); slots at
// [writeHead, capacity) are still vacant.
type segment[T any] struct {
	readHead  int
	_         pad
	writeHead int
	_         pad
	next      *segment[T]
	slots     []slot[T]
}

func newSegment[T any](capacity int) *segment[T] {
	s := &segment[T]{slots: make([]slot[T], capacity)}
	resetSegment(s)
	return s
}

// resetSegment restores a retired segment to its initial vacant state
// so it can be handed back to a producer via the recycled-buffer pool.
func resetSegment[T any](s *segment[T]) {
	s.readHead = 0
	s.writeHead = 0
	s.next = nil
	var zero T
	for i := range s.slots {
		s.slots[i].data = zero
		s.slots[i].count.StoreRelaxed(emptyTS)
	}
}
