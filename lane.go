// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tsq

// lane is the single-producer segmented FIFO owned by one producer id.
// head is touched only by the consumer; tail is touched only by the
// owning producer; they may point at the same segment.
type lane[T any] struct {
	_    pad
	head *segment[T]
	_    pad
	tail *segment[T]
	pool *segmentPool[T]
}

func newLane[T any](segCap, poolCap int) *lane[T] {
	seg := newSegment[T](segCap)
	return &lane[T]{
		head: seg,
		tail: seg,
		pool: newSegmentPool[T](poolCap),
	}
}

// enqueue publishes v with timestamp ts into the lane. Only the
// owning producer may call this.
//
// If the current tail segment's last slot is about to be written, a
// fresh segment is linked in first — but note that the upcoming write
// below still targets the *old* tail (captured before the swap), so
// every slot of a segment, including its last one, gets a value before
// the segment is retired. The next call picks up the fresh segment the
// lane now points at.
func (l *lane[T]) enqueue(v T, ts uint64, segCap int) {
	tail := l.tail
	if tail.writeHead == segCap-1 {
		fresh := l.pool.pop(segCap)
		tail.next = fresh
		l.tail = fresh
	}

	idx := tail.writeHead
	tail.slots[idx].data = v
	tail.writeHead++
	tail.slots[idx].count.StoreRelease(ts)
}

// peek reports the timestamp of the oldest unconsumed value in the
// lane, if any. Only the consumer may call this.
func (l *lane[T]) peek() (uint64, bool) {
	head := l.head
	ts := head.slots[head.readHead].count.LoadAcquire()
	if ts == emptyTS {
		return 0, false
	}
	return ts, true
}

// consume removes and returns the oldest unconsumed value in the lane.
// peek must have just reported a value present. Only the consumer may
// call this.
func (l *lane[T]) consume() T {
	head := l.head
	v := head.slots[head.readHead].data
	head.readHead++

	if head.readHead == len(head.slots) {
		l.head = head.next
		l.pool.push(head)
	}

	return v
}

// drain empties the lane, invoking hook on every undrained payload,
// and releases its segments. Not safe for concurrent use.
func (l *lane[T]) drain(hook func(T)) {
	for h := l.head; h != nil; {
		for i := h.readHead; i < h.writeHead; i++ {
			if hook != nil {
				hook(h.slots[i].data)
			}
		}
		next := h.next
		h = next
	}
	l.head = nil
	l.tail = nil
}
