// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tsq

import (
	"sync/atomic"

	"code.hybscloud.com/atomix"
)

// auxNode is one entry of the overflow variant's auxiliary list: a
// Michael-Scott-style lock-free singly linked list with a dummy head.
// Any producer may append via an atomic exchange of the tail; only the
// single consumer ever reads past the head.
type auxNode[T any] struct {
	data  T
	count atomix.Uint64
	next  atomic.Pointer[auxNode[T]]
}

// OverflowQueue is the overflow variant: identical to [Queue], except
// [OverflowQueue.SafeEnqueue] accepts producer ids beyond the
// provisioned lane count by falling back to a lock-free auxiliary
// list. numProducers == 0 is legal — every value then goes through the
// auxiliary list.
type OverflowQueue[T any] struct {
	core *core[T]

	auxHead *auxNode[T] // consumer-owned
	_       pad
	auxTail atomic.Pointer[auxNode[T]] // any producer may exchange
	_       pad

	sources []source[T] // auxiliary list, then lanes in id order
}

// auxSource adapts an *OverflowQueue's auxiliary list to the [source]
// interface used by the merge scan.
type auxSource[T any] struct {
	q *OverflowQueue[T]
}

func (a auxSource[T]) peek() (uint64, bool) {
	next := a.q.auxHead.next.Load()
	if next == nil {
		return 0, false
	}
	return next.count.LoadAcquire(), true
}

func (a auxSource[T]) consume() T {
	old := a.q.auxHead
	next := old.next.Load()
	a.q.auxHead = next
	v := next.data
	var zero T
	next.data = zero
	old.next.Store(nil)
	return v
}

// NewOverflow creates an overflow-variant queue provisioned for
// numProducers distinct producer ids; any higher id routes through the
// auxiliary list instead.
func NewOverflow[T any](numProducers uint16, opts ...Option) *OverflowQueue[T] {
	dummy := &auxNode[T]{}
	q := &OverflowQueue[T]{
		core:    newCore[T](numProducers, resolveConfig(opts)),
		auxHead: dummy,
	}
	q.auxTail.Store(dummy)

	q.sources = make([]source[T], 0, len(q.core.laneSrc)+1)
	q.sources = append(q.sources, auxSource[T]{q: q})
	q.sources = append(q.sources, q.core.laneSrc...)

	return q
}

// SafeEnqueue publishes v. If producerID was provisioned at
// construction it is routed to that lane exactly as [Queue.Enqueue];
// otherwise it is appended to the auxiliary list at the cost of one
// heap allocation.
func (q *OverflowQueue[T]) SafeEnqueue(v T, producerID uint16) {
	if int(producerID) < len(q.core.lanes) {
		q.core.enqueue(v, producerID)
		return
	}
	q.overflowEnqueue(v)
}

func (q *OverflowQueue[T]) overflowEnqueue(v T) {
	ts := q.core.clock.LoadAcquire()

	node := &auxNode[T]{data: v}
	node.count.StoreRelaxed(ts)

	old := q.auxTail.Swap(node)
	old.next.Store(node)

	if q.core.clock.LoadAcquire() == ts {
		q.core.clock.AddAcqRel(1)
	}
}

// Dequeue removes and returns the next value in timestamp order,
// drawing from every provisioned lane and the auxiliary list. Returns
// [ErrWouldBlock] if no value is currently ready. Single consumer
// only.
func (q *OverflowQueue[T]) Dequeue() (T, error) {
	v, ok := mergeNext(q.sources)
	if !ok {
		var zero T
		return zero, ErrWouldBlock
	}
	return v, nil
}

// Close releases every lane's segments and every undrained auxiliary
// node. onUndrained, if non-nil, is invoked with every payload that
// was never dequeued. Must only be called once no producer or
// consumer is active.
func (q *OverflowQueue[T]) Close(onUndrained func(T)) {
	q.core.drain(onUndrained)

	for n := q.auxHead.next.Load(); n != nil; n = n.next.Load() {
		if onUndrained != nil {
			onUndrained(n.data)
		}
	}
	q.auxHead = nil
}
