// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tsq

import "code.hybscloud.com/atomix"

// core holds the state shared by all three queue variants: the
// per-producer lanes and the global advisory clock. Queue, WaitQueue,
// and OverflowQueue each embed a core and add their own blocking
// policy and (for OverflowQueue) auxiliary list on top.
type core[T any] struct {
	lanes     []*lane[T]
	laneSrc   []source[T] // lanes, pre-boxed as sources; reused across Dequeue calls
	segCap    int
	_         pad
	clock     atomix.Uint64
	_         pad
}

func newCore[T any](numProducers uint16, c config) *core[T] {
	lanes := make([]*lane[T], numProducers)
	laneSrc := make([]source[T], numProducers)
	for i := range lanes {
		lanes[i] = newLane[T](c.segmentCapacity, c.poolCapacity)
		laneSrc[i] = lanes[i]
	}
	return &core[T]{lanes: lanes, laneSrc: laneSrc, segCap: c.segmentCapacity}
}

// enqueue publishes v on the lane owned by producerID. Panics if
// producerID is not a provisioned lane — calling with an out-of-range
// id is a precondition violation the caller must not make.
func (c *core[T]) enqueue(v T, producerID uint16) {
	if int(producerID) >= len(c.lanes) {
		panic("tsq: producer id out of range")
	}

	ts := c.clock.LoadAcquire()
	c.lanes[producerID].enqueue(v, ts, c.segCap)

	if c.clock.LoadAcquire() == ts {
		c.clock.AddAcqRel(1)
	}
}

func (c *core[T]) dequeue() (T, bool) {
	return mergeNext(c.laneSrc)
}

func (c *core[T]) drain(hook func(T)) {
	for _, l := range c.lanes {
		l.drain(hook)
	}
}

// Queue is the spin variant: a bounded-producer MPSC queue whose
// Dequeue never blocks, returning [ErrWouldBlock] when nothing is
// ready.
type Queue[T any] struct {
	core *core[T]
}

// New creates a spin-variant queue provisioned for numProducers
// distinct producer ids (0..numProducers-1). Each lane starts with one
// empty segment.
func New[T any](numProducers uint16, opts ...Option) *Queue[T] {
	return &Queue[T]{core: newCore[T](numProducers, resolveConfig(opts))}
}

// Enqueue publishes v on the lane owned by producerID. Safe to call
// concurrently from distinct producer goroutines, each with its own
// producerID; never safe for two goroutines to share a producerID.
func (q *Queue[T]) Enqueue(v T, producerID uint16) {
	q.core.enqueue(v, producerID)
}

// Dequeue removes and returns the next value in timestamp order.
// Returns [ErrWouldBlock] if no value is currently ready. Single
// consumer only.
func (q *Queue[T]) Dequeue() (T, error) {
	v, ok := q.core.dequeue()
	if !ok {
		var zero T
		return zero, ErrWouldBlock
	}
	return v, nil
}

// Close releases every lane's segments. onUndrained, if non-nil, is
// invoked with every payload that was never dequeued. Must only be
// called once no producer or consumer is active.
func (q *Queue[T]) Close(onUndrained func(T)) {
	q.core.drain(onUndrained)
}
