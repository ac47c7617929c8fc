// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tsq

import "code.hybscloud.com/atomix"

// segmentPool is a per-lane bounded ring of retired segments. The
// consumer pushes a drained segment into the pool; the owning producer
// pops one to reuse instead of allocating. Roles are fixed (consumer
// only pushes, producer only pops), so the ring is single-producer/
// single-consumer on its own indices, using relaxed loads and
// release-published stores.
//
// The fullness check below is `(writeIdx+1) mod capacity == readIdx`, which treats
// the ring as full one slot early — the same off-by-one the original
// C++ allocation_pool carries. It is kept deliberately: tightening it
// to use the full capacity buys one extra recycled segment per lane at
// the cost of a trickier wraparound proof, and a lane that is one
// segment short of its configured pool capacity simply allocates a
// fresh one, which is already the documented underflow behavior.
type segmentPool[T any] struct {
	items    []*segment[T]
	readIdx  atomix.Uint64
	_        pad
	writeIdx atomix.Uint64
	_        pad
}

func newSegmentPool[T any](capacity int) *segmentPool[T] {
	return &segmentPool[T]{items: make([]*segment[T], capacity)}
}

// push returns a drained segment to the pool for reuse. If the pool is
// full the segment is dropped and left for the garbage collector.
// Called by the consumer only.
func (p *segmentPool[T]) push(s *segment[T]) {
	writeIdx := p.writeIdx.LoadRelaxed()
	next := writeIdx + 1
	if int(next) == len(p.items) {
		next = 0
	}
	if next == p.readIdx.LoadRelaxed() {
		return
	}

	resetSegment(s)
	p.items[writeIdx] = s
	p.writeIdx.StoreRelease(next)
}

// pop hands a segment to its owning producer, allocating a fresh one
// if the pool is currently empty. Called by the lane's producer only.
func (p *segmentPool[T]) pop(segCap int) *segment[T] {
	readIdx := p.readIdx.LoadRelaxed()
	if readIdx == p.writeIdx.LoadAcquire() {
		return newSegment[T](segCap)
	}

	s := p.items[readIdx]
	p.items[readIdx] = nil

	next := readIdx + 1
	if int(next) == len(p.items) {
		next = 0
	}
	p.readIdx.StoreRelease(next)
	return s
}

// drain removes and returns every segment currently held by the pool,
// for use during queue teardown. Not safe for concurrent use with push
// or pop.
func (p *segmentPool[T]) drain() []*segment[T] {
	var out []*segment[T]
	readIdx := p.readIdx.LoadRelaxed()
	writeIdx := p.writeIdx.LoadRelaxed()
	for readIdx != writeIdx {
		out = append(out, p.items[readIdx])
		p.items[readIdx] = nil
		readIdx++
		if int(readIdx) == len(p.items) {
			readIdx = 0
		}
	}
	p.readIdx.StoreRelaxed(readIdx)
	return out
}
