// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package tsq provides bounded-producer multi-producer/single-consumer
// queues optimized for very high enqueue throughput under contention.
//
// Producer state is partitioned per producer so producers never
// contend with each other or with the consumer. Each producer owns a
// segmented singly-linked lane; the consumer merges across lanes using
// a monotonic advisory timestamp stamped on every value at publication.
//
// # Variants
//
//   - [Queue]: spin variant. Dequeue returns [ErrWouldBlock] when empty.
//   - [WaitQueue]: wait variant. Dequeue blocks until a value arrives.
//   - [OverflowQueue]: spin variant plus a lock-free auxiliary list for
//     producers whose id was not provisioned at construction.
//
// All three share identical ordering semantics and differ only in
// capacity/blocking policy.
//
// # Quick Start
//
//	q := tsq.New[int](4) // 4 producers
//
//	var wg sync.WaitGroup
//	for p := range 4 {
//	    wg.Add(1)
//	    go func(id uint16) {
//	        defer wg.Done()
//	        for i := range 1000 {
//	            q.Enqueue(i, id)
//	        }
//	    }(uint16(p))
//	}
//
//	go func() {
//	    wg.Wait()
//	}()
//
//	for {
//	    v, err := q.Dequeue()
//	    if err != nil {
//	        if tsq.IsWouldBlock(err) {
//	            continue
//	        }
//	    }
//	    process(v)
//	}
//
// # Ordering
//
// Values from the same producer are delivered in strict FIFO order.
// Across producers, ordering is approximate FIFO by timestamp: any two
// values whose timestamps differ are delivered in that order; values
// stamped with equal timestamps are delivered lowest-producer-id first
// (the overflow variant's auxiliary list wins ties against every lane).
// This is not linearizable with respect to wall-clock enqueue time.
//
// # Configuration
//
// [Option] values configure segment capacity (default 4096 slots) and
// recycled-segment pool capacity (default 16 segments) via
// [WithSegmentCapacity] and [WithPoolCapacity]. Both must be >= 2 and
// are fixed for the lifetime of the queue.
//
// # Error Handling
//
// [ErrWouldBlock] signals an empty queue on [Queue.Dequeue] and
// [OverflowQueue.Dequeue] — a normal condition, not a failure. It is
// sourced from [code.hybscloud.com/iox] for ecosystem consistency.
// Calling Enqueue with a producer id outside the provisioned range (on
// the non-overflow variants) panics immediately rather than silently
// corrupting memory; allocation failure during segment creation is
// fatal and propagates as a panic.
//
// # Race Detection
//
// Go's race detector cannot observe happens-before relationships
// established purely through atomic memory orderings (acquire/release
// on independent variables). The multi-producer concurrent tests in this
// package are correct but skip themselves when [RaceEnabled] is true, and
// the examples file is excluded from race-detector runs via
// //go:build !race.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for atomic primitives with explicit
// memory ordering, and [code.hybscloud.com/spin] for the wait variant's
// bounded spin-then-park backoff.
package tsq
