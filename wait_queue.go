// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tsq

import (
	"sync"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// spinAttempts is how many times Dequeue spins on the lanes before
// parking on the condition variable. Most wakeups happen within a few
// producer enqueues of each other, so a short spin phase avoids paying
// for a mutex lock and a context switch on the common case.
const spinAttempts = 64

// WaitQueue is the wait variant: identical ordering to [Queue], except
// Dequeue blocks the consumer until a value is available instead of
// returning [ErrWouldBlock]. Intended for a dedicated consumer
// goroutine with no other work.
type WaitQueue[T any] struct {
	core *core[T]

	mu      sync.Mutex
	cond    *sync.Cond
	waiters atomix.Bool
}

// NewWait creates a wait-variant queue provisioned for numProducers
// distinct producer ids.
func NewWait[T any](numProducers uint16, opts ...Option) *WaitQueue[T] {
	q := &WaitQueue[T]{core: newCore[T](numProducers, resolveConfig(opts))}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Enqueue publishes v on the lane owned by producerID, then wakes the
// consumer if it was waiting.
func (q *WaitQueue[T]) Enqueue(v T, producerID uint16) {
	q.core.enqueue(v, producerID)

	if q.waiters.LoadAcquire() {
		q.mu.Lock()
		q.waiters.StoreRelaxed(false)
		q.cond.Signal()
		q.mu.Unlock()
	}
}

// Dequeue removes and returns the next value in timestamp order,
// blocking until one is available. Single consumer only.
func (q *WaitQueue[T]) Dequeue() T {
	for {
		sw := spin.Wait{}
		for range spinAttempts {
			if v, ok := q.core.dequeue(); ok {
				return v
			}
			sw.Once()
		}

		q.mu.Lock()
		q.waiters.StoreRelease(true)

		// Re-check after raising the flag: a producer's release-store
		// between our failed scan above and raising the flag would
		// otherwise be missed forever.
		if v, ok := q.core.dequeue(); ok {
			q.waiters.StoreRelaxed(false)
			q.mu.Unlock()
			return v
		}

		q.cond.Wait()
		q.mu.Unlock()
	}
}

// Close releases every lane's segments. onUndrained, if non-nil, is
// invoked with every payload that was never dequeued. Must only be
// called once no producer or consumer is active.
func (q *WaitQueue[T]) Close(onUndrained func(T)) {
	q.core.drain(onUndrained)
}
