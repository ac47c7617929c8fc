// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tsq_test

import (
	"runtime"
	"sync"
	"testing"

	"code.hybscloud.com/tsq"
)

// TestConcurrentMergeStability hammers the consumer's merge scan while
// producers are actively publishing, rather than letting producers finish
// first. The two-pass stabilization rule only matters while a smaller
// timestamp could still appear mid-scan; running the consumer concurrently
// with live producers, with runtime.Gosched calls sprinkled on the producer
// side to widen the interleaving window, is what actually exercises it.
//
// If the merge ever returned a value whose timestamp could still have been
// undercut by an in-flight publish, this test would observe it as an
// out-of-order delivery from some producer's subsequence, which the checks
// below would catch.
func TestConcurrentMergeStability(t *testing.T) {
	if tsq.RaceEnabled {
		t.Skip("skip: relies on happens-before established via atomic memory ordering, which the race detector cannot observe")
	}

	const numProducers = 6
	const itemsPerProducer = 20_000

	q := tsq.New[int](numProducers)

	var wg sync.WaitGroup
	for p := range numProducers {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := range itemsPerProducer {
				q.Enqueue(id*producerStride+i, uint16(id))
				if i%7 == 0 {
					runtime.Gosched()
				}
			}
		}(p)
	}

	last := make([]int, numProducers)
	for i := range last {
		last[i] = -1
	}

	consumed := 0
	want := numProducers * itemsPerProducer
	for consumed < want {
		v, err := q.Dequeue()
		if err != nil {
			runtime.Gosched()
			continue
		}
		producerID := v / producerStride
		seq := v % producerStride
		if seq <= last[producerID] {
			t.Fatalf("producer %d: merge delivered seq %d after %d — a smaller timestamp surfaced after a larger one was already consumed", producerID, seq, last[producerID])
		}
		last[producerID] = seq
		consumed++
	}

	wg.Wait()

	for p, l := range last {
		if l != itemsPerProducer-1 {
			t.Fatalf("producer %d: last delivered seq %d, want %d", p, l, itemsPerProducer-1)
		}
	}
}
