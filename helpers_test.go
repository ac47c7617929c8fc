// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tsq_test

import (
	"sync"
	"testing"
	"time"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
)

// producerStride packs a producer id and sequence number into one
// int value so a single-consumer merge can recover both without any side
// channel: v = producerID*producerStride + seq.
const producerStride = 1_000_000

// runMultiProducerCheck starts numProducers goroutines, each enqueuing
// itemsPerProducer values through enqueue, while the calling goroutine
// drains dequeue until every value has been seen exactly once.
func runMultiProducerCheck(t *testing.T, numProducers, itemsPerProducer int,
	enqueue func(v int, id uint16),
	dequeue func() (int, error),
) {
	t.Helper()
	runMultiProducerCheckWithObserver(t, numProducers, itemsPerProducer, enqueue, dequeue, nil)
}

// runMultiProducerCheckWithObserver is runMultiProducerCheck plus an
// optional callback invoked with (producerID, seq) for every delivered
// value, in delivery order, so a caller can additionally check per-producer
// ordering.
func runMultiProducerCheckWithObserver(t *testing.T, numProducers, itemsPerProducer int,
	enqueue func(v int, id uint16),
	dequeue func() (int, error),
	observe func(t *testing.T, producerID, seq int),
) {
	t.Helper()

	var wg sync.WaitGroup
	for p := range numProducers {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := range itemsPerProducer {
				enqueue(id*producerStride+i, uint16(id))
			}
		}(p)
	}

	expectedTotal := numProducers * itemsPerProducer
	seen := make([]atomix.Int32, expectedTotal)
	consumed := 0
	deadline := time.Now().Add(30 * time.Second)
	backoff := iox.Backoff{}

	for consumed < expectedTotal {
		v, err := dequeue()
		if err != nil {
			if time.Now().After(deadline) {
				t.Fatalf("timeout: consumed %d/%d", consumed, expectedTotal)
			}
			backoff.Wait()
			continue
		}
		backoff.Reset()

		producerID := v / producerStride
		seq := v % producerStride
		if producerID < 0 || producerID >= numProducers || seq < 0 || seq >= itemsPerProducer {
			t.Fatalf("value out of range: %d", v)
		}

		idx := producerID*itemsPerProducer + seq
		seen[idx].Add(1)
		consumed++
		if observe != nil {
			observe(t, producerID, seq)
		}
	}

	wg.Wait()

	var missing, duplicates int
	for i := range expectedTotal {
		switch seen[i].Load() {
		case 0:
			missing++
		case 1:
		default:
			duplicates++
		}
	}
	if missing > 0 {
		t.Errorf("no-loss violation: %d values never delivered", missing)
	}
	if duplicates > 0 {
		t.Errorf("no-duplication violation: %d values delivered more than once", duplicates)
	}
}
