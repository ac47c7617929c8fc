// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tsq

// source is anything the consumer merge can pick a winner from: a
// producer lane, or (for the overflow variant) the auxiliary list.
type source[T any] interface {
	// peek reports the timestamp of the oldest unconsumed value, if any.
	peek() (ts uint64, ok bool)
	// consume removes and returns the value peek just reported.
	consume() T
}

// mergeNext runs the two-pass stabilization scan across sources and
// returns the next value in timestamp order, or ok=false if every
// source was empty on two consecutive scans.
//
// sources must be ordered so that earlier entries win timestamp ties
// against later ones (strict "<" comparison never lets a later source
// displace an earlier one on equal timestamps) — callers put the
// auxiliary list, if any, before the lanes, and lanes in ascending
// producer-id order, which is exactly the equal-timestamp tie-break
// this package guarantees.
//
// The "same winner twice in a row" rule is the correctness anchor: a
// producer that is about to publish a smaller timestamp must already
// have stored its data before that publish is visible (data is stored
// before count, release-published). If the minimum hasn't moved across
// two successive scans, no concurrent producer can retroactively
// introduce a smaller timestamp, so the observed winner is stable.
func mergeNext[T any](sources []source[T]) (T, bool) {
	var zero T
	prev := -2

	for {
		minTS := emptyTS
		minIdx := -1

		for i, s := range sources {
			ts, ok := s.peek()
			if ok && ts < minTS {
				minTS = ts
				minIdx = i
			}
		}

		if minIdx == -1 && prev == -1 {
			return zero, false
		}

		if prev == minIdx {
			return sources[minIdx].consume(), true
		}

		prev = minIdx
	}
}
