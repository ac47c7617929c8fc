// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tsq

const (
	defaultSegmentCapacity = 4096
	defaultPoolCapacity    = 16
)

// config holds the fixed-at-construction tuning knobs shared by all
// three queue variants.
type config struct {
	segmentCapacity int
	poolCapacity    int
}

func defaultConfig() config {
	return config{
		segmentCapacity: defaultSegmentCapacity,
		poolCapacity:    defaultPoolCapacity,
	}
}

// Option configures a queue at construction time.
type Option func(*config)

// WithSegmentCapacity sets the number of slots per lane segment.
// Must be >= 2. Panics otherwise.
func WithSegmentCapacity(n int) Option {
	if n < 2 {
		panic("tsq: segment capacity must be >= 2")
	}
	return func(c *config) { c.segmentCapacity = n }
}

// WithPoolCapacity sets the ring size of each lane's recycled-buffer
// pool. One ring slot always stays unused, so the pool holds at most
// n-1 retired segments; further retired segments are freed instead of
// reused. Must be >= 2. Panics otherwise.
func WithPoolCapacity(n int) Option {
	if n < 2 {
		panic("tsq: pool capacity must be >= 2")
	}
	return func(c *config) { c.poolCapacity = n }
}

func resolveConfig(opts []Option) config {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
