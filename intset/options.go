package intset

import "io"

// Option configures a set at construction time, in addition to the
// required (N, alpha) pair every constructor takes. This mirrors the
// functional-options pattern used elsewhere in this module's ambient
// stack; unlike that pattern's typical use for optional behavior
// toggles, every Option here is diagnostic - the public operation set
// is pinned to exactly six methods plus a two-argument constructor, so
// nothing here changes add/remove/contains semantics.
type Option func(*config)

type config struct {
	trace    io.Writer
	capacity int // 0 means "derive from (N, alpha)"
}

// WithTrace installs a logger writing to w that receives one trace line
// per successful Add/Remove on this set instance. It works in every
// build, not only with the debug tag; without it no trace is written.
func WithTrace(w io.Writer) Option {
	return func(c *config) { c.trace = w }
}

// WithCapacity pins M directly, bypassing the floor(N/alpha) derivation
// in capacityFor. It exists for tests that need to hit an exact boundary
// capacity without floating-point rounding surprises.
func WithCapacity(m int) Option {
	return func(c *config) { c.capacity = m }
}

func buildConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
