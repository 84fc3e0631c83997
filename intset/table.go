// Package intset implements a family of fixed-capacity, open-addressing
// integer hash sets whose keys are non-zero 32-bit integers.
//
// The stored cell value IS the key's hash under a bijective hash
// function (see the sibling hash package): because the hash is
// invertible, the original key can always be recovered from a cell, so
// a cell needs no separate key/hash storage and is exactly one uint32
// wide (0 doubles as the empty-cell sentinel).
//
// Four variants share this layout and diverge only in their
// insert/lookup/delete policy:
//
//   - [LP]: classic linear probing, backward-shift deletion.
//   - [RH]: Robin Hood linear probing, early-terminating lookup,
//     backward-shift deletion.
//   - [LCFS]: last-come-first-served linear probing; every insert lands
//     in its preferred bucket.
//   - [BLP]: bidirectional linear probing (Amble-Knuth), keeping each
//     contiguous run of cells sorted by hash.
//
// None of the variants grow: capacity M is fixed for the lifetime of
// the set, computed once at construction from a declared maximum
// element count N and a load factor alpha.
package intset

import (
	"log"
	"math"

	"github.com/openaddr/bijectset/internal/assert"
)

// table holds the fields and helpers shared by every variant: the
// backing cell array, the occupied-cell counter, the preferred-
// bucket / probe-distance arithmetic that every variant's insert,
// lookup, and delete walk is built from, and an optional tracer
// installed by WithTrace.
type table struct {
	arr   []uint32
	size  int
	trace *log.Logger
}

// newTable allocates a zeroed array of the given capacity.
func newTable(capacity int) table {
	return table{arr: make([]uint32, capacity)}
}

// buildTable resolves (n, alpha, opts) into a ready-to-use table: it
// derives M via capacityFor, applies WithCapacity's override if given,
// and installs WithTrace's logger. Every variant's constructor is a
// thin wrapper around this plus its own struct literal.
func buildTable(n int, alpha float64, opts []Option) (table, error) {
	m, err := capacityFor(n, alpha)
	if err != nil {
		return table{}, err
	}
	cfg := buildConfig(opts)
	if cfg.capacity > 0 {
		m = cfg.capacity
	}
	t := newTable(m)
	if cfg.trace != nil {
		t.trace = log.New(cfg.trace, "", log.LstdFlags)
	}
	return t, nil
}

// tracef writes a trace line if a tracer was installed via WithTrace;
// it is a no-op otherwise, independent of the debug build tag (unlike
// checkForwardInvariants, this diagnostic is always available since it
// costs nothing when trace is nil).
func (t *table) tracef(format string, args ...any) {
	if t.trace != nil {
		t.trace.Printf(format, args...)
	}
}

// capacityFor computes M = floor(N / alpha), the fixed cell count for a
// set declaring a maximum of N elements at load factor alpha. See
// DESIGN.md for why floor rather than ceil: new(8, 0.75) must produce a
// capacity of exactly 10, and 8/0.75 = 10.667 only reaches 10 under
// floor.
func capacityFor(n int, alpha float64) (int, error) {
	if n <= 0 {
		return 0, newInvalidArgument("N must be > 0, got %d", n)
	}
	if alpha <= 0 || alpha > 1 {
		return 0, newInvalidArgument("alpha must be in (0, 1], got %v", alpha)
	}
	m := int(math.Floor(float64(n) / alpha))
	if m < 1 {
		m = 1
	}
	return m, nil
}

// pref returns the preferred bucket for hash h in a table of m cells,
// using Lemire's "fast range" mapping (h*m)>>32 rather than modulo. h
// must be non-zero; as a defensive guard pref(0) returns -1, although no
// caller ever passes 0.
func pref(h uint32, m int) int {
	if h == 0 {
		return -1
	}
	return int((uint64(h) * uint64(m)) >> 32)
}

// probe returns the forward cyclic distance from h's preferred bucket
// to bucket b.
func probe(h uint32, b int, m int) int {
	d := b - pref(h, m)
	if d < 0 {
		d += m
	}
	return d
}

// next advances a bucket index by one, wrapping at the end of the
// table.
func next(b, m int) int {
	b++
	if b == m {
		b = 0
	}
	return b
}

// prev steps a bucket index back by one, wrapping at the start of the
// table.
func prev(b, m int) int {
	if b == 0 {
		return m - 1
	}
	return b - 1
}

// Capacity returns M, the fixed number of cells in the backing array.
func (t *table) Capacity() int { return len(t.arr) }

// Size returns the current number of occupied cells.
func (t *table) Size() int { return t.size }

// Clear zeroes every cell and resets the size counter to 0.
func (t *table) Clear() {
	clear(t.arr)
	t.size = 0
}

// forwardLookup walks forward from hv's preferred bucket, stopping at the
// first empty cell (absent - idx is the insertion point), the first
// matching cell (present), or after a full revolution with neither
// found (full). This is the lookup walk shared by LP and LCFS; the
// "absent" return legitimately points at an empty cell rather than
// being a sentinel index, which is exactly what LCFS's insert needs to
// know where to open its forward slide.
func (t *table) forwardLookup(hv uint32) (idx int, found bool, full bool) {
	m := t.Capacity()
	b := pref(hv, m)
	for range m {
		cell := t.arr[b]
		if cell == 0 {
			return b, false, false
		}
		if cell == hv {
			return b, true, false
		}
		b = next(b, m)
	}
	return -1, false, true
}

// backwardShiftDelete empties bucket d and shifts the following chain of
// occupied cells backward (tombstone-free) so that every surviving
// element remains reachable from its preferred bucket, per Goodrich &
// Tamassia's algorithm (Introduction to Algorithms, open addressing
// deletion without tombstones). LCFS and RH share this exact delete.
func (t *table) backwardShiftDelete(d int) {
	m := t.Capacity()
	t.arr[d] = 0
	dst := d
	src := next(dst, m)
	for t.arr[src] != 0 {
		p := pref(t.arr[src], m)

		var shift bool
		if dst <= src {
			shift = p <= dst || p > src
		} else {
			// The chain wraps around the end of the table; the same
			// "is p outside (dst, src]" test, expressed for the
			// wrapped case.
			shift = p <= dst && p > src
		}

		if shift {
			t.arr[dst] = t.arr[src]
			t.arr[src] = 0
			dst = src
		}
		src = next(src, m)
	}
}

// reachableForward reports whether bucket b's occupant (if any) can be
// found by scanning forward from its preferred bucket without crossing
// an empty cell - the reachability invariant shared by LP, RH, and
// LCFS (they differ only in how they choose where an element lands,
// not in how it is later found).
func (t *table) reachableForward(b int) bool {
	m := t.Capacity()
	if t.arr[b] == 0 {
		return true
	}
	p := pref(t.arr[b], m)
	for i := p; i != b; i = next(i, m) {
		if t.arr[i] == 0 {
			return false
		}
	}
	return true
}

// checkForwardInvariants whole-array-scans the table, asserting no
// duplicate hashes, every occupied cell reachable per reachableForward,
// and the size counter matching the occupied-cell count. It is a no-op
// unless built with the debug tag; callers still pay the allocation and
// scan cost in a debug build, which is the point.
func (t *table) checkForwardInvariants() {
	if !assert.Enabled {
		return
	}
	m := t.Capacity()
	count := 0
	seen := make(map[uint32]bool, m)
	for b := 0; b < m; b++ {
		c := t.arr[b]
		if c == 0 {
			continue
		}
		count++
		assert.Invariant(!seen[c], "duplicate hash %#x in table", c)
		seen[c] = true
		assert.Invariant(t.reachableForward(b), "cell %d (hash %#x) is not reachable from its preferred bucket", b, c)
	}
	assert.Invariant(count == t.size, "size counter %d does not match occupied-cell count %d", t.size, count)
}
