package intset

import (
	"github.com/openaddr/bijectset/hash"
	"github.com/openaddr/bijectset/internal/stats"
)

// RH is the Robin Hood linear-probing variant: insert steals a cell from
// any resident whose probe distance is strictly shorter than the
// incoming element's, carrying the displaced element forward to find
// its own new home. This bounds the variance of probe distances across
// the table (the "rich give to the poor" creed), and lets lookup
// terminate early: walking forward, once a resident cell's own probe
// distance falls below the distance already covered, no instance of the
// sought hash can appear further on.
type RH[H hash.Hasher32] struct {
	table
	hasher H

	insertProbes stats.Mean
	maxProbe     stats.Max
}

// ProbeStats reports the mean and maximum, over successful Add calls so
// far, of the probe distance of the element each call finally wrote
// into an empty cell (after any displacements, that element may be a
// displaced resident rather than the added key), a measure of how well
// the Robin Hood creed is bounding variance for this table's actual key
// set. Reset by Clear.
func (s *RH[H]) ProbeStats() (mean float64, max int) {
	return s.insertProbes.Get(), s.maxProbe.Get()
}

// Clear zeroes every cell, resets the size counter, and resets the
// probe-distance statistics.
func (s *RH[H]) Clear() {
	s.table.Clear()
	s.insertProbes.Reset()
	s.maxProbe.Reset()
}

// NewRH constructs an RH set sized to hold at least n elements at load
// factor alpha.
func NewRH[H hash.Hasher32](n int, alpha float64, opts ...Option) (*RH[H], error) {
	t, err := buildTable(n, alpha, opts)
	if err != nil {
		return nil, err
	}
	return &RH[H]{table: t}, nil
}

// Contains reports whether k is a member of the set.
func (s *RH[H]) Contains(k uint32) bool {
	checkKey(k)
	hv := s.hasher.Hash(k)
	m := s.Capacity()
	b := pref(hv, m)

	for dist := 0; dist < m; dist++ {
		cell := s.arr[b]
		if cell == 0 {
			return false
		}
		if cell == hv {
			return true
		}
		// A defensive guard: pref maps a 0 argument to -1, but cell is
		// never 0 here (the branch above already
		// returned), so this can never fire. Kept because probe's
		// contract reads cleaner stated than assumed.
		if cell != 0 && probe(cell, b, m) < dist {
			return false
		}
		b = next(b, m)
	}
	return false
}

// Add inserts k, reporting false if it was already present. It returns
// TableFullError if the table has no empty cell left, and in that case
// leaves the table untouched: fullness is checked before any
// displacement happens, never discovered partway through one. A
// displacement chain that ran out of empty cells mid-walk would have
// already overwritten cells and then dropped the last carried element
// on the floor, corrupting the table on a failed Add - so presence is
// resolved with a read-only walk first, and only once that confirms k
// is both absent and the table has room does the carrying walk run,
// which is then guaranteed to land in an empty cell within one
// revolution.
func (s *RH[H]) Add(k uint32) (bool, error) {
	checkKey(k)
	hv := s.hasher.Hash(k)
	m := s.Capacity()

	b := pref(hv, m)
	for dist := 0; dist < m; dist++ {
		cell := s.arr[b]
		if cell == 0 {
			break
		}
		if cell == hv {
			return false, nil
		}
		if probe(cell, b, m) < dist {
			break
		}
		b = next(b, m)
	}

	if s.size >= m {
		return false, newTableFull(m)
	}

	carry := hv
	b = pref(carry, m)
	dist := 0
	for range m {
		cell := s.arr[b]
		if cell == 0 {
			s.arr[b] = carry
			s.size++
			s.insertProbes.Record(float64(dist))
			s.maxProbe.Record(dist)
			s.tracef("rh: add key=%d bucket=%d probe=%d", k, b, dist)
			s.checkForwardInvariants()
			return true, nil
		}

		residentDist := probe(cell, b, m)
		if residentDist < dist {
			s.arr[b] = carry
			carry = cell
			dist = residentDist
		}

		b = next(b, m)
		dist++
	}
	return false, newTableFull(m)
}

// Remove deletes k, reporting false if it was not present.
func (s *RH[H]) Remove(k uint32) bool {
	checkKey(k)
	hv := s.hasher.Hash(k)
	m := s.Capacity()
	b := pref(hv, m)

	for dist := 0; dist < m; dist++ {
		cell := s.arr[b]
		if cell == 0 {
			return false
		}
		if cell == hv {
			s.backwardShiftDelete(b)
			s.size--
			s.tracef("rh: remove key=%d bucket=%d", k, b)
			s.checkForwardInvariants()
			return true
		}
		if probe(cell, b, m) < dist {
			return false
		}
		b = next(b, m)
	}
	return false
}
