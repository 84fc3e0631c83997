package intset

import "github.com/openaddr/bijectset/hash"

// LCFS is the last-come-first-served linear-probing variant: every
// insert lands its key in the key's own preferred bucket, pushing any
// existing chain one step forward to make room rather than finding the
// chain's tail the way LP does. Delete reuses LP's backward-shift walk
// unchanged; both variants rely on the same reachability invariant
// (every occupied cell is reachable by scanning forward from its
// preferred bucket without crossing an empty cell).
type LCFS[H hash.Hasher32] struct {
	table
	hasher H
}

// NewLCFS constructs an LCFS set sized to hold at least n elements at
// load factor alpha.
func NewLCFS[H hash.Hasher32](n int, alpha float64, opts ...Option) (*LCFS[H], error) {
	t, err := buildTable(n, alpha, opts)
	if err != nil {
		return nil, err
	}
	return &LCFS[H]{table: t}, nil
}

// Contains reports whether k is a member of the set.
func (s *LCFS[H]) Contains(k uint32) bool {
	checkKey(k)
	hv := s.hasher.Hash(k)
	_, found, _ := s.forwardLookup(hv)
	return found
}

// Add inserts k, reporting false if it was already present. It returns
// TableFullError if no empty cell is found forward of k's preferred
// bucket within one full revolution.
func (s *LCFS[H]) Add(k uint32) (bool, error) {
	checkKey(k)
	hv := s.hasher.Hash(k)
	empty, found, full := s.forwardLookup(hv)
	if full {
		return false, newTableFull(s.Capacity())
	}
	if found {
		return false, nil
	}

	m := s.Capacity()
	p := pref(hv, m)

	// empty is the first empty cell reached scanning forward from p; it
	// is p itself when the preferred bucket was already free. Slide
	// [p, empty) forward by one to open up arr[p] for the new element.
	cur := empty
	for cur != p {
		prv := prev(cur, m)
		s.arr[cur] = s.arr[prv]
		cur = prv
	}
	s.arr[p] = hv
	s.size++
	s.tracef("lcfs: add key=%d hash=%#x preferred=%d", k, hv, p)
	s.checkForwardInvariants()
	return true, nil
}

// Remove deletes k, reporting false if it was not present.
func (s *LCFS[H]) Remove(k uint32) bool {
	checkKey(k)
	hv := s.hasher.Hash(k)
	idx, found, _ := s.forwardLookup(hv)
	if !found {
		return false
	}
	s.backwardShiftDelete(idx)
	s.size--
	s.tracef("lcfs: remove key=%d hash=%#x bucket=%d", k, hv, idx)
	s.checkForwardInvariants()
	return true
}
