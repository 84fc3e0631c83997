package intset

import "github.com/openaddr/bijectset/hash"

// LP is the classic linear-probing variant: insert walks forward from a
// key's preferred bucket to the first empty cell it finds; delete walks
// the following chain backward, re-homing any cell whose preferred
// bucket no longer requires the gap just opened (see
// (*table).backwardShiftDelete).
type LP[H hash.Hasher32] struct {
	table
	hasher H
}

// NewLP constructs an LP set sized to hold at least n elements at load
// factor alpha. See capacityFor for how M is derived, and Option for the
// available construction-time overrides.
func NewLP[H hash.Hasher32](n int, alpha float64, opts ...Option) (*LP[H], error) {
	t, err := buildTable(n, alpha, opts)
	if err != nil {
		return nil, err
	}
	return &LP[H]{table: t}, nil
}

// Contains reports whether k is a member of the set.
func (s *LP[H]) Contains(k uint32) bool {
	checkKey(k)
	hv := s.hasher.Hash(k)
	_, found, _ := s.forwardLookup(hv)
	return found
}

// Add inserts k, reporting false if it was already present. It returns
// TableFullError if no empty cell is reached within one full revolution
// of the table.
func (s *LP[H]) Add(k uint32) (bool, error) {
	checkKey(k)
	hv := s.hasher.Hash(k)
	idx, found, full := s.forwardLookup(hv)
	if full {
		return false, newTableFull(s.Capacity())
	}
	if found {
		return false, nil
	}
	s.arr[idx] = hv
	s.size++
	s.tracef("lp: add key=%d hash=%#x bucket=%d", k, hv, idx)
	s.checkForwardInvariants()
	return true, nil
}

// Remove deletes k, reporting false if it was not present.
func (s *LP[H]) Remove(k uint32) bool {
	checkKey(k)
	hv := s.hasher.Hash(k)
	idx, found, _ := s.forwardLookup(hv)
	if !found {
		return false
	}
	s.backwardShiftDelete(idx)
	s.size--
	s.tracef("lp: remove key=%d hash=%#x bucket=%d", k, hv, idx)
	s.checkForwardInvariants()
	return true
}
