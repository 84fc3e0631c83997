package intset

import (
	"github.com/openaddr/bijectset/hash"
	"github.com/openaddr/bijectset/internal/assert"
)

// BLP is the Amble-Knuth bidirectional linear-probing variant. Unlike
// LP/RH/LCFS, BLP's probe walks never wrap around the ends of the
// array: a contiguous run of occupied cells is kept sorted in unsigned
// ascending order, and both lookup and insert choose a probe direction
// (left or right) rather than always scanning forward. This trades a
// slightly more involved insert/delete for shorter average lookups,
// since a lookup that overshoots its target inside a sorted run can
// stop as soon as the run's order rules out a match.
type BLP[H hash.Hasher32] struct {
	table
	hasher H
}

// NewBLP constructs a BLP set sized to hold at least n elements at load
// factor alpha.
func NewBLP[H hash.Hasher32](n int, alpha float64, opts ...Option) (*BLP[H], error) {
	t, err := buildTable(n, alpha, opts)
	if err != nil {
		return nil, err
	}
	return &BLP[H]{table: t}, nil
}

// lookup returns the bucket hv would occupy if present, and whether it
// is actually there. Unlike the other three variants' walks, this one
// never wraps: a sorted run ends at the array boundary or at the first
// empty cell, whichever comes first.
func (s *BLP[H]) lookup(hv uint32) (int, bool) {
	m := s.Capacity()
	b := pref(hv, m)
	cell := s.arr[b]
	if cell == 0 {
		return b, false
	}
	if cell < hv {
		for b+1 < m && s.arr[b+1] != 0 && s.arr[b+1] <= hv {
			b++
		}
	} else if cell > hv {
		for b-1 >= 0 && s.arr[b-1] != 0 && s.arr[b-1] >= hv {
			b--
		}
	}
	return b, s.arr[b] == hv
}

// Contains reports whether k is a member of the set.
func (s *BLP[H]) Contains(k uint32) bool {
	checkKey(k)
	_, found := s.lookup(s.hasher.Hash(k))
	return found
}

// findEmpty walks from start in the given direction (+1 or -1), stopping
// at the array boundary, and returns the first empty cell found or -1
// if the boundary was reached first.
func (s *BLP[H]) findEmpty(start, direction int) int {
	m := s.Capacity()
	b := start
	for {
		b += direction
		if b < 0 || b >= m {
			return -1
		}
		if s.arr[b] == 0 {
			return b
		}
	}
}

// Add inserts k, reporting false if it was already present. It returns
// TableFullError if neither direction from k's preferred bucket reaches
// an empty cell before the array boundary.
func (s *BLP[H]) Add(k uint32) (bool, error) {
	checkKey(k)
	hv := s.hasher.Hash(k)
	b, found := s.lookup(hv)
	if found {
		return false, nil
	}
	if s.arr[b] == 0 {
		s.arr[b] = hv
		s.size++
		s.tracef("blp: add key=%d hash=%#x bucket=%d (preferred bucket free)", k, hv, b)
		s.checkInvariant()
		return true, nil
	}

	m := s.Capacity()
	var direction int
	switch {
	case b == 0:
		direction = 1
	case b == m-1:
		direction = -1
	case s.arr[b] < hv:
		direction = -1
	default:
		direction = 1
	}

	empty := s.findEmpty(b, direction)
	if empty == -1 {
		direction = -direction
		empty = s.findEmpty(b, direction)
		if empty == -1 {
			return false, newTableFull(m)
		}
	}

	// Bubble hv from b toward empty, carrying forward whichever of hv
	// and the current resident belongs further from b in probe order,
	// so the run stays sorted ascending once hv settles into place.
	carry := hv
	cur := b
	for s.arr[cur] != 0 {
		resident := s.arr[cur]
		var swap bool
		if direction == 1 {
			swap = carry < resident
		} else {
			swap = carry > resident
		}
		if swap {
			s.arr[cur] = carry
			carry = resident
		}
		cur += direction
	}
	s.arr[cur] = carry
	s.size++
	s.tracef("blp: add key=%d hash=%#x bucket=%d", k, hv, cur)
	s.checkInvariant()
	return true, nil
}

// checkInvariant whole-array-scans the table, asserting no duplicate
// hashes, every run sorted unsigned ascending, every occupied cell's
// preferred bucket falling within its own run, and the size counter
// matching the occupied-cell count. It is a no-op unless built with the
// debug tag.
func (s *BLP[H]) checkInvariant() {
	if !assert.Enabled {
		return
	}
	m := s.Capacity()
	count := 0
	seen := make(map[uint32]bool, m)
	runStart := -1
	for b := 0; b <= m; b++ {
		var cell uint32
		if b < m {
			cell = s.arr[b]
		}
		if b == m || cell == 0 {
			for i := runStart; i >= 0 && i < b; i++ {
				if i > runStart {
					assert.Invariant(s.arr[i-1] <= s.arr[i], "run [%d,%d) not sorted ascending at index %d", runStart, b, i)
				}
				p := pref(s.arr[i], m)
				assert.Invariant(p >= runStart && p < b, "cell %d's preferred bucket %d falls outside its own run [%d,%d)", i, p, runStart, b)
			}
			runStart = -1
			continue
		}
		if runStart == -1 {
			runStart = b
		}
		count++
		assert.Invariant(!seen[cell], "duplicate hash %#x in table", cell)
		seen[cell] = true
	}
	assert.Invariant(count == s.size, "size counter %d does not match occupied-cell count %d", s.size, count)
}

// moveBoundary finds the far end of the chain that Remove will shift
// into b's vacated cell. Moving LEFT (right-neighbors shift left into
// b), it walks right while the next cell is occupied and sits strictly
// past its own preferred bucket, i.e. it can give up one step of slack
// and still land at or after that bucket; an element already sitting
// exactly at its preferred bucket (probe distance 0) has no slack left
// and must not be pulled toward b, so the walk stops there instead.
// Moving RIGHT is the mirror image.
func (s *BLP[H]) moveBoundary(b int, direction string) int {
	m := s.Capacity()
	cur := b
	if direction == "LEFT" {
		for {
			ni := cur + 1
			if ni >= m || s.arr[ni] == 0 {
				return cur
			}
			if pref(s.arr[ni], m) < ni {
				cur = ni
			} else {
				return cur
			}
		}
	}
	for {
		pi := cur - 1
		if pi < 0 || s.arr[pi] == 0 {
			return cur
		}
		if pref(s.arr[pi], m) > pi {
			cur = pi
		} else {
			return cur
		}
	}
}

// Remove deletes k, reporting false if it was not present.
func (s *BLP[H]) Remove(k uint32) bool {
	checkKey(k)
	hv := s.hasher.Hash(k)
	b, found := s.lookup(hv)
	if !found {
		return false
	}

	m := s.Capacity()
	var direction string
	switch {
	case b == 0:
		direction = "LEFT"
	case b == m-1:
		direction = "RIGHT"
	default:
		p := pref(s.arr[b], m)
		leftShares := b-1 >= 0 && s.arr[b-1] != 0 && pref(s.arr[b-1], m) == p
		rightShares := b+1 < m && s.arr[b+1] != 0 && pref(s.arr[b+1], m) == p

		switch {
		case b == p:
			switch {
			case !leftShares && !rightShares:
				s.arr[b] = 0
				s.size--
				s.tracef("blp: remove key=%d hash=%#x bucket=%d (isolated)", k, hv, b)
				s.checkInvariant()
				return true
			case leftShares && !rightShares:
				direction = "RIGHT"
			case rightShares && !leftShares:
				direction = "LEFT"
			default:
				dl := absDiff32(s.arr[b-1], s.arr[b])
				dr := absDiff32(s.arr[b+1], s.arr[b])
				if dl <= dr {
					direction = "RIGHT"
				} else {
					direction = "LEFT"
				}
			}
		case b < p:
			direction = "RIGHT"
		default:
			direction = "LEFT"
		}
	}

	boundary := s.moveBoundary(b, direction)
	if direction == "LEFT" {
		for cur := b; cur != boundary; cur++ {
			s.arr[cur] = s.arr[cur+1]
		}
	} else {
		for cur := b; cur != boundary; cur-- {
			s.arr[cur] = s.arr[cur-1]
		}
	}
	s.arr[boundary] = 0
	s.size--
	s.tracef("blp: remove key=%d hash=%#x bucket=%d direction=%s", k, hv, b, direction)
	s.checkInvariant()
	return true
}

func absDiff32(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}
