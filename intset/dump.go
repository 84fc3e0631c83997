package intset

import "encoding/binary"

// Dump serializes the backing array as Capacity() little-endian uint32
// cells, in bucket order. This is the format's only moving part: an
// empty cell is encoded as the four zero bytes, and any reader applying
// the same hasher's Unhash recovers the original key multiset. The
// result carries no variant or hasher tag; both are a property of which
// constructor the caller reconstructs with, not of the bytes.
func (t *table) Dump() []byte {
	buf := make([]byte, 4*len(t.arr))
	for i, cell := range t.arr {
		binary.LittleEndian.PutUint32(buf[4*i:], cell)
	}
	return buf
}

// LoadDump replaces the table's contents with data previously produced
// by Dump, recomputing the size counter from the occupied-cell count.
// data's length must be exactly 4*Capacity(); LoadDump does not
// revalidate the per-variant structural invariants (sortedness for BLP,
// reachability for the others) - a dump taken from a well-formed table
// of the same variant and hasher already satisfies them.
func (t *table) LoadDump(data []byte) error {
	if len(data) != 4*len(t.arr) {
		return newInvalidArgument("dump length %d does not match capacity %d (want %d bytes)", len(data), len(t.arr), 4*len(t.arr))
	}
	size := 0
	for i := range t.arr {
		cell := binary.LittleEndian.Uint32(data[4*i:])
		t.arr[i] = cell
		if cell != 0 {
			size++
		}
	}
	t.size = size
	return nil
}
