package hash

// Identity32 is the trivial bijection: Hash and Unhash are both the
// identity function.
type Identity32 struct{}

func (Identity32) Hash(x uint32) uint32   { return x }
func (Identity32) Unhash(x uint32) uint32 { return x }

// Phi32 mixes x by multiplying by the 32-bit golden-ratio constant and
// folding the high bits down with a single xor-shift.
type Phi32 struct{}

const phi32Mul uint32 = 0x9e3779b9
const phi32MulInv uint32 = 0x144cbc89 // modular inverse of phi32Mul mod 2^32

func (Phi32) Hash(x uint32) uint32 {
	x *= phi32Mul
	x ^= x >> 16
	return x
}

func (Phi32) Unhash(x uint32) uint32 {
	x = invXorShift32(x, 16)
	x *= phi32MulInv
	return x
}

// Murmur3Finalizer32 is the 32-bit finalizer mix from MurmurHash3.
type Murmur3Finalizer32 struct{}

const (
	murmur3_32_m1    uint32 = 0x85ebca6b
	murmur3_32_m1Inv uint32 = 0xa5cb9243
	murmur3_32_m2    uint32 = 0xc2b2ae35
	murmur3_32_m2Inv uint32 = 0x7ed1b41d
)

func (Murmur3Finalizer32) Hash(h uint32) uint32 {
	h ^= h >> 16
	h *= murmur3_32_m1
	h ^= h >> 13
	h *= murmur3_32_m2
	h ^= h >> 16
	return h
}

func (Murmur3Finalizer32) Unhash(h uint32) uint32 {
	h = invXorShift32(h, 16)
	h *= murmur3_32_m2Inv
	h = invXorShift32(h, 13)
	h *= murmur3_32_m1Inv
	h = invXorShift32(h, 16)
	return h
}

// H2 is a two-round variant of the common "lowbias32"/murmur-style
// integer mixer: two rounds of multiply-by-0x45d9f3b with a xor-shift-16
// between and after each.
type H2 struct{}

const (
	h2Mul    uint32 = 0x045d9f3b
	h2MulInv uint32 = 0x119de1f3
)

func (H2) Hash(x uint32) uint32 {
	x ^= x >> 16
	x *= h2Mul
	x ^= x >> 16
	x *= h2Mul
	x ^= x >> 16
	return x
}

func (H2) Unhash(x uint32) uint32 {
	x = invXorShift32(x, 16)
	x *= h2MulInv
	x = invXorShift32(x, 16)
	x *= h2MulInv
	x = invXorShift32(x, 16)
	return x
}

// Prospector2 is Chris Wellons' two-round "prospector" 32-bit mixer.
type Prospector2 struct{}

const (
	prospector2_m1    uint32 = 0x7feb352d
	prospector2_m1Inv uint32 = 0x1d69e2a5
	prospector2_m2    uint32 = 0x846ca68b
	prospector2_m2Inv uint32 = 0x43021123
)

func (Prospector2) Hash(x uint32) uint32 {
	x ^= x >> 16
	x *= prospector2_m1
	x ^= x >> 15
	x *= prospector2_m2
	x ^= x >> 16
	return x
}

func (Prospector2) Unhash(x uint32) uint32 {
	x = invXorShift32(x, 16)
	x *= prospector2_m2Inv
	x = invXorShift32(x, 15)
	x *= prospector2_m1Inv
	x = invXorShift32(x, 16)
	return x
}

// Prospector3 is Chris Wellons' three-round "prospector" 32-bit mixer,
// trading an extra round of mixing for slightly better avalanche than
// [Prospector2].
type Prospector3 struct{}

const (
	prospector3_m1    uint32 = 0xed5ad4bb
	prospector3_m1Inv uint32 = 0x79a85073
	prospector3_m2    uint32 = 0xac4c1b51
	prospector3_m2Inv uint32 = 0x469e0db1
	prospector3_m3    uint32 = 0x31848bab
	prospector3_m3Inv uint32 = 0x32b21703
)

func (Prospector3) Hash(x uint32) uint32 {
	x ^= x >> 17
	x *= prospector3_m1
	x ^= x >> 11
	x *= prospector3_m2
	x ^= x >> 15
	x *= prospector3_m3
	x ^= x >> 14
	return x
}

func (Prospector3) Unhash(x uint32) uint32 {
	x = invXorShift32(x, 14)
	x *= prospector3_m3Inv
	x = invXorShift32(x, 15)
	x *= prospector3_m2Inv
	x = invXorShift32(x, 11)
	x *= prospector3_m1Inv
	x = invXorShift32(x, 17)
	return x
}
