package hash

// Phi64 is Phi32's 64-bit counterpart: multiply by the 64-bit
// golden-ratio constant, fold the high bits down with a single
// half-width xor-shift.
type Phi64 struct{}

const phi64Mul uint64 = 0x9e3779b97f4a7c15
const phi64MulInv uint64 = 0xf1de83e19937733d

func (Phi64) Hash(x uint64) uint64 {
	x *= phi64Mul
	x ^= x >> 32
	return x
}

func (Phi64) Unhash(x uint64) uint64 {
	x = invXorShift64(x, 32)
	x *= phi64MulInv
	return x
}

// Murmur3Finalizer64 is the 64-bit finalizer mix from MurmurHash3 (also
// known as fmix64).
type Murmur3Finalizer64 struct{}

const (
	murmur3_64_m1    uint64 = 0xff51afd7ed558ccd
	murmur3_64_m1Inv uint64 = 0x4f74430c22a54005
	murmur3_64_m2    uint64 = 0xc4ceb9fe1a85ec53
	murmur3_64_m2Inv uint64 = 0x9cb4b2f8129337db
)

func (Murmur3Finalizer64) Hash(h uint64) uint64 {
	h ^= h >> 33
	h *= murmur3_64_m1
	h ^= h >> 33
	h *= murmur3_64_m2
	h ^= h >> 33
	return h
}

func (Murmur3Finalizer64) Unhash(h uint64) uint64 {
	h = invXorShift64(h, 33)
	h *= murmur3_64_m2Inv
	h = invXorShift64(h, 33)
	h *= murmur3_64_m1Inv
	h = invXorShift64(h, 33)
	return h
}

// Variant13 is "splitmix64"'s finalizer, also catalogued by Stafford as
// mix variant 13 of his integer-hash search.
type Variant13 struct{}

const (
	variant13_m1    uint64 = 0xbf58476d1ce4e5b9
	variant13_m1Inv uint64 = 0x96de1b173f119089
	variant13_m2    uint64 = 0x94d049bb133111eb
	variant13_m2Inv uint64 = 0x319642b2d24d8ec3
)

func (Variant13) Hash(z uint64) uint64 {
	z ^= z >> 30
	z *= variant13_m1
	z ^= z >> 27
	z *= variant13_m2
	z ^= z >> 31
	return z
}

func (Variant13) Unhash(z uint64) uint64 {
	z = invXorShift64(z, 31)
	z *= variant13_m2Inv
	z = invXorShift64(z, 27)
	z *= variant13_m1Inv
	z = invXorShift64(z, 30)
	return z
}

// Wang is Thomas Wang's 64-bit integer mixer ("hash64shift"). Unlike the
// other catalog entries it is built from add-shift combinations rather
// than bare multiplies, but each step is still affine over Z/2^64 and so
// still inverts cleanly:
//
//	~x + (x<<21)  ==  x * (2^21 - 1) - 1
//	x + (x<<3) + (x<<8)  ==  x * 265
//	x + (x<<2) + (x<<4)  ==  x * 21
//	x + (x<<31)  ==  x * (2^31 + 1)
type Wang struct{}

const (
	wangM1    uint64 = (1 << 21) - 1
	wangM1Inv uint64 = 0x7ffffbffffdfffff
	wangM2    uint64 = 265
	wangM2Inv uint64 = 0xd38ff08b1c03dd39
	wangM3    uint64 = 21
	wangM3Inv uint64 = 0xcf3cf3cf3cf3cf3d
	wangM4    uint64 = (1 << 31) + 1
	wangM4Inv uint64 = 0x3fffffff80000001
)

func (Wang) Hash(key uint64) uint64 {
	key = key*wangM1 - 1
	key ^= key >> 24
	key *= wangM2
	key ^= key >> 14
	key *= wangM3
	key ^= key >> 28
	key *= wangM4
	return key
}

func (Wang) Unhash(key uint64) uint64 {
	key *= wangM4Inv
	key = invXorShift64(key, 28)
	key *= wangM3Inv
	key = invXorShift64(key, 14)
	key *= wangM2Inv
	key = invXorShift64(key, 24)
	key = (key + 1) * wangM1Inv
	return key
}

// Degski is degski/Tommy Ettinger's 64-bit "murmur-lite" mixer: two
// rounds of multiply by a fixed odd constant with a half-width xor-shift
// between and after each.
type Degski struct{}

const (
	degskiMul    uint64 = 0xd6e8feb86659fd93
	degskiMulInv uint64 = 0xcfee444d8b59a89b
)

func (Degski) Hash(x uint64) uint64 {
	x ^= x >> 32
	x *= degskiMul
	x ^= x >> 32
	x *= degskiMul
	x ^= x >> 32
	return x
}

func (Degski) Unhash(x uint64) uint64 {
	x = invXorShift64(x, 32)
	x *= degskiMulInv
	x = invXorShift64(x, 32)
	x *= degskiMulInv
	x = invXorShift64(x, 32)
	return x
}
