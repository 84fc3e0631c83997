package hash

import "math/bits"

// speckKey is the fixed 64-bit key for the Speck32/64 hasher. Its value
// is part of this package's external contract: changing it would change
// every hash this package has ever produced.
const speckKey uint64 = 0x0123456789abcdef

// speckRounds is the number of Speck32/64 round-function applications.
// The original NSA Speck32/64 cipher specifies 22 rounds; this catalog
// entry deliberately uses 20, trading a small amount of diffusion margin
// (this is a hash mixer, not a cipher deployed for confidentiality) for
// two fewer rounds per hash/unhash call.
const speckRounds = 20

const (
	speckAlpha = 7 // right-rotate amount in the round function
	speckBeta  = 2 // left-rotate amount in the round function
)

// speckZeroImage is Hash(0) under the raw (uncorrected) Speck32/64
// permutation for speckKey, i.e. speckEncryptBlock(0). Speck32/64 is a block
// cipher: keyed with an arbitrary key it has no reason to fix 0, so
// Speck3264 XORs every hash/unhash with this constant to force 0 to be a
// fixed point, matching every other hasher in this package (see
// Speck3264's doc comment).
const speckZeroImage uint32 = 0xb4795c1c

// Speck3264 is a hasher built from the Speck32/64 lightweight block
// cipher: block size 32 bits (two 16-bit words), key size 64 bits,
// keyed with the fixed speckKey constant and run for speckRounds
// rounds. Because a block cipher's round function is a bijection on its
// block for any fixed key, Speck32/64 with a constant key is itself a
// bijection on uint32 - exactly the property this catalog needs, just
// built from cryptographic primitives instead of an integer mixer.
//
// A keyed block cipher has no particular reason to map the all-zero
// block to itself, so the raw cipher is corrected by XORing its output
// (and its input, on the way back) with the cipher's own image of 0;
// this is still a bijection (XOR by a constant is one), and now fixes 0
// as required.
type Speck3264 struct{}

func (Speck3264) Hash(x uint32) uint32 {
	return speckEncryptBlock(x) ^ speckZeroImage
}

func (Speck3264) Unhash(x uint32) uint32 {
	return speckDecryptBlock(x ^ speckZeroImage)
}

// speckRoundKeys expands speckKey into speckRounds round keys using the
// standard Speck key schedule: the key schedule is itself one "lane" of
// the same round function, run over the key words with the round
// counter standing in for the round key.
func speckRoundKeys() [speckRounds]uint16 {
	var k [4]uint16
	for i := range k {
		k[i] = uint16(speckKey >> (16 * i))
	}

	var l [speckRounds + 2]uint16
	l[0], l[1], l[2] = k[1], k[2], k[3]

	var rk [speckRounds]uint16
	rk[0] = k[0]
	for i := 0; i < speckRounds-1; i++ {
		l[i+3] = (bits.RotateLeft16(l[i], -speckAlpha) + rk[i]) ^ uint16(i)
		rk[i+1] = bits.RotateLeft16(rk[i], speckBeta) ^ l[i+3]
	}
	return rk
}

var speckRK = speckRoundKeys()

func speckEncryptBlock(pt uint32) uint32 {
	x := uint16(pt >> 16)
	y := uint16(pt)
	for _, k := range speckRK {
		x = bits.RotateLeft16(x, -speckAlpha) + y
		x ^= k
		y = bits.RotateLeft16(y, speckBeta)
		y ^= x
	}
	return uint32(x)<<16 | uint32(y)
}

func speckDecryptBlock(ct uint32) uint32 {
	x := uint16(ct >> 16)
	y := uint16(ct)
	for i := speckRounds - 1; i >= 0; i-- {
		y ^= x
		y = bits.RotateLeft16(y, -speckBeta)
		x ^= speckRK[i]
		x -= y
		x = bits.RotateLeft16(x, speckAlpha)
	}
	return uint32(x)<<16 | uint32(y)
}
