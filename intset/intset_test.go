package intset_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openaddr/bijectset/hash"
	"github.com/openaddr/bijectset/intset"
)

// setLike is the common surface every variant exposes; the randomized
// stress harness drives any of them through it without caring which
// probe-order policy is underneath.
type setLike interface {
	Contains(uint32) bool
	Add(uint32) (bool, error)
	Remove(uint32) bool
	Size() int
	Capacity() int
	Clear()
}

// stressRandomOps drives s through a random mix of add/remove over a
// bounded key domain, checking after every single operation that s
// agrees with a reference Go set both on membership and on size,
// against any variant.
func stressRandomOps(t *testing.T, s setLike, ops int, domain int, seed1, seed2 uint64) {
	t.Helper()
	rng := rand.New(rand.NewPCG(seed1, seed2))
	ref := make(map[uint32]bool, domain)

	for i := 0; i < ops; i++ {
		k := uint32(rng.IntN(domain)) + 1 // never 0

		if rng.IntN(2) == 0 {
			added, err := s.Add(k)
			require.NoError(t, err)
			require.Equal(t, !ref[k], added)
			ref[k] = true
		} else {
			removed := s.Remove(k)
			require.Equal(t, ref[k], removed)
			ref[k] = false
		}

		for key, present := range ref {
			require.Equal(t, present, s.Contains(key), "key %d", key)
		}

		want := 0
		for _, present := range ref {
			if present {
				want++
			}
		}
		require.Equal(t, want, s.Size())
	}
}

func TestClearIdempotence(t *testing.T) {
	t.Parallel()

	sets := map[string]setLike{}
	lp, err := intset.NewLP[hash.Identity32](8, 0.75)
	require.NoError(t, err)
	sets["LP"] = lp
	rh, err := intset.NewRH[hash.Identity32](8, 0.75)
	require.NoError(t, err)
	sets["RH"] = rh
	lcfs, err := intset.NewLCFS[hash.Identity32](8, 0.75)
	require.NoError(t, err)
	sets["LCFS"] = lcfs
	blp, err := intset.NewBLP[hash.Identity32](8, 0.75)
	require.NoError(t, err)
	sets["BLP"] = blp

	for name, s := range sets {
		t.Run(name, func(t *testing.T) {
			for k := uint32(1); k <= 6; k++ {
				_, err := s.Add(k)
				require.NoError(t, err)
			}
			s.Clear()
			s.Clear()
			require.Equal(t, 0, s.Size())
			for k := uint32(1); k <= 6; k++ {
				require.False(t, s.Contains(k))
			}
		})
	}
}
