package intset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openaddr/bijectset/hash"
	"github.com/openaddr/bijectset/intset"
)

func TestRHScenarioBoundedProbeVariance(t *testing.T) {
	t.Parallel()

	s, err := intset.NewRH[hash.Phi32](1000, 0.9)
	require.NoError(t, err)

	for k := uint32(1); k <= 900; k++ {
		added, err := s.Add(k)
		require.NoError(t, err)
		require.True(t, added)
	}
	require.Equal(t, 900, s.Size())

	// Robin Hood bounds probe-distance variance; with load factor 0.9 no
	// single lookup should need anywhere near a full table scan.
	m := s.Capacity()
	for k := uint32(1); k <= 900; k++ {
		require.True(t, s.Contains(k))
	}
	require.Greater(t, m, 50) // sanity: capacity actually reflects alpha=0.9
	_, maxProbe := s.ProbeStats()
	require.Less(t, maxProbe, m/10)
}

func TestRHIdempotentAddRemove(t *testing.T) {
	t.Parallel()

	s, err := intset.NewRH[hash.Phi32](16, 0.5)
	require.NoError(t, err)

	added, err := s.Add(7)
	require.NoError(t, err)
	require.True(t, added)
	added, err = s.Add(7)
	require.NoError(t, err)
	require.False(t, added)

	require.True(t, s.Remove(7))
	require.False(t, s.Remove(7))
	require.Equal(t, 0, s.Size())
}

func TestRHRandomStress(t *testing.T) {
	t.Parallel()

	s, err := intset.NewRH[hash.Murmur3Finalizer32](1000, 0.5)
	require.NoError(t, err)
	stressRandomOps(t, s, 20000, 1000, 3, 4)
}
