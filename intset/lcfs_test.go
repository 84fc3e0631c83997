package intset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openaddr/bijectset/hash"
	"github.com/openaddr/bijectset/intset"
)

func TestLCFSScenarioRemoveEvens(t *testing.T) {
	t.Parallel()

	s, err := intset.NewLCFS[hash.Identity32](100, 0.5)
	require.NoError(t, err)

	for k := uint32(1); k <= 100; k++ {
		_, err := s.Add(k)
		require.NoError(t, err)
	}
	for k := uint32(2); k <= 100; k += 2 {
		require.True(t, s.Remove(k))
	}

	for k := uint32(1); k <= 99; k += 2 {
		require.True(t, s.Contains(k), "odd key %d should remain", k)
	}
	for k := uint32(2); k <= 100; k += 2 {
		require.False(t, s.Contains(k), "even key %d should be gone", k)
	}
	require.Equal(t, 50, s.Size())
}

func TestLCFSIdempotentAddRemove(t *testing.T) {
	t.Parallel()

	s, err := intset.NewLCFS[hash.Phi32](16, 0.5)
	require.NoError(t, err)

	added, err := s.Add(13)
	require.NoError(t, err)
	require.True(t, added)
	added, err = s.Add(13)
	require.NoError(t, err)
	require.False(t, added)

	require.True(t, s.Remove(13))
	require.False(t, s.Remove(13))
}

func TestLCFSRandomStress(t *testing.T) {
	t.Parallel()

	s, err := intset.NewLCFS[hash.Prospector2](1000, 0.5)
	require.NoError(t, err)
	stressRandomOps(t, s, 20000, 1000, 5, 6)
}
