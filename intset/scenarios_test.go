package intset_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/openaddr/bijectset/hash"
	"github.com/openaddr/bijectset/intset"
)

type scenarioOp struct {
	Op   string `yaml:"op"`
	Key  uint32 `yaml:"key"`
	From uint32 `yaml:"from"`
	To   uint32 `yaml:"to"`
}

type scenarioExpect struct {
	Capacity      int      `yaml:"capacity"`
	Size          int      `yaml:"size"`
	ContainsTrue  []uint32 `yaml:"contains_true"`
	ContainsFalse []uint32 `yaml:"contains_false"`
}

type scenario struct {
	Name    string         `yaml:"name"`
	Variant string         `yaml:"variant"`
	Hasher  string         `yaml:"hasher"`
	N       int            `yaml:"n"`
	Alpha   float64        `yaml:"alpha"`
	Ops     []scenarioOp   `yaml:"ops"`
	Expect  scenarioExpect `yaml:"expect"`
}

type scenarioFile struct {
	Scenarios []scenario `yaml:"scenarios"`
}

// newScenarioSet builds the setLike named by (variant, hasher); the
// pairing is closed over what testdata/scenarios.yaml actually uses,
// since a generic type parameter can't be chosen from a runtime string
// any other way.
func newScenarioSet(t *testing.T, variant, hasherName string, n int, alpha float64) setLike {
	t.Helper()

	switch variant + "/" + hasherName {
	case "LP/identity":
		s, err := intset.NewLP[hash.Identity32](n, alpha)
		require.NoError(t, err)
		return s
	case "RH/phi":
		s, err := intset.NewRH[hash.Phi32](n, alpha)
		require.NoError(t, err)
		return s
	case "LCFS/identity":
		s, err := intset.NewLCFS[hash.Identity32](n, alpha)
		require.NoError(t, err)
		return s
	case "BLP/identity":
		s, err := intset.NewBLP[hash.Identity32](n, alpha)
		require.NoError(t, err)
		return s
	default:
		t.Fatalf("no (variant, hasher) wiring for %s/%s", variant, hasherName)
		return nil
	}
}

func TestYAMLScenarios(t *testing.T) {
	t.Parallel()

	data, err := os.ReadFile("testdata/scenarios.yaml")
	require.NoError(t, err)

	var f scenarioFile
	require.NoError(t, yaml.Unmarshal(data, &f))
	require.NotEmpty(t, f.Scenarios)

	for _, sc := range f.Scenarios {
		sc := sc
		t.Run(sc.Name, func(t *testing.T) {
			t.Parallel()

			s := newScenarioSet(t, sc.Variant, sc.Hasher, sc.N, sc.Alpha)
			for _, op := range sc.Ops {
				switch op.Op {
				case "add":
					_, err := s.Add(op.Key)
					require.NoError(t, err)
				case "remove":
					s.Remove(op.Key)
				case "add_range":
					for k := op.From; k <= op.To; k++ {
						_, err := s.Add(k)
						require.NoError(t, err)
					}
				case "remove_evens":
					for k := op.From; k <= op.To; k += 2 {
						s.Remove(k)
					}
				default:
					t.Fatalf("unknown op %q", op.Op)
				}
			}

			if sc.Expect.Capacity != 0 {
				require.Equal(t, sc.Expect.Capacity, s.Capacity())
			}
			require.Equal(t, sc.Expect.Size, s.Size())
			for _, k := range sc.Expect.ContainsTrue {
				require.True(t, s.Contains(k), "expected key %d present", k)
			}
			for _, k := range sc.Expect.ContainsFalse {
				require.False(t, s.Contains(k), "expected key %d absent", k)
			}
		})
	}
}
