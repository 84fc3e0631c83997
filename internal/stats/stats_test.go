package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openaddr/bijectset/internal/stats"
)

func TestMean(t *testing.T) {
	t.Parallel()

	m := new(stats.Mean)
	assert.Equal(t, float64(0), m.Get())

	m.Record(5)
	assert.Equal(t, float64(5), m.Get())

	m.Record(6)
	assert.Equal(t, float64(5.5), m.Get())

	m.Record(-10)
	assert.InDelta(t, float64(1)/3, m.Get(), 1e-9)

	m.Reset()
	assert.Equal(t, float64(0), m.Get())
}

func TestMax(t *testing.T) {
	t.Parallel()

	m := new(stats.Max)
	assert.Equal(t, 0, m.Get())

	m.Record(3)
	m.Record(1)
	m.Record(7)
	m.Record(2)
	assert.Equal(t, 7, m.Get())

	m.Reset()
	assert.Equal(t, 0, m.Get())
}
