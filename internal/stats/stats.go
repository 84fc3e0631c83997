// Package stats provides small instrumentation counters used to report
// probe-distance statistics for the open-addressing set variants.
//
// Sets in this module are single-owner and single-threaded, with no
// concurrent access ever expected, so these counters need no atomics.
package stats

// Mean tracks a running average of a probe-distance style statistic.
//
// The zero value is ready to use.
type Mean struct {
	total   float64
	samples float64
}

// Record records a sample.
func (m *Mean) Record(sample float64) {
	m.total += sample
	m.samples++
}

// Get returns the mean value of this statistic, or 0 if no samples were
// recorded.
func (m *Mean) Get() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / m.samples
}

// Reset clears all recorded samples.
func (m *Mean) Reset() {
	m.total, m.samples = 0, 0
}

// Max tracks the largest sample seen so far.
type Max struct {
	value int
	seen  bool
}

// Record records a sample, updating the running maximum if sample is
// larger than any value seen so far.
func (m *Max) Record(sample int) {
	if !m.seen || sample > m.value {
		m.value = sample
		m.seen = true
	}
}

// Get returns the largest sample recorded, or 0 if none were recorded.
func (m *Max) Get() int {
	return m.value
}

// Reset clears the running maximum.
func (m *Max) Reset() {
	m.value, m.seen = 0, false
}
