// Package history keeps time-bounded metric series: fixed-capacity ring
// buffers, overflow-safe rate derivation from cumulative counters, and a
// per-interface tracker that ties the two together.
package history

// DefaultSize is the number of samples retained per series: two minutes of
// history at the 2-second poll cadence.
const DefaultSize = 60

// Ring is a fixed-capacity circular buffer of float64 samples. Pushing past
// capacity silently evicts the oldest value; that is the documented policy,
// not an error. Indices are never exposed, only "most recent k" slices.
type Ring struct {
	data  []float64
	head  int
	count int
}

// NewRing creates a ring buffer with the given capacity.
func NewRing(size int) *Ring {
	if size <= 0 {
		size = DefaultSize
	}
	return &Ring{data: make([]float64, size)}
}

// Push appends a value, evicting the oldest once full.
func (r *Ring) Push(v float64) {
	r.data[r.head] = v
	r.head = (r.head + 1) % len(r.data)
	if r.count < len(r.data) {
		r.count++
	}
}

// Recent returns the last min(k, Len) values in chronological order,
// oldest first. Fewer than k values means the series is still warming up.
func (r *Ring) Recent(k int) []float64 {
	if k <= 0 || r.count == 0 {
		return nil
	}
	if k > r.count {
		k = r.count
	}
	out := make([]float64, k)
	// head points at the next write slot; the newest value is at head-1.
	start := (r.head - k + len(r.data)) % len(r.data)
	for i := 0; i < k; i++ {
		out[i] = r.data[(start+i)%len(r.data)]
	}
	return out
}

// Last returns the most recent value, if any.
func (r *Ring) Last() (float64, bool) {
	if r.count == 0 {
		return 0, false
	}
	return r.data[(r.head-1+len(r.data))%len(r.data)], true
}

// Len returns the number of stored values.
func (r *Ring) Len() int { return r.count }

// Cap returns the fixed capacity.
func (r *Ring) Cap() int { return len(r.data) }

// Empty reports whether no values have been pushed yet.
func (r *Ring) Empty() bool { return r.count == 0 }
