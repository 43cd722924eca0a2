package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRing(t *testing.T) {
	tests := []struct {
		name     string
		size     int
		expected int
	}{
		{"default size", 0, DefaultSize},
		{"negative size", -1, DefaultSize},
		{"custom size", 100, 100},
		{"small size", 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRing(tt.size)
			assert.Equal(t, tt.expected, r.Cap())
			assert.True(t, r.Empty())
		})
	}
}

func TestRingPushAndRecent(t *testing.T) {
	r := NewRing(5)

	r.Push(1)
	r.Push(2)
	r.Push(3)

	assert.Equal(t, 3, r.Len())
	assert.Equal(t, []float64{1, 2, 3}, r.Recent(5))
	assert.Equal(t, []float64{2, 3}, r.Recent(2))

	last, ok := r.Last()
	require.True(t, ok)
	assert.Equal(t, 3.0, last)
}

func TestRingOverflowKeepsLastN(t *testing.T) {
	// After N+k pushes into a capacity-N buffer, Recent(N) is exactly the
	// last N pushed values in order.
	const n = 5
	r := NewRing(n)
	for i := 1; i <= n+3; i++ {
		r.Push(float64(i))
	}

	assert.Equal(t, n, r.Len())
	assert.Equal(t, []float64{4, 5, 6, 7, 8}, r.Recent(n))
	// Requesting more than capacity still yields only what is stored.
	assert.Equal(t, []float64{4, 5, 6, 7, 8}, r.Recent(n+10))
}

func TestRingRecentEdgeCases(t *testing.T) {
	r := NewRing(5)

	assert.Nil(t, r.Recent(3), "empty ring")

	r.Push(1)
	assert.Nil(t, r.Recent(0))
	assert.Nil(t, r.Recent(-1))

	_, ok := NewRing(5).Last()
	assert.False(t, ok)
}
