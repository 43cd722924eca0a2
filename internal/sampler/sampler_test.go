package sampler

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obadao/gribble/internal/logger"
)

func TestSampleShape(t *testing.T) {
	s := New(logger.Noop())
	sample, err := s.Sample(time.Now())
	require.NoError(t, err)

	assert.False(t, sample.Timestamp.IsZero())
	assert.Greater(t, sample.Memory.TotalBytes, uint64(0))
	assert.LessOrEqual(t, len(sample.Processes), MaxProcesses)
	assert.LessOrEqual(t, len(sample.Interfaces), MaxInterfaces)

	// Heaviest-first ordering with pid as tiebreaker.
	sorted := sort.SliceIsSorted(sample.Processes, func(i, j int) bool {
		a, b := sample.Processes[i], sample.Processes[j]
		if a.CPU != b.CPU {
			return a.CPU > b.CPU
		}
		return a.PID < b.PID
	})
	assert.True(t, sorted)
}

func TestFirstPollReportsZeroCPU(t *testing.T) {
	s := New(logger.Noop())
	sample, err := s.Sample(time.Now())
	require.NoError(t, err)
	assert.Equal(t, 0.0, sample.CPU.Total)
}

func TestStreamDeliversAndStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := New(logger.Noop())
	ch := s.Stream(ctx, 10*time.Millisecond)

	select {
	case res := <-ch:
		require.NoError(t, res.Err)
		assert.Greater(t, res.Sample.Memory.TotalBytes, uint64(0))
	case <-time.After(5 * time.Second):
		t.Fatal("no sample delivered")
	}

	cancel()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("stream did not close after cancel")
		}
	}
}

func TestRefreshCoalesces(t *testing.T) {
	s := New(logger.Noop())
	// Both requests land before the loop drains; neither call blocks.
	s.Refresh()
	s.Refresh()
	assert.Len(t, s.refresh, 1)
}
