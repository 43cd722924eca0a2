package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obadao/gribble/internal/model"
)

func reading(name string, rx, tx uint64) model.NetInterface {
	return model.NetInterface{Name: name, RxBytes: rx, TxBytes: tx}
}

func TestTrackerLazyCreation(t *testing.T) {
	tr := NewTracker(10)
	assert.Equal(t, 0, tr.Len())

	tr.Observe(time.Unix(0, 0), []model.NetInterface{reading("eth0", 0, 0)})
	assert.True(t, tr.Tracked("eth0"))
	assert.False(t, tr.Tracked("wlan0"))
	assert.Equal(t, 1, tr.Len())
}

func TestTrackerRateHistory(t *testing.T) {
	tr := NewTracker(10)
	t0 := time.Unix(1000, 0)

	// Three polls at 2-second spacing with RX [0, 2000, 1000]: the third
	// reading is a counter reset and must yield a zero rate.
	tr.Observe(t0, []model.NetInterface{reading("eth0", 0, 0)})
	tr.Observe(t0.Add(2*time.Second), []model.NetInterface{reading("eth0", 2000, 400)})
	tr.Observe(t0.Add(4*time.Second), []model.NetInterface{reading("eth0", 1000, 800)})

	rx := tr.Recent("eth0", DirRx, 10)
	require.Len(t, rx, 3)
	assert.Equal(t, []float64{0, 1000, 0}, rx)

	tx := tr.Recent("eth0", DirTx, 10)
	assert.Equal(t, []float64{0, 200, 200}, tx)

	lastRx, lastTx := tr.LastRates("eth0")
	assert.Equal(t, 0.0, lastRx)
	assert.Equal(t, 200.0, lastTx)
}

func TestTrackerDebouncedRetirement(t *testing.T) {
	tr := NewTracker(10)
	t0 := time.Unix(1000, 0)

	tr.Observe(t0, []model.NetInterface{reading("eth0", 100, 100), reading("wlan0", 50, 50)})

	// wlan0 missing once: still tracked (flap tolerance).
	tr.Observe(t0.Add(2*time.Second), []model.NetInterface{reading("eth0", 200, 200)})
	assert.True(t, tr.Tracked("wlan0"))

	// Missing twice in a row: retired.
	tr.Observe(t0.Add(4*time.Second), []model.NetInterface{reading("eth0", 300, 300)})
	assert.False(t, tr.Tracked("wlan0"))
	assert.Equal(t, 1, tr.Len())
}

func TestTrackerFlappingInterfaceKeepsHistory(t *testing.T) {
	tr := NewTracker(10)
	t0 := time.Unix(1000, 0)

	tr.Observe(t0, []model.NetInterface{reading("wlan0", 100, 0)})
	tr.Observe(t0.Add(2*time.Second), []model.NetInterface{reading("wlan0", 300, 0)})
	// One missed poll, then it reappears: history survives.
	tr.Observe(t0.Add(4*time.Second), nil)
	tr.Observe(t0.Add(6*time.Second), []model.NetInterface{reading("wlan0", 700, 0)})

	rx := tr.Recent("wlan0", DirRx, 10)
	require.Len(t, rx, 3)
	assert.Equal(t, 100.0, rx[1])
	// Gap spans 4 seconds: 400 bytes over 4s.
	assert.Equal(t, 100.0, rx[2])
}

func TestTrackerUnknownInterface(t *testing.T) {
	tr := NewTracker(10)
	assert.Nil(t, tr.Recent("nope", DirRx, 5))
	rx, tx := tr.LastRates("nope")
	assert.Equal(t, 0.0, rx)
	assert.Equal(t, 0.0, tx)
}
