package history

import (
	"time"

	"github.com/obadao/gribble/internal/model"
)

// Direction selects one side of an interface's traffic.
type Direction int

const (
	DirRx Direction = iota
	DirTx
)

// retireAfterMisses is how many consecutive polls an interface may be
// absent before its series are freed. One miss is tolerated so a flapping
// interface does not lose its history.
const retireAfterMisses = 2

// Tracker maintains rate history for every interface observed in poll
// samples. Series are created lazily on first observation and retired once
// an interface has been absent from two consecutive samples, keeping memory
// bounded no matter how interfaces come and go.
type Tracker struct {
	size   int
	ifaces map[string]*ifaceSeries
}

type ifaceSeries struct {
	rx, tx         *Ring
	rxRate, txRate RateCounter
	missed         int
}

// NewTracker creates a tracker whose rings hold size samples each.
func NewTracker(size int) *Tracker {
	if size <= 0 {
		size = DefaultSize
	}
	return &Tracker{size: size, ifaces: make(map[string]*ifaceSeries)}
}

// Observe folds one poll's interface readings into the tracker: cumulative
// counters go through each interface's rate counters and the resulting
// rates are pushed into its rings.
func (t *Tracker) Observe(now time.Time, readings []model.NetInterface) {
	seen := make(map[string]bool, len(readings))
	for _, r := range readings {
		seen[r.Name] = true
		s, ok := t.ifaces[r.Name]
		if !ok {
			s = &ifaceSeries{rx: NewRing(t.size), tx: NewRing(t.size)}
			t.ifaces[r.Name] = s
		}
		s.missed = 0
		s.rx.Push(s.rxRate.Observe(r.RxBytes, now))
		s.tx.Push(s.txRate.Observe(r.TxBytes, now))
	}
	for name, s := range t.ifaces {
		if seen[name] {
			continue
		}
		s.missed++
		if s.missed >= retireAfterMisses {
			delete(t.ifaces, name)
		}
	}
}

// Recent returns the last k rate samples for one interface and direction,
// oldest first. Unknown interfaces yield nil.
func (t *Tracker) Recent(name string, d Direction, k int) []float64 {
	s, ok := t.ifaces[name]
	if !ok {
		return nil
	}
	if d == DirTx {
		return s.tx.Recent(k)
	}
	return s.rx.Recent(k)
}

// LastRates returns the most recent RX and TX rates for an interface,
// or zeros if it has no history yet.
func (t *Tracker) LastRates(name string) (rx, tx float64) {
	s, ok := t.ifaces[name]
	if !ok {
		return 0, 0
	}
	rx, _ = s.rx.Last()
	tx, _ = s.tx.Last()
	return rx, tx
}

// Tracked reports whether the interface currently has live series.
func (t *Tracker) Tracked(name string) bool {
	_, ok := t.ifaces[name]
	return ok
}

// Len returns the number of interfaces with live series.
func (t *Tracker) Len() int { return len(t.ifaces) }
