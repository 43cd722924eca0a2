// Package app holds the dashboard's application state: which panel has
// focus, what each list has selected, the modal and help overlays, and the
// reconciliation of freshly polled samples into that state. The engine is
// single-writer: all mutation goes through HandleKey and HandleTick, both
// called from the UI's update loop, and rendering reads an immutable
// ViewModel snapshot.
package app

import (
	"path/filepath"
	"sort"
	"time"

	"github.com/obadao/gribble/internal/cursor"
	"github.com/obadao/gribble/internal/fsnav"
	"github.com/obadao/gribble/internal/history"
	"github.com/obadao/gribble/internal/logger"
	"github.com/obadao/gribble/internal/model"
	"github.com/obadao/gribble/internal/sampler"
)

// manualRefreshCooldown throttles the r key so holding it down cannot
// hammer the collectors.
const manualRefreshCooldown = 500 * time.Millisecond

// State is the dashboard engine.
type State struct {
	log logger.Logger
	nav *fsnav.Navigator

	focus    Panel
	modal    *Modal
	helpOpen bool

	sample     model.Sample
	haveSample bool
	stale      bool
	pollErr    error

	procCursor  *cursor.Cursor
	selectedPID int32
	havePID     bool

	tracker  *history.Tracker
	ifaces   []string
	netIndex int

	lastManual time.Time
	now        func() time.Time
}

// NewState builds an engine around an already-initialized navigator.
func NewState(nav *fsnav.Navigator, log logger.Logger) *State {
	if log == nil {
		log = logger.Noop()
	}
	return &State{
		log:        log,
		nav:        nav,
		focus:      PanelSystemMonitor,
		procCursor: cursor.New(cursor.DefaultPageSize),
		tracker:    history.NewTracker(history.DefaultSize),
		now:        time.Now,
	}
}

// SetViewports propagates terminal geometry to the list cursors.
func (s *State) SetViewports(procRows, fileRows int) {
	s.procCursor.SetViewport(procRows)
	s.nav.Cursor().SetViewport(fileRows)
}

// HandleTick reconciles a poll result. A failed poll keeps the last good
// sample on screen and marks it stale until the next success.
func (s *State) HandleTick(res sampler.Result) {
	if res.Err != nil {
		s.stale = true
		s.pollErr = res.Err
		s.log.Warn("poll failed: %v", res.Err)
		return
	}
	s.ApplySample(res.Sample)
}

// ApplySample folds a fresh snapshot into the engine without disturbing
// navigation context: the process selection follows its PID across
// reorderings, and the network selection follows its interface name.
func (s *State) ApplySample(sample model.Sample) {
	// The engine owns the sample from here, so sorting in place is fine.
	sort.SliceStable(sample.Processes, func(i, j int) bool {
		a, b := sample.Processes[i], sample.Processes[j]
		if a.CPU != b.CPU {
			return a.CPU > b.CPU
		}
		return a.PID < b.PID
	})

	s.sample = sample
	s.haveSample = true
	s.stale = false
	s.pollErr = nil

	s.reconcileProcesses(sample.Processes)

	s.tracker.Observe(sample.Timestamp, sample.Interfaces)
	s.reconcileInterfaces(sample.Interfaces)
}

func (s *State) reconcileProcesses(procs []model.Process) {
	s.procCursor.Resize(len(procs))
	if len(procs) == 0 {
		s.havePID = false
		return
	}
	if s.havePID {
		for i, p := range procs {
			if p.PID == s.selectedPID {
				s.procCursor.Select(i)
				return
			}
		}
	}
	// Tracked process exited (or nothing tracked yet): adopt whatever the
	// clamped cursor now points at.
	s.selectedPID = procs[s.procCursor.Selected()].PID
	s.havePID = true
}

func (s *State) reconcileInterfaces(ifaces []model.NetInterface) {
	var selected string
	if s.netIndex < len(s.ifaces) {
		selected = s.ifaces[s.netIndex]
	}

	names := make([]string, 0, len(ifaces))
	for _, it := range ifaces {
		names = append(names, it.Name)
	}
	sort.Strings(names)
	s.ifaces = names

	if len(names) == 0 {
		s.netIndex = 0
		return
	}
	for i, n := range names {
		if n == selected {
			s.netIndex = i
			return
		}
	}
	if s.netIndex >= len(names) {
		s.netIndex = len(names) - 1
	}
}

// HandleKey dispatches one key press and reports the effect the shell
// should carry out. Overlays capture input: while a modal or the help
// screen is open only their close keys (and ctrl+c) do anything.
func (s *State) HandleKey(key string) Effect {
	if key == KeyCtrlC {
		return EffectQuit
	}

	if s.modal != nil {
		switch key {
		case KeyQuit, KeyEsc, KeyDetail:
			s.modal = nil
		}
		return EffectNone
	}
	if s.helpOpen {
		switch key {
		case KeyQuit, KeyEsc, KeyHelp:
			s.helpOpen = false
		}
		return EffectNone
	}

	switch key {
	case KeyQuit, KeyEsc:
		return EffectQuit
	case KeyHelp:
		s.helpOpen = true
	case KeyDetail:
		s.openModal()
	case KeyLeft, KeyVimLeft:
		s.focus = s.focus.Prev()
	case KeyRight, KeyVimRight:
		s.focus = s.focus.Next()
	case KeyUp, KeyVimUp:
		s.moveSelection(-1)
	case KeyDown, KeyVimDown:
		s.moveSelection(1)
	case KeyPageUp:
		s.pageSelection(-1)
	case KeyPageDown:
		s.pageSelection(1)
	case KeyHome:
		s.jumpSelection(false)
	case KeyEnd:
		s.jumpSelection(true)
	case KeyEnter:
		if s.focus == PanelFileExplorer {
			if err := s.nav.Enter(s.nav.Cursor().Selected()); err != nil {
				s.log.Debug("enter refused: %v", err)
			}
		}
	case KeyBackspace:
		if s.focus == PanelFileExplorer {
			if err := s.nav.GoUp(); err != nil {
				s.log.Debug("go up refused: %v", err)
			}
		}
	case KeyBack:
		if s.focus == PanelFileExplorer {
			if err := s.nav.GoBack(); err != nil {
				s.log.Debug("go back refused: %v", err)
			}
		}
	case KeyRefresh:
		return s.manualRefresh()
	}
	return EffectNone
}

func (s *State) moveSelection(delta int) {
	switch s.focus {
	case PanelProcessManager:
		s.procCursor.MoveBy(delta)
		s.adoptSelectedPID()
	case PanelFileExplorer:
		s.nav.Cursor().MoveBy(delta)
	case PanelNetworkGraph:
		if n := len(s.ifaces); n > 0 {
			s.netIndex = (s.netIndex + delta + n) % n
		}
	}
}

func (s *State) pageSelection(delta int) {
	switch s.focus {
	case PanelProcessManager:
		s.procCursor.PageBy(delta, cursor.DefaultPageSize)
		s.adoptSelectedPID()
	case PanelFileExplorer:
		s.nav.Cursor().PageBy(delta, cursor.DefaultPageSize)
	}
}

func (s *State) jumpSelection(end bool) {
	var c *cursor.Cursor
	switch s.focus {
	case PanelProcessManager:
		c = s.procCursor
	case PanelFileExplorer:
		c = s.nav.Cursor()
	default:
		return
	}
	if end {
		c.MoveToEnd()
	} else {
		c.MoveToStart()
	}
	if s.focus == PanelProcessManager {
		s.adoptSelectedPID()
	}
}

func (s *State) adoptSelectedPID() {
	procs := s.sample.Processes
	if i := s.procCursor.Selected(); i < len(procs) {
		s.selectedPID = procs[i].PID
		s.havePID = true
	}
}

func (s *State) manualRefresh() Effect {
	now := s.now()
	if now.Sub(s.lastManual) < manualRefreshCooldown {
		return EffectNone
	}
	s.lastManual = now
	if s.focus == PanelFileExplorer {
		if err := s.nav.Refresh(); err != nil {
			s.log.Warn("manual re-list failed: %v", err)
		}
	}
	return EffectRefresh
}

func (s *State) openModal() {
	switch s.focus {
	case PanelProcessManager:
		procs := s.sample.Processes
		if i := s.procCursor.Selected(); i < len(procs) {
			s.modal = processModal(procs[i])
		}
	case PanelNetworkGraph:
		if s.netIndex >= len(s.ifaces) {
			return
		}
		name := s.ifaces[s.netIndex]
		for _, it := range s.sample.Interfaces {
			if it.Name == name {
				rx, tx := s.tracker.LastRates(name)
				s.modal = networkModal(name, it, rx, tx)
				return
			}
		}
	case PanelSystemMonitor, PanelSystemStatus:
		if s.haveSample {
			s.modal = systemModal(s.sample)
		}
	case PanelFileExplorer:
		e, ok := s.nav.Selected()
		if !ok {
			return
		}
		if e.IsDir {
			if d, ok := s.mountFor(e); ok {
				s.modal = diskModal(d)
				return
			}
		}
		s.modal = fileModal(s.nav.Path(), e)
	}
}

// mountFor reports whether the directory entry is itself a mount point.
func (s *State) mountFor(e fsnav.Entry) (model.Disk, bool) {
	full := filepath.Join(s.nav.Path(), e.Name)
	for _, d := range s.sample.Disks {
		if d.Mount == full {
			return d, true
		}
	}
	return model.Disk{}, false
}
