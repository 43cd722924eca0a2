package app

import (
	"github.com/obadao/gribble/internal/cursor"
	"github.com/obadao/gribble/internal/fsnav"
	"github.com/obadao/gribble/internal/history"
	"github.com/obadao/gribble/internal/model"
)

// CursorView is the render-side projection of a list cursor.
type CursorView struct {
	Selected int
	Offset   int
	Viewport int
}

// ViewModel is everything the renderer needs for one frame. It is built
// fresh per frame; the renderer never touches engine internals.
type ViewModel struct {
	Focus      Panel
	HelpOpen   bool
	Modal      *Modal
	HaveSample bool
	Stale      bool
	PollErr    error

	Sample     model.Sample
	ProcCursor CursorView

	Dir        string
	Entries    []fsnav.Entry
	FileCursor CursorView
	CanGoBack  bool
	NavErr     error

	Interfaces []string
	IfaceIndex int
	RxRate     float64
	TxRate     float64
	RxHistory  []float64
	TxHistory  []float64
}

// View snapshots the current state.
func (s *State) View() ViewModel {
	vm := ViewModel{
		Focus:      s.focus,
		HelpOpen:   s.helpOpen,
		Modal:      s.modal,
		HaveSample: s.haveSample,
		Stale:      s.stale,
		PollErr:    s.pollErr,
		Sample:     s.sample,
		ProcCursor: cursorView(s.procCursor),
		Dir:        s.nav.Path(),
		Entries:    s.nav.Entries(),
		FileCursor: cursorView(s.nav.Cursor()),
		CanGoBack:  s.nav.CanGoBack(),
		NavErr:     s.nav.LastErr(),
		Interfaces: s.ifaces,
		IfaceIndex: s.netIndex,
	}
	if s.netIndex < len(s.ifaces) {
		name := s.ifaces[s.netIndex]
		vm.RxRate, vm.TxRate = s.tracker.LastRates(name)
		vm.RxHistory = s.tracker.Recent(name, history.DirRx, history.DefaultSize)
		vm.TxHistory = s.tracker.Recent(name, history.DirTx, history.DefaultSize)
	}
	return vm
}

func cursorView(c *cursor.Cursor) CursorView {
	return CursorView{Selected: c.Selected(), Offset: c.Offset(), Viewport: c.Viewport()}
}
