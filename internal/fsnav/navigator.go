// Package fsnav implements the file-explorer state: the current directory,
// a stack of paths to return to, and a cached listing with its cursor.
// Every failure leaves the previous state intact so the user can always
// navigate away from a broken directory.
package fsnav

import (
	"path/filepath"

	"github.com/obadao/gribble/internal/cursor"
	"github.com/obadao/gribble/internal/errors"
	"github.com/obadao/gribble/internal/logger"
)

// maxHistory bounds the back-stack; the oldest entry is dropped beyond it.
const maxHistory = 20

// Navigator owns the explorer's position. The entries slice is a cache of
// the current directory: re-fetched on navigation or refresh, replaced
// wholesale, never mutated in place.
type Navigator struct {
	lister  Lister
	log     logger.Logger
	path    string
	history []string
	entries []Entry
	cur     *cursor.Cursor
	lastErr error
}

// New creates a navigator rooted at start and performs the initial listing.
// A failed initial listing is not fatal: the navigator starts with an empty
// cache and the error surfaced through LastErr.
func New(lister Lister, start string, viewport int, log logger.Logger) *Navigator {
	if log == nil {
		log = logger.Noop()
	}
	n := &Navigator{
		lister: lister,
		log:    log,
		path:   filepath.Clean(start),
		cur:    cursor.New(viewport),
	}
	if err := n.Refresh(); err != nil {
		log.Warn("initial listing of %s failed: %v", n.path, err)
	}
	return n
}

// Path returns the current directory.
func (n *Navigator) Path() string { return n.path }

// Entries returns the cached listing of the current directory.
func (n *Navigator) Entries() []Entry { return n.entries }

// Cursor returns the selection state over Entries.
func (n *Navigator) Cursor() *cursor.Cursor { return n.cur }

// CanGoBack reports whether the history stack is non-empty.
func (n *Navigator) CanGoBack() bool { return len(n.history) > 0 }

// LastErr returns the most recent listing failure, or nil. It is cleared
// by the next successful listing.
func (n *Navigator) LastErr() error { return n.lastErr }

// Selected returns the entry under the cursor, if any.
func (n *Navigator) Selected() (Entry, bool) {
	i := n.cur.Selected()
	if i >= len(n.entries) {
		return Entry{}, false
	}
	return n.entries[i], true
}

// Enter descends into the directory entry at index i. Entering a file or an
// out-of-range index is refused with a NAV error; a failed listing of the
// child leaves the navigator exactly where it was.
func (n *Navigator) Enter(i int) error {
	if i < 0 || i >= len(n.entries) {
		return errors.Newf(errors.ErrNav, "entry %d out of range", i)
	}
	e := n.entries[i]
	if !e.IsDir {
		return errors.New(errors.ErrNav, e.Name+" is not a directory")
	}
	child := filepath.Join(n.path, e.Name)
	ents, err := n.lister.List(child)
	if err != nil {
		n.lastErr = err
		n.log.Warn("enter %s failed: %v", child, err)
		return err
	}
	n.pushHistory(n.path)
	n.path = child
	n.replaceEntries(ents, true)
	return nil
}

// GoUp moves to the parent directory. It never consults the history stack;
// the abandoned directory is pushed so GoBack can return to it.
func (n *Navigator) GoUp() error {
	parent, ok := n.lister.Parent(n.path)
	if !ok {
		return errors.New(errors.ErrNav, "already at filesystem root")
	}
	ents, err := n.lister.List(parent)
	if err != nil {
		n.lastErr = err
		n.log.Warn("go up to %s failed: %v", parent, err)
		return err
	}
	n.pushHistory(n.path)
	n.path = parent
	n.replaceEntries(ents, true)
	return nil
}

// GoBack pops the most recent history entry and returns to it. The pop only
// happens once the listing succeeds, so a failure changes nothing.
func (n *Navigator) GoBack() error {
	if len(n.history) == 0 {
		return errors.New(errors.ErrNav, "no history to go back to")
	}
	prev := n.history[len(n.history)-1]
	ents, err := n.lister.List(prev)
	if err != nil {
		n.lastErr = err
		n.log.Warn("go back to %s failed: %v", prev, err)
		return err
	}
	n.history = n.history[:len(n.history)-1]
	n.path = prev
	n.replaceEntries(ents, true)
	return nil
}

// Refresh re-lists the current directory without touching history. On
// failure the cached entries and cursor are kept as-is; on success the
// cursor keeps its (clamped) position instead of jumping to the top.
func (n *Navigator) Refresh() error {
	ents, err := n.lister.List(n.path)
	if err != nil {
		n.lastErr = err
		return err
	}
	n.replaceEntries(ents, false)
	return nil
}

func (n *Navigator) replaceEntries(ents []Entry, resetCursor bool) {
	n.entries = ents
	n.cur.Resize(len(ents))
	if resetCursor {
		n.cur.MoveToStart()
	}
	n.lastErr = nil
}

func (n *Navigator) pushHistory(path string) {
	n.history = append(n.history, path)
	if len(n.history) > maxHistory {
		n.history = n.history[1:]
	}
}
