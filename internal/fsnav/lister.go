package fsnav

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/obadao/gribble/internal/errors"
)

// MaxEntries caps a single directory listing so a pathological directory
// cannot blow the display or memory budget.
const MaxEntries = 10000

// Entry is one row of a directory listing.
type Entry struct {
	Name    string
	IsDir   bool
	Size    int64
	Mode    fs.FileMode
	ModTime time.Time
}

// Lister supplies directory contents and parent resolution. The navigator
// only ever sees this interface, so tests can script the filesystem.
type Lister interface {
	// List returns the entries of path, directories first, names
	// case-insensitively ordered within each group.
	List(path string) ([]Entry, error)
	// Parent returns the parent of path, or false at the filesystem root.
	Parent(path string) (string, bool)
}

// DirLister reads the local filesystem.
type DirLister struct {
	// Max overrides MaxEntries when positive.
	Max int
}

func (d DirLister) List(path string) ([]Entry, error) {
	dirents, err := os.ReadDir(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFS, "list "+path)
	}

	limit := d.Max
	if limit <= 0 {
		limit = MaxEntries
	}

	entries := make([]Entry, 0, len(dirents))
	for _, de := range dirents {
		if len(entries) >= limit {
			break
		}
		e := Entry{Name: de.Name(), IsDir: de.IsDir()}
		// Metadata is best-effort; a racing unlink only costs size/mtime.
		if info, err := de.Info(); err == nil {
			e.Size = info.Size()
			e.Mode = info.Mode()
			e.ModTime = info.ModTime()
			e.IsDir = info.IsDir()
		}
		entries = append(entries, e)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})
	return entries, nil
}

func (d DirLister) Parent(path string) (string, bool) {
	parent := filepath.Dir(path)
	if parent == path {
		return "", false
	}
	return parent, true
}
