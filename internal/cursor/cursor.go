// Package cursor provides the selection/scroll state machine shared by
// every scrollable panel list. The backing list lives elsewhere and can
// grow or shrink between polls; the cursor's job is to stay valid through
// every resize without the panels doing ad hoc bounds checks.
package cursor

// DefaultPageSize matches the page-jump distance of the PgUp/PgDn keys.
const DefaultPageSize = 10

// Cursor tracks the selected index and scroll offset for one list.
// Invariants after every operation: selected < count when count > 0, and
// offset <= selected <= offset+viewport-1. All operations are total; on an
// empty list they are no-ops and Selected reports 0.
type Cursor struct {
	selected int
	offset   int
	count    int
	viewport int
}

// New creates a cursor over an empty list with the given viewport height.
func New(viewport int) *Cursor {
	c := &Cursor{}
	c.SetViewport(viewport)
	return c
}

// Selected returns the selected index (0 on an empty list).
func (c *Cursor) Selected() int { return c.selected }

// Offset returns the scroll offset of the first visible row.
func (c *Cursor) Offset() int { return c.offset }

// Count returns the current item count.
func (c *Cursor) Count() int { return c.count }

// Viewport returns the viewport height in rows.
func (c *Cursor) Viewport() int { return c.viewport }

// MoveBy moves the selection by delta, clamped to [0, count-1].
func (c *Cursor) MoveBy(delta int) {
	c.selected += delta
	c.clamp()
}

// MoveToStart selects the first item.
func (c *Cursor) MoveToStart() {
	c.selected = 0
	c.clamp()
}

// MoveToEnd selects the last item.
func (c *Cursor) MoveToEnd() {
	c.selected = c.count - 1
	c.clamp()
}

// PageBy moves the selection by delta pages of pageSize rows.
// A non-positive pageSize falls back to DefaultPageSize.
func (c *Cursor) PageBy(delta, pageSize int) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	c.MoveBy(delta * pageSize)
}

// Select moves the selection to index i, clamped.
func (c *Cursor) Select(i int) {
	c.selected = i
	c.clamp()
}

// Resize tells the cursor the backing list now has n items. Selection and
// offset are re-clamped; a shrink pulls them back into range, a grow leaves
// them where they are.
func (c *Cursor) Resize(n int) {
	if n < 0 {
		n = 0
	}
	c.count = n
	c.clamp()
}

// SetViewport changes the viewport height (minimum 1 row).
func (c *Cursor) SetViewport(h int) {
	if h < 1 {
		h = 1
	}
	c.viewport = h
	c.clamp()
}

// clamp restores the invariants: selection inside the list, then the
// viewport moved by the smallest amount that makes the selection visible,
// so a poll-driven resize never recenters the view.
func (c *Cursor) clamp() {
	if c.count == 0 {
		c.selected, c.offset = 0, 0
		return
	}
	if c.selected < 0 {
		c.selected = 0
	}
	if c.selected > c.count-1 {
		c.selected = c.count - 1
	}
	c.ensureVisible()
}

func (c *Cursor) ensureVisible() {
	if c.selected < c.offset {
		c.offset = c.selected
	} else if c.selected > c.offset+c.viewport-1 {
		c.offset = c.selected - c.viewport + 1
	}
	// Never leave blank rows below the list when it can fill the viewport.
	if maxOffset := c.count - c.viewport; c.offset > maxOffset {
		c.offset = maxOffset
	}
	if c.offset < 0 {
		c.offset = 0
	}
}
