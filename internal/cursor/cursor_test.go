package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// checkInvariant asserts the documented cursor invariants.
func checkInvariant(t *testing.T, c *Cursor) {
	t.Helper()
	if c.Count() == 0 {
		assert.Equal(t, 0, c.Selected())
		assert.Equal(t, 0, c.Offset())
		return
	}
	assert.GreaterOrEqual(t, c.Selected(), 0)
	assert.Less(t, c.Selected(), c.Count())
	assert.LessOrEqual(t, c.Offset(), c.Selected())
	assert.LessOrEqual(t, c.Selected(), c.Offset()+c.Viewport()-1)
}

func TestMoveByClamps(t *testing.T) {
	c := New(5)
	c.Resize(10)

	c.MoveBy(-3)
	assert.Equal(t, 0, c.Selected())

	c.MoveBy(100)
	assert.Equal(t, 9, c.Selected())
	checkInvariant(t, c)
}

func TestStartEndAndPaging(t *testing.T) {
	c := New(5)
	c.Resize(37)

	c.MoveToEnd()
	assert.Equal(t, 36, c.Selected())
	checkInvariant(t, c)

	c.MoveToStart()
	assert.Equal(t, 0, c.Selected())
	assert.Equal(t, 0, c.Offset())

	c.PageBy(1, 10)
	assert.Equal(t, 10, c.Selected())
	c.PageBy(1, 0) // zero page size falls back to the default
	assert.Equal(t, 20, c.Selected())
	c.PageBy(-3, 10)
	assert.Equal(t, 0, c.Selected())
	checkInvariant(t, c)
}

func TestScrollFollowsSelectionMinimally(t *testing.T) {
	c := New(5)
	c.Resize(20)

	// Walk down one past the viewport: offset moves by exactly one.
	for i := 0; i < 5; i++ {
		c.MoveBy(1)
	}
	assert.Equal(t, 5, c.Selected())
	assert.Equal(t, 1, c.Offset())

	// Walking back up to the top edge pulls the offset back.
	c.MoveBy(-5)
	assert.Equal(t, 0, c.Selected())
	assert.Equal(t, 0, c.Offset())

	// Jump to the end: selection sits on the last visible row.
	c.MoveToEnd()
	assert.Equal(t, 19, c.Selected())
	assert.Equal(t, 15, c.Offset())
}

func TestResizeShrinkClamps(t *testing.T) {
	c := New(5)
	c.Resize(50)
	c.MoveToEnd()

	c.Resize(10)
	assert.Equal(t, 9, c.Selected())
	checkInvariant(t, c)

	c.Resize(0)
	assert.Equal(t, 0, c.Selected())
	assert.Equal(t, 0, c.Offset())
	checkInvariant(t, c)

	// Growing back leaves the cursor at the top, not somewhere arbitrary.
	c.Resize(10)
	assert.Equal(t, 0, c.Selected())
	checkInvariant(t, c)
}

func TestResizeGrowPreservesPosition(t *testing.T) {
	c := New(5)
	c.Resize(10)
	c.Select(7)

	c.Resize(30)
	assert.Equal(t, 7, c.Selected())
	checkInvariant(t, c)
}

func TestEmptyListOperationsAreNoOps(t *testing.T) {
	c := New(5)

	c.MoveBy(3)
	c.MoveToEnd()
	c.PageBy(2, 10)
	c.Select(4)

	assert.Equal(t, 0, c.Selected())
	assert.Equal(t, 0, c.Offset())
	checkInvariant(t, c)
}

func TestInvariantHoldsUnderArbitrarySequences(t *testing.T) {
	type op struct {
		name string
		fn   func(c *Cursor)
	}
	ops := []op{
		{"down", func(c *Cursor) { c.MoveBy(1) }},
		{"up", func(c *Cursor) { c.MoveBy(-1) }},
		{"pgdn", func(c *Cursor) { c.PageBy(1, 10) }},
		{"pgup", func(c *Cursor) { c.PageBy(-1, 10) }},
		{"end", func(c *Cursor) { c.MoveToEnd() }},
		{"home", func(c *Cursor) { c.MoveToStart() }},
		{"shrink", func(c *Cursor) { c.Resize(c.Count() / 2) }},
		{"grow", func(c *Cursor) { c.Resize(c.Count()*2 + 3) }},
		{"empty", func(c *Cursor) { c.Resize(0) }},
		{"refill", func(c *Cursor) { c.Resize(25) }},
		{"viewport", func(c *Cursor) { c.SetViewport(c.Viewport()%7 + 1) }},
	}

	c := New(5)
	c.Resize(25)
	// A fixed pseudo-random walk over the operation table.
	seed := 2654435761
	for i := 0; i < 500; i++ {
		seed = seed*1103515245 + 12345
		idx := ((seed >> 16) & 0x7fffffff) % len(ops)
		ops[idx].fn(c)
		checkInvariant(t, c)
	}
}

func TestViewportMinimum(t *testing.T) {
	c := New(0)
	assert.Equal(t, 1, c.Viewport())
	c.SetViewport(-3)
	assert.Equal(t, 1, c.Viewport())
}
