package state

// ScrollUp moves the cursor up one row, wrapping from the first row to the
// last.
func (c *Collection[T]) ScrollUp() bool {
	n := c.Len()
	if n == 0 {
		return false
	}
	old := c.Index()
	c.setIndex(wrapUp(old, n))
	return old != c.Index()
}

// ScrollDown moves the cursor down one row, wrapping from the last row to
// the first.
func (c *Collection[T]) ScrollDown() bool {
	n := c.Len()
	if n == 0 {
		return false
	}
	old := c.Index()
	c.setIndex(wrapDown(old, n))
	return old != c.Index()
}

// ScrollToTop moves the cursor to the first row.
func (c *Collection[T]) ScrollToTop() bool {
	if c.Len() == 0 {
		c.setIndex(0)
		return false
	}
	old := c.Index()
	c.setIndex(0)
	return old != 0
}

// ScrollToBottom moves the cursor to the last row.
func (c *Collection[T]) ScrollToBottom() bool {
	n := c.Len()
	if n == 0 {
		c.setIndex(0)
		return false
	}
	old := c.Index()
	c.setIndex(n - 1)
	return old != n-1
}

// PageUp moves the cursor up by the given page size without wrapping.
func (c *Collection[T]) PageUp(page int) bool {
	return c.moveBy(-c.pageSize(page))
}

// PageDown moves the cursor down by the given page size without wrapping.
func (c *Collection[T]) PageDown(page int) bool {
	return c.moveBy(c.pageSize(page))
}

func (c *Collection[T]) moveBy(delta int) bool {
	n := c.Len()
	if n == 0 {
		c.setIndex(0)
		return false
	}
	old := c.Index()
	c.setIndex(clamp(old+delta, n))
	return c.Index() != old
}

func (c *Collection[T]) pageSize(page int) int {
	total := c.Len()
	if total == 0 {
		return 0
	}
	size := page
	if size <= 0 || size > total {
		size = total
	}
	return size
}

// Offset returns the index of the first visible row.
func (c *Collection[T]) Offset() int {
	return c.offset
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays visible.
func (c *Collection[T]) EnsureCursorVisible(maxVisible int) {
	n := c.Len()
	if n == 0 {
		c.offset = 0
		return
	}
	if maxVisible <= 0 {
		c.offset = 0
		return
	}
	cursor := c.Index()
	maxOffset := n - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if c.offset > maxOffset {
		c.offset = maxOffset
	}
	if c.offset < 0 {
		c.offset = 0
	}
	if cursor < c.offset {
		c.offset = cursor
	}
	if upper := c.offset + maxVisible - 1; cursor > upper {
		c.offset = cursor - maxVisible + 1
		if c.offset > maxOffset {
			c.offset = maxOffset
		}
	}
}

func wrapUp(idx, n int) int {
	if idx <= 0 {
		return n - 1
	}
	return idx - 1
}

func wrapDown(idx, n int) int {
	if idx >= n-1 {
		return 0
	}
	return idx + 1
}
