package state

import "slices"

// Collection is an ordered, scrollable view over rows of type T with a
// single cursor. When a filter has matched, the filtered subset is the
// active view; otherwise the full item list is.
type Collection[T any] struct {
	items    []T
	original []T
	filtered []T

	cursor         int
	filteredCursor int
	offset         int

	// Search and Filter hold the text boxes while they are open. They are
	// nil otherwise.
	Search *Input
	Filter *Input
	// Sort holds the options of an open sort prompt.
	Sort *SortList[T]

	equal   func(a, b T) bool
	base    func(a, b T) int
	matcher Matcher

	filterKey   func(T) string
	filterQuery string
	sorted      bool
	sortOption  SortOption[T]
}

// NewCollection returns a collection holding a copy of items.
func NewCollection[T any](items []T) *Collection[T] {
	c := &Collection[T]{matcher: SubstringMatcher}
	c.SetItems(items)
	return c
}

// SetEqual sets the identity used to keep the cursor on the same row when
// the rows are reordered or replaced.
func (c *Collection[T]) SetEqual(equal func(a, b T) bool) {
	c.equal = equal
}

// SetBaseOrder sets the canonical order applied before any sort option. The
// "None" option restores this order.
func (c *Collection[T]) SetBaseOrder(cmp func(a, b T) int) {
	c.base = cmp
}

// SetMatcher replaces the matcher used by search and filter.
func (c *Collection[T]) SetMatcher(m Matcher) {
	if m == nil {
		m = SubstringMatcher
	}
	c.matcher = m
}

// SetItems replaces the rows. A confirmed sort and filter are applied again
// and the cursor stays on the same row when possible, otherwise it is
// clamped into range.
func (c *Collection[T]) SetItems(rows []T) {
	prev, hadPrev := c.currentItem()
	prevFiltered, hadPrevFiltered := c.currentFiltered()

	c.original = cloneRows(rows)
	c.items = cloneRows(rows)
	if c.sorted {
		c.sortRows(c.items, c.sortOption)
	}
	c.cursor = c.restore(c.items, c.cursor, prev, hadPrev)

	if c.filterKey != nil {
		matches := c.match(c.items, c.filterQuery, c.filterKey)
		if len(matches) == 0 {
			c.clearFilter()
		} else {
			c.filtered = matches
			c.filteredCursor = c.restore(c.filtered, c.filteredCursor, prevFiltered, hadPrevFiltered)
		}
	}
	if c.Len() == 0 {
		c.offset = 0
	}
}

// Items returns a copy of the full row set.
func (c *Collection[T]) Items() []T {
	return cloneRows(c.items)
}

// Active returns the rows currently being scrolled. The returned slice must
// not be modified.
func (c *Collection[T]) Active() []T {
	if c.filtered != nil {
		return c.filtered
	}
	return c.items
}

// Len returns the size of the active view.
func (c *Collection[T]) Len() int {
	return len(c.Active())
}

// Empty reports whether the active view has no rows.
func (c *Collection[T]) Empty() bool {
	return c.Len() == 0
}

// Filtered reports whether a filter is active.
func (c *Collection[T]) Filtered() bool {
	return c.filtered != nil
}

// FilterQuery returns the text of the active filter.
func (c *Collection[T]) FilterQuery() string {
	if c.filterKey == nil {
		return ""
	}
	return c.filterQuery
}

// SortName returns the name of the confirmed sort option, if any.
func (c *Collection[T]) SortName() string {
	if !c.sorted {
		return ""
	}
	return c.sortOption.Name
}

// Index returns the cursor position within the active view.
func (c *Collection[T]) Index() int {
	if c.filtered != nil {
		return c.filteredCursor
	}
	return c.cursor
}

// Current returns the selected row of the active view. It reports false
// when the view is empty.
func (c *Collection[T]) Current() (T, bool) {
	rows := c.Active()
	idx := c.Index()
	if idx < 0 || idx >= len(rows) {
		var zero T
		return zero, false
	}
	return rows[idx], true
}

// Select moves the cursor to idx, clamped into the active view.
func (c *Collection[T]) Select(idx int) {
	c.setIndex(clamp(idx, c.Len()))
}

func (c *Collection[T]) setIndex(idx int) {
	if c.filtered != nil {
		c.filteredCursor = idx
		return
	}
	c.cursor = idx
}

func (c *Collection[T]) currentItem() (T, bool) {
	if c.cursor < 0 || c.cursor >= len(c.items) {
		var zero T
		return zero, false
	}
	return c.items[c.cursor], true
}

func (c *Collection[T]) currentFiltered() (T, bool) {
	if c.filtered == nil || c.filteredCursor >= len(c.filtered) {
		var zero T
		return zero, false
	}
	return c.filtered[c.filteredCursor], true
}

// restore finds prev in rows when an identity is configured, otherwise it
// clamps the old index.
func (c *Collection[T]) restore(rows []T, old int, prev T, hadPrev bool) int {
	if hadPrev && c.equal != nil {
		if idx := slices.IndexFunc(rows, func(row T) bool { return c.equal(row, prev) }); idx >= 0 {
			return idx
		}
	}
	return clamp(old, len(rows))
}

func clamp(idx, n int) int {
	if n == 0 || idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}
	return idx
}

func cloneRows[T any](rows []T) []T {
	dup := make([]T, len(rows))
	copy(dup, rows)
	return dup
}
