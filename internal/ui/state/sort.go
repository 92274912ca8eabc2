package state

import "slices"

// SortOption is a named comparator. A nil Cmp is the "None" option, which
// restores the collection's base order.
type SortOption[T any] struct {
	Name string
	Cmp  func(a, b T) int
}

// NoneOption is the name of the option that removes any sort.
const NoneOption = "None"

// SortList is the scrollable option list of a sort prompt.
type SortList[T any] struct {
	options []SortOption[T]
	cursor  int
}

// Options returns the listed options. The returned slice must not be
// modified.
func (s *SortList[T]) Options() []SortOption[T] {
	return s.options
}

// Index returns the position of the highlighted option.
func (s *SortList[T]) Index() int {
	return s.cursor
}

// Current returns the highlighted option.
func (s *SortList[T]) Current() (SortOption[T], bool) {
	if s.cursor < 0 || s.cursor >= len(s.options) {
		return SortOption[T]{}, false
	}
	return s.options[s.cursor], true
}

// Select highlights the option at idx, clamped.
func (s *SortList[T]) Select(idx int) {
	s.cursor = clamp(idx, len(s.options))
}

// SelectName highlights the option with the given name and reports whether
// it exists.
func (s *SortList[T]) SelectName(name string) bool {
	idx := slices.IndexFunc(s.options, func(o SortOption[T]) bool { return o.Name == name })
	if idx < 0 {
		return false
	}
	s.cursor = idx
	return true
}

func (s *SortList[T]) ScrollUp() {
	if len(s.options) > 0 {
		s.cursor = wrapUp(s.cursor, len(s.options))
	}
}

func (s *SortList[T]) ScrollDown() {
	if len(s.options) > 0 {
		s.cursor = wrapDown(s.cursor, len(s.options))
	}
}

func (s *SortList[T]) ScrollToTop() {
	s.cursor = 0
}

func (s *SortList[T]) ScrollToBottom() {
	s.cursor = clamp(len(s.options)-1, len(s.options))
}

// Sorting opens a sort prompt listing "None" followed by options. The
// confirmed option, if any, is highlighted.
func (c *Collection[T]) Sorting(options []SortOption[T]) {
	list := &SortList[T]{options: make([]SortOption[T], 0, len(options)+1)}
	list.options = append(list.options, SortOption[T]{Name: NoneOption})
	list.options = append(list.options, options...)
	if c.sorted {
		list.SelectName(c.sortOption.Name)
	}
	c.Sort = list
}

// ApplySorting orders the rows by the highlighted option using a stable sort
// on top of the base order and keeps the cursor on the same row when an
// identity is configured.
func (c *Collection[T]) ApplySorting() {
	if c.Sort == nil {
		return
	}
	opt, ok := c.Sort.Current()
	if !ok {
		return
	}
	prev, hadPrev := c.currentItem()
	prevFiltered, hadPrevFiltered := c.currentFiltered()

	c.sorted = opt.Cmp != nil || c.base != nil
	c.sortOption = opt
	c.items = cloneRows(c.original)
	c.sortRows(c.items, opt)
	c.cursor = c.restore(c.items, c.cursor, prev, hadPrev)
	if c.filterKey != nil {
		c.filtered = c.match(c.items, c.filterQuery, c.filterKey)
		c.filteredCursor = c.restore(c.filtered, c.filteredCursor, prevFiltered, hadPrevFiltered)
	}
}

func (c *Collection[T]) sortRows(rows []T, opt SortOption[T]) {
	if c.base != nil {
		slices.SortStableFunc(rows, c.base)
	}
	if opt.Cmp != nil {
		slices.SortStableFunc(rows, opt.Cmp)
	}
}
