package state

import (
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Matcher reports whether a normalised query matches a normalised row key.
type Matcher func(query, target string) bool

// SubstringMatcher matches when target contains query.
func SubstringMatcher(query, target string) bool {
	return strings.Contains(target, query)
}

// FuzzyMatcher matches when the runes of query appear in target in order.
func FuzzyMatcher(query, target string) bool {
	return fuzzy.MatchNormalizedFold(query, target)
}

// Normalize lower-cases text and drops every rune that is not a letter,
// digit, whitespace or one of . , / ' - :
func Normalize(text string) string {
	return strings.Map(func(r rune) rune {
		r = unicode.ToLower(r)
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', unicode.IsSpace(r):
			return r
		case strings.ContainsRune(".,/'-:", r):
			return r
		}
		return -1
	}, text)
}

// ApplySearch moves the cursor to the first row of the active view whose key
// matches the search box and closes the box. It reports whether a row
// matched; on no match the cursor is left alone.
func (c *Collection[T]) ApplySearch(key func(T) string) bool {
	query := ""
	if c.Search != nil {
		query = Normalize(c.Search.Value())
	}
	c.Search = nil
	for i, row := range c.Active() {
		if c.matcher(query, Normalize(key(row))) {
			c.setIndex(i)
			return true
		}
	}
	return false
}

// ResetSearch closes the search box.
func (c *Collection[T]) ResetSearch() {
	c.Search = nil
}

// ApplyFilter narrows the active view to the rows whose key matches the
// filter box and closes the box. When nothing matches, or the box is empty,
// the filter is cleared and false is returned.
func (c *Collection[T]) ApplyFilter(key func(T) string) bool {
	query := ""
	if c.Filter != nil {
		query = Normalize(c.Filter.Value())
	}
	c.Filter = nil
	var matches []T
	if strings.TrimSpace(query) != "" {
		matches = c.match(c.items, query, key)
	}
	if len(matches) == 0 {
		c.clearFilter()
		c.cursor = clamp(c.cursor, len(c.items))
		return false
	}
	c.filtered = matches
	c.filteredCursor = 0
	c.filterKey = key
	c.filterQuery = query
	c.offset = 0
	return true
}

// ResetFilter closes the filter box and drops any filtered view.
func (c *Collection[T]) ResetFilter() {
	c.Filter = nil
	c.clearFilter()
	c.cursor = clamp(c.cursor, len(c.items))
	c.offset = 0
}

func (c *Collection[T]) clearFilter() {
	c.filtered = nil
	c.filteredCursor = 0
	c.filterKey = nil
	c.filterQuery = ""
}

func (c *Collection[T]) match(rows []T, query string, key func(T) string) []T {
	var out []T
	for _, row := range rows {
		if c.matcher(query, Normalize(key(row))) {
			out = append(out, row)
		}
	}
	return out
}
