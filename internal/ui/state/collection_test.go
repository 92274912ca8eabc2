package state

import (
	"cmp"
	"math/rand"
	"reflect"
	"strings"
	"testing"
	"testing/quick"
	"time"
)

type row struct {
	ID        int64
	Title     string
	Added     time.Time
	Status    string
	Monitored bool
}

func rowTitle(r row) string { return r.Title }

func newTestCollection(titles ...string) *Collection[row] {
	rows := make([]row, len(titles))
	for i, title := range titles {
		rows[i] = row{ID: int64(i + 1), Title: title}
	}
	c := NewCollection(rows)
	c.SetEqual(func(a, b row) bool { return a.ID == b.ID })
	return c
}

func titles(rows []row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Title
	}
	return out
}

func TestScrollWrapsAround(t *testing.T) {
	c := newTestCollection("a", "b", "c")
	if !c.ScrollUp() {
		t.Fatalf("expected scroll up from first row to move")
	}
	if c.Index() != 2 {
		t.Fatalf("expected wrap to last row, got %d", c.Index())
	}
	c.ScrollDown()
	if c.Index() != 0 {
		t.Fatalf("expected wrap to first row, got %d", c.Index())
	}
}

func TestScrollOnEmptyCollection(t *testing.T) {
	c := newTestCollection()
	if c.ScrollUp() || c.ScrollDown() || c.ScrollToTop() || c.ScrollToBottom() {
		t.Fatalf("expected no movement on empty collection")
	}
	if _, ok := c.Current(); ok {
		t.Fatalf("expected no current row on empty collection")
	}
}

func wrapProperty[T any](t *testing.T, name string, gen func(rng *rand.Rand) T) {
	t.Helper()
	prop := func(seed int64, size uint8, start uint8) bool {
		rng := rand.New(rand.NewSource(seed))
		n := int(size%40) + 1
		rows := make([]T, n)
		for i := range rows {
			rows[i] = gen(rng)
		}
		c := NewCollection(rows)
		c.Select(int(start) % n)
		begin := c.Index()
		for i := 0; i < n; i++ {
			c.ScrollDown()
		}
		if c.Index() != begin {
			return false
		}
		for i := 0; i < n; i++ {
			c.ScrollUp()
		}
		return c.Index() == begin
	}
	if err := quick.Check(prop, nil); err != nil {
		t.Fatalf("%s: wraparound violated: %v", name, err)
	}
}

func TestWraparoundProperty(t *testing.T) {
	wrapProperty(t, "ints", func(rng *rand.Rand) int { return rng.Int() })
	wrapProperty(t, "strings", func(rng *rand.Rand) string { return strings.Repeat("x", rng.Intn(5)) })
	wrapProperty(t, "rows", func(rng *rand.Rand) row { return row{ID: rng.Int63(), Title: "t"} })
}

func TestHomeEnd(t *testing.T) {
	prop := func(size uint8, start uint8) bool {
		n := int(size%30) + 1
		c := NewCollection(make([]int, n))
		c.Select(int(start))
		c.ScrollToTop()
		if c.Index() != 0 {
			return false
		}
		c.ScrollToBottom()
		return c.Index() == n-1
	}
	if err := quick.Check(prop, nil); err != nil {
		t.Fatalf("home/end violated: %v", err)
	}
}

func TestPaging(t *testing.T) {
	c := newTestCollection("a", "b", "c", "d", "e")
	if !c.PageDown(2) || c.Index() != 2 {
		t.Fatalf("expected cursor 2 after page down, got %d", c.Index())
	}
	c.PageDown(2)
	if c.PageDown(2) {
		t.Fatalf("expected no movement at the last row")
	}
	if c.Index() != 4 {
		t.Fatalf("expected cursor clamped to 4, got %d", c.Index())
	}
	c.PageUp(10)
	if c.Index() != 0 {
		t.Fatalf("expected cursor 0 after large page up, got %d", c.Index())
	}
}

func TestEnsureCursorVisible(t *testing.T) {
	c := newTestCollection("a", "b", "c", "d", "e", "f")
	c.Select(5)
	c.EnsureCursorVisible(3)
	if c.Offset() != 3 {
		t.Fatalf("expected offset 3, got %d", c.Offset())
	}
	c.Select(1)
	c.EnsureCursorVisible(3)
	if c.Offset() != 1 {
		t.Fatalf("expected offset 1, got %d", c.Offset())
	}
}

func TestSetItemsClampsCursor(t *testing.T) {
	c := NewCollection([]string{"a", "b", "c", "d"})
	c.Select(3)
	c.SetItems([]string{"a", "b"})
	if c.Index() != 1 {
		t.Fatalf("expected cursor clamped to 1, got %d", c.Index())
	}
	c.SetItems([]string{"x", "y", "z"})
	if c.Index() != 1 {
		t.Fatalf("expected cursor kept at 1, got %d", c.Index())
	}
	c.SetItems(nil)
	if c.Index() != 0 || !c.Empty() {
		t.Fatalf("expected empty collection at 0, got %d", c.Index())
	}
}

func TestSetItemsFollowsRowIdentity(t *testing.T) {
	c := newTestCollection("a", "b", "c")
	c.Select(1)
	c.SetItems([]row{{ID: 9, Title: "new"}, {ID: 1, Title: "a"}, {ID: 2, Title: "b"}})
	got, ok := c.Current()
	if !ok || got.ID != 2 {
		t.Fatalf("expected cursor to stay on id 2, got %+v", got)
	}
}

func TestSetItemsReappliesFilterAndSort(t *testing.T) {
	c := newTestCollection("banana", "apple", "cherry", "avocado")
	c.Sorting([]SortOption[row]{{Name: "Title", Cmp: func(a, b row) int { return cmp.Compare(a.Title, b.Title) }}})
	c.Sort.SelectName("Title")
	c.ApplySorting()
	c.Filter = NewInput("a")
	c.ApplyFilter(rowTitle)

	c.SetItems([]row{{ID: 5, Title: "apricot"}, {ID: 6, Title: "kiwi"}, {ID: 2, Title: "apple"}})
	if !c.Filtered() {
		t.Fatalf("expected filter to survive refresh")
	}
	if got := titles(c.Active()); !reflect.DeepEqual(got, []string{"apple", "apricot"}) {
		t.Fatalf("unexpected filtered rows %v", got)
	}

	c.SetItems([]row{{ID: 6, Title: "kiwi"}})
	if c.Filtered() {
		t.Fatalf("expected stale filter to be cleared when nothing matches")
	}
	if c.Len() != 1 {
		t.Fatalf("expected unfiltered view, got %d rows", c.Len())
	}
}

func TestSearchMovesToFirstMatch(t *testing.T) {
	c := newTestCollection("The Office", "Breaking Bad", "Better Call Saul", "Bad Monkey")
	c.Search = NewInput("BAD")
	if !c.ApplySearch(rowTitle) {
		t.Fatalf("expected a match")
	}
	if c.Index() != 1 {
		t.Fatalf("expected first match at 1, got %d", c.Index())
	}
	if c.Search != nil {
		t.Fatalf("expected search box closed after apply")
	}
}

func TestSearchNoMatchLeavesCursor(t *testing.T) {
	c := newTestCollection("alpha", "beta", "gamma")
	c.Select(2)
	before := c.Items()
	c.Search = NewInput("zeta")
	if c.ApplySearch(rowTitle) {
		t.Fatalf("expected no match")
	}
	if c.Index() != 2 {
		t.Fatalf("expected cursor unchanged, got %d", c.Index())
	}
	if !reflect.DeepEqual(before, c.Items()) {
		t.Fatalf("expected items unchanged")
	}
}

func TestFilterRoundTrip(t *testing.T) {
	c := newTestCollection("alpha", "beta", "gamma")
	c.Select(2)
	c.Filter = NewInput("bet")
	if !c.ApplyFilter(rowTitle) {
		t.Fatalf("expected filter to match")
	}
	if !c.Filtered() || c.Len() != 1 || c.Index() != 0 {
		t.Fatalf("expected single-row filtered view at 0, got len=%d idx=%d", c.Len(), c.Index())
	}
	if got, _ := c.Current(); got.Title != "beta" {
		t.Fatalf("expected beta selected, got %q", got.Title)
	}
	c.ResetFilter()
	if c.Filtered() || c.Len() != 3 {
		t.Fatalf("expected full view after reset, got len=%d", c.Len())
	}
	if c.Index() != 2 {
		t.Fatalf("expected unfiltered cursor restored to 2, got %d", c.Index())
	}
}

func TestFilterNoMatch(t *testing.T) {
	c := newTestCollection("alpha", "beta")
	c.Select(1)
	c.Filter = NewInput("zzz")
	if c.ApplyFilter(rowTitle) {
		t.Fatalf("expected no match")
	}
	if c.Filtered() || c.Len() != 2 || c.Index() != 1 {
		t.Fatalf("expected unchanged view, got filtered=%v len=%d idx=%d", c.Filtered(), c.Len(), c.Index())
	}
}

func TestEmptyFilterIsNoMatch(t *testing.T) {
	for _, text := range []string{"", "   ", "!!"} {
		c := newTestCollection("alpha", "beta")
		c.Select(1)
		c.Filter = NewInput(text)
		if c.ApplyFilter(rowTitle) {
			t.Fatalf("%q: expected empty filter to report no match", text)
		}
		if c.Filtered() || c.FilterQuery() != "" || c.Index() != 1 {
			t.Fatalf("%q: expected unfiltered view, got filtered=%v query=%q idx=%d", text, c.Filtered(), c.FilterQuery(), c.Index())
		}
	}
}

func TestFilterScrollsWithinFilteredView(t *testing.T) {
	c := newTestCollection("ab", "cd", "ae", "af")
	c.Filter = NewInput("a")
	c.ApplyFilter(rowTitle)
	c.ScrollUp()
	if got, _ := c.Current(); got.Title != "af" {
		t.Fatalf("expected wrap within filtered view, got %q", got.Title)
	}
}

func TestFilterNormalizesPunctuation(t *testing.T) {
	c := newTestCollection("Marvel's Agents of S.H.I.E.L.D.", "Mr. Robot")
	c.Filter = NewInput("AGENTS OF s.h.i")
	if !c.ApplyFilter(rowTitle) {
		t.Fatalf("expected normalised match")
	}
	if c.Len() != 1 {
		t.Fatalf("expected one row, got %d", c.Len())
	}
}

func TestFuzzyMatcher(t *testing.T) {
	c := newTestCollection("Breaking Bad", "Better Call Saul")
	c.SetMatcher(FuzzyMatcher)
	c.Filter = NewInput("bcs")
	if !c.ApplyFilter(rowTitle) {
		t.Fatalf("expected fuzzy match")
	}
	if got, _ := c.Current(); got.Title != "Better Call Saul" {
		t.Fatalf("unexpected match %q", got.Title)
	}
}

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"Hello, World!":  "hello, world",
		"S.H.I.E.L.D.":   "s.h.i.e.l.d.",
		"Tom & Jerry":    "tom  jerry",
		"a/b-c:d'e":      "a/b-c:d'e",
		"Ünïcode (2020)": "ncode 2020",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}
