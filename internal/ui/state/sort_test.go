package state

import (
	"cmp"
	"math/rand"
	"reflect"
	"slices"
	"testing"
	"time"
)

func boolCmp(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

var rowSortOptions = []SortOption[row]{
	{Name: "Title", Cmp: func(a, b row) int { return cmp.Compare(a.Title, b.Title) }},
	{Name: "Added", Cmp: func(a, b row) int { return a.Added.Compare(b.Added) }},
	{Name: "Status", Cmp: func(a, b row) int { return cmp.Compare(a.Status, b.Status) }},
	{Name: "ID", Cmp: func(a, b row) int { return cmp.Compare(a.ID, b.ID) }},
	{Name: "Monitored", Cmp: func(a, b row) int { return boolCmp(a.Monitored, b.Monitored) }},
}

func randomRows(rng *rand.Rand, n int) []row {
	statuses := []string{"continuing", "ended", "upcoming"}
	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := make([]row, n)
	for i := range rows {
		rows[i] = row{
			ID:        int64(rng.Intn(50)),
			Title:     string(rune('a' + rng.Intn(5))),
			Added:     base.Add(time.Duration(rng.Intn(10)) * time.Hour),
			Status:    statuses[rng.Intn(len(statuses))],
			Monitored: rng.Intn(2) == 0,
		}
	}
	return rows
}

func TestSortingPrependsNone(t *testing.T) {
	c := newTestCollection("a")
	c.Sorting(rowSortOptions)
	opts := c.Sort.Options()
	if len(opts) != len(rowSortOptions)+1 {
		t.Fatalf("expected %d options, got %d", len(rowSortOptions)+1, len(opts))
	}
	if opts[0].Name != NoneOption || opts[0].Cmp != nil {
		t.Fatalf("expected None first, got %q", opts[0].Name)
	}
	if c.Sort.Index() != 0 {
		t.Fatalf("expected None highlighted by default")
	}
}

func TestSortMatchesIndependentStableSort(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 50; trial++ {
		rows := randomRows(rng, 1+rng.Intn(25))
		for _, opt := range rowSortOptions {
			c := NewCollection(rows)
			c.Sorting(rowSortOptions)
			c.Sort.SelectName(opt.Name)
			c.ApplySorting()

			want := slices.Clone(rows)
			slices.SortStableFunc(want, opt.Cmp)
			if got := c.Items(); !reflect.DeepEqual(got, want) {
				t.Fatalf("%s: sorted order differs\n got %v\nwant %v", opt.Name, got, want)
			}

			once := c.Items()
			c.Sorting(rowSortOptions)
			c.Sort.SelectName(opt.Name)
			c.ApplySorting()
			if !reflect.DeepEqual(once, c.Items()) {
				t.Fatalf("%s: sorting twice changed the order", opt.Name)
			}
		}
	}
}

func TestSortNoneRestoresBaseOrder(t *testing.T) {
	rows := []row{{ID: 3, Title: "b"}, {ID: 2, Title: "a"}, {ID: 1, Title: "c"}}
	c := NewCollection(rows)
	c.SetBaseOrder(func(a, b row) int { return cmp.Compare(a.ID, b.ID) })

	c.Sorting(rowSortOptions)
	c.Sort.SelectName("Title")
	c.ApplySorting()
	if got := titles(c.Items()); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("expected title order, got %v", got)
	}

	c.Sorting(rowSortOptions)
	if c.Sort.Index() == 0 {
		t.Fatalf("expected confirmed option to stay highlighted")
	}
	c.Sort.Select(0)
	c.ApplySorting()
	if got := titles(c.Items()); !reflect.DeepEqual(got, []string{"c", "a", "b"}) {
		t.Fatalf("expected id order, got %v", got)
	}
}

func TestSortNoneWithoutBaseRestoresInsertionOrder(t *testing.T) {
	c := newTestCollection("b", "c", "a")
	c.Sorting(rowSortOptions)
	c.Sort.SelectName("Title")
	c.ApplySorting()
	c.Sorting(rowSortOptions)
	c.Sort.SelectName(NoneOption)
	c.ApplySorting()
	if got := titles(c.Items()); !reflect.DeepEqual(got, []string{"b", "c", "a"}) {
		t.Fatalf("expected insertion order, got %v", got)
	}
	if c.SortName() != "" {
		t.Fatalf("expected no sort recorded, got %q", c.SortName())
	}
}

func TestSortKeepsCursorOnRow(t *testing.T) {
	c := newTestCollection("c", "a", "b")
	c.Select(0)
	c.Sorting(rowSortOptions)
	c.Sort.SelectName("Title")
	c.ApplySorting()
	got, _ := c.Current()
	if got.Title != "c" || c.Index() != 2 {
		t.Fatalf("expected cursor on c at 2, got %q at %d", got.Title, c.Index())
	}
}

func TestSortWithoutIdentityClampsIndex(t *testing.T) {
	c := NewCollection([]string{"c", "a", "b"})
	c.Select(1)
	c.Sorting([]SortOption[string]{{Name: "Alpha", Cmp: cmp.Compare[string]}})
	c.Sort.SelectName("Alpha")
	c.ApplySorting()
	if c.Index() != 1 {
		t.Fatalf("expected index kept at 1, got %d", c.Index())
	}
}

func TestSortListScrollWraps(t *testing.T) {
	c := newTestCollection("a")
	c.Sorting(rowSortOptions)
	c.Sort.ScrollUp()
	if c.Sort.Index() != len(rowSortOptions) {
		t.Fatalf("expected wrap to last option, got %d", c.Sort.Index())
	}
	c.Sort.ScrollDown()
	if c.Sort.Index() != 0 {
		t.Fatalf("expected wrap to first option, got %d", c.Sort.Index())
	}
	c.Sort.ScrollToBottom()
	if opt, _ := c.Sort.Current(); opt.Name != "Monitored" {
		t.Fatalf("expected last option, got %q", opt.Name)
	}
}

func TestApplySortingWithoutPromptIsNoOp(t *testing.T) {
	c := newTestCollection("b", "a")
	c.ApplySorting()
	if got := titles(c.Items()); !reflect.DeepEqual(got, []string{"b", "a"}) {
		t.Fatalf("expected unchanged order, got %v", got)
	}
}
