package route

import "testing"

func TestAllExcludesNone(t *testing.T) {
	for _, b := range All() {
		if b == None {
			t.Fatalf("All must not include None")
		}
	}
	if got, want := len(All()), int(blockCount)-1; got != want {
		t.Fatalf("expected %d blocks, got %d", want, got)
	}
}

func TestEveryBlockHasAName(t *testing.T) {
	seen := make(map[string]Block)
	for _, b := range All() {
		name := b.String()
		if name == "unknown" {
			t.Fatalf("block %d has no name", int(b))
		}
		if prev, ok := seen[name]; ok {
			t.Fatalf("blocks %d and %d share name %q", int(prev), int(b), name)
		}
		seen[name] = b
	}
}

func TestEveryBlockBelongsToOneGroup(t *testing.T) {
	groups := []Set{
		LibraryBlocks,
		DeleteSeriesBlocks,
		EditSeriesBlocks,
		SeriesDetailsBlocks,
		DownloadsBlocks,
		BlocklistBlocks,
		HistoryBlocks,
		RootFoldersBlocks,
		IndexersBlocks,
		EditIndexerBlocks,
		IndexerSettingsBlocks,
		SystemBlocks,
		SystemDetailsBlocks,
	}
	for _, b := range All() {
		count := 0
		for _, g := range groups {
			if g.Contains(b) {
				count++
			}
		}
		if count != 1 {
			t.Fatalf("block %s belongs to %d groups", b, count)
		}
	}
}

func TestRouteEquality(t *testing.T) {
	a := WithContext(EditSeriesPrompt, Series)
	b := WithContext(EditSeriesPrompt, Series)
	c := WithContext(EditSeriesPrompt, SeriesDetails)
	if a != b {
		t.Fatalf("expected structurally equal routes to compare equal")
	}
	if a == c {
		t.Fatalf("expected routes with different contexts to differ")
	}
	if New(Series).HasContext() {
		t.Fatalf("expected route without context")
	}
	if got := c.String(); got != "edit-series@series-details" {
		t.Fatalf("unexpected route string %q", got)
	}
}

func TestSelectionLayoutsOnlyUseGroupBlocks(t *testing.T) {
	cases := []struct {
		name   string
		layout [][]Block
		group  Set
	}{
		{"delete series", DeleteSeriesSelection, DeleteSeriesBlocks},
		{"edit series", EditSeriesSelection, EditSeriesBlocks},
		{"edit torrent indexer", EditIndexerTorrentSelection, EditIndexerBlocks},
		{"edit nzb indexer", EditIndexerNzbSelection, EditIndexerBlocks},
		{"indexer settings", IndexerSettingsSelection, IndexerSettingsBlocks},
	}
	for _, tc := range cases {
		for y, row := range tc.layout {
			if len(row) == 0 {
				t.Fatalf("%s: row %d is empty", tc.name, y)
			}
			for _, b := range row {
				if !tc.group.Contains(b) {
					t.Fatalf("%s: block %s outside its group", tc.name, b)
				}
			}
		}
	}
}
