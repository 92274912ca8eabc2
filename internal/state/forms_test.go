package state

import (
	"reflect"
	"testing"

	"github.com/atomicstack/servarr-tui/internal/models"
	"github.com/atomicstack/servarr-tui/internal/route"
)

func TestDeleteSeriesFormToggles(t *testing.T) {
	f := NewDeleteSeriesForm(models.Series{ID: 7, Title: "x"})
	if !f.Toggle() || !f.DeleteFiles {
		t.Fatalf("expected delete files toggled on")
	}
	f.Grid.Down()
	f.Toggle()
	f.Grid.Down()
	if f.Toggle() {
		t.Fatalf("expected confirm row not to toggle")
	}
	want := models.DeleteSeriesParams{ID: 7, DeleteFiles: true, AddListExclusion: true}
	if got := f.Params(); got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestEditSeriesFormPrefills(t *testing.T) {
	quality := []models.Profile{{ID: 1, Name: "SD"}, {ID: 4, Name: "HD"}}
	language := []models.Profile{{ID: 1, Name: "English"}}
	s := models.Series{
		ID:                3,
		Monitored:         true,
		QualityProfileID:  4,
		LanguageProfileID: 1,
		SeriesType:        "anime",
		Path:              "/tv/show",
		Tags:              []string{"a", "b"},
	}
	f := NewEditSeriesForm(s, quality, language)
	f.Toggle()
	f.Tags.Insert(", , c")
	got := f.Params()
	want := models.EditSeriesParams{
		ID:                3,
		Monitored:         false,
		QualityProfileID:  4,
		LanguageProfileID: 1,
		SeriesType:        "anime",
		Path:              "/tv/show",
		Tags:              []string{"a", "b", "c"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	if f.Input(route.EditSeriesPathInput) != f.Path || f.Input(route.EditSeriesConfirmPrompt) != nil {
		t.Fatalf("unexpected input lookup")
	}
}

func TestEditIndexerFormLayoutFollowsProtocol(t *testing.T) {
	torrent := NewEditIndexerForm(models.Indexer{Protocol: models.ProtocolTorrent})
	if !torrent.Grid.Find(route.EditIndexerSeedRatioInput) {
		t.Fatalf("expected torrent form to offer a seed ratio")
	}
	nzb := NewEditIndexerForm(models.Indexer{Protocol: models.ProtocolUsenet})
	if nzb.Grid.Find(route.EditIndexerSeedRatioInput) {
		t.Fatalf("expected usenet form without seed ratio")
	}
}

func TestEditIndexerFormParams(t *testing.T) {
	f := NewEditIndexerForm(models.Indexer{
		ID:        2,
		Name:      "nyaa",
		Protocol:  models.ProtocolTorrent,
		SeedRatio: "1.5",
		Priority:  25,
		EnableRss: true,
	})
	f.Grid.SetIndex(0, 1)
	f.Toggle()
	p, err := f.Params()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.EnableRss || p.Priority != 25 || p.SeedRatio != "1.5" || p.Name != "nyaa" {
		t.Fatalf("unexpected params %+v", p)
	}

	f.Priority.Set("high", 4)
	if _, err := f.Params(); err == nil {
		t.Fatalf("expected an error for a non-numeric priority")
	}
}

func TestIndexerSettingsFormAdjust(t *testing.T) {
	f := NewIndexerSettingsForm(models.IndexerSettings{MinimumAge: 1, Retention: 12})
	f.Adjust(route.IndexerSettingsMinimumAgeInput, -5)
	if v, _ := f.Value(route.IndexerSettingsMinimumAgeInput); v != 0 {
		t.Fatalf("expected clamp at zero, got %d", v)
	}
	f.AppendDigit(route.IndexerSettingsRetentionInput, '3')
	if v, _ := f.Value(route.IndexerSettingsRetentionInput); v != 123 {
		t.Fatalf("expected 123, got %d", v)
	}
	f.DropDigit(route.IndexerSettingsRetentionInput)
	f.DropDigit(route.IndexerSettingsRetentionInput)
	if v, _ := f.Value(route.IndexerSettingsRetentionInput); v != 1 {
		t.Fatalf("expected 1, got %d", v)
	}
	if f.Adjust(route.IndexerSettingsConfirmPrompt, 1) {
		t.Fatalf("expected confirm row to have no value")
	}
	if f.AppendDigit(route.IndexerSettingsRetentionInput, 'x') {
		t.Fatalf("expected non-digits to be rejected")
	}
}
