package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/servarr-tui/internal/models"
	"github.com/atomicstack/servarr-tui/internal/route"
	"github.com/atomicstack/servarr-tui/internal/state"
	uistate "github.com/atomicstack/servarr-tui/internal/ui/state"
)

// previewData is a titled block of text shown over a table: the details of
// the selected row or the result of a command.
type previewData struct {
	title string
	lines []string
	err   string
}

// previewFor returns the preview shown on r, if r has one.
func previewFor(s *state.State, r route.Route) (*previewData, bool) {
	switch r.Block {
	case route.BlocklistItemDetails:
		v, ok := s.Blocklist.Current()
		if !ok {
			return nil, false
		}
		return &previewData{
			title: "Details",
			lines: []string{
				"Name: " + v.SourceTitle,
				"Protocol: " + v.Protocol,
				"Indexer: " + v.Indexer,
				"Date: " + date(v.Date),
				"Message: " + v.Message,
			},
		}, true
	case route.HistoryItemDetails:
		v, ok := s.History.Current()
		if !ok {
			return nil, false
		}
		return &previewData{
			title: "Details",
			lines: []string{
				"Source Title: " + v.SourceTitle,
				"Event Type: " + v.EventType,
				"Quality: " + v.Quality,
				"Language: " + v.Language,
				"Date: " + date(v.Date),
			},
		}, true
	case route.TestIndexer:
		data := &previewData{title: "Test Indexer"}
		switch {
		case s.IndexerTest == "" && s.IsLoading():
			data.lines = []string{"Testing…"}
		case s.IndexerTest == "":
			data.lines = []string{"(no result)"}
		case strings.HasSuffix(s.IndexerTest, ": OK"):
			data.lines = []string{s.IndexerTest}
		default:
			data.err = s.IndexerTest
		}
		return data, true
	case route.SeriesDetails, route.SeriesHistory:
		v, ok := s.Series.Current()
		if !ok {
			return nil, false
		}
		return seriesPreview(s, v), true
	}
	return nil, false
}

func seriesPreview(s *state.State, v models.Series) *previewData {
	lines := []string{
		fmt.Sprintf("%d · %s · %s · %s", v.Year, v.Network, v.Status, v.SeriesType),
		"Quality Profile: " + state.ProfileName(s.QualityProfiles, v.QualityProfileID),
		"Language Profile: " + state.ProfileName(s.LanguageProfiles, v.LanguageProfileID),
		"Path: " + v.Path,
	}
	if v.Overview != "" {
		lines = append(lines, "", v.Overview)
	}
	return &previewData{title: v.Title, lines: lines}
}

func shouldRenderPreview(data *previewData) bool {
	if data == nil {
		return false
	}
	return data.err != "" || len(data.lines) > 0
}

func (m *Model) previewLines(data *previewData) []styledLine {
	lines := []styledLine{{text: data.title, style: styles.DetailTitle}}
	if data.err != "" {
		return append(lines, styledLine{text: data.err, style: styles.Error})
	}
	for _, line := range data.lines {
		lines = append(lines, styledLine{text: line, style: styles.DetailBody})
	}
	return lines
}

// sortLines renders the option list of an open sort prompt.
func (m *Model) sortLines() []styledLine {
	s := m.state
	switch s.Current().Block {
	case route.SeriesSortPrompt:
		return sortOptionLines(s.Series)
	case route.BlocklistSortPrompt:
		return sortOptionLines(s.Blocklist)
	case route.HistorySortPrompt:
		return sortOptionLines(s.History)
	}
	return nil
}

func sortOptionLines[T any](c *uistate.Collection[T]) []styledLine {
	if c.Sort == nil {
		return nil
	}
	lines := []styledLine{{text: "Sort By", style: styles.PromptTitle}}
	for i, opt := range c.Sort.Options() {
		if i == c.Sort.Index() {
			lines = append(lines, styledLine{text: "▌ " + opt.Name, style: styles.SelectedRow})
			continue
		}
		lines = append(lines, styledLine{text: "  " + opt.Name, style: styles.Row})
	}
	return lines
}
