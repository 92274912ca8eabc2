package ui

import (
	"fmt"
	"strconv"

	"github.com/atomicstack/servarr-tui/internal/models"
	"github.com/atomicstack/servarr-tui/internal/route"
	"github.com/atomicstack/servarr-tui/internal/state"
	uistate "github.com/atomicstack/servarr-tui/internal/ui/state"
)

var fieldLabels = map[route.Block]string{
	route.DeleteSeriesToggleDeleteFiles:            "Delete Series Files",
	route.DeleteSeriesToggleAddListExclusion:       "Add List Exclusion",
	route.EditSeriesToggleMonitored:                "Monitored",
	route.EditSeriesToggleSeasonFolder:             "Season Folder",
	route.EditSeriesSelectQualityProfile:           "Quality Profile",
	route.EditSeriesSelectLanguageProfile:          "Language Profile",
	route.EditSeriesSelectSeriesType:               "Series Type",
	route.EditSeriesPathInput:                      "Path",
	route.EditSeriesTagsInput:                      "Tags",
	route.EditIndexerNameInput:                     "Name",
	route.EditIndexerURLInput:                      "URL",
	route.EditIndexerAPIKeyInput:                   "API Key",
	route.EditIndexerSeedRatioInput:                "Seed Ratio",
	route.EditIndexerTagsInput:                     "Tags",
	route.EditIndexerPriorityInput:                 "Indexer Priority",
	route.EditIndexerToggleEnableRss:               "Enable RSS",
	route.EditIndexerToggleEnableAutomaticSearch:   "Enable Automatic Search",
	route.EditIndexerToggleEnableInteractiveSearch: "Enable Interactive Search",
	route.IndexerSettingsMinimumAgeInput:           "Minimum Age (minutes)",
	route.IndexerSettingsRetentionInput:            "Retention (days)",
	route.IndexerSettingsMaximumSizeInput:          "Maximum Size (MB)",
	route.IndexerSettingsRssSyncIntervalInput:      "RSS Sync Interval (minutes)",
}

// form is a multi-field prompt ready to render.
type form struct {
	title  string
	layout [][]route.Block
	grid   *uistate.Grid
	value  func(route.Block) string
}

// formFor returns the form open under the current route, if any.
func formFor(s *state.State) (form, bool) {
	routes := s.Nav.Routes()
	for i := len(routes) - 1; i >= 0; i-- {
		switch {
		case route.DeleteSeriesBlocks.Contains(routes[i].Block):
			if f := s.DeleteSeries; f != nil {
				return form{
					title:  fmt.Sprintf("Delete %s", f.Title),
					layout: route.DeleteSeriesSelection,
					grid:   f.Grid,
					value: func(b route.Block) string {
						if b == route.DeleteSeriesToggleDeleteFiles {
							return toggle(f.DeleteFiles)
						}
						return toggle(f.AddListExclusion)
					},
				}, true
			}
		case route.EditSeriesBlocks.Contains(routes[i].Block):
			if f := s.EditSeries; f != nil {
				return form{
					title:  fmt.Sprintf("Edit %s", f.Title),
					layout: route.EditSeriesSelection,
					grid:   f.Grid,
					value:  editSeriesValue(f),
				}, true
			}
		case route.EditIndexerBlocks.Contains(routes[i].Block):
			if f := s.EditIndexer; f != nil {
				layout := route.EditIndexerNzbSelection
				if f.Protocol == models.ProtocolTorrent {
					layout = route.EditIndexerTorrentSelection
				}
				return form{
					title:  fmt.Sprintf("Edit Indexer %s", f.Name.Value()),
					layout: layout,
					grid:   f.Grid,
					value:  editIndexerValue(f),
				}, true
			}
		case route.IndexerSettingsBlocks.Contains(routes[i].Block):
			if f := s.SettingsForm; f != nil {
				return form{
					title:  "Indexer Settings",
					layout: route.IndexerSettingsSelection,
					grid:   f.Grid,
					value: func(b route.Block) string {
						v, _ := f.Value(b)
						return strconv.Itoa(v)
					},
				}, true
			}
		}
	}
	return form{}, false
}

func editSeriesValue(f *state.EditSeriesForm) func(route.Block) string {
	return func(b route.Block) string {
		switch b {
		case route.EditSeriesToggleMonitored:
			return toggle(f.Monitored)
		case route.EditSeriesToggleSeasonFolder:
			return toggle(f.SeasonFolder)
		case route.EditSeriesSelectQualityProfile:
			p, _ := f.QualityProfiles.Current()
			return p.Name
		case route.EditSeriesSelectLanguageProfile:
			p, _ := f.LanguageProfiles.Current()
			return p.Name
		case route.EditSeriesSelectSeriesType:
			t, _ := f.SeriesTypes.Current()
			return t
		}
		if in := f.Input(b); in != nil {
			return in.Value()
		}
		return ""
	}
}

func editIndexerValue(f *state.EditIndexerForm) func(route.Block) string {
	return func(b route.Block) string {
		switch b {
		case route.EditIndexerToggleEnableRss:
			return toggle(f.EnableRss)
		case route.EditIndexerToggleEnableAutomaticSearch:
			return toggle(f.EnableAutomaticSearch)
		case route.EditIndexerToggleEnableInteractiveSearch:
			return toggle(f.EnableInteractiveSearch)
		}
		if in := f.Input(b); in != nil {
			return in.Value()
		}
		return ""
	}
}

func toggle(on bool) string {
	if on {
		return "[✔]"
	}
	return "[ ]"
}

// formLines renders every row of f. The active cell is highlighted and the
// confirm row shows the Yes/No pair.
func (m *Model) formLines(f form) []styledLine {
	lines := []styledLine{{text: f.title, style: styles.PromptTitle}}
	active := f.grid.Active()
	for _, row := range f.layout {
		if isConfirm(row[0]) {
			lines = append(lines, styledLine{})
			confirm := active == row[0] && m.state.Prompt.Confirmed()
			text := buttons(confirm)
			if active != row[0] {
				text = plainButtons()
			}
			lines = append(lines, styledLine{text: text, raw: true})
			continue
		}
		text := ""
		for x, b := range row {
			if x > 0 {
				text += "    "
			}
			cell := fmt.Sprintf("%s: %s", fieldLabels[b], f.value(b))
			style := styles.Field
			if b == active {
				style = styles.ActiveField
			}
			if style != nil {
				cell = style.Render(cell)
			}
			text += cell
		}
		lines = append(lines, styledLine{text: text, raw: true})
	}
	return lines
}

// selectLines renders the option list of an open select field.
func (m *Model) selectLines() []styledLine {
	f := m.state.EditSeries
	if f == nil {
		return nil
	}
	switch m.state.Current().Block {
	case route.EditSeriesSelectQualityProfile:
		return optionLines(f.QualityProfiles, func(p models.Profile) string { return p.Name })
	case route.EditSeriesSelectLanguageProfile:
		return optionLines(f.LanguageProfiles, func(p models.Profile) string { return p.Name })
	case route.EditSeriesSelectSeriesType:
		return optionLines(f.SeriesTypes, func(t string) string { return t })
	}
	return nil
}

func optionLines[T any](c *uistate.Collection[T], label func(T) string) []styledLine {
	lines := make([]styledLine, 0, c.Len())
	for i, v := range c.Active() {
		if i == c.Index() {
			lines = append(lines, styledLine{text: "▌ " + label(v), style: styles.SelectedRow})
			continue
		}
		lines = append(lines, styledLine{text: "  " + label(v), style: styles.Row})
	}
	return lines
}

func isConfirm(b route.Block) bool {
	switch b {
	case route.DeleteSeriesConfirmPrompt, route.EditSeriesConfirmPrompt,
		route.EditIndexerConfirmPrompt, route.IndexerSettingsConfirmPrompt:
		return true
	}
	return false
}

func plainButtons() string {
	yes, no := "Yes", "No"
	if styles.Button != nil {
		yes = styles.Button.Render(yes)
		no = styles.Button.Render(no)
	}
	return yes + "  " + no
}
