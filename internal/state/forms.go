package state

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atomicstack/servarr-tui/internal/models"
	"github.com/atomicstack/servarr-tui/internal/route"
	uistate "github.com/atomicstack/servarr-tui/internal/ui/state"
)

// DeleteSeriesForm backs the delete series prompt.
type DeleteSeriesForm struct {
	ID               int64
	Title            string
	DeleteFiles      bool
	AddListExclusion bool
	Grid             *uistate.Grid
}

// NewDeleteSeriesForm opens the delete prompt for s with both options off.
func NewDeleteSeriesForm(s models.Series) *DeleteSeriesForm {
	return &DeleteSeriesForm{
		ID:    s.ID,
		Title: s.Title,
		Grid:  uistate.NewGrid(route.DeleteSeriesSelection),
	}
}

// Toggle flips the option under the grid cursor and reports whether the
// active cell was a toggle.
func (f *DeleteSeriesForm) Toggle() bool {
	switch f.Grid.Active() {
	case route.DeleteSeriesToggleDeleteFiles:
		f.DeleteFiles = !f.DeleteFiles
	case route.DeleteSeriesToggleAddListExclusion:
		f.AddListExclusion = !f.AddListExclusion
	default:
		return false
	}
	return true
}

// Params returns the deletion request.
func (f *DeleteSeriesForm) Params() models.DeleteSeriesParams {
	return models.DeleteSeriesParams{
		ID:               f.ID,
		DeleteFiles:      f.DeleteFiles,
		AddListExclusion: f.AddListExclusion,
	}
}

// EditSeriesForm backs the edit series prompt.
type EditSeriesForm struct {
	ID           int64
	Title        string
	Monitored    bool
	SeasonFolder bool

	QualityProfiles  *uistate.Collection[models.Profile]
	LanguageProfiles *uistate.Collection[models.Profile]
	SeriesTypes      *uistate.Collection[string]

	Path *uistate.Input
	Tags *uistate.Input
	Grid *uistate.Grid
}

// NewEditSeriesForm opens the edit prompt pre-filled from s. The profile
// and type lists start on the series' current values.
func NewEditSeriesForm(s models.Series, quality, language []models.Profile) *EditSeriesForm {
	f := &EditSeriesForm{
		ID:               s.ID,
		Title:            s.Title,
		Monitored:        s.Monitored,
		SeasonFolder:     s.SeasonFolder,
		QualityProfiles:  uistate.NewCollection(quality),
		LanguageProfiles: uistate.NewCollection(language),
		SeriesTypes:      uistate.NewCollection(models.SeriesTypes),
		Path:             uistate.NewInput(s.Path),
		Tags:             uistate.NewInput(strings.Join(s.Tags, ", ")),
		Grid:             uistate.NewGrid(route.EditSeriesSelection),
	}
	selectProfile(f.QualityProfiles, s.QualityProfileID)
	selectProfile(f.LanguageProfiles, s.LanguageProfileID)
	for i, t := range models.SeriesTypes {
		if t == s.SeriesType {
			f.SeriesTypes.Select(i)
		}
	}
	return f
}

func selectProfile(c *uistate.Collection[models.Profile], id int64) {
	for i, p := range c.Items() {
		if p.ID == id {
			c.Select(i)
			return
		}
	}
}

// Toggle flips the boolean under the grid cursor and reports whether the
// active cell was a toggle.
func (f *EditSeriesForm) Toggle() bool {
	switch f.Grid.Active() {
	case route.EditSeriesToggleMonitored:
		f.Monitored = !f.Monitored
	case route.EditSeriesToggleSeasonFolder:
		f.SeasonFolder = !f.SeasonFolder
	default:
		return false
	}
	return true
}

// Input returns the text box bound to b, or nil.
func (f *EditSeriesForm) Input(b route.Block) *uistate.Input {
	switch b {
	case route.EditSeriesPathInput:
		return f.Path
	case route.EditSeriesTagsInput:
		return f.Tags
	}
	return nil
}

// Params returns the edited series.
func (f *EditSeriesForm) Params() models.EditSeriesParams {
	p := models.EditSeriesParams{
		ID:           f.ID,
		Monitored:    f.Monitored,
		SeasonFolder: f.SeasonFolder,
		Path:         strings.TrimSpace(f.Path.Value()),
		Tags:         SplitTags(f.Tags.Value()),
	}
	if q, ok := f.QualityProfiles.Current(); ok {
		p.QualityProfileID = q.ID
	}
	if l, ok := f.LanguageProfiles.Current(); ok {
		p.LanguageProfileID = l.ID
	}
	if t, ok := f.SeriesTypes.Current(); ok {
		p.SeriesType = t
	}
	return p
}

// EditIndexerForm backs the edit indexer prompt. Torrent indexers get a
// seed ratio field that usenet indexers lack.
type EditIndexerForm struct {
	ID       int64
	Protocol string

	Name      *uistate.Input
	URL       *uistate.Input
	APIKey    *uistate.Input
	SeedRatio *uistate.Input
	Tags      *uistate.Input
	Priority  *uistate.Input

	EnableRss               bool
	EnableAutomaticSearch   bool
	EnableInteractiveSearch bool

	Grid *uistate.Grid
}

// NewEditIndexerForm opens the edit prompt pre-filled from ix.
func NewEditIndexerForm(ix models.Indexer) *EditIndexerForm {
	layout := route.EditIndexerNzbSelection
	if ix.Protocol == models.ProtocolTorrent {
		layout = route.EditIndexerTorrentSelection
	}
	return &EditIndexerForm{
		ID:                      ix.ID,
		Protocol:                ix.Protocol,
		Name:                    uistate.NewInput(ix.Name),
		URL:                     uistate.NewInput(ix.URL),
		APIKey:                  uistate.NewInput(ix.APIKey),
		SeedRatio:               uistate.NewInput(ix.SeedRatio),
		Tags:                    uistate.NewInput(strings.Join(ix.Tags, ", ")),
		Priority:                uistate.NewInput(strconv.Itoa(ix.Priority)),
		EnableRss:               ix.EnableRss,
		EnableAutomaticSearch:   ix.EnableAutomaticSearch,
		EnableInteractiveSearch: ix.EnableInteractiveSearch,
		Grid:                    uistate.NewGrid(layout),
	}
}

// Toggle flips the boolean under the grid cursor and reports whether the
// active cell was a toggle.
func (f *EditIndexerForm) Toggle() bool {
	switch f.Grid.Active() {
	case route.EditIndexerToggleEnableRss:
		f.EnableRss = !f.EnableRss
	case route.EditIndexerToggleEnableAutomaticSearch:
		f.EnableAutomaticSearch = !f.EnableAutomaticSearch
	case route.EditIndexerToggleEnableInteractiveSearch:
		f.EnableInteractiveSearch = !f.EnableInteractiveSearch
	default:
		return false
	}
	return true
}

// Input returns the text box bound to b, or nil.
func (f *EditIndexerForm) Input(b route.Block) *uistate.Input {
	switch b {
	case route.EditIndexerNameInput:
		return f.Name
	case route.EditIndexerURLInput:
		return f.URL
	case route.EditIndexerAPIKeyInput:
		return f.APIKey
	case route.EditIndexerSeedRatioInput:
		return f.SeedRatio
	case route.EditIndexerTagsInput:
		return f.Tags
	case route.EditIndexerPriorityInput:
		return f.Priority
	}
	return nil
}

// Params returns the edited indexer. It fails when the priority is not a
// number.
func (f *EditIndexerForm) Params() (models.EditIndexerParams, error) {
	priority, err := strconv.Atoi(strings.TrimSpace(f.Priority.Value()))
	if err != nil {
		return models.EditIndexerParams{}, fmt.Errorf("indexer priority %q: %w", f.Priority.Value(), err)
	}
	p := models.EditIndexerParams{
		ID:                      f.ID,
		Name:                    strings.TrimSpace(f.Name.Value()),
		URL:                     strings.TrimSpace(f.URL.Value()),
		APIKey:                  strings.TrimSpace(f.APIKey.Value()),
		Tags:                    SplitTags(f.Tags.Value()),
		Priority:                priority,
		EnableRss:               f.EnableRss,
		EnableAutomaticSearch:   f.EnableAutomaticSearch,
		EnableInteractiveSearch: f.EnableInteractiveSearch,
	}
	if f.Protocol == models.ProtocolTorrent {
		p.SeedRatio = strings.TrimSpace(f.SeedRatio.Value())
	}
	return p, nil
}

// IndexerSettingsForm backs the indexer settings prompt. Every field is a
// non-negative integer.
type IndexerSettingsForm struct {
	Values models.IndexerSettings
	Grid   *uistate.Grid
}

// NewIndexerSettingsForm opens the settings prompt pre-filled from s.
func NewIndexerSettingsForm(s models.IndexerSettings) *IndexerSettingsForm {
	return &IndexerSettingsForm{
		Values: s,
		Grid:   uistate.NewGrid(route.IndexerSettingsSelection),
	}
}

func (f *IndexerSettingsForm) field(b route.Block) *int {
	switch b {
	case route.IndexerSettingsMinimumAgeInput:
		return &f.Values.MinimumAge
	case route.IndexerSettingsRetentionInput:
		return &f.Values.Retention
	case route.IndexerSettingsMaximumSizeInput:
		return &f.Values.MaximumSize
	case route.IndexerSettingsRssSyncIntervalInput:
		return &f.Values.RssSyncInterval
	}
	return nil
}

// Value returns the value of field b.
func (f *IndexerSettingsForm) Value(b route.Block) (int, bool) {
	v := f.field(b)
	if v == nil {
		return 0, false
	}
	return *v, true
}

// Adjust adds delta to field b, never going below zero.
func (f *IndexerSettingsForm) Adjust(b route.Block, delta int) bool {
	v := f.field(b)
	if v == nil {
		return false
	}
	*v += delta
	if *v < 0 {
		*v = 0
	}
	return true
}

// AppendDigit types a digit into field b.
func (f *IndexerSettingsForm) AppendDigit(b route.Block, r rune) bool {
	v := f.field(b)
	if v == nil || r < '0' || r > '9' {
		return false
	}
	*v = *v*10 + int(r-'0')
	return true
}

// DropDigit removes the last digit of field b.
func (f *IndexerSettingsForm) DropDigit(b route.Block) bool {
	v := f.field(b)
	if v == nil {
		return false
	}
	*v /= 10
	return true
}

// SplitTags parses a comma separated tag list, dropping blanks.
func SplitTags(text string) []string {
	var tags []string
	for _, part := range strings.Split(text, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
