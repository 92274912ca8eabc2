package models

// DeleteSeriesParams carries the options of a series deletion.
type DeleteSeriesParams struct {
	ID               int64
	DeleteFiles      bool
	AddListExclusion bool
}

// EditSeriesParams carries an edited series.
type EditSeriesParams struct {
	ID                int64
	Monitored         bool
	SeasonFolder      bool
	QualityProfileID  int64
	LanguageProfileID int64
	SeriesType        string
	Path              string
	Tags              []string
}

// EditIndexerParams carries an edited indexer.
type EditIndexerParams struct {
	ID                      int64
	Name                    string
	URL                     string
	APIKey                  string
	SeedRatio               string
	Tags                    []string
	Priority                int
	EnableRss               bool
	EnableAutomaticSearch   bool
	EnableInteractiveSearch bool
}

// SeasonRef identifies a season of a series.
type SeasonRef struct {
	SeriesID int64
	Season   int
}
