// Package models holds the rows and command payloads exchanged with a
// Sonarr server. The engine treats them as opaque table rows.
package models

// Series is a row of the library table.
type Series struct {
	ID                int64
	Title             string
	Year              int
	Network           string
	Status            string
	Rating            float64
	SeriesType        string
	Monitored         bool
	SeasonFolder      bool
	QualityProfileID  int64
	LanguageProfileID int64
	Path              string
	Tags              []string
	Overview          string
	Seasons           []Season
}

// Season is a row of the series details table.
type Season struct {
	SeriesID         int64
	Number           int
	Monitored        bool
	EpisodeCount     int
	EpisodeFileCount int
	SizeOnDisk       int64
}

// Profile is a quality or language profile offered by the edit form.
type Profile struct {
	ID   int64
	Name string
}

// SeriesTypes lists the series types accepted by the server.
var SeriesTypes = []string{"standard", "daily", "anime"}
