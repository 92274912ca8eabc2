package models

import "time"

// Download is a row of the download queue.
type Download struct {
	ID             int64
	Title          string
	Status         string
	Size           int64
	SizeLeft       int64
	OutputPath     string
	Indexer        string
	DownloadClient string
}

// Progress returns the completed fraction in [0, 1].
func (d Download) Progress() float64 {
	if d.Size <= 0 {
		return 0
	}
	return float64(d.Size-d.SizeLeft) / float64(d.Size)
}

// BlocklistItem is a release the server refuses to grab again.
type BlocklistItem struct {
	ID          int64
	SeriesID    int64
	SeriesTitle string
	SourceTitle string
	Language    string
	Quality     string
	Date        time.Time
	Protocol    string
	Indexer     string
	Message     string
}

// HistoryItem is a row of the history table.
type HistoryItem struct {
	ID          int64
	SeriesID    int64
	SourceTitle string
	EventType   string
	Language    string
	Quality     string
	Date        time.Time
}

// RootFolder is a library root on the server.
type RootFolder struct {
	ID              int64
	Path            string
	Accessible      bool
	FreeSpace       int64
	UnmappedFolders int
}
