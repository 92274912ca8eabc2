// Package intent enumerates the commands a confirmed prompt can produce.
// Intents are recorded by key handlers and executed later by an Executor;
// the handlers never look inside the payload.
package intent

import (
	"context"
	"fmt"
)

// Kind identifies a command.
type Kind int

const (
	None Kind = iota
	DeleteBlocklistItem
	ClearBlocklist
	DeleteDownload
	UpdateDownloads
	UpdateAllSeries
	UpdateAndScanSeries
	SearchSeries
	SearchSeason
	DeleteSeries
	EditSeries
	AddRootFolder
	DeleteRootFolder
	DeleteIndexer
	EditIndexer
	EditIndexerSettings
	TestIndexer
	TestAllIndexers
	StartTask
)

var kindNames = map[Kind]string{
	None:                "none",
	DeleteBlocklistItem: "delete-blocklist-item",
	ClearBlocklist:      "clear-blocklist",
	DeleteDownload:      "delete-download",
	UpdateDownloads:     "update-downloads",
	UpdateAllSeries:     "update-all-series",
	UpdateAndScanSeries: "update-and-scan-series",
	SearchSeries:        "search-series",
	SearchSeason:        "search-season",
	DeleteSeries:        "delete-series",
	EditSeries:          "edit-series",
	AddRootFolder:       "add-root-folder",
	DeleteRootFolder:    "delete-root-folder",
	DeleteIndexer:       "delete-indexer",
	EditIndexer:         "edit-indexer",
	EditIndexerSettings: "edit-indexer-settings",
	TestIndexer:         "test-indexer",
	TestAllIndexers:     "test-all-indexers",
	StartTask:           "start-task",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Intent is a recorded command. ID names the target row when the command
// has one; Payload carries command-specific parameters.
type Intent struct {
	Kind    Kind
	ID      int64
	Payload interface{}
}

// Label is a short description for logs and the status line.
func (i Intent) Label() string {
	if i.ID != 0 {
		return fmt.Sprintf("%s #%d", i.Kind, i.ID)
	}
	return i.Kind.String()
}

// Executor carries out intents against the server.
type Executor interface {
	Execute(ctx context.Context, i Intent) (Outcome, error)
}

// Outcome is what an executed intent returns. Data is set by commands that
// produce something to show, such as indexer test results.
type Outcome struct {
	Message string
	Data    interface{}
}
