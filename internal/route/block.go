package route

// Block identifies a navigable screen or sub-screen.
type Block int

// None is the zero Block. It never names a screen and marks an absent route
// context.
const None Block = 0

const (
	Series Block = iota + 1
	SeriesSortPrompt
	SearchSeries
	SearchSeriesError
	FilterSeries
	FilterSeriesError
	UpdateAllSeriesPrompt

	DeleteSeriesPrompt
	DeleteSeriesToggleDeleteFiles
	DeleteSeriesToggleAddListExclusion
	DeleteSeriesConfirmPrompt

	EditSeriesPrompt
	EditSeriesToggleMonitored
	EditSeriesToggleSeasonFolder
	EditSeriesSelectQualityProfile
	EditSeriesSelectLanguageProfile
	EditSeriesSelectSeriesType
	EditSeriesPathInput
	EditSeriesTagsInput
	EditSeriesConfirmPrompt

	SeriesDetails
	SeriesHistory
	AutomaticallySearchSeriesPrompt
	AutomaticallySearchSeasonPrompt
	UpdateAndScanSeriesPrompt

	Downloads
	DeleteDownloadPrompt
	UpdateDownloadsPrompt

	Blocklist
	BlocklistSortPrompt
	BlocklistItemDetails
	DeleteBlocklistItemPrompt
	BlocklistClearAllItemsPrompt

	History
	HistorySortPrompt
	SearchHistory
	SearchHistoryError
	FilterHistory
	FilterHistoryError
	HistoryItemDetails

	RootFolders
	AddRootFolderPrompt
	DeleteRootFolderPrompt

	Indexers
	DeleteIndexerPrompt
	TestIndexer
	TestAllIndexers

	EditIndexerPrompt
	EditIndexerNameInput
	EditIndexerURLInput
	EditIndexerAPIKeyInput
	EditIndexerSeedRatioInput
	EditIndexerTagsInput
	EditIndexerPriorityInput
	EditIndexerToggleEnableRss
	EditIndexerToggleEnableAutomaticSearch
	EditIndexerToggleEnableInteractiveSearch
	EditIndexerConfirmPrompt

	AllIndexerSettingsPrompt
	IndexerSettingsMinimumAgeInput
	IndexerSettingsRetentionInput
	IndexerSettingsMaximumSizeInput
	IndexerSettingsRssSyncIntervalInput
	IndexerSettingsConfirmPrompt

	System
	SystemLogs
	SystemQueuedEvents
	SystemTasks
	SystemTaskStartConfirmPrompt
	SystemUpdates

	blockCount
)

var blockNames = map[Block]string{
	None:                                     "none",
	Series:                                   "series",
	SeriesSortPrompt:                         "series-sort",
	SearchSeries:                             "series-search",
	SearchSeriesError:                        "series-search-error",
	FilterSeries:                             "series-filter",
	FilterSeriesError:                        "series-filter-error",
	UpdateAllSeriesPrompt:                    "update-all-series",
	DeleteSeriesPrompt:                       "delete-series",
	DeleteSeriesToggleDeleteFiles:            "delete-series-files",
	DeleteSeriesToggleAddListExclusion:       "delete-series-list-exclusion",
	DeleteSeriesConfirmPrompt:                "delete-series-confirm",
	EditSeriesPrompt:                         "edit-series",
	EditSeriesToggleMonitored:                "edit-series-monitored",
	EditSeriesToggleSeasonFolder:             "edit-series-season-folder",
	EditSeriesSelectQualityProfile:           "edit-series-quality-profile",
	EditSeriesSelectLanguageProfile:          "edit-series-language-profile",
	EditSeriesSelectSeriesType:               "edit-series-type",
	EditSeriesPathInput:                      "edit-series-path",
	EditSeriesTagsInput:                      "edit-series-tags",
	EditSeriesConfirmPrompt:                  "edit-series-confirm",
	SeriesDetails:                            "series-details",
	SeriesHistory:                            "series-history",
	AutomaticallySearchSeriesPrompt:          "search-series-prompt",
	AutomaticallySearchSeasonPrompt:          "search-season-prompt",
	UpdateAndScanSeriesPrompt:                "update-and-scan-series",
	Downloads:                                "downloads",
	DeleteDownloadPrompt:                     "delete-download",
	UpdateDownloadsPrompt:                    "update-downloads",
	Blocklist:                                "blocklist",
	BlocklistSortPrompt:                      "blocklist-sort",
	BlocklistItemDetails:                     "blocklist-details",
	DeleteBlocklistItemPrompt:                "delete-blocklist-item",
	BlocklistClearAllItemsPrompt:             "clear-blocklist",
	History:                                  "history",
	HistorySortPrompt:                        "history-sort",
	SearchHistory:                            "history-search",
	SearchHistoryError:                       "history-search-error",
	FilterHistory:                            "history-filter",
	FilterHistoryError:                       "history-filter-error",
	HistoryItemDetails:                       "history-details",
	RootFolders:                              "root-folders",
	AddRootFolderPrompt:                      "add-root-folder",
	DeleteRootFolderPrompt:                   "delete-root-folder",
	Indexers:                                 "indexers",
	DeleteIndexerPrompt:                      "delete-indexer",
	TestIndexer:                              "test-indexer",
	TestAllIndexers:                          "test-all-indexers",
	EditIndexerPrompt:                        "edit-indexer",
	EditIndexerNameInput:                     "edit-indexer-name",
	EditIndexerURLInput:                      "edit-indexer-url",
	EditIndexerAPIKeyInput:                   "edit-indexer-api-key",
	EditIndexerSeedRatioInput:                "edit-indexer-seed-ratio",
	EditIndexerTagsInput:                     "edit-indexer-tags",
	EditIndexerPriorityInput:                 "edit-indexer-priority",
	EditIndexerToggleEnableRss:               "edit-indexer-rss",
	EditIndexerToggleEnableAutomaticSearch:   "edit-indexer-automatic-search",
	EditIndexerToggleEnableInteractiveSearch: "edit-indexer-interactive-search",
	EditIndexerConfirmPrompt:                 "edit-indexer-confirm",
	AllIndexerSettingsPrompt:                 "indexer-settings",
	IndexerSettingsMinimumAgeInput:           "indexer-settings-minimum-age",
	IndexerSettingsRetentionInput:            "indexer-settings-retention",
	IndexerSettingsMaximumSizeInput:          "indexer-settings-maximum-size",
	IndexerSettingsRssSyncIntervalInput:      "indexer-settings-rss-sync-interval",
	IndexerSettingsConfirmPrompt:             "indexer-settings-confirm",
	System:                                   "system",
	SystemLogs:                               "system-logs",
	SystemQueuedEvents:                       "system-queued-events",
	SystemTasks:                              "system-tasks",
	SystemTaskStartConfirmPrompt:             "system-task-start",
	SystemUpdates:                            "system-updates",
}

// String returns the stable identifier used in trace logs and breadcrumbs.
func (b Block) String() string {
	if name, ok := blockNames[b]; ok {
		return name
	}
	return "unknown"
}

// All lists every Block except None, in declaration order.
func All() []Block {
	blocks := make([]Block, 0, int(blockCount)-1)
	for b := Series; b < blockCount; b++ {
		blocks = append(blocks, b)
	}
	return blocks
}
