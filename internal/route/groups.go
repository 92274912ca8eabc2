package route

// Block groups, one per handler. Every Block belongs to exactly one group.
var (
	LibraryBlocks = NewSet(
		Series,
		SeriesSortPrompt,
		SearchSeries,
		SearchSeriesError,
		FilterSeries,
		FilterSeriesError,
		UpdateAllSeriesPrompt,
	)

	DeleteSeriesBlocks = NewSet(
		DeleteSeriesPrompt,
		DeleteSeriesToggleDeleteFiles,
		DeleteSeriesToggleAddListExclusion,
		DeleteSeriesConfirmPrompt,
	)

	EditSeriesBlocks = NewSet(
		EditSeriesPrompt,
		EditSeriesToggleMonitored,
		EditSeriesToggleSeasonFolder,
		EditSeriesSelectQualityProfile,
		EditSeriesSelectLanguageProfile,
		EditSeriesSelectSeriesType,
		EditSeriesPathInput,
		EditSeriesTagsInput,
		EditSeriesConfirmPrompt,
	)

	SeriesDetailsBlocks = NewSet(
		SeriesDetails,
		SeriesHistory,
		AutomaticallySearchSeriesPrompt,
		AutomaticallySearchSeasonPrompt,
		UpdateAndScanSeriesPrompt,
	)

	DownloadsBlocks = NewSet(
		Downloads,
		DeleteDownloadPrompt,
		UpdateDownloadsPrompt,
	)

	BlocklistBlocks = NewSet(
		Blocklist,
		BlocklistSortPrompt,
		BlocklistItemDetails,
		DeleteBlocklistItemPrompt,
		BlocklistClearAllItemsPrompt,
	)

	HistoryBlocks = NewSet(
		History,
		HistorySortPrompt,
		SearchHistory,
		SearchHistoryError,
		FilterHistory,
		FilterHistoryError,
		HistoryItemDetails,
	)

	RootFoldersBlocks = NewSet(
		RootFolders,
		AddRootFolderPrompt,
		DeleteRootFolderPrompt,
	)

	IndexersBlocks = NewSet(
		Indexers,
		DeleteIndexerPrompt,
		TestIndexer,
		TestAllIndexers,
	)

	EditIndexerBlocks = NewSet(
		EditIndexerPrompt,
		EditIndexerNameInput,
		EditIndexerURLInput,
		EditIndexerAPIKeyInput,
		EditIndexerSeedRatioInput,
		EditIndexerTagsInput,
		EditIndexerPriorityInput,
		EditIndexerToggleEnableRss,
		EditIndexerToggleEnableAutomaticSearch,
		EditIndexerToggleEnableInteractiveSearch,
		EditIndexerConfirmPrompt,
	)

	IndexerSettingsBlocks = NewSet(
		AllIndexerSettingsPrompt,
		IndexerSettingsMinimumAgeInput,
		IndexerSettingsRetentionInput,
		IndexerSettingsMaximumSizeInput,
		IndexerSettingsRssSyncIntervalInput,
		IndexerSettingsConfirmPrompt,
	)

	SystemBlocks = NewSet(
		System,
		SystemLogs,
		SystemQueuedEvents,
		SystemUpdates,
	)

	SystemDetailsBlocks = NewSet(
		SystemTasks,
		SystemTaskStartConfirmPrompt,
	)
)

// Field layouts for multi-field prompts.
var (
	DeleteSeriesSelection = [][]Block{
		{DeleteSeriesToggleDeleteFiles},
		{DeleteSeriesToggleAddListExclusion},
		{DeleteSeriesConfirmPrompt},
	}

	EditSeriesSelection = [][]Block{
		{EditSeriesToggleMonitored},
		{EditSeriesToggleSeasonFolder},
		{EditSeriesSelectQualityProfile},
		{EditSeriesSelectLanguageProfile},
		{EditSeriesSelectSeriesType},
		{EditSeriesPathInput},
		{EditSeriesTagsInput},
		{EditSeriesConfirmPrompt},
	}

	EditIndexerTorrentSelection = [][]Block{
		{EditIndexerNameInput, EditIndexerURLInput},
		{EditIndexerToggleEnableRss, EditIndexerAPIKeyInput},
		{EditIndexerToggleEnableAutomaticSearch, EditIndexerSeedRatioInput},
		{EditIndexerToggleEnableInteractiveSearch, EditIndexerTagsInput},
		{EditIndexerPriorityInput},
		{EditIndexerConfirmPrompt, EditIndexerConfirmPrompt},
	}

	EditIndexerNzbSelection = [][]Block{
		{EditIndexerNameInput, EditIndexerURLInput},
		{EditIndexerToggleEnableRss, EditIndexerAPIKeyInput},
		{EditIndexerToggleEnableAutomaticSearch, EditIndexerTagsInput},
		{EditIndexerToggleEnableInteractiveSearch, EditIndexerPriorityInput},
		{EditIndexerConfirmPrompt, EditIndexerConfirmPrompt},
	}

	IndexerSettingsSelection = [][]Block{
		{IndexerSettingsMinimumAgeInput},
		{IndexerSettingsRetentionInput},
		{IndexerSettingsMaximumSizeInput},
		{IndexerSettingsRssSyncIntervalInput},
		{IndexerSettingsConfirmPrompt},
	}
)

// MainTabs lists the top-level views in tab order.
var MainTabs = []Tab{
	{Title: "Library", Route: New(Series)},
	{Title: "Downloads", Route: New(Downloads)},
	{Title: "Blocklist", Route: New(Blocklist)},
	{Title: "History", Route: New(History)},
	{Title: "Root Folders", Route: New(RootFolders)},
	{Title: "Indexers", Route: New(Indexers)},
	{Title: "System", Route: New(System)},
}

// SeriesInfoTabs lists the tabs of the series details view.
var SeriesInfoTabs = []Tab{
	{Title: "Seasons", Route: New(SeriesDetails)},
	{Title: "History", Route: New(SeriesHistory)},
}

// Tab pairs a display title with the route it opens.
type Tab struct {
	Title string
	Route Route
}
