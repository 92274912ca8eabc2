package demo

import (
	"time"

	"github.com/atomicstack/servarr-tui/internal/models"
)

// epoch anchors every fixture timestamp so renders are reproducible.
var epoch = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

func day(n int) time.Time {
	return epoch.Add(time.Duration(n) * 24 * time.Hour)
}

func seasons(seriesID int64, counts ...int) []models.Season {
	out := make([]models.Season, len(counts))
	for i, n := range counts {
		out[i] = models.Season{
			SeriesID:         seriesID,
			Number:           i + 1,
			Monitored:        true,
			EpisodeCount:     n,
			EpisodeFileCount: n,
			SizeOnDisk:       int64(n) * 1_500_000_000,
		}
	}
	return out
}

func fixtureSeries() []models.Series {
	return []models.Series{
		{ID: 1, Title: "Severance", Year: 2022, Network: "Apple TV+", Status: "continuing", Rating: 8.7, SeriesType: "standard", Monitored: true, SeasonFolder: true, QualityProfileID: 1, LanguageProfileID: 1, Path: "/tv/Severance", Overview: "Office workers whose memories have been surgically divided.", Seasons: seasons(1, 9, 10)},
		{ID: 2, Title: "The Expanse", Year: 2015, Network: "Prime Video", Status: "ended", Rating: 8.5, SeriesType: "standard", Monitored: true, SeasonFolder: true, QualityProfileID: 2, LanguageProfileID: 1, Path: "/tv/The Expanse", Tags: []string{"sci-fi"}, Seasons: seasons(2, 10, 13, 13, 10, 10, 6)},
		{ID: 3, Title: "Frieren", Year: 2023, Network: "Nippon TV", Status: "continuing", Rating: 9.0, SeriesType: "anime", Monitored: true, SeasonFolder: true, QualityProfileID: 1, LanguageProfileID: 2, Path: "/anime/Frieren", Seasons: seasons(3, 28)},
		{ID: 4, Title: "The Daily Show", Year: 1996, Network: "Comedy Central", Status: "continuing", Rating: 7.1, SeriesType: "daily", Monitored: false, SeasonFolder: false, QualityProfileID: 3, LanguageProfileID: 1, Path: "/tv/The Daily Show", Seasons: seasons(4, 160)},
		{ID: 5, Title: "Andor", Year: 2022, Network: "Disney+", Status: "ended", Rating: 8.4, SeriesType: "standard", Monitored: true, SeasonFolder: true, QualityProfileID: 2, LanguageProfileID: 1, Path: "/tv/Andor", Seasons: seasons(5, 12, 12)},
	}
}

func fixtureProfiles() ([]models.Profile, []models.Profile) {
	quality := []models.Profile{{ID: 1, Name: "HD-1080p"}, {ID: 2, Name: "Ultra-HD"}, {ID: 3, Name: "SD"}}
	language := []models.Profile{{ID: 1, Name: "English"}, {ID: 2, Name: "Japanese"}}
	return quality, language
}

func fixtureHistory() []models.HistoryItem {
	return []models.HistoryItem{
		{ID: 11, SeriesID: 1, SourceTitle: "Severance.S02E01.1080p.WEB.h264", EventType: "grabbed", Language: "English", Quality: "WEBDL-1080p", Date: day(-3)},
		{ID: 12, SeriesID: 1, SourceTitle: "Severance.S02E01.1080p.WEB.h264", EventType: "downloadFolderImported", Language: "English", Quality: "WEBDL-1080p", Date: day(-3)},
		{ID: 13, SeriesID: 3, SourceTitle: "[SubsPlease] Frieren - 28 (1080p)", EventType: "grabbed", Language: "Japanese", Quality: "WEBDL-1080p", Date: day(-10)},
		{ID: 14, SeriesID: 2, SourceTitle: "The.Expanse.S06E06.2160p.AMZN.WEB-DL", EventType: "episodeFileDeleted", Language: "English", Quality: "WEBDL-2160p", Date: day(-40)},
		{ID: 15, SeriesID: 5, SourceTitle: "Andor.S02E03.1080p.DSNP.WEB-DL", EventType: "downloadFailed", Language: "English", Quality: "WEBDL-1080p", Date: day(-1)},
	}
}

func fixtureDownloads() []models.Download {
	return []models.Download{
		{ID: 21, Title: "Andor.S02E04.1080p.DSNP.WEB-DL", Status: "downloading", Size: 2_400_000_000, SizeLeft: 900_000_000, OutputPath: "/downloads/Andor.S02E04", Indexer: "nzbgeek", DownloadClient: "sabnzbd"},
		{ID: 22, Title: "Severance.S02E02.1080p.WEB.h264", Status: "queued", Size: 1_800_000_000, SizeLeft: 1_800_000_000, OutputPath: "/downloads/Severance.S02E02", Indexer: "nyaa", DownloadClient: "qbittorrent"},
	}
}

func fixtureBlocklist() []models.BlocklistItem {
	return []models.BlocklistItem{
		{ID: 31, SeriesID: 5, SeriesTitle: "Andor", SourceTitle: "Andor.S02E03.720p.HDTV.x264", Language: "English", Quality: "HDTV-720p", Date: day(-2), Protocol: "usenet", Indexer: "nzbgeek", Message: "Download failed"},
		{ID: 32, SeriesID: 2, SeriesTitle: "The Expanse", SourceTitle: "The.Expanse.S06E01.CAM", Language: "English", Quality: "Unknown", Date: day(-50), Protocol: "torrent", Indexer: "nyaa", Message: "Manually blocklisted"},
	}
}

func fixtureRootFolders() []models.RootFolder {
	return []models.RootFolder{
		{ID: 41, Path: "/tv", Accessible: true, FreeSpace: 1_200_000_000_000, UnmappedFolders: 2},
		{ID: 42, Path: "/anime", Accessible: true, FreeSpace: 800_000_000_000},
	}
}

func fixtureIndexers() []models.Indexer {
	return []models.Indexer{
		{ID: 51, Name: "nzbgeek", Implementation: "Newznab", Protocol: models.ProtocolUsenet, URL: "https://api.nzbgeek.info", APIKey: "secret", Priority: 25, EnableRss: true, EnableAutomaticSearch: true, EnableInteractiveSearch: true},
		{ID: 52, Name: "nyaa", Implementation: "Torznab", Protocol: models.ProtocolTorrent, URL: "http://prowlarr:9696/1/", APIKey: "secret", SeedRatio: "1.5", Tags: []string{"anime"}, Priority: 30, EnableRss: true, EnableAutomaticSearch: true},
	}
}

func fixtureSettings() models.IndexerSettings {
	return models.IndexerSettings{MinimumAge: 0, Retention: 0, MaximumSize: 0, RssSyncInterval: 60}
}

func fixtureTasks() []models.Task {
	return []models.Task{
		{Name: "Application Update Check", TaskName: "ApplicationUpdateCheck", Interval: 6 * time.Hour, LastExecution: epoch.Add(-2 * time.Hour), NextExecution: epoch.Add(4 * time.Hour)},
		{Name: "Backup", TaskName: "Backup", Interval: 7 * 24 * time.Hour, LastExecution: day(-3), NextExecution: day(4)},
		{Name: "Refresh Series", TaskName: "RefreshSeries", Interval: 12 * time.Hour, LastExecution: epoch.Add(-time.Hour), NextExecution: epoch.Add(11 * time.Hour)},
		{Name: "Rss Sync", TaskName: "RssSync", Interval: time.Hour, LastExecution: epoch.Add(-10 * time.Minute), NextExecution: epoch.Add(50 * time.Minute)},
	}
}

func fixtureLogs() []models.LogEntry {
	return []models.LogEntry{
		{Time: epoch.Add(-10 * time.Minute), Level: "info", Logger: "RssSyncService", Message: "RSS Sync Completed. Reports found: 100, Reports grabbed: 1"},
		{Time: epoch.Add(-9 * time.Minute), Level: "warn", Logger: "DownloadDecisionMaker", Message: "Couldn't parse release title: The.Expanse.S06E01.CAM"},
		{Time: epoch.Add(-time.Minute), Level: "error", Logger: "DownloadClient", Message: "Download failed for Andor.S02E03"},
	}
}

func fixtureUpdates() []models.Update {
	return []models.Update{
		{Version: "4.0.9.2244", ReleaseDate: day(-5), Changes: []string{"Fixed: Blocklist sorting", "New: Indexer priority"}},
		{Version: "4.0.8.1874", ReleaseDate: day(-60), Installed: true, Changes: []string{"Fixed: Root folder free space"}},
	}
}

func fixtureQueuedEvents() []models.QueuedEvent {
	return []models.QueuedEvent{
		{ID: 61, Name: "RssSync", Status: "completed", Trigger: "scheduled", Queued: epoch.Add(-10 * time.Minute), Ended: epoch.Add(-9 * time.Minute)},
		{ID: 62, Name: "RefreshMonitoredDownloads", Status: "completed", Trigger: "scheduled", Queued: epoch.Add(-time.Minute), Ended: epoch.Add(-time.Minute)},
	}
}
