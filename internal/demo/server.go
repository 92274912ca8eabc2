// Package demo provides an in-memory Sonarr stand-in so the binary runs
// without a server. Server serves fixture rows to the backend watcher and
// applies executed intents to them, so a confirmed prompt is visible on the
// next refresh.
package demo

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/atomicstack/servarr-tui/internal/backend"
	"github.com/atomicstack/servarr-tui/internal/intent"
	"github.com/atomicstack/servarr-tui/internal/models"
)

// ErrNotFound is returned for intents naming a row that does not exist.
var ErrNotFound = errors.New("not found")

// Server is a fixture-backed backend.Source and intent.Executor.
type Server struct {
	mu sync.Mutex
	// Latency is added to every call to make loading states visible.
	Latency time.Duration

	series      []models.Series
	quality     []models.Profile
	language    []models.Profile
	history     []models.HistoryItem
	downloads   []models.Download
	blocklist   []models.BlocklistItem
	rootFolders []models.RootFolder
	indexers    []models.Indexer
	settings    models.IndexerSettings
	tasks       []models.Task
	events      []models.QueuedEvent
	logs        []models.LogEntry
	updates     []models.Update

	nextID int64
	now    func() time.Time
}

// NewServer returns a server seeded with the demo fixtures.
func NewServer() *Server {
	quality, language := fixtureProfiles()
	return &Server{
		series:      fixtureSeries(),
		quality:     quality,
		language:    language,
		history:     fixtureHistory(),
		downloads:   fixtureDownloads(),
		blocklist:   fixtureBlocklist(),
		rootFolders: fixtureRootFolders(),
		indexers:    fixtureIndexers(),
		settings:    fixtureSettings(),
		tasks:       fixtureTasks(),
		events:      fixtureQueuedEvents(),
		logs:        fixtureLogs(),
		updates:     fixtureUpdates(),
		nextID:      1000,
		now:         func() time.Time { return epoch },
	}
}

func (s *Server) wait(ctx context.Context) error {
	if s.Latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.Latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Fetch implements backend.Source. Every result is a copy.
func (s *Server) Fetch(ctx context.Context, req backend.Request) (interface{}, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	switch req.Kind {
	case backend.KindSeries:
		return slices.Clone(s.series), nil
	case backend.KindSeriesHistory:
		var rows []models.HistoryItem
		for _, h := range s.history {
			if h.SeriesID == req.ID {
				rows = append(rows, h)
			}
		}
		return rows, nil
	case backend.KindProfiles:
		return backend.Profiles{Quality: slices.Clone(s.quality), Language: slices.Clone(s.language)}, nil
	case backend.KindDownloads:
		return slices.Clone(s.downloads), nil
	case backend.KindBlocklist:
		return slices.Clone(s.blocklist), nil
	case backend.KindHistory:
		return slices.Clone(s.history), nil
	case backend.KindRootFolders:
		return slices.Clone(s.rootFolders), nil
	case backend.KindIndexers:
		return slices.Clone(s.indexers), nil
	case backend.KindIndexerSettings:
		return s.settings, nil
	case backend.KindTasks:
		return slices.Clone(s.tasks), nil
	case backend.KindQueuedEvents:
		return slices.Clone(s.events), nil
	case backend.KindLogs:
		return slices.Clone(s.logs), nil
	case backend.KindUpdates:
		return slices.Clone(s.updates), nil
	}
	return nil, fmt.Errorf("fetch %s: unsupported kind", req.Kind)
}

// Execute implements intent.Executor.
func (s *Server) Execute(ctx context.Context, i intent.Intent) (intent.Outcome, error) {
	if err := s.wait(ctx); err != nil {
		return intent.Outcome{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	switch i.Kind {
	case intent.DeleteBlocklistItem:
		return deleteRow(i, &s.blocklist, func(v models.BlocklistItem) int64 { return v.ID })
	case intent.ClearBlocklist:
		s.blocklist = nil
		return intent.Outcome{Message: "Blocklist cleared"}, nil
	case intent.DeleteDownload:
		return deleteRow(i, &s.downloads, func(v models.Download) int64 { return v.ID })
	case intent.DeleteRootFolder:
		return deleteRow(i, &s.rootFolders, func(v models.RootFolder) int64 { return v.ID })
	case intent.DeleteIndexer:
		return deleteRow(i, &s.indexers, func(v models.Indexer) int64 { return v.ID })
	case intent.DeleteSeries:
		return deleteRow(i, &s.series, func(v models.Series) int64 { return v.ID })
	case intent.UpdateDownloads:
		return s.queue("RefreshMonitoredDownloads", "manual"), nil
	case intent.UpdateAllSeries:
		return s.queue("RefreshSeries", "manual"), nil
	case intent.UpdateAndScanSeries:
		if _, ok := s.findSeries(i.ID); !ok {
			return intent.Outcome{}, fmt.Errorf("series %d: %w", i.ID, ErrNotFound)
		}
		return s.queue("RefreshSeries", "manual"), nil
	case intent.SearchSeries:
		if _, ok := s.findSeries(i.ID); !ok {
			return intent.Outcome{}, fmt.Errorf("series %d: %w", i.ID, ErrNotFound)
		}
		return s.queue("SeriesSearch", "manual"), nil
	case intent.SearchSeason:
		ref, ok := i.Payload.(models.SeasonRef)
		if !ok {
			return intent.Outcome{}, payloadError(i)
		}
		if _, ok := s.findSeries(ref.SeriesID); !ok {
			return intent.Outcome{}, fmt.Errorf("series %d: %w", ref.SeriesID, ErrNotFound)
		}
		return s.queue("SeasonSearch", "manual"), nil
	case intent.EditSeries:
		return s.editSeries(i)
	case intent.AddRootFolder:
		path, ok := i.Payload.(string)
		if !ok || strings.TrimSpace(path) == "" {
			return intent.Outcome{}, payloadError(i)
		}
		s.nextID++
		s.rootFolders = append(s.rootFolders, models.RootFolder{ID: s.nextID, Path: path, Accessible: true})
		return intent.Outcome{Message: fmt.Sprintf("Added root folder %s", path)}, nil
	case intent.EditIndexer:
		return s.editIndexer(i)
	case intent.EditIndexerSettings:
		settings, ok := i.Payload.(models.IndexerSettings)
		if !ok {
			return intent.Outcome{}, payloadError(i)
		}
		s.settings = settings
		return intent.Outcome{Message: "Indexer settings saved"}, nil
	case intent.TestIndexer:
		for _, ix := range s.indexers {
			if ix.ID == i.ID {
				return intent.Outcome{Data: testIndexer(ix)}, nil
			}
		}
		return intent.Outcome{}, fmt.Errorf("indexer %d: %w", i.ID, ErrNotFound)
	case intent.TestAllIndexers:
		results := make([]models.IndexerTestResult, len(s.indexers))
		for n, ix := range s.indexers {
			results[n] = testIndexer(ix)
		}
		return intent.Outcome{Data: results}, nil
	case intent.StartTask:
		name, ok := i.Payload.(string)
		if !ok {
			return intent.Outcome{}, payloadError(i)
		}
		for n, task := range s.tasks {
			if task.TaskName == name {
				s.tasks[n].LastExecution = s.now()
				return s.queue(name, "manual"), nil
			}
		}
		return intent.Outcome{}, fmt.Errorf("task %s: %w", name, ErrNotFound)
	}
	return intent.Outcome{}, fmt.Errorf("execute %s: unsupported intent", i.Kind)
}

// deleteRow removes the row named by i.ID from rows.
func deleteRow[T any](i intent.Intent, rows *[]T, key func(T) int64) (intent.Outcome, error) {
	n := len(*rows)
	*rows = slices.DeleteFunc(*rows, func(v T) bool { return key(v) == i.ID })
	if len(*rows) == n {
		return intent.Outcome{}, fmt.Errorf("%s: %w", i.Label(), ErrNotFound)
	}
	return intent.Outcome{Message: fmt.Sprintf("Deleted #%d", i.ID)}, nil
}

func (s *Server) findSeries(id int64) (int, bool) {
	for n, v := range s.series {
		if v.ID == id {
			return n, true
		}
	}
	return -1, false
}

func (s *Server) queue(name, trigger string) intent.Outcome {
	s.nextID++
	now := s.now()
	s.events = append(s.events, models.QueuedEvent{ID: s.nextID, Name: name, Status: "completed", Trigger: trigger, Queued: now, Ended: now})
	return intent.Outcome{Message: fmt.Sprintf("Queued %s", name)}
}

func (s *Server) editSeries(i intent.Intent) (intent.Outcome, error) {
	p, ok := i.Payload.(models.EditSeriesParams)
	if !ok {
		return intent.Outcome{}, payloadError(i)
	}
	n, ok := s.findSeries(p.ID)
	if !ok {
		return intent.Outcome{}, fmt.Errorf("series %d: %w", p.ID, ErrNotFound)
	}
	v := &s.series[n]
	v.Monitored = p.Monitored
	v.SeasonFolder = p.SeasonFolder
	v.QualityProfileID = p.QualityProfileID
	v.LanguageProfileID = p.LanguageProfileID
	v.SeriesType = p.SeriesType
	v.Path = p.Path
	v.Tags = p.Tags
	return intent.Outcome{Message: fmt.Sprintf("Saved %s", v.Title)}, nil
}

func (s *Server) editIndexer(i intent.Intent) (intent.Outcome, error) {
	p, ok := i.Payload.(models.EditIndexerParams)
	if !ok {
		return intent.Outcome{}, payloadError(i)
	}
	for n := range s.indexers {
		ix := &s.indexers[n]
		if ix.ID != p.ID {
			continue
		}
		ix.Name = p.Name
		ix.URL = p.URL
		ix.APIKey = p.APIKey
		ix.SeedRatio = p.SeedRatio
		ix.Tags = p.Tags
		ix.Priority = p.Priority
		ix.EnableRss = p.EnableRss
		ix.EnableAutomaticSearch = p.EnableAutomaticSearch
		ix.EnableInteractiveSearch = p.EnableInteractiveSearch
		return intent.Outcome{Message: fmt.Sprintf("Saved indexer %s", ix.Name)}, nil
	}
	return intent.Outcome{}, fmt.Errorf("indexer %d: %w", p.ID, ErrNotFound)
}

// testIndexer fails indexers without a URL or API key, like a server that
// cannot reach them.
func testIndexer(ix models.Indexer) models.IndexerTestResult {
	res := models.IndexerTestResult{Name: ix.Name, Valid: true}
	switch {
	case ix.URL == "":
		res.Valid, res.Failure = false, "URL is required"
	case ix.APIKey == "":
		res.Valid, res.Failure = false, "API key is required"
	}
	return res
}

func payloadError(i intent.Intent) error {
	return fmt.Errorf("execute %s: unexpected payload %T", i.Kind, i.Payload)
}
