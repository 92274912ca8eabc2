package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/servarr-tui/internal/format/table"
	"github.com/atomicstack/servarr-tui/internal/models"
	"github.com/atomicstack/servarr-tui/internal/route"
	"github.com/atomicstack/servarr-tui/internal/state"
	uistate "github.com/atomicstack/servarr-tui/internal/ui/state"
	"github.com/dustin/go-humanize"
)

// maxCellWidth bounds a single table column.
const maxCellWidth = 48

// tableView is a laid out window of a collection.
type tableView struct {
	title  string
	header string
	lines  []string
	// cursor is the index into lines of the highlighted row, or -1.
	cursor int
	empty  string
	// note is shown under the table, e.g. the active filter.
	note string
}

type columns[T any] struct {
	header []string
	align  []table.Alignment
	row    func(T) []string
}

// layoutTable formats the visible window of c.
func layoutTable[T any](title string, c *uistate.Collection[T], visible int, cols columns[T]) tableView {
	view := tableView{title: title, cursor: -1, empty: "(no entries)"}
	if c.Filtered() {
		view.note = fmt.Sprintf("filter: %s", c.FilterQuery())
	}
	if name := c.SortName(); name != "" {
		if view.note != "" {
			view.note += "  "
		}
		view.note += fmt.Sprintf("sorted by %s", name)
	}
	rows := c.Active()
	if visible > 0 {
		c.EnsureCursorVisible(visible)
	}
	start := c.Offset()
	end := len(rows)
	if visible > 0 && start+visible < end {
		end = start + visible
	}
	cells := make([][]string, 0, end-start+1)
	cells = append(cells, cols.header)
	for _, r := range rows[start:end] {
		cells = append(cells, cols.row(r))
	}
	formatted := table.FormatMax(cells, cols.align, maxCellWidth)
	view.header = formatted[0]
	view.lines = formatted[1:]
	if len(rows) > 0 {
		view.cursor = c.Index() - start
	}
	return view
}

// tableRoute returns the nearest route on the stack that shows a table.
func tableRoute(s *state.State) route.Route {
	routes := s.Nav.Routes()
	for i := len(routes) - 1; i >= 0; i-- {
		switch routes[i].Block {
		case route.Series, route.SeriesDetails, route.SeriesHistory, route.Downloads,
			route.Blocklist, route.History, route.RootFolders, route.Indexers,
			route.TestAllIndexers, route.System, route.SystemTasks, route.SystemLogs,
			route.SystemQueuedEvents, route.SystemUpdates:
			return routes[i]
		}
	}
	return routes[0]
}

// currentTable lays out the table under the current route.
func (m *Model) currentTable() (tableView, bool) {
	s := m.state
	visible := m.visibleRows()
	switch tableRoute(s).Block {
	case route.Series:
		return layoutTable("Library", s.Series, visible, seriesColumns(s)), true
	case route.SeriesDetails:
		return layoutTable("Seasons", s.Seasons, visible, seasonColumns), true
	case route.SeriesHistory:
		return layoutTable("History", s.SeriesHistory, visible, historyColumns), true
	case route.Downloads:
		return layoutTable("Downloads", s.Downloads, visible, downloadColumns), true
	case route.Blocklist:
		return layoutTable("Blocklist", s.Blocklist, visible, blocklistColumns), true
	case route.History:
		return layoutTable("History", s.History, visible, historyColumns), true
	case route.RootFolders:
		return layoutTable("Root Folders", s.RootFolders, visible, rootFolderColumns), true
	case route.Indexers:
		return layoutTable("Indexers", s.Indexers, visible, indexerColumns), true
	case route.TestAllIndexers:
		return layoutTable("Indexer Tests", s.IndexerTests, visible, indexerTestColumns), true
	case route.System, route.SystemTasks:
		return layoutTable("Tasks", s.Tasks, visible, taskColumns), true
	case route.SystemLogs:
		return layoutTable("Logs", s.Logs, visible, logColumns), true
	case route.SystemQueuedEvents:
		return layoutTable("Queued Events", s.QueuedEvents, visible, queuedEventColumns), true
	case route.SystemUpdates:
		return layoutTable("Updates", s.Updates, visible, updateColumns), true
	}
	return tableView{}, false
}

func seriesColumns(s *state.State) columns[models.Series] {
	return columns[models.Series]{
		header: []string{"Title", "Year", "Network", "Status", "Rating", "Type", "Quality", "Monitored"},
		align:  []table.Alignment{table.AlignLeft, table.AlignRight, table.AlignLeft, table.AlignLeft, table.AlignRight},
		row: func(v models.Series) []string {
			return []string{
				v.Title,
				strconv.Itoa(v.Year),
				v.Network,
				v.Status,
				fmt.Sprintf("%.1f", v.Rating),
				v.SeriesType,
				state.ProfileName(s.QualityProfiles, v.QualityProfileID),
				check(v.Monitored),
			}
		},
	}
}

var seasonColumns = columns[models.Season]{
	header: []string{"Season", "Monitored", "Episodes", "Size"},
	align:  []table.Alignment{table.AlignLeft, table.AlignLeft, table.AlignRight, table.AlignRight},
	row: func(v models.Season) []string {
		name := fmt.Sprintf("Season %d", v.Number)
		if v.Number == 0 {
			name = "Specials"
		}
		return []string{
			name,
			check(v.Monitored),
			fmt.Sprintf("%d/%d", v.EpisodeFileCount, v.EpisodeCount),
			byteSize(v.SizeOnDisk),
		}
	},
}

var historyColumns = columns[models.HistoryItem]{
	header: []string{"Source Title", "Event Type", "Language", "Quality", "Date"},
	row: func(v models.HistoryItem) []string {
		return []string{v.SourceTitle, v.EventType, v.Language, v.Quality, date(v.Date)}
	},
}

var downloadColumns = columns[models.Download]{
	header: []string{"Title", "Progress", "Size", "Status", "Indexer", "Client"},
	align:  []table.Alignment{table.AlignLeft, table.AlignRight, table.AlignRight},
	row: func(v models.Download) []string {
		return []string{
			v.Title,
			fmt.Sprintf("%.0f%%", v.Progress()*100),
			byteSize(v.Size),
			v.Status,
			v.Indexer,
			v.DownloadClient,
		}
	},
}

var blocklistColumns = columns[models.BlocklistItem]{
	header: []string{"Series Title", "Source Title", "Language", "Quality", "Date"},
	row: func(v models.BlocklistItem) []string {
		return []string{v.SeriesTitle, v.SourceTitle, v.Language, v.Quality, date(v.Date)}
	},
}

var rootFolderColumns = columns[models.RootFolder]{
	header: []string{"Path", "Free Space", "Unmapped Folders"},
	align:  []table.Alignment{table.AlignLeft, table.AlignRight, table.AlignRight},
	row: func(v models.RootFolder) []string {
		return []string{v.Path, byteSize(v.FreeSpace), strconv.Itoa(v.UnmappedFolders)}
	},
}

var indexerColumns = columns[models.Indexer]{
	header: []string{"Name", "Protocol", "RSS", "Automatic Search", "Interactive Search", "Priority", "Tags"},
	align:  []table.Alignment{table.AlignLeft, table.AlignLeft, table.AlignLeft, table.AlignLeft, table.AlignLeft, table.AlignRight},
	row: func(v models.Indexer) []string {
		return []string{
			v.Name,
			v.Protocol,
			check(v.EnableRss),
			check(v.EnableAutomaticSearch),
			check(v.EnableInteractiveSearch),
			strconv.Itoa(v.Priority),
			strings.Join(v.Tags, ", "),
		}
	},
}

var indexerTestColumns = columns[models.IndexerTestResult]{
	header: []string{"Indexer", "Pass", "Failure Messages"},
	row: func(v models.IndexerTestResult) []string {
		return []string{v.Name, check(v.Valid), v.Failure}
	},
}

var taskColumns = columns[models.Task]{
	header: []string{"Name", "Interval", "Last Execution", "Next Execution"},
	row: func(v models.Task) []string {
		return []string{v.Name, v.Interval.String(), since(v.LastExecution), date(v.NextExecution)}
	},
}

var logColumns = columns[models.LogEntry]{
	header: []string{"Time", "Level", "Logger", "Message"},
	row: func(v models.LogEntry) []string {
		return []string{date(v.Time), strings.ToUpper(v.Level), v.Logger, v.Message}
	},
}

var queuedEventColumns = columns[models.QueuedEvent]{
	header: []string{"Name", "Status", "Trigger", "Queued", "Ended"},
	row: func(v models.QueuedEvent) []string {
		return []string{v.Name, v.Status, v.Trigger, date(v.Queued), date(v.Ended)}
	},
}

var updateColumns = columns[models.Update]{
	header: []string{"Version", "Released", "Installed", "Changes"},
	row: func(v models.Update) []string {
		return []string{v.Version, date(v.ReleaseDate), check(v.Installed), strconv.Itoa(len(v.Changes))}
	},
}

func check(b bool) string {
	if b {
		return "✔"
	}
	return ""
}

func date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}

func since(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return t.Format("2006-01-02 15:04")
}

func byteSize(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.IBytes(uint64(n))
}
