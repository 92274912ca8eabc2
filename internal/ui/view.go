package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/servarr-tui/internal/keys"
	"github.com/atomicstack/servarr-tui/internal/logging/events"
	"github.com/atomicstack/servarr-tui/internal/route"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	breadcrumbSeparator = " → "
	// chromeRows is the number of rows around the table: tabs, breadcrumb,
	// table title and header, note, status line and footer.
	chromeRows = 8
)

var breadcrumbCleaner = strings.NewReplacer("_", " ", "-", " ")

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text is already styled; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	s := m.state
	lines := make([]styledLine, 0, 32)
	lines = append(lines, styledLine{text: m.tabLine(), raw: true})
	lines = append(lines, styledLine{text: m.breadcrumb(), style: styles.Header})

	if view, ok := m.currentTable(); ok {
		lines = append(lines, m.tableLines(view)...)
	}

	current := s.Current()
	var overlay []styledLine
	if preview, ok := previewFor(s, current); ok && shouldRenderPreview(preview) {
		overlay = append(overlay, m.previewLines(preview)...)
	}
	overlay = append(overlay, m.sortLines()...)
	if f, ok := formFor(s); ok {
		overlay = append(overlay, m.formLines(f)...)
	}
	overlay = append(overlay, m.selectLines()...)
	if p, ok := promptFor(s, current); ok {
		overlay = append(overlay, m.promptLines(p)...)
	}
	if msg := noMatchMessage(current.Block); msg != "" {
		overlay = append(overlay, styledLine{text: msg, style: styles.Error})
	}
	if in, label := m.activeInput(); label != "" {
		overlay = append(overlay, styledLine{text: m.inputLine(label, in), raw: true})
	}
	if len(overlay) > 0 {
		lines = append(lines, styledLine{})
		lines = append(lines, overlay...)
	}

	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: m.footer(), style: styles.Footer})
	}
	// Reserve the last row for the status line.
	lines = limitHeight(lines, m.height-1, m.width)
	lines = append(lines, m.statusLine())
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

func (m *Model) tabLine() string {
	tabs := m.state.Tabs
	parts := make([]string, 0, len(tabs.All()))
	for i, tab := range tabs.All() {
		style := styles.Tab
		if i == tabs.Index() {
			style = styles.ActiveTab
		}
		title := tab.Title
		if style != nil {
			title = style.Render(title)
		}
		parts = append(parts, title)
	}
	return strings.Join(parts, " ")
}

func (m *Model) breadcrumb() string {
	routes := m.state.Nav.Routes()
	segments := make([]string, 0, len(routes))
	for _, r := range routes {
		segments = append(segments, breadcrumbCleaner.Replace(r.Block.String()))
	}
	return strings.Join(segments, breadcrumbSeparator)
}

func (m *Model) tableLines(view tableView) []styledLine {
	lines := []styledLine{{text: view.title, style: styles.DetailTitle}}
	if len(view.lines) == 0 {
		msg := view.empty
		if m.state.IsLoading() {
			msg = "Loading…"
			return append(lines, styledLine{text: msg, style: styles.Loading})
		}
		return append(lines, styledLine{text: msg, style: styles.Info})
	}
	lines = append(lines, styledLine{text: "  " + view.header, style: styles.TableHeader})
	for i, row := range view.lines {
		if i == view.cursor {
			lines = append(lines, styledLine{text: "▌ " + row, style: styles.SelectedRow})
			continue
		}
		lines = append(lines, styledLine{text: "  " + row, style: styles.Row})
	}
	if view.note != "" {
		lines = append(lines, styledLine{text: view.note, style: styles.Footer})
	}
	return lines
}

func noMatchMessage(b route.Block) string {
	switch b {
	case route.SearchSeriesError, route.SearchHistoryError:
		return "No items found matching search"
	case route.FilterSeriesError, route.FilterHistoryError:
		return "The given filter produced empty results"
	}
	return ""
}

func (m *Model) statusLine() styledLine {
	s := m.state
	switch {
	case s.Error != "":
		return styledLine{text: fmt.Sprintf("Error: %s", s.Error), style: styles.Error}
	case m.backendLastErr != "":
		return styledLine{text: fmt.Sprintf("Backend: %s", m.backendLastErr), style: styles.Error}
	case s.IsLoading() && m.info != "":
		return styledLine{text: m.info, style: styles.Loading}
	case s.IsLoading():
		return styledLine{text: "Loading…", style: styles.Loading}
	case m.info != "":
		return styledLine{text: m.info, style: styles.Info}
	}
	return styledLine{}
}

func (m *Model) footer() string {
	hint := func(a keys.Action, label string) string {
		return fmt.Sprintf("%s %s", m.keys.HelpKey(a), label)
	}
	if m.state.TextInput {
		return strings.Join([]string{hint(keys.Submit, "apply"), hint(keys.Esc, "cancel")}, "  ")
	}
	return strings.Join([]string{
		hint(keys.Up, "up"),
		hint(keys.Down, "down"),
		hint(keys.Submit, "select"),
		hint(keys.Sort, "sort"),
		hint(keys.Search, "search"),
		hint(keys.Filter, "filter"),
		hint(keys.Refresh, "refresh"),
		hint(keys.Esc, "back"),
		hint(keys.Quit, "quit"),
	}, "  ")
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	events.UI.Resize(m.width, m.height)
	return nil
}

// visibleRows is the number of table rows that fit on screen, or zero when
// the height is unknown.
func (m *Model) visibleRows() int {
	if m.height <= 0 {
		return 0
	}
	rows := m.height - chromeRows
	if rows < 1 {
		rows = 1
	}
	return rows
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{text: text, style: line.style, raw: line.raw}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if !line.raw && line.style != nil && text != "" {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	if lipgloss.Width(text) <= width {
		return text
	}
	return truncate.StringWithTail(text, uint(width), "…")
}
