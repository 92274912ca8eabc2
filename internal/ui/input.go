package ui

import (
	"github.com/atomicstack/servarr-tui/internal/route"
	uistate "github.com/atomicstack/servarr-tui/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) updateCaret(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.caret, cmd = m.caret.Update(msg)
	return cmd
}

// activeInput returns the text box that has focus on the current route and
// its label.
func (m *Model) activeInput() (*uistate.Input, string) {
	s := m.state
	b := s.Current().Block
	switch b {
	case route.SearchSeries:
		return s.Series.Search, "Search"
	case route.FilterSeries:
		return s.Series.Filter, "Filter"
	case route.SearchHistory:
		return s.History.Search, "Search"
	case route.FilterHistory:
		return s.History.Filter, "Filter"
	case route.AddRootFolderPrompt:
		return s.RootFolderInput, "Path"
	case route.EditSeriesPathInput, route.EditSeriesTagsInput:
		if s.EditSeries != nil {
			return s.EditSeries.Input(b), fieldLabels[b]
		}
	case route.EditIndexerNameInput, route.EditIndexerURLInput, route.EditIndexerAPIKeyInput,
		route.EditIndexerSeedRatioInput, route.EditIndexerTagsInput, route.EditIndexerPriorityInput:
		if s.EditIndexer != nil {
			return s.EditIndexer.Input(b), fieldLabels[b]
		}
	}
	return nil, ""
}

func (m *Model) caretPos() int {
	in, _ := m.activeInput()
	if in == nil {
		return -1
	}
	return in.CursorPos()
}

// inputLine renders a text box with its caret.
func (m *Model) inputLine(label string, in *uistate.Input) string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.Cursor != nil {
		m.caret.Style = styles.Cursor.Copy()
	}
	if styles.Input != nil {
		m.caret.TextStyle = styles.Input.Copy()
	} else {
		m.caret.TextStyle = lipgloss.Style{}
	}
	prompt := label + " » "
	if styles.InputPrompt != nil {
		prompt = styles.InputPrompt.Render(prompt)
	}
	if in == nil || in.Value() == "" {
		placeholder := "(type here)"
		runes := []rune(placeholder)
		if styles.InputPlaceholder != nil {
			m.caret.TextStyle = styles.InputPlaceholder.Copy()
		}
		caret := m.renderCaret(string(runes[0]))
		return prompt + caret + render(styles.InputPlaceholder, string(runes[1:]))
	}
	runes := []rune(in.Value())
	pos := in.CursorPos()
	if pos < 0 {
		pos = 0
	}
	if pos > len(runes) {
		pos = len(runes)
	}
	before := render(styles.Input, string(runes[:pos]))
	caretRune := " "
	after := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = render(styles.Input, string(runes[pos+1:]))
	}
	return prompt + before + m.renderCaret(caretRune) + after
}

func (m *Model) renderCaret(char string) string {
	if char == "" {
		char = " "
	}
	m.caret.SetChar(char)

	base := m.caret.TextStyle.Copy().Inline(true)
	if m.caret.Blink {
		return base.Render(char)
	}
	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		return base.Inherit(cursorStyle).Blink(false).Render(char)
	}
	return base.Reverse(true).Render(char)
}
