package ui

import (
	"fmt"

	"github.com/atomicstack/servarr-tui/internal/route"
	"github.com/atomicstack/servarr-tui/internal/state"
)

// confirmPrompt describes a yes/no prompt.
type confirmPrompt struct {
	title    string
	question string
}

// promptFor returns the yes/no prompt shown on r, if r is one.
func promptFor(s *state.State, r route.Route) (confirmPrompt, bool) {
	name := func(title string, ok bool) string {
		if !ok {
			return "this item"
		}
		return title
	}
	switch r.Block {
	case route.UpdateAllSeriesPrompt:
		return confirmPrompt{"Update All Series", "Do you want to update info and scan your disks for all of your series?"}, true
	case route.AutomaticallySearchSeriesPrompt:
		v, ok := s.Series.Current()
		return confirmPrompt{"Automatic Series Search", fmt.Sprintf("Do you want to trigger an automatic search for %s?", name(v.Title, ok))}, true
	case route.AutomaticallySearchSeasonPrompt:
		v, ok := s.Seasons.Current()
		return confirmPrompt{"Automatic Season Search", fmt.Sprintf("Do you want to trigger an automatic search for season %d?", v.Number)}, ok
	case route.UpdateAndScanSeriesPrompt:
		v, ok := s.Series.Current()
		return confirmPrompt{"Update And Scan", fmt.Sprintf("Do you want to update info and scan your disks for %s?", name(v.Title, ok))}, true
	case route.DeleteDownloadPrompt:
		v, ok := s.Downloads.Current()
		return confirmPrompt{"Cancel Download", fmt.Sprintf("Do you really want to delete this download: %s?", name(v.Title, ok))}, true
	case route.UpdateDownloadsPrompt:
		return confirmPrompt{"Update Downloads", "Do you want to update your downloads?"}, true
	case route.DeleteBlocklistItemPrompt:
		v, ok := s.Blocklist.Current()
		return confirmPrompt{"Remove From Blocklist", fmt.Sprintf("Do you want to remove this item from your blocklist: %s?", name(v.SourceTitle, ok))}, true
	case route.BlocklistClearAllItemsPrompt:
		return confirmPrompt{"Clear Blocklist", "Do you want to clear your blocklist?"}, true
	case route.DeleteRootFolderPrompt:
		v, ok := s.RootFolders.Current()
		return confirmPrompt{"Delete Root Folder", fmt.Sprintf("Do you really want to delete this root folder: %s?", name(v.Path, ok))}, true
	case route.DeleteIndexerPrompt:
		v, ok := s.Indexers.Current()
		return confirmPrompt{"Delete Indexer", fmt.Sprintf("Do you really want to delete this indexer: %s?", name(v.Name, ok))}, true
	case route.SystemTaskStartConfirmPrompt:
		v, ok := s.Tasks.Current()
		return confirmPrompt{"Start Task", fmt.Sprintf("Do you want to manually start this task: %s?", name(v.Name, ok))}, true
	}
	return confirmPrompt{}, false
}

// buttons renders the Yes/No pair with the highlighted answer.
func buttons(confirm bool) string {
	yes, no := "Yes", "No"
	yesStyle, noStyle := styles.Button, styles.ActiveButton
	if confirm {
		yesStyle, noStyle = styles.ActiveButton, styles.Button
	}
	if yesStyle != nil {
		yes = yesStyle.Render(yes)
	}
	if noStyle != nil {
		no = noStyle.Render(no)
	}
	return yes + "  " + no
}

// promptLines renders the prompt box for a yes/no prompt.
func (m *Model) promptLines(p confirmPrompt) []styledLine {
	return []styledLine{
		{text: p.title, style: styles.PromptTitle},
		{text: p.question, style: styles.Info},
		{},
		{text: buttons(m.state.Prompt.Confirmed()), raw: true},
	}
}
