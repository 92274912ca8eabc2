package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/servarr-tui/internal/backend"
	"github.com/atomicstack/servarr-tui/internal/demo"
	"github.com/atomicstack/servarr-tui/internal/intent"
	"github.com/atomicstack/servarr-tui/internal/keys"
	"github.com/atomicstack/servarr-tui/internal/ui"
	uistate "github.com/atomicstack/servarr-tui/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrNoServer is returned when demo mode is off and no server client is
// available.
var ErrNoServer = errors.New("no Sonarr client configured; run with --demo")

// pollKinds are refreshed on every interval regardless of the current view.
// Everything else is fetched when its view is entered.
var pollKinds = []backend.Kind{backend.KindSeries, backend.KindProfiles, backend.KindDownloads}

// Config describes user-provided application options.
type Config struct {
	Width           int
	Height          int
	ShowFooter      bool
	RefreshInterval time.Duration
	Fuzzy           bool
	KeysPath        string
	Demo            bool
}

// Backend is a data source that can also execute intents.
type Backend interface {
	backend.Source
	intent.Executor
}

// New builds the UI model and the watcher feeding it. The caller owns the
// watcher and must Stop it.
func New(cfg Config, be Backend) (*ui.Model, *backend.Watcher, error) {
	if be == nil {
		if !cfg.Demo {
			return nil, nil, ErrNoServer
		}
		be = demo.NewServer()
	}
	km, err := keys.LoadFile(cfg.KeysPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load keys: %w", err)
	}
	matcher := uistate.SubstringMatcher
	if cfg.Fuzzy {
		matcher = uistate.FuzzyMatcher
	}
	watcher := backend.NewWatcher(be, cfg.RefreshInterval, pollKinds...)
	model := ui.NewModel(ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Matcher:    matcher,
		Keys:       km,
		Watcher:    watcher,
		Executor:   be,
	})
	return model, watcher, nil
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	model, watcher, err := New(cfg, nil)
	if err != nil {
		return err
	}
	defer watcher.Stop()
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
