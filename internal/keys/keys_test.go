package keys

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultBindsEveryAction(t *testing.T) {
	m := Default()
	for _, a := range Actions() {
		if len(m.Binding(a).Keys()) == 0 {
			t.Fatalf("action %s has no keys", a)
		}
		if a.String() == "" {
			t.Fatalf("action %d has no name", int(a))
		}
	}
}

func TestNavResolution(t *testing.T) {
	m := Default()
	cases := []struct {
		name string
		want Action
	}{
		{"up", Up},
		{"k", Up},
		{"j", Down},
		{"home", Home},
		{"end", End},
		{"delete", Delete},
		{"h", Left},
		{"right", Right},
		{"enter", Submit},
		{"esc", Esc},
		{"s", None},
		{"backspace", None},
	}
	for _, tc := range cases {
		if got := m.Press(tc.name, false).Nav(); got != tc.want {
			t.Fatalf("%q: expected %s, got %s", tc.name, tc.want, got)
		}
	}
}

func TestTextInputIgnoresPrintableBindings(t *testing.T) {
	m := Default()
	k := m.Press("k", true)
	if k.Nav() != None {
		t.Fatalf("expected k to be text while typing")
	}
	if k.Text() != "k" {
		t.Fatalf("expected text k, got %q", k.Text())
	}
	if !m.Press("up", true).Is(Up) {
		t.Fatalf("expected arrow keys to keep working while typing")
	}
	if !m.Press("backspace", true).Is(Backspace) {
		t.Fatalf("expected backspace to match while typing")
	}
	if m.Press("q", true).Is(Quit) {
		t.Fatalf("expected q to be text while typing")
	}
}

func TestOverlappingBindings(t *testing.T) {
	m := Default()
	k := m.Press("s", false)
	if !k.Is(Search) || !k.Is(AutoSearch) {
		t.Fatalf("expected s to match search and auto-search")
	}
	if k.Is(Sort) {
		t.Fatalf("expected s not to match sort")
	}
}

func TestParseOverrides(t *testing.T) {
	m, err := Parse("[keys]\nsearch = [\"/\"]\nup = [\"up\", \"w\"]\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !m.Press("/", false).Is(Search) {
		t.Fatalf("expected / to search")
	}
	if m.Press("s", false).Is(Search) {
		t.Fatalf("expected s no longer bound to search")
	}
	if m.Press("w", false).Nav() != Up {
		t.Fatalf("expected w to scroll up")
	}
	if m.HelpKey(Search) != "/" {
		t.Fatalf("expected help key /, got %q", m.HelpKey(Search))
	}
}

func TestParseUnknownAction(t *testing.T) {
	_, err := Parse("[keys]\nlaunch = [\"x\"]\n")
	if !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("expected ErrUnknownAction, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	m, err := LoadFile("")
	if err != nil || m == nil {
		t.Fatalf("expected defaults for empty path, got %v", err)
	}
	path := filepath.Join(t.TempDir(), "keys.toml")
	if err := os.WriteFile(path, []byte("[keys]\nrefresh = [\"r\"]\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	m, err = LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !m.Press("r", false).Is(Refresh) {
		t.Fatalf("expected r to refresh")
	}
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestConflicts(t *testing.T) {
	m := Default()
	got := m.Conflicts(Search, AutoSearch, Sort)
	if len(got) != 1 || got[0] != "s" {
		t.Fatalf("expected s conflict, got %v", got)
	}
}

func TestDefaultBindingsAreConflictFree(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default bindings: %v", err)
	}
}

func TestSharedKeysAcrossViewsAreAllowed(t *testing.T) {
	if _, err := Parse("[keys]\ntest = [\"z\"]\n"); err != nil {
		t.Fatalf("expected test on z to be allowed, got %v", err)
	}
}

func TestRebindRejectsConflictOnOneView(t *testing.T) {
	cases := []string{
		"[keys]\ntasks = [\"z\"]\n",
		"[keys]\nsort = [\"f\"]\n",
		"[keys]\nauto-search = [\"e\"]\n",
	}
	for _, data := range cases {
		if _, err := Parse(data); !errors.Is(err, ErrConflict) {
			t.Fatalf("%q: expected ErrConflict, got %v", data, err)
		}
	}
}
