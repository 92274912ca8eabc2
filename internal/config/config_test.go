package config

import (
	"testing"
	"time"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.App.Demo {
		t.Fatalf("expected demo mode on by default")
	}
	if cfg.App.RefreshInterval != defaultRefreshInterval {
		t.Fatalf("expected default interval, got %s", cfg.App.RefreshInterval)
	}
	if cfg.App.Width != 0 || cfg.App.Height != 0 || cfg.App.ShowFooter {
		t.Fatalf("unexpected defaults %+v", cfg.App)
	}
}

func TestLoadArgsFlags(t *testing.T) {
	args := []string{"--width", "100", "--height=30", "--footer", "--fuzzy", "--keys", "k.toml", "--refresh-interval", "2s", "--demo=false", "--trace", "--log-file", "x.log"}
	cfg, err := LoadArgs(args, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	a := cfg.App
	if a.Width != 100 || a.Height != 30 || !a.ShowFooter || !a.Fuzzy || a.KeysPath != "k.toml" || a.RefreshInterval != 2*time.Second || a.Demo {
		t.Fatalf("unexpected app config %+v", a)
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "x.log" {
		t.Fatalf("unexpected logging config %+v", cfg.Logging)
	}
	if cfg.Flags["refreshInterval"] != "2s" {
		t.Fatalf("expected refreshInterval flag, got %q", cfg.Flags["refreshInterval"])
	}
	if len(cfg.Args) != len(args) {
		t.Fatalf("expected args recorded")
	}
}

func TestEnvironmentOverridesDefaults(t *testing.T) {
	env := []string{
		envWidth + "=80",
		envShowFooter + "=true",
		envRefreshInterval + "=750ms",
		envDemo + "=false",
		envKeys + "=/etc/keys.toml",
		"MALFORMED",
	}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	a := cfg.App
	if a.Width != 80 || !a.ShowFooter || a.RefreshInterval != 750*time.Millisecond || a.Demo || a.KeysPath != "/etc/keys.toml" {
		t.Fatalf("unexpected app config %+v", a)
	}
}

func TestFlagsBeatEnvironment(t *testing.T) {
	cfg, err := LoadArgs([]string{"--width", "120"}, []string{envWidth + "=80"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Width != 120 {
		t.Fatalf("expected flag to win, got %d", cfg.App.Width)
	}
}

func TestInvalidEnvironmentFallsBack(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{envHeight + "=tall", envRefreshInterval + "=soon"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Height != 0 || cfg.App.RefreshInterval != defaultRefreshInterval {
		t.Fatalf("expected fallbacks, got %+v", cfg.App)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := [][]string{
		{"--width", "-1"},
		{"--height", "-5"},
		{"--refresh-interval", "10ms"},
	}
	for _, args := range cases {
		if _, err := LoadArgs(args, nil); err == nil {
			t.Fatalf("expected %v to be rejected", args)
		}
	}
}

func TestUnknownFlagIsAnError(t *testing.T) {
	if _, err := LoadArgs([]string{"--socket", "x"}, nil); err == nil {
		t.Fatalf("expected unknown flag error")
	}
}
