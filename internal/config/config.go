package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/servarr-tui/internal/app"
	"github.com/spf13/pflag"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envWidth           = "SERVARR_TUI_WIDTH"
	envHeight          = "SERVARR_TUI_HEIGHT"
	envShowFooter      = "SERVARR_TUI_FOOTER"
	envTrace           = "SERVARR_TUI_TRACE"
	envLogFile         = "SERVARR_TUI_LOG_FILE"
	envRefreshInterval = "SERVARR_TUI_REFRESH_INTERVAL"
	envFuzzy           = "SERVARR_TUI_FUZZY"
	envKeys            = "SERVARR_TUI_KEYS"
	envDemo            = "SERVARR_TUI_DEMO"
)

const (
	defaultRefreshInterval = 5 * time.Second
	minRefreshInterval     = 100 * time.Millisecond
)

// Values holds the destinations RegisterFlags binds flags to.
type Values struct {
	Width           int
	Height          int
	Footer          bool
	Trace           bool
	LogFile         string
	RefreshInterval time.Duration
	Fuzzy           bool
	KeysPath        string
	Demo            bool
}

// RegisterFlags defines every flag on fs. Defaults come from environ so
// environment variables apply unless a flag overrides them.
func RegisterFlags(fs *pflag.FlagSet, environ []string) *Values {
	env := parseEnv(environ)
	v := &Values{}
	fs.IntVar(&v.Width, "width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	fs.IntVar(&v.Height, "height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	fs.BoolVar(&v.Footer, "footer", envOrBool(env, envShowFooter, false), "show the key hint footer")
	fs.BoolVar(&v.Trace, "trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	fs.StringVar(&v.LogFile, "log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	fs.DurationVar(&v.RefreshInterval, "refresh-interval", envOrDuration(env, envRefreshInterval, defaultRefreshInterval), "how often server data is polled")
	fs.BoolVar(&v.Fuzzy, "fuzzy", envOrBool(env, envFuzzy, false), "use fuzzy matching for filters")
	fs.StringVar(&v.KeysPath, "keys", envOrDefault(env, envKeys, ""), "path to a TOML key binding file")
	fs.BoolVar(&v.Demo, "demo", envOrBool(env, envDemo, true), "serve built-in demo data instead of a Sonarr server")
	return v
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs := pflag.NewFlagSet("servarr-tui", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	v := RegisterFlags(fs, environ)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg := v.Config(args)
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Config converts parsed flag values into a Config.
func (v *Values) Config(args []string) Config {
	return Config{
		App: app.Config{
			Width:           v.Width,
			Height:          v.Height,
			ShowFooter:      v.Footer,
			RefreshInterval: v.RefreshInterval,
			Fuzzy:           v.Fuzzy,
			KeysPath:        v.KeysPath,
			Demo:            v.Demo,
		},
		Logging: Logging{
			FilePath: v.LogFile,
			Trace:    v.Trace,
		},
		Flags: map[string]string{
			"width":           strconv.Itoa(v.Width),
			"height":          strconv.Itoa(v.Height),
			"footer":          strconv.FormatBool(v.Footer),
			"trace":           strconv.FormatBool(v.Trace),
			"logFile":         v.LogFile,
			"refreshInterval": v.RefreshInterval.String(),
			"fuzzy":           strconv.FormatBool(v.Fuzzy),
			"keys":            v.KeysPath,
			"demo":            strconv.FormatBool(v.Demo),
		},
		Args: append([]string(nil), args...),
	}
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		values[key] = value
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// Validate rejects sizes and intervals the UI cannot work with.
func Validate(cfg Config) error {
	if cfg.App.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height)
	}
	if cfg.App.RefreshInterval < minRefreshInterval {
		return fmt.Errorf("refresh interval must be >= %s (got %s)", minRefreshInterval, cfg.App.RefreshInterval)
	}
	return nil
}
