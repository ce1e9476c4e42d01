package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/stefanpenner/gh-explorer/pkg/githubapi"
	"github.com/stefanpenner/gh-explorer/pkg/logging"
	"github.com/stefanpenner/gh-explorer/pkg/selection"
)

// Config is the optional on-disk configuration shared by both commands.
// Command-line flags override it.
type Config struct {
	Search SearchConfig `toml:"search"`
	Issues IssuesConfig `toml:"issues"`
	Log    LogConfig    `toml:"log"`
}

type SearchConfig struct {
	PerPage   int      `toml:"per_page"`
	Qualifier string   `toml:"qualifier"`
	BaseURL   string   `toml:"base_url"`
	Timeout   Duration `toml:"timeout"`
}

type IssuesConfig struct {
	// Mode is "count" or "sum".
	Mode string `toml:"mode"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Duration reads TOML strings like "30s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return errors.Wrapf(err, "invalid duration %q", string(text))
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

func Default() Config {
	return Config{
		Search: SearchConfig{
			PerPage:   githubapi.DefaultPerPage,
			Qualifier: githubapi.DefaultQualifier,
			Timeout:   Duration{githubapi.DefaultTimeout},
		},
		Issues: IssuesConfig{Mode: selection.ModeCount.String()},
		Log:    LogConfig{Level: "info", Format: "console"},
	}
}

// DefaultPath is $XDG_CONFIG_HOME/gh-explorer/config.toml (or the OS
// equivalent).
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return filepath.Join(".gh-explorer", "config.toml")
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "gh-explorer", "config.toml")
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrapf(err, "failed to read config %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "failed to parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Search.PerPage < 1 || c.Search.PerPage > 100 {
		return errors.Newf("search.per_page must be between 1 and 100, got %d", c.Search.PerPage)
	}
	if c.Search.Timeout.Duration < 0 {
		return errors.Newf("search.timeout must not be negative, got %s", c.Search.Timeout)
	}
	if _, err := selection.ParseMode(strings.ToLower(c.Issues.Mode)); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if _, err := logging.ParseFormat(c.Log.Format); err != nil {
		return err
	}
	return nil
}

// Encode renders c as TOML, e.g. for writing a starter file.
func (c Config) Encode() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode config")
	}
	return data, nil
}
