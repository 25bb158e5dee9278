// Package config loads the render configuration. The file is optional;
// every field has a sensible default and unknown render problems must
// never stop the host's render loop.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const configDirEnv = "CLAUDE_CONFIG_DIR"

// Segments toggles each part of the rendered line.
type Segments struct {
	Directory   bool `yaml:"directory"`
	Branch      bool `yaml:"branch"`
	StatusFlags bool `yaml:"status_flags"`
	RemoteSync  bool `yaml:"remote_sync"`
	Stash       bool `yaml:"stash"`
	Usage       bool `yaml:"usage"`
	ProgressBar bool `yaml:"progress_bar"`
	ResetTime   bool `yaml:"reset_time"`
}

// Config is loaded once per invocation and treated as immutable after.
type Config struct {
	Segments Segments `yaml:"segments"`

	// CacheTTLSeconds is how long a cached usage snapshot is served
	// without attempting a refresh.
	CacheTTLSeconds int `yaml:"cache_ttl_seconds"`

	BarWidth        int    `yaml:"bar_width"`
	TwelveHourClock bool   `yaml:"twelve_hour_clock"`
	APIBaseURL      string `yaml:"api_base_url"`

	// FetchTimeoutMS and GitTimeoutMS hard-bound the two I/O paths.
	FetchTimeoutMS int `yaml:"fetch_timeout_ms"`
	GitTimeoutMS   int `yaml:"git_timeout_ms"`

	// LogLevel enables file-backed debug logging when set ("debug",
	// "info", ...). Empty disables logging entirely.
	LogLevel string `yaml:"log_level"`
}

func Defaults() Config {
	return Config{
		Segments: Segments{
			Directory:   true,
			Branch:      true,
			StatusFlags: true,
			RemoteSync:  true,
			Stash:       true,
			Usage:       true,
			ProgressBar: true,
			ResetTime:   true,
		},
		CacheTTLSeconds: 60,
		BarWidth:        10,
		FetchTimeoutMS:  4000,
		GitTimeoutMS:    800,
	}
}

// DefaultPath prefers the host config directory, then XDG.
func DefaultPath() string {
	if dir := os.Getenv(configDirEnv); dir != "" {
		return filepath.Join(dir, "claudeline.yaml")
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "claudeline", "config.yaml")
	}
	return ""
}

// Load overlays the file at path onto Defaults. A missing file yields the
// defaults; only an unreadable or malformed file is an error.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) CacheTTL() time.Duration {
	if c.CacheTTLSeconds <= 0 {
		return 60 * time.Second
	}
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

func (c Config) FetchTimeout() time.Duration {
	if c.FetchTimeoutMS <= 0 {
		return 4 * time.Second
	}
	return time.Duration(c.FetchTimeoutMS) * time.Millisecond
}

func (c Config) GitTimeout() time.Duration {
	if c.GitTimeoutMS <= 0 {
		return 800 * time.Millisecond
	}
	return time.Duration(c.GitTimeoutMS) * time.Millisecond
}
