package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"f1feed/pkg/config"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Listener.Addr != "0.0.0.0:20777" {
		t.Fatalf("listener addr: got %q", cfg.Listener.Addr)
	}
	if cfg.ReadTimeoutDuration() != 500*time.Millisecond {
		t.Fatalf("read timeout: got %v", cfg.ReadTimeoutDuration())
	}
}

func TestLoadOrDefaultMissingFile(t *testing.T) {
	cfg, exists, err := config.LoadOrDefault(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exists {
		t.Fatalf("exists should be false")
	}
	if cfg.Listener.Addr == "" {
		t.Fatalf("defaults not applied")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
}

func TestLoadOrDefaultParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f1feed.toml")
	body := `
[listener]
addr = "127.0.0.1:30500"
read_timeout = "250ms"

[log]
level = "debug"

[livetiming]
enabled = true
ws_addr = "127.0.0.1:9001"
topic_prefix = "race"

[analytics]
enabled = true
endpoint = "http://127.0.0.1:8086/ingest"
flush_interval = "5s"
api_key_header = "X-Api-Key"
api_key = "secret"

[capture]
enabled = true
path = "monza.f1cap"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, exists, err := config.LoadOrDefault(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !exists {
		t.Fatalf("exists should be true")
	}
	if cfg.Listener.Addr != "127.0.0.1:30500" {
		t.Fatalf("addr: got %q", cfg.Listener.Addr)
	}
	if cfg.ReadTimeoutDuration() != 250*time.Millisecond {
		t.Fatalf("read timeout: got %v", cfg.ReadTimeoutDuration())
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("level: got %q", cfg.Log.Level)
	}
	if !cfg.LiveTiming.Enabled || cfg.LiveTiming.WSAddr != "127.0.0.1:9001" {
		t.Fatalf("livetiming: got %+v", cfg.LiveTiming)
	}
	// Omitted fields fall back to defaults.
	if cfg.LiveTiming.SendBuf != 256 {
		t.Fatalf("send buf default: got %d", cfg.LiveTiming.SendBuf)
	}
	if cfg.FlushIntervalDuration() != 5*time.Second {
		t.Fatalf("flush interval: got %v", cfg.FlushIntervalDuration())
	}
	if !cfg.Capture.Enabled || cfg.Capture.Path != "monza.f1cap" {
		t.Fatalf("capture: got %+v", cfg.Capture)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"empty addr", func(c *config.Config) { c.Listener.Addr = "" }},
		{"bad timeout", func(c *config.Config) { c.Listener.ReadTimeout = "soon" }},
		{"bad level", func(c *config.Config) { c.Log.Level = "loud" }},
		{"livetiming no addr", func(c *config.Config) {
			c.LiveTiming.Enabled = true
			c.LiveTiming.WSAddr = ""
		}},
		{"analytics no endpoint", func(c *config.Config) { c.Analytics.Enabled = true }},
		{"capture no path", func(c *config.Config) {
			c.Capture.Enabled = true
			c.Capture.Path = ""
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "f1feed.toml")
	cfg := config.Default()
	cfg.Listener.Addr = "127.0.0.1:20888"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Listener.Addr != "127.0.0.1:20888" {
		t.Fatalf("round trip addr: got %q", loaded.Listener.Addr)
	}
}
