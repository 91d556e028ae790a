package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

const DefaultConfigPath = "f1feed.toml"

type Config struct {
	Listener   ListenerConfig   `toml:"listener"`
	Log        LogConfig        `toml:"log"`
	LiveTiming LiveTimingConfig `toml:"livetiming"`
	Analytics  AnalyticsConfig  `toml:"analytics"`
	Capture    CaptureConfig    `toml:"capture"`
	configPath string           `toml:"-"`
}

type ListenerConfig struct {
	Addr        string `toml:"addr"`
	DatagramBuf int    `toml:"datagram_buf"`
	ReadTimeout string `toml:"read_timeout"`
	QueueBuf    int    `toml:"queue_buf"`
}

type LogConfig struct {
	Level string `toml:"level"`
	JSONL string `toml:"jsonl,omitempty"`
}

type LiveTimingConfig struct {
	Enabled     bool   `toml:"enabled"`
	WSAddr      string `toml:"ws_addr"`
	Name        string `toml:"name"`
	TopicPrefix string `toml:"topic_prefix"`
	SendBuf     int    `toml:"send_buf"`
}

type AnalyticsConfig struct {
	Enabled       bool   `toml:"enabled"`
	Endpoint      string `toml:"endpoint"`
	APIKeyHeader  string `toml:"api_key_header,omitempty"`
	APIKey        string `toml:"api_key,omitempty"`
	MaxBatch      int    `toml:"max_batch"`
	FlushInterval string `toml:"flush_interval"`
}

type CaptureConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

func Default() Config {
	return Config{
		Listener: ListenerConfig{
			Addr:        "0.0.0.0:20777",
			DatagramBuf: 2048,
			ReadTimeout: "500ms",
			QueueBuf:    256,
		},
		Log: LogConfig{
			Level: "info",
		},
		LiveTiming: LiveTimingConfig{
			WSAddr:      "127.0.0.1:8765",
			Name:        "f1feed",
			TopicPrefix: "f1",
			SendBuf:     256,
		},
		Analytics: AnalyticsConfig{
			MaxBatch:      100,
			FlushInterval: "2s",
		},
		Capture: CaptureConfig{
			Path: "session.f1cap",
		},
	}
}

func Load(path string) (Config, error) {
	cfg, exists, err := LoadOrDefault(path)
	if err != nil {
		return Config{}, err
	}
	if !exists {
		return Config{}, os.ErrNotExist
	}
	return cfg, nil
}

func LoadOrDefault(path string) (Config, bool, error) {
	cfg := Default()
	cfg.configPath = path

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, false, nil
		}
		return Config{}, false, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, true, fmt.Errorf("parse config: %w", err)
	}
	cfg.configPath = path
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return Config{}, true, err
	}
	return cfg, true, nil
}

func (cfg *Config) Save(path string) error {
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (cfg *Config) ConfigPath() string {
	return cfg.configPath
}

// ReadTimeoutDuration parses listener.read_timeout. Validate has already
// established the string is well formed.
func (cfg *Config) ReadTimeoutDuration() time.Duration {
	d, err := time.ParseDuration(cfg.Listener.ReadTimeout)
	if err != nil {
		return 500 * time.Millisecond
	}
	return d
}

func (cfg *Config) FlushIntervalDuration() time.Duration {
	d, err := time.ParseDuration(cfg.Analytics.FlushInterval)
	if err != nil {
		return 2 * time.Second
	}
	return d
}

func (cfg *Config) Validate() error {
	if cfg.Listener.Addr == "" {
		return fmt.Errorf("listener.addr must not be empty")
	}
	if _, err := time.ParseDuration(cfg.Listener.ReadTimeout); err != nil {
		return fmt.Errorf("listener.read_timeout: %w", err)
	}
	if cfg.Listener.DatagramBuf <= 0 {
		return fmt.Errorf("listener.datagram_buf must be positive")
	}
	switch cfg.Log.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level unknown: %q", cfg.Log.Level)
	}
	if cfg.LiveTiming.Enabled && cfg.LiveTiming.WSAddr == "" {
		return fmt.Errorf("livetiming.ws_addr must not be empty when enabled")
	}
	if cfg.Analytics.Enabled {
		if cfg.Analytics.Endpoint == "" {
			return fmt.Errorf("analytics.endpoint must not be empty when enabled")
		}
		if _, err := time.ParseDuration(cfg.Analytics.FlushInterval); err != nil {
			return fmt.Errorf("analytics.flush_interval: %w", err)
		}
	}
	if cfg.Capture.Enabled && cfg.Capture.Path == "" {
		return fmt.Errorf("capture.path must not be empty when enabled")
	}
	return nil
}

func (cfg *Config) normalize() {
	def := Default()

	if cfg.Listener.Addr == "" {
		cfg.Listener.Addr = def.Listener.Addr
	}
	if cfg.Listener.DatagramBuf <= 0 {
		cfg.Listener.DatagramBuf = def.Listener.DatagramBuf
	}
	if cfg.Listener.ReadTimeout == "" {
		cfg.Listener.ReadTimeout = def.Listener.ReadTimeout
	}
	if cfg.Listener.QueueBuf <= 0 {
		cfg.Listener.QueueBuf = def.Listener.QueueBuf
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
	if cfg.LiveTiming.WSAddr == "" {
		cfg.LiveTiming.WSAddr = def.LiveTiming.WSAddr
	}
	if cfg.LiveTiming.Name == "" {
		cfg.LiveTiming.Name = def.LiveTiming.Name
	}
	if cfg.LiveTiming.TopicPrefix == "" {
		cfg.LiveTiming.TopicPrefix = def.LiveTiming.TopicPrefix
	}
	if cfg.LiveTiming.SendBuf <= 0 {
		cfg.LiveTiming.SendBuf = def.LiveTiming.SendBuf
	}
	if cfg.Analytics.MaxBatch <= 0 {
		cfg.Analytics.MaxBatch = def.Analytics.MaxBatch
	}
	if cfg.Analytics.FlushInterval == "" {
		cfg.Analytics.FlushInterval = def.Analytics.FlushInterval
	}
	if cfg.Capture.Path == "" {
		cfg.Capture.Path = def.Capture.Path
	}
}
