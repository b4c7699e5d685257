package graphalgo

import (
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/hupe1980/graphalgo/resource"
)

// EnvPrefix is the prefix of every environment variable read by LoadConfig.
const EnvPrefix = "GRAPHALGO"

// Config holds the environment driven configuration of a traversal.
type Config struct {
	// Concurrency is the number of workers of Run. 0 means GOMAXPROCS.
	Concurrency int `envconfig:"CONCURRENCY" default:"0"`

	// PageShift is log2 of the page length of paged bitsets.
	PageShift uint `envconfig:"PAGE_SHIFT" default:"14"`

	// FlatLimit is the largest node count kept in one flat array.
	FlatLimit int64 `envconfig:"FLAT_LIMIT" default:"268435456"`

	// MemoryLimitBytes bounds the bitset memory of all runs. 0 means unlimited.
	MemoryLimitBytes int64 `envconfig:"MEMORY_LIMIT_BYTES" default:"0"`

	// MaxWorkers bounds the chunks running at once across runs. 0 means unlimited.
	MaxWorkers int64 `envconfig:"MAX_WORKERS" default:"0"`

	// LogLevel is one of debug, info, warn, error or off.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// LogFormat is text or json.
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
}

// LoadConfig reads the configuration from GRAPHALGO_* environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// EffectiveConcurrency returns Concurrency, or GOMAXPROCS if it is not positive.
func (c Config) EffectiveConcurrency() int {
	if c.Concurrency > 0 {
		return c.Concurrency
	}
	return runtime.GOMAXPROCS(0)
}

// Logger builds the logger described by LogLevel and LogFormat.
func (c Config) Logger() (*Logger, error) {
	level, off, err := parseLogLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	if off {
		return NoopLogger(), nil
	}

	switch strings.ToLower(c.LogFormat) {
	case "", "text":
		return NewTextLogger(level), nil
	case "json":
		return NewJSONLogger(level), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", c.LogFormat)
	}
}

// Options converts the configuration into constructor options. A resource
// controller is only created when a memory or worker limit is set.
func (c Config) Options() ([]Option, error) {
	logger, err := c.Logger()
	if err != nil {
		return nil, err
	}

	opts := []Option{
		WithPageShift(c.PageShift),
		WithFlatLimit(c.FlatLimit),
		WithLogger(logger),
	}

	if c.MemoryLimitBytes > 0 || c.MaxWorkers > 0 {
		opts = append(opts, WithResourceController(resource.NewController(resource.Config{
			MemoryLimitBytes: c.MemoryLimitBytes,
			MaxWorkers:       c.MaxWorkers,
		})))
	}

	return opts, nil
}

func parseLogLevel(s string) (level slog.Level, off bool, err error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "none":
		return 0, true, nil
	case "":
		return slog.LevelInfo, false, nil
	}
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, false, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, false, nil
}
