package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/waypath/dijkstra"
	"github.com/katalvlaran/waypath/edgelist"
)

const (
	// DefaultRandomVertices is the size of the generated graph when neither
	// a graph file nor a vertex count is given.
	DefaultRandomVertices = 10

	// DefaultMinWeight and DefaultMaxWeight bound generated edge weights.
	DefaultMinWeight = 1
	DefaultMaxWeight = 10

	// DefaultWorkers bounds the number of queries evaluated at once.
	DefaultWorkers = 4

	envProduction  = "production"
	envDevelopment = "development"
)

var (
	// ErrUnknownConfigFormat is returned for config files that are neither TOML nor YAML.
	ErrUnknownConfigFormat = errors.New("config: unknown file format")

	// ErrInvalidConfig wraps every validation failure reported by Config.Validate.
	ErrInvalidConfig = errors.New("config: invalid")
)

// Config holds every knob of the waypath command.
type Config struct {
	Graph       string       `toml:"graph" yaml:"graph"`
	Random      RandomConfig `toml:"random" yaml:"random"`
	Queries     []string     `toml:"queries" yaml:"queries"`
	Strategy    string       `toml:"strategy" yaml:"strategy"`
	MaxDistance int64        `toml:"max_distance" yaml:"max_distance"` // 0 disables the limit
	Workers     int          `toml:"workers" yaml:"workers"`
	Dump        bool         `toml:"dump" yaml:"dump"`
	Stats       bool         `toml:"stats" yaml:"stats"`
	Log         LogConfig    `toml:"log" yaml:"log"`
}

// RandomConfig describes the graph generated when no graph file is given.
type RandomConfig struct {
	Vertices  int   `toml:"vertices" yaml:"vertices"`
	Seed      int64 `toml:"seed" yaml:"seed"`
	MinWeight int64 `toml:"min_weight" yaml:"min_weight"`
	MaxWeight int64 `toml:"max_weight" yaml:"max_weight"`
}

// LogConfig selects the logger flavor and an optional rotating log file.
type LogConfig struct {
	Environment string `toml:"environment" yaml:"environment"`
	Level       string `toml:"level" yaml:"level"`
	File        string `toml:"file" yaml:"file"`
	MaxSizeMB   int    `toml:"max_size_mb" yaml:"max_size_mb"`
	MaxBackups  int    `toml:"max_backups" yaml:"max_backups"`
}

// DefaultConfig returns the configuration used when nothing else is given.
func DefaultConfig() Config {
	return Config{
		Random: RandomConfig{
			Vertices:  DefaultRandomVertices,
			MinWeight: DefaultMinWeight,
			MaxWeight: DefaultMaxWeight,
		},
		Strategy: dijkstra.StrategyLazyHeap.String(),
		Workers:  DefaultWorkers,
		Log: LogConfig{
			Environment: envDevelopment,
			Level:       "info",
			MaxSizeMB:   100,
			MaxBackups:  3,
		},
	}
}

// LoadConfigFile decodes path on top of cfg. The format is picked by
// extension: .toml for TOML, .yaml or .yml for YAML.
func LoadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err = toml.Decode(string(data), cfg); err != nil {
			return fmt.Errorf("config: decode TOML %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("config: decode YAML %s: %w", path, err)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownConfigFormat, path)
	}

	return nil
}

// Validate reports every problem in c at once.
func (c Config) Validate() error {
	var result *multierror.Error
	bad := func(format string, args ...interface{}) {
		result = multierror.Append(result, fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidConfig}, args...)...))
	}

	if c.Graph == "" {
		if c.Random.Vertices < 1 {
			bad("random.vertices=%d must be ≥ 1", c.Random.Vertices)
		}
		if c.Random.MinWeight <= 0 || c.Random.MaxWeight < c.Random.MinWeight {
			bad("random weights need 0 < min ≤ max, got [%d, %d]", c.Random.MinWeight, c.Random.MaxWeight)
		}
	}
	for _, q := range c.Queries {
		if _, _, err := edgelist.ParseQuery(q); err != nil {
			bad("%v", err)
		}
	}
	if _, err := dijkstra.ParseStrategy(c.Strategy); err != nil {
		bad("%v", err)
	}
	if c.MaxDistance < 0 {
		bad("max_distance=%d must be ≥ 0", c.MaxDistance)
	}
	if c.Workers < 1 {
		bad("workers=%d must be ≥ 1", c.Workers)
	}
	switch c.Log.Environment {
	case envProduction, envDevelopment:
	default:
		bad("log.environment=%q must be %q or %q", c.Log.Environment, envProduction, envDevelopment)
	}

	return result.ErrorOrNil()
}

// queryOptions translates c into engine options. c must be valid.
// MaxDistance 0 adds no limit, unlike dijkstra.WithMaxDistance(0), which
// keeps only the source reachable.
func (c Config) queryOptions() []dijkstra.Option {
	s, _ := dijkstra.ParseStrategy(c.Strategy)
	opts := []dijkstra.Option{dijkstra.WithStrategy(s)}
	if c.MaxDistance > 0 {
		opts = append(opts, dijkstra.WithMaxDistance(c.MaxDistance))
	}

	return opts
}
