package app

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"quadlife/pkg/life"
)

// Config represents the run parameters for the application. Fields map
// one-to-one onto CLI flags and the optional YAML config file.
type Config struct {
	Pattern     string            `yaml:"pattern"`
	PatternArgs map[string]string `yaml:"pattern_args"`
	File        string            `yaml:"file"`
	OriginX     int64             `yaml:"origin_x"`
	OriginY     int64             `yaml:"origin_y"`
	Generations int               `yaml:"generations"`
	PrintEvery  int               `yaml:"print_every"`
	GCMode      string            `yaml:"gc_mode"`
	GCEvery     int64             `yaml:"gc_every"`
	GCNodes     int               `yaml:"gc_nodes"`
	MetricsAddr string            `yaml:"metrics_addr"`
	Verbose     bool              `yaml:"verbose"`

	// Viewer-only knobs.
	ViewWidth  int `yaml:"view_width"`
	ViewHeight int `yaml:"view_height"`
	Scale      int `yaml:"scale"`
	TPS        int `yaml:"tps"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Pattern:     "glider",
		Generations: 100,
		GCMode:      "nodes",
		GCEvery:     5000,
		GCNodes:     100000,
		ViewWidth:   192,
		ViewHeight:  128,
		Scale:       4,
		TPS:         20,
	}
}

// Bind attaches the shared configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "built-in pattern to run")
	fs.StringToStringVar(&c.PatternArgs, "pattern-arg", c.PatternArgs, "pattern configuration key=value pairs")
	fs.StringVar(&c.File, "file", c.File, "RLE pattern file (overrides --pattern)")
	fs.Int64Var(&c.OriginX, "origin-x", c.OriginX, "x offset applied to the input pattern")
	fs.Int64Var(&c.OriginY, "origin-y", c.OriginY, "y offset applied to the input pattern")
	fs.StringVar(&c.GCMode, "gc", c.GCMode, "reclamation policy: off, generations or nodes")
	fs.Int64Var(&c.GCEvery, "gc-every", c.GCEvery, "generations between sweeps in generations mode")
	fs.IntVar(&c.GCNodes, "gc-nodes", c.GCNodes, "live-node threshold in nodes mode")
	fs.StringVar(&c.MetricsAddr, "metrics-addr", c.MetricsAddr, "serve Prometheus metrics on this address")
	fs.BoolVarP(&c.Verbose, "verbose", "v", c.Verbose, "enable debug logging")
}

// LoadFile overlays values from a YAML config file.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// LifeConfig translates the GC knobs into an engine configuration.
func (c *Config) LifeConfig() (life.Config, error) {
	cfg := life.DefaultConfig()
	cfg.GCEvery = c.GCEvery
	cfg.GCThreshold = c.GCNodes
	switch c.GCMode {
	case "off":
		cfg.GC = life.GCDisabled
	case "generations":
		cfg.GC = life.GCGenerations
	case "nodes":
		cfg.GC = life.GCNodes
	default:
		return cfg, fmt.Errorf("unknown gc mode %q", c.GCMode)
	}
	return cfg, nil
}
