// Package config holds the seedmap command configuration: defaults, a JSON
// file and command-line flags, merged with flags taking precedence.
package config

import (
	"fmt"

	"github.com/OCharnyshevich/biomefinder/pkg/gen"
	"github.com/OCharnyshevich/biomefinder/pkg/mc"
)

// Config holds the world and query settings shared by every operation.
type Config struct {
	Seed        int64  `json:"seed"`
	Version     string `json:"version"`   // release name, e.g. "1.21" or "1.16.1"
	Dimension   string `json:"dimension"` // "overworld", "nether" or "end"
	LargeBiomes bool   `json:"large_biomes"`
	MaxCache    int    `json:"max_cache"` // bulk query cell limit (0 = gen default)
	Output      string `json:"output"`    // "json" or "pretty"
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:   mc.Newest.String(),
		Dimension: mc.Overworld.String(),
		MaxCache:  gen.DefaultMaxCache,
		Output:    "json",
	}
}

// Merge copies the world settings of a loaded seedmap config file into
// cfg. A setting named in set, keyed by its command line flag such as
// "seed" or "max-cache", was given on the command line and keeps its value
// in cfg.
func Merge(cfg *Config, fromFile *Config, set map[string]bool) {
	if !set["seed"] {
		cfg.Seed = fromFile.Seed
	}
	if !set["version"] {
		cfg.Version = fromFile.Version
	}
	if !set["dim"] {
		cfg.Dimension = fromFile.Dimension
	}
	if !set["large"] {
		cfg.LargeBiomes = fromFile.LargeBiomes
	}
	if !set["max-cache"] {
		cfg.MaxCache = fromFile.MaxCache
	}
	if !set["output"] {
		cfg.Output = fromFile.Output
	}
}

// World is a Config resolved into engine types.
type World struct {
	Seed     uint64
	Version  mc.Version
	Dim      mc.Dimension
	Flags    gen.Flag
	MaxCache int
}

// Resolve parses the textual fields and checks the rest.
func (c *Config) Resolve() (World, error) {
	v, err := mc.ParseVersion(c.Version)
	if err != nil {
		return World{}, fmt.Errorf("config version: %w", err)
	}
	dim, err := mc.ParseDimension(c.Dimension)
	if err != nil {
		return World{}, fmt.Errorf("config dimension: %w", err)
	}
	if c.MaxCache < 0 {
		return World{}, fmt.Errorf("config max_cache %d: must not be negative", c.MaxCache)
	}
	switch c.Output {
	case "json", "pretty":
	default:
		return World{}, fmt.Errorf("config output %q: want json or pretty", c.Output)
	}

	w := World{Seed: uint64(c.Seed), Version: v, Dim: dim, MaxCache: c.MaxCache}
	if c.LargeBiomes {
		w.Flags |= gen.LargeBiomes
	}
	return w, nil
}

// Generator sets up and seeds a generator for the resolved world.
func (w World) Generator() (*gen.Generator, error) {
	g, err := gen.Setup(w.Version, w.Flags)
	if err != nil {
		return nil, err
	}
	if w.MaxCache > 0 {
		g.MaxCache = w.MaxCache
	}
	if err := g.ApplySeed(w.Dim, w.Seed); err != nil {
		return nil, err
	}
	return g, nil
}
