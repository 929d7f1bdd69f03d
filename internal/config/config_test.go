package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/OCharnyshevich/biomefinder/pkg/gen"
	"github.com/OCharnyshevich/biomefinder/pkg/mc"
)

func TestMerge(t *testing.T) {
	flags := Config{Seed: 7, Version: "1.18", Dimension: "overworld", MaxCache: 100, Output: "json"}
	fromFile := Config{
		Seed:        1234567890,
		Version:     "1.20",
		Dimension:   "nether",
		LargeBiomes: true,
		MaxCache:    4096,
		Output:      "pretty",
	}

	tests := []struct {
		name string
		set  map[string]bool
		want Config
	}{
		{"file only", nil, fromFile},
		{
			"seed and version on the command line",
			map[string]bool{"seed": true, "version": true},
			Config{Seed: 7, Version: "1.18", Dimension: "nether", LargeBiomes: true, MaxCache: 4096, Output: "pretty"},
		},
		{
			"everything on the command line",
			map[string]bool{"seed": true, "version": true, "dim": true, "large": true, "max-cache": true, "output": true},
			flags,
		},
		{
			"unrelated flag",
			map[string]bool{"op": true, "x": true},
			fromFile,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := flags
			file := fromFile
			Merge(&cfg, &file, tt.set)
			if cfg != tt.want {
				t.Errorf("merged = %+v, want %+v", cfg, tt.want)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = -1
	cfg.LargeBiomes = true

	w, err := cfg.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	want := World{Seed: 1<<64 - 1, Version: mc.V1_21_WD, Dim: mc.Overworld, Flags: gen.LargeBiomes, MaxCache: gen.DefaultMaxCache}
	if w != want {
		t.Errorf("Resolve = %+v, want %+v", w, want)
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"version", func(c *Config) { c.Version = "2.0" }},
		{"dimension", func(c *Config) { c.Dimension = "aether" }},
		{"cache", func(c *Config) { c.MaxCache = -1 }},
		{"output", func(c *Config) { c.Output = "xml" }},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		if _, err := cfg.Resolve(); err == nil {
			t.Errorf("%s: Resolve accepted %+v", tt.name, *cfg)
		}
	}
}

func TestWorldGenerator(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Dimension = "end"
	cfg.MaxCache = 1000
	w, err := cfg.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	g, err := w.Generator()
	if err != nil {
		t.Fatal(err)
	}
	if !g.Seeded() || g.Dim != mc.End || g.MaxCache != 1000 {
		t.Errorf("generator = %+v", g)
	}

	cfg.Version = "1.6"
	cfg.Dimension = "overworld"
	if w, err = cfg.Resolve(); err != nil {
		t.Fatal(err)
	}
	if _, err := w.Generator(); err == nil {
		t.Error("1.6 overworld generator accepted")
	}
}

func TestLoadSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seedmap.json")

	cfg := DefaultConfig()
	loaded, err := Load(path, cfg)
	if err != nil || loaded {
		t.Fatalf("Load missing file = %v, %v", loaded, err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("missing file changed config: %+v", *cfg)
	}

	cfg.Seed = 42
	cfg.Dimension = "nether"
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file left behind: %v", err)
	}

	got := DefaultConfig()
	if loaded, err := Load(path, got); err != nil || !loaded {
		t.Fatalf("Load = %v, %v", loaded, err)
	}
	if *got != *cfg {
		t.Errorf("round trip = %+v, want %+v", *got, *cfg)
	}

	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path, got); err == nil {
		t.Error("Load accepted malformed JSON")
	}
}
