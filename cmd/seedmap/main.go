// Command seedmap answers biome, height and structure queries for a world
// seed and prints the result as one JSON document.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/mitchellh/go-homedir"
	"golang.org/x/sync/errgroup"

	"github.com/OCharnyshevich/biomefinder/internal/config"
	"github.com/OCharnyshevich/biomefinder/pkg/biome"
	"github.com/OCharnyshevich/biomefinder/pkg/finder"
	"github.com/OCharnyshevich/biomefinder/pkg/gen"
)

type query struct {
	op         string
	scale      int
	x, y, z    int
	sx, sy, sz int
	structure  string
	regX, regZ int
	count      int
	variants   uint
}

func main() {
	cfg := config.DefaultConfig()
	var (
		q          query
		configPath string
		savePath   string
		outPath    string
		verbose    bool
	)

	flag.StringVar(&q.op, "op", "biome", "operation: biome, range, height, config, pos, viable, strongholds, chunkseed, settings")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "world seed")
	flag.StringVar(&cfg.Version, "version", cfg.Version, "game version, e.g. 1.21 or 1.16.1")
	flag.StringVar(&cfg.Dimension, "dim", cfg.Dimension, "dimension: overworld, nether or end")
	flag.BoolVar(&cfg.LargeBiomes, "large", cfg.LargeBiomes, "large biomes world")
	flag.IntVar(&cfg.MaxCache, "max-cache", cfg.MaxCache, "largest bulk query in cells")
	flag.StringVar(&cfg.Output, "output", cfg.Output, "output format: json or pretty")
	flag.IntVar(&q.scale, "scale", 4, "sample scale: 1, 4, 16, 64 or 256")
	flag.IntVar(&q.x, "x", 0, "x coordinate")
	flag.IntVar(&q.y, "y", 64, "y coordinate")
	flag.IntVar(&q.z, "z", 0, "z coordinate")
	flag.IntVar(&q.sx, "sx", 16, "range size along x")
	flag.IntVar(&q.sy, "sy", 1, "range size along y")
	flag.IntVar(&q.sz, "sz", 16, "range size along z")
	flag.StringVar(&q.structure, "structure", "village", "structure type")
	flag.IntVar(&q.regX, "regx", 0, "region x")
	flag.IntVar(&q.regZ, "regz", 0, "region z")
	flag.UintVar(&q.variants, "variants", 0, "village variant bits for viable and pos, 0 for any")
	flag.IntVar(&q.count, "count", 1, "regions per side for pos, strongholds to locate for strongholds")
	flag.StringVar(&configPath, "config", "", "JSON config file, ~ allowed; explicit flags override it")
	flag.StringVar(&savePath, "save", "", "write the merged config to this file")
	flag.StringVar(&outPath, "out", "", "write the result to this file instead of stdout")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.Parse()

	for _, p := range []*string{&configPath, &savePath, &outPath} {
		expanded, err := homedir.Expand(*p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "expand path %q: %v\n", *p, err)
			os.Exit(2)
		}
		*p = expanded
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	// stdout carries the result document.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if configPath != "" {
		explicit := make(map[string]bool)
		flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
		fromFile := config.DefaultConfig()
		loaded, err := config.Load(configPath, fromFile)
		if err != nil {
			log.Error("load config", "error", err)
			os.Exit(1)
		}
		if loaded {
			config.Merge(cfg, fromFile, explicit)
			log.Info("loaded config from file", "path", configPath)
		}
	}

	w, err := cfg.Resolve()
	if err != nil {
		log.Error("resolve config", "error", err)
		os.Exit(2)
	}
	if savePath != "" {
		if err := config.Save(savePath, cfg); err != nil {
			log.Error("save config", "error", err)
			os.Exit(1)
		}
		log.Info("saved config", "path", savePath)
	}

	start := time.Now()
	result, err := run(q, cfg, w, log)
	if err != nil {
		log.Error("query failed", "op", q.op, "error", err)
		if errors.Is(err, gen.ErrUnsupported) || errors.Is(err, finder.ErrUnsupported) {
			os.Exit(3)
		}
		os.Exit(1)
	}
	log.Debug("query done", "op", q.op, "elapsed", time.Since(start))

	indent := cfg.Output == "pretty"
	if outPath != "" {
		if err := config.WriteJSON(outPath, result, indent); err != nil {
			log.Error("write result", "error", err)
			os.Exit(1)
		}
		log.Info("wrote result", "path", outPath)
		return
	}
	data, err := config.Marshal(result, indent)
	if err != nil {
		log.Error("encode result", "error", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}

type biomeCell struct {
	ID   biome.ID `json:"id"`
	Name string   `json:"name"`
}

func cell(id biome.ID) biomeCell { return biomeCell{ID: id, Name: id.String()} }

func run(q query, cfg *config.Config, w config.World, log *slog.Logger) (any, error) {
	switch q.op {
	case "settings":
		return cfg, nil
	case "chunkseed":
		return map[string]uint64{"rnd": finder.ChunkGenerateRnd(w.Seed, q.x, q.z)}, nil
	case "config":
		s, err := finder.ParseStructure(q.structure)
		if err != nil {
			return nil, err
		}
		return finder.GetConfig(s, w.Version)
	case "pos":
		return structurePositions(q, w)
	}

	g, err := w.Generator()
	if err != nil {
		return nil, err
	}
	log.Debug("generator ready", "version", g.Version, "dim", g.Dim, "seed", g.Seed, "flags", g.Flags)

	switch q.op {
	case "biome":
		id, err := g.BiomeAt(q.scale, q.x, q.y, q.z)
		if err != nil {
			return nil, err
		}
		return cell(id), nil

	case "range":
		r := gen.Range{Scale: q.scale, X: q.x, Y: q.y, Z: q.z, SX: q.sx, SY: q.sy, SZ: q.sz}
		cache, err := g.AllocCache(r)
		if err != nil {
			return nil, err
		}
		n, err := g.GenBiomes(cache, r)
		if err != nil {
			return nil, err
		}
		log.Debug("generated range", "cells", n, "cache", len(cache))
		return struct {
			Range  gen.Range  `json:"range"`
			Valid  int        `json:"valid"`
			Biomes []biome.ID `json:"biomes"`
		}{r, n, cache[:n]}, nil

	case "height":
		ys, ids, err := g.MapApproxHeight(nil, q.x, q.z, q.sx, q.sz)
		if err != nil {
			return nil, err
		}
		return struct {
			Heights []float32  `json:"heights"`
			Biomes  []biome.ID `json:"biomes"`
		}{ys, ids}, nil

	case "viable":
		s, err := finder.ParseStructure(q.structure)
		if err != nil {
			return nil, err
		}
		ok, err := finder.IsViableStructurePos(g, s, q.x, q.z, finder.Flags(q.variants))
		if err != nil {
			return nil, err
		}
		return map[string]bool{"viable": ok}, nil

	case "strongholds":
		return strongholds(g, w, q.count, log)
	}
	return nil, fmt.Errorf("unknown op %q", q.op)
}

type placement struct {
	Region [2]int     `json:"region"`
	Pos    finder.Pos `json:"pos"`
	Viable *bool      `json:"viable,omitempty"`
}

// structurePositions lists the placements in a count by count block of
// regions, checking biome viability when the dimension can be generated.
func structurePositions(q query, w config.World) ([]placement, error) {
	s, err := finder.ParseStructure(q.structure)
	if err != nil {
		return nil, err
	}
	c, err := finder.GetConfig(s, w.Version)
	if err != nil {
		return nil, err
	}
	var g *gen.Generator
	if c.Dim == w.Dim {
		if g, err = w.Generator(); err != nil && !errors.Is(err, gen.ErrUnsupported) {
			return nil, err
		}
	}

	out := []placement{}
	for rz := q.regZ; rz < q.regZ+q.count; rz++ {
		for rx := q.regX; rx < q.regX+q.count; rx++ {
			pos, ok, err := finder.StructurePos(s, w.Version, w.Seed, rx, rz)
			if err != nil {
				return nil, err
			}
			if ok {
				out = append(out, placement{Region: [2]int{rx, rz}, Pos: pos})
			}
		}
	}
	if g == nil || !g.Seeded() {
		return out, nil
	}

	// A seeded generator serves concurrent readers.
	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i := range out {
		p := &out[i]
		eg.Go(func() error {
			v, err := finder.IsViableStructurePos(g, s, p.Pos.X, p.Pos.Z, finder.Flags(q.variants))
			if err != nil {
				return fmt.Errorf("region %v: %w", p.Region, err)
			}
			p.Viable = &v
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func strongholds(g *gen.Generator, w config.World, count int, log *slog.Logger) ([]finder.StrongholdIter, error) {
	sh, approx := finder.InitFirstStronghold(w.Version, w.Seed&(1<<48-1))
	log.Debug("first stronghold estimate", "x", approx.X, "z", approx.Z)

	out := []finder.StrongholdIter{}
	for i := 0; i < count; i++ {
		more, err := sh.Next(g)
		if err != nil {
			return nil, err
		}
		out = append(out, sh)
		if !more {
			break
		}
	}
	return out, nil
}
