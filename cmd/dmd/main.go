// Command dmd downloads the reference generator sources and optionally
// checks the structure salts against them.
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	get "github.com/hashicorp/go-getter"

	"github.com/OCharnyshevich/biomefinder/pkg/finder"
	"github.com/OCharnyshevich/biomefinder/pkg/mc"
)

func main() {
	var (
		base  = flag.String("base", "https://github.com/Cubitect/cubiomes.git", "repository url")
		ref   = flag.String("ref", "master", "branch, tag or commit")
		out   = flag.String("o", "./reference", "output dir path")
		check = flag.Bool("check", true, "check structure salts against the download")
	)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if *out == "" || *ref == "" {
		log.Error("output dir and ref required")
		os.Exit(2)
	}

	path := filepath.Join(*out, "cubiomes-"+*ref)
	if err := os.RemoveAll(path); err != nil {
		log.Error("clean output", "path", path, "error", err)
		os.Exit(1)
	}

	log.Info("start downloading reference", "path", path)
	url := fmt.Sprintf("git::%s?ref=%s", *base, *ref)
	if err := get.Get(path, url); err != nil {
		log.Error("download", "url", url, "error", err)
		os.Exit(1)
	}
	log.Info("done downloading reference", "path", path)

	if !*check {
		return
	}
	missing, err := checkSalts(path)
	if err != nil {
		log.Error("check salts", "error", err)
		os.Exit(1)
	}
	for _, m := range missing {
		log.Warn("salt not found in reference", "structure", m.s, "salt", m.salt)
	}
	if len(missing) > 0 {
		os.Exit(1)
	}
	log.Info("all structure salts found")
}

type missingSalt struct {
	s    finder.Structure
	salt uint64
}

// checkSalts reports every non-zero salt of the newest configs that does
// not appear in the reference C sources under dir.
func checkSalts(dir string) ([]missingSalt, error) {
	var src strings.Builder
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || (!strings.HasSuffix(p, ".c") && !strings.HasSuffix(p, ".h")) {
			return nil
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		src.Write(data)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read sources: %w", err)
	}
	text := src.String()

	var missing []missingSalt
	seen := make(map[uint64]bool)
	for s := finder.Feature; s <= finder.TrialChambers; s++ {
		for _, v := range []mc.Version{mc.V1_12, mc.V1_17, mc.Newest} {
			c, err := finder.GetConfig(s, v)
			if err != nil || c.Salt == 0 || seen[c.Salt] {
				continue
			}
			seen[c.Salt] = true
			if !strings.Contains(text, strconv.FormatUint(c.Salt, 10)) {
				missing = append(missing, missingSalt{s, c.Salt})
			}
		}
	}
	return missing, nil
}
