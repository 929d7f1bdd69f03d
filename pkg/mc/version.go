// Package mc defines the game version and dimension enumerations shared by the
// generation packages.
package mc

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-version"
)

// Version identifies a game release. Values are ordered so that later releases
// compare greater.
type Version int

const (
	Undef Version = iota
	B1_7
	B1_8
	V1_0
	V1_1
	V1_2
	V1_3
	V1_4
	V1_5
	V1_6
	V1_7
	V1_8
	V1_9
	V1_10
	V1_11
	V1_12
	V1_13
	V1_14
	V1_15
	V1_16_1
	V1_16
	V1_17
	V1_18
	V1_19_2
	V1_19
	V1_20
	V1_21_1
	V1_21_3
	V1_21_WD

	Newest = V1_21_WD
)

var versionNames = map[Version]string{
	B1_7:     "b1.7",
	B1_8:     "b1.8",
	V1_0:     "1.0",
	V1_1:     "1.1",
	V1_2:     "1.2",
	V1_3:     "1.3",
	V1_4:     "1.4",
	V1_5:     "1.5",
	V1_6:     "1.6",
	V1_7:     "1.7",
	V1_8:     "1.8",
	V1_9:     "1.9",
	V1_10:    "1.10",
	V1_11:    "1.11",
	V1_12:    "1.12",
	V1_13:    "1.13",
	V1_14:    "1.14",
	V1_15:    "1.15",
	V1_16_1:  "1.16.1",
	V1_16:    "1.16",
	V1_17:    "1.17",
	V1_18:    "1.18",
	V1_19_2:  "1.19.2",
	V1_19:    "1.19",
	V1_20:    "1.20",
	V1_21_1:  "1.21.1",
	V1_21_3:  "1.21.3",
	V1_21_WD: "1.21",
}

// Valid reports whether v is a known release.
func (v Version) Valid() bool {
	return v > Undef && v <= Newest
}

func (v Version) String() string {
	if s, ok := versionNames[v]; ok {
		return s
	}
	return fmt.Sprintf("Version(%d)", int(v))
}

// releases maps the first patch of each release line to its Version,
// newest first.
var releases = func() []release {
	lines := []struct {
		first string
		v     Version
	}{
		{"1.22", Undef},
		{"1.21.4", V1_21_WD},
		{"1.21.2", V1_21_3},
		{"1.21", V1_21_1},
		{"1.20", V1_20},
		{"1.19.3", V1_19},
		{"1.19", V1_19_2},
		{"1.18", V1_18},
		{"1.17", V1_17},
		{"1.16.2", V1_16},
		{"1.16", V1_16_1},
	}
	out := make([]release, 0, len(lines)+16)
	for _, l := range lines {
		out = append(out, release{version.Must(version.NewVersion(l.first)), l.v})
	}
	for v := V1_15; v >= V1_0; v-- {
		out = append(out, release{version.Must(version.NewVersion(versionNames[v])), v})
	}
	return out
}()

type release struct {
	first *version.Version
	v     Version
}

// ParseVersion maps a release string such as "1.18" or "b1.8" to a Version.
// "1.16" and "1.19" name the last patch of that minor line; "1.21" is the
// winter drop. Other patch releases map to the line they belong to.
func ParseVersion(s string) (Version, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for v, name := range versionNames {
		if name == s {
			return v, nil
		}
	}
	if s == "newest" {
		return Newest, nil
	}

	pv, err := version.NewVersion(s)
	if err != nil || pv.Prerelease() != "" {
		return Undef, fmt.Errorf("unknown version %q", s)
	}
	for _, r := range releases {
		if pv.GreaterThanOrEqual(r.first) {
			if r.v == Undef {
				break
			}
			return r.v, nil
		}
	}
	return Undef, fmt.Errorf("unknown version %q", s)
}
