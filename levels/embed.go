package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

const Default = "fario"

var ErrNoPlatforms = errors.New("level has no platforms")

// Level is the static layout of one world: platforms, the player spawn and
// the enemies present at startup, in the order they are listed.
type Level struct {
	Width     int        `json:"width"`
	Height    int        `json:"height"`
	SpawnX    float64    `json:"spawn_x"`
	SpawnY    float64    `json:"spawn_y"`
	Platforms []Platform `json:"platforms"`
	Enemies   []Enemy    `json:"enemies,omitempty"`
}

type Platform struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Enemy places an enemy. Zero W or H falls back to the enemy prefab size.
type Enemy struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w,omitempty"`
	H float64 `json:"h,omitempty"`
}

// Load reads a level by basename; the .json extension is optional.
func Load(name string) (*Level, error) {
	return LoadLevelFromFS(LevelsFS, name)
}

func LoadLevelFromFS(fsys fs.FS, name string) (*Level, error) {
	clean := strings.TrimPrefix(path.Clean(name), "levels/")
	if !strings.HasSuffix(clean, ".json") {
		clean += ".json"
	}
	data, err := fs.ReadFile(fsys, clean)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if lvl.Width <= 0 || lvl.Height <= 0 {
		return nil, fmt.Errorf("invalid level dimensions: %dx%d", lvl.Width, lvl.Height)
	}
	if len(lvl.Platforms) == 0 {
		return nil, ErrNoPlatforms
	}
	for i, p := range lvl.Platforms {
		if p.W <= 0 || p.H <= 0 {
			return nil, fmt.Errorf("platform %d: invalid size %vx%v", i, p.W, p.H)
		}
	}
	return &lvl, nil
}

// List returns the basenames of all embedded levels, sorted.
func List() ([]string, error) {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".json" {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(names)
	return names, nil
}
