package prefabs

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var PrefabsFS embed.FS

// Dir is where on-disk prefab overrides are looked up. A file there is
// layered over the embedded copy of the same name.
var Dir = "prefabs"

// layers returns the embedded document for name followed by the on-disk
// override, skipping whichever is missing.
func layers(name string) ([][]byte, error) {
	clean := cleanPrefabPath(name)

	var docs [][]byte
	embedded, err := PrefabsFS.ReadFile(clean)
	switch {
	case err == nil:
		docs = append(docs, embedded)
	case !errors.Is(err, fs.ErrNotExist):
		return nil, err
	}

	disk, err := os.ReadFile(diskPrefabPath(clean))
	switch {
	case err == nil:
		docs = append(docs, disk)
	case !errors.Is(err, fs.ErrNotExist):
		return nil, err
	}

	if len(docs) == 0 {
		return nil, fs.ErrNotExist
	}
	return docs, nil
}

// OnDisk reports whether an override for name currently exists under Dir.
func OnDisk(name string) bool {
	info, err := os.Stat(diskPrefabPath(cleanPrefabPath(filepath.Base(name))))
	return err == nil && !info.IsDir()
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		return after
	}
	return s
}

func diskPrefabPath(clean string) string {
	return filepath.Join(Dir, filepath.FromSlash(clean))
}
