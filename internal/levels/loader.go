package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fdfdjfk3/box-pushing-game/internal/game"
	"github.com/fdfdjfk3/box-pushing-game/internal/levels/formats"
)

// Loader loads level templates from a directory of level files.
type Loader struct {
	Root string
}

// NewLoader creates a loader rooted at the given directory.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files under the root.
// Files that fail to parse are skipped. Levels are sorted by ID so the
// campaign order is deterministic.
func (l *Loader) LoadAll() ([]game.Level, error) {
	var out []game.Level

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !isSupportedExtension(ext) {
			return nil
		}

		lvl, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}

		out = append(out, lvl)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})

	return out, nil
}

// LoadFile loads a single level file.
func (l *Loader) LoadFile(path string) (game.Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return game.Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	lvl, err := parseByExtension(data, ext)
	if err != nil {
		return game.Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	return lvl, nil
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	all, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(all))
	for i, lvl := range all {
		ids[i] = lvl.ID
	}
	return ids, nil
}

func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

func parseByExtension(data []byte, ext string) (game.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return game.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
