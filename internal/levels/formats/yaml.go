// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/fdfdjfk3/box-pushing-game/internal/core"
	"github.com/fdfdjfk3/box-pushing-game/internal/game"
)

// YAMLLevel is the on-disk YAML structure for a level file.
type YAMLLevel struct {
	ID     string     `yaml:"id"`
	Name   string     `yaml:"name"`
	Flavor string     `yaml:"flavor,omitempty"`
	Spawn  YAMLPoint  `yaml:"spawn"`
	Walls  []YAMLWall `yaml:"walls,omitempty"`
	Tiles  []YAMLTile `yaml:"tiles,omitempty"`
}

// YAMLPoint is a grid coordinate.
type YAMLPoint struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// YAMLWall is a straight run of wall tiles: origin, direction, length.
type YAMLWall struct {
	X   int    `yaml:"x"`
	Y   int    `yaml:"y"`
	Dir string `yaml:"dir"` // up, down, left, right
	Len int    `yaml:"len"`
}

// YAMLTile is a single tile. Link is the button/door group; a door
// without a link is permanently unlinked. Open is the initial door state.
type YAMLTile struct {
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
	Type string `yaml:"type"` // wall, box, button, door, goal
	Link *int   `yaml:"link,omitempty"`
	Open bool   `yaml:"open,omitempty"`
}

// ParseYAML parses a YAML level file into a level template.
func ParseYAML(data []byte) (game.Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return game.Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return game.Level{}, fmt.Errorf("level file has no id")
	}

	var tiles []game.Tile

	for _, w := range yl.Walls {
		dir, err := parseDir(w.Dir)
		if err != nil {
			return game.Level{}, fmt.Errorf("wall at (%d,%d): %w", w.X, w.Y, err)
		}
		if w.Len <= 0 {
			return game.Level{}, fmt.Errorf("wall at (%d,%d): non-positive length %d", w.X, w.Y, w.Len)
		}
		pos := core.P(w.X, w.Y)
		for i := 0; i < w.Len; i++ {
			tiles = append(tiles, game.Tile{Pos: pos, Type: game.Wall()})
			pos = pos.Step(dir)
		}
	}

	for _, t := range yl.Tiles {
		tt, err := parseTileType(t)
		if err != nil {
			return game.Level{}, fmt.Errorf("tile at (%d,%d): %w", t.X, t.Y, err)
		}
		tiles = append(tiles, game.Tile{Pos: core.P(t.X, t.Y), Type: tt})
	}

	name := yl.Name
	if name == "" {
		name = yl.ID
	}

	return game.NewLevel(yl.ID, name, tiles, core.P(yl.Spawn.X, yl.Spawn.Y), yl.Flavor), nil
}

func parseDir(s string) (core.Direction, error) {
	switch s {
	case "up":
		return core.DirUp, nil
	case "down":
		return core.DirDown, nil
	case "left":
		return core.DirLeft, nil
	case "right":
		return core.DirRight, nil
	default:
		return core.DirUp, fmt.Errorf("unknown direction %q", s)
	}
}

func parseTileType(t YAMLTile) (game.TileType, error) {
	switch t.Type {
	case "wall":
		return game.Wall(), nil
	case "box":
		return game.PushBox(), nil
	case "goal":
		return game.Goal(), nil
	case "button":
		if t.Link == nil {
			return game.TileType{}, fmt.Errorf("button requires a link id")
		}
		return game.Button(game.LinkID(*t.Link)), nil
	case "door":
		if t.Link == nil {
			return game.UnlinkedDoor(t.Open), nil
		}
		return game.Door(game.LinkID(*t.Link), t.Open), nil
	default:
		return game.TileType{}, fmt.Errorf("unknown tile type %q", t.Type)
	}
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
