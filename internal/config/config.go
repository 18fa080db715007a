// Package config provides YAML-based configuration loading for the
// box-pushing game and its SSH server.
package config

// Config contains all configuration for the game.
type Config struct {
	Player  PlayerConfig  `yaml:"player"`
	Levels  LevelsConfig  `yaml:"levels"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
}

// PlayerConfig defines player presentation parameters.
type PlayerConfig struct {
	Glyph string `yaml:"glyph"` // single rune drawn for the player
}

// LevelsConfig defines where campaign levels come from.
type LevelsConfig struct {
	Dir string `yaml:"dir"` // directory of level files; empty means builtin campaign
}

// StorageConfig defines completion persistence parameters.
type StorageConfig struct {
	DBPath string `yaml:"db_path"` // SQLite database path; empty disables persistence
}

// ServerConfig defines the SSH server listen address.
type ServerConfig struct {
	Host        string `yaml:"host"`
	Port        int    `yaml:"port"`
	HostKeyPath string `yaml:"host_key_path"`
}

// PlayerRune returns the configured player glyph as a rune, or the
// fallback if the config value is empty or multi-rune.
func (c Config) PlayerRune(fallback rune) rune {
	runes := []rune(c.Player.Glyph)
	if len(runes) != 1 {
		return fallback
	}
	return runes[0]
}
