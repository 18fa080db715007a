package config

import (
	_ "embed"
)

//go:embed defaults/boxpush.yaml
var defaultConfigYAML []byte

// Default returns the default configuration.
func Default() Config {
	return Config{
		Player: PlayerConfig{
			Glyph: "X",
		},
		Levels: LevelsConfig{
			Dir: "",
		},
		Storage: StorageConfig{
			DBPath: "~/.boxpush/completions.db",
		},
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        2222,
			HostKeyPath: ".ssh/boxpush_ed25519",
		},
	}
}
