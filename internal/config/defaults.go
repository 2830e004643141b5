package config

import (
	_ "embed"
)

//go:embed defaults/aztec.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Generation: GenerationConfig{
			Order: 10,
			Seed:  "",
		},
		Viewer: ViewerConfig{
			FPS:      4,
			Autoplay: true,
			ShowIDs:  false,
			Colors: ColorConfig{
				Up:    "3",  // yellow
				Right: "4",  // blue
				Down:  "1",  // red
				Left:  "2",  // green
				Empty: "240", // gray
			},
		},
		Storage: StorageConfig{
			DBPath: "~/.aztec/runs.db",
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.aztec/aztec.log",
		},
		Server: ServerConfig{
			Address:            ":23235",
			HostKeyPath:        "",
			IdleTimeoutMinutes: 30,
			MaxOrder:           40,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultYAML
}
