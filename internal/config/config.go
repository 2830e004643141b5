// Package config provides YAML-based configuration loading for the aztec
// generator, viewer and server.
package config

// Config contains all configuration for the aztec tool.
type Config struct {
	Generation GenerationConfig `yaml:"generation"`
	Viewer     ViewerConfig     `yaml:"viewer"`
	Storage    StorageConfig    `yaml:"storage"`
	Log        LogConfig        `yaml:"log"`
	Server     ServerConfig     `yaml:"server"`
}

// GenerationConfig defines default engine parameters.
type GenerationConfig struct {
	Order int    `yaml:"order"` // Number of shuffle iterations
	Seed  string `yaml:"seed"`  // Empty = random 6-character seed
}

// ViewerConfig defines playback parameters for the terminal viewer.
type ViewerConfig struct {
	FPS      int         `yaml:"fps"`      // Playback ticks per second
	Autoplay bool        `yaml:"autoplay"` // Start playing immediately
	ShowIDs  bool        `yaml:"show_ids"` // Label dominoes with id digits
	Colors   ColorConfig `yaml:"colors"`
}

// ColorConfig maps slide directions to ANSI 256-color codes.
type ColorConfig struct {
	Up    string `yaml:"up"`
	Right string `yaml:"right"`
	Down  string `yaml:"down"`
	Left  string `yaml:"left"`
	Empty string `yaml:"empty"`
}

// StorageConfig defines where generation runs are persisted.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Log file used while a full-screen view is open
}

// ServerConfig defines the SSH viewer server.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKeyPath        string `yaml:"host_key_path"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
	MaxOrder           int    `yaml:"max_order"` // Largest order a session may request
}
