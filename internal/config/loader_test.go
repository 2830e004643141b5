package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(GetDefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded defaults drift from DefaultConfig():\n%+v\n%+v", cfg, DefaultConfig())
	}
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("generation:\n  order: 25\n  seed: HD7XEC\nlog:\n  level: debug\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Generation.Order != 25 || cfg.Generation.Seed != "HD7XEC" {
		t.Errorf("generation not applied: %+v", cfg.Generation)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected debug level, got %q", cfg.Log.Level)
	}
	// Untouched sections keep their defaults.
	if cfg.Viewer != DefaultConfig().Viewer {
		t.Errorf("viewer section changed: %+v", cfg.Viewer)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	testCases := []struct {
		name string
		yaml string
	}{
		{"zero order", "generation:\n  order: 0\n"},
		{"negative fps", "viewer:\n  fps: -1\n"},
		{"bad level", "log:\n  level: loud\n"},
		{"zero max order", "server:\n  max_order: 0\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "cfg.yaml")
			if err := os.WriteFile(path, []byte(tc.yaml), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		input    string
		expected log.Level
	}{
		{"", log.InfoLevel},
		{"debug", log.DebugLevel},
		{"WARN", log.WarnLevel},
		{"error", log.ErrorLevel},
	}

	for _, tc := range testCases {
		got, err := ParseLevel(tc.input)
		if err != nil {
			t.Errorf("ParseLevel(%q) error: %v", tc.input, err)
			continue
		}
		if got != tc.expected {
			t.Errorf("ParseLevel(%q) = %v, expected %v", tc.input, got, tc.expected)
		}
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandHome("~/.aztec/runs.db")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, ".aztec", "runs.db"); got != want {
		t.Errorf("ExpandHome = %q, expected %q", got, want)
	}

	if got, _ := ExpandHome("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute path changed to %q", got)
	}
}
