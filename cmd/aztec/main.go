// aztec generates random domino tilings of the Aztec diamond by domino
// shuffling and plays them back in the terminal.
//
// Usage:
//
//	aztec generate           - Generate a run and write its event log
//	aztec view [file]        - Play back a run (new, from a file, or saved)
//	aztec menu               - Interactive session: generate or browse runs
//	aztec runs               - List, show, browse and delete saved runs
//	aztec formats            - List record formats
//	aztec serve              - Start SSH server for remote viewing
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.aztec, ./configs, built-in)
//	--db <path>         - Runs database (default: ~/.aztec/runs.db)
//	--log-level <level> - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/aztec-shuffle/internal/config"
	"github.com/vovakirdan/aztec-shuffle/internal/platform/tui"
	"github.com/vovakirdan/aztec-shuffle/internal/storage"

	// Import codecs to register them
	_ "github.com/vovakirdan/aztec-shuffle/internal/codec"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string

	// Resolved in PersistentPreRunE
	cfg    config.Config
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "aztec",
	Short: "Random Aztec diamond tilings by domino shuffling",
	Long: `aztec grows a random domino tiling of the Aztec diamond one order at a
time. Every iteration destroys colliding dominoes, slides the rest one step
and fills the freed 2x2 blocks with new pairs chosen by a seeded coin flip.
The full history is written as an event log that replays exactly.

Available commands:
  generate - Generate a run and write its event log
  view     - Play back a run in the terminal
  menu     - Interactive session
  runs     - Manage saved runs
  formats  - List record formats
  serve    - Start SSH server for remote viewing

Examples:
  aztec generate -n 20 --seed HD7XEC --out run.json
  aztec view run.json
  aztec view -n 30
  aztec runs
  aztec serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to runs database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(formatsCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup loads configuration, applies global flag overrides and builds the logger.
func setup(_ *cobra.Command, _ []string) error {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	cfg = loaded

	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}

	level, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "aztec",
		Level:           level,
	})
	return nil
}

// openStore opens the runs database. Interactive commands continue without
// storage when it cannot be opened.
func openStore(required bool) (*storage.Store, error) {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		if required {
			return nil, err
		}
		logger.Warn("could not open runs database", "error", err)
		return nil, nil
	}
	return store, nil
}

// viewLogger returns the logger for full-screen views. Lines written to the
// terminal would land on top of the alt screen, so it writes to log.file
// instead, or nowhere when that file cannot be opened. The returned func
// closes the file.
func viewLogger() (*log.Logger, func()) {
	discard := log.New(io.Discard)
	if cfg.Log.File == "" {
		return discard, func() {}
	}

	path, err := config.ExpandHome(cfg.Log.File)
	if err != nil {
		logger.Warn("view logging disabled", "error", err)
		return discard, func() {}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		logger.Warn("view logging disabled", "error", err)
		return discard, func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		logger.Warn("view logging disabled", "error", err)
		return discard, func() {}
	}

	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "aztec",
		Level:           logger.GetLevel(),
	})
	return l, func() { f.Close() }
}

// palette builds the viewer palette from configuration.
func palette() tui.Palette {
	return tui.NewPalette(cfg.Viewer.Colors)
}
