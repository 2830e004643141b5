package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/aztec-shuffle/internal/aztec"
	"github.com/vovakirdan/aztec-shuffle/internal/codec"
	"github.com/vovakirdan/aztec-shuffle/internal/core"
	"github.com/vovakirdan/aztec-shuffle/internal/platform/tui"
)

var (
	flagViewID    int64
	flagViewOrder int
	flagViewSeed  string
	flagViewFPS   int
)

var viewCmd = &cobra.Command{
	Use:   "view [file]",
	Short: "Play back a run in the terminal",
	Long: `Play back a generation run one iteration per frame.

With a file argument the record is loaded from disk (format by extension).
With --id a saved run is loaded from the database. Otherwise a new run is
generated from --seed and -n and saved to the database.

Controls:
  Space        - Play/pause
  Left/Right   - Previous/next iteration
  g/G          - First/last iteration
  +/-          - Faster/slower
  i            - Show domino ids
  r            - New random seed (generated runs only)
  Ctrl+S       - Save a text screenshot
  ?            - Full help
  Q/Ctrl+C     - Quit

Examples:
  aztec view run.json
  aztec view --id 3
  aztec view -n 30 --seed HD7XEC --fps 8`,
	Args: cobra.MaximumNArgs(1),
	RunE: runView,
}

func init() {
	viewCmd.Flags().Int64Var(&flagViewID, "id", 0, "Saved run id to play back")
	viewCmd.Flags().IntVarP(&flagViewOrder, "size", "n", 0, "Number of iterations for a new run (default from config)")
	viewCmd.Flags().StringVar(&flagViewSeed, "seed", "", "Seed for a new run (default from config, else random)")
	viewCmd.Flags().IntVar(&flagViewFPS, "fps", 0, "Playback rate (default from config)")
}

// runtimeConfig builds the viewer config from configuration, flags and terminal size.
func runtimeConfig(cmd *cobra.Command) core.RuntimeConfig {
	rc := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		FPS:      cfg.Viewer.FPS,
		Seed:     cfg.Generation.Seed,
		Order:    cfg.Generation.Order,
		Autoplay: cfg.Viewer.Autoplay,
		ShowIDs:  cfg.Viewer.ShowIDs,
	}
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	if f := cmd.Flags().Lookup("fps"); f != nil && f.Changed {
		rc.FPS = flagViewFPS
	}
	if f := cmd.Flags().Lookup("size"); f != nil && f.Changed {
		rc.Order = flagViewOrder
	}
	if f := cmd.Flags().Lookup("seed"); f != nil && f.Changed {
		rc.Seed = flagViewSeed
	}
	return rc
}

func runView(cmd *cobra.Command, args []string) error {
	rc := runtimeConfig(cmd)

	var (
		rec  *aztec.GenerationRecord
		opts []tui.ModelOption
	)
	switch {
	case len(args) == 1:
		loaded, err := codec.Load(args[0])
		if err != nil {
			return err
		}
		rec = loaded

	case flagViewID != 0:
		store, err := openStore(true)
		if err != nil {
			return err
		}
		run, err := store.GenerationByID(flagViewID)
		store.Close()
		if err != nil {
			return err
		}
		rec = run.Record

	default:
		store, err := openStore(false)
		if err != nil {
			return err
		}
		if store != nil {
			defer store.Close()
			opts = append(opts, tui.WithStore(store))
		}
	}

	if rec != nil {
		opts = append(opts, tui.WithRecord(rec))
	}

	vlog, closeLog := viewLogger()
	defer closeLog()
	opts = append(opts, tui.WithPalette(palette()), tui.WithLogger(vlog))
	return tui.Run(rc, opts...)
}
