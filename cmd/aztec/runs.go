package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/aztec-shuffle/internal/aztec"
	"github.com/vovakirdan/aztec-shuffle/internal/codec"
	"github.com/vovakirdan/aztec-shuffle/internal/platform/tui"
	"github.com/vovakirdan/aztec-shuffle/internal/registry"
	"github.com/vovakirdan/aztec-shuffle/internal/render"
	"github.com/vovakirdan/aztec-shuffle/internal/storage"
)

var (
	flagRunsLimit  int
	flagRunsSeed   string
	flagShowFormat string
	flagShowOut    string
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List saved runs",
	Long: `List runs saved in the database, newest first.

Subcommands:
  show <id>    - Print a run's final tiling or export its record
  delete <id>  - Remove a run
  browse       - Interactive browser; Enter plays the selected run

Examples:
  aztec runs
  aztec runs --seed HD7XEC
  aztec runs show 3
  aztec runs show 3 --format yaml --out run3.yaml
  aztec runs delete 3`,
	Args: cobra.NoArgs,
	RunE: runRunsList,
}

var runsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a saved run",
	Args:  cobra.ExactArgs(1),
	RunE:  runRunsShow,
}

var runsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved run",
	Args:  cobra.ExactArgs(1),
	RunE:  runRunsDelete,
}

var runsBrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse saved runs interactively",
	Args:  cobra.NoArgs,
	RunE:  runRunsBrowse,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Maximum runs to list")
	runsCmd.Flags().StringVar(&flagRunsSeed, "seed", "", "Only list runs made from this seed")

	runsShowCmd.Flags().StringVarP(&flagShowFormat, "format", "f", "", "Write the record in this format instead of the tiling")
	runsShowCmd.Flags().StringVarP(&flagShowOut, "out", "o", "", "Write the record to a file")

	runsCmd.AddCommand(runsShowCmd)
	runsCmd.AddCommand(runsDeleteCmd)
	runsCmd.AddCommand(runsBrowseCmd)
}

func parseRunID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid run id %q", arg)
	}
	return id, nil
}

func runRunsList(_ *cobra.Command, _ []string) error {
	store, err := openStore(true)
	if err != nil {
		return err
	}
	defer store.Close()

	var runs []storage.Run
	if flagRunsSeed != "" {
		runs, err = store.GenerationsBySeed(flagRunsSeed)
	} else {
		runs, err = store.RecentGenerations(flagRunsLimit)
	}
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No runs saved yet.")
		fmt.Println()
		fmt.Println("Run 'aztec generate --save' to save one.")
		return nil
	}

	// Calculate column widths
	maxSeedLen := 4 // "Seed" header
	for _, r := range runs {
		if len(r.Seed) > maxSeedLen {
			maxSeedLen = len(r.Seed)
		}
	}

	fmt.Printf("  %-6s  %-*s  %-5s  %-8s  %s\n", "ID", maxSeedLen, "Seed", "Order", "Dominoes", "Saved")
	fmt.Printf("  %-6s  %-*s  %-5s  %-8s  %s\n", "--", maxSeedLen, "----", "-----", "--------", "-----")
	for _, r := range runs {
		fmt.Printf("  %-6d  %-*s  %-5d  %-8d  %s\n",
			r.ID, maxSeedLen, r.Seed, r.Size, r.Alive(), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetStats(); err == nil {
		fmt.Println()
		fmt.Printf("%d runs from %d seeds, largest order %d\n", stats.Runs, stats.Seeds, stats.MaxSize)
	}
	return nil
}

func runRunsShow(_ *cobra.Command, args []string) error {
	id, err := parseRunID(args[0])
	if err != nil {
		return err
	}

	store, err := openStore(true)
	if err != nil {
		return err
	}
	defer store.Close()

	run, err := store.GenerationByID(id)
	if err != nil {
		return err
	}

	if flagShowOut != "" {
		return codec.Save(flagShowOut, flagShowFormat, run.Record)
	}
	if flagShowFormat != "" {
		c, err := registry.Create(flagShowFormat)
		if err != nil {
			return err
		}
		return c.Encode(os.Stdout, run.Record)
	}

	g, err := aztec.Replay(run.Record)
	if err != nil {
		return err
	}
	fmt.Printf("Run #%d  seed %s  order %d  dominoes %d  saved %s\n\n",
		run.ID, run.Seed, run.Size, run.Alive(), run.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Print(render.RenderASCII(g))
	return nil
}

func runRunsDelete(_ *cobra.Command, args []string) error {
	id, err := parseRunID(args[0])
	if err != nil {
		return err
	}

	store, err := openStore(true)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.DeleteGeneration(id); err != nil {
		return err
	}
	fmt.Printf("Deleted run #%d\n", id)
	return nil
}

func runRunsBrowse(cmd *cobra.Command, _ []string) error {
	store, err := openStore(true)
	if err != nil {
		return err
	}
	defer store.Close()

	vlog, closeLog := viewLogger()
	defer closeLog()

	rc := runtimeConfig(cmd)
	for {
		id, err := tui.RunRunsBrowser(store, rc.ScreenW, rc.ScreenH)
		if err != nil {
			return err
		}
		if id == 0 {
			return nil
		}

		run, err := store.GenerationByID(id)
		if err != nil {
			return err
		}
		if err := tui.Run(rc, tui.WithRecord(run.Record), tui.WithPalette(palette()), tui.WithLogger(vlog)); err != nil {
			return err
		}
		// Loop back to the browser
	}
}
