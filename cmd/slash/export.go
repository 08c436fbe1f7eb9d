package main

import (
	"fmt"
	"os"
	"time"

	"github.com/martinlindhe/imgcat/lib"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slash/internal/config"
	"github.com/vovakirdan/tui-slash/internal/export"
	"github.com/vovakirdan/tui-slash/internal/games/slash"
)

var (
	flagOut   string
	flagScale float64
	flagCuts  int
	flagBalls int
	flagShow  bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render a demo board to PNG",
	Long: `Cut a fresh field with random slashes and draw the result as a PNG.
The same --seed always gives the same picture.

With --show, the image is also printed inline (iTerm2 image protocol).

Examples:
  slash export
  slash export --cuts 8 --balls 3 --out board.png
  slash export --seed 42 --scale 4 --show`,
	Run: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&flagOut, "out", "slash.png", "Output PNG path")
	exportCmd.Flags().Float64Var(&flagScale, "scale", 3, "Pixels per area unit")
	exportCmd.Flags().IntVar(&flagCuts, "cuts", 5, "Number of random slashes")
	exportCmd.Flags().IntVar(&flagBalls, "balls", 2, "Balls to place before cutting")
	exportCmd.Flags().BoolVar(&flagShow, "show", false, "Print the image in the terminal")
	exportCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runExport(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadSlash(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	board, made := slash.DemoBoard(cfg, seed, flagCuts, flagBalls)

	if err := export.WritePNG(board, flagScale, flagOut); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing image: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s: %d cuts, %.0f%% of the field left (seed %d)\n",
		flagOut, made, board.Area.Area()/board.Start.Area()*100, seed)

	if flagShow {
		if err := imgcat.CatFile(flagOut, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error showing image: %v\n", err)
		}
	}
}
