package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-slash/internal/core"
	"github.com/vovakirdan/tui-slash/internal/games/slash"
	"github.com/vovakirdan/tui-slash/internal/platform/tui"
	"github.com/vovakirdan/tui-slash/internal/registry"
	"github.com/vovakirdan/tui-slash/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagPlayer     string
)

var playCmd = &cobra.Command{
	Use:   "play [classic|endless]",
	Short: "Play Slash",
	Long: `Start playing. The mode is "classic" (the default) or "endless"; the
registered IDs "slash" and "slash_endless" work too.

Controls:
  Arrows/WASD  - Move the pointer
  Mouse        - Point, click to slash
  Space/Enter  - Slash toward the pointer
  C            - Clear the pointer
  P            - Pause
  R            - Restart (after the game ends)
  B/Esc        - Leave (after the game ends or while paused)
  Ctrl+S       - Save a screenshot (text and PNG)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower balls, reach 30% to win
  normal - Default settings
  hard   - An extra ball, faster, reach 15% to win
  fixed  - No speed progression

Examples:
  slash play
  slash play endless
  slash play --difficulty hard --player ace
  slash play --config ./my-slash.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name to record runs under (random if empty)")
}

// terminalConfig builds the runtime config from the terminal size and the
// global flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// modeAliases maps short mode names to registered game IDs.
var modeAliases = map[string]string{
	"classic": "slash",
	"endless": "slash_endless",
}

// resolveMode returns the game ID named by args, defaulting to classic.
func resolveMode(args []string) string {
	if len(args) == 0 {
		return "slash"
	}
	if id, ok := modeAliases[args[0]]; ok {
		return id
	}
	return args[0]
}

// applyGameFlags passes --config and --difficulty to the game package.
func applyGameFlags() {
	slash.SetConfigPath(flagConfig)
	slash.SetDifficultyPreset(flagDifficulty)
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := resolveMode(args)

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'slash list' to see available modes.")
		os.Exit(1)
	}

	applyGameFlags()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, terminalConfig(), flagPlayer)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
