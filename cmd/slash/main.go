// slash is a terminal arcade game: cut the field down from a corner with
// straight slashes while balls bounce around inside it.
//
// Usage:
//
//	slash list              - List game modes
//	slash play [mode]       - Play a mode (default: slash)
//	slash menu              - Pick a mode interactively
//	slash serve             - Start SSH server for remote play
//	slash scores [mode]     - Show high scores or recent runs
//	slash export            - Render a demo board to PNG
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.slash/scores.db)
//	--log <path>    - Write debug logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slash/internal/games/slash"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string

	// logFile is the open --log target, closed after the command runs.
	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	closeLogFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slash",
	Short: "Slash - cut the field, dodge the balls",
	Long: `Slash is a terminal arcade game. Each slash starts at the anchor corner
and runs to the pointer's exit on the far side; the cut-off triangle is thrown
away together with any balls inside it. Touch a ball while slashing and the
run is over. Cut the field below the target to win.

Available commands:
  list     - Show game modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores and recent runs
  export   - Render a demo board to PNG

Examples:
  slash play
  slash play endless --difficulty hard
  slash menu
  slash serve --ssh :2222
  slash export --cuts 6 --out board.png --show`,
	PersistentPreRunE:  setupLogging,
	PersistentPostRunE: closeLogging,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.slash/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write debug logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(exportCmd)
}

// setupLogging sends game debug logs to --log. The terminal belongs to the
// game, so nothing is logged without it.
func setupLogging(_ *cobra.Command, _ []string) error {
	if flagLogPath == "" {
		return nil
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	logFile = f

	slash.SetLogger(log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "slash",
		Level:           log.DebugLevel,
	}))
	return nil
}

// closeLogging closes the --log file once the command is done.
func closeLogging(_ *cobra.Command, _ []string) error {
	if err := closeLogFile(); err != nil {
		return fmt.Errorf("cannot close log file: %w", err)
	}
	return nil
}

// closeLogFile detaches the game logger and closes the log file. It is safe
// to call more than once.
func closeLogFile() error {
	if logFile == nil {
		return nil
	}
	slash.SetLogger(nil)
	err := logFile.Close()
	logFile = nil
	return err
}
