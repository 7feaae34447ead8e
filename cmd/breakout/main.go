// breakout is a two-level Breakout for the terminal, a desktop window or SSH.
//
// Usage:
//
//	breakout list            - List available games
//	breakout play [game]     - Play in the terminal
//	breakout window [game]   - Play in a desktop window
//	breakout serve           - Start SSH server for remote play
//	breakout config          - Print the default configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Load a YAML or TOML config file
//	--debug             - Log phase changes
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagDebug   bool
	flagLogFile string
)

// logger is configured by the root command before any subcommand runs.
var logger = log.New(io.Discard)

// logFile is closed after the subcommand finishes.
var logFile *os.File

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - Bounce a ball, clear the wall",
	Long: `Breakout is a two-level brick breaker. Level 1 serves one ball per try;
level 2 serves two linked balls. Five rounds are played per level and every
round is recorded on the scoreboard.

Available commands:
  list     - Show all available games
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  config   - Print the default configuration

Examples:
  breakout play
  breakout play --seed 42 --log-file breakout.log --debug
  breakout window --scale 1.5
  breakout serve --ssh :2222
  breakout config > breakout.yaml`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
	PersistentPostRun: func(*cobra.Command, []string) {
		if logFile != nil {
			logFile.Close()
		}
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML game config")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogging builds the shared logger and hands it to the game.
// The terminal host owns stdout and stderr, so it only logs to a file.
func setupLogging(cmd *cobra.Command, _ []string) error {
	var out io.Writer = os.Stderr
	if cmd.Name() == playCmd.Name() {
		out = io.Discard
	}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		out = f
	}

	logger = newLogger(out, flagDebug)
	breakout.SetLogger(logger)
	breakout.SetConfigPath(flagConfig)
	return nil
}

// newLogger creates the CLI logger.
func newLogger(w io.Writer, debug bool) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout",
	})
	if debug {
		l.SetLevel(log.DebugLevel)
	}
	return l
}
