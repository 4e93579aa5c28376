// worm is a snake-style arcade game for the terminal.
//
// Usage:
//
//	worm                 - Play
//	worm keys            - List key bindings
//	worm config          - Print the effective configuration as YAML
//
// Global flags:
//
//	--fruit-count, -f <n>  - Fruit on the board at once (default: 5)
//	--worm-length, -w <n>  - Initial worm length (default: 4)
//	--stats, -s            - Show render statistics before exiting
//	--fps <rate>           - Ticks per second (default: 30)
//	--speed <preset>       - easy, normal or hard; overrides --fps
//	--seed <value>         - RNG seed for reproducible fruit placement
//	--placement <name>     - Fruit placement: scan or rejection
//	--config <path>        - Path to a custom config YAML
//	--log-file <path>      - Write logs to a file while playing
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFruitCount int
	flagWormLength int
	flagStats      bool
	flagFPS        int
	flagSpeed      string
	flagSeed       int64
	flagPlacement  string
	flagConfig     string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "worm",
	Short: "Worm - eat fruit, grow, don't bite yourself",
	Long: `Worm is a snake-style arcade game played in the terminal.

Steer the worm with WASD or the arrow keys. Every fruit eaten makes it one
segment longer. Hitting the border or your own body ends the episode; filling
the whole board wins it.

Controls:
  W/A/S/D, arrows - Steer
  P               - Pause
  R               - Retry (after the episode ends)
  Q/Ctrl+C        - Quit

Examples:
  worm
  worm -f 10 -w 8
  worm --speed hard --stats
  worm --seed 42 --placement rejection
  worm --config ./my-worm.yaml --log-file worm.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.IntVarP(&flagFruitCount, "fruit-count", "f", 5, "Fruit on the board at once")
	flags.IntVarP(&flagWormLength, "worm-length", "w", 4, "Initial worm length")
	flags.BoolVarP(&flagStats, "stats", "s", false, "Show render statistics before exiting")
	flags.IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	flags.StringVar(&flagSpeed, "speed", "", "Speed preset: easy, normal, hard (overrides --fps)")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagPlacement, "placement", "scan", "Fruit placement strategy: scan, rejection")
	flags.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	flags.StringVar(&flagLogFile, "log-file", "", "Write logs to this file (logs are discarded otherwise)")

	// Add subcommands
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(configCmd)
}
