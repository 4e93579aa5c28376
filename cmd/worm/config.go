package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-worm/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, after the config file
and flags are applied, as YAML.

Config files are searched in order:
  --config <path>
  ~/.worm/config.yaml
  ./configs/worm.yaml
  built-in defaults

Examples:
  worm config
  worm config --speed hard
  worm config --defaults > ~/.worm/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default config file")
}

func runConfig(cmd *cobra.Command, _ []string) {
	if flagDefaults {
		//nolint:errcheck // Best-effort write to stdout
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, source, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}

	if source == "" {
		source = "built-in defaults"
	}
	fmt.Printf("# source: %s\n", source)
	//nolint:errcheck // Best-effort write to stdout
	os.Stdout.Write(data)
}
