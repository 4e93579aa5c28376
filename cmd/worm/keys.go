package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-worm/internal/input"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List key bindings",
	Long:  `Shows the effective key bindings, including any set in the config file.`,
	Args:  cobra.NoArgs,
	Run:   runKeys,
}

func runKeys(cmd *cobra.Command, _ []string) {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	km := input.NewKeyMap(cfg.Keys)

	fmt.Println("Key bindings:")
	fmt.Println()

	fmt.Printf("  %-8s  %s\n", "Action", "Keys")
	fmt.Printf("  %-8s  %s\n", "------", "----")
	for _, group := range km.FullHelp() {
		for _, b := range group {
			if !b.Enabled() {
				continue
			}
			fmt.Printf("  %-8s  %s\n", b.Help().Desc, strings.Join(b.Keys(), ", "))
		}
	}
}
