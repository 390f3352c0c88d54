package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/AvengeMedia/dankmotion/internal/log"
	"github.com/AvengeMedia/dankmotion/internal/nav"
)

var screensCmd = &cobra.Command{
	Use:   "screens",
	Short: "List screens",
	Long:  "List the screen names accepted by --screen and ui.start_screen",
	Args:  cobra.NoArgs,
	Run:   runScreens,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print effective configuration",
	Long:  "Print the configuration after defaults, config file and DANKMOTION_* environment variables are merged",
	Args:  cobra.NoArgs,
	Run:   runConfig,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("dankmotion %s\n", Version)
	},
}

func runScreens(cmd *cobra.Command, args []string) {
	maxLen := 0
	for _, id := range nav.All() {
		maxLen = max(maxLen, len(id.String()))
	}

	for _, id := range nav.All() {
		fmt.Printf("%-*s  %s\n", maxLen, id, id.Title())
	}
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg := loadConfig(cmd)

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	defer enc.Close()

	if err := enc.Encode(cfg); err != nil {
		log.Fatalf("Error encoding config: %v", err)
	}
}
