package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/AvengeMedia/dankmotion/internal/config"
	"github.com/AvengeMedia/dankmotion/internal/log"
	"github.com/AvengeMedia/dankmotion/internal/theme"
	"github.com/AvengeMedia/dankmotion/internal/tui"
)

var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "dankmotion",
	Short: "Terminal animation showcase",
	Long:  "Four animation demos behind a menu: transition, scale on tap, infinite scale and fade enter/exit",
	Args:  cobra.NoArgs,
	Run:   runTUI,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default ~/.config/dankmotion/config.toml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.Flags().String("screen", "", "Screen to open on start (main, transition, scale, infinite, enter-exit)")
	rootCmd.Flags().Int("fps", 0, "Animation frame rate")
	rootCmd.Flags().String("accent", "", "Accent color the palette is derived from")
	rootCmd.Flags().Bool("light", false, "Use the light palette")
	rootCmd.Flags().String("log-file", "", "Write logs to this file while the UI runs")

	rootCmd.AddCommand(screensCmd, configCmd, paletteCmd, sampleCmd, versionCmd)
}

// loadConfig reads the config file and applies flag overrides shared by
// every command.
func loadConfig(cmd *cobra.Command) config.Config {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Log.Level = level
	}
	if err := log.SetLevel(cfg.Log.Level); err != nil {
		log.Fatalf("Error: %v", err)
	}
	return cfg
}

func runTUI(cmd *cobra.Command, args []string) {
	cfg := loadConfig(cmd)

	if screen, _ := cmd.Flags().GetString("screen"); screen != "" {
		cfg.UI.StartScreen = screen
	}
	if fps, _ := cmd.Flags().GetInt("fps"); fps != 0 {
		cfg.Animation.FPS = fps
	}
	if accent, _ := cmd.Flags().GetString("accent"); accent != "" {
		cfg.UI.Accent = accent
	}
	if cmd.Flags().Changed("light") {
		cfg.UI.Light, _ = cmd.Flags().GetBool("light")
	}
	if logFile, _ := cmd.Flags().GetString("log-file"); logFile != "" {
		cfg.Log.File = logFile
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	start := cfg.StartScreen()

	palette, err := theme.GeneratePalette(cfg.UI.Accent, theme.PaletteOptions{IsLight: cfg.UI.Light})
	if err != nil {
		log.Fatalf("Error generating palette: %v", err)
	}

	if err := log.ToFile(cfg.Log.File); err != nil {
		log.Fatalf("Error: %v", err)
	}
	defer log.Close()

	log.Infof("Starting dankmotion %s on %s screen", Version, start)

	err = tui.Run(tui.Options{
		Start:   start,
		Screens: cfg.ScreenOptions(),
		FPS:     cfg.Animation.FPS,
		Palette: palette,
	})
	if err != nil {
		log.Close()
		log.Fatalf("Error: %v", err)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
