package main

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/AvengeMedia/dankmotion/internal/log"
	"github.com/AvengeMedia/dankmotion/internal/theme"
)

var paletteCmd = &cobra.Command{
	Use:   "palette [hex_color]",
	Short: "Show the UI palette",
	Long:  "Show the palette derived from an accent color (defaults to ui.accent)",
	Args:  cobra.MaximumNArgs(1),
	Run:   runPalette,
}

func init() {
	paletteCmd.Flags().Bool("light", false, "Generate light theme variant")
	paletteCmd.Flags().String("background", "", "Custom background color")
	paletteCmd.Flags().Bool("json", false, "Output as JSON")
}

func runPalette(cmd *cobra.Command, args []string) {
	cfg := loadConfig(cmd)

	accent := cfg.UI.Accent
	if len(args) == 1 {
		accent = args[0]
	}

	isLight := cfg.UI.Light
	if cmd.Flags().Changed("light") {
		isLight, _ = cmd.Flags().GetBool("light")
	}
	background, _ := cmd.Flags().GetString("background")
	asJSON, _ := cmd.Flags().GetBool("json")

	p, err := theme.GeneratePalette(accent, theme.PaletteOptions{
		IsLight:    isLight,
		Background: background,
	})
	if err != nil {
		log.Fatalf("Error generating palette: %v", err)
	}

	if asJSON {
		output, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			log.Fatalf("Error encoding palette: %v", err)
		}
		fmt.Println(string(output))
		return
	}

	entries := []struct {
		name  string
		color string
	}{
		{"accent", p.Accent},
		{"background", p.Background},
		{"surface", p.Surface},
		{"text", p.Text},
		{"subtle", p.Subtle},
		{"success", p.Success},
		{"warning", p.Warning},
		{"image", p.Image},
	}

	for _, e := range entries {
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(e.color)).Render("    ")
		fmt.Printf("%-10s  %s  %s  %5.2f:1\n", e.name, e.color, swatch, theme.ContrastRatio(e.color, p.Background))
	}
}
