package theme

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

const DefaultAccent = "#625690"

// Palette holds the handful of colours the UI draws with, all as
// "#rrggbb" strings.
type Palette struct {
	Accent     string `json:"accent" yaml:"accent"`
	Background string `json:"background" yaml:"background"`
	Surface    string `json:"surface" yaml:"surface"`
	Text       string `json:"text" yaml:"text"`
	Subtle     string `json:"subtle" yaml:"subtle"`
	Success    string `json:"success" yaml:"success"`
	Warning    string `json:"warning" yaml:"warning"`
	Image      string `json:"image" yaml:"image"`
}

type PaletteOptions struct {
	IsLight    bool
	Background string
}

func labToHex(L, a, b float64) string {
	return colorful.Lab(L/100.0, a, b).Clamped().Hex()
}

// retoneToL keeps the hue of hex while moving its lightness to Ltarget.
func retoneToL(hex string, Ltarget float64) string {
	rgb := mustRGB(hex)
	L, a, b := colorful.Color{R: rgb.R, G: rgb.G, B: rgb.B}.Lab()

	scale := 1.0
	if L != 0 {
		scale = Ltarget / (L * 100.0)
	}
	a2, b2 := a*scale, b*scale

	maxChroma := 0.4
	if h := math.Hypot(a2, b2); h > maxChroma {
		a2 *= maxChroma / h
		b2 *= maxChroma / h
	}

	return labToHex(Ltarget, a2, b2)
}

// GeneratePalette derives the UI palette from a single accent colour.
func GeneratePalette(accent string, opts PaletteOptions) (Palette, error) {
	accent, err := NormalizeHex(accent)
	if err != nil {
		return Palette{}, err
	}
	hsv := RGBToHSV(mustRGB(accent))

	bg := opts.Background
	if bg != "" {
		if bg, err = NormalizeHex(bg); err != nil {
			return Palette{}, err
		}
	} else if opts.IsLight {
		bg = RGBToHex(HSVToRGB(HSV{H: hsv.H, S: math.Min(hsv.S, 0.08), V: 0.97}))
	} else {
		bg = RGBToHex(HSVToRGB(HSV{H: hsv.H, S: math.Min(hsv.S, 0.2), V: 0.1}))
	}

	var textL, surfaceL, subtleL float64
	if opts.IsLight {
		textL, surfaceL, subtleL = 15, 88, 45
	} else {
		textL, surfaceL, subtleL = 92, 20, 62
	}

	p := Palette{
		Background: bg,
		Surface:    retoneToL(accent, surfaceL),
		Text:       EnsureContrast(retoneToL(accent, textL), bg, 7.0, opts.IsLight),
		Subtle:     EnsureContrast(retoneToL(accent, subtleL), bg, 3.0, opts.IsLight),
		Accent:     EnsureContrast(accent, bg, 4.5, opts.IsLight),
		Success:    EnsureContrast(RGBToHex(HSVToRGB(HSV{H: 0.38, S: 0.6, V: 0.85})), bg, 4.5, opts.IsLight),
		Warning:    EnsureContrast(RGBToHex(HSVToRGB(HSV{H: 0.11, S: 0.75, V: 0.95})), bg, 4.5, opts.IsLight),
	}

	// the demo image is drawn in a lighter sibling of the accent so the
	// fade toward the background has room to travel
	imgHue := math.Mod(hsv.H+0.08, 1.0)
	p.Image = EnsureContrast(RGBToHex(HSVToRGB(HSV{H: imgHue, S: math.Max(hsv.S, 0.45), V: 0.9})), bg, 4.5, opts.IsLight)

	return p, nil
}
