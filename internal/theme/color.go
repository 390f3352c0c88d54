package theme

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var ErrInvalidColor = errors.New("invalid color")

type RGB struct {
	R, G, B float64
}

type HSV struct {
	H, S, V float64
}

// NormalizeHex accepts "abc", "#abc", "aabbcc" or "#AABBCC" and returns
// the lowercase six digit form with a leading hash.
func NormalizeHex(hex string) (string, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	c, err := colorful.Hex("#" + s)
	if err != nil || len(s) != 6 {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	return c.Hex(), nil
}

func HexToRGB(hex string) (RGB, error) {
	norm, err := NormalizeHex(hex)
	if err != nil {
		return RGB{}, err
	}
	c, _ := colorful.Hex(norm)
	return RGB{R: c.R, G: c.G, B: c.B}, nil
}

func mustRGB(hex string) RGB {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return RGB{}
	}
	return rgb
}

func RGBToHex(rgb RGB) string {
	r := math.Max(0, math.Min(1, rgb.R))
	g := math.Max(0, math.Min(1, rgb.G))
	b := math.Max(0, math.Min(1, rgb.B))
	return fmt.Sprintf("#%02x%02x%02x", int(r*255), int(g*255), int(b*255))
}

func RGBToHSV(rgb RGB) HSV {
	h, s, v := colorful.Color{R: rgb.R, G: rgb.G, B: rgb.B}.Hsv()
	return HSV{H: h / 360.0, S: s, V: v}
}

func HSVToRGB(hsv HSV) RGB {
	c := colorful.Hsv(math.Mod(hsv.H, 1.0)*360.0, hsv.S, hsv.V)
	return RGB{R: c.R, G: c.G, B: c.B}
}

func sRGBToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

func Luminance(hex string) float64 {
	rgb := mustRGB(hex)
	return 0.2126*sRGBToLinear(rgb.R) + 0.7152*sRGBToLinear(rgb.G) + 0.0722*sRGBToLinear(rgb.B)
}

func ContrastRatio(hexFg, hexBg string) float64 {
	lumFg := Luminance(hexFg)
	lumBg := Luminance(hexBg)
	lighter := math.Max(lumFg, lumBg)
	darker := math.Min(lumFg, lumBg)
	return (lighter + 0.05) / (darker + 0.05)
}

// EnsureContrast walks the HSV value of hexColor away from the background
// until the WCAG ratio reaches minRatio. The input is returned unchanged if
// no candidate qualifies.
func EnsureContrast(hexColor, hexBg string, minRatio float64, isLightMode bool) string {
	if ContrastRatio(hexColor, hexBg) >= minRatio {
		return hexColor
	}

	hsv := RGBToHSV(mustRGB(hexColor))

	// darker first on light backgrounds, lighter first on dark ones
	dir := 1.0
	if isLightMode {
		dir = -1.0
	}

	for step := 1; step < 50; step++ {
		delta := float64(step) * 0.02
		for _, sign := range []float64{dir, -dir} {
			v := math.Max(0, math.Min(1, hsv.V+sign*delta))
			candidate := RGBToHex(HSVToRGB(HSV{H: hsv.H, S: hsv.S, V: v}))
			if ContrastRatio(candidate, hexBg) >= minRatio {
				return candidate
			}
		}
	}

	// Saturated primaries can max out V without getting there. Walk L*
	// instead, which ends at white or black.
	L := getLstar(hexColor)
	for i := 0; i < 100; i++ {
		L = math.Max(0, math.Min(100, L+dir))
		candidate := retoneToL(hexColor, L)
		if ContrastRatio(candidate, hexBg) >= minRatio {
			return candidate
		}
	}

	return hexColor
}

func getLstar(hex string) float64 {
	rgb := mustRGB(hex)
	L, _, _ := colorful.Color{R: rgb.R, G: rgb.G, B: rgb.B}.Lab()
	return L * 100.0
}

// Blend composites fg over bg at the given alpha. Terminals have no alpha
// channel, so fading is rendered by moving the foreground colour toward
// the background.
func Blend(fg, bg string, alpha float64) string {
	alpha = math.Max(0, math.Min(1, alpha))

	cf, errFg := colorful.Hex(fg)
	cb, errBg := colorful.Hex(bg)
	if errFg != nil || errBg != nil {
		return fg
	}

	switch alpha {
	case 0:
		return cb.Hex()
	case 1:
		return cf.Hex()
	}
	return cb.BlendRgb(cf, alpha).Clamped().Hex()
}
