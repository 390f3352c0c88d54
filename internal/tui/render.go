package tui

import (
	_ "embed"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

//go:embed assets/image.txt
var imageArt string

// imageLines returns the demo image padded to a rectangle.
func imageLines() []string {
	lines := strings.Split(strings.TrimRight(imageArt, "\n"), "\n")
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	for i, l := range lines {
		lines[i] = l + strings.Repeat(" ", width-len([]rune(l)))
	}
	return lines
}

// scaleLines resamples a rectangle of runes by factor using nearest
// neighbour. The result is never smaller than one cell.
func scaleLines(lines []string, factor float64) []string {
	if len(lines) == 0 || factor <= 0 {
		return nil
	}

	src := make([][]rune, len(lines))
	srcW := 0
	for i, l := range lines {
		src[i] = []rune(l)
		srcW = max(srcW, len(src[i]))
	}

	h := max(1, int(math.Round(float64(len(src))*factor)))
	w := max(1, int(math.Round(float64(srcW)*factor)))

	out := make([]string, h)
	for y := 0; y < h; y++ {
		sy := min(len(src)-1, int(float64(y)/factor))
		row := make([]rune, w)
		for x := 0; x < w; x++ {
			sx := min(srcW-1, int(float64(x)/factor))
			if sx < len(src[sy]) {
				row[x] = src[sy][sx]
			} else {
				row[x] = ' '
			}
		}
		out[y] = string(row)
	}
	return out
}

// clipLines keeps at most maxH lines and maxW cells per line, centred.
func clipLines(lines []string, maxW, maxH int) []string {
	if maxH > 0 && len(lines) > maxH {
		skip := (len(lines) - maxH) / 2
		lines = lines[skip : skip+maxH]
	}
	if maxW <= 0 {
		return lines
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		r := []rune(l)
		if len(r) > maxW {
			skip := (len(r) - maxW) / 2
			r = r[skip : skip+maxW]
		}
		out[i] = string(r)
	}
	return out
}

func (m *Model) renderImage(style lipgloss.Style, factor float64) string {
	lines := scaleLines(imageLines(), factor)
	lines = clipLines(lines, m.contentWidth(), m.contentHeight())
	return style.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderButton(label string, focused bool) string {
	if focused {
		return m.styles.ButtonFocused.Render(label)
	}
	return m.styles.Button.Render(label)
}

func (m *Model) renderBanner() string {
	return m.styles.Banner.Render("◆ dankmotion")
}

func (m *Model) contentWidth() int {
	if m.width <= 0 {
		return 80
	}
	return m.width
}

// contentHeight leaves room for the banner, title, button and help.
func (m *Model) contentHeight() int {
	if m.height <= 0 {
		return 0
	}
	return max(3, m.height-12)
}
