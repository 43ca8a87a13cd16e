package scatter

import (
	"bufio"
	_ "embed"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

//go:embed palette.csv
var defaultPaletteCSV string

// RGB is a color with components in [0,1].
type RGB struct {
	R float64
	G float64
	B float64
}

// Hex renders the color as #RRGGBB for the terminal frontend.
func (c RGB) Hex() string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
}

// Palette is an ordered list of categorical colors.
type Palette []RGB

// ParsePalette reads one #RRGGBB color per line. Blank and unparsable
// lines are skipped so a hand-edited palette file degrades gracefully.
func ParsePalette(s string) Palette {
	var pal Palette
	sc := bufio.NewScanner(strings.NewReader(s))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		c, err := colorful.Hex(line)
		if err != nil {
			continue
		}
		pal = append(pal, RGB{R: c.R, G: c.G, B: c.B})
	}
	return pal
}

// DefaultPalette returns the built-in categorical palette.
func DefaultPalette() Palette {
	return ParsePalette(defaultPaletteCSV)
}
